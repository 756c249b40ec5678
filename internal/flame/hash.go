package flame

import "flames/internal/vecmath"

var (
	hashScale   = [4]float32{1, 64, 4096, 262144}
	hashOffsetX = [4]float32{0.1, 0.3357, 0.4871, 0.231}
	hashOffsetY = [4]float32{0.3, 0.05, 0.24758, 0.11911}
)

// Hash2 folds two scalars into a pseudorandom value in [0, 1). The offsets
// keep every reciprocal denominator away from zero.
func Hash2(x, y float32) float32 {
	var sum float32
	for i, m := range hashScale {
		sum += 1/(vecmath.Fract(x*m)+hashOffsetX[i]) + 1/(vecmath.Fract(y*m)+hashOffsetY[i])
	}
	return vecmath.Fract(sum)
}

// Hash1 is the single-argument form of Hash2.
func Hash1(x float32) float32 {
	var sum float32
	for i, m := range hashScale {
		sum += 1 / (vecmath.Fract(x*m) + hashOffsetX[i])
	}
	return vecmath.Fract(sum)
}
