package histogram

import "math"

// FilterRadius is the half-width of the square gather neighborhood.
const FilterRadius = 2

const filterDiameter = 2*FilterRadius + 1

// Filter makes the other grid current and fills it from the grid splatted
// this frame. Each output cell is the Gaussian-weighted mean of the 5×5
// neighborhood around it (clamped at the edges) with bandwidth
// k = 0.1·sqrt(Σ alpha), so dense regions blur less, scaled by decay on all
// four channels.
func (h *Histogram) Filter(decay float32) {
	h.current ^= 1
	src := h.Other()
	dst := h.Current()
	sc := src.Cells()
	dc := dst.Cells()

	h.rows(dst.H, func(y0, y1 int) {
		var offs [filterDiameter * filterDiameter]int
		for y := y0; y < y1; y++ {
			for x := 0; x < dst.W; x++ {
				n := 0.0
				for j := 0; j < filterDiameter; j++ {
					for i := 0; i < filterDiameter; i++ {
						sx, sy := src.Clamp(x+i-FilterRadius, y+j-FilterRadius)
						off := src.Index(sx, sy)
						offs[j*filterDiameter+i] = off
						n += float64(sc[off+3])
					}
				}

				k := 0.1 * math.Sqrt(n)
				// dx²+dy² only takes the values 0,1,2,4,5,8 for radius 2.
				var wr [2*FilterRadius*FilterRadius + 1]float64
				for r := range wr {
					wr[r] = math.Exp(-k * float64(r))
				}

				var acc [4]float64
				wsum := 0.0
				for j := 0; j < filterDiameter; j++ {
					dy := j - FilterRadius
					for i := 0; i < filterDiameter; i++ {
						dx := i - FilterRadius
						w := wr[dx*dx+dy*dy]
						off := offs[j*filterDiameter+i]
						acc[0] += w * float64(sc[off+0])
						acc[1] += w * float64(sc[off+1])
						acc[2] += w * float64(sc[off+2])
						acc[3] += w * float64(sc[off+3])
						wsum += w
					}
				}

				scale := float64(decay) / wsum
				o := dst.Index(x, y)
				dc[o+0] = float32(acc[0] * scale)
				dc[o+1] = float32(acc[1] * scale)
				dc[o+2] = float32(acc[2] * scale)
				dc[o+3] = float32(acc[3] * scale)
			}
		}
	})
}
