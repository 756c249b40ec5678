package histogram

import (
	"fmt"
	"math"
)

const invGamma = 1 / 2.2

// ToneMap renders the current grid into dst as RGBA float32. Brightness is
// scaled logarithmically by sample count and gamma corrected; color is the
// mean deposited color. Alpha is written as 1 and nothing is clamped.
func (h *Histogram) ToneMap(brightness float32, dst []float32) error {
	g := h.Current()
	if len(dst) < len(g.Cells()) {
		return fmt.Errorf("histogram: tone map target holds %d values, need %d", len(dst), len(g.Cells()))
	}
	src := g.Cells()
	b := float64(brightness)
	h.rows(g.H, func(y0, y1 int) {
		for i := g.Index(0, y0); i < g.Index(0, y1); i += 4 {
			a := float64(src[i+3])
			scale := math.Pow(b*math.Log(0.25*a+1), invGamma)
			inv := scale / math.Max(a, 1)
			dst[i+0] = float32(float64(src[i+0]) * inv)
			dst[i+1] = float32(float64(src[i+1]) * inv)
			dst[i+2] = float32(float64(src[i+2]) * inv)
			dst[i+3] = 1
		}
	})
	return nil
}
