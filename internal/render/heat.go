package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Palette maps a normalized intensity to premultiplied RGBA bytes.
type Palette [256][4]uint8

// HeatPalette ramps from transparent blue through green to opaque red.
func HeatPalette() *Palette {
	var p Palette
	for i := range p {
		t := float64(i) / 255
		c := gg.HSL(240*(1-t), 1, 0.5)
		p[i] = [4]uint8{
			uint8(math.Round(c.R * t * 255)),
			uint8(math.Round(c.G * t * 255)),
			uint8(math.Round(c.B * t * 255)),
			uint8(math.Round(t * 255)),
		}
	}
	return &p
}

// fillHeatRGBA maps density counts onto the palette on a log scale normalized
// to the densest cell. It returns that maximum.
func fillHeatRGBA(buf []byte, density []float32, palette *Palette) float32 {
	var peak float32
	for _, v := range density {
		if v > peak {
			peak = v
		}
	}
	norm := 0.0
	if peak > 0 {
		norm = 255 / math.Log1p(float64(peak))
	}
	for i, v := range density {
		idx := 0
		if v > 0 {
			idx = int(math.Log1p(float64(v))*norm + 0.5)
			if idx > 255 {
				idx = 255
			}
		}
		copy(buf[i*4:i*4+4], palette[idx][:])
	}
	return peak
}

// Heat renders a w*h density plane into dst and returns the peak count.
func Heat(density []float32, w, h int, palette *Palette, dst *gg.Pixmap) (*gg.Pixmap, float32, error) {
	if len(density) != w*h {
		return nil, 0, fmt.Errorf("render: density holds %d values, want %d", len(density), w*h)
	}
	dst = ensurePixmap(dst, w, h)
	peak := fillHeatRGBA(dst.Data(), density, palette)
	return dst, peak, nil
}
