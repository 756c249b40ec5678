// Package render converts simulation frames into displayable pixels.
package render

import (
	"fmt"

	"github.com/gogpu/gg"
)

// toByte maps a linear value to 0..255. Values above one saturate; NaN and
// non-positive values map to zero.
func toByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// fillFrameRGBA converts a float RGBA frame into 8-bit RGBA pixels in buf.
func fillFrameRGBA(buf []byte, frame []float32) {
	n := min(len(buf), len(frame))
	for i := 0; i < n; i++ {
		buf[i] = toByte(frame[i])
	}
}

// ensurePixmap returns dst when it already has the requested size.
func ensurePixmap(dst *gg.Pixmap, w, h int) *gg.Pixmap {
	if dst == nil || dst.Width() != w || dst.Height() != h {
		return gg.NewPixmap(w, h)
	}
	return dst
}

// Pixmap writes a w*h float RGBA frame into dst, allocating a new pixmap when
// dst is nil or sized differently.
func Pixmap(frame []float32, w, h int, dst *gg.Pixmap) (*gg.Pixmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", w, h)
	}
	if len(frame) != w*h*4 {
		return nil, fmt.Errorf("render: frame holds %d values, want %d", len(frame), w*h*4)
	}
	dst = ensurePixmap(dst, w, h)
	fillFrameRGBA(dst.Data(), frame)
	return dst, nil
}

// SavePNG writes the frame to path as an 8-bit PNG.
func SavePNG(path string, frame []float32, w, h int) error {
	pm, err := Pixmap(frame, w, h, nil)
	if err != nil {
		return err
	}
	if err := pm.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
