//go:build ebiten

package render

import (
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads frames into a single ebiten image and draws it scaled.
type Painter struct {
	w, h int
	img  *ebiten.Image
	pix  *gg.Pixmap
}

// NewPainter allocates a painter for a w*h frame.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h), pix: gg.NewPixmap(w, h)}
}

// Blit uploads the float RGBA frame and draws it onto dst.
func (p *Painter) Blit(dst *ebiten.Image, frame []float32, scale int) {
	pm, err := Pixmap(frame, p.w, p.h, p.pix)
	if err != nil {
		return
	}
	p.draw(dst, pm, scale)
}

// BlitHeat draws a density heat map over dst.
func (p *Painter) BlitHeat(dst *ebiten.Image, density []float32, palette *Palette, scale int) float32 {
	pm, peak, err := Heat(density, p.w, p.h, palette, p.pix)
	if err != nil {
		return 0
	}
	p.draw(dst, pm, scale)
	return peak
}

func (p *Painter) draw(dst *ebiten.Image, pm *gg.Pixmap, scale int) {
	p.img.WritePixels(pm.Data())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
