//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"flames/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HUD is the side panel: live-adjustable controls on top, read-only values
// from the parameter snapshot below them and a key legend at the bottom.
type HUD struct {
	sim   core.Sim
	width int
	title string

	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	offsetX  int

	controls    []control
	controlKeys map[string]bool
	ints        core.IntParameterSetter
	floats      core.FloatParameterSetter
}

// control pairs a ParameterControl with its cached value and placement.
type control struct {
	core.ParameterControl
	controlRow

	text  string
	i     int
	f     float64
	valid bool
}

// NewHUD builds a panel of the given width for sim. A non-positive width
// disables drawing.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), controlKeys: map[string]bool{}}
	h.title = "Controls"
	if name := sim.Name(); name != "" {
		h.title = cases.Title(language.English).String(name)
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		ctrls := provider.ParameterControls()
		rows := layoutRows(len(ctrls), h.width)
		h.controls = make([]control, len(ctrls))
		for i, c := range ctrls {
			h.controls[i] = control{ParameterControl: c, controlRow: rows[i], text: "--"}
			h.controlKeys[c.Key] = true
		}
	}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update pulls a fresh snapshot and applies clicks on the -/+ buttons.
// offsetX is the screen x of the panel's left edge.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		h.controls[i].load(h.snapshot)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
			return
		case pt.In(c.plus):
			h.adjust(c, 1)
			return
		}
	}
}

func (c *control) load(snap core.ParameterSnapshot) {
	c.valid = false
	c.text = "--"
	p, ok := snap.Lookup(c.Key)
	if !ok {
		return
	}
	switch c.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			return
		}
		c.i, c.text = v, strconv.Itoa(v)
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return
		}
		c.f, c.text = v, formatFloat(c.ParameterControl, v)
	default:
		return
	}
	c.valid = true
}

// next returns the value one step in direction, or false when the control
// cannot move that way.
func (h *HUD) next(c *control, direction int) (int, float64, bool) {
	if !c.valid {
		return 0, 0, false
	}
	switch c.Type {
	case core.ParamTypeInt:
		v, ok := adjustInt(c.ParameterControl, c.i, direction)
		return v, 0, ok && h.ints != nil
	case core.ParamTypeFloat:
		v, ok := adjustFloat(c.ParameterControl, c.f, direction)
		return 0, v, ok && h.floats != nil
	}
	return 0, 0, false
}

func (h *HUD) adjust(c *control, direction int) {
	iv, fv, ok := h.next(c, direction)
	if !ok {
		return
	}
	if c.Type == core.ParamTypeInt && h.ints.SetIntParameter(c.Key, iv) {
		c.i, c.text = iv, strconv.Itoa(iv)
	}
	if c.Type == core.ParamTypeFloat && h.floats.SetFloatParameter(c.Key, fv) {
		c.f, c.text = fv, formatFloat(c.ParameterControl, fv)
	}
}

// Draw paints the panel at offsetX, matching the scaled frame height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	y := controlsTop + len(h.controls)*rowHeight + readoutGap
	for _, line := range readouts(h.snapshot, h.controlKeys, readoutCapacity(height, len(h.controls))) {
		y += readoutLine
		col := dimColor
		if line[0] == '[' {
			col = titleColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
	}
	y = height - panelPadding - len(keyLegend)*readoutLine
	for _, line := range keyLegend {
		y += readoutLine
		text.Draw(h.panel, line, face, panelPadding, y, legendColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c *control) {
	face := basicfont.Face7x13
	baseline := c.top + labelBaseline
	text.Draw(h.panel, c.Label, face, panelPadding, baseline, textColor)
	valueColor := textColor
	if !c.valid {
		valueColor = dimColor
	}
	x := c.minus.Min.X - buttonGap - text.BoundString(face, c.text).Dx()
	text.Draw(h.panel, c.text, face, x, baseline, valueColor)

	for _, b := range []struct {
		rect      image.Rectangle
		label     string
		direction int
	}{{c.minus, "-", -1}, {c.plus, "+", 1}} {
		_, _, enabled := h.next(c, b.direction)
		bg, fg := buttonColor, textColor
		if !enabled {
			bg, fg = buttonOffColor, dimColor
		}
		h.fill(b.rect, bg)
		bounds := text.BoundString(face, b.label)
		lx := b.rect.Min.X + (b.rect.Dx()-bounds.Dx())/2
		ly := b.rect.Min.Y + (b.rect.Dy()+bounds.Dy())/2
		text.Draw(h.panel, b.label, face, lx, ly, fg)
	}
}

func (h *HUD) fill(r image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

var (
	panelColor     = color.RGBA{R: 14, G: 12, B: 20, A: 255}
	titleColor     = color.RGBA{R: 236, G: 190, B: 120, A: 255}
	textColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor       = color.RGBA{R: 150, G: 150, B: 165, A: 255}
	legendColor    = color.RGBA{R: 110, G: 110, B: 128, A: 255}
	buttonColor    = color.RGBA{R: 60, G: 52, B: 70, A: 255}
	buttonOffColor = color.RGBA{R: 30, G: 28, B: 38, A: 255}
)
