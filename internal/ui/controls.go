package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"flames/internal/core"
)

const defaultFloatStep = 0.05

// adjustInt returns the value one step away from cur in direction, clamped to
// the control bounds. ok is false when the clamped value equals cur.
func adjustInt(ctrl core.ParameterControl, cur, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := cur + direction*step
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != cur
}

// adjustFloat is the float counterpart of adjustInt.
func adjustFloat(ctrl core.ParameterControl, cur float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := cur + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-cur) >= 1e-9
}

// formatFloat picks a precision one digit finer than the control step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// readouts flattens the snapshot into display lines, skipping keys that are
// already shown as controls.
func readouts(snap core.ParameterSnapshot, skip map[string]bool, limit int) []string {
	var lines []string
	for _, group := range snap.Groups {
		if len(lines) >= limit {
			break
		}
		lines = append(lines, "["+group.Name+"]")
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			if len(lines) >= limit {
				break
			}
			lines = append(lines, p.Label+": "+shortValue(p))
		}
	}
	return lines
}

func shortValue(p core.Parameter) string {
	if p.Type != core.ParamTypeFloat {
		return p.Value
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return p.Value
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// statsLine summarizes the latest frame for the overlay.
func statsLine(tick int64, deposits int, divergence float64, peak float32) string {
	return fmt.Sprintf("frame %d  hits %d  div %.4f  peak %.0f", tick, deposits, divergence, peak)
}

// Panel layout, in panel pixels.
const (
	panelPadding   = 12
	rowHeight      = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	readoutGap     = 8
	readoutLine    = 15
	controlsTop    = panelPadding + headerBaseline + 14
)

// keyLegend is printed at the bottom of the panel.
var keyLegend = []string{
	"space pause  n step",
	"r reset  s reseed",
	"p save png  1 heat  2 stats",
}

// controlRow is the screen placement of one adjustable control.
type controlRow struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// layoutRows right-aligns a -/+ button pair on each of n rows of a panel
// that is width pixels wide.
func layoutRows(n, width int) []controlRow {
	rows := make([]controlRow, n)
	for i := range rows {
		top := controlsTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		rows[i] = controlRow{top: top, minus: minus, plus: plus}
	}
	return rows
}

// readoutCapacity returns how many readout lines fit between the controls and
// the key legend.
func readoutCapacity(height, controls int) int {
	top := controlsTop + controls*rowHeight + readoutGap
	bottom := height - panelPadding - len(keyLegend)*readoutLine - readoutGap
	return max((bottom-top)/readoutLine, 0)
}
