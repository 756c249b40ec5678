package ui

import (
	"strings"
	"testing"

	"flames/internal/core"
)

func TestAdjustIntClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Key: "frame_steps", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true}
	if v, ok := adjustInt(ctrl, 3, 1); !ok || v != 4 {
		t.Fatalf("up from 3 = %d,%v", v, ok)
	}
	if v, ok := adjustInt(ctrl, 1, -1); ok || v != 1 {
		t.Fatalf("down from min = %d,%v", v, ok)
	}
	if v, ok := adjustInt(ctrl, 8, 1); ok || v != 8 {
		t.Fatalf("up from max = %d,%v", v, ok)
	}
	ctrl.Step = 0
	if v, _ := adjustInt(ctrl, 2, 1); v != 3 {
		t.Fatalf("zero step should default to 1, got %d", v)
	}
}

func TestAdjustFloatClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Key: "rate", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.005, Max: 1, HasMin: true, HasMax: true}
	if v, ok := adjustFloat(ctrl, 0.01, -1); !ok || v != 0.005 {
		t.Fatalf("down = %v,%v", v, ok)
	}
	if _, ok := adjustFloat(ctrl, 0.005, -1); ok {
		t.Fatalf("expected no change at minimum")
	}
	if v, ok := adjustFloat(ctrl, 0.999, 1); !ok || v != 1 {
		t.Fatalf("up near max = %v,%v", v, ok)
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	if got := formatFloat(core.ParameterControl{Step: 0.005}, 0.0125); got != "0.013" && got != "0.012" {
		t.Fatalf("got %q", got)
	}
	if got := formatFloat(core.ParameterControl{Step: 1}, 2.25); got != "2.2" && got != "2.3" {
		t.Fatalf("got %q", got)
	}
	if got := formatFloat(core.ParameterControl{}, 0.5); got != "0.50" {
		t.Fatalf("default step precision: %q", got)
	}
}

func TestReadoutsSkipControlsAndRespectLimit(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Animation", Params: []core.Parameter{
			core.FloatParam("decay", "Decay", 0.912345678),
			core.FloatParam("rate", "Rate", 0.01),
		}},
		{Name: "Playback", Params: []core.Parameter{
			core.IntParam("tick", "Frame", 12),
			core.IntParam("deposits", "Deposits", 900),
		}},
	}}
	lines := readouts(snap, map[string]bool{"rate": true}, 10)
	want := []string{"[Animation]", "Decay: 0.9123", "[Playback]", "Frame: 12", "Deposits: 900"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q", lines)
	}
	if got := readouts(snap, nil, 3); len(got) != 3 {
		t.Fatalf("limit not applied: %q", got)
	}
}

func TestStatsLine(t *testing.T) {
	got := statsLine(42, 1000, 0.0125, 37.6)
	if got != "frame 42  hits 1000  div 0.0125  peak 38" {
		t.Fatalf("got %q", got)
	}
}

func TestLayoutRowsRightAligned(t *testing.T) {
	rows := layoutRows(3, 240)
	if len(rows) != 3 {
		t.Fatalf("len = %d", len(rows))
	}
	for i, r := range rows {
		if r.plus.Max.X != 240-panelPadding {
			t.Fatalf("row %d plus not right-aligned: %v", i, r.plus)
		}
		if r.minus.Max.X+buttonGap != r.plus.Min.X || r.minus.Dy() != buttonSize {
			t.Fatalf("row %d minus misplaced: %v vs %v", i, r.minus, r.plus)
		}
		if i > 0 && r.top-rows[i-1].top != rowHeight {
			t.Fatalf("row spacing %d", r.top-rows[i-1].top)
		}
	}
}

func TestReadoutCapacity(t *testing.T) {
	if got := readoutCapacity(40, 3); got != 0 {
		t.Fatalf("tiny panel capacity = %d", got)
	}
	small := readoutCapacity(400, 3)
	large := readoutCapacity(800, 3)
	if small <= 0 || large <= small {
		t.Fatalf("capacity %d (400px) vs %d (800px)", small, large)
	}
	if readoutCapacity(800, 0) <= large {
		t.Fatalf("fewer controls should leave more room")
	}
}
