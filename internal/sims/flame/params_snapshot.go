package flame

import (
	"strconv"

	"flames/internal/core"
)

// Parameters reports the configuration and the live animation state.
func (f *Flame) Parameters() core.ParameterSnapshot {
	s := f.anim.State
	groups := []core.ParameterGroup{
		{
			Name: "Flame",
			Params: []core.Parameter{
				core.IntParam("width", "Width", f.cfg.Width),
				core.IntParam("height", "Height", f.cfg.Height),
				core.IntParam("particles", "Particles", f.cfg.Particles),
				core.Int64Param("seed", "Seed", f.cfg.Seed),
				core.StringParam("sampler", "Sampler", f.cfg.Sampler.String()),
			},
		},
		{
			Name: "Animation",
			Params: []core.Parameter{
				core.FloatParam("mix_rate", "Mix rate", s.MixRate),
				core.FloatParam("brightness", "Brightness", s.Brightness),
				core.FloatParam("decay", "Decay", s.Decay),
				core.FloatParam("hue_base", "Hue base", s.HueBase),
				core.FloatParam("hue_offset", "Hue offset", s.HueOffset),
				core.FloatParam("divergence", "Divergence", f.divergence),
				core.IntParam("targets", "Targets drawn", f.anim.Regenerations()),
			},
		},
		{
			Name: "Playback",
			Params: []core.Parameter{
				core.FloatParam("rate", "Animation rate", f.cfg.Rate),
				core.FloatParam("time_step", "Camera time step", f.cfg.TimeStep),
				core.IntParam("frame_steps", "Passes per frame", f.cfg.FrameSteps),
				core.Int64Param("tick", "Frame", f.tick),
				core.IntParam("deposits", "Deposits", f.deposits),
			},
			Summary: "deposits counts samples that landed on the grid this frame",
		},
	}
	for i, w := range s.Weights {
		groups[1].Params = append(groups[1].Params, core.FloatParam("weight_"+strconv.Itoa(i), "Weight "+strconv.Itoa(i), w))
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust while running.
func (f *Flame) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rate", Label: "Animation rate", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.005, Max: 1, HasMin: true, HasMax: true},
		{Key: "time_step", Label: "Camera step", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.05, HasMin: true, HasMax: true},
		{Key: "frame_steps", Label: "Passes/frame", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float control. It reports whether the value
// was accepted.
func (f *Flame) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "rate":
		if !(value > 0 && value <= 1) {
			return false
		}
		f.cfg.Rate = value
	case "time_step":
		if value < 0 {
			return false
		}
		f.cfg.TimeStep = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer control.
func (f *Flame) SetIntParameter(key string, value int) bool {
	if key != "frame_steps" || value < 1 {
		return false
	}
	f.cfg.FrameSteps = value
	return true
}
