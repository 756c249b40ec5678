package core

import "sort"

// Size describes the dimensions of a simulation frame.
type Size struct {
	W int
	H int
}

// Sim defines the contract the app and the headless renderer drive once per
// displayed frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Frame returns the latest RGBA image as row-major float32 values. Values
	// are not clamped; the display layer is responsible for that.
	Frame() []float32
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
