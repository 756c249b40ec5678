package flame

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"flames/internal/vecmath"
)

// Iterations is the number of chaos-game steps each particle takes per frame.
const Iterations = 20

const minChunk = 2048

// Sample is a particle's final position and color for one frame.
type Sample struct {
	Position vecmath.Vec3
	Color    vecmath.Vec3
}

// Engine runs the chaos game for every particle of a frame.
type Engine struct {
	Workers int
	Sampler Sampler
}

// NewEngine returns an engine with the given parallelism; workers <= 0 uses
// one worker per CPU.
func NewEngine(workers int, sampler Sampler) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{Workers: workers, Sampler: sampler}
}

// Trace runs one particle from its seed.
func Trace(seq *Sequence, fs *FunctionSet, mixRate float32) Sample {
	s0 := seq.Next()
	s1 := seq.Next()
	s2 := seq.Next()
	p := vecmath.Vec3{X: 2*s0 - 1, Y: 2*s1 - 1, Z: 2*s2 - 1}
	c := vecmath.Splat3(1)
	for i := 0; i < Iterations; i++ {
		p, c = fs.Step(p, c, seq.Next(), mixRate)
	}
	return Sample{Position: p, Color: c}
}

// Run traces every seed into out[i]. Each index is written by exactly one
// goroutine; the result does not depend on the worker count.
func (e *Engine) Run(ctx context.Context, seeds []float32, fs *FunctionSet, globalSeed, mixRate float32, out []Sample) error {
	if len(out) < len(seeds) {
		return fmt.Errorf("flame: output holds %d samples, need %d", len(out), len(seeds))
	}
	workers := e.Workers
	if workers <= 0 {
		workers = 1
	}
	chunk := len(seeds) / (workers * 4)
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(seeds); lo += chunk {
		hi := min(lo+chunk, len(seeds))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				seq := NewSequence(e.Sampler, seeds[i], globalSeed)
				out[i] = Trace(&seq, fs, mixRate)
			}
			return nil
		})
	}
	return g.Wait()
}
