// Command flame-sweep renders short headless runs over a grid of animation
// settings and ranks them by how much of the frame the flame covers.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"flames/internal/sims/flame"
)

type paramSet struct {
	rate       float64
	threshold  float64
	frameSteps int
	seed       int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("rate=%.3f threshold=%.3f frame_steps=%d seed=%d", p.rate, p.threshold, p.frameSteps, p.seed)
}

type scenarioResult struct {
	params      paramSet
	coverage    float64
	luminance   float64
	minDeposits int
	targets     int
	err         error
}

func main() {
	frames := flag.Int("frames", 60, "frames to render per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenarios evaluated in parallel")
	size := flag.Int("size", 96, "frame width and height")
	particles := flag.Int("particles", 20000, "particles per scenario")
	rates := flag.String("rates", "0.01,0.03,0.1", "comma-separated animation rates")
	thresholds := flag.String("thresholds", "0.005,0.01,0.05", "comma-separated regeneration thresholds")
	seeds := flag.Int("seeds", 2, "seeds per parameter set")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	base := flame.DefaultConfig()
	base.Width = *size
	base.Height = *size
	base.Particles = *particles
	base.Workers = 1

	rateOptions, err := parseFloats(*rates)
	if err != nil {
		fmt.Println("rates:", err)
		return
	}
	thresholdOptions, err := parseFloats(*thresholds)
	if err != nil {
		fmt.Println("thresholds:", err)
		return
	}
	sets := buildSets(rateOptions, thresholdOptions, []int{1, 2}, *seeds)

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d frames)\n", len(sets), *workers, *frames)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *frames)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			fmt.Printf("Scenario %s failed: %v\n", res.params, res.err)
			continue
		}
		all = append(all, res)
	}
	rank(all)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) coverage=%.3f luminance=%.3f minHits=%d targets=%d params=%s\n",
			i+1, res.coverage, res.luminance, res.minDeposits, res.targets, res.params)
	}
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", list)
	}
	return out, nil
}

func buildSets(rates, thresholds []float64, frameSteps []int, seeds int) []paramSet {
	var sets []paramSet
	for _, rate := range rates {
		for _, threshold := range thresholds {
			for _, fs := range frameSteps {
				for s := 1; s <= seeds; s++ {
					sets = append(sets, paramSet{rate: rate, threshold: threshold, frameSteps: fs, seed: int64(s)})
				}
			}
		}
	}
	return sets
}

// rank orders results by coverage, breaking ties on luminance.
func rank(all []scenarioResult) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].coverage != all[j].coverage {
			return all[i].coverage > all[j].coverage
		}
		return all[i].luminance > all[j].luminance
	})
}

func runScenario(base flame.Config, params paramSet, frames int) scenarioResult {
	res := scenarioResult{params: params, minDeposits: -1}
	cfg := base
	cfg.Rate = params.rate
	cfg.Threshold = params.threshold
	cfg.FrameSteps = params.frameSteps
	cfg.Seed = params.seed

	f, err := flame.New(cfg)
	if err != nil {
		res.err = err
		return res
	}
	for i := 0; i < frames; i++ {
		f.Step()
		if res.minDeposits < 0 || f.Deposits() < res.minDeposits {
			res.minDeposits = f.Deposits()
		}
	}
	res.coverage, res.luminance = measure(f.Frame())
	res.targets = f.Animator().Regenerations()
	return res
}

// measure returns the fraction of pixels with any light and the mean
// luminance of the frame, with channels clamped to [0, 1].
func measure(frame []float32) (coverage, luminance float64) {
	pixels := len(frame) / 4
	if pixels == 0 {
		return 0, 0
	}
	lit := 0
	var sum float64
	for i := 0; i < len(frame); i += 4 {
		r, g, b := clamp01(frame[i]), clamp01(frame[i+1]), clamp01(frame[i+2])
		l := 0.2126*r + 0.7152*g + 0.0722*b
		if l > 0 {
			lit++
		}
		sum += l
	}
	return float64(lit) / float64(pixels), sum / float64(pixels)
}

func clamp01(v float32) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float64(v)
}
