package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids/pkg/telemetry"
)

type options struct {
	configPath string
	seed       uint64
	steps      int
	dt         float64
	every      int
	outPath    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Settings file, .json or .yaml (empty = use defaults)")
	flag.Uint64Var(&opts.seed, "seed", 1, "Random seed")
	flag.IntVar(&opts.steps, "steps", 1000, "Number of steps to simulate")
	flag.Float64Var(&opts.dt, "dt", 16, "Time step in milliseconds")
	flag.IntVar(&opts.every, "every", 10, "Record telemetry every N steps")
	flag.StringVar(&opts.outPath, "out", "telemetry.csv", "Output CSV file")
	flag.Parse()

	logger := golog.DefaultLogger
	if err := run(opts, logger); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(opts options, logger golog.Logger) error {
	if opts.steps < 0 || opts.every <= 0 || opts.dt < 0 {
		return errors.New("-steps and -dt must not be negative, -every must be positive")
	}

	settings := behavior.DefaultSettings()
	if opts.configPath != "" {
		s, err := simulation.LoadSettingsFile(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		settings = s
	}

	f, err := os.Create(opts.outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opts.outPath, err)
	}
	defer f.Close()

	sim := simulation.NewSimulation(settings, rand.New(rand.NewPCG(opts.seed, opts.seed>>1)))
	recorder := telemetry.NewRecorder(f)
	logger.Infof("🐦 simulating %d boids for %d steps of %.1fms (seed %d)",
		settings.Boids, opts.steps, opts.dt, opts.seed)

	record := func() error {
		return recorder.Record(telemetry.Measure(sim.Generation(), sim.Steps(), sim.Boids()))
	}
	if err := record(); err != nil {
		return err
	}
	for step := 1; step <= opts.steps; step++ {
		sim.Step(opts.dt)
		if step%opts.every != 0 && step != opts.steps {
			continue
		}
		if err := record(); err != nil {
			return err
		}
		if step%(opts.every*10) == 0 {
			logger.Debugf("step %d/%d", step, opts.steps)
		}
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("flushing %s: %w", opts.outPath, err)
	}
	logger.Infof("📊 wrote %d rows to %s", recorder.Rows(), opts.outPath)
	return nil
}
