package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/engine"
	"github.com/sheikhrachel/torus-gol/stability"
	"github.com/sheikhrachel/torus-gol/utils"
)

const defaultConfigFile = "config.json"

// loadConfiguration reads the JSON config named by -config (falling back to defaults) and applies flag overrides on top
func loadConfiguration(args []string) (utils.Config, error) {
	path := defaultConfigFile
	probe := flag.NewFlagSet("torus-gol", flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	probe.StringVar(&path, "config", path, "")
	defaults := utils.DefaultConfig()
	defaults.Bind(probe)
	_ = probe.Parse(args)

	config, err := utils.LoadConfig(path)
	if err != nil {
		if path != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		log.Printf("using default configuration (%s not found)", path)
		config = utils.DefaultConfig()
	}

	fs := flag.NewFlagSet("torus-gol", flag.ContinueOnError)
	fs.String("config", path, "path to a JSON config file")
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[loadConfiguration] failed to parse flags")
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// initializeSimulation builds the simulation state from the configuration
func initializeSimulation(config utils.Config) (*engine.SimulationState, int64, error) {
	alive, err := config.AliveRGB()
	if err != nil {
		return nil, 0, err
	}
	tracker, err := stability.New(config.StabilityPolicy, config.HistoryDepth, config.Hold())
	if err != nil {
		return nil, 0, err
	}
	rng, seed := utils.NewRNG(config.Seed)

	state, err := engine.New(engine.Options{
		Width:          config.Width,
		Height:         config.Height,
		TickDelay:      config.TickDelay(),
		SpeedStep:      config.SpeedStep(),
		AliveColor:     alive,
		BirthShift:     config.Shift(),
		Brightness:     config.Brightness,
		BrightnessStep: config.BrightnessStep,
		Parallel:       config.UseParallel,
		UseMemoryPool:  config.UseMemoryPool,
		Tracker:        tracker,
		Rand:           rng,
	})
	if err != nil {
		return nil, 0, err
	}
	return state, seed, nil
}

// redirectLogs keeps log output off the terminal while tcell owns it
func redirectLogs(config utils.Config) (io.Closer, error) {
	if config.LogFile == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "[redirectLogs] failed to open log file: %+v", config.LogFile)
	}
	log.SetOutput(f)
	return f, nil
}

// displayGameInfo logs the starting parameters
func displayGameInfo(config utils.Config, state *engine.SimulationState, seed int64) {
	log.Printf("grid %dx%d | seed %d | policy %s | display %s | initial living cells %d",
		config.Width, config.Height, seed, state.Policy(), config.Display, state.Grid().CountLivingCells())
}

// statusLine summarises the simulation for the terminal display
func statusLine(state *engine.SimulationState, stats *utils.Stats) string {
	status := "active"
	if state.ReseedPending() {
		status = "stagnant"
	}
	return fmt.Sprintf("gen %d | alive %d | delay %v | %s | reseeds %d | %.0f gen/s",
		state.Generation(), state.Grid().CountLivingCells(), state.TickDelay(), status,
		state.Reseeds(), stats.GenerationsPerSecond)
}

// displayFinalStats prints the run summary
func displayFinalStats(w io.Writer, state *engine.SimulationState, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds (%d reseeds)\n",
		state.Generation(), stats.Runtime().Seconds(), state.Reseeds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.OverallRate(), stats.AveragePopulation)
}

// recordTick feeds one tick result into the stats
func recordTick(stats *utils.Stats, res engine.TickResult, started time.Time) {
	stats.Update(res.Generation, res.Population, time.Since(started))
	if res.Reseeded {
		stats.Reseeds++
	}
}
