package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/palette"
	"github.com/sheikhrachel/torus-gol/stability"
)

const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
	DisplayHeadless = "headless"
)

// Config holds the configuration for the simulation
type Config struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TickDelayMs      int     `json:"tick_delay_ms"`
	SpeedStepMs      int     `json:"speed_step_ms"`
	StagnationHoldMs int     `json:"stagnation_hold_ms"`
	StabilityPolicy  string  `json:"stability_policy"`
	HistoryDepth     int     `json:"history_depth"`
	AliveColor       string  `json:"alive_color"`
	BirthShift       [3]int  `json:"birth_shift"`
	Brightness       float64 `json:"brightness"`
	BrightnessStep   float64 `json:"brightness_step"`
	Seed             int64   `json:"seed"`
	UseParallel      bool    `json:"use_parallel"`
	UseMemoryPool    bool    `json:"use_memory_pool"`
	Display          string  `json:"display"`
	Scale            int     `json:"scale"`
	Generations      int     `json:"generations"`
	LogFile          string  `json:"log_file"`
}

// DefaultConfig returns the 32x32 matrix defaults
func DefaultConfig() Config {
	return Config{
		Width:            32,
		Height:           32,
		TickDelayMs:      25,
		SpeedStepMs:      1,
		StagnationHoldMs: 1000,
		StabilityPolicy:  stability.PolicyHistory,
		HistoryDepth:     stability.DefaultHistoryDepth,
		AliveColor:       "#0000ff",
		BirthShift:       [3]int{64, 64, 64},
		Brightness:       0.3,
		BrightnessStep:   0.01,
		UseParallel:      false,
		UseMemoryPool:    true,
		Display:          DisplayTerminal,
		Scale:            16,
		Generations:      0,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches overridable fields to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height")
	fs.IntVar(&c.TickDelayMs, "delay", c.TickDelayMs, "milliseconds between ticks")
	fs.StringVar(&c.StabilityPolicy, "policy", c.StabilityPolicy, "stagnation policy: history or single")
	fs.StringVar(&c.AliveColor, "color", c.AliveColor, "alive colour as #rrggbb")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "split each generation across CPUs")
	fs.StringVar(&c.Display, "display", c.Display, "terminal, window or headless")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many ticks, 0 runs forever")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file used while the terminal display is active")
}

// Validate rejects configurations the simulation cannot start with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.TickDelayMs < 0 || c.SpeedStepMs < 0 || c.StagnationHoldMs < 0 {
		return errors.New("[Validate] delays must not be negative")
	}
	if _, err := c.AliveRGB(); err != nil {
		return errors.Wrap(err, "[Validate] bad alive_color")
	}
	if _, err := stability.New(c.StabilityPolicy, c.HistoryDepth, c.Hold()); err != nil {
		return errors.Wrap(err, "[Validate] bad stability_policy")
	}
	switch c.Display {
	case DisplayTerminal, DisplayWindow, DisplayHeadless:
	default:
		return errors.Errorf("[Validate] unknown display %q", c.Display)
	}
	if c.Display == DisplayHeadless && c.Generations <= 0 {
		return errors.New("[Validate] headless runs need a positive generations limit")
	}
	return nil
}

// AliveRGB parses the configured alive colour
func (c Config) AliveRGB() (palette.RGB, error) {
	return palette.ParseHex(c.AliveColor)
}

// Shift returns the birth colour shift
func (c Config) Shift() palette.RGB {
	return palette.FromTriple(c.BirthShift)
}

func (c Config) TickDelay() time.Duration {
	return time.Duration(c.TickDelayMs) * time.Millisecond
}

func (c Config) SpeedStep() time.Duration {
	return time.Duration(c.SpeedStepMs) * time.Millisecond
}

func (c Config) Hold() time.Duration {
	return time.Duration(c.StagnationHoldMs) * time.Millisecond
}
