package utils

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/torus-gol/palette"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if c.TickDelay() != 25*time.Millisecond || c.Hold() != time.Second || c.SpeedStep() != time.Millisecond {
		t.Fatalf("unexpected durations %v %v %v", c.TickDelay(), c.Hold(), c.SpeedStep())
	}
	if rgb, _ := c.AliveRGB(); rgb != palette.Blue {
		t.Fatalf("default alive colour = %v", rgb)
	}
	if c.Shift() != (palette.RGB{R: 64, G: 64, B: 64}) {
		t.Fatalf("default shift = %v", c.Shift())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"width": 16, "height": 8, "stability_policy": "single", "alive_color": "#ff8000", "birth_shift": [1, 2, 3]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 16 || c.Height != 8 || c.StabilityPolicy != "single" {
		t.Fatalf("unexpected config %+v", c)
	}
	// Unset fields keep their defaults.
	if c.TickDelayMs != 25 || c.Brightness != 0.3 {
		t.Fatalf("defaults lost: %+v", c)
	}
	if rgb, _ := c.AliveRGB(); rgb != (palette.RGB{R: 255, G: 128}) {
		t.Fatalf("alive colour = %v", rgb)
	}
	if c.Shift() != (palette.RGB{R: 1, G: 2, B: 3}) {
		t.Fatalf("shift = %v", c.Shift())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(path, []byte("{width"), 0o600)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed json should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"negative delay", func(c *Config) { c.TickDelayMs = -1 }},
		{"bad colour", func(c *Config) { c.AliveColor = "blue" }},
		{"bad policy", func(c *Config) { c.StabilityPolicy = "sometimes" }},
		{"bad display", func(c *Config) { c.Display = "hologram" }},
		{"headless forever", func(c *Config) { c.Display = DisplayHeadless; c.Generations = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error for %+v", c)
			}
		})
	}
}

func TestBindOverrides(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-width", "4", "-display", "headless", "-generations", "10", "-policy", "single"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Width != 4 || c.Height != 32 || c.Display != DisplayHeadless || c.Generations != 10 || c.StabilityPolicy != "single" {
		t.Fatalf("flags not applied: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNewRNGIsDeterministic(t *testing.T) {
	a, seedA := NewRNG(42)
	b, _ := NewRNG(42)
	if seedA != 42 {
		t.Fatalf("seed = %d", seedA)
	}
	for i := range 100 {
		if x, y := a.IntN(2), b.IntN(2); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if _, picked := NewRNG(0); picked == 0 {
		t.Fatal("zero seed should be replaced")
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 0)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 0 {
		t.Fatalf("first update: %+v", s)
	}
	s.Update(2, 200, 500*time.Millisecond)
	if math.Abs(s.AveragePopulation-110) > 1e-9 || s.GenerationsPerSecond != 2 || s.TotalGenerations != 2 {
		t.Fatalf("second update: %+v", s)
	}
}
