// Package engine holds the simulation state and advances it one tick at a time.
//
// The engine never sleeps. Every Tick returns the delay the host should wait
// before calling it again, so hosts decide how time passes.
package engine

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/input"
	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/palette"
	"github.com/sheikhrachel/torus-gol/stability"
)

// Options configures a SimulationState
type Options struct {
	Width, Height  int
	TickDelay      time.Duration
	SpeedStep      time.Duration
	AliveColor     palette.RGB
	BirthShift     palette.RGB
	Brightness     float64
	BrightnessStep float64
	Parallel       bool
	UseMemoryPool  bool
	Tracker        stability.Tracker
	Rand           model.RandSource
}

// TickResult describes what happened during one tick
type TickResult struct {
	Generation int
	Population int
	Reseeded   bool
	Stuck      bool
	Delay      time.Duration
}

// SimulationState owns the grid and every piece of mutable simulation state
type SimulationState struct {
	grid    *model.Grid
	pool    *model.GridPool
	tracker stability.Tracker
	rng     model.RandSource

	aliveColor     palette.RGB
	birthShift     palette.RGB
	brightness     float64
	brightnessStep float64
	tickDelay      time.Duration
	speedStep      time.Duration
	parallel       bool

	generation    int
	reseeds       int
	reseedPending bool
}

// New seeds the initial generation and returns the state
func New(opts Options) (*SimulationState, error) {
	if opts.Rand == nil {
		return nil, errors.New("[engine.New] a random source is required")
	}
	if opts.Tracker == nil {
		opts.Tracker = stability.NewHistory(stability.DefaultHistoryDepth, stability.DefaultHold)
	}

	grid, err := model.NewSeededGrid(opts.Width, opts.Height, opts.Rand)
	if err != nil {
		return nil, errors.Wrap(err, "[engine.New] failed to create grid")
	}

	s := &SimulationState{
		grid:           grid,
		tracker:        opts.Tracker,
		rng:            opts.Rand,
		aliveColor:     opts.AliveColor,
		birthShift:     opts.BirthShift,
		brightness:     clampBrightness(opts.Brightness),
		brightnessStep: opts.BrightnessStep,
		tickDelay:      max(opts.TickDelay, 0),
		speedStep:      opts.SpeedStep,
		parallel:       opts.Parallel,
	}
	if opts.UseMemoryPool {
		s.pool = model.NewGridPool()
	}
	s.tracker.Observe(s.grid)
	return s, nil
}

// Tick advances one generation and paints it onto r.
//
// When the tracker reports the simulation stuck and has no hold, the grid is
// reseeded instead of advancing. With a hold, the stuck generation is committed
// and shown, and the reseed happens on the following tick.
func (s *SimulationState) Tick(r model.Renderer) (TickResult, error) {
	if s.reseedPending {
		s.Reseed()
		return s.paint(r, s.grid.AliveEvents(), TickResult{Reseeded: true, Delay: s.tickDelay})
	}

	next, events := s.grid.NextGeneration(s.pool, s.parallel)
	stuck := s.tracker.Observe(next)

	if stuck && s.tracker.Hold() == 0 {
		model.GridToPool(next, s.pool)
		s.Reseed()
		return s.paint(r, s.grid.AliveEvents(), TickResult{Reseeded: true, Stuck: true, Delay: s.tickDelay})
	}

	model.GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++

	res := TickResult{Stuck: stuck, Delay: s.tickDelay}
	if stuck {
		s.reseedPending = true
		res.Delay = s.tracker.Hold()
	}
	return s.paint(r, events, res)
}

func (s *SimulationState) paint(r model.Renderer, events []model.Event, res TickResult) (TickResult, error) {
	res.Generation = s.generation
	res.Population = s.grid.CountLivingCells()
	if r == nil {
		return res, nil
	}

	err := model.PaintFrame(r, model.Frame{
		Events:     events,
		AliveColor: s.aliveColor,
		BirthColor: palette.DeriveBirthColor(s.aliveColor, s.birthShift),
		Brightness: s.brightness,
	})
	if err != nil {
		return res, errors.Wrapf(err, "[Tick] failed to present generation %d", s.generation)
	}
	return res, nil
}

// Reseed replaces the grid with fresh random content. The generation counter keeps running.
func (s *SimulationState) Reseed() {
	s.grid.Seed(s.rng)
	s.tracker.Reset()
	s.tracker.Observe(s.grid)
	s.reseedPending = false
	s.reseeds++
}

// HandleInput applies one input event
func (s *SimulationState) HandleInput(ev input.Event) {
	switch ev {
	case input.BrightnessUp:
		s.AdjustBrightness(s.brightnessStep)
	case input.BrightnessDown:
		s.AdjustBrightness(-s.brightnessStep)
	case input.ReseedRequested:
		s.Reseed()
	case input.SpeedUp:
		s.AdjustDelay(-s.speedStep)
	case input.SpeedDown:
		s.AdjustDelay(s.speedStep)
	case input.RandomizeColor:
		s.SetAliveColor(palette.Random(s.rng))
	}
}

// AdjustBrightness moves the brightness by delta, clamped to [0, 1]
func (s *SimulationState) AdjustBrightness(delta float64) {
	s.brightness = clampBrightness(s.brightness + delta)
}

// AdjustDelay moves the tick delay by delta; it never goes negative
func (s *SimulationState) AdjustDelay(delta time.Duration) {
	s.tickDelay = max(s.tickDelay+delta, 0)
}

// SetAliveColor replaces the colour of surviving cells
func (s *SimulationState) SetAliveColor(c palette.RGB) {
	s.aliveColor = c
}

func clampBrightness(b float64) float64 {
	return min(max(b, 0), 1)
}

// Grid returns the current generation. Callers must not modify it.
func (s *SimulationState) Grid() *model.Grid { return s.grid }

func (s *SimulationState) Generation() int { return s.generation }

func (s *SimulationState) Reseeds() int { return s.reseeds }

func (s *SimulationState) AliveColor() palette.RGB { return s.aliveColor }

// BirthColor is derived from the current alive colour on every call
func (s *SimulationState) BirthColor() palette.RGB {
	return palette.DeriveBirthColor(s.aliveColor, s.birthShift)
}

func (s *SimulationState) Brightness() float64 { return s.brightness }

// TickDelay is the pause the host should take between ordinary ticks
func (s *SimulationState) TickDelay() time.Duration { return s.tickDelay }

// ReseedPending reports whether the next tick will reseed
func (s *SimulationState) ReseedPending() bool { return s.reseedPending }

// Policy names the stagnation policy in use
func (s *SimulationState) Policy() string { return s.tracker.Name() }
