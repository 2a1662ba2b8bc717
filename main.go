package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/display"
	"github.com/sheikhrachel/torus-gol/engine"
	"github.com/sheikhrachel/torus-gol/input"
	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

func main() {
	log.SetPrefix("[torus-gol] ")

	config, err := loadConfiguration(os.Args[1:])
	if err != nil {
		log.Fatalf("configuration: %+v", err)
	}

	state, seed, err := initializeSimulation(config)
	if err != nil {
		log.Fatalf("initialization: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch config.Display {
	case utils.DisplayHeadless:
		displayGameInfo(config, state, seed)
		err = runHeadless(ctx, config, state)
	case utils.DisplayWindow:
		displayGameInfo(config, state, seed)
		err = runWindow(config, state)
	default:
		err = runTerminal(ctx, config, state, seed)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

// runTerminal drives the simulation on a tcell screen. Input is polled on its own
// goroutine; only the tick loop touches the simulation state.
func runTerminal(ctx context.Context, config utils.Config, state *engine.SimulationState, seed int64) error {
	logs, err := redirectLogs(config)
	if err != nil {
		return err
	}
	defer logs.Close()
	displayGameInfo(config, state, seed)

	term, err := display.OpenTerminal(config.Width, config.Height)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		source = input.NewTerminalSource(term.Screen())
		stats  = utils.NewStats()
	)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return source.Run(ctx)
	})

	eg.Go(func() error {
		// Finalising the screen unblocks the input poller.
		defer term.Close()
		defer cancel()

		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-source.Events():
				if !ok || ev == input.Quit {
					return nil
				}
				log.Printf("input %s", ev)
				state.HandleInput(ev)

			case <-timer.C:
				started := time.Now()
				term.SetStatus(statusLine(state, stats))
				res, err := state.Tick(term)
				if err != nil {
					return err
				}
				recordTick(stats, res, started)
				if res.Reseeded {
					log.Printf("reseeded at generation %d", res.Generation)
				}
				if config.Generations > 0 && res.Generation >= config.Generations {
					return nil
				}
				timer.Reset(res.Delay)
			}
		}
	})

	err = eg.Wait()
	log.Printf("stopped after %d generations, %d reseeds", state.Generation(), state.Reseeds())
	return err
}

// runHeadless ticks as fast as possible into an in-memory display, ignoring the requested delays
func runHeadless(ctx context.Context, config utils.Config, state *engine.SimulationState) error {
	var (
		rec   = display.NewRecorder(config.Width, config.Height)
		stats = utils.NewStats()
		bar   = pb.New(config.Generations).SetWriter(os.Stderr).Start()
	)

	for state.Generation() < config.Generations {
		if ctx.Err() != nil {
			break
		}
		started := time.Now()
		res, err := state.Tick(rec)
		if err != nil {
			return err
		}
		recordTick(stats, res, started)
		if !res.Reseeded {
			bar.Increment()
		}
	}
	bar.Finish()

	displayFinalStats(os.Stdout, state, stats)
	fmt.Printf("Lit pixels in final frame: %d\n", rec.Lit())
	return nil
}

// runWindow hands the loop to ebiten, which calls back at the cadence the simulation asks for
func runWindow(config utils.Config, state *engine.SimulationState) error {
	stats := utils.NewStats()
	step := func(r model.Renderer) (time.Duration, error) {
		started := time.Now()
		res, err := state.Tick(r)
		if err != nil {
			return 0, err
		}
		recordTick(stats, res, started)
		return res.Delay, nil
	}

	win, err := display.NewWindow(config.Width, config.Height, config.Scale, step, state.HandleInput)
	if err != nil {
		return errors.Wrap(err, "[runWindow] failed to open window")
	}
	if err = win.Run("torus-gol"); err != nil {
		return err
	}
	displayFinalStats(os.Stdout, state, stats)
	return nil
}
