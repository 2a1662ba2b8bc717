//go:build !ebiten

package display

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/input"
	"github.com/sheikhrachel/torus-gol/model"
)

// StepFunc advances the simulation one tick onto r and returns the delay before the next tick
type StepFunc func(r model.Renderer) (time.Duration, error)

// ErrNoWindow is returned when the binary was built without the ebiten tag
var ErrNoWindow = errors.New("window display requires building with the 'ebiten' tag")

// Window is a placeholder that satisfies the API expected by the GUI build.
type Window struct{}

// NewWindow always fails in the headless build.
func NewWindow(int, int, int, StepFunc, func(input.Event)) (*Window, error) {
	return nil, ErrNoWindow
}

// Run always reports that the GUI build tag is missing.
func (w *Window) Run(string) error {
	return ErrNoWindow
}
