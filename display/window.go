//go:build ebiten

package display

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/input"
	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/palette"
)

// StepFunc advances the simulation one tick onto r and returns the delay before the next tick
type StepFunc func(r model.Renderer) (time.Duration, error)

var windowKeys = map[ebiten.Key]input.Event{
	ebiten.KeyEqual:        input.BrightnessUp,
	ebiten.KeyArrowUp:      input.BrightnessUp,
	ebiten.KeyMinus:        input.BrightnessDown,
	ebiten.KeyArrowDown:    input.BrightnessDown,
	ebiten.KeyA:            input.ReseedRequested,
	ebiten.KeyB:            input.RandomizeColor,
	ebiten.KeyBracketRight: input.SpeedUp,
	ebiten.KeyArrowRight:   input.SpeedUp,
	ebiten.KeyBracketLeft:  input.SpeedDown,
	ebiten.KeyArrowLeft:    input.SpeedDown,
}

// Window is an ebiten-backed display that also drives the tick loop
type Window struct {
	width, height int
	scale         int
	back, front   []byte // RGBA
	brightness    float64

	step   StepFunc
	handle func(input.Event)

	delay    time.Duration
	lastTick time.Time
}

// NewWindow creates a window display that calls step at the cadence it requests
func NewWindow(width, height, scale int, step StepFunc, handle func(input.Event)) (*Window, error) {
	if scale <= 0 {
		scale = 1
	}
	return &Window{
		width:      width,
		height:     height,
		scale:      scale,
		back:       make([]byte, width*height*4),
		front:      make([]byte, width*height*4),
		brightness: 1,
		step:       step,
		handle:     handle,
	}, nil
}

// Run blocks until the window is closed
func (w *Window) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Window.Run] game loop failed")
	}
	return nil
}

// Update handles input and ticks the simulation when the requested delay has passed
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, ev := range windowKeys {
		if inpututil.IsKeyJustPressed(key) {
			w.handle(ev)
		}
	}

	now := time.Now()
	if !w.lastTick.IsZero() && now.Sub(w.lastTick) < w.delay {
		return nil
	}
	delay, err := w.step(w)
	if err != nil {
		return err
	}
	w.delay = delay
	w.lastTick = now
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.front)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

func (w *Window) Clear() {
	for i := 0; i < len(w.back); i += 4 {
		w.back[i], w.back[i+1], w.back[i+2], w.back[i+3] = 0, 0, 0, 0xff
	}
}

func (w *Window) SetPixel(x, y int, c palette.RGB) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return
	}
	c = palette.DimByPercent(c, dimPercent(w.brightness))
	base := (y*w.width + x) * 4
	w.back[base+0] = c.R
	w.back[base+1] = c.G
	w.back[base+2] = c.B
	w.back[base+3] = 0xff
}

func (w *Window) SetBrightness(level float64) {
	w.brightness = level
}

func (w *Window) Present() error {
	copy(w.front, w.back)
	return nil
}
