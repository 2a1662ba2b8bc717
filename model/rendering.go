package model

import (
	"github.com/sheikhrachel/torus-gol/palette"
	"github.com/sheikhrachel/torus-gol/rules"
)

// Renderer is the pixel sink a frame is painted onto
type Renderer interface {
	// Clear blanks the back buffer to black
	Clear()
	// SetPixel paints one cell
	SetPixel(x, y int, c palette.RGB)
	// SetBrightness sets the output brightness in [0, 1]
	SetBrightness(level float64)
	// Present flushes the back buffer to the output
	Present() error
}

// Frame is everything a renderer needs for one tick
type Frame struct {
	Events     []Event
	AliveColor palette.RGB
	BirthColor palette.RGB
	Brightness float64
}

// PaintFrame clears r, paints every event with its role colour and presents the result
func PaintFrame(r Renderer, f Frame) error {
	r.SetBrightness(f.Brightness)
	r.Clear()
	for _, ev := range f.Events {
		switch ev.Role {
		case rules.Birth:
			r.SetPixel(ev.X, ev.Y, f.BirthColor)
		case rules.Survive:
			r.SetPixel(ev.X, ev.Y, f.AliveColor)
		}
	}
	return r.Present()
}
