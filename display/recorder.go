// Package display provides the pixel sinks the simulation paints onto.
package display

import (
	"github.com/sheikhrachel/torus-gol/palette"
)

// Recorder is an in-memory display. It keeps the last presented frame and counts presents.
type Recorder struct {
	width, height int
	back, front   []palette.RGB
	brightness    float64
	frames        int
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		back:       make([]palette.RGB, width*height),
		front:      make([]palette.RGB, width*height),
		brightness: 1,
	}
}

func (r *Recorder) Clear() {
	clear(r.back)
}

// SetPixel ignores coordinates outside the display
func (r *Recorder) SetPixel(x, y int, c palette.RGB) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.back[y*r.width+x] = c
}

func (r *Recorder) SetBrightness(level float64) {
	r.brightness = level
}

func (r *Recorder) Present() error {
	copy(r.front, r.back)
	r.frames++
	return nil
}

// Pixel returns the presented colour at (x, y)
func (r *Recorder) Pixel(x, y int) palette.RGB {
	return r.front[y*r.width+x]
}

// Lit counts presented pixels that are not black
func (r *Recorder) Lit() int {
	n := 0
	for _, c := range r.front {
		if c != palette.Black {
			n++
		}
	}
	return n
}

func (r *Recorder) Frames() int { return r.frames }

func (r *Recorder) Brightness() float64 { return r.brightness }
