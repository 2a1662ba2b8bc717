package display

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/palette"
)

const (
	gridPosBlock = '█'
	cellColumns  = 2 // each pixel is two terminal columns wide so cells look square
)

var blank = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)

// Terminal paints pixels as coloured blocks on a tcell screen, with a status line under the grid
type Terminal struct {
	screen        tcell.Screen
	width, height int
	brightness    float64
	status        string
}

// NewTerminal wraps an initialised screen
func NewTerminal(screen tcell.Screen, width, height int) *Terminal {
	return &Terminal{
		screen:     screen,
		width:      width,
		height:     height,
		brightness: 1,
	}
}

// OpenTerminal creates and initialises the default terminal screen
func OpenTerminal(width, height int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[OpenTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[OpenTerminal] failed to init screen")
	}
	screen.HideCursor()
	return NewTerminal(screen, width, height), nil
}

// Screen exposes the tcell screen so the host can poll its input
func (t *Terminal) Screen() tcell.Screen { return t.screen }

func (t *Terminal) Clear() {
	t.screen.Fill(' ', blank)
}

func (t *Terminal) SetPixel(x, y int, c palette.RGB) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	c = palette.DimByPercent(c, dimPercent(t.brightness))
	style := blank.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for col := range cellColumns {
		t.screen.SetContent(x*cellColumns+col, y, gridPosBlock, nil, style)
	}
}

func (t *Terminal) SetBrightness(level float64) {
	t.brightness = level
}

// SetStatus sets the text drawn below the grid on the next Present
func (t *Terminal) SetStatus(s string) {
	t.status = s
}

func (t *Terminal) Present() error {
	style := tcell.StyleDefault
	col := 0
	for _, r := range t.status {
		t.screen.SetContent(col, t.height, r, nil, style)
		col++
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// dimPercent converts a [0, 1] brightness into the percentage to dim by
func dimPercent(brightness float64) int {
	return 100 - int(math.Round(min(max(brightness, 0), 1)*100))
}
