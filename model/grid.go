package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/rules"
)

// Cell is the binary state of a grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// RandSource is the subset of math/rand/v2 the grid needs for seeding
type RandSource interface {
	IntN(n int) int
}

// Event tells the display to paint (X, Y) for the given role
type Event struct {
	X, Y int
	Role rules.Role
}

// Grid is a toroidal board stored row-major in a flat buffer
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewGrid] invalid dimensions %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// NewSeededGrid creates a grid filled from rng
func NewSeededGrid(width, height int, rng RandSource) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	g.Seed(rng)
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Index returns the buffer offset of (x, y) after wrapping
func (g *Grid) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.width + x
}

// Wrap maps any coordinate pair onto the torus
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.width + g.width) % g.width
	y = (y%g.height + g.height) % g.height
	return x, y
}

// Set sets a cell to alive (true) or dead (false); coordinates wrap
func (g *Grid) Set(x, y int, alive bool) {
	if alive {
		g.cells[g.Index(x, y)] = Alive
	} else {
		g.cells[g.Index(x, y)] = Dead
	}
}

// Get returns the state of a cell; coordinates wrap
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.Index(x, y)] == Alive
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// CopyFrom overwrites the receiver with src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CountAliveNeighbors counts the living cells among the 8 wrapped neighbours of (x, y)
func (g *Grid) CountAliveNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + g.height) % g.height
		row := ny * g.width
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.width) % g.width
			if g.cells[row+nx] == Alive {
				count++
			}
		}
	}
	return count
}

// stepRows writes rows [startRow, endRow) of next and returns their paint events
func (g *Grid) stepRows(next *Grid, startRow, endRow int) []Event {
	var events []Event
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			alive, role := rules.Transition(g.CountAliveNeighbors(x, y), g.cells[idx] == Alive)
			if !alive {
				next.cells[idx] = Dead
				continue
			}
			next.cells[idx] = Alive
			events = append(events, Event{X: x, Y: y, Role: role})
		}
	}
	return events
}

// NextGeneration computes the following generation into a fresh grid.
// The receiver is only read. Events come out in row-major order.
func (g *Grid) NextGeneration(pool *GridPool, parallel bool) (*Grid, []Event) {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	}

	if !parallel || g.height < 2 {
		return next, g.stepRows(next, 0, g.height)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
		bands         = make([][]Event, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			bands[i] = g.stepRows(next, startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait()

	var events []Event
	for _, band := range bands {
		events = append(events, band...)
	}
	return next, events
}

// Seed fills every cell independently, alive with probability 0.5
func (g *Grid) Seed(rng RandSource) {
	for i := range g.cells {
		if rng.IntN(2) == 1 {
			g.cells[i] = Alive
		} else {
			g.cells[i] = Dead
		}
	}
}

// AliveEvents returns a Survive event for every living cell, used to paint a grid that was not stepped into
func (g *Grid) AliveEvents() []Event {
	var events []Event
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] == Alive {
				events = append(events, Event{X: x, Y: y, Role: rules.Survive})
			}
		}
	}
	return events
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Density returns the living share of the board in percent
func (g *Grid) Density() float64 {
	return float64(g.CountLivingCells()) / float64(len(g.cells)) * 100
}

// String draws the grid with '#' for alive and '.' for dead, one row per line
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] == Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
