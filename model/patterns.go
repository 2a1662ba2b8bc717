package model

// Pattern is a small set of live offsets stamped onto a grid
type Pattern [][2]int

var (
	// Blinker is the horizontal phase of the period-2 oscillator
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}

	// Glider travels one cell diagonally every four generations
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	// Block is a 2x2 still life
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// Stamp sets the cells of p alive with its origin at (startX, startY), wrapping at the edges
func (g *Grid) Stamp(p Pattern, startX, startY int) {
	for _, off := range p {
		g.Set(startX+off[0], startY+off[1], true)
	}
}

// FromRows builds a grid from text rows where '#' is alive and anything else dead.
// All rows must have the same length.
func FromRows(rows ...string) (*Grid, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			if row[x] == '#' {
				g.cells[y*width+x] = Alive
			}
		}
	}
	return g, nil
}
