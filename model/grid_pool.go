package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles next-generation buffers between ticks
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool sized to width x height. Cell contents are unspecified.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.width = width
	g.height = height
	if cap(g.cells) < width*height {
		g.cells = make([]Cell, width*height)
	}
	g.cells = g.cells[:width*height]
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
