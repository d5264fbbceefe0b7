// Package spatial provides neighbor candidate indexes that can replace the
// default linear scan of a flock.World without changing its results.
package spatial

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
)

// MinCellSize keeps the grid from degenerating into tiny cells (or a div by zero) when the
// perception radius is very small.
const MinCellSize = 1.0

type gridKey struct {
	x, y, z int
}

// Grid is a spatial hash with cubic cells at least as large as the perception radius,
// so scanning the 3x3x3 cells around an agent covers every possible neighbor.
type Grid struct {
	cells    map[gridKey][]*flock.Agent
	cellSize float64
}

var _ flock.Neighborhood = (*Grid)(nil)

func NewGrid() *Grid {
	return &Grid{
		cells:    make(map[gridKey][]*flock.Agent),
		cellSize: MinCellSize,
	}
}

// CellSize is the edge of a cell since the last Rebuild.
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) Rebuild(agents []*flock.Agent, radius float64) {
	// 1. Reset slices to length 0, but keep capacity! it's better then clear(g.cells)
	// This allows to reuse the underlying arrays of the slices,
	// reducing memory allocation to almost zero during runtime.
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}

	g.cellSize = math.Max(radius, MinCellSize)
	for _, a := range agents {
		key := g.keyOf(a)
		// append will reuse the existing array capacity if available
		g.cells[key] = append(g.cells[key], a)
	}
}

// Candidates retrieves all the agents in the cells located in and around a (3x3x3 cells).
func (g *Grid) Candidates(a *flock.Agent) []*flock.Agent {
	c := g.keyOf(a)
	var neighbors []*flock.Agent

	for i := c.x - 1; i <= c.x+1; i++ {
		for j := c.y - 1; j <= c.y+1; j++ {
			for k := c.z - 1; k <= c.z+1; k++ {
				if agents, ok := g.cells[gridKey{x: i, y: j, z: k}]; ok {
					neighbors = append(neighbors, agents...)
				}
			}
		}
	}
	return neighbors
}

func (g *Grid) keyOf(a *flock.Agent) gridKey {
	p := a.Position
	return gridKey{
		x: int(math.Floor(p[0] / g.cellSize)),
		y: int(math.Floor(p[1] / g.cellSize)),
		z: int(math.Floor(p[2] / g.cellSize)),
	}
}
