package spatial

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
)

// pointTolerance is the edge of the tiny box an agent occupies in the tree.
const pointTolerance = 1e-6

type entry struct {
	agent *flock.Agent
	rect  rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect { return e.rect }

// RTree bulk-loads the population into an r-tree every frame and answers candidate
// queries with the cube enclosing the perception sphere.
type RTree struct {
	tree    *rtreego.Rtree
	entries []entry
	radius  float64
}

var _ flock.Neighborhood = (*RTree)(nil)

func NewRTree() *RTree {
	return &RTree{tree: rtreego.NewTree(3, 25, 50)}
}

// Len is the number of agents indexed by the last Rebuild.
func (r *RTree) Len() int { return r.tree.Size() }

func (r *RTree) Rebuild(agents []*flock.Agent, radius float64) {
	r.radius = radius
	if cap(r.entries) < len(agents) {
		r.entries = make([]entry, len(agents))
	}
	r.entries = r.entries[:len(agents)]

	spatials := make([]rtreego.Spatial, len(agents))
	for i, a := range agents {
		p := a.Position
		r.entries[i] = entry{agent: a, rect: rtreego.Point{p[0], p[1], p[2]}.ToRect(pointTolerance)}
		spatials[i] = &r.entries[i]
	}
	r.tree = rtreego.NewTree(3, 25, 50, spatials...)
}

func (r *RTree) Candidates(a *flock.Agent) []*flock.Agent {
	side := math.Max(2*r.radius, pointTolerance)
	p := a.Position
	query, err := rtreego.NewRect(
		rtreego.Point{p[0] - side/2, p[1] - side/2, p[2] - side/2},
		[]float64{side, side, side},
	)
	if err != nil {
		return nil
	}
	found := r.tree.SearchIntersect(query)
	out := make([]*flock.Agent, len(found))
	for i, s := range found {
		out[i] = s.(*entry).agent
	}
	return out
}
