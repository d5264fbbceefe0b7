package obstacle

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// indexed wraps a Shape so the r-tree can store it.
type indexed struct {
	shape Shape
	rect  rtreego.Rect
}

func (i *indexed) Bounds() rtreego.Rect { return i.rect }

// Set is a static collection of shapes with an r-tree broad phase.
// It is built once and only read afterward, so concurrent queries are safe.
type Set struct {
	shapes []*indexed
	tree   *rtreego.Rtree
}

// NewSet indexes the given shapes. Shapes with empty bounds are still kept for brute-force queries.
func NewSet(shapes ...Shape) *Set {
	s := &Set{shapes: make([]*indexed, 0, len(shapes))}
	spatials := make([]rtreego.Spatial, 0, len(shapes))
	for _, sh := range shapes {
		it := &indexed{shape: sh}
		if r, err := toRect(sh.Bounds()); err == nil {
			it.rect = r
			spatials = append(spatials, it)
		}
		s.shapes = append(s.shapes, it)
	}
	s.tree = rtreego.NewTree(3, 4, 16, spatials...)
	return s
}

// Len is the number of shapes in the set.
func (s *Set) Len() int { return len(s.shapes) }

// Shapes returns the shapes in insertion order.
func (s *Set) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	for i, it := range s.shapes {
		out[i] = it.shape
	}
	return out
}

// NearestHit tests every shape. Prefer Within when only close hits matter.
func (s *Set) NearestHit(origin, direction mgl64.Vec3) (Hit, bool) {
	return s.nearest(origin, direction, s.shapes, math.Inf(1))
}

// Within returns a Query that only reports hits closer than horizon, using the r-tree
// to skip shapes far from the ray segment.
func (s *Set) Within(horizon float64) Query {
	if horizon <= 0 || math.IsInf(horizon, 0) || math.IsNaN(horizon) {
		return s
	}
	return bounded{set: s, horizon: horizon}
}

func (s *Set) nearest(origin, direction mgl64.Vec3, candidates []*indexed, maxDist float64) (Hit, bool) {
	best, found := Hit{Distance: maxDist}, false
	for _, it := range candidates {
		h, ok := it.shape.Intersect(origin, direction)
		if !ok || h.Distance >= best.Distance {
			continue
		}
		best, found = h, true
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}

type bounded struct {
	set     *Set
	horizon float64
}

func (b bounded) NearestHit(origin, direction mgl64.Vec3) (Hit, bool) {
	d := geometry.Normalize(direction)
	end := origin.Add(d.Mul(b.horizon))
	segment := geometry.Box{
		Start: mgl64.Vec3{math.Min(origin[0], end[0]), math.Min(origin[1], end[1]), math.Min(origin[2], end[2])},
		End:   mgl64.Vec3{math.Max(origin[0], end[0]), math.Max(origin[1], end[1]), math.Max(origin[2], end[2])},
	}
	rect, err := toRect(segment)
	if err != nil {
		return b.set.nearest(origin, direction, b.set.shapes, b.horizon)
	}
	found := b.set.tree.SearchIntersect(rect)
	candidates := make([]*indexed, 0, len(found))
	for _, sp := range found {
		candidates = append(candidates, sp.(*indexed))
	}
	return b.set.nearest(origin, direction, candidates, b.horizon)
}

// toRect converts a box into an r-tree rectangle, padding flat axes since rtreego
// refuses zero lengths.
func toRect(box geometry.Box) (rtreego.Rect, error) {
	size := box.Size()
	lengths := make([]float64, 3)
	start := make(rtreego.Point, 3)
	for i := 0; i < 3; i++ {
		lengths[i] = math.Max(size[i], 1e-6)
		start[i] = box.Start[i]
	}
	return rtreego.NewRect(start, lengths)
}
