// Package obstacle holds the static scene geometry agents steer around and the
// ray queries the avoidance behavior runs against it.
package obstacle

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// Hit describes the closest intersection of a ray with an obstacle surface.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3 // outward unit normal of the surface that was hit
	Distance float64    // distance from the ray origin along the ray
}

// Query answers "what is the closest obstacle along this ray".
// direction is expected to be a unit vector; ok is false when nothing is hit.
type Query interface {
	NearestHit(origin, direction mgl64.Vec3) (hit Hit, ok bool)
}

// Shape is a single obstacle volume.
type Shape interface {
	// Intersect returns the first front-facing hit along the ray.
	// Rays starting inside the shape do not hit it.
	Intersect(origin, direction mgl64.Vec3) (Hit, bool)
	// Bounds is the axis-aligned box enclosing the shape.
	Bounds() geometry.Box
}

// None is a Query with no obstacles at all.
type None struct{}

func (None) NearestHit(mgl64.Vec3, mgl64.Vec3) (Hit, bool) { return Hit{}, false }

// usable rejects hits the steering code cannot work with.
func usable(h Hit) bool {
	return h.Distance >= 0 && geometry.IsFinite(h.Normal) && h.Normal.Len() > geometry.Epsilon
}
