package obstacle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// Sphere is a ball obstacle.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

func (s Sphere) Intersect(origin, direction mgl64.Vec3) (Hit, bool) {
	d := geometry.Normalize(direction)
	if d.LenSqr() == 0 || s.Radius <= 0 {
		return Hit{}, false
	}
	oc := origin.Sub(s.Center)
	b := oc.Dot(d)
	c := oc.Dot(oc) - s.Radius*s.Radius
	if c < 0 {
		// origin inside
		return Hit{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return Hit{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return Hit{}, false
	}
	p := origin.Add(d.Mul(t))
	h := Hit{Point: p, Normal: p.Sub(s.Center).Mul(1 / s.Radius), Distance: t}
	return h, usable(h)
}

func (s Sphere) Bounds() geometry.Box {
	r := math.Abs(s.Radius)
	return geometry.BoxAround(s.Center, mgl64.Vec3{r, r, r})
}
