package geometry

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned volume given by its minimum (Start) and maximum (End) corners.
type Box struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// NewCube returns the cube of the given half extent centered on the origin.
func NewCube(halfExtent float64) Box {
	h := math.Abs(halfExtent)
	return Box{
		Start: mgl64.Vec3{-h, -h, -h},
		End:   mgl64.Vec3{h, h, h},
	}
}

// BoxAround returns the box centered on center with the given half extents.
func BoxAround(center, halfExtents mgl64.Vec3) Box {
	return Box{Start: center.Sub(halfExtents), End: center.Add(halfExtents)}
}

func (b Box) String() string {
	return fmt.Sprintf("[%s .. %s]", Format(b.Start), Format(b.End))
}

// Center of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Start.Add(b.End).Mul(0.5)
}

// Size is the edge length along each axis.
func (b Box) Size() mgl64.Vec3 {
	return b.End.Sub(b.Start)
}

// HalfExtents is half the size.
func (b Box) HalfExtents() mgl64.Vec3 {
	return b.Size().Mul(0.5)
}

// ShortestHalfExtent is the distance from the center to the closest face.
func (b Box) ShortestHalfExtent() float64 {
	h := b.HalfExtents()
	return math.Min(h[0], math.Min(h[1], h[2]))
}

// Valid reports whether Start <= End on every axis.
func (b Box) Valid() bool {
	for i := 0; i < 3; i++ {
		if b.Start[i] > b.End[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the box, faces included.
func (b Box) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Start[i] || p[i] > b.End[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether the two boxes intersect.
func (b Box) Overlaps(o Box) bool {
	for i := 0; i < 3; i++ {
		if b.End[i] < o.Start[i] || o.End[i] < b.Start[i] {
			return false
		}
	}
	return true
}

// Scale returns the box scaled by f around its center.
func (b Box) Scale(f float64) Box {
	return BoxAround(b.Center(), b.HalfExtents().Mul(f))
}

// RandomPoint returns a point uniformly distributed inside the box.
func (b Box) RandomPoint(rng *rand.Rand) mgl64.Vec3 {
	s := b.Size()
	return mgl64.Vec3{
		b.Start[0] + rng.Float64()*s[0],
		b.Start[1] + rng.Float64()*s[1],
		b.Start[2] + rng.Float64()*s[2],
	}
}
