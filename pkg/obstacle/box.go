package obstacle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// Box is an oriented box obstacle. Size is the full edge length along each local axis,
// Rotation turns local axes into world axes (the zero value is treated as identity).
type Box struct {
	Center   mgl64.Vec3
	Size     mgl64.Vec3
	Rotation mgl64.Quat
}

// NewBox builds a box rotated by the given XYZ euler angles in degrees.
func NewBox(center, size mgl64.Vec3, rotXDeg, rotYDeg, rotZDeg float64) Box {
	return Box{
		Center: center,
		Size:   size,
		Rotation: geometry.EulerXYZ(
			mgl64.DegToRad(rotXDeg),
			mgl64.DegToRad(rotYDeg),
			mgl64.DegToRad(rotZDeg),
		),
	}
}

func (b Box) rotation() mgl64.Quat {
	if b.Rotation.W == 0 && b.Rotation.V.LenSqr() == 0 {
		return mgl64.QuatIdent()
	}
	return b.Rotation.Normalize()
}

// Intersect uses the slab method in the box's local frame.
func (b Box) Intersect(origin, direction mgl64.Vec3) (Hit, bool) {
	d := geometry.Normalize(direction)
	if d.LenSqr() == 0 {
		return Hit{}, false
	}
	q := b.rotation()
	inv := q.Conjugate()
	lo := inv.Rotate(origin.Sub(b.Center))
	ld := inv.Rotate(d)
	half := b.Size.Mul(0.5)

	tNear, tFar := math.Inf(-1), math.Inf(1)
	axis, sign := -1, 0.0
	for i := 0; i < 3; i++ {
		if math.Abs(ld[i]) < geometry.Epsilon {
			if lo[i] < -half[i] || lo[i] > half[i] {
				return Hit{}, false
			}
			continue
		}
		t1 := (-half[i] - lo[i]) / ld[i]
		t2 := (half[i] - lo[i]) / ld[i]
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tNear {
			tNear, axis, sign = t1, i, s
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return Hit{}, false
		}
	}
	// tNear < 0 means the origin is inside or the box is behind
	if axis < 0 || tNear < 0 {
		return Hit{}, false
	}

	var n mgl64.Vec3
	n[axis] = sign
	h := Hit{
		Point:    origin.Add(d.Mul(tNear)),
		Normal:   q.Rotate(n),
		Distance: tNear,
	}
	return h, usable(h)
}

func (b Box) Bounds() geometry.Box {
	q := b.rotation()
	half := b.Size.Mul(0.5)
	ex := q.Rotate(mgl64.Vec3{half[0], 0, 0})
	ey := q.Rotate(mgl64.Vec3{0, half[1], 0})
	ez := q.Rotate(mgl64.Vec3{0, 0, half[2]})
	var extent mgl64.Vec3
	for i := 0; i < 3; i++ {
		extent[i] = math.Abs(ex[i]) + math.Abs(ey[i]) + math.Abs(ez[i])
	}
	return geometry.BoxAround(b.Center, extent)
}

// Walls returns six slabs of the given thickness lining the outside of bounds.
func Walls(bounds geometry.Box, thickness float64) []Shape {
	c := bounds.Center()
	h := bounds.HalfExtents()
	t := math.Max(thickness, geometry.Epsilon)
	size := bounds.Size()
	walls := make([]Shape, 0, 6)
	for axis := 0; axis < 3; axis++ {
		for _, side := range []float64{-1, 1} {
			center := c
			center[axis] += side * (h[axis] + t/2)
			s := size.Add(mgl64.Vec3{2 * t, 2 * t, 2 * t})
			s[axis] = t
			walls = append(walls, Box{Center: center, Size: s, Rotation: mgl64.QuatIdent()})
		}
	}
	return walls
}
