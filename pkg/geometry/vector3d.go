package geometry

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length under which a vector is treated as zero.
const (
	Epsilon = 1e-9
)

// Forward is the model-space heading of an agent mesh. Orientation maps it onto the velocity.
var Forward = mgl64.Vec3{0, 0, -1}

// Up is the world up axis used by cameras and projections.
var Up = mgl64.Vec3{0, 1, 0}

// Format prints a vector with two decimals, like (1.00, 2.00, 3.00).
func Format(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// mgl64.Vec3.Normalize divides by the length and yields NaN for the zero
// vector, every helper below returns the zero vector instead.
// ---------------------------------------------------------------------

// Normalize returns a unit vector in the same direction.
// Returns a zero vector if the length is effectively zero.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon || !IsFinite(v) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampLength scales v down so that its length does not exceed max.
// A non-positive max yields the zero vector.
func ClampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	if max <= 0 {
		return mgl64.Vec3{}
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Mul(max / l)
}

// WithLength returns v rescaled to the given length, or zero if v has no direction.
func WithLength(v mgl64.Vec3, length float64) mgl64.Vec3 {
	return Normalize(v).Mul(length)
}

// Lerp (Linear Interpolate) calculates a point between a and b based on t [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	// Formula: a + (b - a) * t
	return a.Add(b.Sub(a).Mul(t))
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ---------------------------------------------------------------------
// Rotations
// ---------------------------------------------------------------------

// RotateAxisAngle rotates v by angle (radians, right handed) around axis.
// A degenerate axis leaves v unchanged.
func RotateAxisAngle(v, axis mgl64.Vec3, angle float64) mgl64.Vec3 {
	n := Normalize(axis)
	if n.LenSqr() == 0 {
		return v
	}
	return mgl64.QuatRotate(angle, n).Rotate(v)
}

// RotationBetween returns the unit quaternion that maps the direction of from onto the direction of to.
// Degenerate inputs give the identity rotation.
func RotationBetween(from, to mgl64.Vec3) mgl64.Quat {
	f, t := Normalize(from), Normalize(to)
	if f.LenSqr() == 0 || t.LenSqr() == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(f, t).Normalize()
}

// Orientation returns the rotation that turns Forward toward velocity.
func Orientation(velocity mgl64.Vec3) mgl64.Quat {
	return RotationBetween(Forward, velocity)
}

// AngleBetween returns the unsigned angle in radians between a and b.
// ok is false when either vector has no direction.
func AngleBetween(a, b mgl64.Vec3) (angle float64, ok bool) {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return 0, false
	}
	cos := Clamp(a.Dot(b)/(la*lb), -1, 1)
	return math.Acos(cos), true
}

// EulerXYZ builds the rotation of intrinsic X then Y then Z angles (radians),
// matching how scene editors store object rotations.
func EulerXYZ(x, y, z float64) mgl64.Quat {
	qx := mgl64.QuatRotate(x, mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(y, mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(z, mgl64.Vec3{0, 0, 1})
	return qx.Mul(qy).Mul(qz).Normalize()
}

// ---------------------------------------------------------------------
// Randomness
// ---------------------------------------------------------------------

// RandomUnit returns a direction uniformly distributed on the unit sphere.
func RandomUnit(rng *rand.Rand) mgl64.Vec3 {
	for {
		v := mgl64.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		if l := v.Len(); l > 1e-6 {
			return v.Mul(1 / l)
		}
	}
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func Eq(a, b mgl64.Vec3) bool {
	return ApproxEq(a, b, Epsilon)
}

// ApproxEq checks component-wise equality within eps.
func ApproxEq(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps && math.Abs(a[1]-b[1]) <= eps && math.Abs(a[2]-b[2]) <= eps
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
