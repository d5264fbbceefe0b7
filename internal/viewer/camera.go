package viewer

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

const (
	// FollowLerp is how much of the gap to the followed agent the camera closes every frame.
	FollowLerp = 0.01
	// SwitchEvery is the number of frames before the camera picks another agent.
	SwitchEvery = 1000
)

// Camera is a perspective camera that either trails one agent or orbits the origin.
type Camera struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FovY     float64 // degrees
	Near     float64
	Far      float64
	Free     bool

	// orbit used while Free
	Yaw, Pitch, Distance float64

	target int
	frames int
	rng    *rand.Rand
}

func NewCamera(distance float64, rng *rand.Rand) *Camera {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Camera{
		FovY:     60,
		Near:     0.1,
		Far:      distance * 10,
		Pitch:    0.35,
		Distance: distance,
		rng:      rng,
	}
}

// Target is the index of the followed agent.
func (c *Camera) Target() int { return c.target }

// Follow moves the trailing camera toward the agent at index Target, then counts the frame
// and picks a new random target among count agents every SwitchEvery frames.
func (c *Camera) Follow(position, velocity mgl64.Vec3, count int) {
	c.Position = geometry.Lerp(c.Position, position, FollowLerp)
	c.LookAt = geometry.Lerp(c.LookAt, position.Add(velocity), FollowLerp)

	c.frames++
	if c.frames%SwitchEvery == 0 {
		c.frames = 0
		if count > 0 {
			c.target = c.rng.IntN(count)
		}
	}
}

// Orbit turns the free camera and recomputes its position around the origin.
func (c *Camera) Orbit(dYaw, dPitch, dDistance float64) {
	c.Yaw += dYaw
	c.Pitch = max(-1.5, min(1.5, c.Pitch+dPitch))
	c.Distance = max(1, c.Distance+dDistance)
}

// eye returns the position and look-at point used for rendering.
func (c *Camera) eye() (mgl64.Vec3, mgl64.Vec3) {
	if !c.Free {
		return c.Position, c.LookAt
	}
	cp := math.Cos(c.Pitch)
	pos := mgl64.Vec3{
		c.Distance * cp * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Cos(c.Yaw),
	}
	return pos, mgl64.Vec3{}
}

// ViewProjection is the matrix taking world coordinates to clip space.
func (c *Camera) ViewProjection(width, height int) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	pos, at := c.eye()
	if pos.ApproxEqual(at) {
		// looking at itself, nudge the eye back so LookAt stays defined
		pos = at.Sub(geometry.Forward)
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	up := geometry.Up
	if math.Abs(geometry.Normalize(at.Sub(pos)).Dot(up)) > 0.999 {
		up = geometry.Forward
	}
	view := mgl64.LookAtV(pos, at, up)
	return proj.Mul4(view)
}

// Projector maps world points onto a screen of a given size.
type Projector struct {
	vp            mgl64.Mat4
	focal         float64
	width, height float64
}

func (c *Camera) Projector(width, height int) Projector {
	return Projector{
		vp:     c.ViewProjection(width, height),
		focal:  1 / math.Tan(mgl64.DegToRad(c.FovY)/2),
		width:  float64(width),
		height: float64(height),
	}
}

// Project returns the screen coordinates of p and its depth in [0,1], ok is false when p
// is behind the camera or outside the depth range.
func (pr Projector) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := pr.vp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	if ndc[2] < -1 || ndc[2] > 1 {
		return 0, 0, 0, false
	}
	x = (ndc[0] + 1) / 2 * pr.width
	y = (1 - ndc[1]) / 2 * pr.height
	return x, y, (ndc[2] + 1) / 2, true
}

// Scale is the number of pixels a world length l spans at p, used for spheres and agent size.
func (pr Projector) Scale(p mgl64.Vec3, l float64) float64 {
	clip := pr.vp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0
	}
	return l * pr.focal / clip[3] * pr.height / 2
}
