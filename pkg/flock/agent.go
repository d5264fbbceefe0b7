// Package flock implements the boids engine: per-agent state, the steering
// behaviors (align, cohere, separate, obstacle avoidance, keep to center,
// jitter), the neighbor selection policy and the two-pass world step.
package flock

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/obstacle"
)

const (
	// BaseMaxSpeed is the speed limit before the tuning speed factor is applied.
	BaseMaxSpeed = 0.1
	// BaseMaxForce is the steering force limit before the tuning force factor is applied.
	BaseMaxForce = 0.008
	// DefaultPerceptionRadius is used until a Tuning is applied.
	DefaultPerceptionRadius = 5.0
	// FieldOfViewHalfAngle is the half-angle of the bearing cone used by the field-of-view filter.
	FieldOfViewHalfAngle = math.Pi / 4
	// SmoothingFactor is the lerp factor pulling the smoothed velocity toward the velocity each frame.
	SmoothingFactor = 0.9
	// AvoidanceTurn is the angle the hit normal is rotated by when steering away from an obstacle.
	AvoidanceTurn = math.Pi / 6
)

// Weights scale the contribution of each steering behavior.
type Weights struct {
	Align        float64
	Cohere       float64
	Separate     float64
	Avoid        float64
	KeepToCenter float64
}

// Agent is one boid. Position is public, the rest of the motion state only changes
// through Step (or SetVelocity for callers placing agents by hand).
type Agent struct {
	ID       uuid.UUID
	Group    string // empty means untagged
	Position mgl64.Vec3

	velocity         mgl64.Vec3
	smoothedVelocity mgl64.Vec3
	acceleration     mgl64.Vec3

	perceptionRadius float64
	fieldOfView      bool
	keepToCenter     bool
	weights          Weights
	maxSpeed         float64
	maxForce         float64
	bounds           geometry.Box

	rng *rand.Rand
}

// NewAgent creates an agent heading in a random direction at BaseMaxSpeed.
// The caller places it by setting Position. rng drives the initial heading and the
// per-frame jitter; nil gets a randomly seeded source.
func NewAgent(bounds geometry.Box, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	v := geometry.RandomUnit(rng).Mul(BaseMaxSpeed)
	return &Agent{
		ID:               uuid.New(),
		velocity:         v,
		smoothedVelocity: v,
		perceptionRadius: DefaultPerceptionRadius,
		weights:          Weights{Align: 1, Cohere: 1, Separate: 1, Avoid: 1, KeepToCenter: 1},
		maxSpeed:         BaseMaxSpeed,
		maxForce:         BaseMaxForce,
		bounds:           bounds,
		rng:              rng,
	}
}

func (a *Agent) Velocity() mgl64.Vec3         { return a.velocity }
func (a *Agent) SmoothedVelocity() mgl64.Vec3 { return a.smoothedVelocity }
func (a *Agent) Acceleration() mgl64.Vec3     { return a.acceleration }
func (a *Agent) PerceptionRadius() float64    { return a.perceptionRadius }
func (a *Agent) MaxSpeed() float64            { return a.maxSpeed }
func (a *Agent) MaxForce() float64            { return a.maxForce }
func (a *Agent) Weights() Weights             { return a.weights }
func (a *Agent) Bounds() geometry.Box         { return a.bounds }
func (a *Agent) FieldOfView() bool            { return a.fieldOfView }
func (a *Agent) KeepToCenter() bool           { return a.keepToCenter }

// SetVelocity overrides both the velocity and the smoothed velocity.
func (a *Agent) SetVelocity(v mgl64.Vec3) {
	a.velocity = v
	a.smoothedVelocity = v
}

// Orientation is the rotation mapping geometry.Forward onto the heading.
func (a *Agent) Orientation() mgl64.Quat {
	return geometry.Orientation(a.velocity)
}

// Apply copies the per-frame tuning onto the agent. Limits are recomputed from the base
// values every time, never accumulated.
func (a *Agent) Apply(t Tuning) {
	t = t.Sanitized()
	a.weights = t.Weights
	a.maxSpeed = BaseMaxSpeed * t.MaxSpeedFactor
	a.maxForce = BaseMaxForce * t.MaxForceFactor
	a.perceptionRadius = t.PerceptionRadius
	a.bounds = t.Bounds
	a.fieldOfView = t.FieldOfView
	a.keepToCenter = t.KeepToCenter
}

// Accumulate adds every steering force for this frame into the acceleration.
func (a *Agent) Accumulate(neighbors []*Agent, q obstacle.Query) {
	acc := a.acceleration.
		Add(a.Separate(neighbors)).
		Add(a.Align(neighbors)).
		Add(a.Cohere(neighbors)).
		Add(a.AvoidObstacle(q)).
		Add(a.RandomJitter())
	if a.keepToCenter {
		acc = acc.Add(a.KeepToCenterForce())
	}
	a.acceleration = acc
}

// Integrate advances the agent by one frame: move by the smoothed velocity, apply and
// clear the acceleration, renormalize to maxSpeed and smooth.
func (a *Agent) Integrate() {
	a.Position = a.Position.Add(a.smoothedVelocity)

	heading := geometry.Normalize(a.velocity.Add(a.acceleration))
	if heading.LenSqr() == 0 {
		// cancelled out or non-finite: keep flying the same way
		heading = geometry.Normalize(a.velocity)
		if heading.LenSqr() == 0 {
			heading = geometry.Forward
		}
	}
	a.acceleration = mgl64.Vec3{}
	a.velocity = heading.Mul(a.maxSpeed)
	a.smoothedVelocity = geometry.Lerp(a.smoothedVelocity, a.velocity, SmoothingFactor)
}
