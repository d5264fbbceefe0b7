package flock

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/obstacle"
)

// Align steers toward the average heading of same-group neighbors.
func (a *Agent) Align(neighbors []*Agent) mgl64.Vec3 {
	var sum mgl64.Vec3
	total := 0
	for _, other := range neighbors {
		if a.IsValidNeighbor(other, false) {
			sum = sum.Add(other.velocity)
			total++
		}
	}
	if total == 0 {
		return mgl64.Vec3{}
	}
	steer := sum.Mul(1 / float64(total)).Sub(a.velocity)
	return geometry.ClampLength(steer, a.maxForce).Mul(a.weights.Align)
}

// Cohere steers toward the centroid of same-group neighbors.
func (a *Agent) Cohere(neighbors []*Agent) mgl64.Vec3 {
	var sum mgl64.Vec3
	total := 0
	for _, other := range neighbors {
		if a.IsValidNeighbor(other, false) {
			sum = sum.Add(other.Position)
			total++
		}
	}
	if total == 0 {
		return mgl64.Vec3{}
	}
	steer := sum.Mul(1 / float64(total)).Sub(a.Position).Sub(a.velocity)
	return geometry.ClampLength(steer, a.maxForce).Mul(a.weights.Cohere)
}

// Separate pushes away from every neighbor regardless of group, harder for closer ones.
// A neighbor sitting exactly on the agent counts but pushes in no direction.
func (a *Agent) Separate(neighbors []*Agent) mgl64.Vec3 {
	var sum mgl64.Vec3
	total := 0
	for _, other := range neighbors {
		if !a.IsValidNeighbor(other, true) {
			continue
		}
		away := a.Position.Sub(other.Position)
		if d := away.Len(); d > geometry.Epsilon {
			sum = sum.Add(away.Mul(1 / (d * d)))
		}
		total++
	}
	if total == 0 {
		return mgl64.Vec3{}
	}
	steer := sum.Mul(1 / float64(total)).Sub(a.velocity)
	return geometry.ClampLength(steer, a.maxForce).Mul(a.weights.Separate)
}

// RandomJitter is a tiny random push that breaks perfectly symmetric configurations.
func (a *Agent) RandomJitter() mgl64.Vec3 {
	return geometry.RandomUnit(a.rng).Mul(a.maxForce / 1000)
}

// AvoidObstacle casts a ray along the heading and, when an obstacle is closer than the
// perception radius, steers along the hit normal turned by AvoidanceTurn. The result is
// not clamped to maxForce so avoidance can override flocking.
func (a *Agent) AvoidObstacle(q obstacle.Query) mgl64.Vec3 {
	if q == nil || a.perceptionRadius <= 0 {
		return mgl64.Vec3{}
	}
	dir := geometry.Normalize(a.velocity)
	if dir.LenSqr() == 0 {
		return mgl64.Vec3{}
	}
	hit, ok := q.NearestHit(a.Position, dir)
	if !ok || hit.Distance < 0 || hit.Distance >= a.perceptionRadius {
		return mgl64.Vec3{}
	}
	normal := geometry.Normalize(hit.Normal)
	if normal.LenSqr() == 0 {
		return mgl64.Vec3{}
	}

	scale := geometry.Clamp(1-hit.Distance/a.perceptionRadius, 0, 1)
	scale *= scale

	cross := normal.Cross(a.velocity)
	turned := geometry.RotateAxisAngle(normal, cross, AvoidanceTurn)
	return turned.Sub(a.velocity).Mul(a.weights.Avoid * scale)
}

// KeepToCenterForce pulls the agent back toward the middle of its bounds. There is no pull
// within a quarter of the shortest half extent from the center and the pull grows
// quadratically beyond it.
func (a *Agent) KeepToCenterForce() mgl64.Vec3 {
	normalizer := a.bounds.ShortestHalfExtent()
	if normalizer <= geometry.Epsilon {
		return mgl64.Vec3{}
	}
	toCenter := a.bounds.Center().Sub(a.Position)
	factor := geometry.Clamp(toCenter.Len()/normalizer-0.25, 0, 1) / 0.75
	factor *= factor
	if factor == 0 {
		return mgl64.Vec3{}
	}
	desired := geometry.WithLength(toCenter, a.maxSpeed)
	steer := geometry.ClampLength(desired.Sub(a.velocity), a.maxForce)
	return steer.Mul(factor * 2 * a.weights.KeepToCenter)
}
