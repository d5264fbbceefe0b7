package flock

import "github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"

// IsValidNeighbor decides whether other influences a. Checks run cheapest first:
// identity, distance, group tag (skipped when ignoreGroup), then the field-of-view bearing.
//
// With the field of view enabled, a neighbor whose bearing lies within
// FieldOfViewHalfAngle of the heading is rejected, and only those outside the cone count.
func (a *Agent) IsValidNeighbor(other *Agent, ignoreGroup bool) bool {
	if other == nil || other == a {
		return false
	}
	offset := other.Position.Sub(a.Position)
	if offset.Len() >= a.perceptionRadius {
		return false
	}
	if !ignoreGroup && a.Group != "" && other.Group != "" && a.Group != other.Group {
		return false
	}
	if a.fieldOfView {
		if angle, ok := geometry.AngleBetween(a.velocity, offset); ok && angle < FieldOfViewHalfAngle {
			return false
		}
	}
	return true
}

// Neighborhood supplies candidate neighbors. Rebuild is called once per frame with the
// start-of-frame positions, then Candidates may be called concurrently for every agent.
// Candidates must include every agent closer than radius; IsValidNeighbor does the exact filtering.
type Neighborhood interface {
	Rebuild(agents []*Agent, radius float64)
	Candidates(a *Agent) []*Agent
}

// LinearScan hands the whole population to every agent, O(N) per query.
type LinearScan struct {
	agents []*Agent
}

func (l *LinearScan) Rebuild(agents []*Agent, _ float64) { l.agents = agents }

func (l *LinearScan) Candidates(*Agent) []*Agent { return l.agents }
