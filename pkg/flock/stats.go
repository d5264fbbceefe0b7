package flock

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// Stats summarizes the state of a world, mostly for logs and the headless runner.
type Stats struct {
	Agents        int
	MeanSpeed     float64
	MaxSpeedError float64 // largest | |velocity| - maxSpeed |
	Polarization  float64 // length of the mean heading, 1 when everyone flies the same way
	MeanNeighbors float64
	OutOfBounds   int // agents further than one step outside their bounds
}

// Measure computes Stats with a full O(N²) neighbor count.
func Measure(w *World) Stats {
	agents := w.Agents()
	s := Stats{Agents: len(agents)}
	if len(agents) == 0 {
		return s
	}

	var headings mgl64.Vec3
	neighbors := 0
	for _, a := range agents {
		speed := a.velocity.Len()
		s.MeanSpeed += speed
		s.MaxSpeedError = math.Max(s.MaxSpeedError, math.Abs(speed-a.maxSpeed))
		headings = headings.Add(geometry.Normalize(a.velocity))

		margin := mgl64.Vec3{a.maxSpeed, a.maxSpeed, a.maxSpeed}
		grown := geometry.Box{Start: a.bounds.Start.Sub(margin), End: a.bounds.End.Add(margin)}
		if !grown.Contains(a.Position) {
			s.OutOfBounds++
		}

		for _, other := range agents {
			if a.IsValidNeighbor(other, true) {
				neighbors++
			}
		}
	}
	n := float64(len(agents))
	s.MeanSpeed /= n
	s.Polarization = headings.Len() / n
	s.MeanNeighbors = float64(neighbors) / n
	return s
}
