package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// Tuning is the per-frame input of a Step. Every agent applies it at the start of pass 1.
type Tuning struct {
	Weights          Weights
	MaxSpeedFactor   float64
	MaxForceFactor   float64
	PerceptionRadius float64
	Bounds           geometry.Box
	FieldOfView      bool
	KeepToCenter     bool
}

// DefaultTuning returns the values the flock looks best with in a box of the given bounds.
func DefaultTuning(bounds geometry.Box) Tuning {
	return Tuning{
		Weights: Weights{
			Align:        1,
			Cohere:       2,
			Separate:     3,
			Avoid:        3,
			KeepToCenter: 1,
		},
		MaxSpeedFactor:   2,
		MaxForceFactor:   1,
		PerceptionRadius: 7,
		Bounds:           bounds,
	}
}

// Sanitized replaces NaN values by zero and clamps radius and factors to be non-negative.
func (t Tuning) Sanitized() Tuning {
	t.MaxSpeedFactor = nonNegative(t.MaxSpeedFactor)
	t.MaxForceFactor = nonNegative(t.MaxForceFactor)
	t.PerceptionRadius = nonNegative(t.PerceptionRadius)
	t.Weights.Align = finite(t.Weights.Align)
	t.Weights.Cohere = finite(t.Weights.Cohere)
	t.Weights.Separate = finite(t.Weights.Separate)
	t.Weights.Avoid = finite(t.Weights.Avoid)
	t.Weights.KeepToCenter = finite(t.Weights.KeepToCenter)
	return t
}

func nonNegative(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
