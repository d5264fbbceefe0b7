package simulation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/obstacle"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/spatial"
)

// WallThickness is the depth of the six slabs enclosing the bounds when walls are enabled.
const WallThickness = 2.0

// Bounds is the cube agents fly in.
func (c *Config) Bounds() geometry.Box {
	return geometry.NewCube(c.BoundsHalfExtent)
}

// TuningFromConfig converts the tuning section into the per-frame flock.Tuning.
func TuningFromConfig(c *Config) flock.Tuning {
	t := c.Tuning
	return flock.Tuning{
		Weights: flock.Weights{
			Align:        t.AlignWeight,
			Cohere:       t.CohereWeight,
			Separate:     t.SeparateWeight,
			Avoid:        t.AvoidWeight,
			KeepToCenter: t.KeepToCenterWeight,
		},
		MaxSpeedFactor:   t.MaxSpeedFactor,
		MaxForceFactor:   t.MaxForceFactor,
		PerceptionRadius: t.PerceptionRadius,
		Bounds:           c.Bounds(),
		FieldOfView:      t.FieldOfView,
		KeepToCenter:     t.KeepToCenter,
	}
}

// NewNeighborhood returns the candidate index named by kind.
func NewNeighborhood(kind string) (flock.Neighborhood, error) {
	switch kind {
	case NeighborhoodLinear, "":
		return &flock.LinearScan{}, nil
	case NeighborhoodGrid:
		return spatial.NewGrid(), nil
	case NeighborhoodRTree:
		return spatial.NewRTree(), nil
	}
	return nil, fmt.Errorf("%w: unknown neighborhood %q", ErrInvalidConfig, kind)
}

// NewWorld spawns the configured population. A non-zero seed overrides the configured one.
func NewWorld(c *Config, seed uint64) (*flock.World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = c.Seed
	}
	n, err := NewNeighborhood(c.Neighborhood)
	if err != nil {
		return nil, err
	}
	agents := flock.Spawn(c.NumAgents, c.Bounds(), c.SpawnSpread, c.Groups, seed)
	return flock.NewWorld(agents, flock.WithNeighborhood(n), flock.WithWorkers(c.Workers)), nil
}

// NewObstacles builds the static scene: the walls, if enabled, then the configured shapes.
func NewObstacles(c *Config) (*obstacle.Set, error) {
	var shapes []obstacle.Shape
	if c.Walls {
		shapes = append(shapes, obstacle.Walls(c.Bounds(), WallThickness)...)
	}
	for i, o := range c.Obstacles {
		switch o.Type {
		case ObstacleSphere:
			shapes = append(shapes, obstacle.Sphere{Center: mgl64.Vec3(o.Center), Radius: o.Radius})
		case ObstacleBox:
			shapes = append(shapes, obstacle.NewBox(mgl64.Vec3(o.Center), mgl64.Vec3(o.Size), o.Rotation[0], o.Rotation[1], o.Rotation[2]))
		default:
			return nil, fmt.Errorf("%w: obstacle %d: unknown type %q", ErrInvalidConfig, i, o.Type)
		}
	}
	return obstacle.NewSet(shapes...), nil
}
