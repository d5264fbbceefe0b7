package flock

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/obstacle"
	"golang.org/x/sync/errgroup"
)

// Pose is what a renderer needs to draw one agent.
type Pose struct {
	ID          uuid.UUID
	Group       string
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat
}

// World owns the population and advances it frame by frame.
// It is not safe for concurrent use; Step parallelizes internally when configured to.
type World struct {
	agents       []*Agent
	neighborhood Neighborhood
	workers      int
	frame        uint64
}

// Option configures a World.
type Option func(*World)

// WithNeighborhood replaces the default LinearScan candidate provider.
func WithNeighborhood(n Neighborhood) Option {
	return func(w *World) {
		if n != nil {
			w.neighborhood = n
		}
	}
}

// WithWorkers splits both passes of Step across n goroutines. n <= 1 keeps Step sequential.
func WithWorkers(n int) Option {
	return func(w *World) {
		w.workers = n
	}
}

// NewWorld wraps an existing population. The slice order is kept for every frame.
func NewWorld(agents []*Agent, opts ...Option) *World {
	w := &World{
		agents:       agents,
		neighborhood: &LinearScan{},
		workers:      1,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spawn creates n agents placed uniformly in bounds scaled by spread around its center.
// Groups, when given, are assigned round-robin. The same seed gives the same motion.
func Spawn(n int, bounds geometry.Box, spread float64, groups []string, seed uint64) []*Agent {
	master := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	area := bounds.Scale(spread)
	agents := make([]*Agent, 0, n)
	for i := 0; i < n; i++ {
		rng := rand.New(rand.NewPCG(master.Uint64(), master.Uint64()))
		a := NewAgent(bounds, rng)
		a.Position = area.RandomPoint(rng)
		if len(groups) > 0 {
			a.Group = groups[i%len(groups)]
		}
		agents = append(agents, a)
	}
	return agents
}

func (w *World) Agents() []*Agent { return w.agents }

// Frame counts completed steps.
func (w *World) Frame() uint64 { return w.frame }

// Step advances every agent by one frame.
//
// Pass 1 applies the tuning and accumulates steering forces; it only reads positions and
// velocities, which nothing writes until pass 2, so every agent sees the same snapshot.
// Pass 2 wraps and integrates each agent independently.
func (w *World) Step(t Tuning, q obstacle.Query) {
	t = t.Sanitized()
	if q == nil {
		q = obstacle.None{}
	}
	w.neighborhood.Rebuild(w.agents, t.PerceptionRadius)

	w.each(func(a *Agent) {
		a.Apply(t)
		a.Accumulate(w.neighborhood.Candidates(a), q)
	})
	w.each(func(a *Agent) {
		a.Wrap()
		a.Integrate()
	})
	w.frame++
}

// each runs fn over all agents, in chunks on the errgroup when workers > 1.
func (w *World) each(fn func(a *Agent)) {
	n := len(w.agents)
	if w.workers <= 1 || n < 2*w.workers {
		for _, a := range w.agents {
			fn(a)
		}
		return
	}
	chunk := (n + w.workers - 1) / w.workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		part := w.agents[start:min(start+chunk, n)]
		g.Go(func() error {
			for _, a := range part {
				fn(a)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Poses is the render sink: the current position and orientation of every agent.
func (w *World) Poses() []Pose {
	poses := make([]Pose, len(w.agents))
	for i, a := range w.agents {
		poses[i] = Pose{
			ID:          a.ID,
			Group:       a.Group,
			Position:    a.Position,
			Velocity:    a.velocity,
			Orientation: a.Orientation(),
		}
	}
	return poses
}
