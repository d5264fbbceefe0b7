package flock

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/obstacle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent_ApplyRecomputesLimits(t *testing.T) {
	a := newTestAgent(mgl64.Vec3{}, mgl64.Vec3{0.1, 0, 0})
	tuning := testTuning()
	tuning.MaxSpeedFactor = 2
	tuning.MaxForceFactor = 3

	a.Apply(tuning)
	a.Apply(tuning)
	assert.InDelta(t, 0.2, a.MaxSpeed(), 1e-15)
	assert.InDelta(t, 0.024, a.MaxForce(), 1e-15)

	tuning.MaxSpeedFactor = -1
	tuning.PerceptionRadius = -5
	a.Apply(tuning)
	assert.Equal(t, 0.0, a.MaxSpeed(), "negative factors are clamped")
	assert.Equal(t, 0.0, a.PerceptionRadius(), "negative radius is clamped")
}

func TestAgent_Wrap(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl64.Vec3
		want mgl64.Vec3
	}{
		{"Inside stays", mgl64.Vec3{10, -20, 30}, mgl64.Vec3{10, -20, 30}},
		{"Exactly on the end face stays", mgl64.Vec3{100, 0, 0}, mgl64.Vec3{100, 0, 0}},
		{"Just past the end goes to the start", mgl64.Vec3{100 + 1e-9, 0, 0}, mgl64.Vec3{-100, 0, 0}},
		{"Below the start goes to the end", mgl64.Vec3{0, -100.5, 0}, mgl64.Vec3{0, 100, 0}},
		{"Several axes at once", mgl64.Vec3{101, -101, 101}, mgl64.Vec3{-100, 100, -100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAgent(tt.pos, mgl64.Vec3{0.1, 0.2, 0})
			a.Apply(testTuning())
			a.Wrap()
			assert.Equal(t, tt.want, a.Position)
			assert.Equal(t, mgl64.Vec3{0.1, 0.2, 0}, a.Velocity(), "wrap never touches the velocity")
			assert.True(t, a.Bounds().Contains(a.Position))
		})
	}
}

func TestAgent_Integrate(t *testing.T) {
	a := newTestAgent(mgl64.Vec3{}, mgl64.Vec3{0.2, 0, 0})
	a.Apply(testTuning())
	a.acceleration = mgl64.Vec3{0, 0.05, 0}

	a.Integrate()
	assert.Equal(t, mgl64.Vec3{0.2, 0, 0}, a.Position, "moves by the previous smoothed velocity")
	assert.Equal(t, mgl64.Vec3{}, a.Acceleration())
	assert.InDelta(t, a.MaxSpeed(), a.Velocity().Len(), 1e-12)
	assert.Greater(t, a.Velocity()[1], 0.0)
	want := geometry.Lerp(mgl64.Vec3{0.2, 0, 0}, a.Velocity(), SmoothingFactor)
	assert.True(t, geometry.ApproxEq(want, a.SmoothedVelocity(), 1e-15))
}

func TestAgent_IntegrateCancelledVelocity(t *testing.T) {
	a := newTestAgent(mgl64.Vec3{}, mgl64.Vec3{0, 0.2, 0})
	a.Apply(testTuning())
	a.acceleration = mgl64.Vec3{0, -0.2, 0}

	a.Integrate()
	assert.True(t, geometry.ApproxEq(a.Velocity(), mgl64.Vec3{0, a.MaxSpeed(), 0}, 1e-12),
		"a fully cancelled velocity keeps the previous heading, got %v", a.Velocity())

	still := newTestAgent(mgl64.Vec3{}, mgl64.Vec3{})
	still.Apply(testTuning())
	still.Integrate()
	assert.True(t, geometry.ApproxEq(still.Velocity(), geometry.Forward.Mul(still.MaxSpeed()), 1e-12))
	assert.True(t, geometry.IsFinite(still.Position))
}

func newTestWorld(n int, seed uint64, opts ...Option) (*World, Tuning) {
	bounds := geometry.NewCube(30)
	tuning := DefaultTuning(bounds)
	return NewWorld(Spawn(n, bounds, 0.25, nil, seed), opts...), tuning
}

func TestWorld_StepKeepsInvariants(t *testing.T) {
	w, tuning := newTestWorld(150, 42)
	tuning.KeepToCenter = true
	walls := obstacle.NewSet(obstacle.Walls(tuning.Bounds, 1)...)

	for i := 0; i < 200; i++ {
		w.Step(tuning, walls.Within(tuning.PerceptionRadius))
		for _, a := range w.Agents() {
			require.InDelta(t, a.MaxSpeed(), a.Velocity().Len(), 1e-9, "frame %d", i)
			require.Equal(t, mgl64.Vec3{}, a.Acceleration())
			require.True(t, geometry.IsFinite(a.Position))
		}
	}
	assert.Equal(t, uint64(200), w.Frame())

	stats := Measure(w)
	assert.Equal(t, 150, stats.Agents)
	assert.Zero(t, stats.OutOfBounds)
	assert.Less(t, stats.MaxSpeedError, 1e-9)
	assert.InDelta(t, 0.2, stats.MeanSpeed, 1e-9)
}

func TestWorld_WrapKeepsAgentsInBounds(t *testing.T) {
	w, tuning := newTestWorld(60, 3)
	tuning.MaxSpeedFactor = 50 // fast enough to cross the box many times
	for i := 0; i < 100; i++ {
		w.Step(tuning, nil)
		for _, a := range w.Agents() {
			a.Wrap()
			require.True(t, tuning.Bounds.Contains(a.Position), "frame %d: %v", i, a.Position)
		}
	}
}

func TestWorld_StepUsesOneSnapshot(t *testing.T) {
	forward, tuning := newTestWorld(80, 7)
	backward, _ := newTestWorld(80, 7)

	// same agents, reversed update order
	agents := backward.Agents()
	for i, j := 0, len(agents)-1; i < j; i, j = i+1, j-1 {
		agents[i], agents[j] = agents[j], agents[i]
	}

	for i := 0; i < 10; i++ {
		forward.Step(tuning, nil)
		backward.Step(tuning, nil)
	}

	n := len(agents)
	for i, a := range forward.Agents() {
		b := backward.Agents()[n-1-i]
		require.True(t, geometry.ApproxEq(a.Position, b.Position, 1e-9),
			"agent %d diverged: %v vs %v", i, a.Position, b.Position)
	}
}

func TestWorld_WorkersMatchSequential(t *testing.T) {
	seq, tuning := newTestWorld(120, 11)
	par, _ := newTestWorld(120, 11, WithWorkers(4))

	for i := 0; i < 30; i++ {
		seq.Step(tuning, nil)
		par.Step(tuning, nil)
	}
	for i := range seq.Agents() {
		assert.Equal(t, seq.Agents()[i].Position, par.Agents()[i].Position)
		assert.Equal(t, seq.Agents()[i].Velocity(), par.Agents()[i].Velocity())
	}
}

func TestWorld_JitterOnly(t *testing.T) {
	bounds := geometry.NewCube(1000)
	tuning := DefaultTuning(bounds)
	tuning.Weights = Weights{}

	agents := Spawn(1, bounds, 0, nil, 99)
	w := NewWorld(agents)
	start := agents[0].Position

	for i := 0; i < 1000; i++ {
		w.Step(tuning, nil)
		require.InDelta(t, agents[0].MaxSpeed(), agents[0].Velocity().Len(), 1e-12, "frame %d", i)
	}
	assert.Greater(t, agents[0].Position.Sub(start).Len(), 1.0, "the agent kept moving")
}

func TestSpawn(t *testing.T) {
	bounds := geometry.NewCube(80)
	groups := []string{"yellow", "hotpink", "babyblue"}
	agents := Spawn(30, bounds, 0.25, groups, 5)
	again := Spawn(30, bounds, 0.25, groups, 5)

	require.Len(t, agents, 30)
	area := bounds.Scale(0.25)
	for i, a := range agents {
		assert.True(t, area.Contains(a.Position), "agent %d at %v", i, a.Position)
		assert.Equal(t, groups[i%3], a.Group)
		assert.InDelta(t, BaseMaxSpeed, a.Velocity().Len(), 1e-12)
		assert.Equal(t, a.Position, again[i].Position, "same seed, same layout")
	}
}

func TestWorld_Poses(t *testing.T) {
	w, tuning := newTestWorld(10, 1)
	w.Step(tuning, nil)

	poses := w.Poses()
	require.Len(t, poses, 10)
	for i, p := range poses {
		a := w.Agents()[i]
		assert.Equal(t, a.ID, p.ID)
		assert.Equal(t, a.Position, p.Position)
		heading := p.Orientation.Rotate(geometry.Forward)
		assert.True(t, geometry.ApproxEq(heading, geometry.Normalize(a.Velocity()), 1e-6))
	}
}

func TestMeasure_Polarization(t *testing.T) {
	a := newTestAgent(mgl64.Vec3{}, mgl64.Vec3{0.1, 0, 0})
	b := newTestAgent(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0.1, 0, 0})
	applyAll(testTuning(), a, b)
	w := NewWorld([]*Agent{a, b})

	s := Measure(w)
	assert.InDelta(t, 1, s.Polarization, 1e-12)
	assert.InDelta(t, 1, s.MeanNeighbors, 1e-12)

	b.SetVelocity(mgl64.Vec3{-0.1, 0, 0})
	assert.InDelta(t, 0, Measure(w).Polarization, 1e-12)
	assert.Equal(t, Stats{}, Measure(NewWorld(nil)))
}
