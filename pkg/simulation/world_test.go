package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
)

func smallConfig() *Config {
	cfg := DefaultConfig()
	cfg.NumAgents = 40
	cfg.BoundsHalfExtent = 20
	cfg.Workers = 2
	cfg.Obstacles = nil
	return cfg
}

func TestNewWorld_FromConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Groups = []string{"a", "b"}

	w, err := NewWorld(cfg, 0)
	require.NoError(t, err)
	require.Len(t, w.Agents(), 40)
	area := cfg.Bounds().Scale(cfg.SpawnSpread)
	for i, a := range w.Agents() {
		assert.True(t, area.Contains(a.Position))
		assert.Equal(t, cfg.Groups[i%2], a.Group)
	}

	again, err := NewWorld(cfg, cfg.Seed)
	require.NoError(t, err)
	assert.Equal(t, w.Agents()[3].Position, again.Agents()[3].Position, "zero seed means the configured one")

	other, err := NewWorld(cfg, 777)
	require.NoError(t, err)
	assert.NotEqual(t, w.Agents()[3].Position, other.Agents()[3].Position)

	cfg.Neighborhood = "octree"
	_, err = NewWorld(cfg, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewNeighborhood(t *testing.T) {
	n, err := NewNeighborhood(NeighborhoodGrid)
	require.NoError(t, err)
	assert.IsType(t, &spatial.Grid{}, n)
	n, err = NewNeighborhood(NeighborhoodRTree)
	require.NoError(t, err)
	assert.IsType(t, &spatial.RTree{}, n)
	n, err = NewNeighborhood(NeighborhoodLinear)
	require.NoError(t, err)
	assert.IsType(t, &flock.LinearScan{}, n)
}

func TestNewObstacles_DefaultScene(t *testing.T) {
	cfg := DefaultConfig()
	set, err := NewObstacles(cfg)
	require.NoError(t, err)
	assert.Equal(t, 6+5, set.Len())

	cfg.Walls = false
	set, err = NewObstacles(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, set.Len())

	// looking straight down onto the top of the big sphere, centered at y -98 with radius 32
	cfg.Obstacles = cfg.Obstacles[1:2]
	set, err = NewObstacles(cfg)
	require.NoError(t, err)
	hit, ok := set.NearestHit(mgl64.Vec3{-32, -50, -40}, mgl64.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.InDelta(t, 16, hit.Distance, 1e-9)
	assert.True(t, geometry.ApproxEq(mgl64.Vec3{0, 1, 0}, hit.Normal, 1e-9))

	cfg.Obstacles = []ObstacleConfig{{Type: "cone"}}
	_, err = NewObstacles(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTuningProtoRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tuning.FieldOfView = true
	tuning := TuningFromConfig(cfg)

	assert.Equal(t, tuning, TuningFromProto(TuningToProto(tuning), geometry.Box{}))

	// bounds left out of the message keep the current ones
	msg := TuningToProto(tuning)
	msg.BoundsStart, msg.BoundsEnd = nil, nil
	current := geometry.NewCube(5)
	assert.Equal(t, current, TuningFromProto(msg, current).Bounds)
}

func TestSnapshotOf(t *testing.T) {
	w, err := NewWorld(smallConfig(), 0)
	require.NoError(t, err)
	w.Step(TuningFromConfig(smallConfig()), nil)

	snap := SnapshotOf(w)
	assert.Equal(t, uint64(1), snap.GetFrame())
	require.Len(t, snap.GetAgents(), 40)
	for i, p := range w.Poses() {
		s := snap.GetAgents()[i]
		assert.Equal(t, p.ID.String(), s.GetId())
		assert.Equal(t, p.Position, VecFromProto(s.GetPosition()))
		assert.True(t, QuatFromProto(s.GetOrientation()).ApproxEqual(p.Orientation))
	}
}

func startTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	ctx := context.Background()
	engine, err := Start(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Stop(ctx) })
	return engine
}

func askSnapshot(t *testing.T, e *Engine) *pb.WorldSnapshot {
	t.Helper()
	resp, err := actor.Ask(context.Background(), e.Flock, &pb.GetSnapshot{}, time.Second)
	require.NoError(t, err)
	snap, ok := resp.(*pb.WorldSnapshot)
	require.True(t, ok, "unexpected response %T", resp)
	return snap
}

func TestFlockActor_TickAndSnapshot(t *testing.T) {
	engine := startTestEngine(t, smallConfig())
	ctx := context.Background()

	snap := askSnapshot(t, engine)
	assert.Equal(t, uint64(0), snap.GetFrame())
	assert.Len(t, snap.GetAgents(), 40)

	require.NoError(t, actor.Tell(ctx, engine.Flock, &pb.Tick{Steps: 3}))
	require.NoError(t, actor.Tell(ctx, engine.Flock, &pb.Tick{}))
	assert.Equal(t, uint64(4), askSnapshot(t, engine).GetFrame(), "a zero Tick still advances one frame")

	select {
	case pushed := <-engine.Snapshots:
		assert.NotZero(t, pushed.GetFrame())
	case <-time.After(time.Second):
		t.Fatal("no snapshot pushed after a tick")
	}
}

func TestFlockActor_UpdateTuning(t *testing.T) {
	cfg := smallConfig()
	engine := startTestEngine(t, cfg)
	ctx := context.Background()

	tuning := TuningFromConfig(cfg)
	tuning.MaxSpeedFactor = 5
	require.NoError(t, actor.Tell(ctx, engine.Flock, TuningToProto(tuning)))
	require.NoError(t, actor.Tell(ctx, engine.Flock, &pb.Tick{Steps: 1}))

	for _, a := range askSnapshot(t, engine).GetAgents() {
		assert.InDelta(t, flock.BaseMaxSpeed*5, VecFromProto(a.GetVelocity()).Len(), 1e-9)
	}
}

func TestFlockActor_Respawn(t *testing.T) {
	engine := startTestEngine(t, smallConfig())
	ctx := context.Background()

	before := askSnapshot(t, engine)
	require.NoError(t, actor.Tell(ctx, engine.Flock, &pb.Tick{Steps: 5}))
	require.NoError(t, actor.Tell(ctx, engine.Flock, &pb.Respawn{}))
	after := askSnapshot(t, engine)

	assert.Equal(t, uint64(0), after.GetFrame())
	require.Len(t, after.GetAgents(), len(before.GetAgents()))
	assert.Equal(t, before.GetAgents()[0].GetPosition().GetX(), after.GetAgents()[0].GetPosition().GetX(),
		"same seed, same layout")
	assert.NotEqual(t, before.GetAgents()[0].GetId(), after.GetAgents()[0].GetId(), "agents are new")
}

func TestStart_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Workers = 0
	ctx := context.Background()
	engine, err := Start(ctx, cfg, nil)
	if err == nil {
		_ = engine.Stop(ctx)
	}
	assert.Error(t, err)
}
