package simulation

import (
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/obstacle"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// FlockActor owns the authoritative flock. Everything else (window, terminal, web socket)
// drives it with messages and reads the snapshots it publishes, so the world itself
// never needs a lock.
type FlockActor struct {
	cfg       *Config
	world     *flock.World
	tuning    flock.Tuning
	obstacles *obstacle.Set
	query     obstacle.Query
	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot
	// --- Benchmark Stats ---
	msgRecvCount int
	stepCount    int
	lastLogTime  time.Time
}

// NewFlockActor creates the simulation unit. snapshotCh may be nil when snapshots are
// only fetched with GetSnapshot.
func NewFlockActor(cfg *Config, snapshotCh chan<- *pb.WorldSnapshot) *FlockActor {
	return &FlockActor{
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		tuning:      TuningFromConfig(cfg),
		lastLogTime: time.Now(),
	}
}

func (f *FlockActor) PreStart(ctx *actor.Context) error {
	world, err := NewWorld(f.cfg, 0)
	if err != nil {
		return fmt.Errorf("failed to build the flock: %w", err)
	}
	obstacles, err := NewObstacles(f.cfg)
	if err != nil {
		return fmt.Errorf("failed to build the obstacles: %w", err)
	}
	f.world = world
	f.obstacles = obstacles
	f.query = obstacles.Within(f.tuning.PerceptionRadius)
	ctx.ActorSystem().Logger().Infof("Flock ready: %d agents, %d obstacles, neighborhood %s",
		f.cfg.NumAgents, obstacles.Len(), f.cfg.Neighborhood)
	return nil
}

func (f *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("Flock Started.")

	// The Main Simulation Step (Driven by the caller loop)
	case *pb.Tick:
		f.msgRecvCount++
		steps := max(int(msg.GetSteps()), 1)
		for i := 0; i < steps; i++ {
			f.world.Step(f.tuning, f.query)
		}
		f.stepCount += steps
		f.logBenchmarks(ctx)
		f.pushSnapshot()

	// Handle dynamic slider updates from UI
	case *pb.UpdateTuning:
		f.msgRecvCount++
		f.tuning = TuningFromProto(msg, f.tuning.Bounds)
		f.query = f.obstacles.Within(f.tuning.PerceptionRadius)

	case *pb.GetSnapshot:
		f.msgRecvCount++
		ctx.Response(SnapshotOf(f.world))

	case *pb.Respawn:
		f.msgRecvCount++
		world, err := NewWorld(f.cfg, msg.GetSeed())
		if err != nil {
			ctx.Logger().Errorf("Respawn failed: %v", err)
			return
		}
		f.world = world
		ctx.Logger().Infof("Flock respawned with %d agents", len(world.Agents()))
		f.pushSnapshot()

	default:
		ctx.Unhandled()
	}
}

func (f *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(f.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 MSG RATE: %d/sec | Steps: %d/sec | Frame: %d | Agents: %d",
			f.msgRecvCount, f.stepCount, f.world.Frame(), len(f.world.Agents()))
		f.msgRecvCount = 0
		f.stepCount = 0
		f.lastLogTime = time.Now()
	}
}

func (f *FlockActor) pushSnapshot() {
	if f.snapshotCh == nil {
		return
	}
	select {
	case f.snapshotCh <- SnapshotOf(f.world):
	default:
		// UI busy, skip frame
	}
}

func (f *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("Flock is shutdown...")
	return nil
}
