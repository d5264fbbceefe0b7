package simulation

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

// FlockActorName is the name the flock actor is spawned under.
const FlockActorName = "flock"

// Engine bundles the running actor system and the flock it hosts.
type Engine struct {
	System    actor.ActorSystem
	Flock     *actor.PID
	Snapshots <-chan *pb.WorldSnapshot
}

// Start boots an actor system named "Flock3D" and spawns the FlockActor. Snapshots receives
// a copy of the world after every Tick when the consumer keeps up, older ones are dropped.
func Start(ctx context.Context, cfg *Config, logger golog.Logger) (*Engine, error) {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	system, err := actor.NewActorSystem("Flock3D",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}

	// Buffer to avoid blocking
	snapshotCh := make(chan *pb.WorldSnapshot, 10)
	pid, err := system.Spawn(ctx, FlockActorName, NewFlockActor(cfg, snapshotCh))
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}
	return &Engine{System: system, Flock: pid, Snapshots: snapshotCh}, nil
}

// Stop shuts the actor system down.
func (e *Engine) Stop(ctx context.Context) error {
	return e.System.Stop(ctx)
}
