package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

func vecToProto(v mgl64.Vec3) *pb.Vec3 {
	return &pb.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// VecFromProto converts a wire vector, nil being the zero vector.
func VecFromProto(p *pb.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{p.GetX(), p.GetY(), p.GetZ()}
}

// QuatFromProto converts a wire rotation, nil being the identity.
func QuatFromProto(p *pb.Quat) mgl64.Quat {
	if p == nil {
		return mgl64.QuatIdent()
	}
	return mgl64.Quat{W: p.W, V: mgl64.Vec3{p.X, p.Y, p.Z}}
}

// PoseToProto converts the render-facing pose of one agent into its Protobuf "Envelope".
func PoseToProto(p flock.Pose) *pb.AgentState {
	return &pb.AgentState{
		Id:          p.ID.String(),
		Group:       p.Group,
		Position:    vecToProto(p.Position),
		Velocity:    vecToProto(p.Velocity),
		Orientation: &pb.Quat{W: p.Orientation.W, X: p.Orientation.V[0], Y: p.Orientation.V[1], Z: p.Orientation.V[2]},
	}
}

// SnapshotOf copies the whole world into a message the UI can keep without any locking.
func SnapshotOf(w *flock.World) *pb.WorldSnapshot {
	poses := w.Poses()
	snapshot := &pb.WorldSnapshot{
		Frame:  w.Frame(),
		Agents: make([]*pb.AgentState, 0, len(poses)),
	}
	for _, p := range poses {
		snapshot.Agents = append(snapshot.Agents, PoseToProto(p))
	}
	return snapshot
}

// TuningToProto is what a UI sends to change the flock behavior.
func TuningToProto(t flock.Tuning) *pb.UpdateTuning {
	return &pb.UpdateTuning{
		AlignWeight:        t.Weights.Align,
		CohereWeight:       t.Weights.Cohere,
		SeparateWeight:     t.Weights.Separate,
		AvoidWeight:        t.Weights.Avoid,
		KeepToCenterWeight: t.Weights.KeepToCenter,
		MaxSpeedFactor:     t.MaxSpeedFactor,
		MaxForceFactor:     t.MaxForceFactor,
		PerceptionRadius:   t.PerceptionRadius,
		BoundsStart:        vecToProto(t.Bounds.Start),
		BoundsEnd:          vecToProto(t.Bounds.End),
		FieldOfView:        t.FieldOfView,
		KeepToCenter:       t.KeepToCenter,
	}
}

// TuningFromProto is the inverse of TuningToProto. Missing bounds keep the current ones.
func TuningFromProto(p *pb.UpdateTuning, current geometry.Box) flock.Tuning {
	bounds := current
	if p.GetBoundsStart() != nil && p.GetBoundsEnd() != nil {
		bounds = geometry.Box{Start: VecFromProto(p.BoundsStart), End: VecFromProto(p.BoundsEnd)}
	}
	return flock.Tuning{
		Weights: flock.Weights{
			Align:        p.GetAlignWeight(),
			Cohere:       p.GetCohereWeight(),
			Separate:     p.GetSeparateWeight(),
			Avoid:        p.GetAvoidWeight(),
			KeepToCenter: p.GetKeepToCenterWeight(),
		},
		MaxSpeedFactor:   p.GetMaxSpeedFactor(),
		MaxForceFactor:   p.GetMaxForceFactor(),
		PerceptionRadius: p.GetPerceptionRadius(),
		Bounds:           bounds,
		FieldOfView:      p.GetFieldOfView(),
		KeepToCenter:     p.GetKeepToCenter(),
	}
}
