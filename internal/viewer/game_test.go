package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestBoxCorners(t *testing.T) {
	corners := boxCorners(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 4, 6}, mgl64.QuatIdent())
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, corners[0])
	assert.Equal(t, mgl64.Vec3{2, 4, 6}, corners[7])
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, corners[1])

	// a quarter turn around y sends +x half extents onto -z
	q := mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0})
	rotated := boxCorners(mgl64.Vec3{}, mgl64.Vec3{2, 2, 4}, q)
	for _, c := range rotated {
		assert.InDelta(t, 2, abs(c[0]), 1e-9)
		assert.InDelta(t, 1, abs(c[2]), 1e-9)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestGame_ColorOf(t *testing.T) {
	g := &Game{groups: map[string]int{"yellow": 0, "hotpink": 1}}
	assert.Equal(t, palette[1], g.colorOf(0, &pb.AgentState{Group: "hotpink"}))
	assert.Equal(t, palette[2], g.colorOf(6, &pb.AgentState{}), "no group falls back to the index")
}

func TestAgentSprite_PointsAlongHeading(t *testing.T) {
	c := NewCamera(50, nil)
	c.Free = true
	c.Pitch = 0
	pr := c.Projector(800, 600)
	g := &Game{groups: map[string]int{}}

	// heading +x, seen from +z: the tip is to the right of the body
	q := geometry.Orientation(mgl64.Vec3{1, 0, 0})
	a := &pb.AgentState{
		Position:    &pb.Vec3{},
		Orientation: &pb.Quat{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]},
	}
	s, ok := g.agentSprite(pr, 0, a)
	assert.True(t, ok)
	assert.Greater(t, s.verts[0][0], float32(400))
	assert.InDelta(t, 300, s.verts[0][1], 1e-3)
}
