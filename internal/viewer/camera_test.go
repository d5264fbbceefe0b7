package viewer

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_FollowLerps(t *testing.T) {
	c := NewCamera(100, rand.New(rand.NewPCG(1, 2)))
	c.Follow(mgl64.Vec3{100, 0, 0}, mgl64.Vec3{0, 1, 0}, 10)

	assert.InDelta(t, 1, c.Position[0], 1e-12)
	assert.InDelta(t, 1, c.LookAt[0], 1e-12)
	assert.InDelta(t, 0.01, c.LookAt[1], 1e-12)
}

func TestCamera_SwitchesTarget(t *testing.T) {
	c := NewCamera(100, rand.New(rand.NewPCG(3, 4)))
	seen := map[int]bool{}
	for i := 1; i <= SwitchEvery*20; i++ {
		before := c.Target()
		c.Follow(mgl64.Vec3{}, mgl64.Vec3{}, 50)
		if i%SwitchEvery != 0 {
			require.Equal(t, before, c.Target(), "frame %d", i)
		}
		seen[c.Target()] = true
		require.Less(t, c.Target(), 50)
	}
	assert.Greater(t, len(seen), 5, "targets are picked at random")
}

func TestProjector_Project(t *testing.T) {
	c := NewCamera(50, nil)
	c.Free = true
	c.Pitch = 0
	// orbit at yaw 0 puts the eye on +z looking at the origin
	pr := c.Projector(800, 600)

	x, y, depth, ok := pr.Project(mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-6)
	assert.InDelta(t, 300, y, 1e-6)
	assert.Greater(t, depth, 0.0)
	assert.Less(t, depth, 1.0)

	x, y, _, ok = pr.Project(mgl64.Vec3{5, 5, 0})
	require.True(t, ok)
	assert.Greater(t, x, 400.0, "+x is to the right")
	assert.Less(t, y, 300.0, "+y is up")

	_, _, _, ok = pr.Project(mgl64.Vec3{0, 0, 60})
	assert.False(t, ok, "points behind the eye are culled")

	near := pr.Scale(mgl64.Vec3{0, 0, 25}, 1)
	far := pr.Scale(mgl64.Vec3{0, 0, -25}, 1)
	assert.Greater(t, near, far)
}

func TestCamera_DegenerateViews(t *testing.T) {
	c := NewCamera(50, nil)
	vp := c.ViewProjection(640, 480)
	for i := 0; i < 16; i++ {
		assert.False(t, vp[i] != vp[i], "NaN in the matrix with eye on target")
	}

	c.Position = mgl64.Vec3{0, 10, 0}
	c.LookAt = mgl64.Vec3{}
	vp = c.ViewProjection(640, 480)
	for i := 0; i < 16; i++ {
		assert.False(t, vp[i] != vp[i], "NaN in the matrix looking straight down")
	}
}
