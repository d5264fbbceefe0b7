// Package viewer renders the flock in an ebiten window with a trailing 3D camera and a
// tuning panel.
package viewer

import (
	"context"
	"fmt"
	"image/color"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/obstacle"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const panelWidth = 240

// Pre-rendered source for batched triangles
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

var (
	background  = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	boundsColor = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	shapeColor  = color.RGBA{R: 150, G: 150, B: 160, A: 160}
	palette     = []color.RGBA{
		{R: 255, G: 255, B: 0, A: 255},   // yellow
		{R: 255, G: 105, B: 180, A: 255}, // hotpink
		{R: 137, G: 207, B: 240, A: 255}, // babyblue
		{R: 255, G: 69, B: 0, A: 255},    // orangered
	}
)

type Game struct {
	ctx       context.Context
	engine    *simulation.Engine
	cfg       *simulation.Config
	lastState *pb.WorldSnapshot
	camera    *Camera
	shapes    []obstacle.Shape
	bounds    geometry.Box
	groups    map[string]int

	// UI Controls
	panel         *ui.Panel
	align         *ui.Slider
	cohere        *ui.Slider
	separate      *ui.Slider
	avoid         *ui.Slider
	centerWeight  *ui.Slider
	maxSpeed      *ui.Slider
	maxForce      *ui.Slider
	perception    *ui.Slider
	fieldOfView   *ui.Checkbox
	keepToCenter  *ui.Checkbox
	freeCamera    *ui.Checkbox
	paused        *ui.Checkbox
	tuningPending bool

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame builds the window state around a running engine.
func NewGame(ctx context.Context, cfg *simulation.Config, engine *simulation.Engine) (*Game, error) {
	obstacles, err := simulation.NewObstacles(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ctx:       ctx,
		engine:    engine,
		cfg:       cfg,
		lastState: &pb.WorldSnapshot{}, // Avoid nil pointer
		camera:    NewCamera(cfg.BoundsHalfExtent*2.5, nil),
		shapes:    obstacles.Shapes(),
		bounds:    cfg.Bounds(),
		groups:    make(map[string]int),
	}
	for i, name := range cfg.Groups {
		g.groups[name] = i
	}

	t := cfg.Tuning
	panel := ui.NewPanel(10, 10, panelWidth, float64(cfg.Window.Height)-20, "Configuration")
	panel.AddSection("Weights")
	g.align = panel.AddSlider("Alignment", 0, 10, t.AlignWeight)
	g.cohere = panel.AddSlider("Cohesion", 0, 10, t.CohereWeight)
	g.separate = panel.AddSlider("Separation", 0, 10, t.SeparateWeight)
	g.avoid = panel.AddSlider("Avoidance", 0, 10, t.AvoidWeight)
	g.centerWeight = panel.AddSlider("Keep To Center", 0, 10, t.KeepToCenterWeight)
	panel.AddSection("Limits")
	g.maxSpeed = panel.AddSlider("Max Speed", 0, 10, t.MaxSpeedFactor)
	g.maxForce = panel.AddSlider("Max Force", 0, 10, t.MaxForceFactor)
	g.perception = panel.AddSlider("Perception", 0, 50, t.PerceptionRadius)
	g.perception.Format = "%.1f"
	panel.AddSection("Options")
	g.fieldOfView = panel.AddCheckbox("Field Of View", t.FieldOfView)
	g.keepToCenter = panel.AddCheckbox("Keep To Center", t.KeepToCenter)
	g.freeCamera = panel.AddCheckbox("Free Camera (arrows, +/-)", false)
	g.paused = panel.AddCheckbox("Pause", false)
	panel.AddButton("Respawn", g.respawn)
	g.panel = panel

	// the panel starts from the config, the actor does too, nothing to send yet
	return g, nil
}

// Tuning reads the current panel values.
func (g *Game) Tuning() flock.Tuning {
	return flock.Tuning{
		Weights: flock.Weights{
			Align:        g.align.Value,
			Cohere:       g.cohere.Value,
			Separate:     g.separate.Value,
			Avoid:        g.avoid.Value,
			KeepToCenter: g.centerWeight.Value,
		},
		MaxSpeedFactor:   g.maxSpeed.Value,
		MaxForceFactor:   g.maxForce.Value,
		PerceptionRadius: g.perception.Value,
		Bounds:           g.bounds,
		FieldOfView:      g.fieldOfView.Value,
		KeepToCenter:     g.keepToCenter.Value,
	}
}

func (g *Game) respawn() {
	_ = actor.Tell(g.ctx, g.engine.Flock, &pb.Respawn{Seed: rand.Uint64()})
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.panel.Update(ui.PollInput())
	g.handleKeys()

	// 2. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.engine.Snapshots:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 3. Send the tuning only when a widget moved
	for _, s := range []*ui.Slider{g.align, g.cohere, g.separate, g.avoid, g.centerWeight, g.maxSpeed, g.maxForce, g.perception} {
		if s.Changed() {
			g.tuningPending = true
		}
	}
	for _, c := range []*ui.Checkbox{g.fieldOfView, g.keepToCenter} {
		if c.Changed() {
			g.tuningPending = true
		}
	}
	if g.tuningPending {
		if err := actor.Tell(g.ctx, g.engine.Flock, simulation.TuningToProto(g.Tuning())); err != nil {
			return fmt.Errorf("failed to send tuning: %w", err)
		}
		g.tuningPending = false
	}

	// 4. Trigger Simulation Step
	if !g.paused.Value {
		if err := actor.Tell(g.ctx, g.engine.Flock, &pb.Tick{Steps: 1}); err != nil {
			return fmt.Errorf("failed to send tick: %w", err)
		}
	}

	// 5. Camera
	g.camera.Free = g.freeCamera.Value
	agents := g.lastState.GetAgents()
	if len(agents) > 0 {
		target := agents[min(g.camera.Target(), len(agents)-1)]
		g.camera.Follow(simulation.VecFromProto(target.GetPosition()), simulation.VecFromProto(target.GetVelocity()), len(agents))
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.freeCamera.Value = !g.freeCamera.Value
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused.Value = !g.paused.Value
	}
	if !g.freeCamera.Value {
		return
	}
	var yaw, pitch, dist float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw -= 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw += 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch += 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch -= 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		dist -= 2
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		dist += 2
	}
	g.camera.Orbit(yaw, pitch, dist)
}

// colorOf picks the agent color from its group, or from its position in the snapshot.
func (g *Game) colorOf(i int, a *pb.AgentState) color.RGBA {
	if idx, ok := g.groups[a.GetGroup()]; ok {
		return palette[idx%len(palette)]
	}
	return palette[i%len(palette)]
}

type sprite struct {
	depth float64
	verts [3][2]float32
	clr   color.RGBA
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	pr := g.camera.Projector(w, h)

	// 1. Static scene
	drawWireBox(screen, pr, boxCorners(g.bounds.Center(), g.bounds.Size(), mgl64.QuatIdent()), boundsColor)
	for _, s := range g.shapes {
		switch shape := s.(type) {
		case obstacle.Box:
			q := shape.Rotation
			if q == (mgl64.Quat{}) {
				q = mgl64.QuatIdent()
			}
			drawWireBox(screen, pr, boxCorners(shape.Center, shape.Size, q), shapeColor)
		case obstacle.Sphere:
			if x, y, _, ok := pr.Project(shape.Center); ok {
				r := pr.Scale(shape.Center, shape.Radius)
				vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, shapeColor, true)
			}
		}
	}

	// 2. Agents, back to front
	sprites := make([]sprite, 0, len(g.lastState.GetAgents()))
	for i, a := range g.lastState.GetAgents() {
		if s, ok := g.agentSprite(pr, i, a); ok {
			sprites = append(sprites, s)
		}
	}
	slices.SortFunc(sprites, func(a, b sprite) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	vertices := make([]ebiten.Vertex, 0, 3*len(sprites))
	indices := make([]uint16, 0, 3*len(sprites))
	for _, s := range sprites {
		// uint16 indices: flush before overflowing
		if len(vertices)+3 > 65535 {
			screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
			vertices, indices = vertices[:0], indices[:0]
		}
		base := uint16(len(vertices))
		for _, v := range s.verts {
			vertices = append(vertices, ebiten.Vertex{
				DstX: v[0], DstY: v[1],
				SrcX: 1, SrcY: 1,
				ColorR: float32(s.clr.R) / 255, ColorG: float32(s.clr.G) / 255, ColorB: float32(s.clr.B) / 255, ColorA: 1,
			})
		}
		indices = append(indices, base, base+1, base+2)
	}
	if len(vertices) > 0 {
		screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
	}

	// 3. Draw UI Panel
	g.panel.Draw(screen)

	// Display performance stats on the right side to avoid overlap with panel
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nFrame: %d\nAgents: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetFrame(),
		len(g.lastState.GetAgents()),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, w-150, 10)
}

// agentSprite is a small triangle pointing along the agent heading on screen.
func (g *Game) agentSprite(pr Projector, i int, a *pb.AgentState) (sprite, bool) {
	pos := simulation.VecFromProto(a.GetPosition())
	heading := simulation.QuatFromProto(a.GetOrientation()).Rotate(geometry.Forward)
	x, y, depth, ok := pr.Project(pos)
	if !ok {
		return sprite{}, false
	}
	tx, ty, _, okTip := pr.Project(pos.Add(heading.Mul(0.6)))
	size := max(pr.Scale(pos, 0.25), 1.5)
	dx, dy := tx-x, ty-y
	l := mgl64.Vec2{dx, dy}.Len()
	if !okTip || l < 1e-6 {
		// heading straight at or away from the camera
		dx, dy, l = 0, -1, 1
	}
	dx, dy = dx/l, dy/l
	tipLen := max(l, 2*size)
	return sprite{
		depth: depth,
		verts: [3][2]float32{
			{float32(x + dx*tipLen), float32(y + dy*tipLen)},
			{float32(x - dy*size), float32(y + dx*size)},
			{float32(x + dy*size), float32(y - dx*size)},
		},
		clr: g.colorOf(i, a),
	}, true
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// boxCorners returns the 8 corners of an oriented box, bit i of the index selecting the
// positive half of axis i.
func boxCorners(center, size mgl64.Vec3, rotation mgl64.Quat) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	half := size.Mul(0.5)
	for i := range out {
		local := half
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) == 0 {
				local[axis] = -local[axis]
			}
		}
		out[i] = center.Add(rotation.Rotate(local))
	}
	return out
}

func drawWireBox(screen *ebiten.Image, pr Projector, corners [8]mgl64.Vec3, clr color.RGBA) {
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			j := i | (1 << axis)
			if j == i {
				continue
			}
			x0, y0, _, ok0 := pr.Project(corners[i])
			x1, y1, _, ok1 := pr.Project(corners[j])
			if ok0 && ok1 {
				vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
			}
		}
	}
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, cfg *simulation.Config, engine *simulation.Engine) error {
	game, err := NewGame(ctx, cfg, engine)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Flock3D")
	ebiten.SetTPS(cfg.TickRate)
	return ebiten.RunGame(game)
}
