// Package termview draws a top-down (x, z) view of the flock in a terminal.
package termview

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
)

// arrows by heading octant, counted clockwise from +x with +z pointing down the screen
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	agentStyles = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorYellow),
		tcell.StyleDefault.Foreground(tcell.ColorHotPink),
		tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue),
		tcell.StyleDefault.Foreground(tcell.ColorOrangeRed),
	}
)

// View owns the terminal screen and drives the flock actor at the configured tick rate.
type View struct {
	screen tcell.Screen
	bounds geometry.Box
	tuning flock.Tuning
	tell   func(proto.Message) error
	groups map[string]int
	rate   time.Duration
	paused bool
}

// New wires a screen to a running engine. The screen must already be initialized.
func New(screen tcell.Screen, cfg *simulation.Config, engine *simulation.Engine) *View {
	return newView(screen, cfg, func(msg proto.Message) error {
		return actor.Tell(context.Background(), engine.Flock, msg)
	})
}

func newView(screen tcell.Screen, cfg *simulation.Config, tell func(proto.Message) error) *View {
	v := &View{
		screen: screen,
		bounds: cfg.Bounds(),
		tuning: simulation.TuningFromConfig(cfg),
		tell:   tell,
		groups: make(map[string]int),
		rate:   time.Second / time.Duration(max(cfg.TickRate, 1)),
	}
	for i, g := range cfg.Groups {
		v.groups[g] = i
	}
	return v
}

func (v *View) Paused() bool { return v.paused }

func (v *View) Tuning() flock.Tuning { return v.tuning }

// HandleKey applies one key press and reports whether the view should quit.
// q or Esc quits, space pauses, f toggles the field of view and k keep to center.
func (v *View) HandleKey(ev *tcell.EventKey) (quit bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
	default:
		return false, nil
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true, nil
	case ' ':
		v.paused = !v.paused
	case 'f', 'F':
		v.tuning.FieldOfView = !v.tuning.FieldOfView
		return false, v.tell(simulation.TuningToProto(v.tuning))
	case 'k', 'K':
		v.tuning.KeepToCenter = !v.tuning.KeepToCenter
		return false, v.tell(simulation.TuningToProto(v.tuning))
	}
	return false, nil
}

// cell maps a world position onto the drawing area (everything above the status line).
func (v *View) cell(p *pb.Vec3, width, height int) (int, int, bool) {
	size := v.bounds.Size()
	if width <= 0 || height <= 0 || size[0] <= 0 || size[2] <= 0 {
		return 0, 0, false
	}
	fx := (p.GetX() - v.bounds.Start[0]) / size[0]
	fz := (p.GetZ() - v.bounds.Start[2]) / size[2]
	if fx < 0 || fx > 1 || fz < 0 || fz > 1 {
		return 0, 0, false
	}
	col := min(int(fx*float64(width)), width-1)
	row := min(int(fz*float64(height)), height-1)
	return col, row, true
}

// arrowFor picks the glyph closest to the heading projected on the x/z plane.
func arrowFor(vel *pb.Vec3) rune {
	if math.Hypot(vel.GetX(), vel.GetZ()) < geometry.Epsilon {
		return '•'
	}
	angle := math.Atan2(vel.GetZ(), vel.GetX())
	octant := int(math.Round(angle/(math.Pi/4))) & 7
	return arrows[octant]
}

// Render draws a snapshot and the status line, then shows the screen.
func (v *View) Render(snap *pb.WorldSnapshot) {
	v.screen.Clear()
	width, height := v.screen.Size()
	area := height - 1

	for i, a := range snap.GetAgents() {
		col, row, ok := v.cell(a.GetPosition(), width, area)
		if !ok {
			continue
		}
		style := agentStyles[i%len(agentStyles)]
		if g, ok := v.groups[a.GetGroup()]; ok {
			style = agentStyles[g%len(agentStyles)]
		}
		v.screen.SetContent(col, row, arrowFor(a.GetVelocity()), nil, style)
	}

	state := "running"
	if v.paused {
		state = "paused"
	}
	status := []rune(fmt.Sprintf(" frame %d | %d agents | %s | fov %v | center %v | q quit, space pause, f fov, k center ",
		snap.GetFrame(), len(snap.GetAgents()), state, v.tuning.FieldOfView, v.tuning.KeepToCenter))
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		v.screen.SetContent(x, height-1, r, nil, statusStyle)
	}
	v.screen.Show()
}

// Run loops until the context is done or the user quits. Snapshots come from the engine
// channel, ticks are sent at the configured rate unless paused.
func (v *View) Run(ctx context.Context, snapshots <-chan *pb.WorldSnapshot) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.rate)
	defer ticker.Stop()
	last := &pb.WorldSnapshot{}
	v.Render(last)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				done, err := v.HandleKey(ev)
				if err != nil {
					return fmt.Errorf("failed to send tuning: %w", err)
				}
				if done {
					return nil
				}
				v.Render(last)
			case *tcell.EventResize:
				v.screen.Sync()
				v.Render(last)
			}
		case <-ticker.C:
			if v.paused {
				continue
			}
			if err := v.tell(&pb.Tick{Steps: 1}); err != nil {
				return fmt.Errorf("failed to send tick: %w", err)
			}
		case snap := <-snapshots:
			last = snap
			v.Render(last)
		}
	}
}
