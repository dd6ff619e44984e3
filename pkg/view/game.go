package view

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"

	"github.com/lao-tseu-is-alive/go-boids/pb"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids/pkg/ui"
)

// whiteImage is the source texture of every boid triangle, the vertex colors tint it.
var whiteImage = ebiten.NewImage(3, 3)

// panelWidth is the strip left of the world holding the settings panel.
const panelWidth = 260.0

// ScreenWidth and ScreenHeight are the logical size of the window, panel included.
const (
	ScreenWidth  = int(panelWidth + behavior.AreaWidth)
	ScreenHeight = int(behavior.AreaHeight)
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	flockPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot
	logger     golog.Logger
	startedAt  time.Time

	// settings as last sent to the flock
	settings behavior.Settings
	saver    settingsSaver
	store    *simulation.SettingsStore

	// UI Controls
	panel        *ui.Panel
	form         *ui.Form[behavior.Settings]
	widgetPaused *ui.Checkbox

	// reused between frames
	vertices []ebiten.Vertex
	indices  []uint16

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// GetNewGame spawns the flock actor with the stored settings and builds the settings panel.
func GetNewGame(ctx context.Context, system actor.ActorSystem, store *simulation.SettingsStore, rng behavior.RandomSource) (*Game, error) {
	settings := store.Load()

	// Buffer to avoid blocking
	snapshotCh := make(chan *pb.FlockSnapshot, 10)
	flockPID, err := system.Spawn(ctx, "flock", simulation.NewFlockActor(settings, rng, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		flockPID:   flockPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.FlockSnapshot{}, // Avoid nil pointer
		logger:     system.Logger(),
		startedAt:  time.Now(),
		settings:   settings,
		saver:      settingsSaver{store: store},
		store:      store,
	}

	g.panel = ui.NewPanel("Flock", 10, 10, panelWidth-20, behavior.AreaHeight-20)
	g.form = ui.AddForm(g.panel, settingsFields, settings)
	g.panel.Section("Simulation")
	g.widgetPaused = g.panel.AddCheckbox("Paused", false)
	g.panel.AddButton("New generation", g.newGeneration)
	g.panel.AddButton("Reset defaults", g.resetDefaults)
	return g, nil
}

func (g *Game) tell(msg proto.Message) {
	if err := actor.Tell(g.ctx, g.flockPID, msg); err != nil {
		g.logger.Errorf("failed to send %T to the flock: %v", msg, err)
	}
}

func (g *Game) newGeneration() {
	g.tell(&pb.NewGeneration{})
}

func (g *Game) resetDefaults() {
	if err := g.store.Remove(); err != nil {
		g.logger.Warnf("stored settings not removed: %v", err)
	}
	g.saver.Discard()
	g.settings = behavior.DefaultSettings()
	g.form.Load(g.settings)
	g.tell(&pb.UpdateSettings{Settings: simulation.SettingsToProto(g.settings)})
}

// nowMs is the monotonic frame timestamp in milliseconds.
func (g *Game) nowMs() float64 {
	return float64(time.Since(g.startedAt).Microseconds()) / 1000
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel, buttons fire their callbacks here
	g.panel.Update()

	// 2. Retrieve Latest State (Non-blocking), keep only the freshest one
	for drained := false; !drained; {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			drained = true
		}
	}

	// 3. Forward user edits live, save them once the slider is released
	if g.form.Apply(&g.settings) {
		g.tell(&pb.UpdateSettings{Settings: simulation.SettingsToProto(g.settings)})
		g.saver.Edited(g.settings)
	}
	if _, err := g.saver.Flush(g.form.Dragging()); err != nil {
		g.logger.Warnf("settings not saved: %v", err)
	}
	if g.widgetPaused.Changed() {
		g.tell(&pb.SetPaused{Paused: g.widgetPaused.Value})
	}

	// 4. Trigger Simulation Step
	g.tell(&pb.Tick{TimestampMs: g.nowMs()})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 20, G: 20, B: 28, A: 255})
	vector.FillRect(screen, panelWidth, 0, behavior.AreaWidth, behavior.AreaHeight,
		color.RGBA{R: 10, G: 10, B: 30, A: 255}, false)

	// 1. Draw every boid of the last known snapshot in one batch, right of the panel
	g.vertices, g.indices = g.vertices[:0], g.indices[:0]
	for _, b := range g.lastState.GetBoids() {
		g.vertices, g.indices = appendBoidTriangle(g.vertices, g.indices, b, panelWidth)
	}
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
	}

	// 2. Draw UI Panel
	g.panel.Draw(screen)

	// 3. Display performance stats in the top right corner of the world
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nGeneration: %d\nBoids: %d\nPaused: %t\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetGeneration(),
		len(g.lastState.GetBoids()),
		g.lastState.GetPaused(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, ScreenWidth-160, 10)
}

func (g *Game) Layout(w, h int) (int, int) { return ScreenWidth, ScreenHeight }

func init() {
	whiteImage.Fill(color.White)
}
