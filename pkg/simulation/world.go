package simulation

import (
	"fmt"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-boids/pb"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
)

// FlockActor owns the authoritative flock. Every mutation goes through its mailbox,
// so the renderer only ever sees snapshots.
type FlockActor struct {
	sim *Simulation
	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot
	// --- Benchmark Stats ---
	stepCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the flock logic unit with its first generation, so no message can
// reach an empty actor. snapshotCh may be nil when nobody renders the flock.
func NewFlockActor(s behavior.Settings, rng behavior.RandomSource, snapshotCh chan<- *pb.FlockSnapshot) *FlockActor {
	return &FlockActor{
		sim:         NewSimulation(s, rng),
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (f *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock is starting with %d boids...", len(f.sim.Boids()))
	return nil
}

func (f *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("Flock Started.")

	// Driven by the game loop
	case *pb.Tick:
		if f.sim.Tick(msg.GetTimestampMs()) {
			f.stepCount++
			f.logBenchmarks(ctx)
			f.pushSnapshot()
		}

	case *pb.UpdateSettings:
		if msg.GetSettings() == nil {
			ctx.Logger().Warnf("ignoring settings update: %v", fmt.Errorf("%w: missing settings", ErrInvalidSettings))
			return
		}
		s := SettingsFromProto(msg.GetSettings())
		if err := ValidateSettings(s); err != nil {
			// a bad message must not restart the flock through supervision
			ctx.Logger().Warnf("ignoring settings update: %v", err)
			return
		}
		if f.sim.SetSettings(s) {
			ctx.Logger().Infof("🐦 generation %d: %d boids", f.sim.Generation(), len(f.sim.Boids()))
			f.pushSnapshot()
		}

	case *pb.NewGeneration:
		f.sim.NewGeneration()
		ctx.Logger().Infof("🐦 generation %d: %d boids", f.sim.Generation(), len(f.sim.Boids()))
		f.pushSnapshot()

	case *pb.SetPaused:
		f.sim.SetPaused(msg.GetPaused())
		f.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(f.sim.Snapshot())

	default:
		ctx.Unhandled()
	}
}

func (f *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(f.lastLogTime) >= time.Second {
		ctx.Logger().Debugf("📊 STEP RATE: %d/sec | Boids: %d", f.stepCount, len(f.sim.Boids()))
		f.stepCount = 0
		f.lastLogTime = time.Now()
	}
}

func (f *FlockActor) pushSnapshot() {
	if f.snapshotCh == nil {
		return
	}
	select {
	case f.snapshotCh <- f.sim.Snapshot():
	default:
		// UI busy, skip frame
	}
}

func (f *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("Flock is shutdown...")
	return nil
}
