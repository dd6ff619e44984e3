package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids/pb"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
)

// Simulation owns one flock and turns frame timestamps into time steps.
// It is not safe for concurrent use: FlockActor serializes access through its mailbox,
// the headless runner drives it from a single goroutine.
type Simulation struct {
	settings behavior.Settings
	rng      behavior.RandomSource
	boids    []behavior.Boid

	generation uint64
	steps      uint64
	paused     bool

	// lastTimestampMs is only meaningful when hasTimestamp is set.
	lastTimestampMs float64
	hasTimestamp    bool
}

// NewSimulation creates a simulation and spawns its first generation.
func NewSimulation(s behavior.Settings, rng behavior.RandomSource) *Simulation {
	sim := &Simulation{settings: s, rng: rng}
	sim.boids = behavior.Repopulate(sim.boids, sim.rng, sim.settings)
	return sim
}

// Tick advances the flock to timestampMs and reports whether a step was done.
// The first tick of a generation, and the first one after a pause, uses a zero delta so the
// flock never jumps. Paused simulations ignore ticks entirely.
func (sim *Simulation) Tick(timestampMs float64) bool {
	if sim.paused {
		return false
	}

	delta := 0.0
	if sim.hasTimestamp {
		delta = max(timestampMs-sim.lastTimestampMs, 0)
	}
	sim.lastTimestampMs = timestampMs
	sim.hasTimestamp = true

	sim.Step(delta)
	return true
}

// Step advances the flock by a fixed delta in milliseconds, regardless of pause state.
func (sim *Simulation) Step(deltaMs float64) {
	behavior.UpdateAll(sim.settings, sim.boids, deltaMs)
	sim.steps++
}

// NewGeneration discards every boid and spawns settings.Boids new ones.
func (sim *Simulation) NewGeneration() {
	sim.boids = behavior.Repopulate(sim.boids, sim.rng, sim.settings)
	sim.generation++
	sim.steps = 0
	sim.hasTimestamp = false
}

// SetSettings replaces the settings used by the next steps.
// A new population size starts a new generation, other changes apply to the living flock.
// It reports whether a new generation was started.
func (sim *Simulation) SetSettings(s behavior.Settings) bool {
	resize := s.Boids != sim.settings.Boids
	sim.settings = s
	if resize {
		sim.NewGeneration()
	}
	return resize
}

// SetPaused stops or resumes the simulation.
func (sim *Simulation) SetPaused(paused bool) {
	if sim.paused && !paused {
		sim.hasTimestamp = false
	}
	sim.paused = paused
}

func (sim *Simulation) Paused() bool { return sim.paused }

func (sim *Simulation) Settings() behavior.Settings { return sim.settings }

func (sim *Simulation) Generation() uint64 { return sim.generation }

// Steps is the number of steps done in the current generation.
func (sim *Simulation) Steps() uint64 { return sim.steps }

// Boids exposes the flock for reading. The slice is reused by the next step.
func (sim *Simulation) Boids() []behavior.Boid { return sim.boids }

// Snapshot copies the current flock into a protobuf message.
func (sim *Simulation) Snapshot() *pb.FlockSnapshot {
	snapshot := &pb.FlockSnapshot{
		Generation:  sim.generation,
		Paused:      sim.paused,
		TimestampMs: sim.lastTimestampMs,
		Boids:       make([]*pb.BoidState, 0, len(sim.boids)),
	}
	for i := range sim.boids {
		snapshot.Boids = append(snapshot.Boids, BoidToProto(&sim.boids[i]))
	}
	return snapshot
}
