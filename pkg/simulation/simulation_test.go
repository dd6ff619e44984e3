package simulation

import (
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
)

func testSettings() behavior.Settings {
	s := behavior.DefaultSettings()
	s.Boids = 40
	return s
}

func newTestSimulation() *Simulation {
	return NewSimulation(testSettings(), rand.New(rand.NewPCG(7, 8)))
}

func positions(sim *Simulation) []behavior.Boid {
	return append([]behavior.Boid(nil), sim.Boids()...)
}

func samePositions(a, b []behavior.Boid) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Position != b[i].Position {
			return false
		}
	}
	return true
}

func TestNewSimulation(t *testing.T) {
	sim := newTestSimulation()
	if got := len(sim.Boids()); got != 40 {
		t.Errorf("len(Boids) = %d; want 40", got)
	}
	if sim.Generation() != 0 || sim.Steps() != 0 || sim.Paused() {
		t.Errorf("generation %d, steps %d, paused %t; want a fresh running simulation",
			sim.Generation(), sim.Steps(), sim.Paused())
	}
}

func TestSimulation_Tick(t *testing.T) {
	sim := newTestSimulation()
	before := positions(sim)

	if !sim.Tick(1000) {
		t.Fatal("Tick on a running simulation must step")
	}
	if !samePositions(before, sim.Boids()) {
		t.Error("the first tick must use a zero delta")
	}

	sim.Tick(1016)
	if samePositions(before, sim.Boids()) {
		t.Error("boids did not move on the second tick")
	}
	if sim.Steps() != 2 {
		t.Errorf("Steps = %d; want 2", sim.Steps())
	}
}

func TestSimulation_TickBackwardsDoesNotMove(t *testing.T) {
	sim := newTestSimulation()
	sim.Tick(500)
	before := positions(sim)

	sim.Tick(400)
	if !samePositions(before, sim.Boids()) {
		t.Error("a timestamp going backwards must not move the flock")
	}
}

func TestSimulation_Pause(t *testing.T) {
	sim := newTestSimulation()
	sim.Tick(0)
	sim.Tick(16)

	sim.SetPaused(true)
	before := positions(sim)
	steps := sim.Steps()
	for ts := 32.0; ts < 1000; ts += 16 {
		if sim.Tick(ts) {
			t.Fatal("Tick on a paused simulation must not step")
		}
	}
	if !samePositions(before, sim.Boids()) || sim.Steps() != steps {
		t.Error("boids moved while paused")
	}
	if sim.Generation() != 0 {
		t.Errorf("Generation = %d; pausing must not start a new generation", sim.Generation())
	}

	sim.SetPaused(false)
	sim.Tick(60_000)
	if !samePositions(before, sim.Boids()) {
		t.Error("the first tick after resuming must use a zero delta")
	}
	sim.Tick(60_016)
	if samePositions(before, sim.Boids()) {
		t.Error("boids did not move after resuming")
	}
}

func TestSimulation_NewGeneration(t *testing.T) {
	sim := newTestSimulation()
	sim.Tick(0)
	sim.Tick(16)
	old := positions(sim)

	sim.NewGeneration()

	if sim.Generation() != 1 || sim.Steps() != 0 {
		t.Errorf("generation %d, steps %d; want 1, 0", sim.Generation(), sim.Steps())
	}
	if samePositions(old, sim.Boids()) {
		t.Error("the new generation kept the old boids")
	}

	// a new generation starts with a zero delta too
	before := positions(sim)
	sim.Tick(5000)
	if !samePositions(before, sim.Boids()) {
		t.Error("the first tick of a generation must use a zero delta")
	}
}

func TestSimulation_SetSettings(t *testing.T) {
	tests := []struct {
		name           string
		edit           func(*behavior.Settings)
		wantGeneration uint64
		wantBoids      int
	}{
		{"rule change keeps the flock", func(s *behavior.Settings) { s.CohesionFactor = 0.5 }, 0, 40},
		{"same population keeps the flock", func(s *behavior.Settings) { s.Boids = 40 }, 0, 40},
		{"new population size", func(s *behavior.Settings) { s.Boids = 12 }, 1, 12},
		{"empty flock", func(s *behavior.Settings) { s.Boids = 0 }, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSimulation()
			s := testSettings()
			tt.edit(&s)

			restarted := sim.SetSettings(s)

			if restarted != (tt.wantGeneration == 1) {
				t.Errorf("SetSettings = %t; want %t", restarted, tt.wantGeneration == 1)
			}
			if sim.Generation() != tt.wantGeneration {
				t.Errorf("Generation = %d; want %d", sim.Generation(), tt.wantGeneration)
			}
			if len(sim.Boids()) != tt.wantBoids {
				t.Errorf("len(Boids) = %d; want %d", len(sim.Boids()), tt.wantBoids)
			}
			if sim.Settings() != s {
				t.Errorf("Settings = %+v; want %+v", sim.Settings(), s)
			}
		})
	}
}

func TestSimulation_Snapshot(t *testing.T) {
	sim := newTestSimulation()
	sim.Tick(100)
	sim.NewGeneration()
	sim.SetPaused(true)

	snap := sim.Snapshot()

	if snap.GetGeneration() != 1 || !snap.GetPaused() || snap.GetTimestampMs() != 100 {
		t.Errorf("snapshot header = %d %t %v; want 1 true 100",
			snap.GetGeneration(), snap.GetPaused(), snap.GetTimestampMs())
	}
	if len(snap.GetBoids()) != len(sim.Boids()) {
		t.Fatalf("len(snapshot.Boids) = %d; want %d", len(snap.GetBoids()), len(sim.Boids()))
	}
	for i, state := range snap.GetBoids() {
		if got := BoidFromProto(state); got != sim.Boids()[i] {
			t.Errorf("boid %d = %+v; want %+v", i, got, sim.Boids()[i])
		}
	}

	// the snapshot is a copy
	sim.SetPaused(false)
	sim.Tick(200)
	sim.Tick(300)
	if BoidFromProto(snap.GetBoids()[0]) == sim.Boids()[0] {
		t.Error("snapshot follows the live flock")
	}
}

func TestSettingsProto(t *testing.T) {
	s := testSettings()
	s.TurnSpeedRatio = 0.42
	if got := SettingsFromProto(SettingsToProto(s)); got != s {
		t.Errorf("SettingsFromProto(SettingsToProto(s)) = %+v; want %+v", got, s)
	}
	if got := SettingsFromProto(nil); got != (behavior.Settings{}) {
		t.Errorf("SettingsFromProto(nil) = %+v; want zero settings", got)
	}
}
