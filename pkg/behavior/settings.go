package behavior

import "github.com/lao-tseu-is-alive/go-boids/pkg/geometry"

// Size of the simulation rectangle, shared read-only by every boid.
// Boids spawn uniformly inside it and are steered back when they leave its inner margin.
const (
	AreaWidth  = 1600.0
	AreaHeight = 1000.0
)

// Area returns the simulation rectangle size as a vector.
func Area() geometry.Vector2D {
	return geometry.Vector2D{X: AreaWidth, Y: AreaHeight}
}

// Settings controls the physics constants for the simulation.
// Passing this into Update allows you to change rules dynamically at runtime: a value is a
// read-only snapshot for the duration of one UpdateAll call.
// Nothing here is validated, negative factors or MinDistance > VisibleRange simply produce
// degenerate flocks.
type Settings struct {
	Boids        int     `json:"boids" yaml:"boids"`               // Number of boids in a generation
	VisibleRange float64 `json:"visibleRange" yaml:"visibleRange"` // How far can they see?
	MinDistance  float64 `json:"minDistance" yaml:"minDistance"`   // Personal space radius

	MaxSpeed float64 `json:"maxSpeed" yaml:"maxSpeed"`

	CohesionFactor   float64 `json:"cohesionFactor" yaml:"cohesionFactor"`     // Pull towards the weighted center
	SeparationFactor float64 `json:"separationFactor" yaml:"separationFactor"` // Push away from close boids
	AlignmentFactor  float64 `json:"alignmentFactor" yaml:"alignmentFactor"`   // Match neighbors velocity

	TurnSpeedRatio float64 `json:"turnSpeedRatio" yaml:"turnSpeedRatio"` // Share of the speed used to turn at the border
	BorderMargin   float64 `json:"borderMargin" yaml:"borderMargin"`     // Share of Area where turning starts

	ColorAdaptFactor float64 `json:"colorAdaptFactor" yaml:"colorAdaptFactor"` // Hue drift towards bigger neighbors
}

// DefaultSettings returns the tuning the flock looks best with.
func DefaultSettings() Settings {
	return Settings{
		Boids:            300,
		VisibleRange:     80.0,
		MinDistance:      15.0,
		MaxSpeed:         20.0,
		AlignmentFactor:  0.15,
		CohesionFactor:   0.05,
		SeparationFactor: 0.6,
		TurnSpeedRatio:   0.25,
		BorderMargin:     0.1,
		ColorAdaptFactor: 0.05,
	}
}
