package behavior

import (
	"iter"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// timeScale converts milliseconds times velocity into simulation distance units.
const timeScale = 0.01

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// His paper on this topic was published in 1987 in the proceedings of the ACM SIGGRAPH
// conference. The name "boid" corresponds to a shortened version of "bird-oid object",
// which refers to a bird-like object. https://en.wikipedia.org/wiki/Boids
// We export fields so the renderer can read them.
type Boid struct {
	Position geometry.Vector2D
	Velocity geometry.Vector2D
	// Radius is fixed at creation, it is the drawing size and the cohesion weight.
	Radius float64
	// Hue in radians, only ever moved by shortest-angle deltas.
	Hue float64
}

// RandomSource is the subset of *rand.Rand (math/rand/v2) used to spawn boids.
type RandomSource interface {
	Float64() float64
}

// NewRandom creates a boid with random position, heading, size and hue.
// Every boid spawns at exactly MaxSpeed. Radius is r³ distributed between
// MinDistance/12 and MinDistance/2, so large boids are rare.
func NewRandom(rng RandomSource, s Settings) Boid {
	maxRadius := s.MinDistance / 2
	minRadius := maxRadius / 6
	r := rng.Float64()
	radius := minRadius + r*r*r*(maxRadius-minRadius)

	return Boid{
		Position: geometry.Vector2D{X: rng.Float64() * AreaWidth, Y: rng.Float64() * AreaHeight},
		Velocity: geometry.NewVectorPolar(s.MaxSpeed, rng.Float64()*geometry.Tau),
		Radius:   radius,
		Hue:      rng.Float64() * geometry.Tau,
	}
}

// Update calculates the next state from the visible neighbors and settings:
// color drift, steering, border avoidance, then movement by timeDeltaMs.
func (b *Boid) Update(neighbors iter.Seq[VisibleBoid], s Settings, timeDeltaMs float64) {
	b.adaptColor(neighbors, s.ColorAdaptFactor)
	b.updateVelocity(neighbors, s)
	b.keepInBounds(s)
	b.Position = b.Position.Add(b.Velocity.Mul(timeDeltaMs).Mul(timeScale))
}

// adaptColor moves the hue towards the mean hue of bigger neighbors.
// Smaller or equal sized neighbors have no influence.
func (b *Boid) adaptColor(neighbors iter.Seq[VisibleBoid], factor float64) {
	var offsets iter.Seq[geometry.Scalar] = func(yield func(geometry.Scalar) bool) {
		for other := range neighbors {
			if other.Boid.Radius <= b.Radius {
				continue
			}
			if !yield(geometry.Scalar(geometry.SmallestAngleBetween(b.Hue, other.Boid.Hue))) {
				return
			}
		}
	}

	if offset, ok := geometry.Mean(offsets); ok {
		b.Hue += float64(offset) * factor
	}
}

// coherence pulls towards the center of the neighbors, weighted by radius².
func (b *Boid) coherence(neighbors iter.Seq[VisibleBoid], factor float64) geometry.Vector2D {
	var positions iter.Seq2[geometry.Vector2D, float64] = func(yield func(geometry.Vector2D, float64) bool) {
		for other := range neighbors {
			if !yield(other.Boid.Position, other.Boid.Radius*other.Boid.Radius) {
				return
			}
		}
	}

	center, ok := geometry.WeightedMean(positions)
	if !ok {
		return geometry.Vector2D{}
	}
	return center.Sub(b.Position).Mul(factor)
}

// separation pushes directly away from every neighbor within MinDistance.
func (b *Boid) separation(neighbors iter.Seq[VisibleBoid], s Settings) geometry.Vector2D {
	var accel geometry.Vector2D
	for other := range neighbors {
		if other.Distance > s.MinDistance {
			continue
		}
		accel = accel.Add(other.Offset.Neg())
	}
	return accel.Mul(s.SeparationFactor)
}

// alignment steers towards the mean velocity of the neighbors.
func (b *Boid) alignment(neighbors iter.Seq[VisibleBoid], factor float64) geometry.Vector2D {
	var velocities iter.Seq[geometry.Vector2D] = func(yield func(geometry.Vector2D) bool) {
		for other := range neighbors {
			if !yield(other.Boid.Velocity) {
				return
			}
		}
	}

	mean, ok := geometry.Mean(velocities)
	if !ok {
		return geometry.Vector2D{}
	}
	return mean.Sub(b.Velocity).Mul(factor)
}

func (b *Boid) updateVelocity(neighbors iter.Seq[VisibleBoid], s Settings) {
	v := b.Velocity.
		Add(b.coherence(neighbors, s.CohesionFactor)).
		Add(b.separation(neighbors, s)).
		Add(b.alignment(neighbors, s.AlignmentFactor))
	b.Velocity = v.ClampMagnitude(s.MaxSpeed)
}

// keepInBounds makes the boid turn when it is outside the inner rectangle
// [margin, Area-margin]. It runs after the speed clamp, so the speed may briefly
// exceed MaxSpeed until the next update.
func (b *Boid) keepInBounds(s Settings) {
	area := Area()
	low := area.Mul(s.BorderMargin)
	high := area.Sub(low)

	turnSpeed := b.Velocity.Len() * s.TurnSpeedRatio
	pos := b.Position

	var v geometry.Vector2D
	if pos.X < low.X {
		v.X += turnSpeed
	}
	if pos.X > high.X {
		v.X -= turnSpeed
	}
	if pos.Y < low.Y {
		v.Y += turnSpeed
	}
	if pos.Y > high.Y {
		v.Y -= turnSpeed
	}

	b.Velocity = b.Velocity.Add(v)
}
