package behavior

import (
	"iter"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// VisibleBoid is another boid seen from a given position, with the offset
// (other.Position - position) and its length already computed for the rules.
type VisibleBoid struct {
	Boid     *Boid
	Offset   geometry.Vector2D
	Distance float64
}

// Visible iterates every boid of flock, except flock[self], lying at most visibleRange
// away from flock[self]. The iteration is a brute-force scan in index order, no copy
// of the flock is made and the sequence can be ranged over several times.
// The reference position is the one flock[self] has when Visible is called.
func Visible(flock []Boid, self int, visibleRange float64) iter.Seq[VisibleBoid] {
	position := flock[self].Position
	return func(yield func(VisibleBoid) bool) {
		for i := range flock {
			if i == self {
				continue
			}
			other := &flock[i]
			offset := other.Position.Sub(position)
			distance := offset.Len()
			if distance > visibleRange {
				continue
			}
			if !yield(VisibleBoid{Boid: other, Offset: offset, Distance: distance}) {
				return
			}
		}
	}
}

// UpdateAll advances every boid of flock by timeDeltaMs, mutating the slice in place.
// Boids are updated one after the other in index order, so a boid sees the boids
// before it in their already updated state and the boids after it in their previous state.
// The caller must not touch flock while UpdateAll runs.
func UpdateAll(s Settings, flock []Boid, timeDeltaMs float64) {
	for i := range flock {
		flock[i].Update(Visible(flock, i, s.VisibleRange), s, timeDeltaMs)
	}
}

// Repopulate discards every boid of flock and draws s.Boids fresh random ones,
// reusing the backing array when it is large enough.
func Repopulate(flock []Boid, rng RandomSource, s Settings) []Boid {
	flock = flock[:0]
	for range max(s.Boids, 0) {
		flock = append(flock, NewRandom(rng, s))
	}
	return flock
}

// ShapePoints returns the triangle used to draw a boid of the given radius heading towards
// rotation (radians), relative to its position: a long vertex of 2*radius pointing forward
// and two vertices of length radius at ±τ/3.
func ShapePoints(radius, rotation float64) [3]geometry.Vector2D {
	return [3]geometry.Vector2D{
		geometry.NewVectorPolar(2*radius, rotation),
		geometry.NewVectorPolar(radius, geometry.FracTau3+rotation),
		geometry.NewVectorPolar(radius, 2*geometry.FracTau3+rotation),
	}
}
