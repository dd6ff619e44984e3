package geometry

import (
	"iter"
	"math"
)

// smallestNormal is the smallest positive normal float64 (2^-1022).
const smallestNormal = 0x1p-1022

// Averageable is implemented by values that can be summed and scaled by a float64.
// Both Scalar and Vector2D satisfy it, so Mean and WeightedMean are written once for both.
// The zero value of T must be the additive identity.
type Averageable[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
	Div(float64) T
}

// Scalar is a float64 carrying the Averageable methods.
type Scalar float64

func (s Scalar) Add(other Scalar) Scalar { return s + other }

func (s Scalar) Sub(other Scalar) Scalar { return s - other }

func (s Scalar) Mul(f float64) Scalar { return s * Scalar(f) }

func (s Scalar) Div(f float64) Scalar { return s / Scalar(f) }

var (
	_ Averageable[Scalar]   = Scalar(0)
	_ Averageable[Vector2D] = Vector2D{}
)

// Mean computes the running average of values: avg += (value - avg) / count.
// ok is false when the sequence yields nothing, an empty set has no mean
// (a zero value would be indistinguishable from a real zero result).
func Mean[T Averageable[T]](values iter.Seq[T]) (mean T, ok bool) {
	count := 0.0
	for v := range values {
		count++
		mean = mean.Add(v.Sub(mean).Div(count))
	}
	if !isNormal(count) {
		var zero T
		return zero, false
	}
	return mean, true
}

// WeightedMean computes sum(value*weight) / sum(weight) over (value, weight) pairs.
// ok is false when the total weight is zero, infinite, subnormal or NaN.
func WeightedMean[T Averageable[T]](pairs iter.Seq2[T, float64]) (mean T, ok bool) {
	var sum T
	totalWeight := 0.0
	for v, w := range pairs {
		sum = sum.Add(v.Mul(w))
		totalWeight += w
	}
	if !isNormal(totalWeight) {
		var zero T
		return zero, false
	}
	return sum.Div(totalWeight), true
}

// isNormal reports whether f is neither zero, infinite, subnormal, nor NaN.
func isNormal(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) >= smallestNormal
}
