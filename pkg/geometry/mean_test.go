package geometry

import (
	"iter"
	"math"
	"slices"
	"testing"
)

// pairs turns parallel value/weight slices into an iter.Seq2.
func pairs[T any](values []T, weights []float64) iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		for i, v := range values {
			if !yield(v, weights[i]) {
				return
			}
		}
	}
}

func TestMean_Empty(t *testing.T) {
	if got, ok := Mean(slices.Values([]Scalar{})); ok {
		t.Errorf("Mean(empty scalars) = %v, true; want no result", got)
	}
	if got, ok := Mean(slices.Values([]Vector2D(nil))); ok {
		t.Errorf("Mean(empty vectors) = %v, true; want no result", got)
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []Scalar
		want   Scalar
	}{
		{"single value", []Scalar{4.5}, 4.5},
		{"single zero is a result", []Scalar{0}, 0},
		{"two values", []Scalar{1, 3}, 2},
		{"symmetric around zero", []Scalar{-2, -1, 1, 2}, 0},
		{"several values", []Scalar{1, 2, 3, 4, 5, 6}, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mean(slices.Values(tt.values))
			if !ok {
				t.Fatalf("Mean(%v) returned no result", tt.values)
			}
			if !floatEquals(float64(got), float64(tt.want)) {
				t.Errorf("Mean(%v) = %v; want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMean_Vectors(t *testing.T) {
	values := []Vector2D{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	got, ok := Mean(slices.Values(values))
	if !ok {
		t.Fatal("Mean returned no result")
	}
	if want := (Vector2D{1, 1}); !got.Eq(want) {
		t.Errorf("Mean(%v) = %v; want %v", values, got, want)
	}

	single := Vector2D{-3.25, 7}
	got, ok = Mean(slices.Values([]Vector2D{single}))
	if !ok || got != single {
		t.Errorf("Mean of one vector = %v, %v; want %v, true", got, ok, single)
	}
}

func TestWeightedMean_NoResult(t *testing.T) {
	tests := []struct {
		name    string
		values  []Scalar
		weights []float64
	}{
		{"empty", nil, nil},
		{"zero weight", []Scalar{1, 2}, []float64{0, 0}},
		{"weights cancel", []Scalar{1, 2}, []float64{1, -1}},
		{"infinite weight", []Scalar{1}, []float64{math.Inf(1)}},
		{"NaN weight", []Scalar{1}, []float64{math.NaN()}},
		{"subnormal weight", []Scalar{1}, []float64{math.SmallestNonzeroFloat64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := WeightedMean(pairs(tt.values, tt.weights)); ok {
				t.Errorf("WeightedMean = %v, true; want no result", got)
			}
		})
	}
}

func TestWeightedMean(t *testing.T) {
	tests := []struct {
		name    string
		values  []Scalar
		weights []float64
		want    Scalar
	}{
		{"single item ignores its weight", []Scalar{7}, []float64{0.125}, 7},
		{"equal values any weights", []Scalar{3, 3}, []float64{0.5, 9}, 3},
		{"equal weights is plain mean", []Scalar{1, 3}, []float64{2, 2}, 2},
		{"heavier value wins", []Scalar{0, 10}, []float64{1, 3}, 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeightedMean(pairs(tt.values, tt.weights))
			if !ok {
				t.Fatal("WeightedMean returned no result")
			}
			if !floatEquals(float64(got), float64(tt.want)) {
				t.Errorf("WeightedMean = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestWeightedMean_Vectors(t *testing.T) {
	values := []Vector2D{{0, 0}, {10, 0}}
	got, ok := WeightedMean(pairs(values, []float64{1, 4}))
	if !ok {
		t.Fatal("WeightedMean returned no result")
	}
	if want := (Vector2D{8, 0}); !got.Eq(want) {
		t.Errorf("WeightedMean(%v) = %v; want %v", values, got, want)
	}
}
