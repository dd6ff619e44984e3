package telemetry

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// FlockStats is one telemetry row describing the flock at a given step.
type FlockStats struct {
	Generation uint64 `csv:"generation"`
	Step       uint64 `csv:"step"`
	Population int    `csv:"population"`

	// Speed distribution
	MeanSpeed   float64 `csv:"mean_speed"`
	SpeedStdDev float64 `csv:"speed_std"`
	SpeedMedian float64 `csv:"speed_p50"`

	// Polarization is the length of the mean heading, 1 when every boid flies the same way.
	Polarization float64 `csv:"polarization"`

	// Hues are angles: circular mean in [0, τ) and 1 - mean resultant length in [0, 1].
	MeanHue       float64 `csv:"mean_hue"`
	HueDispersion float64 `csv:"hue_dispersion"`

	MeanNearestNeighbor float64 `csv:"mean_nearest_neighbor"`
}

// Measure computes the statistics of boids. Statistics needing more boids than
// available are left at zero.
func Measure(generation, step uint64, boids []behavior.Boid) FlockStats {
	fs := FlockStats{Generation: generation, Step: step, Population: len(boids)}
	if len(boids) == 0 {
		return fs
	}

	speeds := make([]float64, len(boids))
	hues := make([]float64, len(boids))
	var heading geometry.Vector2D
	moving := 0
	for i, b := range boids {
		speeds[i] = b.Velocity.Len()
		hues[i] = b.Hue
		if speeds[i] > 0 {
			heading = heading.Add(b.Velocity.Div(speeds[i]))
			moving++
		}
	}

	if len(boids) > 1 {
		fs.MeanSpeed, fs.SpeedStdDev = stat.MeanStdDev(speeds, nil)
	} else {
		fs.MeanSpeed = speeds[0]
	}
	slices.Sort(speeds)
	fs.SpeedMedian = stat.Quantile(0.5, stat.Empirical, speeds, nil)

	if moving > 0 {
		fs.Polarization = heading.Len() / float64(moving)
	}

	fs.MeanHue = normalizeAngle(stat.CircularMean(hues, nil))
	fs.HueDispersion = 1 - meanResultantLength(hues)

	fs.MeanNearestNeighbor = meanNearestNeighbor(boids)
	return fs
}

// normalizeAngle maps any angle to [0, τ).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, geometry.Tau)
	if a < 0 {
		a += geometry.Tau
	}
	return a
}

func meanResultantLength(angles []float64) float64 {
	var sum geometry.Vector2D
	for _, a := range angles {
		sum = sum.Add(geometry.NewVectorPolar(1, a))
	}
	return sum.Len() / float64(len(angles))
}

// meanNearestNeighbor is a brute-force scan, telemetry is sampled rarely.
func meanNearestNeighbor(boids []behavior.Boid) float64 {
	if len(boids) < 2 {
		return 0
	}
	distances := make([]float64, len(boids))
	for i := range boids {
		nearest := math.Inf(1)
		for j := range boids {
			if i != j {
				nearest = min(nearest, boids[i].Position.DistanceTo(boids[j].Position))
			}
		}
		distances[i] = nearest
	}
	return stat.Mean(distances, nil)
}
