package view

import (
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids/pkg/ui"
)

// settingsFields is the slider of every setting, in panel order.
var settingsFields = []ui.Field[behavior.Settings]{
	{
		Section: "Population (new generation)", Label: "Boids", Min: 0, Max: simulation.MaxBoids, Step: 1,
		Get: func(s *behavior.Settings) float64 { return float64(s.Boids) },
		Set: func(s *behavior.Settings, v float64) { s.Boids = int(v) },
	},
	{
		Section: "Perception", Label: "Visible Range", Min: 0, Max: 300,
		Get: func(s *behavior.Settings) float64 { return s.VisibleRange },
		Set: func(s *behavior.Settings, v float64) { s.VisibleRange = v },
	},
	{
		Section: "Perception", Label: "Min Distance", Min: 0, Max: 100,
		Get: func(s *behavior.Settings) float64 { return s.MinDistance },
		Set: func(s *behavior.Settings, v float64) { s.MinDistance = v },
	},
	{
		Section: "Perception", Label: "Max Speed", Min: 0, Max: 100,
		Get: func(s *behavior.Settings) float64 { return s.MaxSpeed },
		Set: func(s *behavior.Settings, v float64) { s.MaxSpeed = v },
	},
	{
		Section: "Rules", Label: "Cohesion", Min: 0, Max: 1,
		Get: func(s *behavior.Settings) float64 { return s.CohesionFactor },
		Set: func(s *behavior.Settings, v float64) { s.CohesionFactor = v },
	},
	{
		Section: "Rules", Label: "Separation", Min: 0, Max: 2,
		Get: func(s *behavior.Settings) float64 { return s.SeparationFactor },
		Set: func(s *behavior.Settings, v float64) { s.SeparationFactor = v },
	},
	{
		Section: "Rules", Label: "Alignment", Min: 0, Max: 1,
		Get: func(s *behavior.Settings) float64 { return s.AlignmentFactor },
		Set: func(s *behavior.Settings, v float64) { s.AlignmentFactor = v },
	},
	{
		Section: "Rules", Label: "Turn Speed Ratio", Min: 0, Max: 1,
		Get: func(s *behavior.Settings) float64 { return s.TurnSpeedRatio },
		Set: func(s *behavior.Settings, v float64) { s.TurnSpeedRatio = v },
	},
	{
		Section: "Rules", Label: "Border Margin", Min: 0, Max: 0.5,
		Get: func(s *behavior.Settings) float64 { return s.BorderMargin },
		Set: func(s *behavior.Settings, v float64) { s.BorderMargin = v },
	},
	{
		Section: "Rules", Label: "Color Adapt", Min: 0, Max: 0.5,
		Get: func(s *behavior.Settings) float64 { return s.ColorAdaptFactor },
		Set: func(s *behavior.Settings, v float64) { s.ColorAdaptFactor = v },
	},
}
