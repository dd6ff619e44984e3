package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids/pb"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// BoidToProto converts a boid into the Protobuf "Envelope" sent to renderers.
func BoidToProto(b *behavior.Boid) *pb.BoidState {
	return &pb.BoidState{
		X:      b.Position.X,
		Y:      b.Position.Y,
		Vx:     b.Velocity.X,
		Vy:     b.Velocity.Y,
		Radius: b.Radius,
		Hue:    b.Hue,
	}
}

// BoidFromProto converts incoming messages back to boids.
func BoidFromProto(p *pb.BoidState) behavior.Boid {
	return behavior.Boid{
		Position: geometry.Vector2D{X: p.GetX(), Y: p.GetY()},
		Velocity: geometry.Vector2D{X: p.GetVx(), Y: p.GetVy()},
		Radius:   p.GetRadius(),
		Hue:      p.GetHue(),
	}
}

// SettingsToProto converts settings for an UpdateSettings message.
func SettingsToProto(s behavior.Settings) *pb.FlockSettings {
	return &pb.FlockSettings{
		Boids:            int32(s.Boids),
		VisibleRange:     s.VisibleRange,
		MinDistance:      s.MinDistance,
		MaxSpeed:         s.MaxSpeed,
		CohesionFactor:   s.CohesionFactor,
		SeparationFactor: s.SeparationFactor,
		AlignmentFactor:  s.AlignmentFactor,
		TurnSpeedRatio:   s.TurnSpeedRatio,
		BorderMargin:     s.BorderMargin,
		ColorAdaptFactor: s.ColorAdaptFactor,
	}
}

// SettingsFromProto is the inverse of SettingsToProto, a nil message gives zero settings.
func SettingsFromProto(p *pb.FlockSettings) behavior.Settings {
	return behavior.Settings{
		Boids:            int(p.GetBoids()),
		VisibleRange:     p.GetVisibleRange(),
		MinDistance:      p.GetMinDistance(),
		MaxSpeed:         p.GetMaxSpeed(),
		CohesionFactor:   p.GetCohesionFactor(),
		SeparationFactor: p.GetSeparationFactor(),
		AlignmentFactor:  p.GetAlignmentFactor(),
		TurnSpeedRatio:   p.GetTurnSpeedRatio(),
		BorderMargin:     p.GetBorderMargin(),
		ColorAdaptFactor: p.GetColorAdaptFactor(),
	}
}
