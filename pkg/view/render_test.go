package view

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pb"
)

func TestHueColor(t *testing.T) {
	tests := []struct {
		name    string
		hue     float64
		r, g, b float64
	}{
		{"red", 0, 1, 0, 0},
		{"green", 2 * math.Pi / 3, 0, 1, 0},
		{"blue", 4 * math.Pi / 3, 0, 0, 1},
		{"negative wraps", -2 * math.Pi / 3, 0, 0, 1},
		{"several turns", 6*math.Pi + 2*math.Pi/3, 0, 1, 0},
	}
	const eps = 1e-6
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := HueColor(tt.hue)
			if math.Abs(c.R-tt.r) > eps || math.Abs(c.G-tt.g) > eps || math.Abs(c.B-tt.b) > eps {
				t.Errorf("HueColor(%v) = %v; want {%v %v %v}", tt.hue, c, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestAppendBoidTriangle(t *testing.T) {
	boids := []*pb.BoidState{
		{X: 100, Y: 50, Vx: 3, Vy: 0, Radius: 2},
		{X: 10, Y: 10, Vx: 0, Vy: -1, Radius: 4, Hue: math.Pi},
	}

	vertices, indices := appendBoidTriangle(nil, nil, boids[0], 0)
	vertices, indices = appendBoidTriangle(vertices, indices, boids[1], 0)

	if len(vertices) != 6 {
		t.Fatalf("len(vertices) = %d; want 6", len(vertices))
	}
	for i, idx := range indices {
		if int(idx) != i {
			t.Errorf("indices = %v; want 0..5", indices)
			break
		}
	}

	// the tip is 2*radius ahead of the boid
	if tip := vertices[0]; math.Abs(float64(tip.DstX)-104) > 1e-4 || math.Abs(float64(tip.DstY)-50) > 1e-4 {
		t.Errorf("first tip = (%v, %v); want (104, 50)", tip.DstX, tip.DstY)
	}
	if tip := vertices[3]; math.Abs(float64(tip.DstX)-10) > 1e-4 || math.Abs(float64(tip.DstY)-2) > 1e-4 {
		t.Errorf("second tip = (%v, %v); want (10, 2)", tip.DstX, tip.DstY)
	}
	if v := vertices[0]; math.Abs(float64(v.ColorR)-1) > 1e-6 || v.ColorG > 1e-6 || v.ColorB > 1e-6 || v.ColorA != 1 {
		t.Errorf("hue 0 color = (%v %v %v %v); want opaque red", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestAppendBoidTriangle_WorldRightOfThePanel(t *testing.T) {
	b := &pb.BoidState{X: 10, Y: 50, Vx: 1, Radius: 2}

	vertices, _ := appendBoidTriangle(nil, nil, b, panelWidth)

	for i, v := range vertices {
		if float64(v.DstX) < panelWidth-1e-4 {
			t.Errorf("vertex %d at x=%v lies under the panel", i, v.DstX)
		}
	}
	if tip := vertices[0]; math.Abs(float64(tip.DstX)-(panelWidth+14)) > 1e-4 {
		t.Errorf("tip x = %v; want %v", tip.DstX, panelWidth+14)
	}
}
