package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-boids/pb"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
)

// HueColor converts a hue in radians, unbounded, into hsl(hue, 100%, 50%).
func HueColor(hue float64) colorful.Color {
	deg := math.Mod(hue*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return colorful.Hsl(deg, 1, 0.5)
}

// appendBoidTriangle appends the triangle of one boid, pointing where it flies, to a batch
// drawn with a single DrawTriangles call. The world origin is drawn at (originX, 0).
func appendBoidTriangle(vertices []ebiten.Vertex, indices []uint16, b *pb.BoidState, originX float64) ([]ebiten.Vertex, []uint16) {
	c := HueColor(b.GetHue())
	r, g, bl := float32(c.R), float32(c.G), float32(c.B)
	rotation := math.Atan2(b.GetVy(), b.GetVx())

	base := uint16(len(vertices))
	for _, p := range behavior.ShapePoints(b.GetRadius(), rotation) {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(originX + b.GetX() + p.X),
			DstY:   float32(b.GetY() + p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: 1,
		})
	}
	indices = append(indices, base, base+1, base+2)
	return vertices, indices
}
