package ui

import "github.com/hajimehoshi/ebiten/v2"

// Widget is anything a Panel can stack. The panel owns the position of its widgets.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	MoveTo(x, y float64)
}

// Bounds is the hit box every widget embeds.
type Bounds struct {
	X, Y float64
	W, H float64
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b Bounds) Height() float64 { return b.H }

func (b *Bounds) MoveTo(x, y float64) { b.X, b.Y = x, y }

func cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
