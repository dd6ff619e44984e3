package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button fires OnClick when the mouse button is released over it after being pressed on it.
type Button struct {
	Bounds
	Label   string
	OnClick func()
	pressed bool
}

func NewButton(width float64, label string, onClick func()) *Button {
	return &Button{Bounds: Bounds{W: width, H: 24}, Label: label, OnClick: onClick}
}

func (b *Button) Update() {
	over := b.Contains(cursor())
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && over {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && over && b.OnClick != nil {
			b.OnClick()
		}
		b.pressed = false
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 80, G: 120, B: 180, A: 255}
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 90, B: 140, A: 255}
	case b.Contains(cursor()):
		bg = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+8), int(b.Y+b.H/2-8))
}
