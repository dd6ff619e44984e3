package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox toggles a boolean on each click.
type Checkbox struct {
	Bounds
	Value   bool
	changed bool
}

func NewCheckbox(value bool) *Checkbox {
	return &Checkbox{Bounds: Bounds{W: 16, H: 16}, Value: value}
}

// Changed reports whether the last Update toggled the value.
func (c *Checkbox) Changed() bool { return c.changed }

func (c *Checkbox) Update() {
	c.changed = false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && c.Contains(cursor()) {
		c.Value = !c.Value
		c.changed = true
	}
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	if c.Value {
		vector.FillRect(screen, float32(c.X+3), float32(c.Y+3), float32(c.W-6), float32(c.H-6),
			color.RGBA{R: 100, G: 200, B: 100, A: 255}, true)
	}
}
