package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider edits a number between Min and Max. A drag starts on the slider and follows
// the cursor until the button is released, even outside the slider.
type Slider struct {
	Bounds
	Value    float64
	Min, Max float64
	Step     float64 // 0 means continuous

	dragging bool
	changed  bool
}

// NewSlider creates a slider of the given width, the panel places it.
func NewSlider(width, min, max, step, value float64) *Slider {
	s := &Slider{Bounds: Bounds{W: width, H: 12}, Min: min, Max: max, Step: step}
	s.SetValue(value)
	return s
}

// SetValue sets the value without reporting a change, it is clamped and snapped to Step.
func (s *Slider) SetValue(v float64) {
	s.Value = s.snap(v)
}

// Changed reports whether the last Update modified the value.
func (s *Slider) Changed() bool { return s.changed }

// Dragging reports whether the user is holding the slider.
func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) snap(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return min(max(v, s.Min), s.Max)
}

// valueAt maps a cursor abscissa to a value.
func (s *Slider) valueAt(mx float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	return s.snap(s.Min + (mx-s.X)/s.W*(s.Max-s.Min))
}

func (s *Slider) Update() {
	s.changed = false
	mx, my := cursor()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.Contains(mx, my):
		s.dragging = true
	case !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.dragging = false
	}
	if !s.dragging {
		return
	}
	if v := s.valueAt(mx); v != s.Value {
		s.Value = v
		s.changed = true
	}
}

func (s *Slider) Draw(screen *ebiten.Image) {
	track := color.RGBA{R: 80, G: 80, B: 80, A: 255}
	fill := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	if s.dragging {
		fill = color.RGBA{R: 120, G: 190, B: 255, A: 255}
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), track, true)

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), fill, true)

	ebitenutil.DebugPrintAt(screen, s.format(), int(s.X+s.W-60), int(s.Y-labelHeight))
}

func (s *Slider) format() string {
	if s.Step >= 1 {
		return fmt.Sprintf("%8.0f", s.Value)
	}
	return fmt.Sprintf("%8.3f", s.Value)
}
