package ui

import "testing"

func TestPanel_LayoutStacksRows(t *testing.T) {
	p := NewPanel("Flock", 10, 20, 200, 600)
	p.Section("Rules")
	first := p.AddSlider("Cohesion", 0, 1, 0, 0.05)
	second := p.AddSlider("Separation", 0, 1, 0, 0.6)
	p.Section("Generation")
	box := p.AddCheckbox("Paused", false)
	button := p.AddButton("New generation", nil)

	if !(first.Y < second.Y && second.Y < box.Y && box.Y < button.Y) {
		t.Errorf("rows overlap: %v %v %v %v", first.Y, second.Y, box.Y, button.Y)
	}
	// header then label above the first slider
	if want := 20 + titleHeight + headerHeight + labelHeight; first.Y != want {
		t.Errorf("first slider at y=%v; want %v", first.Y, want)
	}
	for _, x := range []float64{first.X, second.X, box.X, button.X} {
		if x != 10+padding {
			t.Errorf("widget at x=%v; want %v", x, 10+padding)
		}
	}
	if first.W != p.ContentWidth() || button.W != p.ContentWidth() {
		t.Errorf("widths %v, %v; want %v", first.W, button.W, p.ContentWidth())
	}
}

func TestPanel_ScrollBy(t *testing.T) {
	p := NewPanel("Flock", 0, 0, 200, 120)
	var sliders []*Slider
	for range 10 {
		sliders = append(sliders, p.AddSlider("x", 0, 1, 0, 0))
	}
	top := sliders[0].Y

	p.ScrollBy(-50)
	if p.Scroll != 0 {
		t.Errorf("Scroll = %v; cannot scroll above the first row", p.Scroll)
	}

	p.ScrollBy(30)
	if got := sliders[0].Y; got != top-30 {
		t.Errorf("after scrolling 30, first slider at %v; want %v", got, top-30)
	}

	p.ScrollBy(1e6)
	if p.Scroll != p.maxScroll() {
		t.Errorf("Scroll = %v; want it clamped to %v", p.Scroll, p.maxScroll())
	}
	last := p.rows[len(p.rows)-1]
	if !p.visible(last) {
		t.Errorf("last row at y=%v is hidden when fully scrolled", last.y)
	}
	if p.visible(p.rows[0]) {
		t.Error("first row is still visible when fully scrolled")
	}
}

func TestPanel_NoScrollWhenContentFits(t *testing.T) {
	p := NewPanel("Flock", 0, 0, 200, 600)
	p.AddSlider("x", 0, 1, 0, 0)
	p.ScrollBy(100)
	if p.Scroll != 0 {
		t.Errorf("Scroll = %v; want 0", p.Scroll)
	}
}
