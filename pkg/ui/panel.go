package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight  = 30.0
	headerHeight = 24.0
	labelHeight  = 16.0
	rowGap       = 8.0
	padding      = 10.0
	scrollSpeed  = 20.0
)

// row is either a section header, when widget is nil, or a labelled widget.
type row struct {
	text   string
	widget Widget
	y      float64 // top of the row, scroll included
}

func (r row) height() float64 {
	if r.widget == nil {
		return headerHeight
	}
	h := r.widget.Height() + rowGap
	if r.text != "" {
		h += labelHeight
	}
	return h
}

// Panel stacks labelled widgets in sections inside a scrollable column.
// Widgets are positioned by the panel, every add or scroll lays them out again.
type Panel struct {
	Bounds
	Title  string
	Scroll float64

	rows []row

	Background  color.RGBA
	Border      color.RGBA
	HeaderColor color.RGBA
}

func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Bounds:      Bounds{X: x, Y: y, W: width, H: height},
		Title:       title,
		Background:  color.RGBA{R: 30, G: 30, B: 40, A: 230},
		Border:      color.RGBA{R: 100, G: 100, B: 120, A: 255},
		HeaderColor: color.RGBA{R: 50, G: 50, B: 70, A: 255},
	}
}

// ContentWidth is the width available to a widget.
func (p *Panel) ContentWidth() float64 { return p.W - 2*padding }

// Section starts a new titled group of widgets.
func (p *Panel) Section(title string) {
	p.rows = append(p.rows, row{text: title})
	p.layout()
}

// Add appends w below the last row with an optional label above it.
func (p *Panel) Add(label string, w Widget) {
	p.rows = append(p.rows, row{text: label, widget: w})
	p.layout()
}

func (p *Panel) AddSlider(label string, min, max, step, value float64) *Slider {
	s := NewSlider(p.ContentWidth(), min, max, step, value)
	p.Add(label, s)
	return s
}

func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(value)
	p.Add(label, c)
	return c
}

func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.ContentWidth(), label, onClick)
	p.Add("", b)
	return b
}

func (p *Panel) contentHeight() float64 {
	h := 0.0
	for _, r := range p.rows {
		h += r.height()
	}
	return h
}

// maxScroll is how far the content can move up before its end leaves the panel.
func (p *Panel) maxScroll() float64 {
	return max(p.contentHeight()-(p.H-titleHeight-padding), 0)
}

// ScrollBy moves the content up by dy pixels, clamped to the content.
func (p *Panel) ScrollBy(dy float64) {
	p.Scroll = min(max(p.Scroll+dy, 0), p.maxScroll())
	p.layout()
}

func (p *Panel) layout() {
	y := p.Y + titleHeight - p.Scroll
	for i := range p.rows {
		r := &p.rows[i]
		r.y = y
		if r.widget != nil {
			wy := y
			if r.text != "" {
				wy += labelHeight
			}
			r.widget.MoveTo(p.X+padding, wy)
		}
		y += r.height()
	}
}

// visible reports whether the row lies fully inside the scrolled area.
func (p *Panel) visible(r row) bool {
	return r.y >= p.Y+titleHeight && r.y+r.height() <= p.Y+p.H
}

func (p *Panel) Update() {
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(cursor()) {
		p.ScrollBy(-dy * scrollSpeed)
	}
	for _, r := range p.rows {
		if r.widget != nil && p.visible(r) {
			r.widget.Update()
		}
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), p.Background, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 2, p.Border, false)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+padding), int(p.Y+8))

	// rows are clipped below the title, a sub image keeps the screen coordinates
	clip := image.Rect(int(p.X), int(p.Y+titleHeight), int(p.X+p.W), int(p.Y+p.H))
	area := screen.SubImage(clip).(*ebiten.Image)
	for _, r := range p.rows {
		if r.widget == nil {
			vector.FillRect(area, float32(p.X+4), float32(r.y), float32(p.W-8), headerHeight-4, p.HeaderColor, false)
			ebitenutil.DebugPrintAt(area, r.text, int(p.X+padding), int(r.y+2))
			continue
		}
		if r.text != "" {
			ebitenutil.DebugPrintAt(area, r.text, int(p.X+padding), int(r.y))
		}
		r.widget.Draw(area)
	}

	if p.maxScroll() > 0 {
		view := p.H - titleHeight
		thumb := view * view / (view + p.maxScroll())
		top := p.Y + titleHeight + (view-thumb)*p.Scroll/p.maxScroll()
		vector.FillRect(screen, float32(p.X+p.W-5), float32(top), 3, float32(thumb), p.Border, false)
	}
}
