package ui

import "testing"

type tuning struct {
	Count int
	Gain  float64
	Bias  float64
}

var tuningFields = []Field[tuning]{
	{Section: "Size", Label: "Count", Min: 0, Max: 100, Step: 1,
		Get: func(v *tuning) float64 { return float64(v.Count) },
		Set: func(v *tuning, x float64) { v.Count = int(x) }},
	{Section: "Signal", Label: "Gain", Min: 0, Max: 2,
		Get: func(v *tuning) float64 { return v.Gain },
		Set: func(v *tuning, x float64) { v.Gain = x }},
	{Section: "Signal", Label: "Bias", Min: -1, Max: 1,
		Get: func(v *tuning) float64 { return v.Bias },
		Set: func(v *tuning, x float64) { v.Bias = x }},
}

func TestAddForm_OneSectionPerGroup(t *testing.T) {
	p := NewPanel("Tuning", 0, 0, 200, 600)
	f := AddForm(p, tuningFields, tuning{Count: 40, Gain: 1.5, Bias: -0.2})

	var headers []string
	for _, r := range p.rows {
		if r.widget == nil {
			headers = append(headers, r.text)
		}
	}
	if len(headers) != 2 || headers[0] != "Size" || headers[1] != "Signal" {
		t.Errorf("sections = %v; want [Size Signal]", headers)
	}
	if got := f.Slider("Gain").Value; got != 1.5 {
		t.Errorf("Gain slider = %v; want 1.5", got)
	}
	if f.Slider("Missing") != nil {
		t.Error("Slider of an unknown label must be nil")
	}
}

func TestForm_ApplyWritesOnlyMovedSliders(t *testing.T) {
	p := NewPanel("Tuning", 0, 0, 200, 600)
	// Count lies beyond its slider range
	value := tuning{Count: 500, Gain: 1, Bias: 0}
	f := AddForm(p, tuningFields, value)

	if f.Apply(&value) {
		t.Fatal("Apply reported a change before any drag")
	}

	gain := f.Slider("Gain")
	gain.Value, gain.changed = 0.25, true
	if !f.Apply(&value) {
		t.Fatal("Apply ignored a moved slider")
	}
	want := tuning{Count: 500, Gain: 0.25, Bias: 0}
	if value != want {
		t.Errorf("value = %+v; want %+v", value, want)
	}
}

func TestForm_LoadAndDragging(t *testing.T) {
	p := NewPanel("Tuning", 0, 0, 200, 600)
	f := AddForm(p, tuningFields, tuning{})

	f.Load(tuning{Count: 7, Gain: 0.5, Bias: 3})
	if f.Slider("Count").Value != 7 || f.Slider("Bias").Value != 1 {
		t.Errorf("Load gave count %v bias %v; want 7 and the clamped 1",
			f.Slider("Count").Value, f.Slider("Bias").Value)
	}
	if f.Slider("Count").Changed() {
		t.Error("Load must not report a user change")
	}

	if f.Dragging() {
		t.Error("Dragging before any press")
	}
	f.Slider("Bias").dragging = true
	if !f.Dragging() {
		t.Error("Dragging ignores a held slider")
	}
}
