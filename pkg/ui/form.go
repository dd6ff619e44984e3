package ui

// Field binds one number of a T to a slider.
type Field[T any] struct {
	Section  string
	Label    string
	Min, Max float64
	Step     float64
	Get      func(*T) float64
	Set      func(*T, float64)
}

// Form edits a T through one slider per field.
type Form[T any] struct {
	fields  []Field[T]
	sliders []*Slider
}

// AddForm adds the sliders of fields to p, opening a section each time the section name changes.
func AddForm[T any](p *Panel, fields []Field[T], value T) *Form[T] {
	f := &Form[T]{fields: fields}
	section := ""
	for _, field := range fields {
		if field.Section != section {
			section = field.Section
			p.Section(section)
		}
		f.sliders = append(f.sliders, p.AddSlider(field.Label, field.Min, field.Max, field.Step, field.Get(&value)))
	}
	return f
}

// Load shows value in the sliders without reporting a change.
func (f *Form[T]) Load(value T) {
	for i, field := range f.fields {
		f.sliders[i].SetValue(field.Get(&value))
	}
}

// Apply copies into value the sliders the user moved during the last update.
// Untouched fields keep their value even when it lies outside the slider range.
func (f *Form[T]) Apply(value *T) bool {
	applied := false
	for i, field := range f.fields {
		if f.sliders[i].Changed() {
			field.Set(value, f.sliders[i].Value)
			applied = true
		}
	}
	return applied
}

// Dragging reports whether the user is holding one of the sliders.
func (f *Form[T]) Dragging() bool {
	for _, s := range f.sliders {
		if s.Dragging() {
			return true
		}
	}
	return false
}

// Slider returns the slider of the field with the given label, or nil.
func (f *Form[T]) Slider(label string) *Slider {
	for i, field := range f.fields {
		if field.Label == label {
			return f.sliders[i]
		}
	}
	return nil
}
