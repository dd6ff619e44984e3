package view

import "github.com/lao-tseu-is-alive/go-boids/pkg/behavior"

type settingsWriter interface {
	Store(s behavior.Settings) error
}

// settingsSaver holds the last edited settings until the user releases the slider,
// so a drag writes the file once.
type settingsSaver struct {
	store   settingsWriter
	pending *behavior.Settings
}

// Edited records s as the settings to save.
func (sv *settingsSaver) Edited(s behavior.Settings) {
	sv.pending = &s
}

// Discard forgets the pending settings.
func (sv *settingsSaver) Discard() {
	sv.pending = nil
}

// Flush writes the pending settings unless a slider is still held.
// It reports whether a write was attempted.
func (sv *settingsSaver) Flush(dragging bool) (bool, error) {
	if sv.pending == nil || dragging {
		return false, nil
	}
	s := *sv.pending
	sv.pending = nil
	return true, sv.store.Store(s)
}
