package gui

import (
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/langswitch/internal/localize"
)

// LabelSlot exposes a label's text as a localizable slot
type LabelSlot struct {
	Label *widget.Label
}

// Get returns the label text
func (s LabelSlot) Get() string { return s.Label.Text }

// Set replaces the label text
func (s LabelSlot) Set(text string) { s.Label.SetText(text) }

// ButtonSlot exposes a button's caption as a localizable slot
type ButtonSlot struct {
	Button *widget.Button
}

// Get returns the button caption
func (s ButtonSlot) Get() string { return s.Button.Text }

// Set replaces the button caption
func (s ButtonSlot) Set(text string) { s.Button.SetText(text) }

// EntrySlot exposes an entry's placeholder as a localizable slot. The
// placeholder is localized rather than the content, since content belongs
// to the user.
type EntrySlot struct {
	Entry *widget.Entry
}

// Get returns the entry placeholder
func (s EntrySlot) Get() string { return s.Entry.PlaceHolder }

// Set replaces the entry placeholder
func (s EntrySlot) Set(text string) { s.Entry.SetPlaceHolder(text) }

// CheckSlot exposes a checkbox's label as a localizable slot
type CheckSlot struct {
	Check *widget.Check
}

// Get returns the checkbox label
func (s CheckSlot) Get() string { return s.Check.Text }

// Set replaces the checkbox label
func (s CheckSlot) Set(text string) {
	s.Check.Text = text
	s.Check.Refresh()
}

// Registry is an explicit slot registry implementing localize.Provider.
// Hosts register every localizable widget once; the coordinator asks for
// the current set on every language switch.
type Registry struct {
	slots []localize.Slot
}

// NewRegistry creates an empty slot registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers localizable slots
func (r *Registry) Add(slots ...localize.Slot) {
	r.slots = append(r.slots, slots...)
}

// Len returns the number of registered slots
func (r *Registry) Len() int {
	return len(r.slots)
}

// Slots returns a snapshot of the registered slots
func (r *Registry) Slots() ([]localize.Slot, error) {
	// Return a copy to prevent external modification
	out := make([]localize.Slot, len(r.slots))
	copy(out, r.slots)
	return out, nil
}
