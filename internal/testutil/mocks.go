package testutil

import "codeberg.org/snonux/langswitch/internal/localize"

// FakeSlot is a localize.Slot backed by a plain string that records every
// write made to it
type FakeSlot struct {
	Text   string
	Writes []string
}

// NewFakeSlot creates a FakeSlot displaying the given text
func NewFakeSlot(text string) *FakeSlot {
	return &FakeSlot{Text: text}
}

// Get returns the slot's current text
func (s *FakeSlot) Get() string { return s.Text }

// Set replaces the slot's text and records the write
func (s *FakeSlot) Set(text string) {
	s.Text = text
	s.Writes = append(s.Writes, text)
}

// FakeProvider is a localize.Provider serving a fixed slot list, with an
// optional injected enumeration error and a call counter
type FakeProvider struct {
	SlotList []localize.Slot
	Err      error
	Calls    int
}

// Slots returns the configured slot list or the injected error
func (p *FakeProvider) Slots() ([]localize.Slot, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.SlotList, nil
}
