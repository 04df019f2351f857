package localize

// Slot is one host-provided text location subject to localization, such as
// a label or button caption. The coordinator never assumes a concrete
// backing type.
type Slot interface {
	// Get returns the text currently displayed by the slot
	Get() string

	// Set replaces the slot's displayed text
	Set(text string)
}

// Provider enumerates the host's localizable slots. It is called afresh on
// every language switch and must never be cached, since the host's slot
// set may change between switches.
type Provider interface {
	// Slots returns the current set of localizable slots
	Slots() ([]Slot, error)
}

// SlotFunc adapts a getter/setter pair to the Slot interface for hosts
// without a natural receiver type.
type SlotFunc struct {
	GetFunc func() string
	SetFunc func(string)
}

// Get returns the text from the wrapped getter
func (s SlotFunc) Get() string { return s.GetFunc() }

// Set forwards the text to the wrapped setter
func (s SlotFunc) Set(text string) { s.SetFunc(text) }

// ProviderFunc adapts an enumeration function to the Provider interface
type ProviderFunc func() ([]Slot, error)

// Slots invokes the wrapped enumeration function
func (p ProviderFunc) Slots() ([]Slot, error) { return p() }
