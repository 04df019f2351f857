package localize

import (
	"fmt"
	"os"

	"codeberg.org/snonux/langswitch/internal/catalog"
)

// Stats reports the outcome of one language switch
type Stats struct {
	Applied int // slots rewritten, empty translations included
	Skipped int // slots left untouched after a failed lookup
}

// Coordinator holds the active language and rewrites every provided slot
// when it changes. One coordinator serves the whole application; callers
// must serialize SetLanguage themselves (there is no internal locking).
type Coordinator struct {
	table    *catalog.Table
	provider Provider
	current  string

	// Warnf records per-slot failures. Defaults to stderr.
	Warnf func(format string, args ...any)
}

// New creates a Coordinator starting in defaultLanguage. The default is
// not validated against the catalog; an invalid one surfaces per slot on
// the first switch.
func New(table *catalog.Table, provider Provider, defaultLanguage string) *Coordinator {
	return &Coordinator{
		table:    table,
		provider: provider,
		current:  defaultLanguage,
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
}

// CurrentLanguage returns the language the slots are presently rendered in
func (c *Coordinator) CurrentLanguage() string {
	return c.current
}

// AvailableLanguages returns the catalog languages in declaration order
func (c *Coordinator) AvailableLanguages() []string {
	return c.table.Languages()
}

// Apply rewrites every slot from the current language into to. A failed
// lookup skips that one slot with a warning and the batch continues; a
// successful lookup always writes the result, empty string included. Only
// a failed slot enumeration aborts the batch.
func (c *Coordinator) Apply(to string) (Stats, error) {
	slots, err := c.provider.Slots()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to enumerate slots: %w", err)
	}

	var stats Stats
	for i, slot := range slots {
		text := slot.Get()
		translated, err := c.table.Translate(text, c.current, to)
		if err != nil {
			c.Warnf("localize: slot %d (%q) skipped: %v", i, text, err)
			stats.Skipped++
			continue
		}
		slot.Set(translated)
		stats.Applied++
	}
	return stats, nil
}

// SetLanguage switches every slot to lang and records it as the current
// language. When the switch aborts midway the current language is left
// unchanged, but slots rewritten before the abort keep their new text.
func (c *Coordinator) SetLanguage(lang string) (Stats, error) {
	stats, err := c.Apply(lang)
	if err != nil {
		return stats, err
	}
	c.current = lang
	return stats, nil
}
