package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Errors returned by Parse and Translate
var (
	// ErrEmptyInput is returned when a catalog is built from empty source text
	ErrEmptyInput = errors.New("catalog source is empty")
	// ErrUnknownLanguage is returned when a language is not a catalog column
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrNoSuchEntry is returned when no row matches the queried text
	ErrNoSuchEntry = errors.New("no catalog entry")
)

// Table is an in-memory translation catalog. Every language column has
// exactly one value per row and row order is shared across languages, so
// row index is the only row identity. Tables are read-only after Parse.
type Table struct {
	languages []string            // header order, duplicates collapsed
	columns   map[string][]string // language -> per-row values
	rows      int
}

// Parse builds a Table from catalog text. The first line is a header of
// comma-separated language codes (all whitespace stripped); every further
// non-blank line is one row of comma-separated fields, where a field is
// either a double-quoted string (commas inside do not split) or a bare
// token. Rows shorter than the header are padded with empty strings.
//
// A language code appearing twice in the header is treated as one
// language; the later column silently overwrites the earlier one.
func Parse(text string) (*Table, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	lines := strings.Split(text, "\n")

	// Header: strip all whitespace, then split on commas
	header := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lines[0])
	tokens := strings.Split(header, ",")

	var languages []string
	index := make(map[string]int, len(tokens)) // column index, last occurrence wins
	for i, tok := range tokens {
		if _, seen := index[tok]; !seen {
			languages = append(languages, tok)
		}
		index[tok] = i
	}

	t := &Table{
		languages: languages,
		columns:   make(map[string][]string, len(languages)),
	}

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := splitRecord(line)
		for _, lang := range languages {
			value := ""
			if i := index[lang]; i < len(fields) {
				value = fields[i]
			}
			t.columns[lang] = append(t.columns[lang], value)
		}
		t.rows++
	}

	return t, nil
}

// splitRecord tokenizes one catalog row into fields, one per separator
// position. A field starting with a double quote captures everything up to
// the closing quote; text between the closing quote and the next comma is
// discarded. An unterminated quote is malformed and yields an empty field,
// consuming the rest of the line.
func splitRecord(line string) []string {
	var fields []string
	pos := 0
	for {
		if pos < len(line) && line[pos] == '"' {
			end := strings.IndexByte(line[pos+1:], '"')
			if end < 0 {
				return append(fields, "")
			}
			fields = append(fields, line[pos+1:pos+1+end])
			pos += end + 2
			next := strings.IndexByte(line[pos:], ',')
			if next < 0 {
				return fields
			}
			pos += next + 1
		} else {
			next := strings.IndexByte(line[pos:], ',')
			if next < 0 {
				return append(fields, line[pos:])
			}
			fields = append(fields, line[pos:pos+next])
			pos += next + 1
		}
	}
}

// Translate returns the to-language value of the first row whose
// from-language value equals text. The comparison is case-sensitive and
// untrimmed, and the scan is linear in the number of rows. The returned
// value may legitimately be the empty string; a nil error distinguishes it
// from a failed lookup.
func (t *Table) Translate(text, from, to string) (string, error) {
	src, ok := t.columns[from]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, from)
	}
	dst, ok := t.columns[to]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, to)
	}
	for i, v := range src {
		if v == text {
			return dst[i], nil
		}
	}
	return "", fmt.Errorf("%w: no %s row matches %q", ErrNoSuchEntry, from, text)
}

// Serialize renders the catalog back to its tabular text form: the
// comma-joined header followed by one newline-terminated comma-joined line
// per row. Values are written bare, so a value containing a comma or
// newline does not survive a Serialize/Parse round trip.
func (t *Table) Serialize() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.languages, ","))
	b.WriteByte('\n')
	for i := 0; i < t.rows; i++ {
		for j, lang := range t.languages {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(t.columns[lang][i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Languages returns the catalog languages in header order.
func (t *Table) Languages() []string {
	// Return a copy to prevent external modification
	out := make([]string, len(t.languages))
	copy(out, t.languages)
	return out
}

// Rows returns the number of data rows in the catalog.
func (t *Table) Rows() int {
	return t.rows
}

// Value returns the entry at the given row in the given language.
func (t *Table) Value(row int, lang string) (string, error) {
	col, ok := t.columns[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if row < 0 || row >= t.rows {
		return "", fmt.Errorf("%w: row %d out of range", ErrNoSuchEntry, row)
	}
	return col[row], nil
}
