// Package note assembles and renders research-note markdown documents with
// YAML front matter.
package note

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotNote = errors.New("not a notekit document")

	timeNow = func() time.Time { return time.Now() }
)

// Statuses a note can carry, in menu order.
var Statuses = []string{"idea", "read", "plan", "progress", "implement"}

// Record holds everything needed to render one note. It is built from CLI
// flags and interactive answers, then consumed exactly once.
type Record struct {
	Title        string
	FilenameBase string
	Description  string
	URL          string
	Status       string
	Tags         []string
}

// SanitizeBase strips every rune outside [A-Za-z0-9 _-] from base, then
// replaces spaces with underscores. The result can legitimately be empty
// when base is nothing but disallowed characters.
func SanitizeBase(base string) string {
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), " ", "_")
}

// SanitizedBase returns the record's filename stem after sanitization.
func (r *Record) SanitizedBase() string {
	return SanitizeBase(r.FilenameBase)
}

// Filename is the markdown filename the record renders to.
func (r *Record) Filename() string {
	return r.SanitizedBase() + ".md"
}

// WikiLinks renders tags as space-joined [[...]] links for the note body.
func WikiLinks(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "[[" + t + "]]"
	}
	return strings.Join(parts, " ")
}
