// Package journal keeps numbered text entries and, separately, the
// persistence stub that would store them.
//
// Journal only manages its own entries. Saving and loading are a
// different reason to change, so they live on Persistence.
package journal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// IndexError is returned when an entry position does not exist.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("entry index %d out of range [0, %d)", e.Index, e.Len)
}

// Journal is an ordered list of entries, each prefixed with a running
// number. Numbers are never reused after a removal.
type Journal struct {
	id      uuid.UUID
	entries []string
	count   int
}

// New creates an empty journal with a random ID.
func New() *Journal {
	return NewWithID(uuid.New())
}

// NewWithID creates an empty journal with a fixed ID.
func NewWithID(id uuid.UUID) *Journal {
	return &Journal{id: id, entries: []string{}}
}

func (j *Journal) ID() uuid.UUID { return j.id }

// AddEntry appends "<n>: <text>" and returns n. Text is NFC-normalized so
// that visually identical entries compare equal.
func (j *Journal) AddEntry(text string) int {
	j.count++
	j.entries = append(j.entries, fmt.Sprintf("%d: %s", j.count, norm.NFC.String(text)))
	return j.count
}

// RemoveEntry deletes the entry at position index (zero-based).
func (j *Journal) RemoveEntry(index int) error {
	if index < 0 || index >= len(j.entries) {
		return &IndexError{Index: index, Len: len(j.entries)}
	}
	j.entries = append(j.entries[:index], j.entries[index+1:]...)
	return nil
}

// Entries returns a copy of the current entries.
func (j *Journal) Entries() []string {
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of current entries.
func (j *Journal) Len() int { return len(j.entries) }

// Count returns how many entries were ever added.
func (j *Journal) Count() int { return j.count }

// String joins the entries with newlines.
func (j *Journal) String() string {
	return strings.Join(j.entries, "\n")
}
