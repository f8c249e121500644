// Package core holds the domain model of jot: notes, the ordered collection
// they live in, and the Service that mutates it through a Repository.
package core

import (
	"time"
)

// TimestampLayout is the on-disk format of Note.Timestamp (local time).
const TimestampLayout = "2006-01-02 15:04:05"

// Note is the central entity of the domain.
// Its identity is its position in a Collection.
type Note struct {
	Text      string `json:"note" yaml:"note"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// NewNote stamps text with t formatted in local time.
func NewNote(text string, t time.Time) Note {
	return Note{
		Text:      text,
		Timestamp: t.Local().Format(TimestampLayout),
	}
}

// Time parses the stored timestamp as local time.
func (n Note) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, n.Timestamp, time.Local)
}

// Collection is the ordered list of notes.
// Insertion order, display order and on-disk order are the same.
type Collection []Note

// Len returns the number of notes.
func (c Collection) Len() int { return len(c) }

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// EventType represents the type of change observed on the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the persisted collection.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
