package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyActor  = errors.New("audit actor is required")
	ErrEmptyAction = errors.New("audit action is required")
)

// Entry is one append-only audit fact. Entries are never updated or deleted.
type Entry struct {
	ID        int64
	Actor     string
	Action    string
	Reference string
	At        time.Time
}

// NewEntry builds a validated audit fact, stamping the time when absent.
func NewEntry(actor, action, reference string, at time.Time) (Entry, error) {
	entry := Entry{
		Actor:     strings.TrimSpace(actor),
		Action:    strings.TrimSpace(action),
		Reference: strings.TrimSpace(reference),
		At:        at,
	}
	if entry.At.IsZero() {
		entry.At = time.Now()
	}
	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Validate enforces invariants on the fact.
func (e Entry) Validate() error {
	if e.Actor == "" {
		return ErrEmptyActor
	}
	if e.Action == "" {
		return ErrEmptyAction
	}
	return nil
}
