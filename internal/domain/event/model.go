// Package event models the restaurant's events calendar: dated one-off
// events plus pinned (recurring, undated) ones.
package event

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"tapsandtakeout/internal/domain/sanitize"
)

// Max length constants for admin-editable fields.
const (
	MaxTitleLength       = 80
	MaxDescriptionLength = 400
)

// Domain errors
var (
	ErrIndexOutOfRange = errors.New("event index out of range")
	ErrEmptyTitle      = errors.New("event title cannot be empty")
	ErrMissingDate     = errors.New("event date is required unless pinned")
)

// Event is one entry in the events collection. Events are kept in
// insertion order; admin mutations address them by position.
// INVARIANT: Date is non-zero when Pinned is false.
type Event struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	Pinned      bool   `json:"pinned"`
}

// Validate checks the event's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(e.Title) > MaxTitleLength {
		return fmt.Errorf("event title cannot exceed %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(e.Description) > MaxDescriptionLength {
		return fmt.Errorf("event description cannot exceed %d characters", MaxDescriptionLength)
	}
	if !e.Pinned && e.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// ParseForm sanitizes and validates raw event form fields. The returned map
// is keyed by field name ("title", "date", "description"); an empty map
// means the submission is valid. Pinned events do not require a date; a
// date supplied on a pinned event is kept when it parses and dropped
// otherwise.
// PRE: inputs are the already-decoded form values, untrusted
// POST: no side effects; returned Event holds the cleaned values
func ParseForm(title, dateStr, description string, pinned bool) (Event, map[string]string) {
	e := Event{
		Title:       sanitize.Text(title, false),
		Description: sanitize.Text(description, true),
		Pinned:      pinned,
	}
	errs := make(map[string]string)

	if e.Title == "" {
		errs["title"] = "Title is required."
	} else if utf8.RuneCountInString(e.Title) > MaxTitleLength {
		errs["title"] = fmt.Sprintf("Title must be %d characters or fewer.", MaxTitleLength)
	}

	if utf8.RuneCountInString(e.Description) > MaxDescriptionLength {
		errs["description"] = fmt.Sprintf("Description must be %d characters or fewer.", MaxDescriptionLength)
	}

	d, dateErr := ParseDate(dateStr)
	if dateErr == nil {
		e.Date = d
	} else if !pinned {
		errs["date"] = "Enter a valid date."
	}

	return e, errs
}

// RemovePast returns the events that survive a clear-past sweep (every
// pinned event plus every dated event on or after yesterday) and the
// number removed. Input order is preserved.
// PRE: today is the server's current date
// POST: input slice is not mutated
func RemovePast(events []Event, today Date) ([]Event, int) {
	yesterday := today.AddDays(-1)
	kept := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Pinned || !e.Date.Before(yesterday) {
			kept = append(kept, e)
		}
	}
	return kept, len(events) - len(kept)
}
