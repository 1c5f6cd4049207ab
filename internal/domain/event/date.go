package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. The zero value
// means "no date" (valid only on pinned events). Dates cross the storage
// boundary as YYYY-MM-DD strings; everything else works with this type.
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string.
// PRE: none
// POST: returns a non-zero Date, or an error for anything that is not a
// valid calendar date in that layout
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// NewDate builds a Date from components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the server's current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// String formats the date as YYYY-MM-DD. The zero Date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether the two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// MarshalJSON encodes the date as a YYYY-MM-DD string; the zero Date
// encodes as the empty string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string. Empty string and null decode
// to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
