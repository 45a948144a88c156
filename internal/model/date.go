package model

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Wire formats used by the payroll backend.
const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04:05"
	DateTimeFormat = "2006-01-02 15:04:05"

	// DisplayDateFormat is how dates are rendered to the user.
	DisplayDateFormat = "02-Jan-2006"
)

// Sentinel dates the backend uses for open-ended effective ranges.
// They decode to the zero Date and must never be shown as literal dates.
var (
	BOT = time.Date(1000, time.January, 1, 0, 0, 0, 0, time.UTC)
	EOT = time.Date(9000, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Date is a point in time as the payroll API exchanges it. The backend
// round-trips plain dates ("2006-01-02"), datetimes ("2006-01-02 15:04:05")
// and time-only values ("15:04:05"); a single type covers all three.
// The zero value means "unset" and marshals as null; the BOT/EOT sentinels
// decode to the zero value.
type Date struct {
	time.Time
}

// NewDate returns a Date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day, with the time part zeroed.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a wire-format date, datetime or time-only string.
// Sentinel and empty strings parse to the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "1000-01-01") || strings.HasPrefix(s, "9000-12-31") {
		return Date{}, nil
	}
	for _, layout := range []string{DateTimeFormat, DateFormat, TimeFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// String returns the wire representation: time-only for year-zero values,
// plain date when the time part is midnight, datetime otherwise.
// The zero Date returns "".
func (d Date) String() string {
	switch {
	case d.IsZero():
		return ""
	case d.Year() == 0:
		return d.Format(TimeFormat)
	case d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0:
		return d.Format(DateFormat)
	default:
		return d.Format(DateTimeFormat)
	}
}

// Display renders the date for the user (dd-MMM-yyyy), or "" when unset.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DisplayDateFormat)
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// MarshalJSON encodes the zero Date as null and everything else as the
// wire string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts null, "", and the three wire layouts. Sentinel
// dates decode to the zero value.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
