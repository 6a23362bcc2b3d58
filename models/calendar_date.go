package models

import (
	"fmt"
	"time"
)

const isoDateLayout = "2006-01-02"

// CalendarDate is a validated day-granularity calendar date. It carries no
// clock or zone of its own; callers pin it to an instant with MidnightIn or
// At using the reference time zone. Values are only constructible through
// the constructors below, so an invalid date can never exist.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDate builds a CalendarDate from components, rejecting
// non-existent dates (e.g. 31 February) instead of rolling them over.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return CalendarDate{}, fmt.Errorf("no such calendar date: %04d-%02d-%02d", year, month, day)
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// ParseCalendarDate parses a strict ISO YYYY-MM-DD string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}, nil
}

// DateOf truncates an instant to the calendar date it falls on in loc.
func DateOf(t time.Time, loc *time.Location) CalendarDate {
	y, m, d := t.In(loc).Date()
	return CalendarDate{year: y, month: m, day: d}
}

// MidnightIn returns the start of the date in loc.
func (c CalendarDate) MidnightIn(loc *time.Location) time.Time {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, loc)
}

// At returns the date at the given wall-clock hour and minute in loc.
func (c CalendarDate) At(hour, min int, loc *time.Location) time.Time {
	return time.Date(c.year, c.month, c.day, hour, min, 0, 0, loc)
}

// AddDays returns the date n days later (earlier for negative n).
func (c CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(c.MidnightIn(time.UTC).AddDate(0, 0, n), time.UTC)
}

// AddMonths returns the date n calendar months later, with Go's AddDate
// normalization for short months.
func (c CalendarDate) AddMonths(n int) CalendarDate {
	return DateOf(c.MidnightIn(time.UTC).AddDate(0, n, 0), time.UTC)
}

func (c CalendarDate) Before(o CalendarDate) bool {
	return c.MidnightIn(time.UTC).Before(o.MidnightIn(time.UTC))
}

func (c CalendarDate) After(o CalendarDate) bool {
	return o.Before(c)
}

func (c CalendarDate) Equal(o CalendarDate) bool {
	return c == o
}

func (c CalendarDate) Weekday() time.Weekday {
	return c.MidnightIn(time.UTC).Weekday()
}

func (c CalendarDate) IsZero() bool {
	return c == CalendarDate{}
}

// ISO renders the date as YYYY-MM-DD, the key format of SlotsByDate.
func (c CalendarDate) ISO() string {
	return c.MidnightIn(time.UTC).Format(isoDateLayout)
}

func (c CalendarDate) String() string {
	return c.ISO()
}

// MarshalJSON encodes the date as its ISO string so attempt records
// round-trip through the session store without zone drift.
func (c CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.ISO() + `"`), nil
}

func (c *CalendarDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("calendar date must be a JSON string, got %s", s)
	}
	parsed, err := ParseCalendarDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
