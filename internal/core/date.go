package core

import (
	"fmt"
	"strings"
	"time"
)

// ISODateFormat is the canonical stored form of a date.
const ISODateFormat = "2006-01-02"

// dayFirstFormat is the alternate accepted input form.
const dayFirstFormat = "02-01-2006"

// Date is a calendar day. The zero value means "no date".
type Date struct {
	t time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD" or "DD-MM-YYYY" into a canonical Date. Days
// that do not exist on the calendar (e.g. 31-04-2025) fail with
// ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ISODateFormat, dayFirstFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t: t}, nil
		}
	}
	return Date{}, ErrInvalidDate
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// String formats the date in its canonical ISO form.
func (d Date) String() string { return d.t.Format(ISODateFormat) }

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// Before reports whether d is an earlier day than x.
func (d Date) Before(x Date) bool { return d.t.Before(x.t) }

// After reports whether d is a later day than x.
func (d Date) After(x Date) bool { return d.t.After(x.t) }

// In reports whether the date falls inside the given month.
func (d Date) In(m Month) bool {
	return d.t.Year() == m.year && d.t.Month() == m.month
}

// Month is a calendar month, canonical form "YYYY-MM". The zero value means
// "no month restriction".
type Month struct {
	year  int
	month time.Month
}

// ParseMonth parses "YYYY-MM" or "MM-YYYY" into a canonical Month. Anything
// else fails with ErrInvalidMonth.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Month{year: t.Year(), month: t.Month()}, nil
		}
	}
	return Month{}, ErrInvalidMonth
}

func (m Month) IsZero() bool { return m.year == 0 && m.month == 0 }

// String formats the month in its canonical "YYYY-MM" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}
