package domain

import (
	"time"

	"github.com/golang-sql/civil"
)

// Holiday is one listed non-working day. Name is the free-text description
// that followed the date in the source; it plays no part in membership.
type Holiday struct {
	Date civil.Date
	Name string
}

// HolidaySet is an ordered, read-only list of holidays in source order.
// Duplicates are allowed.
type HolidaySet struct {
	items []Holiday
}

// NewHolidaySet copies hs into a new set.
func NewHolidaySet(hs ...Holiday) HolidaySet {
	items := make([]Holiday, len(hs))
	copy(items, hs)
	return HolidaySet{items: items}
}

// SetOf builds a set of unnamed holidays, mostly for tests and fixtures.
func SetOf(dates ...civil.Date) HolidaySet {
	items := make([]Holiday, 0, len(dates))
	for _, d := range dates {
		items = append(items, Holiday{Date: d})
	}
	return HolidaySet{items: items}
}

// Len returns the number of entries, duplicates included.
func (s HolidaySet) Len() int { return len(s.items) }

// Contains reports whether d equals any listed date.
func (s HolidaySet) Contains(d civil.Date) bool {
	for _, h := range s.items {
		if h.Date == d {
			return true
		}
	}
	return false
}

// Dates returns the listed dates in source order.
func (s HolidaySet) Dates() []civil.Date {
	out := make([]civil.Date, 0, len(s.items))
	for _, h := range s.items {
		out = append(out, h.Date)
	}
	return out
}

// Holidays returns a copy of the entries in source order.
func (s HolidaySet) Holidays() []Holiday {
	out := make([]Holiday, len(s.items))
	copy(out, s.items)
	return out
}

// InYear returns the entries whose date falls in year, in source order.
func (s HolidaySet) InYear(year int) []Holiday {
	var out []Holiday
	for _, h := range s.items {
		if h.Date.Year == year {
			out = append(out, h)
		}
	}
	return out
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func IsWeekend(d civil.Date) bool {
	switch Weekday(d) {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// IsHoliday reports whether d is a non-working day: a weekend or a listed holiday.
func IsHoliday(d civil.Date, s HolidaySet) bool {
	return IsWeekend(d) || s.Contains(d)
}

// Weekday derives the day of the week of d in the proleptic Gregorian calendar.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}
