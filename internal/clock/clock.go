// Package clock provides the simulated calendar date used for every
// validity comparison in the registry. The current date only ever moves
// forward and never consults the wall clock.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDate is returned for malformed, non-calendar, or
// backwards-moving dates.
var ErrInvalidDate = errors.New("invalid date")

// Date is a plain calendar date. The zero value is not a valid date.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Parse parses a DD-MM-YYYY string. Leading zeros are optional; the
// parsed value is not calendar-checked (use Valid for that), matching
// the split between parsing and validation everywhere dates are read.
func Parse(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, ErrInvalidDate
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, ErrInvalidDate
		}
		nums[i] = n
	}
	return Date{Day: nums[0], Month: nums[1], Year: nums[2]}, nil
}

// String formats the date as DD-MM-YYYY with zero-padded day and month.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%d", d.Day, d.Month, d.Year)
}

// Valid reports whether the date exists on the Gregorian calendar.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Month, d.Year)
}

func daysInMonth(month, year int) int {
	days := [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return days[month]
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Compare returns a negative value if d is before other, zero if equal,
// positive if after.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return d.Year - other.Year
	}
	if d.Month != other.Month {
		return d.Month - other.Month
	}
	return d.Day - other.Day
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether the two dates are the same day.
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// Clock holds the simulated current date.
type Clock struct {
	today Date
}

// Start is the initial simulated date.
var Start = Date{Day: 1, Month: 1, Year: 2025}

// New creates a clock set to the given date.
func New(start Date) *Clock {
	return &Clock{today: start}
}

// Today returns the current simulated date.
func (c *Clock) Today() Date {
	return c.today
}

// Advance moves the clock to d. The new date must exist on the calendar
// and must not precede the current date.
func (c *Clock) Advance(d Date) error {
	if !d.Valid() {
		return ErrInvalidDate
	}
	if d.Before(c.today) {
		return ErrInvalidDate
	}
	c.today = d
	return nil
}
