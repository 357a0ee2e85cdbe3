// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides support for computing calendar derived dates,
// such as the first or last day of a month or quarter, either relative to
// an explicitly supplied date or to a snapshot of 'now' that is captured
// when a Util is created.
//
// Dates are represented as a year, month and day without any time zone
// and all computations use the proleptic Gregorian calendar.
package calendar

import (
	"fmt"
	"time"
)

// Date represents a calendar date. Use NewDate, ParseDate or DateOf to
// obtain a valid Date, the functions in this package that accept a Date
// assume that it is valid.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the specified year, month and day, or an
// error if day is not a valid day for that month and year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, fmt.Errorf("invalid date: %v", d)
	}
	return d, nil
}

// DateOf returns the Date for the supplied time in its location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in time.DateOnly (2006-01-02) format.
func ParseDate(val string) (Date, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", val, err)
	}
	return DateOf(t), nil
}

// IsValid returns true if the month and day are valid for the year.
func (d Date) IsValid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Time returns the time.Time for midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns d as YYYY-MM-DD. Years before year 0 are written with a
// leading '-' and years after 9999 with a leading '+', the absolute value of
// the year always has at least four digits, eg. -0001-12-31.
func (d Date) String() string {
	var sign string
	year := d.Year
	switch {
	case year < 0:
		sign, year = "-", -year
	case year > 9999:
		sign = "+"
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, year, int(d.Month), d.Day)
}

// DateTime represents a calendar date and a time of day to the nearest
// second. The methods of the embedded Date operate on the date alone.
type DateTime struct {
	Date
	Hour   int
	Minute int
	Second int
}

// NewDateTime returns the DateTime for the specified date and time of day,
// or an error if any of the values are out of range.
func NewDateTime(year int, month time.Month, day, hour, minute, second int) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return DateTime{}, fmt.Errorf("invalid time of day: %02d:%02d:%02d", hour, minute, second)
	}
	return DateTime{Date: d, Hour: hour, Minute: minute, Second: second}, nil
}

// DateTimeOf returns the DateTime for the supplied time in its location,
// any fractional second is discarded.
func DateTimeOf(t time.Time) DateTime {
	h, m, s := t.Clock()
	return DateTime{Date: DateOf(t), Hour: h, Minute: m, Second: s}
}

// ParseDateTime parses a date and time in time.DateTime
// (2006-01-02 15:04:05) format.
func ParseDateTime(val string) (DateTime, error) {
	t, err := time.Parse(time.DateTime, val)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid date time %q, expected YYYY-MM-DD HH:MM:SS: %w", val, err)
	}
	return DateTimeOf(t), nil
}

// Time returns the time.Time for dt in UTC.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%v %02d:%02d:%02d", dt.Date, dt.Hour, dt.Minute, dt.Second)
}
