// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/jinzhu/now"
)

// DaysInMonth returns the number of days in the given month for the given
// year. A year is a leap year if it is divisible by 4 and either not
// divisible by 100 or divisible by 400.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// AddMonths returns the date n months after d, or before d if n is
// negative. The year is carried as needed and the day is clamped to
// the last day of the resulting month, eg. Mar 31 less one month is
// Feb 28 or 29.
func (d Date) AddMonths(n int) Date {
	months := d.Year*12 + int(d.Month) - 1 + n
	year, month := months/12, months%12
	if month < 0 {
		month += 12
		year--
	}
	m := time.Month(month + 1)
	return Date{Year: year, Month: m, Day: min(d.Day, DaysInMonth(year, m))}
}

// FirstDayOfMonth returns the first day of the month containing d.
func (d Date) FirstDayOfMonth() Date {
	return DateOf(now.With(d.Time()).BeginningOfMonth())
}

// LastDayOfMonth returns the last day of the month containing d.
func (d Date) LastDayOfMonth() Date {
	return DateOf(now.With(d.Time()).EndOfMonth())
}

// FirstDayOfMonthNMonthsAgo returns the first day of the month that is
// n months before d. A negative n refers to a month after d.
func FirstDayOfMonthNMonthsAgo(d Date, n int) Date {
	return d.AddMonths(-n).FirstDayOfMonth()
}

// LastDayOfMonthNMonthsAgo returns the last day of the month that is
// n months before d. A negative n refers to a month after d.
func LastDayOfMonthNMonthsAgo(d Date, n int) Date {
	return d.AddMonths(-n).LastDayOfMonth()
}
