// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"
	"time"

	"cloudeng.io/calendar"
)

func TestMonthBoundaries(t *testing.T) {
	nd := newDate
	for _, tc := range []struct {
		date        calendar.Date
		n           int
		first, last calendar.Date
	}{
		{nd(2024, 2, 15), 0, nd(2024, 2, 1), nd(2024, 2, 29)},
		{nd(2023, 2, 15), 0, nd(2023, 2, 1), nd(2023, 2, 28)},
		{nd(2024, 1, 10), 2, nd(2023, 11, 1), nd(2023, 11, 30)},
		{nd(2024, 1, 10), 1, nd(2023, 12, 1), nd(2023, 12, 31)},
		{nd(2024, 3, 31), 1, nd(2024, 2, 1), nd(2024, 2, 29)},
		{nd(2024, 3, 31), -1, nd(2024, 4, 1), nd(2024, 4, 30)},
		{nd(2024, 11, 30), -3, nd(2025, 2, 1), nd(2025, 2, 28)},
		{nd(2000, 5, 1), 3, nd(2000, 2, 1), nd(2000, 2, 29)},
		{nd(1900, 5, 1), 3, nd(1900, 2, 1), nd(1900, 2, 28)},
	} {
		if got, want := calendar.FirstDayOfMonthNMonthsAgo(tc.date, tc.n), tc.first; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.date, tc.n, got, want)
		}
		if got, want := calendar.LastDayOfMonthNMonthsAgo(tc.date, tc.n), tc.last; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.date, tc.n, got, want)
		}
	}
}

func TestMonthBoundariesExhaustive(t *testing.T) {
	for year := 1898; year <= 2102; year++ {
		for m := time.January; m <= time.December; m++ {
			for _, day := range []int{1, 15, calendar.DaysInMonth(year, m)} {
				date := newDate(year, m, day)
				for n := -30; n <= 30; n++ {
					// time.Date normalizes out of range months.
					target := time.Date(year, m-time.Month(n), 1, 0, 0, 0, 0, time.UTC)
					first := calendar.FirstDayOfMonthNMonthsAgo(date, n)
					if got, want := first, calendar.DateOf(target); got != want {
						t.Fatalf("%v %v: got %v, want %v", date, n, got, want)
					}
					last := calendar.LastDayOfMonthNMonthsAgo(date, n)
					if got, want := last, calendar.DateOf(target.AddDate(0, 1, -1)); got != want {
						t.Fatalf("%v %v: got %v, want %v", date, n, got, want)
					}
					if got, want := last.Day, calendar.DaysInMonth(last.Year, last.Month); got != want {
						t.Fatalf("%v %v: got %v, want %v", date, n, got, want)
					}
				}
			}
		}
	}
}

func TestFirstLastDayOfMonth(t *testing.T) {
	d := newDate(2024, 2, 10)
	if got, want := d.FirstDayOfMonth(), newDate(2024, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.LastDayOfMonth(), newDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	d = newDate(2024, 12, 31)
	if got, want := d.FirstDayOfMonth(), newDate(2024, 12, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.LastDayOfMonth(), d; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
