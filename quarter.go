// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/now"
)

// Quarter represents a quarter of the year, Q1 is January to March,
// Q2 April to June, Q3 July to September and Q4 October to December.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// QuarterOf returns the quarter containing month.
func QuarterOf(month time.Month) Quarter {
	return Quarter((int(month)-1)/3 + 1)
}

// FirstMonth returns the first month of the quarter.
func (q Quarter) FirstMonth() time.Month {
	return time.Month(int(q-1)*3 + 1)
}

// LastMonth returns the last month of the quarter. Quarters always start
// in January, April, July or October and hence the last month is never
// later than December.
func (q Quarter) LastMonth() time.Month {
	return q.FirstMonth() + 2
}

func (q Quarter) String() string {
	return "Q" + strconv.Itoa(int(q))
}

// Name returns the name of the quarter for the given year, eg. "2024 Q1".
func (q Quarter) Name(year int) string {
	return fmt.Sprintf("%d %v", year, q)
}

// QuarterRange returns the first and last days of the specified quarter.
func QuarterRange(year int, q Quarter) (first, last Date) {
	d := Date{Year: year, Month: q.FirstMonth(), Day: 1}
	return d, d.LastDayOfQuarter()
}

// Quarter returns the quarter containing d.
func (d Date) Quarter() Quarter {
	return QuarterOf(d.Month)
}

// FirstDayOfQuarter returns the first day of the quarter containing d.
func (d Date) FirstDayOfQuarter() Date {
	return DateOf(now.With(d.Time()).BeginningOfQuarter())
}

// LastDayOfQuarter returns the last day of the quarter containing d.
func (d Date) LastDayOfQuarter() Date {
	return DateOf(now.With(d.Time()).EndOfQuarter())
}

// QuarterBoundary returns the first day of the quarter containing d if
// wantFirst is true, and the last day of that quarter otherwise.
func QuarterBoundary(d Date, wantFirst bool) Date {
	if wantFirst {
		return d.FirstDayOfQuarter()
	}
	return d.LastDayOfQuarter()
}

// StartOfQuarter returns midnight on the first day of the quarter
// containing dt.
func (dt DateTime) StartOfQuarter() DateTime {
	return DateTime{Date: dt.FirstDayOfQuarter()}
}

// EndOfQuarter returns the last second, 23:59:59, of the last day of the
// quarter containing dt.
func (dt DateTime) EndOfQuarter() DateTime {
	return DateTime{Date: dt.LastDayOfQuarter(), Hour: 23, Minute: 59, Second: 59}
}

// QuarterBoundaryDateTime is like QuarterBoundary, but for a DateTime.
// The time of day is 00:00:00 for the start of the quarter and 23:59:59 for
// the end.
func QuarterBoundaryDateTime(dt DateTime, wantFirst bool) DateTime {
	if wantFirst {
		return dt.StartOfQuarter()
	}
	return dt.EndOfQuarter()
}
