// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"log/slog"
	"time"

	"cloudeng.io/calendar/clock"
	"cloudeng.io/calendar/pattern"
)

var defaultPattern = pattern.MustCompile(pattern.Default)

// Snapshot represents the value of 'now' captured when a Util is created.
type Snapshot struct {
	when     time.Time
	date     Date
	dateTime DateTime
}

func newSnapshot(t time.Time) Snapshot {
	return Snapshot{when: t, date: DateOf(t), dateTime: DateTimeOf(t)}
}

// Time returns the time.Time read from the clock.
func (s Snapshot) Time() time.Time {
	return s.when
}

// Date returns the date of the snapshot.
func (s Snapshot) Date() Date {
	return s.date
}

// DateTime returns the date and time of the snapshot.
func (s Snapshot) DateTime() DateTime {
	return s.dateTime
}

// Util provides calendar computations relative to a snapshot of 'now'
// that is read from its clock exactly once, when the Util is created.
// The snapshot is never updated, so a long lived Util will report
// an increasingly stale current date; use Refresh to obtain a Util with
// a new snapshot. A Util is immutable and safe for concurrent use.
type Util struct {
	opts     options
	snapshot Snapshot
}

// New returns a Util whose snapshot is read from the configured clock.
func New(opts ...Option) *Util {
	u := &Util{}
	u.opts.clock = clock.System{}
	u.opts.pattern = defaultPattern
	u.opts.logger = slog.New(slog.DiscardHandler)
	for _, fn := range opts {
		fn(&u.opts)
	}
	u.capture()
	return u
}

func (u *Util) capture() {
	u.snapshot = newSnapshot(u.opts.clock.Now())
	u.opts.logger.Debug("calendar snapshot", "now", u.snapshot.dateTime.String())
}

// Refresh returns a new Util, with the same options as u, but with a new
// snapshot read from the clock. u itself is unchanged.
func (u *Util) Refresh() *Util {
	n := &Util{opts: u.opts}
	n.capture()
	return n
}

// Snapshot returns the snapshot of 'now' used by u.
func (u *Util) Snapshot() Snapshot {
	return u.snapshot
}

// FormatNow formats the snapshot using the supplied pattern, or the
// default pattern if format is empty. The returned error, if any, will
// be a *pattern.InvalidFormatError.
func (u *Util) FormatNow(format string) (string, error) {
	if len(format) == 0 {
		return u.opts.pattern.Format(u.snapshot.when), nil
	}
	p, err := pattern.Compile(format)
	if err != nil {
		u.opts.logger.Warn("rejected format pattern", "pattern", format, "error", err)
		return "", err
	}
	return p.Format(u.snapshot.when), nil
}

// CurrentYear returns the year of the snapshot.
func (u *Util) CurrentYear() int {
	return u.snapshot.date.Year
}

// CurrentMonth returns the month of the snapshot, 1-12.
func (u *Util) CurrentMonth() int {
	return int(u.snapshot.date.Month)
}

// CurrentDay returns the day of the month of the snapshot, 1-31.
func (u *Util) CurrentDay() int {
	return u.snapshot.date.Day
}

// FirstDayOfMonthNMonthsAgo is like the function of the same name but
// relative to the snapshot.
func (u *Util) FirstDayOfMonthNMonthsAgo(n int) Date {
	return FirstDayOfMonthNMonthsAgo(u.snapshot.date, n)
}

// LastDayOfMonthNMonthsAgo is like the function of the same name but
// relative to the snapshot.
func (u *Util) LastDayOfMonthNMonthsAgo(n int) Date {
	return LastDayOfMonthNMonthsAgo(u.snapshot.date, n)
}

// QuarterBoundary is like the function of the same name but for the
// quarter containing the snapshot.
func (u *Util) QuarterBoundary(wantFirst bool) Date {
	return QuarterBoundary(u.snapshot.date, wantFirst)
}

// QuarterBoundaryDateTime is like the function of the same name but for
// the quarter containing the snapshot.
func (u *Util) QuarterBoundaryDateTime(wantFirst bool) DateTime {
	return QuarterBoundaryDateTime(u.snapshot.dateTime, wantFirst)
}
