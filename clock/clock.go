// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package clock provides the source of the current time used when
// computing calendar dates. Injecting a Clock allows for 'now' to be
// controlled in tests and for callers to decide how often it is read.
package clock

import "time"

// Clock represents a source of the current time.
type Clock interface {
	Now() time.Time
}

// System is a Clock that returns the current system time.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time {
	return time.Now()
}

// Func adapts a function to a Clock.
type Func func() time.Time

// Now implements Clock.
func (f Func) Now() time.Time {
	return f()
}

type fixed time.Time

func (f fixed) Now() time.Time {
	return time.Time(f)
}

// Fixed returns a Clock that always returns t.
func Fixed(t time.Time) Clock {
	return fixed(t)
}

type offset struct {
	clock Clock
	delta time.Duration
}

func (o offset) Now() time.Time {
	return o.clock.Now().Add(o.delta)
}

// Offset returns a Clock that is ahead of c by d, or behind it if d
// is negative.
func Offset(c Clock, d time.Duration) Clock {
	return offset{clock: c, delta: d}
}
