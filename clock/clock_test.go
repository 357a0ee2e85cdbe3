// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package clock_test

import (
	"testing"
	"time"

	"cloudeng.io/calendar/clock"
)

func TestClocks(t *testing.T) {
	when := time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)

	fixed := clock.Fixed(when)
	for i := 0; i < 3; i++ {
		if got, want := fixed.Now(), when; !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	calls := 0
	fn := clock.Func(func() time.Time {
		calls++
		return when.Add(time.Duration(calls) * time.Hour)
	})
	if got, want := fn.Now(), when.Add(time.Hour); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calls, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := clock.Offset(fixed, 2*time.Hour).Now(), time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := clock.Offset(fixed, -24*time.Hour).Now(), time.Date(2024, 2, 28, 23, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	before := time.Now()
	now := clock.System{}.Now()
	if now.Before(before) || now.After(time.Now()) {
		t.Errorf("system clock out of range: %v", now)
	}
}
