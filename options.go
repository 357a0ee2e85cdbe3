// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"log/slog"

	"cloudeng.io/calendar/clock"
	"cloudeng.io/calendar/pattern"
)

// Option represents an option for configuring a Util.
type Option func(o *options)

type options struct {
	clock   clock.Clock
	pattern *pattern.Pattern
	logger  *slog.Logger
}

// WithClock sets the clock used to obtain the snapshot of 'now'. The
// default is clock.System.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithDefaultPattern sets the pattern used by FormatNow when it is called
// with an empty format. The default is pattern.Default. A nil or empty
// pattern is ignored.
func WithDefaultPattern(p *pattern.Pattern) Option {
	return func(o *options) {
		if !p.IsZero() {
			o.pattern = p
		}
	}
}

// WithLogger sets the logger used to record the snapshot as it is taken
// and any rejected format patterns. Nothing is logged by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
