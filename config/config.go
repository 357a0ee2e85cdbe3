// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the YAML configuration used by the calendarutil
// command. A configuration may set the default format pattern, pin the
// clock to a fixed time and configure logging, for example:
//
//	format: "yyyy/MM/dd HH:mm"
//	now: "2024-03-10 12:00:00"
//	logging:
//	  level: 2
//	  format: text
//
// The now field accepts time.RFC3339, time.DateTime, time.TimeOnly and
// time.DateOnly formats.
package config

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/clock"
	"cloudeng.io/calendar/pattern"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/file"
)

// Config represents the configuration for the calendarutil command.
type Config struct {
	Format  pattern.Pattern       `yaml:"format"`
	Now     string                `yaml:"now"`
	Logging cmdutil.LoggingConfig `yaml:"logging"`
}

// Parse parses the supplied YAML configuration. Unknown fields are
// reported as errors and the parsed configuration is validated. An empty
// specification yields the zero Config.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(spec)) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Load is like Parse but reads the configuration from the named file
// using file.FSReadFile, so that any fs.ReadFileFS stored in the context
// via file.ContextWithFS is consulted before the local filesystem.
func Load(ctx context.Context, filename string) (Config, error) {
	if len(filename) == 0 {
		return Config{}, fmt.Errorf("no config file specified")
	}
	spec, err := file.FSReadFile(ctx, filename)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(spec)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate returns all of the problems found with the configuration.
func (c Config) Validate() error {
	var errs errors.M
	if len(c.Now) > 0 {
		if _, err := ParseTime(c.Now); err != nil {
			errs.Append(fmt.Errorf("now: %w", err))
		}
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs.Append(fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format))
	}
	if c.Logging.Level < 0 {
		errs.Append(fmt.Errorf("logging.level: must be >= 0: %v", c.Logging.Level))
	}
	return errs.Err()
}

// ParseTime parses a time using any of the formats accepted by the
// now field.
func ParseTime(v string) (time.Time, error) {
	var tf flags.Time
	if err := tf.Set(v); err != nil {
		return time.Time{}, err
	}
	return tf.Get().(time.Time), nil
}

// Clock returns a clock fixed at the configured now value, or the
// system clock if now is not set. An error is returned if now cannot
// be parsed.
func (c Config) Clock() (clock.Clock, error) {
	if len(c.Now) == 0 {
		return clock.System{}, nil
	}
	t, err := ParseTime(c.Now)
	if err != nil {
		return nil, fmt.Errorf("now: %w", err)
	}
	return clock.Fixed(t), nil
}

// Pattern returns the configured default pattern, or nil if none
// was configured.
func (c Config) Pattern() *pattern.Pattern {
	if c.Format.IsZero() {
		return nil
	}
	p := c.Format
	return &p
}

// Util returns a calendar.Util using the configured clock and default
// pattern. A nil logger is ignored.
func (c Config) Util(logger *slog.Logger, opts ...calendar.Option) (*calendar.Util, error) {
	clk, err := c.Clock()
	if err != nil {
		return nil, err
	}
	all := []calendar.Option{
		calendar.WithClock(clk),
		calendar.WithDefaultPattern(c.Pattern()),
	}
	if logger != nil {
		all = append(all, calendar.WithLogger(logger))
	}
	return calendar.New(append(all, opts...)...), nil
}
