// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/config"
	"cloudeng.io/cmdutil"
	"cloudeng.io/logging"
	"cloudeng.io/logging/ctxlog"
)

type tool struct {
	globals GlobalFlags
	out     io.Writer
	util    *calendar.Util
}

type result struct {
	Quarter string `json:"quarter,omitempty"`
	Date    string `json:"date,omitempty"`
	First   string `json:"first,omitempty"`
	Last    string `json:"last,omitempty"`
}

// main loads the configuration, creates the logger and takes the
// snapshot of the current time used by every command. Logging settings
// in the configuration file take precedence over the logging flags.
func (t *tool) main(ctx context.Context, runner func(context.Context) error) error {
	var cfg config.Config
	if len(t.globals.Config) > 0 {
		var err error
		if cfg, err = config.Load(ctx, t.globals.Config); err != nil {
			return err
		}
	}
	if len(t.globals.Now) > 0 {
		if _, err := config.ParseTime(t.globals.Now); err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		cfg.Now = t.globals.Now
	}
	lc := t.globals.LoggingConfig()
	if cfg.Logging != (cmdutil.LoggingConfig{}) {
		lc = cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return err
	}
	if t.util, err = cfg.Util(logger.Logger); err == nil {
		err = runner(ctxlog.WithLogger(ctx, logger.Logger))
	}
	return closeLogger(err, logger)
}

// closeLogger closes c and returns err, or the error from Close if
// err is nil.
func closeLogger(err error, c io.Closer) error {
	if cerr := c.Close(); err == nil && cerr != nil {
		return fmt.Errorf("failed to close log file: %w", cerr)
	}
	return err
}

func (t *tool) print(asJSON bool, text string, r result) error {
	if asJSON {
		return logging.NewJSONFormatter(t.out, "", "  ").Format(r)
	}
	_, err := fmt.Fprintln(t.out, text)
	return err
}

func (t *tool) date(v string) (calendar.Date, error) {
	if len(v) == 0 {
		return t.util.Snapshot().Date(), nil
	}
	when, err := config.ParseTime(v)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("--date: %w", err)
	}
	return calendar.DateOf(when), nil
}

func (t *tool) now(_ context.Context, values any, _ []string) error {
	fv := values.(*nowFlags)
	out, err := t.util.FormatNow(fv.Format)
	if err != nil {
		return err
	}
	return t.print(false, out, result{})
}

func (t *tool) field(_ context.Context, _ any, args []string) error {
	var v int
	switch args[0] {
	case "year":
		v = t.util.CurrentYear()
	case "month":
		v = t.util.CurrentMonth()
	case "day":
		v = t.util.CurrentDay()
	default:
		return fmt.Errorf("unsupported field %q, use one of year, month or day", args[0])
	}
	return t.print(false, fmt.Sprint(v), result{})
}

func (t *tool) monthBoundary(ctx context.Context, fv *monthFlags, first bool) error {
	var d calendar.Date
	switch {
	case len(fv.Date) > 0:
		from, err := t.date(fv.Date)
		if err != nil {
			return err
		}
		if first {
			d = calendar.FirstDayOfMonthNMonthsAgo(from, fv.Months)
		} else {
			d = calendar.LastDayOfMonthNMonthsAgo(from, fv.Months)
		}
	case first:
		d = t.util.FirstDayOfMonthNMonthsAgo(fv.Months)
	default:
		d = t.util.LastDayOfMonthNMonthsAgo(fv.Months)
	}
	ctxlog.Logger(ctx).Debug("month boundary", "months", fv.Months, "first", first, "date", d.String())
	return t.print(fv.JSON, d.String(), result{Date: d.String()})
}

func (t *tool) monthStart(ctx context.Context, values any, _ []string) error {
	return t.monthBoundary(ctx, values.(*monthFlags), true)
}

func (t *tool) monthEnd(ctx context.Context, values any, _ []string) error {
	return t.monthBoundary(ctx, values.(*monthFlags), false)
}

func (t *tool) quarterBoundary(ctx context.Context, fv *quarterFlags, first bool) error {
	d, err := t.date(fv.Date)
	if err != nil {
		return err
	}
	var out string
	switch {
	case fv.Time && len(fv.Date) == 0:
		out = t.util.QuarterBoundaryDateTime(first).String()
	case fv.Time:
		out = calendar.QuarterBoundaryDateTime(calendar.DateTime{Date: d}, first).String()
	default:
		out = calendar.QuarterBoundary(d, first).String()
	}
	ctxlog.Logger(ctx).Debug("quarter boundary", "quarter", d.Quarter().Name(d.Year), "first", first, "boundary", out)
	return t.print(fv.JSON, out, result{Quarter: d.Quarter().Name(d.Year), Date: out})
}

func (t *tool) quarterStart(ctx context.Context, values any, _ []string) error {
	return t.quarterBoundary(ctx, values.(*quarterFlags), true)
}

func (t *tool) quarterEnd(ctx context.Context, values any, _ []string) error {
	return t.quarterBoundary(ctx, values.(*quarterFlags), false)
}

func (t *tool) quarter(_ context.Context, values any, _ []string) error {
	fv := values.(*dateFlags)
	d, err := t.date(fv.Date)
	if err != nil {
		return err
	}
	name := d.Quarter().Name(d.Year)
	first, last := calendar.QuarterRange(d.Year, d.Quarter())
	return t.print(fv.JSON,
		fmt.Sprintf("%v %v %v", name, first, last),
		result{Quarter: name, First: first.String(), Last: last.String()})
}
