// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calendarutil prints the current date and time, and the month and
// quarter boundaries relative to it, or relative to a supplied date.
//
//	calendarutil now --format="dd/MM/yyyy"
//	calendarutil month-start --months=2
//	calendarutil --now=2024-03-10 quarter-end --time
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

// GlobalFlags are common to all commands.
type GlobalFlags struct {
	Config string `subcmd:"config,,'yaml configuration file'"`
	Now    string `subcmd:"now,,'use this time as the current time, in RFC3339, date-time, date or time only formats'"`
	cmdutil.LoggingFlags
}

type nowFlags struct {
	Format string `subcmd:"format,,'format pattern, the default is yyyy-MM-dd HH:mm:ss'"`
}

type dateFlags struct {
	Date string `subcmd:"date,,'date to use instead of the current date'"`
	JSON bool   `subcmd:"json,false,'print the result as json'"`
}

type monthFlags struct {
	Date   string `subcmd:"date,,'date to use instead of the current date'"`
	JSON   bool   `subcmd:"json,false,'print the result as json'"`
	Months int    `subcmd:"months,0,'number of months ago, negative values move forward'"`
}

type quarterFlags struct {
	Date string `subcmd:"date,,'date to use instead of the current date'"`
	JSON bool   `subcmd:"json,false,'print the result as json'"`
	Time bool   `subcmd:"time,false,'include the time of the boundary, 00:00:00 or 23:59:59'"`
}

type fieldFlags struct{}

func newCommandSet(out io.Writer) *subcmd.CommandSet {
	t := &tool{out: out}

	nowCmd := subcmd.NewCommand("now",
		subcmd.MustRegisterFlagStruct(&nowFlags{}, nil, nil),
		t.now, subcmd.WithoutArguments())
	nowCmd.Document("print the current date and time using a format pattern.")

	fieldCmd := subcmd.NewCommand("field",
		subcmd.MustRegisterFlagStruct(&fieldFlags{}, nil, nil),
		t.field, subcmd.ExactlyNumArguments(1))
	fieldCmd.Document("print one field of the current date.", "year|month|day")

	monthStartCmd := subcmd.NewCommand("month-start",
		subcmd.MustRegisterFlagStruct(&monthFlags{}, nil, nil),
		t.monthStart, subcmd.WithoutArguments())
	monthStartCmd.Document("print the first day of the month that is --months before the current month.")

	monthEndCmd := subcmd.NewCommand("month-end",
		subcmd.MustRegisterFlagStruct(&monthFlags{}, nil, nil),
		t.monthEnd, subcmd.WithoutArguments())
	monthEndCmd.Document("print the last day of the month that is --months before the current month.")

	quarterStartCmd := subcmd.NewCommand("quarter-start",
		subcmd.MustRegisterFlagStruct(&quarterFlags{}, nil, nil),
		t.quarterStart, subcmd.WithoutArguments())
	quarterStartCmd.Document("print the first day of the current quarter.")

	quarterEndCmd := subcmd.NewCommand("quarter-end",
		subcmd.MustRegisterFlagStruct(&quarterFlags{}, nil, nil),
		t.quarterEnd, subcmd.WithoutArguments())
	quarterEndCmd.Document("print the last day of the current quarter.")

	quarterCmd := subcmd.NewCommand("quarter",
		subcmd.MustRegisterFlagStruct(&dateFlags{}, nil, nil),
		t.quarter, subcmd.WithoutArguments())
	quarterCmd.Document("print the name and boundaries of the current quarter.")

	cmdSet := subcmd.NewCommandSet(
		nowCmd,
		fieldCmd,
		monthStartCmd,
		monthEndCmd,
		quarterStartCmd,
		quarterEndCmd,
		quarterCmd)
	cmdSet.Document(`calendar utilities relative to the current date and time.

The current date and time is read once, when a command starts. It may be
overridden using --now or the now field of the configuration file. Dates
supplied via --date may be in RFC3339, date-time or date only formats.`)

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&t.globals, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	cmdSet.WithMain(t.main)
	return cmdSet
}

func main() {
	ctx := context.Background()
	if err := newCommandSet(os.Stdout).Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
