// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command swedate converts dates as reckoned in Sweden, including those of
// the Swedish calendar of 1700-1712, to and from day counts and the
// proleptic Gregorian calendar.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: swedate
summary: convert dates as reckoned in Sweden to and from day counts and the proleptic Gregorian calendar. Dates are in the format YYYY-MM-DD, eg. 1712-02-30.
commands:
  - name: rd
    summary: print the day count, style, proleptic Gregorian date and weekday of each date.
    arguments:
      - <date>
      - ...
  - name: date
    summary: print the date as reckoned in Sweden for each day count. Use -- before negative day counts.
    arguments:
      - <day-count>
      - ...
  - name: add
    summary: print the date that is the specified number of days after the given date.
    arguments:
      - <date>
      - <days>
  - name: between
    summary: print the number of days from the first date to the second.
    arguments:
      - <from>
      - <to>
  - name: month
    summary: list every day of the specified month as reckoned in Sweden.
    arguments:
      - <year-month>
`

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmds := &commands{out: out}
	cmdSet.Set("rd").MustRunnerAndFlags(cmds.rataDie,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("date").MustRunnerAndFlags(cmds.date,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(cmds.add,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("between").MustRunnerAndFlags(cmds.between,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("month").MustRunnerAndFlags(cmds.month,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
