// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/swedishcal"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
}

type commands struct {
	out io.Writer
}

func (cf *CommonFlags) setup(ctx context.Context) (context.Context, func(), *printer, error) {
	p, err := newPrinter(cf.Format)
	if err != nil {
		return ctx, nil, nil, err
	}
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	return ctx, func() { _ = logger.Close() }, p, nil
}

func parseDate(ctx context.Context, arg string) (swedishcal.Date, error) {
	d, err := swedishcal.Parse(arg)
	if err != nil {
		return swedishcal.Date{}, err
	}
	ctxlog.Logger(ctx).Debug("parsed date", "arg", arg, "rd", d.RataDie(), "style", d.Style().String())
	return d, nil
}

func parseInt(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q: %w", what, arg, err)
	}
	return n, nil
}

func (c *commands) rataDie(ctx context.Context, values interface{}, args []string) error {
	ctx, done, p, err := values.(*CommonFlags).setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	recs := make([]record, 0, len(args))
	for _, arg := range args {
		d, err := parseDate(ctx, arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		recs = append(recs, newRecord(d))
	}
	errs.Append(p.records(c.out, recs))
	return errs.Err()
}

func (c *commands) date(ctx context.Context, values interface{}, args []string) error {
	ctx, done, p, err := values.(*CommonFlags).setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	recs := make([]record, 0, len(args))
	for _, arg := range args {
		rd, err := parseInt(arg, "day count")
		if err == nil {
			err = swedishcal.CheckRataDie(rd)
		}
		if err != nil {
			errs.Append(err)
			continue
		}
		d := swedishcal.FromRataDie(rd)
		ctxlog.Logger(ctx).Debug("day count", "rd", rd, "date", d.Format(), "style", d.Style().String())
		recs = append(recs, newRecord(d))
	}
	errs.Append(p.records(c.out, recs))
	return errs.Err()
}

func (c *commands) add(ctx context.Context, values interface{}, args []string) error {
	ctx, done, p, err := values.(*CommonFlags).setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	d, err := parseDate(ctx, args[0])
	errs.Append(err)
	n, err := parseInt(args[1], "number of days")
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	sum, err := d.AddDays(n)
	if err != nil {
		return err
	}
	return p.records(c.out, []record{newRecord(sum)})
}

func (c *commands) between(ctx context.Context, values interface{}, args []string) error {
	ctx, done, p, err := values.(*CommonFlags).setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	from, err := parseDate(ctx, args[0])
	errs.Append(err)
	to, err := parseDate(ctx, args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	return p.interval(c.out, interval{
		From: from.Format(),
		To:   to.Format(),
		Days: to.DaysSince(from),
	})
}

var yearMonthRe = regexp.MustCompile(`^([0-9]{1,})-([0-9]{1,2})$`)

func parseYearMonth(arg string) (year, month int, err error) {
	parts := yearMonthRe.FindStringSubmatch(arg)
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid month %q, expected format YYYY-MM", arg)
	}
	if year, err = parseInt(parts[1], "year"); err != nil {
		return
	}
	month, err = parseInt(parts[2], "month")
	return
}

// daysOf returns every day of the specified month as reckoned in Sweden.
func daysOf(year, month int) ([]swedishcal.Date, error) {
	var first swedishcal.Date
	var err error
	for day := 1; day <= 31; day++ {
		if first, err = swedishcal.New(year, month, day); err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%04d-%02d: %w", year, month, err)
	}
	var days []swedishcal.Date
	for d := first; d.Year() == year && d.Month() == month; d = d.Add(1) {
		days = append(days, d)
	}
	return days, nil
}

func (c *commands) month(ctx context.Context, values interface{}, args []string) error {
	ctx, done, p, err := values.(*CommonFlags).setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	year, month, err := parseYearMonth(args[0])
	if err != nil {
		return err
	}
	days, err := daysOf(year, month)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("month", "year", year, "month", month, "days", len(days))
	recs := make([]record, len(days))
	for i, d := range days {
		recs[i] = newRecord(d)
	}
	return p.records(c.out, recs)
}
