// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"cloudeng.io/swedishcal"
)

type record struct {
	Date      string `json:"date" yaml:"date"`
	Style     string `json:"style" yaml:"style"`
	RataDie   int    `json:"rata_die" yaml:"rata_die"`
	Gregorian string `json:"gregorian" yaml:"gregorian"`
	Weekday   string `json:"weekday" yaml:"weekday"`
}

func newRecord(d swedishcal.Date) record {
	gy, gm, gd := d.ProlepticGregorian()
	return record{
		Date:      d.Format(),
		Style:     d.Style().String(),
		RataDie:   d.RataDie(),
		Gregorian: fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd),
		Weekday:   d.Weekday().String(),
	}
}

type interval struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Days int    `json:"days" yaml:"days"`
}

type printer struct {
	format string
}

func newPrinter(format string) (*printer, error) {
	switch format {
	case "text", "json", "yaml":
		return &printer{format: format}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func (p *printer) encode(out io.Writer, v any) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		buf, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = out.Write(buf)
		return err
	}
	return fmt.Errorf("unknown output format %q", p.format)
}

func (p *printer) records(out io.Writer, recs []record) error {
	if p.format != "text" {
		return p.encode(out, recs)
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(out, "%-11s %-9s %7d %-10s %s\n",
			r.Date, r.Style, r.RataDie, r.Gregorian, r.Weekday); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) interval(out io.Writer, iv interval) error {
	if p.format != "text" {
		return p.encode(out, iv)
	}
	_, err := fmt.Fprintf(out, "%d\n", iv.Days)
	return err
}
