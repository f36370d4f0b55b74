// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swedishcal

import (
	"fmt"
	"regexp"
	"strconv"
)

var dateRe = regexp.MustCompile(`^(-?[0-9]{1,})-([0-9]{1,2})-([0-9]{1,2})$`)

func formatTriple(year, month, day int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Parse parses a date in the format 'YYYY-MM-DD', eg. '1712-02-30', as
// reckoned in Sweden. The date is validated as per New.
// errors.Is(err, ErrInvalidDate) is true for all returned errors.
func Parse(val string) (Date, error) {
	year, month, day, err := parseTriple(val)
	if err != nil {
		return Date{}, err
	}
	return newDate(year, month, day, false)
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Date {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

func parseTriple(val string) (year, month, day int, err error) {
	parts := dateRe.FindStringSubmatch(val)
	if len(parts) != 4 {
		err = fmt.Errorf("%w: %q is not in the format YYYY-MM-DD", ErrInvalidDate, val)
		return
	}
	// The regular expression guarantees that these are valid integers
	// other than for overflow.
	var errs [3]error
	year, errs[0] = strconv.Atoi(parts[1])
	month, errs[1] = strconv.Atoi(parts[2])
	day, errs[2] = strconv.Atoi(parts[3])
	for _, e := range errs {
		if e != nil {
			err = fmt.Errorf("%w: %q: %w", ErrInvalidDate, val, e)
			return
		}
	}
	return
}

// MarshalText implements encoding.TextMarshaler using the format accepted
// by Parse, with years before AD 1 written with a leading '-', eg.
// '-0001-12-31' for 31 December 1 BC (Julian).
func (d Date) MarshalText() ([]byte, error) {
	return []byte(formatTriple(d.year, d.month, d.day)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike Parse it
// accepts the years before AD 1 written by MarshalText.
func (d *Date) UnmarshalText(text []byte) error {
	year, month, day, err := parseTriple(string(text))
	if err != nil {
		return err
	}
	nd, err := newDate(year, month, day, year < 0)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Format returns d in the format written by MarshalText.
func (d Date) Format() string {
	return formatTriple(d.year, d.month, d.day)
}
