// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package swedishcal provides a date type for the calendar in use in Sweden
// between 1700 and 1753, along with the Julian calendar that preceded it
// and the Gregorian calendar that followed.
//
// In November 1699 Sweden decided to approach the Gregorian calendar
// gradually by omitting every leap day from 1700 to 1740. 29 February 1700
// was omitted, but no further leap days were, leaving the Swedish calendar
// one day ahead of the Julian calendar and ten days behind the Gregorian.
// In 1711 Sweden returned to the Julian calendar by adding a 30 February
// to 1712. The Gregorian calendar was adopted in 1753 with 17 February
// being followed by 1 March.
//
// A Date is a year, month and day as written in Sweden at the time, together
// with the corresponding day count (see package ratadie), which gives all
// dates, regardless of calendar, a single ordering:
//
//	d, err := swedishcal.New(1712, 2, 30)
//	d.Style()              // Swedish
//	d.Add(1)               // 1712-03-01 (Julian)
//	d.ProlepticGregorian() // 1712, 3, 11
package swedishcal

import (
	"cmp"
	"fmt"
	"time"

	"cloudeng.io/swedishcal/ratadie"
)

// DaysInMonth returns the number of days in the given month and year under
// the rules of the specified style. February 1712 has 30 days in the
// Swedish style. It returns 0 for a month outside of 1-12.
func DaysInMonth(year, month int, style Style) int {
	if month < 1 || month > 12 {
		return 0
	}
	switch month {
	case 2:
		switch {
		case style == Swedish && year == 1712:
			return 30
		case style.IsLeap(year):
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// Date represents a single day in Sweden. The zero value is not a valid
// date, Dates must be created using New, MustNew, Parse, FromRataDie or
// FromTime. Dates are comparable with ==.
type Date struct {
	year, month, day int
	rd               int
}

// New returns the Date for the specified year, month and day as reckoned
// in Sweden, ie. using the Julian calendar before 1 March 1700, the
// Swedish calendar until 30 February 1712, the Julian calendar again until
// 17 February 1753 and the Gregorian calendar from 1 March 1753. An
// InvalidDateError is returned for any date that did not exist, including
// 29 February 1700 and 18-28 February 1753; year must be between 1 and
// ratadie.MaxYear.
func New(year, month, day int) (Date, error) {
	return newDate(year, month, day, false)
}

// MustNew is like New but panics on error.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromRataDie returns the Date for the specified day count. Every day count
// between ratadie.MinRataDie and ratadie.MaxRataDie corresponds to exactly
// one Date, FromRataDie panics for any other day count; use CheckRataDie
// to test a day count first. Day counts before 1 January AD 1 (Julian),
// ie. less than ratadie.JulianEpoch, result in negative years with -1 being
// 1 BC.
func FromRataDie(rd int) Date {
	if err := CheckRataDie(rd); err != nil {
		panic(fmt.Sprintf("swedishcal: %v", err))
	}
	y, m, d := StyleFor(rd).Date(rd)
	date, err := newDate(y, m, d, true)
	if err != nil {
		panic(fmt.Sprintf("swedishcal: day count %v: %v", rd, err))
	}
	return date
}

// FromTime returns the Date for the civil date of t interpreted as a
// proleptic Gregorian date. It panics if the day count of t is out
// of range, see CheckRataDie.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return FromRataDie(ratadie.GregorianToRataDie(y, int(m), d))
}

func newDate(year, month, day int, allowBC bool) (Date, error) {
	var style Style
	switch {
	case ratadie.Compare(year, month, day, 1753, 3, 1) >= 0:
		style = Gregorian
	case ratadie.Compare(year, month, day, 1712, 2, 30) > 0:
		if ratadie.Compare(year, month, day, 1753, 2, 18) >= 0 {
			return Date{}, newInvalidDateError(year, month, day,
				fmt.Errorf("18-28 February 1753 were omitted when Sweden adopted the Gregorian calendar"))
		}
		style = Julian
	case ratadie.Compare(year, month, day, 1700, 2, 28) > 0:
		if !ratadie.InSwedishStyle(year, month, day) {
			return Date{}, newInvalidDateError(year, month, day,
				fmt.Errorf("29 February 1700 was omitted from the Swedish calendar"))
		}
		style = Swedish
	default:
		style = Julian
	}
	if err := validate(year, month, day, style, allowBC); err != nil {
		return Date{}, err
	}
	rd := style.RataDie(year, month, day)
	if got := StyleFor(rd); got != style {
		return Date{}, newInvalidDateError(year, month, day,
			fmt.Errorf("day count %v is %v, not %v", rd, got, style))
	}
	return Date{year: year, month: month, day: day, rd: rd}, nil
}

func validate(year, month, day int, style Style, allowBC bool) error {
	var errs []error
	switch {
	case year == 0:
		errs = append(errs, fmt.Errorf("there is no year zero"))
	case year < 0 && !allowBC:
		errs = append(errs, fmt.Errorf("year %v is not positive", year))
	case year < ratadie.MinYear || year > ratadie.MaxYear:
		errs = append(errs, fmt.Errorf("year %v is not in the range %v to %v", year, ratadie.MinYear, ratadie.MaxYear))
	}
	if month < 1 || month > 12 {
		errs = append(errs, fmt.Errorf("month %v is not in the range 1-12", month))
		if day < 1 || day > 31 {
			errs = append(errs, fmt.Errorf("day %v is not in the range 1-31", day))
		}
	} else if n := DaysInMonth(year, month, style); day < 1 || day > n {
		errs = append(errs, fmt.Errorf("day %v is not in the range 1-%v for %04d-%02d (%v)", day, n, year, month, style))
	}
	if len(errs) == 0 {
		return nil
	}
	return newInvalidDateError(year, month, day, errs...)
}

// Add returns the Date n days after d, n may be negative. Like FromRataDie
// it panics if the result is out of range.
func (d Date) Add(n int) Date {
	rd, err := d.offset(n)
	if err != nil {
		panic(fmt.Sprintf("swedishcal: %v", err))
	}
	return FromRataDie(rd)
}

// Sub returns the Date n days before d, n may be negative.
func (d Date) Sub(n int) Date {
	// -math.MinInt is math.MinInt, which Add rejects.
	return d.Add(-n)
}

// AddDays is like Add but returns an error wrapping ErrOutOfRange rather
// than panicking.
func (d Date) AddDays(n int) (Date, error) {
	rd, err := d.offset(n)
	if err != nil {
		return Date{}, err
	}
	return FromRataDie(rd), nil
}

func (d Date) offset(n int) (int, error) {
	// d.rd is in range, so neither bound can overflow.
	if n < ratadie.MinRataDie-d.rd || n > ratadie.MaxRataDie-d.rd {
		return 0, fmt.Errorf("%w: %v plus %v is not in the range %v to %v", ErrOutOfRange, d.rd, n, ratadie.MinRataDie, ratadie.MaxRataDie)
	}
	return d.rd + n, nil
}

// DaysSince returns the number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return d.rd - other.rd
}

// Equal returns true if d and other refer to the same day.
func (d Date) Equal(other Date) bool {
	return d.rd == other.rd
}

// Compare returns -1, 0 or +1 as d is before, the same as, or after other.
func (d Date) Compare(other Date) int {
	return cmp.Compare(d.rd, other.rd)
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d.rd < other.rd
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d.rd > other.rd
}

// RataDie returns the day count for d.
func (d Date) RataDie() int {
	return d.rd
}

// Style returns the calendar in use in Sweden on d.
func (d Date) Style() Style {
	return StyleFor(d.rd)
}

// Year returns the year of d as reckoned in Sweden, negative for BC.
func (d Date) Year() int {
	return d.year
}

// Month returns the month of d, 1-12.
func (d Date) Month() int {
	return d.month
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	return d.day
}

// Triple returns the year, month and day of d as reckoned in Sweden.
func (d Date) Triple() (year, month, day int) {
	return d.year, d.month, d.day
}

// ProlepticGregorian returns the year, month and day of d in the proleptic
// Gregorian calendar, regardless of the calendar in use on d.
func (d Date) ProlepticGregorian() (year, month, day int) {
	return ratadie.RataDieToGregorian(d.rd)
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return ratadie.Weekday(d.rd)
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	y, m, day := d.ProlepticGregorian()
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// String returns the date and its style, eg. '1712-02-30 (Swedish)'.
func (d Date) String() string {
	return fmt.Sprintf("%v (%v)", formatTriple(d.year, d.month, d.day), d.Style())
}
