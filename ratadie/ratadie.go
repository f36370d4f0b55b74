// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ratadie provides conversions between calendar dates and a
// continuous day count, the 'rata die' or fixed date of Reingold and
// Dershowitz, for the Julian, Gregorian and transitional Swedish calendars.
// Day 1 is 1 January, AD 1 in the proleptic Gregorian calendar.
//
// The Julian calculations follow Reingold, Edward M. and Nachum Dershowitz.
// 2018. Calendrical Calculations: The Ultimate Edition. 4th ed. Cambridge
// University Press. https://doi.org/10.1017/9781107415058.
//
// The arithmetic is exact for day counts between MinRataDie and MaxRataDie,
// even where int is 32 bits. None of the functions in this package validate
// their inputs other than SwedishToRataDie, which panics if called with a
// date outside of the period in which the Swedish calendar was in use.
package ratadie

import (
	"cmp"
	"fmt"
	"time"
)

const (
	// JulianEpoch is the day count of 1 January, AD 1 in the Julian calendar.
	JulianEpoch = -1

	// SwedishStyleStart is the day count of 1 March 1700 in the Swedish
	// calendar, which is 29 February 1700 in the Julian calendar.
	SwedishStyleStart = 620617

	// SwedishStyleEnd is the day count of 30 February 1712 in the Swedish
	// calendar, which is 29 February 1712 in the Julian calendar.
	SwedishStyleEnd = 625000

	// GregorianStart is the day count of 1 March 1753 in the Gregorian
	// calendar, the first day on which Sweden used the Gregorian calendar.
	GregorianStart = 639965
)

const (
	// MinYear is the earliest supported year, 1,000,000 BC in the Julian
	// calendar.
	MinYear = -1000000

	// MaxYear is the latest supported year in the Gregorian calendar.
	MaxYear = 1000000

	// MinRataDie is the day count of 1 January, MinYear (Julian).
	MinRataDie = -365250001

	// MaxRataDie is the day count of 31 December, MaxYear (Gregorian).
	MaxRataDie = 365242500
)

// InRange returns true if rd is between MinRataDie and MaxRataDie inclusive.
func InRange(rd int) bool {
	return rd >= MinRataDie && rd <= MaxRataDie
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - b*floorDiv(a, b)
}

// IsJulianLeapYear returns true if year is a leap year in the Julian
// calendar. Years before AD 1 use historical numbering, ie. there is no
// year zero and -1 is 1 BC, which is a leap year.
func IsJulianLeapYear(year int) bool {
	if year > 0 {
		return year%4 == 0
	}
	return floorMod(year, 4) == 3
}

// IsGregorianLeapYear returns true if year is a leap year in the
// Gregorian calendar.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// JulianToRataDie returns the day count for the specified Julian date.
func JulianToRataDie(year, month, day int) int {
	var correction int
	switch {
	case month <= 2:
		correction = 0
	case IsJulianLeapYear(year):
		correction = -1
	default:
		correction = -2
	}
	y := year
	if year < 0 {
		y++
	}
	return JulianEpoch - 1 + // the day before the epoch
		365*(y-1) + // complete years
		floorDiv(y-1, 4) + // leap days in those years
		floorDiv(367*month-362, 12) + // days before the month, assuming a 30 day Feb.
		correction + day
}

// RataDieToJulian returns the Julian date for the specified day count.
func RataDieToJulian(rd int) (year, month, day int) {
	approx := floorDiv(4*(rd-JulianEpoch)+1464, 1461)
	year = approx
	if approx <= 0 {
		year = approx - 1
	}
	priorDays := rd - JulianToRataDie(year, 1, 1)
	var correction int
	switch {
	case rd < JulianToRataDie(year, 3, 1):
		correction = 0
	case IsJulianLeapYear(year):
		correction = 1
	default:
		correction = 2
	}
	month = floorDiv(12*(priorDays+correction)+373, 367)
	day = rd - JulianToRataDie(year, month, 1) + 1
	return
}

// InSwedishStyle returns true if the specified triple falls within the
// period in which the Swedish calendar was in use, ie. from 1 March 1700
// to 30 February 1712 inclusive. The triple is compared lexicographically
// and need not be a valid date.
func InSwedishStyle(year, month, day int) bool {
	return Compare(year, month, day, 1700, 3, 1) >= 0 &&
		Compare(year, month, day, 1712, 2, 30) <= 0
}

// SwedishToRataDie returns the day count for the specified Swedish date.
// It panics if the date is not between 1 March 1700 and 30 February 1712.
func SwedishToRataDie(year, month, day int) int {
	if !InSwedishStyle(year, month, day) {
		panic(fmt.Sprintf("ratadie: %04d-%02d-%02d is outside of the Swedish calendar", year, month, day))
	}
	if year == 1712 && month == 2 && day == 30 {
		return SwedishStyleEnd
	}
	// The Swedish calendar omitted 29 February 1700 and so remained one
	// day behind the Julian calendar until 30 February 1712.
	return JulianToRataDie(year, month, day) - 1
}

// RataDieToSwedish returns the Swedish date for the specified day count.
// The result is only meaningful for day counts between SwedishStyleStart
// and SwedishStyleEnd.
func RataDieToSwedish(rd int) (year, month, day int) {
	if rd == SwedishStyleEnd {
		return 1712, 2, 30
	}
	return RataDieToJulian(rd + 1)
}

// GregorianToRataDie returns the day count for the specified proleptic
// Gregorian date. Years before AD 1 use astronomical numbering, ie. year 0
// is 1 BC.
func GregorianToRataDie(year, month, day int) int {
	var correction int
	switch {
	case month <= 2:
		correction = 0
	case IsGregorianLeapYear(year):
		correction = -1
	default:
		correction = -2
	}
	y := year - 1
	return 365*y + // complete years
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) + // leap days in those years
		floorDiv(367*month-362, 12) + // days before the month, assuming a 30 day Feb.
		correction + day
}

func gregorianYear(rd int) int {
	d0 := rd - 1
	n400, d1 := floorDiv(d0, 146097), floorMod(d0, 146097)
	n100, d2 := floorDiv(d1, 36524), floorMod(d1, 36524)
	n4, d3 := floorDiv(d2, 1461), floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		// 31 December of a leap year.
		return year
	}
	return year + 1
}

// RataDieToGregorian returns the proleptic Gregorian date for the specified
// day count. Years before AD 1 use astronomical numbering as per the time
// package, ie. year 0 is 1 BC.
func RataDieToGregorian(rd int) (year, month, day int) {
	year = gregorianYear(rd)
	priorDays := rd - GregorianToRataDie(year, 1, 1)
	var correction int
	switch {
	case rd < GregorianToRataDie(year, 3, 1):
		correction = 0
	case IsGregorianLeapYear(year):
		correction = 1
	default:
		correction = 2
	}
	month = floorDiv(12*(priorDays+correction)+373, 367)
	day = rd - GregorianToRataDie(year, month, 1) + 1
	return
}

// Weekday returns the day of the week for the specified day count. Day 1
// is a Monday.
func Weekday(rd int) time.Weekday {
	return time.Weekday(floorMod(rd, 7))
}

// Compare compares two triples lexicographically and returns -1, 0 or +1.
func Compare(y1, m1, d1, y2, m2, d2 int) int {
	if c := cmp.Compare(y1, y2); c != 0 {
		return c
	}
	if c := cmp.Compare(m1, m2); c != 0 {
		return c
	}
	return cmp.Compare(d1, d2)
}
