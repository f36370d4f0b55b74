// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swedishcal

import (
	"fmt"
	"strings"

	"cloudeng.io/swedishcal/ratadie"
)

// Style represents the calendar rules in effect in Sweden on a given day.
type Style int

const (
	Julian Style = iota
	Swedish
	Gregorian
)

// StyleFor returns the Style in effect for the specified day count.
// 30 February 1712, ratadie.SwedishStyleEnd, is Swedish.
func StyleFor(rd int) Style {
	switch {
	case rd >= ratadie.GregorianStart:
		return Gregorian
	case rd > ratadie.SwedishStyleEnd:
		return Julian
	case rd >= ratadie.SwedishStyleStart:
		return Swedish
	default:
		return Julian
	}
}

type converter struct {
	name        string
	toRataDie   func(year, month, day int) int
	fromRataDie func(rd int) (year, month, day int)
	isLeap      func(year int) bool
}

var converters = [...]converter{
	Julian:    {"Julian", ratadie.JulianToRataDie, ratadie.RataDieToJulian, ratadie.IsJulianLeapYear},
	Swedish:   {"Swedish", ratadie.SwedishToRataDie, ratadie.RataDieToSwedish, ratadie.IsJulianLeapYear},
	Gregorian: {"Gregorian", ratadie.GregorianToRataDie, ratadie.RataDieToGregorian, ratadie.IsGregorianLeapYear},
}

// Valid returns true if s is one of Julian, Swedish or Gregorian.
func (s Style) Valid() bool {
	return s >= Julian && s <= Gregorian
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return converters[s].name
}

// RataDie returns the day count for the specified date using the rules
// of s only. The date is not validated and the Swedish style panics if
// the date is outside of 1 March 1700 to 30 February 1712.
func (s Style) RataDie(year, month, day int) int {
	return converters[s].toRataDie(year, month, day)
}

// Date returns the date for the specified day count using the rules of
// s only.
func (s Style) Date(rd int) (year, month, day int) {
	return converters[s].fromRataDie(rd)
}

// IsLeap returns true if year has a 29th of February under the rules of s.
func (s Style) IsLeap(year int) bool {
	return converters[s].isLeap(year)
}

// ParseStyle parses a style name in either lower or upper case.
func ParseStyle(val string) (Style, error) {
	for i, c := range converters {
		if strings.EqualFold(c.name, val) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("invalid style: %q", val)
}
