// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swedishcal

import (
	"fmt"

	"cloudeng.io/errors"

	"cloudeng.io/swedishcal/ratadie"
)

// ErrInvalidDate is returned, wrapped in an InvalidDateError, for any
// date that never existed in Sweden.
var ErrInvalidDate = errors.New("invalid date")

// ErrOutOfRange is returned for day counts outside of ratadie.MinRataDie
// to ratadie.MaxRataDie.
var ErrOutOfRange = errors.New("day count out of range")

// InvalidDateError records the date that failed validation and the
// reasons for the failure. errors.Is(err, ErrInvalidDate) is true for all
// InvalidDateErrors.
type InvalidDateError struct {
	Year, Month, Day int
	Err              error // an errors.M with one error per reason.
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrInvalidDate, formatTriple(e.Year, e.Month, e.Day), e.Err)
}

// Unwrap implements errors.Unwrap() []error.
func (e *InvalidDateError) Unwrap() []error {
	return []error{ErrInvalidDate, e.Err}
}

func newInvalidDateError(year, month, day int, errs ...error) *InvalidDateError {
	return &InvalidDateError{
		Year:  year,
		Month: month,
		Day:   day,
		Err:   errors.NewM(errs...),
	}
}

// CheckRataDie returns an error wrapping ErrOutOfRange if rd is outside
// of the supported range of day counts.
func CheckRataDie(rd int) error {
	if ratadie.InRange(rd) {
		return nil
	}
	return fmt.Errorf("%w: %v is not in the range %v to %v", ErrOutOfRange, rd, ratadie.MinRataDie, ratadie.MaxRataDie)
}
