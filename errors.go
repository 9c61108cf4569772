/*
Copyright © 2026 the InMAP authors.
This file is part of steadychem.

steadychem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

steadychem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with steadychem.  If not, see <http://www.gnu.org/licenses/>.
*/

package steadychem

import (
	"errors"
	"fmt"
	"math"
)

// Kinds of computation errors. Errors returned by this package wrap
// one of these and can be checked with errors.Is.
var (
	// ErrInvalidInput indicates a physically meaningless input, such
	// as a non-positive temperature or pressure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero indicates that a formula denominator
	// evaluated to zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// checkPositive returns an ErrInvalidInput error if v is not a
// finite number greater than zero.
func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("steadychem: %s=%g but should be >0: %w", name, v, ErrInvalidInput)
	}
	return nil
}

// checkNonNegative returns an ErrInvalidInput error if v is negative
// or not finite.
func checkNonNegative(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return fmt.Errorf("steadychem: %s=%g but should be >=0: %w", name, v, ErrInvalidInput)
	}
	return nil
}

// checkFinite returns an ErrInvalidInput error if the result v of a
// calculation overflowed or is not a number.
func checkFinite(what string, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("steadychem: %s=%g is out of range: %w", what, v, ErrInvalidInput)
	}
	return nil
}

// divide returns num/den, or an ErrDivisionByZero error if den is zero
// or so small that the quotient overflows.
func divide(what string, num, den float64) (float64, error) {
	if den == 0 {
		return math.NaN(), fmt.Errorf("steadychem: %s: denominator is zero: %w", what, ErrDivisionByZero)
	}
	v := num / den
	if math.IsInf(v, 0) {
		return math.NaN(), fmt.Errorf("steadychem: %s: denominator %g is effectively zero: %w",
			what, den, ErrDivisionByZero)
	}
	if math.IsNaN(v) {
		return math.NaN(), fmt.Errorf("steadychem: %s: %g/%g is not a number: %w", what, num, den, ErrInvalidInput)
	}
	return v, nil
}
