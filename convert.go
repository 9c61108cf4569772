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
	"fmt"

	"github.com/ctessum/unit"
)

// NumberDensity converts a volume mixing ratio [mol/mol] to a number
// density [molec cm⁻³] at temperature t [K] and pressure p [Pa]
// using the ideal gas law. It returns an error wrapping ErrInvalidInput
// if t or p is not positive, if mixingRatio is negative, or if the
// result overflows.
func NumberDensity(mixingRatio, t, p float64) (float64, error) {
	if err := checkNonNegative("mixing ratio", mixingRatio); err != nil {
		return 0, err
	}
	if err := checkPositive("temperature", t); err != nil {
		return 0, err
	}
	if err := checkPositive("pressure", p); err != nil {
		return 0, err
	}
	n := mixingRatio * avNum * p / (rGas * t * cm3perm3)
	if err := checkFinite("number density", n); err != nil {
		return 0, err
	}
	return n, nil
}

// AirDensity returns the number density of air [molec cm⁻³] at
// temperature t [K] and pressure p [Pa].
func AirDensity(t, p float64) (float64, error) {
	return NumberDensity(1, t, p)
}

var (
	// PerMeter3 is the dimension of a number density [m⁻³].
	PerMeter3 = unit.Dimensions{unit.LengthDim: -3}

	// boltzmann is the Boltzmann constant [J/K].
	boltzmann = unit.New(kB, unit.Dimensions{
		unit.MassDim:        1,
		unit.LengthDim:      2,
		unit.TimeDim:        -2,
		unit.TemperatureDim: -1,
	})
)

// NumberDensityUnit is a dimension-checked version of NumberDensity.
// mixingRatio must be dimensionless, t must be in Kelvin and p must
// be in Pascals. The result is in SI units [m⁻³]; use PerCm3 to express
// it in molec cm⁻³.
func NumberDensityUnit(mixingRatio, t, p *unit.Unit) (*unit.Unit, error) {
	if mixingRatio == nil || t == nil || p == nil {
		return nil, fmt.Errorf("steadychem: nil argument to NumberDensityUnit: %w", ErrInvalidInput)
	}
	checks := []struct {
		name string
		u    *unit.Unit
		d    unit.Dimensions
	}{
		{"mixing ratio", mixingRatio, unit.Dimless},
		{"temperature", t, unit.Kelvin},
		{"pressure", p, unit.Pascal},
	}
	for _, c := range checks {
		if err := c.u.Check(c.d); err != nil {
			return nil, fmt.Errorf("steadychem: %s: %v: %w", c.name, err, ErrInvalidInput)
		}
	}
	if err := checkNonNegative("mixing ratio", mixingRatio.Value()); err != nil {
		return nil, err
	}
	if err := checkPositive("temperature", t.Value()); err != nil {
		return nil, err
	}
	if err := checkPositive("pressure", p.Value()); err != nil {
		return nil, err
	}
	n := unit.Div(unit.Mul(mixingRatio, p), unit.Mul(boltzmann, t))
	if err := n.Check(PerMeter3); err != nil {
		return nil, fmt.Errorf("steadychem: number density: %v", err)
	}
	return n, nil
}

// PerCm3 returns the value of number density n [m⁻³] in units of
// molec cm⁻³.
func PerCm3(n *unit.Unit) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("steadychem: nil number density: %w", ErrInvalidInput)
	}
	if err := n.Check(PerMeter3); err != nil {
		return 0, fmt.Errorf("steadychem: %v: %w", err, ErrInvalidInput)
	}
	return n.Value() / cm3perm3, nil
}
