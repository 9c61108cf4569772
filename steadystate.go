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
	"math"

	"gonum.org/v1/gonum/floats"
)

// CriticalNOInput holds the inputs to CriticalNO. Densities are in
// molec cm⁻³ and rate constants are in cm³ molec⁻¹ s⁻¹.
type CriticalNOInput struct {
	// Species number densities.
	O3, OH, HO2, CH3O2 float64

	// F is the fraction of O(¹D) that reacts with water vapor
	// rather than being quenched back to O(³P).
	F float64

	// JO1D is the photolysis rate of O3 to O(¹D) [s⁻¹].
	JO1D float64

	// Ozone production: HO2 + NO and CH3O2 + NO.
	KHO2NO, KCH3O2NO float64

	// Ozone loss: OH + O3 and HO2 + O3.
	KOHO3, KHO2O3 float64
}

// CriticalNO returns the NO number density [molec cm⁻³] at which
// the chemical production of ozone,
//	P = [NO] (k(HO2+NO) [HO2] + k(CH3O2+NO) [CH3O2]),
// equals its chemical loss,
//	L = [O3] (k(OH+O3) [OH] + k(HO2+O3) [HO2] + f J(O¹D)).
// Above this concentration ozone is produced, and below it ozone is
// destroyed.
func CriticalNO(in CriticalNOInput) (float64, error) {
	vals := []struct {
		name string
		v    float64
	}{
		{"O3", in.O3}, {"OH", in.OH}, {"HO2", in.HO2}, {"CH3O2", in.CH3O2},
		{"F", in.F}, {"JO1D", in.JO1D},
		{"k(HO2+NO)", in.KHO2NO}, {"k(CH3O2+NO)", in.KCH3O2NO},
		{"k(OH+O3)", in.KOHO3}, {"k(HO2+O3)", in.KHO2O3},
	}
	for _, v := range vals {
		if err := checkNonNegative(v.name, v.v); err != nil {
			return math.NaN(), err
		}
	}
	loss := in.O3 * floats.Dot(
		[]float64{in.KOHO3, in.KHO2O3, in.F},
		[]float64{in.OH, in.HO2, in.JO1D},
	)
	production := floats.Dot(
		[]float64{in.KHO2NO, in.KCH3O2NO},
		[]float64{in.HO2, in.CH3O2},
	)
	return divide("critical NO", loss, production)
}

// Arrhenius returns the rate constant a·exp(-eOverR/t), where a is the
// pre-exponential factor, eOverR is the activation energy divided by the
// gas constant [K], and t is temperature [K].
func Arrhenius(a, eOverR, t float64) (float64, error) {
	if err := checkPositive("temperature", t); err != nil {
		return math.NaN(), err
	}
	k := a * math.Exp(-eOverR/t)
	if err := checkFinite("Arrhenius rate constant", k); err != nil {
		return math.NaN(), err
	}
	return k, nil
}

// Termolecular returns the effective bimolecular rate constant of a
// three-body reaction in the low-pressure limit,
//	k0 (t/300)^-n [M],
// where m is the number density of the third body [molec cm⁻³].
func Termolecular(k0, n, t, m float64) (float64, error) {
	if err := checkPositive("temperature", t); err != nil {
		return math.NaN(), err
	}
	if err := checkNonNegative("third body density", m); err != nil {
		return math.NaN(), err
	}
	k := k0 * math.Pow(t/tRef, -n) * m
	if err := checkFinite("termolecular rate constant", k); err != nil {
		return math.NaN(), err
	}
	return k, nil
}

// PhotostationaryRatio returns the steady-state [NO]/[NO2] ratio
// jNO2 / (k [O3]), where jNO2 is the NO2 photolysis rate [s⁻¹], k is
// the NO + O3 rate constant, and o3 is the ozone number density.
func PhotostationaryRatio(jNO2, k, o3 float64) (float64, error) {
	if err := checkNonNegative("J(NO2)", jNO2); err != nil {
		return math.NaN(), err
	}
	if err := checkNonNegative("k(NO+O3)", k); err != nil {
		return math.NaN(), err
	}
	if err := checkNonNegative("O3", o3); err != nil {
		return math.NaN(), err
	}
	return divide("[NO]/[NO2] ratio", jNO2, k*o3)
}

// NO2Lifetime returns the lifetime [s] of NO2 with respect to
// reaction with OH, 1 / (k [OH]).
func NO2Lifetime(k, oh float64) (float64, error) {
	if err := checkNonNegative("k(OH+NO2)", k); err != nil {
		return math.NaN(), err
	}
	if err := checkNonNegative("OH", oh); err != nil {
		return math.NaN(), err
	}
	return divide("NO2 lifetime", 1, k*oh)
}

// NOxLifetime returns the lifetime [s] of NOx = NO + NO2 given the NO2
// lifetime tauNO2 [s] and the [NO]/[NO2] ratio. Only NO2 is lost, so the
// NOx lifetime is longer by the factor (1 + [NO]/[NO2]).
func NOxLifetime(tauNO2, ratio float64) (float64, error) {
	if err := checkPositive("NO2 lifetime", tauNO2); err != nil {
		return math.NaN(), err
	}
	if err := checkNonNegative("[NO]/[NO2] ratio", ratio); err != nil {
		return math.NaN(), err
	}
	tau := tauNO2 * (1 + ratio)
	if err := checkFinite("NOx lifetime", tau); err != nil {
		return math.NaN(), err
	}
	return tau, nil
}
