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

// Names of the reactions used in the steady-state calculations.
const (
	HO2NO   = "HO2+NO"   // HO2 + NO → OH + NO2
	CH3O2NO = "CH3O2+NO" // CH3O2 + NO → CH3O + NO2
	OHO3    = "OH+O3"    // OH + O3 → HO2 + O2
	HO2O3   = "HO2+O3"   // HO2 + O3 → OH + 2 O2
	NOO3    = "NO+O3"    // NO + O3 → NO2 + O2
	OHNO2   = "OH+NO2"   // OH + NO2 + M → HNO3 + M
)

// Mechanism is an interface for sets of chemical rate constants.
type Mechanism interface {
	// RateConstant returns the rate constant of the named reaction
	// [cm³ molec⁻¹ s⁻¹] at temperature t [K]. For three-body
	// reactions, m is the number density of the third body
	// [molec cm⁻³] and the returned value is the effective
	// bimolecular rate constant; m is ignored otherwise.
	// Callers in this module always pass the N2 number density
	// (Scenario.N2 at t and the level pressure) as m.
	// It returns an error if given an invalid reaction name.
	RateConstant(reaction string, t, m float64) (float64, error)

	// Reactions returns the names of the reactions that are
	// available in this mechanism.
	Reactions() []string

	// Units returns the units of the rate constant of the given
	// reaction, or an error if the reaction name is invalid.
	Units(reaction string) (string, error)
}
