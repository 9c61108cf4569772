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

// Package noxchem contains rate constants for the reactions that control
// ozone production and loss and the partitioning and lifetime of NOx.
package noxchem

import (
	"fmt"
	"sort"

	"github.com/spatialmodel/steadychem"
)

// rate is a rate constant expression.
type rate interface {
	k(t, m float64) (float64, error)
}

// arrhenius is a rate constant of the form a·exp(-eOverR/T).
// Temperature-independent rate constants have eOverR = 0.
type arrhenius struct {
	a, eOverR float64
}

func (r arrhenius) k(t, _ float64) (float64, error) {
	return steadychem.Arrhenius(r.a, r.eOverR, t)
}

// termolecular is a three-body rate constant in the low-pressure limit,
// k0·(T/300)^-n·[M].
type termolecular struct {
	k0, n float64
}

func (r termolecular) k(t, m float64) (float64, error) {
	return steadychem.Termolecular(r.k0, r.n, t, m)
}

// Mechanism is a set of rate constants. It implements steadychem.Mechanism.
type Mechanism struct {
	name  string
	rates map[string]rate
}

// Reference returns the reference mechanism. Rate constants for the
// peroxy radical and ozone loss reactions are fixed at their values at
// 298 K. NO + O3 is 1.4×10⁻¹² exp(-1310/T) and OH + NO2 is
// 3.3×10⁻³⁰ (T/300)⁻³ [N2], taken from the IUPAC evaluation. With the
// default scenario these give a NOx lifetime of 18.39 hours at 10 km.
func Reference() Mechanism {
	return Mechanism{
		name: "reference",
		rates: map[string]rate{
			steadychem.HO2NO:   arrhenius{a: 8.5e-12},
			steadychem.CH3O2NO: arrhenius{a: 8.5e-12},
			steadychem.OHO3:    arrhenius{a: 7.3e-14},
			steadychem.HO2O3:   arrhenius{a: 2e-15},
			steadychem.NOO3:    arrhenius{a: 1.4e-12, eOverR: 1310},
			steadychem.OHNO2:   termolecular{k0: 3.3e-30, n: 3},
		},
	}
}

// JPL returns a temperature-dependent mechanism with rate constants from
// JPL Publication 15-10 (Burkholder et al., 2015). OH + NO2 uses the
// low-pressure limit.
func JPL() Mechanism {
	return Mechanism{
		name: "jpl",
		rates: map[string]rate{
			steadychem.HO2NO:   arrhenius{a: 3.3e-12, eOverR: -270},
			steadychem.CH3O2NO: arrhenius{a: 2.8e-12, eOverR: -300},
			steadychem.OHO3:    arrhenius{a: 1.7e-12, eOverR: 940},
			steadychem.HO2O3:   arrhenius{a: 1.0e-14, eOverR: 490},
			steadychem.NOO3:    arrhenius{a: 3.0e-12, eOverR: 1500},
			steadychem.OHNO2:   termolecular{k0: 1.8e-30, n: 3},
		},
	}
}

// Names returns the names of the available mechanisms.
func Names() []string {
	return []string{"reference", "jpl"}
}

// ByName returns the mechanism with the given name.
// Valid options are listed by Names.
func ByName(name string) (Mechanism, error) {
	options := map[string]func() Mechanism{
		"reference": Reference,
		"jpl":       JPL,
	}
	f, ok := options[name]
	if !ok {
		return Mechanism{}, fmt.Errorf("noxchem: invalid mechanism %s; valid options are %v", name, Names())
	}
	return f(), nil
}

// Name returns the name of the mechanism.
func (m Mechanism) Name() string { return m.name }

// RateConstant returns the rate constant [cm³ molec⁻¹ s⁻¹] of the named
// reaction at temperature t [K]. thirdBody is the third body number
// density [molec cm⁻³], which is only used for three-body reactions.
func (m Mechanism) RateConstant(reaction string, t, thirdBody float64) (float64, error) {
	r, ok := m.rates[reaction]
	if !ok {
		return 0, fmt.Errorf("noxchem: invalid reaction name %s; valid names are %v", reaction, m.Reactions())
	}
	k, err := r.k(t, thirdBody)
	if err != nil {
		return 0, fmt.Errorf("noxchem: %s: %w", reaction, err)
	}
	return k, nil
}

// Reactions returns the names of the reactions in this mechanism.
func (m Mechanism) Reactions() []string {
	o := make([]string, 0, len(m.rates))
	for r := range m.rates {
		o = append(o, r)
	}
	sort.Strings(o)
	return o
}

// Units returns the units of the rate constant of the given reaction,
// or an error if the reaction name is invalid. Three-body rate constants
// include the third body density, so all units are the same.
func (m Mechanism) Units(reaction string) (string, error) {
	if _, ok := m.rates[reaction]; !ok {
		return "", fmt.Errorf("noxchem: invalid reaction name %s; valid names are %v", reaction, m.Reactions())
	}
	return "cm³ molec⁻¹ s⁻¹", nil
}
