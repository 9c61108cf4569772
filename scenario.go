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
)

// OzoneBudget specifies the conditions used to calculate the critical NO
// concentration.
type OzoneBudget struct {
	// Temperature [K] and Pressure [Pa] used to convert mixing ratios
	// to number densities and to evaluate rate constants.
	Temperature, Pressure float64

	// Volume mixing ratios [mol/mol] of HO2, CH3O2 and O3.
	HO2, CH3O2, O3 float64

	// OH is the hydroxyl radical number density [molec cm⁻³].
	OH float64

	// F is the fraction of O(¹D) that reacts with water vapor to form OH.
	F float64

	// JO1D is the photolysis rate of O3 to O(¹D) [s⁻¹].
	JO1D float64
}

// Level specifies the conditions at an atmospheric level at which to
// calculate the NOx lifetime.
type Level struct {
	// Name is a label for the level, for example "surface".
	Name string

	Temperature float64 // [K]
	Pressure    float64 // [Pa]

	// O3 is the ozone volume mixing ratio [mol/mol].
	O3 float64

	// OH is the hydroxyl radical number density [molec cm⁻³].
	OH float64

	// JNO2 is the NO2 photolysis rate [s⁻¹].
	JNO2 float64
}

// Scenario holds all inputs to a steady-state calculation.
type Scenario struct {
	Budget OzoneBudget
	Levels []Level

	// N2 is the volume mixing ratio of N2, which is used as the
	// third body in all three-body reactions.
	N2 float64
}

// DefaultScenario returns a scenario with typical conditions at the
// surface and at 10 km altitude.
func DefaultScenario() *Scenario {
	return &Scenario{
		Budget: OzoneBudget{
			Temperature: SurfaceTemperature,
			Pressure:    SurfacePressure,
			HO2:         40e-12,
			CH3O2:       25e-12,
			O3:          40e-9,
			OH:          1e6,
			F:           0.15,
			JO1D:        2.5e-5,
		},
		Levels: []Level{
			{
				Name:        "surface",
				Temperature: SurfaceTemperature,
				Pressure:    SurfacePressure,
				O3:          40e-9,
				OH:          1e6,
				JNO2:        1e-2,
			},
			{
				Name:        "10 km",
				Temperature: 220,
				Pressure:    28000,
				O3:          100e-9,
				OH:          1e6,
				JNO2:        1e-2,
			},
		},
		N2: N2MixingRatio,
	}
}

// Validate checks that the scenario is physically meaningful.
// Any error it returns wraps ErrInvalidInput.
func (s *Scenario) Validate() error {
	b := s.Budget
	if err := checkPositive("Budget.Temperature", b.Temperature); err != nil {
		return err
	}
	if err := checkPositive("Budget.Pressure", b.Pressure); err != nil {
		return err
	}
	if b.F < 0 || b.F > 1 {
		return fmt.Errorf("steadychem: Budget.F=%g but should be between 0 and 1: %w", b.F, ErrInvalidInput)
	}
	if len(s.Levels) == 0 {
		return fmt.Errorf("steadychem: no atmospheric levels specified: %w", ErrInvalidInput)
	}
	names := make(map[string]bool)
	for i, l := range s.Levels {
		if l.Name == "" {
			return fmt.Errorf("steadychem: level %d has no name: %w", i, ErrInvalidInput)
		}
		if names[l.Name] {
			return fmt.Errorf("steadychem: duplicate level name %q: %w", l.Name, ErrInvalidInput)
		}
		names[l.Name] = true
		if err := checkPositive(l.Name+" temperature", l.Temperature); err != nil {
			return err
		}
		if err := checkPositive(l.Name+" pressure", l.Pressure); err != nil {
			return err
		}
	}
	if s.N2 < 0 || s.N2 > 1 {
		return fmt.Errorf("steadychem: N2=%g but should be between 0 and 1: %w", s.N2, ErrInvalidInput)
	}
	return nil
}

// LevelResult holds the NOx lifetime results for one atmospheric level.
type LevelResult struct {
	Name string `json:"Name" toml:"Name" yaml:"Name"`

	// Ratio is the photostationary [NO]/[NO2] ratio.
	Ratio float64 `json:"Ratio" toml:"Ratio" yaml:"Ratio"`

	// TauNO2 and TauNOx are the lifetimes of NO2 and NOx [s].
	TauNO2 float64 `json:"TauNO2" toml:"TauNO2" yaml:"TauNO2"`
	TauNOx float64 `json:"TauNOx" toml:"TauNOx" yaml:"TauNOx"`

	// Derived holds user-defined output variables. See Report.Derive.
	Derived map[string]float64 `json:"Derived,omitempty" toml:"Derived,omitempty" yaml:"Derived,omitempty"`

	level Level
}

// Hours returns the NOx lifetime in hours.
func (r LevelResult) Hours() float64 {
	return r.TauNOx / secondsPerHour
}

// Report holds the results of a steady-state calculation.
type Report struct {
	// CriticalNO is the NO number density [molec cm⁻³] at which
	// ozone production equals ozone loss.
	CriticalNO float64 `json:"CriticalNO" toml:"CriticalNO" yaml:"CriticalNO"`

	Levels []LevelResult `json:"Levels" toml:"Levels" yaml:"Levels"`
}

// Level returns the result for the level with the given name.
func (r *Report) Level(name string) (LevelResult, error) {
	for _, l := range r.Levels {
		if l.Name == name {
			return l, nil
		}
	}
	return LevelResult{}, fmt.Errorf("steadychem: no level named %q", name)
}

// Evaluate calculates the critical NO concentration and the NOx lifetime
// at each level in s using the rate constants in m.
func Evaluate(s *Scenario, m Mechanism) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	noCrit, err := criticalNO(s.Budget, s.N2, m)
	if err != nil {
		return nil, err
	}
	r := &Report{
		CriticalNO: noCrit,
		Levels:     make([]LevelResult, len(s.Levels)),
	}
	for i, l := range s.Levels {
		lr, err := evaluateLevel(l, s.N2, m)
		if err != nil {
			return nil, fmt.Errorf("steadychem: level %s: %w", l.Name, err)
		}
		r.Levels[i] = lr
	}
	return r, nil
}

// criticalNO converts the budget mixing ratios to number densities and
// calculates the critical NO concentration.
func criticalNO(b OzoneBudget, n2MixingRatio float64, m Mechanism) (float64, error) {
	in := CriticalNOInput{
		OH:   b.OH,
		F:    b.F,
		JO1D: b.JO1D,
	}
	densities := []struct {
		mixingRatio float64
		density     *float64
	}{
		{b.O3, &in.O3},
		{b.HO2, &in.HO2},
		{b.CH3O2, &in.CH3O2},
	}
	for _, d := range densities {
		n, err := NumberDensity(d.mixingRatio, b.Temperature, b.Pressure)
		if err != nil {
			return 0, err
		}
		*d.density = n
	}
	n2, err := NumberDensity(n2MixingRatio, b.Temperature, b.Pressure)
	if err != nil {
		return 0, err
	}
	rates := []struct {
		reaction string
		k        *float64
	}{
		{HO2NO, &in.KHO2NO},
		{CH3O2NO, &in.KCH3O2NO},
		{OHO3, &in.KOHO3},
		{HO2O3, &in.KHO2O3},
	}
	for _, r := range rates {
		k, err := m.RateConstant(r.reaction, b.Temperature, n2)
		if err != nil {
			return 0, err
		}
		*r.k = k
	}
	return CriticalNO(in)
}

// evaluateLevel calculates the [NO]/[NO2] ratio and the NO2 and NOx
// lifetimes at level l.
func evaluateLevel(l Level, n2MixingRatio float64, m Mechanism) (LevelResult, error) {
	n2, err := NumberDensity(n2MixingRatio, l.Temperature, l.Pressure)
	if err != nil {
		return LevelResult{}, err
	}
	o3, err := NumberDensity(l.O3, l.Temperature, l.Pressure)
	if err != nil {
		return LevelResult{}, err
	}
	kNOO3, err := m.RateConstant(NOO3, l.Temperature, n2)
	if err != nil {
		return LevelResult{}, err
	}
	ratio, err := PhotostationaryRatio(l.JNO2, kNOO3, o3)
	if err != nil {
		return LevelResult{}, err
	}

	kOHNO2, err := m.RateConstant(OHNO2, l.Temperature, n2)
	if err != nil {
		return LevelResult{}, err
	}
	tauNO2, err := NO2Lifetime(kOHNO2, l.OH)
	if err != nil {
		return LevelResult{}, err
	}
	tauNOx, err := NOxLifetime(tauNO2, ratio)
	if err != nil {
		return LevelResult{}, err
	}
	return LevelResult{
		Name:   l.Name,
		Ratio:  ratio,
		TauNO2: tauNO2,
		TauNOx: tauNOx,
		level:  l,
	}, nil
}
