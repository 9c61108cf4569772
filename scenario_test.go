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

package steadychem_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spatialmodel/steadychem"
	"github.com/spatialmodel/steadychem/science/chem/noxchem"
	"gonum.org/v1/gonum/floats"
)

func TestEvaluate(t *testing.T) {
	const tolerance = 0.01
	r, err := steadychem.Evaluate(steadychem.DefaultScenario(), noxchem.Reference())
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinRel(r.CriticalNO, 4.19e8, tolerance) {
		t.Errorf("critical NO: have %g, want %g", r.CriticalNO, 4.19e8)
	}
	tests := []struct {
		level        string
		ratio, hours float64
	}{
		{level: "surface", ratio: 0.59, hours: 6.81},
		{level: "10 km", ratio: 2.99, hours: 18.37},
	}
	for _, test := range tests {
		t.Run(test.level, func(t *testing.T) {
			l, err := r.Level(test.level)
			if err != nil {
				t.Fatal(err)
			}
			if !floats.EqualWithinRel(l.Ratio, test.ratio, tolerance) {
				t.Errorf("[NO]/[NO2]: have %g, want %g", l.Ratio, test.ratio)
			}
			if !floats.EqualWithinRel(l.Hours(), test.hours, tolerance) {
				t.Errorf("NOx lifetime: have %g h, want %g h", l.Hours(), test.hours)
			}
			if !floats.EqualWithinRel(l.TauNOx, l.TauNO2*(1+l.Ratio), 1e-12) {
				t.Errorf("NOx lifetime %g inconsistent with NO2 lifetime %g", l.TauNOx, l.TauNO2)
			}
		})
	}
	if _, err := r.Level("xxx"); err == nil {
		t.Error("should be an error")
	}

	r2, err := steadychem.Evaluate(steadychem.DefaultScenario(), noxchem.Reference())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r, r2, cmpopts.IgnoreUnexported(steadychem.LevelResult{})); diff != "" {
		t.Errorf("repeated evaluation differs (-first +second):\n%s", diff)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *steadychem.Scenario)
		want   error
	}{
		{
			name:   "zero level temperature",
			modify: func(s *steadychem.Scenario) { s.Levels[1].Temperature = 0 },
			want:   steadychem.ErrInvalidInput,
		},
		{
			name:   "negative budget pressure",
			modify: func(s *steadychem.Scenario) { s.Budget.Pressure = -101325 },
			want:   steadychem.ErrInvalidInput,
		},
		{
			name:   "no levels",
			modify: func(s *steadychem.Scenario) { s.Levels = nil },
			want:   steadychem.ErrInvalidInput,
		},
		{
			name:   "duplicate level",
			modify: func(s *steadychem.Scenario) { s.Levels[1].Name = s.Levels[0].Name },
			want:   steadychem.ErrInvalidInput,
		},
		{
			name:   "no peroxy radicals",
			modify: func(s *steadychem.Scenario) { s.Budget.HO2, s.Budget.CH3O2 = 0, 0 },
			want:   steadychem.ErrDivisionByZero,
		},
		{
			name:   "no ozone",
			modify: func(s *steadychem.Scenario) { s.Levels[0].O3 = 0 },
			want:   steadychem.ErrDivisionByZero,
		},
		{
			name:   "no OH",
			modify: func(s *steadychem.Scenario) { s.Levels[1].OH = 0 },
			want:   steadychem.ErrDivisionByZero,
		},
		{
			name:   "no nitrogen",
			modify: func(s *steadychem.Scenario) { s.N2 = 0 },
			want:   steadychem.ErrDivisionByZero,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := steadychem.DefaultScenario()
			test.modify(s)
			_, err := steadychem.Evaluate(s, noxchem.Reference())
			if !errors.Is(err, test.want) {
				t.Errorf("have error %v, want %v", err, test.want)
			}
		})
	}
}

func TestReportWrite(t *testing.T) {
	r, err := steadychem.Evaluate(steadychem.DefaultScenario(), noxchem.Reference())
	if err != nil {
		t.Fatal(err)
	}
	t.Run("text", func(t *testing.T) {
		b := new(bytes.Buffer)
		if err := r.Write(b, "text"); err != nil {
			t.Fatal(err)
		}
		want := `The critical NO concentration is: 4.19e+08 molec cm^-3
Lifetime of NO_x at surface: 6.81 hours.
Lifetime of NO_x at 10 km: 18.39 hours.
`
		if b.String() != want {
			t.Errorf("have:\n%s\nwant:\n%s", b.String(), want)
		}
	})
	for _, format := range []string{"json", "toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			b := new(bytes.Buffer)
			if err := r.Write(b, format); err != nil {
				t.Fatal(err)
			}
			for _, s := range []string{"CriticalNO", "TauNOx", "surface", "10 km"} {
				if !strings.Contains(b.String(), s) {
					t.Errorf("output does not contain %q:\n%s", s, b.String())
				}
			}
		})
	}
	if err := r.Write(new(bytes.Buffer), "xml"); err == nil {
		t.Error("should be an error")
	}
}

func TestDerive(t *testing.T) {
	r, err := steadychem.Evaluate(steadychem.DefaultScenario(), noxchem.Reference())
	if err != nil {
		t.Fatal(err)
	}
	err = r.Derive(map[string]string{
		"TauNOxHours":    "hours(TauNOx)",
		"NOFraction":     "Ratio / (1 + Ratio)",
		"NOCritMillions": "CriticalNO / 1000000",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range r.Levels {
		if !floats.EqualWithinRel(l.Derived["TauNOxHours"], l.Hours(), 1e-12) {
			t.Errorf("%s: have %g, want %g", l.Name, l.Derived["TauNOxHours"], l.Hours())
		}
		if !floats.EqualWithinRel(l.Derived["NOFraction"], l.Ratio/(1+l.Ratio), 1e-12) {
			t.Errorf("%s: have %g, want %g", l.Name, l.Derived["NOFraction"], l.Ratio/(1+l.Ratio))
		}
	}
	surface, err := r.Level("surface")
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinRel(surface.Derived["NOCritMillions"], 419.4, 0.01) {
		t.Errorf("critical NO: have %g, want %g", surface.Derived["NOCritMillions"], 419.4)
	}

	b := new(bytes.Buffer)
	if err := r.Write(b, "text"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "TauNOxHours at 10 km: 18.39\n") {
		t.Errorf("derived variable missing from output:\n%s", b.String())
	}

	t.Run("failure at one level", func(t *testing.T) {
		before := make([]map[string]float64, len(r.Levels))
		for i, l := range r.Levels {
			before[i] = make(map[string]float64)
			for k, v := range l.Derived {
				before[i][k] = v
			}
		}
		// Only the 10 km level is at 220 K.
		err := r.Derive(map[string]string{"x": "1 / (Temperature - 220)"})
		if !errors.Is(err, steadychem.ErrDivisionByZero) {
			t.Errorf("have error %v, want %v", err, steadychem.ErrDivisionByZero)
		}
		for i, l := range r.Levels {
			if diff := cmp.Diff(before[i], l.Derived); diff != "" {
				t.Errorf("%s: derived variables changed (-want +got):\n%s", l.Name, diff)
			}
		}
	})
	t.Run("decoded report", func(t *testing.T) {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		var decoded steadychem.Report
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatal(err)
		}
		err = decoded.Derive(map[string]string{"x": "TauNOx * O3"})
		if !errors.Is(err, steadychem.ErrInvalidInput) {
			t.Errorf("have error %v, want %v", err, steadychem.ErrInvalidInput)
		}
	})
	t.Run("invalid variable", func(t *testing.T) {
		if err := r.Derive(map[string]string{"x": "TauNOy * 2"}); err == nil {
			t.Error("should be an error")
		}
	})
	t.Run("invalid expression", func(t *testing.T) {
		if err := r.Derive(map[string]string{"x": "TauNOx * * 2"}); err == nil {
			t.Error("should be an error")
		}
	})
	t.Run("division by zero", func(t *testing.T) {
		err := r.Derive(map[string]string{"x": "TauNOx / 0"})
		if !errors.Is(err, steadychem.ErrDivisionByZero) {
			t.Errorf("have error %v, want %v", err, steadychem.ErrDivisionByZero)
		}
	})
}

// thirdBodyRecorder records the third body densities passed to a
// mechanism, keyed by temperature.
type thirdBodyRecorder struct {
	steadychem.Mechanism
	m map[float64][]float64
}

func (r *thirdBodyRecorder) RateConstant(reaction string, t, m float64) (float64, error) {
	r.m[t] = append(r.m[t], m)
	return r.Mechanism.RateConstant(reaction, t, m)
}

func TestEvaluateThirdBody(t *testing.T) {
	s := steadychem.DefaultScenario()
	rec := &thirdBodyRecorder{Mechanism: noxchem.Reference(), m: make(map[float64][]float64)}
	if _, err := steadychem.Evaluate(s, rec); err != nil {
		t.Fatal(err)
	}
	want := make(map[float64]float64)
	for _, l := range s.Levels {
		n2, err := steadychem.NumberDensity(s.N2, l.Temperature, l.Pressure)
		if err != nil {
			t.Fatal(err)
		}
		want[l.Temperature] = n2
	}
	// Four budget rate constants and two per level.
	var calls int
	for T, ms := range rec.m {
		for _, m := range ms {
			if !floats.EqualWithinRel(m, want[T], 1e-12) {
				t.Errorf("T=%g: third body %g, want N2 density %g", T, m, want[T])
			}
			calls++
		}
	}
	if calls != 4+2*len(s.Levels) {
		t.Errorf("%d rate constant evaluations, want %d", calls, 4+2*len(s.Levels))
	}
}
