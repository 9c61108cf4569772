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

package steadyutil

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/steadychem"
)

// Run calculates the critical NO concentration and the NOx lifetime at
// each level in scenario s using mechanism m, calculates any additional
// outputVars (see steadychem.Report.Derive), and writes the report to w
// in the given format.
func Run(w io.Writer, s *steadychem.Scenario, m steadychem.Mechanism, format string, outputVars map[string]string) error {
	Log.WithFields(logrus.Fields{
		"levels":          len(s.Levels),
		"format":          format,
		"outputVariables": len(outputVars),
	}).Debug("evaluating steady-state scenario")

	r, err := steadychem.Evaluate(s, m)
	if err != nil {
		return err
	}
	if err := r.Derive(outputVars); err != nil {
		return err
	}
	for _, l := range r.Levels {
		Log.WithFields(logrus.Fields{
			"name":   l.Name,
			"ratio":  l.Ratio,
			"tauNO2": l.TauNO2,
			"tauNOx": l.TauNOx,
		}).Debug("level complete")
	}
	Log.WithField("criticalNO", r.CriticalNO).Info("calculation complete")
	return r.Write(w, format)
}

// Density converts mixingRatio to a number density [molec cm⁻³] at
// temperature t and pressure p.
func Density(mixingRatio, t, p *unit.Unit) (float64, error) {
	n, err := steadychem.NumberDensityUnit(mixingRatio, t, p)
	if err != nil {
		return 0, err
	}
	Log.WithFields(logrus.Fields{
		"mixingRatio": mixingRatio.Value(),
		"temperature": t.Value(),
		"pressure":    p.Value(),
	}).Debugf("number density is %g", n)
	return steadychem.PerCm3(n)
}

// Rates writes a table of the rate constants in mechanism m at the
// temperature and pressure of each level in scenario s to w.
func Rates(w io.Writer, s *steadychem.Scenario, m steadychem.Mechanism) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprint(tw, "Reaction")
	for _, l := range s.Levels {
		fmt.Fprintf(tw, "\t%s", l.Name)
	}
	fmt.Fprintln(tw, "\tUnits")

	thirdBody := make([]float64, len(s.Levels))
	for i, l := range s.Levels {
		n2, err := steadychem.NumberDensity(s.N2, l.Temperature, l.Pressure)
		if err != nil {
			return fmt.Errorf("steadyutil: level %s: %w", l.Name, err)
		}
		thirdBody[i] = n2
	}
	for _, reaction := range m.Reactions() {
		fmt.Fprint(tw, reaction)
		for i, l := range s.Levels {
			k, err := m.RateConstant(reaction, l.Temperature, thirdBody[i])
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "\t%.4g", k)
		}
		u, err := m.Units(reaction)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "\t%s\n", u)
	}
	return tw.Flush()
}
