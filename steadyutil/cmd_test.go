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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spatialmodel/steadychem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setCfg sets a configuration variable for the duration of a test.
func setCfg(t *testing.T, key string, val interface{}) {
	old := Cfg.Get(key)
	Cfg.Set(key, val)
	t.Cleanup(func() { Cfg.Set(key, old) })
}

// execute runs the root command with the given arguments and returns
// the output.
func execute(t *testing.T, args ...string) (string, error) {
	b := new(bytes.Buffer)
	Root.SetOutput(b)
	t.Cleanup(func() { Root.SetOutput(nil) })
	Root.SetArgs(args)
	err := Root.Execute()
	return b.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "steadychem v"+steadychem.Version+"\n", out)
}

func TestRunCmd(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)
	want := `The critical NO concentration is: 4.19e+08 molec cm^-3
Lifetime of NO_x at surface: 6.81 hours.
Lifetime of NO_x at 10 km: 18.39 hours.
`
	assert.Equal(t, want, out)
}

func TestRunCmdJSON(t *testing.T) {
	setCfg(t, "format", "json")
	out, err := execute(t, "run")
	require.NoError(t, err)

	var r steadychem.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InEpsilon(t, 4.19e8, r.CriticalNO, 0.01)
	require.Len(t, r.Levels, 2)
	assert.Equal(t, "surface", r.Levels[0].Name)
	assert.InEpsilon(t, 0.59, r.Levels[0].Ratio, 0.01)
	assert.Equal(t, "10 km", r.Levels[1].Name)
	assert.InEpsilon(t, 2.99, r.Levels[1].Ratio, 0.01)
	assert.InEpsilon(t, 18.37, r.Levels[1].Hours(), 0.01)
}

func TestRunCmdOutputVariables(t *testing.T) {
	setCfg(t, "OutputVariables", `{"TauNOxDays": "TauNOx / 86400"}`)
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "TauNOxDays at surface: 0.2839\n")
	assert.Contains(t, out, "TauNOxDays at 10 km: 0.7662\n")
}

func TestRunCmdErrors(t *testing.T) {
	t.Run("invalid temperature", func(t *testing.T) {
		setCfg(t, "Aloft.Temperature", -5.0)
		_, err := execute(t, "run")
		assert.True(t, errors.Is(err, steadychem.ErrInvalidInput), "error: %v", err)
	})
	t.Run("no OH", func(t *testing.T) {
		setCfg(t, "Surface.OH", 0.0)
		_, err := execute(t, "run")
		assert.True(t, errors.Is(err, steadychem.ErrDivisionByZero), "error: %v", err)
	})
	t.Run("invalid mechanism", func(t *testing.T) {
		setCfg(t, "mechanism", "xxx")
		_, err := execute(t, "run")
		assert.Error(t, err)
	})
	t.Run("invalid format", func(t *testing.T) {
		setCfg(t, "format", "xml")
		_, err := execute(t, "run")
		assert.Error(t, err)
	})
	t.Run("invalid output variable", func(t *testing.T) {
		setCfg(t, "OutputVariables", `{"x": "TauNOy"}`)
		_, err := execute(t, "run")
		assert.Error(t, err)
	})
	t.Run("environment", func(t *testing.T) {
		t.Setenv("STEADYCHEM_SURFACE_PRESSURE", "0")
		_, err := execute(t, "run")
		assert.True(t, errors.Is(err, steadychem.ErrInvalidInput), "error: %v", err)
	})
}

func TestRunCmdVerbose(t *testing.T) {
	setCfg(t, "verbose", true)
	b := new(bytes.Buffer)
	Log.Out = b
	defer func() { Log.Out = os.Stderr }()
	_, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, b.String(), "evaluating steady-state scenario")
	assert.Contains(t, b.String(), "name=\"10 km\"")
	assert.Contains(t, b.String(), "calculation complete")
}

func TestDensityCmd(t *testing.T) {
	setCfg(t, "Density.MixingRatio", 40e-9)
	out, err := execute(t, "density")
	require.NoError(t, err)
	assert.Equal(t, "9.851e+11 molec cm^-3\n", out)

	t.Run("invalid pressure", func(t *testing.T) {
		setCfg(t, "Density.Pressure", 0.0)
		_, err := execute(t, "density")
		assert.True(t, errors.Is(err, steadychem.ErrInvalidInput), "error: %v", err)
	})
}

func TestRatesCmd(t *testing.T) {
	out, err := execute(t, "rates")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "Reaction"))
	var noO3 string
	for _, l := range lines {
		if strings.HasPrefix(l, steadychem.NOO3) {
			noO3 = l
		}
	}
	assert.Contains(t, noO3, "1.726e-14")
	assert.Contains(t, noO3, "3.632e-15")
	assert.Contains(t, noO3, "cm³ molec⁻¹ s⁻¹")

	t.Run("jpl", func(t *testing.T) {
		setCfg(t, "mechanism", "jpl")
		out, err := execute(t, "rates")
		require.NoError(t, err)
		assert.Contains(t, out, "1.955e-14")
	})
}
