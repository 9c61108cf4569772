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
	"fmt"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/steadychem"
	"github.com/spatialmodel/steadychem/science/chem/noxchem"
	"github.com/spf13/cast"
)

// getFloat64 returns the value of the given configuration variable as a
// float64, or an error naming the variable if it cannot be converted.
func getFloat64(cfg *viper.Viper, varName string) (float64, error) {
	v, err := cast.ToFloat64E(cfg.Get(varName))
	if err != nil {
		return 0, fmt.Errorf("steadyutil: reading configuration variable %s: %v", varName, err)
	}
	return v, nil
}

// getFloat64s sets the values pointed to by vars from the configuration
// variables named prefix + key.
func getFloat64s(cfg *viper.Viper, prefix string, vars map[string]*float64) error {
	for key, v := range vars {
		f, err := getFloat64(cfg, prefix+key)
		if err != nil {
			return err
		}
		*v = f
	}
	return nil
}

// ScenarioConfig unmarshals a viper configuration into a steady-state
// scenario and checks that it is valid. If the configuration contains
// a "Levels" list (which is only possible in a configuration file), it is
// used instead of the Surface and Aloft levels.
func ScenarioConfig(cfg *viper.Viper) (*steadychem.Scenario, error) {
	s := new(steadychem.Scenario)
	b := &s.Budget
	err := getFloat64s(cfg, "CriticalNO.", map[string]*float64{
		"Temperature": &b.Temperature,
		"Pressure":    &b.Pressure,
		"HO2":         &b.HO2,
		"CH3O2":       &b.CH3O2,
		"O3":          &b.O3,
		"OH":          &b.OH,
		"F":           &b.F,
		"JO1D":        &b.JO1D,
	})
	if err != nil {
		return nil, err
	}
	if s.N2, err = getFloat64(cfg, "N2"); err != nil {
		return nil, err
	}

	if cfg.IsSet("Levels") {
		s.Levels, err = levelList(cfg.Get("Levels"))
		if err != nil {
			return nil, err
		}
	} else {
		for _, prefix := range []string{"Surface", "Aloft"} {
			l := steadychem.Level{Name: os.ExpandEnv(cfg.GetString(prefix + ".Name"))}
			err := getFloat64s(cfg, prefix+".", map[string]*float64{
				"Temperature": &l.Temperature,
				"Pressure":    &l.Pressure,
				"O3":          &l.O3,
				"OH":          &l.OH,
				"JNO2":        &l.JNO2,
			})
			if err != nil {
				return nil, err
			}
			s.Levels = append(s.Levels, l)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// levelList parses a list of levels from a configuration file, for example
// in TOML format:
//	[[Levels]]
//	Name = "5 km"
//	Temperature = 255.0
//	...
// Keys are not case sensitive.
func levelList(v interface{}) ([]steadychem.Level, error) {
	list, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("steadyutil: reading Levels: %v", err)
	}
	o := make([]steadychem.Level, len(list))
	for i, item := range list {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, fmt.Errorf("steadyutil: reading Levels[%d]: %v", i, err)
		}
		lower := make(map[string]interface{}, len(m))
		for k, val := range m {
			lower[strings.ToLower(k)] = val
		}
		l := &o[i]
		l.Name = os.ExpandEnv(cast.ToString(lower["name"]))
		vars := []struct {
			key string
			v   *float64
		}{
			{"temperature", &l.Temperature},
			{"pressure", &l.Pressure},
			{"o3", &l.O3},
			{"oh", &l.OH},
			{"jno2", &l.JNO2},
		}
		for _, vv := range vars {
			val, ok := lower[vv.key]
			if !ok {
				return nil, fmt.Errorf("steadyutil: Levels[%d] (%s) is missing variable %s", i, l.Name, vv.key)
			}
			f, err := cast.ToFloat64E(val)
			if err != nil {
				return nil, fmt.Errorf("steadyutil: reading Levels[%d].%s: %v", i, vv.key, err)
			}
			*vv.v = f
		}
	}
	return o, nil
}

// MechanismConfig returns the chemical mechanism named in the configuration.
func MechanismConfig(cfg *viper.Viper) (noxchem.Mechanism, error) {
	return noxchem.ByName(os.ExpandEnv(cfg.GetString("mechanism")))
}

// checkFormat expands any environment variables in the report format
// and ensures that an acceptable value was specified.
func checkFormat(f string) (string, error) {
	f = os.ExpandEnv(f)
	for _, valid := range steadychem.Formats {
		if f == valid {
			return f, nil
		}
	}
	return f, fmt.Errorf("steadyutil: the format configuration variable needs to be set to one of %v, "+
		"but is currently set to `%s`", steadychem.Formats, f)
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		if v == "" {
			return nil, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("steadyutil: reading configuration variable %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("steadyutil: invalid type for configuration variable %s: %#v", varName, i)
	}
}

// checkOutputVars expands environment variables in the output variables.
func checkOutputVars(vars map[string]string) map[string]string {
	o := make(map[string]string, len(vars))
	for k, v := range vars {
		v = strings.Replace(v, "\r\n", " ", -1)
		v = strings.Replace(v, "\n", " ", -1)
		o[os.ExpandEnv(k)] = os.ExpandEnv(v)
	}
	return o
}
