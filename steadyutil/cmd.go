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

// Package steadyutil contains the command-line interface for steadychem.
package steadyutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ctessum/unit"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/steadychem"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger used by the commands.
var Log *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Log = logrus.New()
	Log.Out = os.Stderr
	Log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	}

	def := steadychem.DefaultScenario()
	surface, aloft := def.Levels[0], def.Levels[1]
	levelSets := []*pflag.FlagSet{runCmd.Flags(), ratesCmd.Flags()}

	// Options are the configuration options available to steadychem.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose specifies whether to log debugging information.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "mechanism",
			usage: `
              mechanism specifies the set of rate constants to use.
              Options are "reference" and "jpl".`,
			shorthand:  "m",
			defaultVal: "reference",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "format",
			usage: `
              format specifies the report format. Options are "text", "json",
              "toml", and "yaml".`,
			shorthand:  "f",
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables specifies additional variables to calculate for
              each level, as a map of variable names to expressions. Expressions
              can use the variables CriticalNO, Ratio, TauNO2, TauNOx, Temperature,
              Pressure, O3, OH, and JNO2, and the functions exp(x) and hours(x).
              For example: {"TauNOxDays": "TauNOx / 86400"}`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "N2",
			usage: `
              N2 is the volume mixing ratio of molecular nitrogen, which is the
              third body in the OH + NO2 + M reaction.`,
			defaultVal: def.N2,
			flagsets:   levelSets,
		},
		{
			name: "CriticalNO.Temperature",
			usage: `
              CriticalNO.Temperature is the temperature [K] used for the critical
              NO calculation.`,
			defaultVal: def.Budget.Temperature,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CriticalNO.Pressure",
			usage: `
              CriticalNO.Pressure is the pressure [Pa] used for the critical
              NO calculation.`,
			defaultVal: def.Budget.Pressure,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CriticalNO.HO2",
			usage: `
              CriticalNO.HO2 is the HO2 volume mixing ratio [mol/mol].`,
			defaultVal: def.Budget.HO2,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CriticalNO.CH3O2",
			usage: `
              CriticalNO.CH3O2 is the CH3O2 volume mixing ratio [mol/mol].`,
			defaultVal: def.Budget.CH3O2,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CriticalNO.O3",
			usage: `
              CriticalNO.O3 is the O3 volume mixing ratio [mol/mol].`,
			defaultVal: def.Budget.O3,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CriticalNO.OH",
			usage: `
              CriticalNO.OH is the OH number density [molec cm⁻³].`,
			defaultVal: def.Budget.OH,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CriticalNO.F",
			usage: `
              CriticalNO.F is the fraction of O(¹D) that reacts with water vapor
              to form OH.`,
			defaultVal: def.Budget.F,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CriticalNO.JO1D",
			usage: `
              CriticalNO.JO1D is the photolysis rate [s⁻¹] of O3 to O(¹D).`,
			defaultVal: def.Budget.JO1D,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Density.MixingRatio",
			usage: `
              Density.MixingRatio is the volume mixing ratio [mol/mol] to convert.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{densityCmd.Flags()},
		},
		{
			name: "Density.Temperature",
			usage: `
              Density.Temperature is the temperature [K] of the air.`,
			defaultVal: steadychem.SurfaceTemperature,
			flagsets:   []*pflag.FlagSet{densityCmd.Flags()},
		},
		{
			name: "Density.Pressure",
			usage: `
              Density.Pressure is the pressure [Pa] of the air.`,
			defaultVal: steadychem.SurfacePressure,
			flagsets:   []*pflag.FlagSet{densityCmd.Flags()},
		},
	}
	for _, l := range []struct {
		prefix, where string
		level         steadychem.Level
	}{
		{"Surface", "at the surface", surface},
		{"Aloft", "aloft", aloft},
	} {
		options = append(options, []struct {
			name, usage, shorthand string
			defaultVal             interface{}
			flagsets               []*pflag.FlagSet
		}{
			{
				name: l.prefix + ".Name",
				usage: fmt.Sprintf(`
              %s.Name is the label for the level %s.`, l.prefix, l.where),
				defaultVal: l.level.Name,
				flagsets:   levelSets,
			},
			{
				name: l.prefix + ".Temperature",
				usage: fmt.Sprintf(`
              %s.Temperature is the temperature [K] %s.`, l.prefix, l.where),
				defaultVal: l.level.Temperature,
				flagsets:   levelSets,
			},
			{
				name: l.prefix + ".Pressure",
				usage: fmt.Sprintf(`
              %s.Pressure is the pressure [Pa] %s.`, l.prefix, l.where),
				defaultVal: l.level.Pressure,
				flagsets:   levelSets,
			},
			{
				name: l.prefix + ".O3",
				usage: fmt.Sprintf(`
              %s.O3 is the O3 volume mixing ratio [mol/mol] %s.`, l.prefix, l.where),
				defaultVal: l.level.O3,
				flagsets:   levelSets,
			},
			{
				name: l.prefix + ".OH",
				usage: fmt.Sprintf(`
              %s.OH is the OH number density [molec cm⁻³] %s.`, l.prefix, l.where),
				defaultVal: l.level.OH,
				flagsets:   levelSets,
			},
			{
				name: l.prefix + ".JNO2",
				usage: fmt.Sprintf(`
              %s.JNO2 is the NO2 photolysis rate [s⁻¹] %s.`, l.prefix, l.where),
				defaultVal: l.level.JNO2,
				flagsets:   levelSets,
			},
		}...)
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("STEADYCHEM")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := strings.TrimSpace(b.String())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(densityCmd)
	Root.AddCommand(ratesCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("steadychem: problem reading configuration file: %v", err)
		}
	}
	if Cfg.GetBool("verbose") {
		Log.Level = logrus.DebugLevel
	} else {
		Log.Level = logrus.InfoLevel
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "steadychem",
	Short: "Steady-state NOx and ozone chemistry.",
	Long: `steadychem calculates steady-state tropospheric chemistry quantities:
the critical NO concentration at which ozone production equals ozone loss,
the photostationary [NO]/[NO2] ratio, and the chemical lifetime of NOx at
the surface and aloft.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'STEADYCHEM_var' where 'var' is the
name of the variable to be set, with periods replaced by underscores.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of steadychem.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "steadychem v%s\n", steadychem.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd is a command that evaluates a steady-state scenario.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calculate critical NO and NOx lifetimes.",
	Long: `run calculates the critical NO concentration at which ozone production
equals ozone loss, and the [NO]/[NO2] ratio and NOx lifetime at each
atmospheric level. Levels can be specified with the Surface.* and Aloft.*
options, or as a 'Levels' list in the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := ScenarioConfig(Cfg)
		if err != nil {
			return err
		}
		m, err := MechanismConfig(Cfg)
		if err != nil {
			return err
		}
		format, err := checkFormat(Cfg.GetString("format"))
		if err != nil {
			return err
		}
		vars, err := GetStringMapString("OutputVariables", Cfg)
		if err != nil {
			return err
		}
		return Run(cmd.OutOrStdout(), s, m, format, checkOutputVars(vars))
	},
	DisableAutoGenTag: true,
}

// densityCmd is a command that converts a mixing ratio to a number density.
var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Convert a mixing ratio to a number density.",
	Long: `density converts the volume mixing ratio given by Density.MixingRatio
to a number density in molecules per cm³ at the temperature and pressure
given by Density.Temperature and Density.Pressure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vars := make(map[string]float64)
		for _, name := range []string{"Density.MixingRatio", "Density.Temperature", "Density.Pressure"} {
			v, err := getFloat64(Cfg, name)
			if err != nil {
				return err
			}
			vars[name] = v
		}
		n, err := Density(
			unit.New(vars["Density.MixingRatio"], unit.Dimless),
			unit.New(vars["Density.Temperature"], unit.Kelvin),
			unit.New(vars["Density.Pressure"], unit.Pascal),
		)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.4g molec cm^-3\n", n)
		return err
	},
	DisableAutoGenTag: true,
}

// ratesCmd is a command that prints the rate constants of a mechanism.
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print rate constants.",
	Long: `rates prints the rate constants of each reaction in the chosen
chemical mechanism at the conditions of each atmospheric level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := ScenarioConfig(Cfg)
		if err != nil {
			return err
		}
		m, err := MechanismConfig(Cfg)
		if err != nil {
			return err
		}
		return Rates(cmd.OutOrStdout(), s, m)
	},
	DisableAutoGenTag: true,
}
