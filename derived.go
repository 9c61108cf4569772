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
	"math"
	"sort"

	"github.com/Knetic/govaluate"
)

// OutputVariables lists the variables that can be used in the
// expressions passed to Report.Derive.
var OutputVariables = []string{
	"CriticalNO", "Ratio", "TauNO2", "TauNOx",
	"Temperature", "Pressure", "O3", "OH", "JNO2",
}

// outputFunctions are the functions available to output expressions.
var outputFunctions = map[string]govaluate.ExpressionFunction{
	"exp": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("steadychem: got %d arguments for function 'exp', but needs 1", len(arg))
		}
		x, ok := arg[0].(float64)
		if !ok {
			return nil, fmt.Errorf("steadychem: argument to 'exp' must be a number")
		}
		return math.Exp(x), nil
	},
	"hours": func(arg ...interface{}) (interface{}, error) {
		if len(arg) != 1 {
			return nil, fmt.Errorf("steadychem: got %d arguments for function 'hours', but needs 1", len(arg))
		}
		x, ok := arg[0].(float64)
		if !ok {
			return nil, fmt.Errorf("steadychem: argument to 'hours' must be a number")
		}
		return x / secondsPerHour, nil
	},
}

// parameters returns the values of OutputVariables for level result l.
func (l *LevelResult) parameters(criticalNO float64) map[string]interface{} {
	return map[string]interface{}{
		"CriticalNO":  criticalNO,
		"Ratio":       l.Ratio,
		"TauNO2":      l.TauNO2,
		"TauNOx":      l.TauNOx,
		"Temperature": l.level.Temperature,
		"Pressure":    l.level.Pressure,
		"O3":          l.level.O3,
		"OH":          l.level.OH,
		"JNO2":        l.level.JNO2,
	}
}

// Derive calculates user-defined output variables for each level in the
// report. The keys of outputVariables are the names of the new variables
// and the values are expressions, for example
//	{"TauNOxDays": "TauNOx / 86400"}.
// Expressions can use any of the names in OutputVariables as well as
// the functions 'exp(x)' and 'hours(seconds)'. The results are stored in
// the Derived field of each LevelResult only if every expression can be
// evaluated at every level; otherwise r is left unchanged.
// The level input conditions are not part of the encoded report, so
// Derive only works on reports returned by Evaluate.
func (r *Report) Derive(outputVariables map[string]string) error {
	if len(outputVariables) == 0 {
		return nil
	}
	valid := make(map[string]bool)
	for _, v := range OutputVariables {
		valid[v] = true
	}
	names := make([]string, 0, len(outputVariables))
	for name := range outputVariables {
		names = append(names, name)
	}
	sort.Strings(names)

	exprs := make([]*govaluate.EvaluableExpression, len(names))
	for i, name := range names {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(outputVariables[name], outputFunctions)
		if err != nil {
			return fmt.Errorf("steadychem: output variable %s: %v", name, err)
		}
		for _, v := range expr.Vars() {
			if !valid[v] {
				return fmt.Errorf("steadychem: output variable %s: invalid variable name %s; valid names are %v",
					name, v, OutputVariables)
			}
		}
		exprs[i] = expr
	}

	derived := make([]map[string]float64, len(r.Levels))
	for i := range r.Levels {
		l := &r.Levels[i]
		if l.level == (Level{}) {
			return fmt.Errorf("steadychem: level %s has no input conditions; Derive requires a report returned by Evaluate: %w",
				l.Name, ErrInvalidInput)
		}
		params := l.parameters(r.CriticalNO)
		derived[i] = make(map[string]float64, len(names))
		for j, expr := range exprs {
			v, err := expr.Evaluate(params)
			if err != nil {
				return fmt.Errorf("steadychem: output variable %s at %s: %v", names[j], l.Name, err)
			}
			f, ok := v.(float64)
			if !ok {
				return fmt.Errorf("steadychem: output variable %s at %s evaluates to %v, which is not a number",
					names[j], l.Name, v)
			}
			if math.IsInf(f, 0) {
				return fmt.Errorf("steadychem: output variable %s at %s: %w", names[j], l.Name, ErrDivisionByZero)
			}
			if math.IsNaN(f) {
				return fmt.Errorf("steadychem: output variable %s at %s is not a number: %w", names[j], l.Name, ErrInvalidInput)
			}
			derived[i][names[j]] = f
		}
	}
	for i := range r.Levels {
		r.Levels[i].Derived = derived[i]
	}
	return nil
}
