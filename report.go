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
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Formats lists the valid report formats.
var Formats = []string{"text", "json", "toml", "yaml"}

// Write writes the report to w in the given format, which must be one of
// Formats. An empty format is the same as "text".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.writeText(w)
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(r)
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	case "yaml":
		e := yaml.NewEncoder(w)
		if err := e.Encode(r); err != nil {
			return err
		}
		return e.Close()
	default:
		return fmt.Errorf("steadychem: invalid report format %q; valid formats are %v", format, Formats)
	}
}

func (r *Report) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "The critical NO concentration is: %.2e molec cm^-3\n", r.CriticalNO); err != nil {
		return err
	}
	for _, l := range r.Levels {
		if _, err := fmt.Fprintf(w, "Lifetime of NO_x at %s: %.2f hours.\n", l.Name, l.Hours()); err != nil {
			return err
		}
	}
	for _, l := range r.Levels {
		names := make([]string, 0, len(l.Derived))
		for name := range l.Derived {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintf(w, "%s at %s: %.4g\n", name, l.Name, l.Derived[name]); err != nil {
				return err
			}
		}
	}
	return nil
}
