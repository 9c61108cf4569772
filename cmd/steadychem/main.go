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

// Command steadychem is a command-line interface for calculating
// steady-state NOx and ozone chemistry.
package main

import (
	"os"

	"github.com/spatialmodel/steadychem/steadyutil"
)

func main() {
	if err := steadyutil.Root.Execute(); err != nil {
		steadyutil.Log.WithError(err).Error("steadychem failed")
		os.Exit(1)
	}
}
