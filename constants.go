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

// Package steadychem calculates steady-state tropospheric NOx and ozone
// chemistry: the critical NO concentration at which net ozone production
// is zero, the photostationary [NO]/[NO2] ratio, and the chemical lifetime
// of NOx at different altitudes.
package steadychem

// Version gives the version number.
const Version = "1.0.0"

// physical constants
const (
	avNum    = 6.02214076e23 // molecules per mole
	rGas     = 8.314462618   // J/(mol K), universal gas constant
	cm3perm3 = 100. * 100. * 100.

	// kB is the Boltzmann constant [J/K].
	kB = rGas / avNum

	// tRef is the reference temperature for termolecular
	// rate expressions [K].
	tRef = 300.

	secondsPerHour = 3600.
)

// Standard surface conditions.
const (
	SurfacePressure    = 101325. // Pa
	SurfaceTemperature = 298.    // K
)

// N2MixingRatio is the volume mixing ratio of molecular nitrogen in dry air.
const N2MixingRatio = 0.7808
