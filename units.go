/*
 * units.go, part of marici.
 *
 * Copyright 2024 The MARICI authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package marici

import (
	"math"
	"strings"
)

//Conversions
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
	Nm2A    = 10.0
)

// LengthUnit is a unit in which lengths can be given in an input file.
// Internally everything is in A.
type LengthUnit string

const (
	Angstrom  LengthUnit = "angstrom"
	Bohr      LengthUnit = "bohr"
	Nanometer LengthUnit = "nm"
)

// ParseLengthUnit reads a unit name. Capitalization is ignored, and "a", "ang", "au" and
// "nanometer" are accepted as well.
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch strings.ToLower(s) {
	case "angstrom", "ang", "a":
		return Angstrom, nil
	case "bohr", "au":
		return Bohr, nil
	case "nm", "nanometer":
		return Nanometer, nil
	}
	return "", invalid("ParseLengthUnit", "unknown length unit %q", s)
}

// Factor returns the number that takes a length in U to A.
func (U LengthUnit) Factor() float64 {
	switch U {
	case Bohr:
		return Bohr2A
	case Nanometer:
		return Nm2A
	}
	return 1
}

// ToAngstrom converts the lengths in v, given in U, to A, in place, and returns v.
func (U LengthUnit) ToAngstrom(v ...float64) []float64 {
	f := U.Factor()
	for i := range v {
		v[i] *= f
	}
	return v
}
