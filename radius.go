/*
 * radius.go, part of marici.
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
	"strings"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

// DefaultRadiusScale multiplies the sum of covalent radii to get the minimum
// distance for element pairs with no explicit constraint.
const DefaultRadiusScale = 0.8

// RadiusConstraints holds the minimum allowed distance, in A, between pairs of elements.
// Pairs without an explicit value fall back to Scale times the sum of their covalent radii.
// The table belongs to whoever built it. Nothing in the package keeps one around.
type RadiusConstraints struct {
	pairs map[[2]int]float64
	Scale float64
}

// NewRadiusConstraints returns an empty table with DefaultRadiusScale.
func NewRadiusConstraints() *RadiusConstraints {
	return &RadiusConstraints{pairs: make(map[[2]int]float64), Scale: DefaultRadiusScale}
}

func pairKey(a, b Element) [2]int {
	if a.Number > b.Number {
		a, b = b, a
	}
	return [2]int{a.Number, b.Number}
}

// Set sets the minimum distance between a and b. The order of a and b doesn't matter.
func (R *RadiusConstraints) Set(a, b Element, d float64) error {
	if !(d > 0) {
		return invalid("Set", "minimum distance between %s and %s must be positive, got %g", a.Symbol, b.Symbol, d)
	}
	R.pairs[pairKey(a, b)] = d
	return nil
}

// Explicit returns the distance set for the pair a, b, if any.
func (R *RadiusConstraints) Explicit(a, b Element) (float64, bool) {
	d, ok := R.pairs[pairKey(a, b)]
	return d, ok
}

// MinDistance returns the minimum allowed distance between a and b.
func (R *RadiusConstraints) MinDistance(a, b Element) float64 {
	if d, ok := R.Explicit(a, b); ok {
		return d
	}
	return R.Scale * (a.CovalentRadius + b.CovalentRadius)
}

// Allowed is true if two atoms of elements a and b can be d A apart.
func (R *RadiusConstraints) Allowed(a, b Element, d float64) bool {
	return d >= R.MinDistance(a, b)
}

// Len is the number of explicit pairs.
func (R *RadiusConstraints) Len() int { return len(R.pairs) }

// ReadRadiusConstraints reads a &RADIUS block. Each line is two element symbols and a distance,
// which can be written as a fraction or with an uncertainty ("C O 3/2", "C C 1.54(2)").
// Elements are taken from table. A pair given twice keeps the last value.
func ReadRadiusConstraints(block *nml.LineStore, table *ElementTable) (*RadiusConstraints, error) {
	R := NewRadiusConstraints()
	for i := 0; i < block.Len(); i++ {
		line := block.Line(i)
		fields := strings.Fields(line)
		if len(fields) != 3 {
			err := invalid("ReadRadiusConstraints", "line %q: want 2 elements and a distance", line)
			return nil, inBlock(err, radiusBlock, "")
		}
		a, err := table.Lookup(fields[0])
		if err != nil {
			return nil, inBlock(errDecorate(err, "ReadRadiusConstraints"), radiusBlock, "")
		}
		b, err := table.Lookup(fields[1])
		if err != nil {
			return nil, inBlock(errDecorate(err, "ReadRadiusConstraints"), radiusBlock, "")
		}
		d, err := nml.ToFractionalValue(fields[2])
		if err != nil {
			return nil, inBlock(err, radiusBlock, "")
		}
		if err := R.Set(a, b, d); err != nil {
			return nil, inBlock(errDecorate(err, "ReadRadiusConstraints"), radiusBlock, "")
		}
	}
	return R, nil
}
