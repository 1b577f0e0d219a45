/*
 * site.go, part of marici.
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

	"gonum.org/v1/gonum/floats"
)

// AtomSite is one atom position in the asymmetric unit, in fractional coordinates.
type AtomSite struct {
	label     string
	element   Element
	frac      [3]float64
	occupancy float64
}

// NewAtomSite returns a fully occupied site. See SetLabel and SetFractional
// for the conditions label and frac must fulfill.
func NewAtomSite(label string, el Element, frac [3]float64) (*AtomSite, error) {
	A := &AtomSite{element: el, occupancy: 1}
	if err := A.SetLabel(label); err != nil {
		return nil, errDecorate(err, "NewAtomSite")
	}
	if err := A.SetFractional(frac); err != nil {
		return nil, errDecorate(err, "NewAtomSite")
	}
	return A, nil
}

func (A *AtomSite) Label() string { return A.label }

func (A *AtomSite) Element() Element { return A.element }

func (A *AtomSite) Fractional() [3]float64 { return A.frac }

func (A *AtomSite) Occupancy() float64 { return A.occupancy }

// SetLabel sets the label of the site, which can't be empty or contain blanks.
func (A *AtomSite) SetLabel(label string) error {
	if label == "" || strings.ContainsAny(label, " \t") {
		return invalid("SetLabel", "site label %q", label)
	}
	A.label = label
	return nil
}

func (A *AtomSite) SetElement(el Element) {
	A.element = el
}

// SetFractional sets the fractional coordinates of the site. They have to be finite,
// and are wrapped into [0,1).
func (A *AtomSite) SetFractional(frac [3]float64) error {
	if floats.HasNaN(frac[:]) || math.IsInf(floats.Max(frac[:]), 1) || math.IsInf(floats.Min(frac[:]), -1) {
		return invalid("SetFractional", "fractional coordinates must be finite, got %v", frac)
	}
	for i, v := range frac {
		v = math.Mod(v, 1)
		if v < 0 {
			v++
		}
		if v >= 1 { //-1e-17 + 1 rounds to 1
			v = 0
		}
		frac[i] = v
	}
	A.frac = frac
	return nil
}

// SetOccupancy sets the occupancy of the site, which has to be in (0,1].
func (A *AtomSite) SetOccupancy(o float64) error {
	if !(o > 0 && o <= 1) {
		return invalid("SetOccupancy", "occupancy must be in (0,1], got %g", o)
	}
	A.occupancy = o
	return nil
}

// Cartesian returns the position of the site in cell, in A.
func (A *AtomSite) Cartesian(cell *Cell) [3]float64 {
	return cell.ToCartesian(A.frac)
}
