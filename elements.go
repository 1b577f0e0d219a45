/*
 * elements.go, part of marici.
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
	"fmt"
	"sort"
	"strings"
)

// Element holds the atomic data marici uses for one chemical element.
type Element struct {
	Symbol         string
	Number         int     //atomic number
	Mass           float64 //in g/mol
	CovalentRadius float64 //in A
	VdWRadius      float64 //in A
}

// ElementTable is an immutable lookup table of elements, by symbol and by atomic number.
// Build one with NewElementTable and pass it to whoever needs it.
type ElementTable struct {
	bySymbol map[string]Element
	byNumber map[int]Element
}

// builtinElements returns the default element data.
// Masses and radii for the common bio-elements are the gochem ones:
// covalent radii from Cordero et al., 2008 (DOI:10.1039/B801115J), van der Waals radii
// from 10.1021/j100785a001 and 10.1021/jp8111556, metal radii from 10.1023/A:1011625728803.
func builtinElements() []Element {
	return []Element{
		{"H", 1, 1.0, 0.31, 1.10},
		{"Li", 3, 6.94, 1.28, 1.82},
		{"Be", 4, 9.012, 0.96, 1.53},
		{"B", 5, 10.81, 0.84, 1.92},
		{"C", 6, 12.01, 0.76, 1.70}, //the sp3 radius
		{"N", 7, 14.01, 0.71, 1.55},
		{"O", 8, 16.00, 0.66, 1.52},
		{"F", 9, 18.998, 0.57, 1.47},
		{"Na", 11, 22.99, 1.66, 2.27},
		{"Mg", 12, 24.30, 1.41, 1.73},
		{"Al", 13, 26.98, 1.21, 1.84},
		{"Si", 14, 28.08, 1.11, 2.10},
		{"P", 15, 30.97, 1.07, 1.80},
		{"S", 16, 32.06, 1.05, 1.80},
		{"Cl", 17, 35.45, 1.02, 1.75},
		{"K", 19, 39.1, 2.03, 2.75},
		{"Ca", 20, 40.08, 1.76, 2.31},
		{"Ti", 22, 47.87, 1.60, 2.11},
		{"Cr", 24, 51.996, 1.39, 1.97},
		{"Mn", 25, 54.94, 1.61, 1.96}, //hs
		{"Fe", 26, 55.84, 1.52, 1.96}, //hs
		{"Co", 27, 58.93, 1.50, 1.95}, //hs
		{"Ni", 28, 58.69, 1.24, 1.63},
		{"Cu", 29, 63.55, 1.32, 2.00},
		{"Zn", 30, 65.38, 1.22, 2.02},
		{"Ga", 31, 69.72, 1.22, 1.87},
		{"Ge", 32, 72.63, 1.20, 2.11},
		{"As", 33, 74.92, 1.19, 1.85},
		{"Se", 34, 78.96, 1.20, 1.90},
		{"Br", 35, 79.904, 1.20, 1.83},
		{"Sr", 38, 87.62, 1.95, 2.49},
		{"Zr", 40, 91.22, 1.75, 2.23},
		{"I", 53, 126.90, 1.39, 1.98},
		{"Ba", 56, 137.33, 2.15, 2.68},
	}
}

// NewElementTable returns a table with the built-in element data.
func NewElementTable() *ElementTable {
	T, err := NewElementTableFrom(builtinElements())
	if err != nil {
		panic(err.Error()) //the built-in data is fixed, so this can't happen
	}
	return T
}

// NewElementTableFrom builds a table from els. Symbols and atomic numbers must be unique,
// atomic numbers positive and radii non-negative.
func NewElementTableFrom(els []Element) (*ElementTable, error) {
	T := &ElementTable{
		bySymbol: make(map[string]Element, len(els)),
		byNumber: make(map[int]Element, len(els)),
	}
	for _, e := range els {
		e.Symbol = normalizeSymbol(e.Symbol)
		if e.Symbol == "" || e.Number <= 0 {
			return nil, invalid("NewElementTableFrom", "element %q with atomic number %d", e.Symbol, e.Number)
		}
		if e.CovalentRadius < 0 || e.VdWRadius < 0 || e.Mass < 0 {
			return nil, invalid("NewElementTableFrom", "negative atomic data for %s", e.Symbol)
		}
		if _, ok := T.bySymbol[e.Symbol]; ok {
			return nil, invalid("NewElementTableFrom", "element %s given twice", e.Symbol)
		}
		if _, ok := T.byNumber[e.Number]; ok {
			return nil, invalid("NewElementTableFrom", "atomic number %d given twice", e.Number)
		}
		T.bySymbol[e.Symbol] = e
		T.byNumber[e.Number] = e
	}
	return T, nil
}

// normalizeSymbol takes "FE", "fe" or "Fe" to "Fe".
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Symbol returns the element with the given symbol. Capitalization is ignored.
func (T *ElementTable) Symbol(s string) (Element, bool) {
	e, ok := T.bySymbol[normalizeSymbol(s)]
	return e, ok
}

// Number returns the element with atomic number z.
func (T *ElementTable) Number(z int) (Element, bool) {
	e, ok := T.byNumber[z]
	return e, ok
}

// Lookup is like Symbol but returns an ErrUnknownElement error for unknown symbols.
func (T *ElementTable) Lookup(s string) (Element, error) {
	e, ok := T.Symbol(s)
	if !ok {
		return Element{}, newInputError(ErrUnknownElement, "Lookup", "%q", s)
	}
	return e, nil
}

// Len returns the number of elements in the table.
func (T *ElementTable) Len() int {
	return len(T.byNumber)
}

// Elements returns all the elements, sorted by atomic number.
func (T *ElementTable) Elements() []Element {
	ret := make([]Element, 0, len(T.byNumber))
	for _, e := range T.byNumber {
		ret = append(ret, e)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Number < ret[j].Number })
	return ret
}

func (e Element) String() string {
	return fmt.Sprintf("%s(%d)", e.Symbol, e.Number)
}
