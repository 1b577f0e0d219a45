/*
 * cell.go, part of marici.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Cell is a unit cell. The lattice vectors are the rows of a 3x3 matrix, with a
// along x and b in the xy plane. Lengths are in A, angles in degrees.
type Cell struct {
	lengths [3]float64
	angles  [3]float64 //alpha, beta, gamma
	vectors *mat.Dense
}

// NewCell builds a cell from the lengths a, b, c and the angles alpha, beta, gamma.
// Lengths need to be positive, angles in (0,180), and together they have to give
// a cell with positive volume.
func NewCell(lengths, angles [3]float64) (*Cell, error) {
	if floats.HasNaN(lengths[:]) || floats.Min(lengths[:]) <= 0 || math.IsInf(floats.Max(lengths[:]), 1) {
		return nil, invalid("NewCell", "cell lengths must be positive, got %v", lengths)
	}
	if floats.HasNaN(angles[:]) || floats.Min(angles[:]) <= 0 || floats.Max(angles[:]) >= 180 {
		return nil, invalid("NewCell", "cell angles must be in (0,180), got %v", angles)
	}
	a, b, c := lengths[0], lengths[1], lengths[2]
	cosa := math.Cos(angles[0] * Deg2Rad)
	cosb := math.Cos(angles[1] * Deg2Rad)
	cosg, sing := math.Cos(angles[2]*Deg2Rad), math.Sin(angles[2]*Deg2Rad)
	cx := c * cosb
	cy := c * (cosa - cosb*cosg) / sing
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= 0 {
		return nil, invalid("NewCell", "angles %v don't give a 3D cell", angles)
	}
	vectors := mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * cosg, b * sing, 0,
		cx, cy, math.Sqrt(cz2),
	})
	return &Cell{lengths: lengths, angles: angles, vectors: vectors}, nil
}

// Lengths returns a, b and c, in A.
func (C *Cell) Lengths() [3]float64 { return C.lengths }

// Angles returns alpha, beta and gamma, in degrees.
func (C *Cell) Angles() [3]float64 { return C.angles }

// Vectors returns a copy of the matrix with the lattice vectors as rows.
func (C *Cell) Vectors() *mat.Dense {
	return mat.DenseCopyOf(C.vectors)
}

// Volume returns the volume of the cell in A^3.
func (C *Cell) Volume() float64 {
	return math.Abs(mat.Det(C.vectors))
}

// ToCartesian takes fractional coordinates to Cartesian ones, in A.
func (C *Cell) ToCartesian(frac [3]float64) [3]float64 {
	f := mat.NewVecDense(3, frac[:])
	var r mat.VecDense
	r.MulVec(C.vectors.T(), f)
	return [3]float64{r.AtVec(0), r.AtVec(1), r.AtVec(2)}
}

// ToFractional takes Cartesian coordinates, in A, to fractional ones.
func (C *Cell) ToFractional(cart [3]float64) ([3]float64, error) {
	var inv mat.Dense
	if err := inv.Inverse(C.vectors.T()); err != nil {
		return [3]float64{}, invalid("ToFractional", "singular cell: %v", err)
	}
	var r mat.VecDense
	r.MulVec(&inv, mat.NewVecDense(3, cart[:]))
	return [3]float64{r.AtVec(0), r.AtVec(1), r.AtVec(2)}, nil
}

// Scale returns a new cell with the same shape and its volume multiplied by factor.
func (C *Cell) Scale(factor float64) (*Cell, error) {
	if factor <= 0 || math.IsNaN(factor) {
		return nil, invalid("Scale", "the volume factor must be positive, got %g", factor)
	}
	l := C.lengths
	floats.Scale(math.Cbrt(factor), l[:])
	return NewCell(l, C.angles)
}
