/*
 * cell_test.go, part of marici.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

func TestOrthorhombicCell(Te *testing.T) {
	C, err := NewCell([3]float64{5, 6, 7}, [3]float64{90, 90, 90})
	require.NoError(Te, err)
	assert.InDelta(Te, 210, C.Volume(), 1e-9)
	r := C.ToCartesian([3]float64{1, 1, 1})
	assert.InDeltaSlice(Te, []float64{5, 6, 7}, r[:], 1e-9)
	r = C.ToCartesian([3]float64{0.5, 0, 0.5})
	assert.InDeltaSlice(Te, []float64{2.5, 0, 3.5}, r[:], 1e-9)
	f, err := C.ToFractional([3]float64{2.5, 3, 7})
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{0.5, 0.5, 1}, f[:], 1e-9)
}

func TestHexagonalCell(Te *testing.T) {
	C, err := NewCell([3]float64{3, 3, 5}, [3]float64{90, 90, 120})
	require.NoError(Te, err)
	assert.InDelta(Te, 3*3*5*math.Sqrt(3)/2, C.Volume(), 1e-9)
	V := C.Vectors()
	b := mat.Row(nil, 1, V)
	assert.InDelta(Te, 3.0, math.Hypot(b[0], b[1]), 1e-12)
	assert.InDelta(Te, -1.5, b[0], 1e-12)
	//Vectors returns a copy
	V.Set(0, 0, 100)
	assert.InDelta(Te, 3.0, C.Vectors().At(0, 0), 1e-12)
	//round trip
	frac := [3]float64{0.1, 0.7, 0.3}
	f, err := C.ToFractional(C.ToCartesian(frac))
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, frac[:], f[:], 1e-12)
}

func TestTriclinicCellVolume(Te *testing.T) {
	l := [3]float64{4, 5, 6}
	a := [3]float64{80, 95, 100}
	C, err := NewCell(l, a)
	require.NoError(Te, err)
	ca, cb, cg := math.Cos(a[0]*Deg2Rad), math.Cos(a[1]*Deg2Rad), math.Cos(a[2]*Deg2Rad)
	want := l[0] * l[1] * l[2] * math.Sqrt(1-ca*ca-cb*cb-cg*cg+2*ca*cb*cg)
	assert.InDelta(Te, want, C.Volume(), 1e-9)
	S, err := C.Scale(2)
	require.NoError(Te, err)
	assert.InDelta(Te, 2*want, S.Volume(), 1e-9)
	assert.Equal(Te, a, S.Angles())
	_, err = C.Scale(0)
	assert.ErrorIs(Te, err, ErrValidation)
}

func TestBadCells(Te *testing.T) {
	bad := []struct{ l, a [3]float64 }{
		{[3]float64{0, 1, 1}, [3]float64{90, 90, 90}},
		{[3]float64{-1, 1, 1}, [3]float64{90, 90, 90}},
		{[3]float64{1, math.NaN(), 1}, [3]float64{90, 90, 90}},
		{[3]float64{1, 1, math.Inf(1)}, [3]float64{90, 90, 90}},
		{[3]float64{1, 1, 1}, [3]float64{0, 90, 90}},
		{[3]float64{1, 1, 1}, [3]float64{90, 180, 90}},
		{[3]float64{1, 1, 1}, [3]float64{30, 30, 120}},
	}
	for _, c := range bad {
		_, err := NewCell(c.l, c.a)
		assert.ErrorIs(Te, err, ErrValidation, "%v %v", c.l, c.a)
	}
}

func TestLengthUnits(Te *testing.T) {
	for _, s := range []string{"angstrom", "A", "Ang"} {
		u, err := ParseLengthUnit(s)
		require.NoError(Te, err)
		assert.Equal(Te, Angstrom, u)
	}
	u, err := ParseLengthUnit("BOHR")
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{0.529177, 1.058354}, u.ToAngstrom(1, 2), 1e-6)
	u, err = ParseLengthUnit("nm")
	require.NoError(Te, err)
	assert.Equal(Te, []float64{15}, u.ToAngstrom(1.5))
	_, err = ParseLengthUnit("furlong")
	assert.ErrorIs(Te, err, ErrValidation)
	assert.InDelta(Te, math.Pi, 180*Deg2Rad, 1e-15)
}

func TestReadCellBohr(Te *testing.T) {
	in, err := NewInputReader(nil, nil).Read(nml.ParseLineStore("&CELL\n LENGTH_UNIT bohr\n LENGTHS 10 10 10\n" +
		"&ATOM_SITE\n LABEL C1\n ELEMENT C\n FRACTIONAL 0 0 0\n"))
	require.NoError(Te, err)
	l := in.Cell.Lengths()
	assert.InDeltaSlice(Te, []float64{5.29177, 5.29177, 5.29177}, l[:], 1e-5)
}
