/*
 * radius_test.go, part of marici.
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

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

func inf() float64 { return math.Inf(1) }

func TestRadiusConstraints(Te *testing.T) {
	T := NewElementTable()
	C, _ := T.Symbol("C")
	O, _ := T.Symbol("O")
	R := NewRadiusConstraints()
	require.NoError(Te, R.Set(O, C, 1.3))
	d, ok := R.Explicit(C, O)
	assert.True(Te, ok)
	assert.Equal(Te, 1.3, d)
	assert.Equal(Te, 1.3, R.MinDistance(C, O))
	assert.InDelta(Te, 0.8*(0.76+0.76), R.MinDistance(C, C), 1e-12)
	R.Scale = 1
	assert.InDelta(Te, 0.66+0.66, R.MinDistance(O, O), 1e-12)
	assert.True(Te, R.Allowed(C, O, 1.3))
	assert.False(Te, R.Allowed(C, O, 1.29))
	assert.Equal(Te, 1, R.Len())
	assert.ErrorIs(Te, R.Set(C, C, 0), ErrValidation)
	assert.ErrorIs(Te, R.Set(C, C, math.NaN()), ErrValidation)
}

func TestReadRadiusConstraints(Te *testing.T) {
	T := NewElementTable()
	S := nml.ParseLineStore("C  C 1.20\n c O 3/2\nO O 2.4(1)\nC C 1.25\n")
	R, err := ReadRadiusConstraints(S, T)
	require.NoError(Te, err)
	C, _ := T.Symbol("C")
	O, _ := T.Symbol("O")
	assert.Equal(Te, 2+1, R.Len())
	assert.Equal(Te, 1.25, R.MinDistance(C, C))
	assert.Equal(Te, 1.5, R.MinDistance(O, C))
	assert.Equal(Te, 2.4, R.MinDistance(O, O))

	R, err = ReadRadiusConstraints(nil, T)
	require.NoError(Te, err)
	assert.Equal(Te, 0, R.Len())

	_, err = ReadRadiusConstraints(nml.ParseLineStore("C C -1\n"), T)
	assert.ErrorIs(Te, err, ErrValidation)
}
