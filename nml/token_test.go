/*
 * token_test.go, part of marici.
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

package nml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIntegerValue(Te *testing.T) {
	v, err := ToIntegerValue("-42")
	require.NoError(Te, err)
	assert.Equal(Te, -42, v)
	v, err = ToIntegerValue("+7")
	require.NoError(Te, err)
	assert.Equal(Te, 7, v)
	for _, bad := range []string{"", "4.2", " 4", "4 ", "a", "1/2", "99999999999999999999999"} {
		_, err := ToIntegerValue(bad)
		assert.ErrorIs(Te, err, ErrCorruptToken, "%q", bad)
	}
}

func TestToFractionalValue(Te *testing.T) {
	cases := map[string]float64{
		"3":        3,
		"-3":       -3,
		"3/4":      0.75,
		"-1/2":     -0.5,
		"1.234(5)": 1.234,
		"1.0e-3":   1.0e-3,
		"-2.5E+2":  -250,
		".5":       0.5,
		"2.":       2,
		"6.02e23":  6.02e23,
		"0.25(12)": 0.25,
	}
	for text, want := range cases {
		got, err := ToFractionalValue(text)
		require.NoError(Te, err, text)
		assert.InEpsilon(Te, want, got, 1e-12, text)
	}
	for _, bad := range []string{"abc", "", "1/0", "1/", "/2", "1.2.3", "1.0(", "e5"} {
		_, err := ToFractionalValue(bad)
		assert.ErrorIs(Te, err, ErrCorruptToken, "%q", bad)
	}
}

func TestToParameterTuple(Te *testing.T) {
	assert.Equal(Te, []string{"C", "O", "1.60"}, ToParameterTuple("  C   O\t1.60 "))
	assert.Equal(Te, []string{"Fe", "S", "3/2"}, ToParameterTuple("Fe S 3/2"))
	assert.Equal(Te, []string{"a", "b"}, ToParameterTuple(`"a" (b)`))
	assert.Nil(Te, ToParameterTuple("   "))
}
