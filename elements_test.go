/*
 * elements_test.go, part of marici.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementTable(Te *testing.T) {
	T := NewElementTable()
	for _, s := range []string{"Fe", "FE", "fe", " fE "} {
		e, ok := T.Symbol(s)
		require.True(Te, ok, s)
		assert.Equal(Te, 26, e.Number, s)
	}
	c, ok := T.Number(6)
	require.True(Te, ok)
	assert.Equal(Te, "C", c.Symbol)
	assert.Equal(Te, "C(6)", c.String())
	_, ok = T.Number(118)
	assert.False(Te, ok)
	_, err := T.Lookup("Xx")
	assert.ErrorIs(Te, err, ErrUnknownElement)

	els := T.Elements()
	require.Len(Te, els, T.Len())
	for i := 1; i < len(els); i++ {
		assert.Less(Te, els[i-1].Number, els[i].Number)
	}
	//Elements returns a copy
	els[0].Symbol = "Q"
	e, _ := T.Number(1)
	assert.Equal(Te, "H", e.Symbol)
}

func TestElementTableFrom(Te *testing.T) {
	T, err := NewElementTableFrom([]Element{{Symbol: "xe", Number: 54, CovalentRadius: 1.4}})
	require.NoError(Te, err)
	xe, err := T.Lookup("XE")
	require.NoError(Te, err)
	assert.Equal(Te, "Xe", xe.Symbol)
	assert.Equal(Te, 1, T.Len())

	bad := [][]Element{
		{{Symbol: "", Number: 1}},
		{{Symbol: "H", Number: 0}},
		{{Symbol: "H", Number: 1, CovalentRadius: -1}},
		{{Symbol: "H", Number: 1}, {Symbol: "h", Number: 2}},
		{{Symbol: "H", Number: 1}, {Symbol: "He", Number: 1}},
	}
	for i, b := range bad {
		_, err := NewElementTableFrom(b)
		assert.ErrorIs(Te, err, ErrValidation, "case %d", i)
	}
}
