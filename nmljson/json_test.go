/*
 * json_test.go, part of marici.
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

package nmljson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

const input = "# header\n&GENERATION\n NUMBER_OF_STRUCTURES 3\n\n&ATOM_SITE\n LABEL C1\n&ATOM_SITE\n LABEL C2\n"

func TestInfoRoundTrip(Te *testing.T) {
	S := nml.ParseLineStore(input)
	J, jerr := NewInfo(S, nml.ListPrefix)
	require.Nil(Te, jerr)
	require.Len(Te, J.Blocks, 3)
	assert.Equal(Te, "GENERATION", J.Blocks[0].Name)
	assert.Equal(Te, "&ATOM_SITE", J.Blocks[2].Marker)
	assert.Equal(Te, []string{" LABEL C2"}, J.Blocks[2].Lines)
	assert.Equal(Te, []string{"ATOM_SITE"}, J.Duplicates)

	var buf bytes.Buffer
	require.Nil(Te, J.Send(&buf))
	J2, jerr := DecodeInfo(bufio.NewReader(&buf))
	require.Nil(Te, jerr)
	assert.Equal(Te, J, J2)

	R := J2.LineStore()
	for _, name := range []string{"GENERATION", "ATOM_SITE"} {
		a, err := S.ListBlock(nml.ListPrefix, name)
		require.NoError(Te, err)
		b, err := R.ListBlock(nml.ListPrefix, name)
		require.NoError(Te, err)
		assert.True(Te, a.Equal(b), name)
	}
}

func TestInfoBadPrefix(Te *testing.T) {
	_, jerr := NewInfo(nml.ParseLineStore(input), "$")
	require.NotNil(Te, jerr)
	assert.True(Te, jerr.IsError)
	assert.True(Te, jerr.InInput)
	assert.False(Te, jerr.Corrupt)
	assert.Equal(Te, "NewInfo", jerr.Function)
}

func TestField(Te *testing.T) {
	var buf bytes.Buffer
	F := &Field{Block: "GENERATION", Flag: "Z_RANGE", Found: true, Value: [2]uint16{1, 4}}
	require.Nil(Te, F.Send(&buf))
	assert.JSONEq(Te, `{"Block":"GENERATION","Flag":"Z_RANGE","Found":true,"Value":[1,4]}`, buf.String())
	buf.Reset()
	F = &Field{Block: "GENERATION", Flag: "SEED"}
	require.Nil(Te, F.Send(&buf))
	assert.JSONEq(Te, `{"Block":"GENERATION","Flag":"SEED","Found":false}`, buf.String())
}

func TestError(Te *testing.T) {
	var i uint16
	_, err := nml.ReadValue(" MAX_TRIALS 70000", "MAX_TRIALS", &i)
	require.Error(Te, err)
	jerr := NewError("field", "TestError", err)
	assert.True(Te, jerr.Corrupt)
	assert.True(Te, jerr.InField)
	jerr.Decorate("main")
	assert.Contains(Te, jerr.Error(), "(main)")
	var back Error
	require.NoError(Te, json.Unmarshal(jerr.Marshal(), &back))
	assert.Equal(Te, []string{"main"}, back.Decorations)
	assert.Equal(Te, jerr.Message, back.Message)
}
