/*
 * main_test.go, part of marici.
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

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyotaroKoshoji/MARICI-sub002/nmljson"
)

var sample = filepath.Join("..", "..", "testdata", "sample.inp")

func run(Te *testing.T, args ...string) (string, string, error) {
	Te.Helper()
	cmd := newRootCmd()
	out, errout := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errout.String(), err
}

func TestBlocks(Te *testing.T) {
	out, _, err := run(Te, "blocks", sample)
	require.NoError(Te, err)
	for _, b := range []string{"GENERATION", "REPORT", "CELL", "RADIUS", "ATOM_SITE"} {
		assert.Contains(Te, out, b)
	}
	assert.Contains(Te, out, "yes")

	out, _, err = run(Te, "blocks", sample, "-o", "json")
	require.NoError(Te, err)
	var info nmljson.Info
	require.NoError(Te, json.Unmarshal([]byte(out), &info))
	assert.Len(Te, info.Blocks, 6)
	assert.Equal(Te, []string{"ATOM_SITE"}, info.Duplicates)
}

func TestGet(Te *testing.T) {
	cases := []struct {
		block, flag, kind, want string
	}{
		{"GENERATION", "Z_RANGE", "pair", "1 4\n"},
		{"GENERATION", "SPACE_GROUPS", "ints", "1 14 19\n"},
		{"GENERATION", "OUTPUT_DIRECTORY", "path", "\"./my runs/out\"\n"},
		{"REPORT", "FORMAT", "text", "poscar\n"},
		{"GENERATION", "RANDOM_SEED", "int32", "2024\n"},
	}
	for _, c := range cases {
		out, _, err := run(Te, "get", sample, "-b", c.block, "-f", c.flag, "-t", c.kind)
		require.NoError(Te, err, c.flag)
		assert.Equal(Te, c.want, out, c.flag)
	}
}

func TestGetJSON(Te *testing.T) {
	out, _, err := run(Te, "get", sample, "-b", "REPORT", "-f", "EXTRA_FILES", "-t", "paths", "-o", "json")
	require.NoError(Te, err)
	assert.JSONEq(Te, `{"Block":"REPORT","Flag":"EXTRA_FILES","Found":true,"Value":["notes.txt","ref data/ref.cif"]}`, out)

	out, _, err = run(Te, "get", sample, "-b", "REPORT", "-f", "NOPE", "-o", "json")
	require.NoError(Te, err)
	assert.JSONEq(Te, `{"Block":"REPORT","Flag":"NOPE","Found":false}`, out)
}

func TestGetErrors(Te *testing.T) {
	_, _, err := run(Te, "get", sample, "-b", "REPORT", "-f", "NOPE")
	assert.Error(Te, err)
	_, _, err = run(Te, "get", sample, "-b", "REPORT", "-f", "FORMAT", "-t", "complex")
	assert.ErrorContains(Te, err, "unknown type")
	_, _, err = run(Te, "get", sample, "-f", "FORMAT")
	assert.Error(Te, err)
	_, errout, err := run(Te, "get", filepath.Join("..", "..", "testdata", "nope.inp"), "-b", "REPORT", "-f", "FORMAT", "-o", "json")
	require.Error(Te, err)
	var jerr nmljson.Error
	require.NoError(Te, json.Unmarshal([]byte(errout), &jerr))
	assert.True(Te, jerr.IsError)
	assert.True(Te, jerr.InInput)
}

func TestRows(Te *testing.T) {
	out, _, err := run(Te, "rows", sample, "-b", "RADIUS")
	require.NoError(Te, err)
	assert.Contains(Te, out, "C\tO\t3/2\n")
}

func TestCheck(Te *testing.T) {
	out, _, err := run(Te, "check", sample)
	require.NoError(Te, err)
	assert.Contains(Te, out, "C1")
	assert.Contains(Te, out, "210.000")

	out, _, err = run(Te, "check", sample, "--output", "JSON")
	require.NoError(Te, err)
	var s Summary
	require.NoError(Te, json.Unmarshal([]byte(out), &s))
	assert.Equal(Te, uint64(100), s.Structures)
	require.Len(Te, s.Sites, 2)
	assert.Equal(Te, "O", s.Sites[1].Element)
}

func TestLoadConfig(Te *testing.T) {
	Te.Setenv("MARICI_OUTPUT", "json")
	cmd := newRootCmd()
	cfg, err := LoadConfig(cmd.PersistentFlags())
	require.NoError(Te, err)
	assert.Equal(Te, OutputJSON, cfg.Output)
	assert.False(Te, cfg.Verbose)

	require.NoError(Te, cmd.PersistentFlags().Set("output", "text"))
	require.NoError(Te, cmd.PersistentFlags().Set("verbose", "true"))
	cfg, err = LoadConfig(cmd.PersistentFlags())
	require.NoError(Te, err)
	assert.Equal(Te, OutputText, cfg.Output)
	assert.True(Te, cfg.Verbose)

	Te.Setenv("MARICI_OUTPUT", "yaml")
	_, err = LoadConfig(nil)
	assert.Error(Te, err)
}
