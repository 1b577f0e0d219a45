/*
 * files.go, part of marici.
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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

// ReadInputFile reads the file name into a LineStore. Files ending in .gz are
// read as gzip, files ending in .zst or .zstd as zstandard, anything else as
// plain text. Windows line ends are taken to Unix ones.
func ReadInputFile(name string) (*nml.LineStore, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fileError(err, name, "ReadInputFile")
	}
	defer f.Close()
	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fileError(err, name, "ReadInputFile")
		}
		defer gz.Close()
		r = gz
	case ".zst", ".zstd":
		zs, err := zstd.NewReader(f)
		if err != nil {
			return nil, fileError(err, name, "ReadInputFile")
		}
		defer zs.Close()
		r = zs
	}
	S, err := ReadInputFrom(r)
	if err != nil {
		return nil, fileError(err, name, "ReadInputFile")
	}
	return S, nil
}

// ReadInputFrom reads everything from r into a LineStore, taking "\r\n" line ends to "\n".
func ReadInputFrom(r io.Reader) (*nml.LineStore, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return nml.ParseLineStore(strings.ReplaceAll(string(data), "\r\n", "\n")), nil
}

func fileError(err error, name, caller string) error {
	ie := newInputError(ErrFile, caller, "")
	ie.cause = err
	ie.filename = name
	return ie
}
