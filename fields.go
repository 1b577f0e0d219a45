/*
 * fields.go, part of marici.
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
	"strings"

	"go.uber.org/zap"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

// hasFlag is true if some line in block starts with the word flag.
func hasFlag(block *nml.LineStore, flag string) bool {
	for i := 0; i < block.Len(); i++ {
		f := strings.Fields(block.Line(i))
		if len(f) > 0 && f[0] == flag {
			return true
		}
	}
	return false
}

// requireTokens is requireField for values that are split on blanks instead of being
// decoded as one nml kind, so every token can carry its own notation ("1/3", "0.25(2)").
// The first line whose first word is flag is used.
func requireTokens(block *nml.LineStore, blockname, flag string, set func([]string) error) error {
	for i := 0; i < block.Len(); i++ {
		f := strings.Fields(block.Line(i))
		if len(f) == 0 || f[0] != flag {
			continue
		}
		if err := set(f[1:]); err != nil {
			return inBlock(err, blockname, flag)
		}
		return nil
	}
	return inBlock(newInputError(ErrMissingField, "requireTokens", ""), blockname, flag)
}

// readField looks for flag in block and, if found, passes the value to set. An absent flag
// leaves the default in place and returns false. A flag that is there but can't be read as a T
// is an ErrValidation error, as is any error from set.
func readField[T nml.Value](block *nml.LineStore, blockname, flag string, set func(T) error, log *zap.Logger) (bool, error) {
	var v T
	ok, err := nml.FindValue(block, flag, &v)
	if err != nil {
		return false, inBlock(err, blockname, flag)
	}
	if !ok {
		if hasFlag(block, flag) {
			return false, inBlock(invalid("readField", "the value has the wrong shape"), blockname, flag)
		}
		log.Debug("field absent, keeping the default", zap.String("block", blockname), zap.String("field", flag))
		return false, nil
	}
	if err := set(v); err != nil {
		return true, inBlock(err, blockname, flag)
	}
	return true, nil
}

// requireField is readField for fields that have no default.
func requireField[T nml.Value](block *nml.LineStore, blockname, flag string, set func(T) error, log *zap.Logger) error {
	ok, err := readField(block, blockname, flag, set, log)
	if err != nil {
		return err
	}
	if !ok {
		return inBlock(newInputError(ErrMissingField, "requireField", ""), blockname, flag)
	}
	return nil
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
