/*
 * errors.go, part of marici.
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
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds. Errors returned by this package match one of them with errors.Is.
var (
	//ErrPrefixSymbol is returned when a block operation gets a prefix symbol other than ListPrefix.
	//It always means a bug in the caller.
	ErrPrefixSymbol = errors.New("invalid list prefix symbol")
	//ErrCorruptToken is returned when a token that should be numeric, given the pattern
	//around it, can't be converted.
	ErrCorruptToken = errors.New("corrupt token")
)

// Error is the error type for the nml package. It fulfills the marici Error interface.
type Error struct {
	message  string
	kind     error
	deco     []string
	critical bool
}

func newError(kind error, caller, format string, args ...interface{}) *Error {
	return &Error{
		message:  fmt.Sprintf(format, args...),
		kind:     kind,
		deco:     []string{caller},
		critical: true,
	}
}

func (err *Error) Error() string {
	s := fmt.Sprintf("nml: %s: %s", err.kind, err.message)
	if len(err.deco) > 0 {
		s += " (" + strings.Join(err.deco, " <- ") + ")"
	}
	return s
}

// Unwrap returns the sentinel kind of the error.
func (err *Error) Unwrap() error { return err.kind }

// Decorate adds deco to the call-stack breadcrumbs of the error and returns them.
// An empty deco only returns the current slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical is always true for nml errors: absence is never reported as an error.
func (err *Error) Critical() bool { return err.critical }
