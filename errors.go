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

package marici

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method
// allows to add and retrieve info from the error, without changing it's type or wrapping it around
// something else. The decoration slice contains the functions in the calling stack, plus, for each
// function, any relevant information, in the form "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// Kinds of input errors. Use errors.Is to tell them apart.
var (
	ErrValidation     = errors.New("invalid value")
	ErrMissingField   = errors.New("missing mandatory field")
	ErrUnknownElement = errors.New("unknown element")
	ErrFile           = errors.New("can't read input file")
)

// InputError is the error returned when an input file, or one of its blocks,
// can't be turned into the marici objects. It fulfills Error.
type InputError struct {
	message  string
	kind     error
	cause    error
	filename string //the input file that has problems, or empty string if unknown
	block    string
	field    string
	deco     []string
	critical bool
}

func newInputError(kind error, caller, format string, args ...interface{}) *InputError {
	return &InputError{
		message:  fmt.Sprintf(format, args...),
		kind:     kind,
		deco:     []string{caller},
		critical: true,
	}
}

// invalid is the error returned by the validated setters. The readers
// add the block and field names.
func invalid(caller, format string, args ...interface{}) *InputError {
	return newInputError(ErrValidation, caller, format, args...)
}

func (err *InputError) Error() string {
	var b strings.Builder
	b.WriteString("marici: ")
	if err.filename != "" {
		fmt.Fprintf(&b, "file %s: ", err.filename)
	}
	if err.block != "" {
		fmt.Fprintf(&b, "block &%s: ", err.block)
	}
	if err.field != "" {
		fmt.Fprintf(&b, "field %s: ", err.field)
	}
	b.WriteString(err.kind.Error())
	if err.message != "" {
		b.WriteString(": " + err.message)
	}
	if err.cause != nil {
		b.WriteString(": " + err.cause.Error())
	}
	return b.String()
}

// Unwrap gives both the kind of the error and, if any, the error that caused it.
func (err *InputError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

// Decorate adds new information to the error
func (err *InputError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err *InputError) Critical() bool { return err.critical }

// FileName returns the input file the error refers to, if known.
func (err *InputError) FileName() string { return err.filename }

// Block returns the name of the block the error refers to, if any.
func (err *InputError) Block() string { return err.block }

// Field returns the name of the field the error refers to, if any.
func (err *InputError) Field() string { return err.field }

// errDecorate adds caller to the decoration of err, if err implements Error.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

// inBlock sets block and field in err, if it is an InputError. Other errors are
// wrapped in a new InputError of kind ErrValidation.
func inBlock(err error, block, field string) error {
	if err == nil {
		return nil
	}
	var ie *InputError
	if !errors.As(err, &ie) {
		ie = newInputError(ErrValidation, "inBlock", "")
		ie.cause = err
	}
	if ie.block == "" {
		ie.block = block
	}
	if ie.field == "" {
		ie.field = field
	}
	return ie
}
