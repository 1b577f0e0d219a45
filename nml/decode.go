/*
 * decode.go, part of marici.
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
	"regexp"
	"strconv"
	"strings"
)

// Path is a double-quoted field value. It can contain whitespace and path
// separators. The quotes are not part of the value.
type Path string

// Value is the closed set of types ReadValue can decode.
type Value interface {
	string | Path | uint64 | uint16 | int16 | int32 | int | float64 | [2]uint16 |
		[]string | []Path | []uint64 | []int | []float64
}

// the characters regexp's \s matches.
const spaces = " \t\n\f\r"

// Token shapes. Each has exactly one capture group holding the value.
const (
	textToken     = `([[:alnum:]:_\-/+.]+)`
	pathToken     = `"([^"]+)"`
	unsignedToken = `(\d+)`
	signedToken   = `([-+]?\d+)`
	//the parenthesized group is a measurement uncertainty, it is matched but ignored.
	floatToken = `([-.\de]+)(?:\(\d+\))?`
)

// scalar decodes a value region that must be exactly one token (or a fixed
// group of tokens, for pairs).
type scalar[T any] struct {
	re   *regexp.Regexp
	conv func(groups []string) (T, error)
}

func newScalar[T any](shape string, conv func([]string) (T, error)) scalar[T] {
	return scalar[T]{re: regexp.MustCompile(`^` + shape + `$`), conv: conv}
}

func (k scalar[T]) decode(region string, out *T) (bool, error) {
	m := k.re.FindStringSubmatch(region)
	if m == nil {
		return false, nil
	}
	v, err := k.conv(m[1:])
	if err != nil {
		return false, err
	}
	*out = v
	return true, nil
}

// sequence decodes a value region made of one or more whitespace-separated
// tokens. The region never includes the flag, so every token found is a value.
type sequence[T any] struct {
	whole *regexp.Regexp
	token *regexp.Regexp
	conv  func(string) (T, error)
}

func newSequence[T any](token string, conv func(string) (T, error)) sequence[T] {
	return sequence[T]{
		whole: regexp.MustCompile(`^` + token + `(?:\s+` + token + `)*$`),
		token: regexp.MustCompile(token),
		conv:  conv,
	}
}

func (k sequence[T]) decode(region string, out *[]T) (bool, error) {
	if !k.whole.MatchString(region) {
		return false, nil
	}
	ms := k.token.FindAllStringSubmatch(region, -1)
	ret := make([]T, 0, len(ms))
	for _, m := range ms {
		v, err := k.conv(m[1])
		if err != nil {
			return false, err
		}
		ret = append(ret, v)
	}
	*out = ret
	return true, nil
}

func first[T any](conv func(string) (T, error)) func([]string) (T, error) {
	return func(g []string) (T, error) { return conv(g[0]) }
}

func asText(s string) (string, error) { return s, nil }

func asPath(s string) (Path, error) { return Path(s), nil }

func asUint64(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }

func asUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	return uint16(v), err
}

func asInt16(s string) (int16, error) {
	v, err := strconv.ParseInt(s, 10, 16)
	return int16(v), err
}

func asInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func asInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 0)
	return int(v), err
}

func asFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func asPair(g []string) ([2]uint16, error) {
	var ret [2]uint16
	var err error
	for i := range ret {
		if ret[i], err = asUint16(g[i]); err != nil {
			return [2]uint16{}, err
		}
	}
	return ret, nil
}

var (
	textScalar   = newScalar(textToken, first(asText))
	pathScalar   = newScalar(pathToken, first(asPath))
	uint64Scalar = newScalar(unsignedToken, first(asUint64))
	uint16Scalar = newScalar(unsignedToken, first(asUint16))
	int16Scalar  = newScalar(signedToken, first(asInt16))
	int32Scalar  = newScalar(signedToken, first(asInt32))
	intScalar    = newScalar(signedToken, first(asInt))
	floatScalar  = newScalar(floatToken, first(asFloat))
	pairScalar   = newScalar(unsignedToken+`\s+`+unsignedToken, asPair)

	textSequence   = newSequence(textToken, asText)
	pathSequence   = newSequence(pathToken, asPath)
	uint64Sequence = newSequence(unsignedToken, asUint64)
	intSequence    = newSequence(signedToken, asInt)
	floatSequence  = newSequence(floatToken, asFloat)
)

// valueRegion checks that line starts, after optional whitespace, with flag followed by
// at least one whitespace character, and returns what comes after, trimmed.
func valueRegion(line, flag string) (string, bool) {
	if flag == "" {
		return "", false
	}
	rest := strings.TrimLeft(line, spaces)
	if !strings.HasPrefix(rest, flag) {
		return "", false
	}
	rest = rest[len(flag):]
	if rest == "" || strings.IndexByte(spaces, rest[0]) < 0 {
		return "", false
	}
	return strings.Trim(rest, spaces), true
}

// ReadValue decodes the field flag from line into out. The whole line has to
// be the flag, whitespace, and a value of the shape the type of out expects,
// optionally surrounded by whitespace.
//
// It returns false and a nil error, leaving out untouched, if the line doesn't
// have that shape. That is not a failure: the field is absent or written some
// other way, and the caller decides what to do. The error is non-nil only when the
// shape matched but a numeric token could not be converted (i.e. overflow),
// and matches ErrCorruptToken.
func ReadValue[T Value](line, flag string, out *T) (bool, error) {
	region, ok := valueRegion(line, flag)
	if !ok {
		return false, nil
	}
	var err error
	switch p := any(out).(type) {
	case *string:
		ok, err = textScalar.decode(region, p)
	case *Path:
		ok, err = pathScalar.decode(region, p)
	case *uint64:
		ok, err = uint64Scalar.decode(region, p)
	case *uint16:
		ok, err = uint16Scalar.decode(region, p)
	case *int16:
		ok, err = int16Scalar.decode(region, p)
	case *int32:
		ok, err = int32Scalar.decode(region, p)
	case *int:
		ok, err = intScalar.decode(region, p)
	case *float64:
		ok, err = floatScalar.decode(region, p)
	case *[2]uint16:
		ok, err = pairScalar.decode(region, p)
	case *[]string:
		ok, err = textSequence.decode(region, p)
	case *[]Path:
		ok, err = pathSequence.decode(region, p)
	case *[]uint64:
		ok, err = uint64Sequence.decode(region, p)
	case *[]int:
		ok, err = intSequence.decode(region, p)
	case *[]float64:
		ok, err = floatSequence.decode(region, p)
	}
	if err != nil {
		return false, newError(ErrCorruptToken, "ReadValue", "field %s in line %q: %v", flag, line, err)
	}
	return ok, nil
}

// FindValue looks for the first line in S where the field flag decodes into out.
// It returns false if no line does. Conversion errors stop the search.
func FindValue[T Value](S *LineStore, flag string, out *T) (bool, error) {
	if S == nil {
		return false, nil
	}
	for _, l := range S.lines {
		ok, err := ReadValue(l, flag, out)
		if err != nil {
			err.(*Error).Decorate("FindValue")
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
