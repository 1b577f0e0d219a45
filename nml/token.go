/*
 * token.go, part of marici.
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
)

var (
	integerRe  = regexp.MustCompile(`^[-+]?\d+$`)
	rationalRe = regexp.MustCompile(`^([-+]?\d+)/(\d+)$`)
	decimalRe  = regexp.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)(?:\(\d+\))?$`)
	tupleRe    = regexp.MustCompile(textToken)
)

// ToIntegerValue converts text, which has to be an optionally signed run of digits
// and nothing else. The text is expected to have been isolated by an outer match
// already, so any other shape is reported as ErrCorruptToken.
func ToIntegerValue(text string) (int, error) {
	if !integerRe.MatchString(text) {
		return 0, newError(ErrCorruptToken, "ToIntegerValue", "%q is not an integer", text)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, newError(ErrCorruptToken, "ToIntegerValue", "%q: %v", text, err)
	}
	return v, nil
}

// ToFractionalValue converts text written as an integer, a rational "a/b",
// or a decimal/scientific number with an optional uncertainty suffix in
// parentheses, which is discarded ("1.234(5)" gives 1.234).
func ToFractionalValue(text string) (float64, error) {
	if integerRe.MatchString(text) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, newError(ErrCorruptToken, "ToFractionalValue", "%q: %v", text, err)
		}
		return v, nil
	}
	if m := rationalRe.FindStringSubmatch(text); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, newError(ErrCorruptToken, "ToFractionalValue", "%q: %v", text, err)
		}
		den, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, newError(ErrCorruptToken, "ToFractionalValue", "%q: %v", text, err)
		}
		if den == 0 {
			return 0, newError(ErrCorruptToken, "ToFractionalValue", "%q has a zero denominator", text)
		}
		return num / den, nil
	}
	if m := decimalRe.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, newError(ErrCorruptToken, "ToFractionalValue", "%q: %v", text, err)
		}
		return v, nil
	}
	return 0, newError(ErrCorruptToken, "ToFractionalValue", "%q is not a number", text)
}

// ToParameterTuple returns every token in line, using the same characters a text
// field value can have. No flag is involved.
func ToParameterTuple(line string) []string {
	return tupleRe.FindAllString(line, -1)
}
