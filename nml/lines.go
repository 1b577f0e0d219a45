/*
 * lines.go, part of marici.
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

import "strings"

// LineStore is an ordered sequence of text lines. No stored line contains
// a newline character. The zero value is an empty, usable store.
type LineStore struct {
	lines []string
}

// NewLineStore returns a LineStore that takes ownership of lines. The slice is
// not copied, so the caller should not use it afterwards. Elements containing
// newlines are split like ParseLineStore does, the rest are stored as they are.
func NewLineStore(lines []string) *LineStore {
	for _, l := range lines {
		if strings.Contains(l, "\n") {
			S := new(LineStore)
			for _, v := range lines {
				S.AppendLine(v)
			}
			return S
		}
	}
	return &LineStore{lines: lines}
}

// ParseLineStore splits text into lines and stores them. A single trailing
// line terminator does not produce an extra empty line, but every other
// empty line is kept.
func ParseLineStore(text string) *LineStore {
	return &LineStore{lines: splitLines(text)}
}

// splitLines reads text line by line until it is exhausted.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Between returns a copy of the inclusive range of lines that starts at the first
// line equal to start and ends at the first later line equal to end. If end never
// appears the copy runs to the last line. If start never appears the result is empty.
func (S *LineStore) Between(start, end string) *LineStore {
	ret := new(LineStore)
	copying := false
	for _, l := range S.lines {
		if !copying {
			if l != start {
				continue
			}
			copying = true
			ret.lines = append(ret.lines, l)
			continue
		}
		ret.lines = append(ret.lines, l)
		if l == end {
			break
		}
	}
	return ret
}

// Reset replaces every line in the store by the lines in text.
func (S *LineStore) Reset(text string) {
	S.lines = splitLines(text)
}

// AppendText splits text the same way ParseLineStore does and appends every piece.
func (S *LineStore) AppendText(text string) {
	S.lines = append(S.lines, splitLines(text)...)
}

// AppendLine appends line as one line. If line contains newlines it is
// split the way ParseLineStore splits text and each piece is appended, so ""
// appends one empty line, "a\nb" appends two and "a\n" appends one.
func (S *LineStore) AppendLine(line string) {
	if !strings.Contains(line, "\n") {
		S.lines = append(S.lines, line)
		return
	}
	S.lines = append(S.lines, splitLines(line)...)
}

// Len returns the number of lines in the store.
func (S *LineStore) Len() int {
	if S == nil {
		return 0
	}
	return len(S.lines)
}

// Line returns line i. It panics if i is out of range.
func (S *LineStore) Line(i int) string {
	return S.lines[i]
}

// Lines returns a copy of the stored lines.
func (S *LineStore) Lines() []string {
	if S == nil || len(S.lines) == 0 {
		return nil
	}
	ret := make([]string, len(S.lines))
	copy(ret, S.lines)
	return ret
}

// Empty is true if the store contains no lines. An empty block is how
// a missing block is reported.
func (S *LineStore) Empty() bool {
	return S.Len() == 0
}

// Clone returns an independent copy of the store.
func (S *LineStore) Clone() *LineStore {
	return &LineStore{lines: S.Lines()}
}

// Equal returns true if both stores hold the same lines in the same order.
func (S *LineStore) Equal(O *LineStore) bool {
	if S.Len() != O.Len() {
		return false
	}
	for i := 0; i < S.Len(); i++ {
		if S.lines[i] != O.lines[i] {
			return false
		}
	}
	return true
}

// String joins the lines with newlines, without a trailing one.
func (S *LineStore) String() string {
	if S == nil {
		return ""
	}
	return strings.Join(S.lines, "\n")
}
