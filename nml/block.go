/*
 * block.go, part of marici.
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
	"strings"
)

// ListPrefix is the only supported symbol for opening a named block.
const ListPrefix = "&"

var (
	listNameRe   = regexp.MustCompile(`^[A-Z_]+$`)
	markerLineRe = regexp.MustCompile(`^&([A-Z_]+)$`)
)

// NamedBlock is one block found by EnumerateListBlocks or Occurrences. Marker is the full
// marker line (i.e. "&ATOM_SITE").
type NamedBlock struct {
	Marker string
	Block  *LineStore
}

// Name returns the marker without the prefix symbol.
func (N NamedBlock) Name() string {
	return strings.TrimPrefix(N.Marker, ListPrefix)
}

func checkPrefix(prefix, caller string) error {
	if prefix != ListPrefix {
		return newError(ErrPrefixSymbol, caller, "got %q, only %q is supported", prefix, ListPrefix)
	}
	return nil
}

// ListBlock returns a copy of the lines in the block opened by the first line equal
// to prefix+name. The marker line itself is not included. The block ends at the next
// line that starts with the prefix symbol, or at the end of the store. Empty and
// whitespace-only lines are skipped.
// A block that isn't there, or a name that could never be a marker, gives an empty
// store and no error. The only error is a prefix other than ListPrefix.
func (S *LineStore) ListBlock(prefix, name string) (*LineStore, error) {
	if err := checkPrefix(prefix, "ListBlock"); err != nil {
		return nil, err
	}
	if !listNameRe.MatchString(name) {
		return new(LineStore), nil
	}
	marker := prefix + name
	for i, l := range S.lines {
		if l == marker {
			return S.blockAt(i+1, prefix), nil
		}
	}
	return new(LineStore), nil
}

// blockAt collects the body of a block whose first candidate line is start.
func (S *LineStore) blockAt(start int, prefix string) *LineStore {
	ret := new(LineStore)
	for _, l := range S.lines[start:] {
		if l == "" {
			continue
		}
		if strings.HasPrefix(l, prefix) {
			break
		}
		if strings.TrimSpace(l) == "" {
			continue
		}
		ret.lines = append(ret.lines, l)
	}
	return ret
}

// EnumerateListBlocks returns one entry per marker line, in the order the markers appear.
// Only lines that are exactly a prefix followed by [A-Z_]+ count as markers. Each entry's
// block is what ListBlock gives for its name, so a name repeated in the file gets the
// body of its first occurrence every time. Use Occurrences to get each body by position.
func (S *LineStore) EnumerateListBlocks(prefix string) ([]NamedBlock, error) {
	if err := checkPrefix(prefix, "EnumerateListBlocks"); err != nil {
		return nil, err
	}
	var ret []NamedBlock
	for _, l := range S.lines {
		m := markerLineRe.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		B, err := S.ListBlock(prefix, m[1])
		if err != nil {
			return nil, err
		}
		ret = append(ret, NamedBlock{Marker: l, Block: B})
	}
	return ret, nil
}

// Occurrences is like EnumerateListBlocks, but each entry gets the body that follows
// its own marker line. This is what callers that allow a block to be repeated (one
// block per item) need.
func (S *LineStore) Occurrences(prefix string) ([]NamedBlock, error) {
	if err := checkPrefix(prefix, "Occurrences"); err != nil {
		return nil, err
	}
	var ret []NamedBlock
	for i, l := range S.lines {
		if !markerLineRe.MatchString(l) {
			continue
		}
		ret = append(ret, NamedBlock{Marker: l, Block: S.blockAt(i+1, prefix)})
	}
	return ret, nil
}

// DuplicateNames returns the block names that appear more than once in blocks,
// in order of their first appearance. Callers that don't allow repeated
// sections can use it to reject a file.
func DuplicateNames(blocks []NamedBlock) []string {
	seen := make(map[string]int, len(blocks))
	var ret []string
	for _, b := range blocks {
		n := b.Name()
		seen[n]++
		if seen[n] == 2 {
			ret = append(ret, n)
		}
	}
	return ret
}
