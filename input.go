/*
 * input.go, part of marici.
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

	"go.uber.org/zap"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

// Block names in a marici input file.
const (
	generationBlock = "GENERATION"
	reportBlock     = "REPORT"
	cellBlock       = "CELL"
	radiusBlock     = "RADIUS"
	siteBlock       = "ATOM_SITE"
)

// Fields of the &CELL block.
const (
	FlagLengthUnit = "LENGTH_UNIT"
	FlagLengths    = "LENGTHS"
	FlagAngles     = "ANGLES"
)

// Fields of the &ATOM_SITE blocks.
const (
	FlagLabel      = "LABEL"
	FlagElement    = "ELEMENT"
	FlagFractional = "FRACTIONAL"
	FlagOccupancy  = "OCCUPANCY"
)

// Input is everything read from a marici input file.
type Input struct {
	Generation *GenerationParams
	Report     *ReportParams
	Cell       *Cell //nil if the file has no &CELL block
	Radii      *RadiusConstraints
	Sites      []*AtomSite
}

// InputReader reads marici input files. Elements is the table used to resolve element
// symbols and Log gets the notices about defaults and odd blocks. Both are owned by
// the caller, and can be shared between readers.
type InputReader struct {
	Elements *ElementTable
	Log      *zap.Logger
}

// NewInputReader returns a reader. A nil elements table means the built-in one, a nil
// logger means no logging.
func NewInputReader(elements *ElementTable, log *zap.Logger) *InputReader {
	if elements == nil {
		elements = NewElementTable()
	}
	return &InputReader{Elements: elements, Log: orNop(log)}
}

// ReadFile reads and parses the input file name. See ReadInputFile for the supported compressions.
func (R *InputReader) ReadFile(name string) (*Input, error) {
	S, err := ReadInputFile(name)
	if err != nil {
		return nil, err
	}
	in, err := R.Read(S)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) && ie.filename == "" {
			ie.filename = name
		}
		return nil, errDecorate(err, "ReadFile")
	}
	return in, nil
}

// Read builds an Input from the blocks in S. &GENERATION, &REPORT and &RADIUS are
// optional. &CELL is optional too, but if it is there it needs LENGTHS. There must
// be at least one &ATOM_SITE block; each of them is one site.
func (R *InputReader) Read(S *nml.LineStore) (*Input, error) {
	log := orNop(R.Log)
	blocks, err := S.Occurrences(nml.ListPrefix) //one &ATOM_SITE body per marker
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	for _, d := range nml.DuplicateNames(blocks) {
		if d != siteBlock {
			log.Warn("block given more than once, only the first one is used", zap.String("block", d))
		}
	}
	for _, b := range blocks {
		switch b.Name() {
		case generationBlock, reportBlock, cellBlock, radiusBlock, siteBlock:
		default:
			log.Warn("unknown block ignored", zap.String("block", b.Name()))
		}
	}
	in := new(Input)
	first := func(name string) *nml.LineStore {
		B, _ := S.ListBlock(nml.ListPrefix, name) //the prefix is ListPrefix, so no error
		return B
	}
	if in.Generation, err = ReadGenerationParams(first(generationBlock), log); err != nil {
		return nil, errDecorate(err, "Read")
	}
	if in.Report, err = ReadReportParams(first(reportBlock), log); err != nil {
		return nil, errDecorate(err, "Read")
	}
	if in.Radii, err = ReadRadiusConstraints(first(radiusBlock), R.Elements); err != nil {
		return nil, errDecorate(err, "Read")
	}
	if cb := first(cellBlock); !cb.Empty() {
		if in.Cell, err = ReadCell(cb, log); err != nil {
			return nil, errDecorate(err, "Read")
		}
	}
	for _, b := range blocks {
		if b.Name() != siteBlock {
			continue
		}
		site, err := ReadAtomSite(b.Block, R.Elements, log)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Read: site %d", len(in.Sites)+1))
		}
		in.Sites = append(in.Sites, site)
	}
	if len(in.Sites) == 0 {
		return nil, inBlock(newInputError(ErrMissingField, "Read", "no &%s blocks", siteBlock), siteBlock, "")
	}
	log.Debug("input read", zap.Int("sites", len(in.Sites)), zap.Int("radius_pairs", in.Radii.Len()))
	return in, nil
}

// ReadCell reads a &CELL block. LENGTHS is mandatory, ANGLES defaults to 90 90 90
// and LENGTH_UNIT to angstrom.
func ReadCell(block *nml.LineStore, log *zap.Logger) (*Cell, error) {
	log = orNop(log)
	unit := Angstrom
	lengths := [3]float64{}
	angles := [3]float64{90, 90, 90}
	setUnit := func(s string) error {
		u, err := ParseLengthUnit(s)
		if err != nil {
			return err
		}
		unit = u
		return nil
	}
	if _, err := readField(block, cellBlock, FlagLengthUnit, setUnit, log); err != nil {
		return nil, errDecorate(err, "ReadCell")
	}
	if err := requireField(block, cellBlock, FlagLengths, triple("lengths", &lengths), log); err != nil {
		return nil, errDecorate(err, "ReadCell")
	}
	if _, err := readField(block, cellBlock, FlagAngles, triple("angles", &angles), log); err != nil {
		return nil, errDecorate(err, "ReadCell")
	}
	unit.ToAngstrom(lengths[:]...)
	C, err := NewCell(lengths, angles)
	if err != nil {
		return nil, inBlock(errDecorate(err, "ReadCell"), cellBlock, "")
	}
	return C, nil
}

// triple returns a setter that copies exactly 3 values to dst.
func triple(what string, dst *[3]float64) func([]float64) error {
	return func(v []float64) error {
		if len(v) != 3 {
			return invalid("triple", "want 3 %s, got %d", what, len(v))
		}
		copy(dst[:], v)
		return nil
	}
}

// ReadAtomSite reads one &ATOM_SITE block. LABEL, ELEMENT and FRACTIONAL are mandatory,
// OCCUPANCY defaults to 1. Fractional coordinates can be written as fractions ("1/3")
// and carry an uncertainty ("0.125(3)").
func ReadAtomSite(block *nml.LineStore, table *ElementTable, log *zap.Logger) (*AtomSite, error) {
	log = orNop(log)
	A := &AtomSite{occupancy: 1}
	setElement := func(s string) error {
		el, err := table.Lookup(s)
		if err != nil {
			return err
		}
		A.SetElement(el)
		return nil
	}
	setFrac := func(tokens []string) error {
		if len(tokens) != 3 {
			return invalid("setFrac", "want 3 fractional coordinates, got %d", len(tokens))
		}
		var frac [3]float64
		for i, t := range tokens {
			v, err := nml.ToFractionalValue(t)
			if err != nil {
				return err
			}
			frac[i] = v
		}
		return A.SetFractional(frac)
	}
	if err := requireField(block, siteBlock, FlagLabel, A.SetLabel, log); err != nil {
		return nil, errDecorate(err, "ReadAtomSite")
	}
	if err := requireField(block, siteBlock, FlagElement, setElement, log); err != nil {
		return nil, errDecorate(err, "ReadAtomSite")
	}
	if err := requireTokens(block, siteBlock, FlagFractional, setFrac); err != nil {
		return nil, errDecorate(err, "ReadAtomSite")
	}
	if _, err := readField(block, siteBlock, FlagOccupancy, A.SetOccupancy, log); err != nil {
		return nil, errDecorate(err, "ReadAtomSite")
	}
	return A, nil
}
