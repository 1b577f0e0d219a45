/*
 * params.go, part of marici.
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
	"go.uber.org/zap"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

// Fields of the &GENERATION block.
const (
	FlagStructures   = "NUMBER_OF_STRUCTURES"
	FlagSpaceGroups  = "SPACE_GROUPS"
	FlagZRange       = "Z_RANGE"
	FlagSeed         = "RANDOM_SEED"
	FlagProbability  = "ACCEPTANCE_PROBABILITY"
	FlagVolumeFactor = "VOLUME_FACTOR"
	FlagMaxTrials    = "MAX_TRIALS"
	FlagOutputDir    = "OUTPUT_DIRECTORY"
)

// Fields of the &REPORT block.
const (
	FlagFormat     = "FORMAT"
	FlagPrefix     = "PREFIX"
	FlagVerbosity  = "VERBOSITY"
	FlagExtraFiles = "EXTRA_FILES"
)

// TimeSeed as a random seed means the seed is taken from the clock.
const TimeSeed = -1

// GenerationParams are the settings for generating crystal structures.
type GenerationParams struct {
	structures   uint64
	spaceGroups  []int
	zRange       [2]uint16
	seed         int32
	probability  float64
	volumeFactor float64
	maxTrials    uint16
	outputDir    string
}

// NewGenerationParams returns the parameters with their defaults.
func NewGenerationParams() *GenerationParams {
	G := new(GenerationParams)
	G.SetDefaults()
	return G
}

// SetDefaults sets every field to its default value.
func (G *GenerationParams) SetDefaults() {
	G.structures = 1
	G.spaceGroups = []int{1}
	G.zRange = [2]uint16{1, 1}
	G.seed = TimeSeed
	G.probability = 1
	G.volumeFactor = 1
	G.maxTrials = 1000
	G.outputDir = "."
}

func (G *GenerationParams) Structures() uint64 { return G.structures }

func (G *GenerationParams) SpaceGroups() []int {
	return append([]int(nil), G.spaceGroups...)
}

func (G *GenerationParams) ZRange() [2]uint16 { return G.zRange }

func (G *GenerationParams) Seed() int32 { return G.seed }

func (G *GenerationParams) Probability() float64 { return G.probability }

func (G *GenerationParams) VolumeFactor() float64 { return G.volumeFactor }

func (G *GenerationParams) MaxTrials() uint16 { return G.maxTrials }

func (G *GenerationParams) OutputDir() string { return G.outputDir }

// SetStructures sets how many structures to generate, at least one.
func (G *GenerationParams) SetStructures(n uint64) error {
	if n == 0 {
		return invalid("SetStructures", "at least one structure has to be generated")
	}
	G.structures = n
	return nil
}

// SetSpaceGroups sets the space groups to sample. Each has to be a number between 1 and 230.
func (G *GenerationParams) SetSpaceGroups(groups []int) error {
	if len(groups) == 0 {
		return invalid("SetSpaceGroups", "no space groups given")
	}
	for _, g := range groups {
		if g < 1 || g > 230 {
			return invalid("SetSpaceGroups", "space group %d not in 1..230", g)
		}
	}
	G.spaceGroups = append([]int(nil), groups...)
	return nil
}

// SetZRange sets the smallest and largest number of formula units per cell.
func (G *GenerationParams) SetZRange(z [2]uint16) error {
	if z[0] == 0 || z[0] > z[1] {
		return invalid("SetZRange", "Z range %d..%d", z[0], z[1])
	}
	G.zRange = z
	return nil
}

// SetSeed sets the random seed. TimeSeed (-1) is allowed, other negative values aren't.
func (G *GenerationParams) SetSeed(s int32) error {
	if s < TimeSeed {
		return invalid("SetSeed", "random seed %d", s)
	}
	G.seed = s
	return nil
}

// SetProbability sets the acceptance probability, in (0,1].
func (G *GenerationParams) SetProbability(p float64) error {
	if !(p > 0 && p <= 1) {
		return invalid("SetProbability", "probability must be in (0,1], got %g", p)
	}
	G.probability = p
	return nil
}

// SetVolumeFactor sets the factor applied to the volume estimated for the cell. It has to be positive.
func (G *GenerationParams) SetVolumeFactor(f float64) error {
	if !(f > 0) {
		return invalid("SetVolumeFactor", "volume factor must be positive, got %g", f)
	}
	G.volumeFactor = f
	return nil
}

// SetMaxTrials sets how many times to try placing the atoms of a structure before giving up.
func (G *GenerationParams) SetMaxTrials(n uint16) error {
	if n == 0 {
		return invalid("SetMaxTrials", "at least one trial is needed")
	}
	G.maxTrials = n
	return nil
}

// SetOutputDir sets the directory structures are written to.
func (G *GenerationParams) SetOutputDir(dir nml.Path) error {
	if dir == "" {
		return invalid("SetOutputDir", "empty output directory")
	}
	G.outputDir = string(dir)
	return nil
}

// ReadGenerationParams reads a &GENERATION block. Absent fields keep their defaults, so an
// empty block gives the default parameters.
func ReadGenerationParams(block *nml.LineStore, log *zap.Logger) (*GenerationParams, error) {
	log = orNop(log)
	G := NewGenerationParams()
	const b = generationBlock
	steps := []func() (bool, error){
		func() (bool, error) { return readField(block, b, FlagStructures, G.SetStructures, log) },
		func() (bool, error) { return readField(block, b, FlagSpaceGroups, G.SetSpaceGroups, log) },
		func() (bool, error) { return readField(block, b, FlagZRange, G.SetZRange, log) },
		func() (bool, error) { return readField(block, b, FlagSeed, G.SetSeed, log) },
		func() (bool, error) { return readField(block, b, FlagProbability, G.SetProbability, log) },
		func() (bool, error) { return readField(block, b, FlagVolumeFactor, G.SetVolumeFactor, log) },
		func() (bool, error) { return readField(block, b, FlagMaxTrials, G.SetMaxTrials, log) },
		func() (bool, error) { return readField(block, b, FlagOutputDir, G.SetOutputDir, log) },
	}
	for _, step := range steps {
		if _, err := step(); err != nil {
			return nil, errDecorate(err, "ReadGenerationParams")
		}
	}
	return G, nil
}

// Output formats for the generated structures.
const (
	FormatCIF    = "cif"
	FormatXYZ    = "xyz"
	FormatPOSCAR = "poscar"
)

// ReportParams are the settings for writing the results.
type ReportParams struct {
	format     string
	prefix     string
	verbosity  int16
	extraFiles []string
}

// NewReportParams returns the parameters with their defaults.
func NewReportParams() *ReportParams {
	return &ReportParams{format: FormatCIF, prefix: "structure"}
}

func (R *ReportParams) Format() string { return R.format }

func (R *ReportParams) Prefix() string { return R.prefix }

func (R *ReportParams) Verbosity() int16 { return R.verbosity }

func (R *ReportParams) ExtraFiles() []string {
	return append([]string(nil), R.extraFiles...)
}

// SetFormat sets the output format, one of FormatCIF, FormatXYZ or FormatPOSCAR.
func (R *ReportParams) SetFormat(f string) error {
	switch f {
	case FormatCIF, FormatXYZ, FormatPOSCAR:
		R.format = f
		return nil
	}
	return invalid("SetFormat", "unknown format %q", f)
}

// SetPrefix sets the prefix for the output file names.
func (R *ReportParams) SetPrefix(p string) error {
	if p == "" {
		return invalid("SetPrefix", "empty prefix")
	}
	R.prefix = p
	return nil
}

// SetVerbosity sets how much is written to the report, 0 being the least.
func (R *ReportParams) SetVerbosity(v int16) error {
	if v < 0 {
		return invalid("SetVerbosity", "negative verbosity %d", v)
	}
	R.verbosity = v
	return nil
}

// SetExtraFiles sets the files to be copied along with the report.
func (R *ReportParams) SetExtraFiles(files []nml.Path) error {
	R.extraFiles = make([]string, len(files))
	for i, f := range files {
		R.extraFiles[i] = string(f)
	}
	return nil
}

// ReadReportParams reads a &REPORT block. Absent fields keep their defaults.
func ReadReportParams(block *nml.LineStore, log *zap.Logger) (*ReportParams, error) {
	log = orNop(log)
	R := NewReportParams()
	const b = reportBlock
	if _, err := readField(block, b, FlagFormat, R.SetFormat, log); err != nil {
		return nil, errDecorate(err, "ReadReportParams")
	}
	if _, err := readField(block, b, FlagPrefix, R.SetPrefix, log); err != nil {
		return nil, errDecorate(err, "ReadReportParams")
	}
	if _, err := readField(block, b, FlagVerbosity, R.SetVerbosity, log); err != nil {
		return nil, errDecorate(err, "ReadReportParams")
	}
	if _, err := readField(block, b, FlagExtraFiles, R.SetExtraFiles, log); err != nil {
		return nil, errDecorate(err, "ReadReportParams")
	}
	return R, nil
}
