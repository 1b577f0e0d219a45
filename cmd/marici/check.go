/*
 * check.go, part of marici.
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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	marici "github.com/RyotaroKoshoji/MARICI-sub002"
)

// Summary is what check reports about a valid input file.
type Summary struct {
	File        string
	Structures  uint64
	SpaceGroups []int
	ZRange      [2]uint16
	Seed        int32
	Format      string
	Prefix      string
	OutputDir   string
	CellVolume  float64 `json:",omitempty"` //A^3, 0 if there is no cell
	RadiusPairs int
	Sites       []SiteSummary
}

// SiteSummary describes one atom site.
type SiteSummary struct {
	Label      string
	Element    string
	Fractional [3]float64
	Occupancy  float64
}

func summarize(name string, in *marici.Input) *Summary {
	G, R := in.Generation, in.Report
	s := &Summary{
		File:        name,
		Structures:  G.Structures(),
		SpaceGroups: G.SpaceGroups(),
		ZRange:      G.ZRange(),
		Seed:        G.Seed(),
		Format:      R.Format(),
		Prefix:      R.Prefix(),
		OutputDir:   G.OutputDir(),
		RadiusPairs: in.Radii.Len(),
	}
	if in.Cell != nil {
		s.CellVolume = in.Cell.Volume()
	}
	for _, site := range in.Sites {
		s.Sites = append(s.Sites, SiteSummary{
			Label:      site.Label(),
			Element:    site.Element().Symbol,
			Fractional: site.Fractional(),
			Occupancy:  site.Occupancy(),
		})
	}
	return s
}

func (a *app) newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Read and validate a whole input file",
		Long: `Read FILE as the structure generator would, apply all the defaults and
validation rules, and print a summary. Any problem is an error that names
the block and field involved.`,
		Example: `  marici check run.inp
  MARICI_OUTPUT=json marici check run.inp.zst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := marici.NewInputReader(nil, a.log).ReadFile(args[0])
			if err != nil {
				return a.fail(cmd, "input", "check", err)
			}
			s := summarize(args[0], in)
			w := cmd.OutOrStdout()
			if a.jsonOut() {
				return json.NewEncoder(w).Encode(s)
			}
			summaryTable(w, s)
			return nil
		},
	}
	return cmd
}

func summaryTable(w io.Writer, s *Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(s.File)
	t.AppendRows([]table.Row{
		{"Structures", s.Structures},
		{"Space groups", fmt.Sprint(s.SpaceGroups)},
		{"Z range", fmt.Sprintf("%d-%d", s.ZRange[0], s.ZRange[1])},
		{"Seed", s.Seed},
		{"Output", fmt.Sprintf("%s/%s.%s", s.OutputDir, s.Prefix, s.Format)},
		{"Radius pairs", s.RadiusPairs},
	})
	if s.CellVolume > 0 {
		t.AppendRow(table.Row{"Cell volume", fmt.Sprintf("%.3f", s.CellVolume)})
	}
	t.Render()

	st := table.NewWriter()
	st.SetOutputMirror(w)
	st.SetStyle(table.StyleLight)
	st.AppendHeader(table.Row{"Label", "Element", "x", "y", "z", "Occupancy"})
	for _, site := range s.Sites {
		f := site.Fractional
		st.AppendRow(table.Row{site.Label, site.Element,
			fmt.Sprintf("%.4f", f[0]), fmt.Sprintf("%.4f", f[1]), fmt.Sprintf("%.4f", f[2]), site.Occupancy})
	}
	st.Render()
}
