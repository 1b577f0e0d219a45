/*
 * blocks.go, part of marici.
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
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	marici "github.com/RyotaroKoshoji/MARICI-sub002"
	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
	"github.com/RyotaroKoshoji/MARICI-sub002/nmljson"
)

func (a *app) newBlocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks FILE",
		Short: "List the blocks in an input file",
		Long: `List every block in FILE, in the order they appear, with the number of
non-blank lines in each. Blocks given more than once are marked.`,
		Example: `  marici blocks run.inp
  marici blocks run.inp.gz --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := marici.ReadInputFile(args[0])
			if err != nil {
				return a.fail(cmd, "input", "blocks", err)
			}
			info, jerr := nmljson.NewInfo(S, nml.ListPrefix)
			if jerr != nil {
				return a.fail(cmd, "input", "blocks", jerr)
			}
			a.log.Debug("blocks read", zap.String("file", args[0]), zap.Int("blocks", len(info.Blocks)))
			if a.jsonOut() {
				if jerr := info.Send(cmd.OutOrStdout()); jerr != nil {
					return jerr
				}
				return nil
			}
			blocksTable(cmd.OutOrStdout(), info)
			return nil
		},
	}
	return cmd
}

func blocksTable(w io.Writer, info *nmljson.Info) {
	if len(info.Blocks) == 0 {
		_, _ = fmt.Fprintln(w, "(no blocks)")
		return
	}
	dup := make(map[string]bool, len(info.Duplicates))
	for _, d := range info.Duplicates {
		dup[d] = true
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Block", "Lines", "Repeated"})
	for i, b := range info.Blocks {
		rep := ""
		if dup[b.Name] {
			rep = "yes"
		}
		t.AppendRow(table.Row{i + 1, b.Name, len(b.Lines), rep})
	}
	t.Render()
}

func (a *app) newRowsCommand() *cobra.Command {
	var block string
	cmd := &cobra.Command{
		Use:   "rows FILE",
		Short: "Split the lines of a block into tokens",
		Long: `Print the tokens of every line in a block. Useful for table-like blocks
such as &RADIUS, where lines don't start with a field name.`,
		Example: `  marici rows run.inp --block RADIUS`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := marici.ReadInputFile(args[0])
			if err != nil {
				return a.fail(cmd, "input", "rows", err)
			}
			B, err := S.ListBlock(nml.ListPrefix, block)
			if err != nil {
				return a.fail(cmd, "input", "rows", err)
			}
			rows := make([][]string, 0, B.Len())
			for _, l := range B.Lines() {
				rows = append(rows, nml.ToParameterTuple(l))
			}
			w := cmd.OutOrStdout()
			if a.jsonOut() {
				F := &nmljson.Field{Block: block, Found: !B.Empty(), Value: rows}
				if jerr := F.Send(w); jerr != nil {
					return jerr
				}
				return nil
			}
			for _, r := range rows {
				_, _ = fmt.Fprintln(w, strings.Join(r, "\t"))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&block, "block", "b", "", "Block name, without the & (required)")
	_ = cmd.MarkFlagRequired("block")
	return cmd
}
