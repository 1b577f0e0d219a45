/*
 * get.go, part of marici.
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
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	marici "github.com/RyotaroKoshoji/MARICI-sub002"
	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
	"github.com/RyotaroKoshoji/MARICI-sub002/nmljson"
)

// finder reads the first occurrence of a field with one value kind.
type finder func(B *nml.LineStore, flag string) (any, bool, error)

func findAs[T nml.Value](B *nml.LineStore, flag string) (any, bool, error) {
	var v T
	ok, err := nml.FindValue(B, flag, &v)
	return v, ok, err
}

// finders maps the names accepted by --type to the value kind read.
var finders = map[string]finder{
	"text":    findAs[string],
	"path":    findAs[nml.Path],
	"uint64":  findAs[uint64],
	"uint16":  findAs[uint16],
	"int16":   findAs[int16],
	"int32":   findAs[int32],
	"int":     findAs[int],
	"float":   findAs[float64],
	"pair":    findAs[[2]uint16],
	"texts":   findAs[[]string],
	"paths":   findAs[[]nml.Path],
	"uint64s": findAs[[]uint64],
	"ints":    findAs[[]int],
	"floats":  findAs[[]float64],
}

func typeNames() []string {
	ret := make([]string, 0, len(finders))
	for k := range finders {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func (a *app) newGetCommand() *cobra.Command {
	var block, flag, kind string
	cmd := &cobra.Command{
		Use:   "get FILE",
		Short: "Read one typed field from a block",
		Long: `Read the first line in a block that sets a field, and decode its value as
the given type. A field that is missing, or whose value has a different
shape, is reported as not found. A value with the right shape that can't
be converted (i.e. a uint16 above 65535) is an error.

Types: ` + strings.Join(typeNames(), ", "),
		Example: `  marici get run.inp --block GENERATION --flag Z_RANGE --type pair
  marici get run.inp -b REPORT -f EXTRA_FILES -t paths -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			find, ok := finders[kind]
			if !ok {
				return fmt.Errorf("unknown type %q (want one of %s)", kind, strings.Join(typeNames(), ", "))
			}
			S, err := marici.ReadInputFile(args[0])
			if err != nil {
				return a.fail(cmd, "input", "get", err)
			}
			B, err := S.ListBlock(nml.ListPrefix, block)
			if err != nil {
				return a.fail(cmd, "input", "get", err)
			}
			v, found, err := find(B, flag)
			if err != nil {
				return a.fail(cmd, "field", "get", err)
			}
			a.log.Debug("field read", zap.String("block", block), zap.String("flag", flag), zap.Bool("found", found))
			w := cmd.OutOrStdout()
			if a.jsonOut() {
				F := &nmljson.Field{Block: block, Flag: flag, Found: found}
				if found {
					F.Value = v
				}
				if jerr := F.Send(w); jerr != nil {
					return jerr
				}
				return nil
			}
			if !found {
				return fmt.Errorf("no %s value for %s in &%s", kind, flag, block)
			}
			_, _ = fmt.Fprintln(w, formatValue(v))
			return nil
		},
	}
	cmd.Flags().StringVarP(&block, "block", "b", "", "Block name, without the & (required)")
	cmd.Flags().StringVarP(&flag, "flag", "f", "", "Field name (required)")
	cmd.Flags().StringVarP(&kind, "type", "t", "text", "Value type")
	_ = cmd.MarkFlagRequired("block")
	_ = cmd.MarkFlagRequired("flag")
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return typeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// formatValue prints sequences one element per blank-separated token, quoting paths.
func formatValue(v any) string {
	switch v := v.(type) {
	case nml.Path:
		return fmt.Sprintf("%q", string(v))
	case []nml.Path:
		s := make([]string, len(v))
		for i, p := range v {
			s[i] = fmt.Sprintf("%q", string(p))
		}
		return strings.Join(s, " ")
	case [2]uint16:
		return fmt.Sprintf("%d %d", v[0], v[1])
	case []string:
		return strings.Join(v, " ")
	case []uint64, []int, []float64:
		return strings.Trim(fmt.Sprint(v), "[]")
	}
	return fmt.Sprint(v)
}
