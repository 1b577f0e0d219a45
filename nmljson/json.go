/*
 * json.go, part of marici.
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

package nmljson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/RyotaroKoshoji/MARICI-sub002/nml"
)

//A ready-to-serialize container for one list block.
type Block struct {
	Name   string   //the marker without the prefix
	Marker string   //the marker line, as written
	Lines  []string //the body, blank lines excluded
}

//Information about a whole input file.
type Info struct {
	Blocks     []Block
	Duplicates []string //names of the blocks that appear more than once
}

//NewInfo collects the blocks in S, in the order they appear, each with the lines that follow
//its own marker. prefix is usually nml.ListPrefix.
func NewInfo(S *nml.LineStore, prefix string) (*Info, *Error) {
	blocks, err := S.Occurrences(prefix)
	if err != nil {
		return nil, NewError("input", "NewInfo", err)
	}
	J := &Info{Blocks: make([]Block, 0, len(blocks)), Duplicates: nml.DuplicateNames(blocks)}
	for _, b := range blocks {
		J.Blocks = append(J.Blocks, Block{Name: b.Name(), Marker: b.Marker, Lines: b.Block.Lines()})
	}
	return J, nil
}

//Send Marshals the info and writes to out, returns an error or nil
func (J *Info) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Info.Send", err)
	}
	return nil
}

//A single field read from a block, and the JSON container for it.
type Field struct {
	Block string
	Flag  string
	Found bool
	Value any `json:",omitempty"`
}

//Send Marshals the field and writes to out, returns an error or nil
func (F *Field) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(F); err != nil {
		return NewError("postprocess", "Field.Send", err)
	}
	return nil
}

//DecodeInfo reads one line from stream and unmarshals it into an Info.
func DecodeInfo(stream *bufio.Reader) (*Info, *Error) {
	line, err := stream.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, NewError("input", "DecodeInfo", err)
	}
	ret := new(Info)
	if err := json.Unmarshal(line, ret); err != nil {
		return nil, NewError("input", "DecodeInfo", err)
	}
	return ret, nil
}

//LineStore rebuilds the input text from the info. Blank lines and any text
//before the first block are not kept, so the result is only equivalent to
//the original for the purposes of reading blocks.
func (J *Info) LineStore() *nml.LineStore {
	S := nml.NewLineStore(nil)
	for _, b := range J.Blocks {
		S.AppendLine(b.Marker)
		for _, l := range b.Lines {
			S.AppendLine(l)
		}
	}
	return S
}

//An easily JSON-serializable error type,
type Error struct {
	deco        []string
	IsError     bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput     bool //Was it while reading the input?
	InField     bool //Was it while decoding a field?
	InProcess   bool
	InPostProc  bool   //was it in preparing the output?
	Corrupt     bool   //a value had the right shape but couldn't be converted
	Function    string //which go function gave the error
	Message     string //the error itself
	Decorations []string `json:",omitempty"`
}

//Error implements the error interface
func (J *Error) Error() string {
	if len(J.deco) == 0 {
		return J.Message
	}
	return J.Message + " (" + strings.Join(J.deco, " <- ") + ")"
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	J.Decorations = J.deco
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "input":
		jerr.InInput = true
	case "field":
		jerr.InField = true
	case "postprocess":
		jerr.InPostProc = true
	default:
		jerr.InProcess = true
	}
	jerr.Corrupt = errors.Is(err, nml.ErrCorruptToken)
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}
