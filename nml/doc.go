/*
 * doc.go, part of marici.
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

/*
Package nml reads the namelist-like input files used by marici.

A file is held in memory as a LineStore. Named blocks are opened by a marker
line, "&" followed by uppercase letters and underscores, and run until the next
line starting with "&":

	&GENERATION
	 NUMBER_OF_STRUCTURES 100
	 VOLUME_FACTOR 1.2(1)
	&REPORT
	 OUTPUT_DIRECTORY "./my results"

ListBlock, EnumerateListBlocks and Occurrences return blocks as new, independent LineStores.
Fields are pulled one at a time with ReadValue, which decodes the value after a
known flag into the Go type the caller asks for:

	var n uint64
	ok, err := nml.ReadValue(line, "NUMBER_OF_STRUCTURES", &n)

There are three kinds of failure. A bad prefix symbol is a programming error
(ErrPrefixSymbol). A missing block or a field that doesn't match is not an error
at all: it gives an empty LineStore or a false from ReadValue. A token that matched
a numeric shape but can't be converted is ErrCorruptToken.

Nothing here knows what the fields mean: validation belongs to the caller.
*/
package nml
