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
Package marici reads the input files of the marici crystal structure generator and turns them
into validated objects: generation and report parameters, a unit cell, atom sites and
minimum-distance (radius) constraints.



	**marici Capabilities**


    Reads plain, gzip (.gz) and zstandard (.zst) input files.

    Element table with atomic numbers, masses, covalent and van der Waals
	radii. The table is an ordinary value built by the caller, there is no
	global state.

    Unit cells from lattice parameters, with volumes and fractional to
	Cartesian conversions (uses the Gonum library).

    Lengths in angstrom, bohr or nm.

    Atom sites with fractional coordinates that can be written as fractions
	(1/3) and occupancies.

    Radius constraints between element pairs, with a fallback on the covalent
	radii.


The text format itself (blocks, typed fields) is handled by the nml subpackage,
which knows nothing about crystallography. Everything here pulls fields from nml
blocks and applies its own validation. An input file looks like this:

	&GENERATION
	 NUMBER_OF_STRUCTURES 100
	 SPACE_GROUPS 1 14 19
	 ACCEPTANCE_PROBABILITY 0.25
	&CELL
	 LENGTHS 5.0 6.0 7.0
	 ANGLES 90 90 120
	&ATOM_SITE
	 LABEL C1
	 ELEMENT C
	 FRACTIONAL 0 1/2 0.25

Errors returned by this package are *InputError values. Use errors.Is with ErrValidation,
ErrMissingField, ErrUnknownElement and ErrFile to tell them apart.*/
package marici
