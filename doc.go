/*
 * doc.go, part of vsepr.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package chem is the main package of the vsepr library. It provides the element
table and the atom/bond structure on which a molecule is built, one atom at a time.

	**Capabilities**

	Element data (valence, steric number, color, vdW radius) and ideal bond lengths
	for pairs of elements and bond orders. Unknown elements and pairs get reasonable
	defaults rather than errors. The data can be overridden from a TOML file.

	A MolecularStructure that owns atoms and bonds. Adding a bond twice between the same
	pair of atoms raises its order (up to triple) instead of adding a new bond.
	Removing an atom removes its bonds and keeps indexes dense.

	Everything derived from the bonds (total bond order, bonded atoms, empty bond capacity)
	is recalculated on each call.

The subpackages do the rest:

	v3         vectors, rotations and coordinate matrices.
	chemgraph  the structure as a gonum graph: fragments and paths.
	hitcheck   which existing atoms should bond to an atom placed at some point.
	guide      VSEPR directions for new bonds around an atom.
	place      snapping of a placement to those directions, previews and commits.
	clash      atoms that would sit too close to a new one.

Positions are in nm, while the bond lengths in the table are in A (as chemists
usually write them). IdealBondLength does the conversion.
*/
package chem
