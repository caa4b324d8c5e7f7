/*
 * chem.go, part of vsepr.
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

package chem

import (
	"fmt"

	v3 "github.com/rmera/vsepr/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Atom is an atom in a MolecularStructure. Atoms are only created by the
//structure's AddAtom method.
//Everything other than the symbol, position and index is derived from the
//structure's bonds each time it is requested, so nothing can go stale.
type Atom struct {
	Symbol string
	Pos    r3.Vec
	Index  int
	mol    *MolecularStructure //nil once the atom has been removed
	table  *Table
}

//Atom methods

func (A *Atom) String() string {
	return fmt.Sprintf("%s%d", A.Symbol, A.Index)
}

//InStructure returns true if the atom still belongs to a structure.
func (A *Atom) InStructure() bool {
	return A.mol != nil
}

//Spec returns the element data of the atom, from the table of the structure
//that created it.
func (A *Atom) Spec() ElementSpec {
	return A.Table().Spec(A.Symbol)
}

//builtin serves atoms created outside a structure. Tables have no exported
//mutators, so one copy is shared.
var builtin = DefaultTable()

//Table returns the element table of the structure that created the atom,
//or the built-in table for atoms not created by a structure.
func (A *Atom) Table() *Table {
	if A.table == nil {
		return builtin
	}
	return A.table
}

//IdealBondLength returns the ideal length (nm) of a bond of the given order between A
//and an atom of element.
func (A *Atom) IdealBondLength(element string, order int) float64 {
	return A.Table().IdealBondLength(A.Symbol, element, order)
}

//Valence returns the maximum total bond order the atom can sustain.
func (A *Atom) Valence() int { return A.Spec().Valence }

//Steric returns the number of electron domains of the atom's element.
func (A *Atom) Steric() int { return A.Spec().Steric }

//Color returns the display color of the atom's element.
func (A *Atom) Color() uint32 { return A.Spec().Color }

//Scale returns the display scale of the atom, derived from its vdW radius.
func (A *Atom) Scale() float64 { return A.Spec().Scale() }

//Bonds returns the bonds in which the atom participates, in the order in
//which they were added to the structure.
func (A *Atom) Bonds() []*Bond {
	if A.mol == nil {
		return nil
	}
	return A.mol.bondsOf(A)
}

//TotalBondOrder returns the sum of the orders of the atom's bonds.
func (A *Atom) TotalBondOrder() int {
	tot := 0
	for _, b := range A.Bonds() {
		tot += b.Order
	}
	return tot
}

//BondedAtoms returns the atoms bonded to A, in bond order.
func (A *Atom) BondedAtoms() []*Atom {
	bonds := A.Bonds()
	ret := make([]*Atom, 0, len(bonds))
	for _, b := range bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

//EmptyBonds returns how much more bond order the atom can take, max(0, valence-total bond order).
func (A *Atom) EmptyBonds() int {
	e := A.Valence() - A.TotalBondOrder()
	if e < 0 {
		return 0
	}
	return e
}

/**Type MolecularStructure**/

//MolecularStructure is the only owner of its atoms and bonds, and the only
//one allowed to change them. Insertion order is preserved, and the indexes of
//atoms and bonds are their positions in the respective lists (RemoveBond alone
//leaves gaps in the bond indexes, which the next RemoveAtom closes).
type MolecularStructure struct {
	table *Table
	atoms []*Atom
	bonds []*Bond
}

//NewStructure returns an empty structure that uses the table t for element data.
//If t is nil, the default table is used.
func NewStructure(t *Table) *MolecularStructure {
	if t == nil {
		t = DefaultTable()
	}
	return &MolecularStructure{table: t}
}

//Table returns the element table used by the structure.
func (M *MolecularStructure) Table() *Table {
	return M.table
}

//Len returns the number of atoms in the structure.
func (M *MolecularStructure) Len() int {
	return len(M.atoms)
}

//Atom returns the Atom with index i. Panics if out of range.
func (M *MolecularStructure) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic(fmt.Sprintf("MolecularStructure: Requested Atom %d out of bounds (%d)", i, M.Len()))
	}
	return M.atoms[i]
}

//Atoms returns the atoms of the structure, in order. The slice is a copy,
//the atoms are not.
func (M *MolecularStructure) Atoms() []*Atom {
	ret := make([]*Atom, len(M.atoms))
	copy(ret, M.atoms)
	return ret
}

//Bonds returns the bonds of the structure, in order. The slice is a copy,
//the bonds are not.
func (M *MolecularStructure) Bonds() []*Bond {
	ret := make([]*Bond, len(M.bonds))
	copy(ret, M.bonds)
	return ret
}

//Contains returns true if A is one of the atoms of M.
func (M *MolecularStructure) Contains(A *Atom) bool {
	return A != nil && A.mol == M && A.Index >= 0 && A.Index < len(M.atoms) && M.atoms[A.Index] == A
}

//MustContain panics if A is not one of the atoms of M.
func (M *MolecularStructure) MustContain(A *Atom) {
	if A == nil {
		panic(ErrNilAtom)
	}
	if !M.Contains(A) {
		panic(ErrNotInStructure)
	}
}

//AddAtom appends a new atom of the given element at pos, and returns it.
func (M *MolecularStructure) AddAtom(element string, pos r3.Vec) *Atom {
	at := &Atom{Symbol: element, Pos: pos, Index: len(M.atoms), mol: M, table: M.table}
	M.atoms = append(M.atoms, at)
	return at
}

//RemoveAtom removes A and all its bonds from the structure, and reindexes
//atoms and bonds. Atoms not in the structure are ignored.
func (M *MolecularStructure) RemoveAtom(A *Atom) {
	if !M.Contains(A) {
		return
	}
	for _, b := range M.bondsOf(A) {
		M.RemoveBond(b)
	}
	M.atoms = append(M.atoms[:A.Index], M.atoms[A.Index+1:]...)
	A.mol = nil
	M.reindex()
}

//Sets the current order of atoms and bonds as their indexes.
func (M *MolecularStructure) reindex() {
	for i, a := range M.atoms {
		a.Index = i
	}
	for i, b := range M.bonds {
		b.Index = i
	}
}

//Coords returns a snapshot of the atom positions, one row per atom, in atom order.
func (M *MolecularStructure) Coords() *v3.Matrix {
	pos := make([]r3.Vec, 0, len(M.atoms))
	for _, a := range M.atoms {
		pos = append(pos, a.Pos)
	}
	return v3.FromVecs(pos)
}
