/*
 * bonds.go, part of vsepr.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import "fmt"

//MaxBondOrder is the highest order a bond can reach.
const MaxBondOrder = 3

//Bond is an edge between two atoms of a structure. The structure owns it, the
//atoms only point to it (through the structure) while it exists.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Order int
}

func (B *Bond) String() string {
	return fmt.Sprintf("%s-%s(%d)", B.At1, B.At2, B.Order)
}

//Cross returns the atom at the other end of the bond from origin.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic(ErrNotInBond) //I think this got to be a programming error, so a panic is warranted.
}

//Has returns true if A is one of the ends of the bond.
func (B *Bond) Has(A *Atom) bool {
	return A == B.At1 || A == B.At2
}

//Matches returns true if both bonds join the same pair of atoms, in either direction.
func (B *Bond) Matches(other *Bond) bool {
	return B.joins(other.At1, other.At2)
}

func (B *Bond) joins(a, b *Atom) bool {
	return (B.At1 == a && B.At2 == b) || (B.At1 == b && B.At2 == a)
}

//bondsOf returns the bonds of M in which A participates.
func (M *MolecularStructure) bondsOf(A *Atom) []*Bond {
	ret := make([]*Bond, 0, 4)
	for _, b := range M.bonds {
		if b.Has(A) {
			ret = append(ret, b)
		}
	}
	return ret
}

//BondBetween returns the bond joining a and b, or nil if there is none.
func (M *MolecularStructure) BondBetween(a, b *Atom) *Bond {
	for _, bond := range M.bonds {
		if bond.joins(a, b) {
			return bond
		}
	}
	return nil
}

//AddBond bonds a and b with a bond of the given order (clamped to 1-3), and returns the bond.
//If a and b are already bonded, no new bond is created: the order of the existing one
//goes up by one, up to MaxBondOrder, and the existing bond is returned.
//Bonding an atom to itself is ignored and returns nil. Both atoms must belong to M.
//
//Note that the total bond order of an atom is not checked against its valence here.
func (M *MolecularStructure) AddBond(a, b *Atom, order int) *Bond {
	M.MustContain(a)
	M.MustContain(b)
	if a == b {
		return nil
	}
	if existing := M.BondBetween(a, b); existing != nil {
		if existing.Order < MaxBondOrder {
			existing.Order++
		}
		return existing
	}
	if order < 1 {
		order = 1
	} else if order > MaxBondOrder {
		order = MaxBondOrder
	}
	bond := &Bond{Index: len(M.bonds), At1: a, At2: b, Order: order}
	M.bonds = append(M.bonds, bond)
	return bond
}

//RemoveBond removes b from the structure. Bond indexes are not changed.
//Bonds not in the structure are ignored.
func (M *MolecularStructure) RemoveBond(b *Bond) {
	M.bonds = takefromslice(M.bonds, b)
}

//return a new *Bond slice with the element b removed
func takefromslice(bonds []*Bond, b *Bond) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v != b {
			newb = append(newb, v)
		}
	}
	return newb
}
