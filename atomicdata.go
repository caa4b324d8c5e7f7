/*
 * atomicdata.go, part of vsepr.
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

import (
	"math"
	"sort"
)

//ElementSpec contains the per-element data the builder uses.
type ElementSpec struct {
	Symbol    string
	Name      string
	Color     uint32  //0xRRGGBB
	Valence   int     //maximum total bond order the atom can sustain
	Steric    int     //number of electron domains
	VdwRadius float64 //in nm
}

//Scale returns the display scale for atoms of the element.
func (E ElementSpec) Scale() float64 {
	return 0.7 * E.VdwRadius
}

//Values for elements not in the table.
const (
	DefaultValence   = 4
	DefaultSteric    = 4
	DefaultVdwRadius = 0.15
	DefaultColor     = 0x888888

	//DefaultBondLength is used, in A, for pairs of elements without any entry.
	DefaultBondLength = 1.5

	//Factor to go from table lenghts (A) to structure coordinates (nm)
	a2nm = 0.1
)

//A map with the elements the builder knows about.
//vdW radii in nm, from 10.1021/j100785a001, 10.1021/jp8111556 (H altered, as usual).
var symbolSpec = map[string]ElementSpec{
	"H":  {Name: "Hydrogen", Color: 0xffffff, Valence: 1, Steric: 1, VdwRadius: 0.110},
	"B":  {Name: "Boron", Color: 0xffa500, Valence: 3, Steric: 3, VdwRadius: 0.192},
	"C":  {Name: "Carbon", Color: 0x252525, Valence: 4, Steric: 4, VdwRadius: 0.170},
	"N":  {Name: "Nitrogen", Color: 0x0000ff, Valence: 3, Steric: 4, VdwRadius: 0.155},
	"O":  {Name: "Oxygen", Color: 0xff0000, Valence: 2, Steric: 4, VdwRadius: 0.152},
	"F":  {Name: "Fluorine", Color: 0x00ff00, Valence: 1, Steric: 4, VdwRadius: 0.147},
	"Cl": {Name: "Chlorine", Color: 0x00ff00, Valence: 1, Steric: 4, VdwRadius: 0.175},
	"S":  {Name: "Sulfur", Color: 0xffff00, Valence: 2, Steric: 4, VdwRadius: 0.180},
	"P":  {Name: "Phosphorus", Color: 0xff8c00, Valence: 3, Steric: 4, VdwRadius: 0.180},
}

//The order in which elements are offered to the user.
var symbolOrder = []string{"H", "B", "C", "N", "O", "F", "Cl", "S", "P"}

//Ideal bond lengths in A, for a pair of elements and a bond order.
//The order of the two symbols in an entry doesn't matter.
var bondLengths = []struct {
	a, b   string
	order  int
	length float64
}{
	{"H", "B", 1, 1.2}, {"H", "C", 1, 1.1}, {"H", "Cl", 1, 1.3}, {"H", "F", 1, 1.0},
	{"H", "N", 1, 1.0}, {"H", "O", 1, 1.0}, {"H", "P", 1, 1.4}, {"H", "S", 1, 1.3},

	{"B", "B", 1, 2}, {"B", "Cl", 1, 1.8}, {"B", "C", 1, 1.6}, {"B", "F", 1, 1.4},
	{"B", "N", 1, 1.5}, {"B", "O", 1, 1.4}, {"B", "P", 1, 1.9}, {"B", "S", 1, 1.9},

	{"C", "C", 1, 1.5}, {"C", "C", 2, 1.3}, {"C", "C", 3, 1.2},
	{"C", "Cl", 1, 1.8}, {"C", "F", 1, 1.4}, {"C", "H", 1, 1.1},
	{"C", "N", 1, 1.5}, {"C", "N", 2, 1.3}, {"C", "N", 3, 1.1},
	{"C", "O", 1, 1.4}, {"C", "O", 2, 1.2}, {"C", "P", 1, 1.8},
	{"C", "S", 1, 1.8}, {"C", "S", 2, 1.6},

	{"Cl", "Cl", 1, 2.3}, {"Cl", "N", 1, 1.7}, {"Cl", "O", 1, 1.4}, {"Cl", "P", 1, 2.0},
	{"F", "N", 1, 1.4}, {"F", "P", 1, 1.5}, {"F", "S", 1, 1.5},

	{"N", "N", 1, 1.4}, {"N", "N", 2, 1.2}, {"N", "O", 1, 1.4}, {"N", "O", 2, 1.2},
	{"N", "P", 1, 1.7}, {"N", "P", 2, 1.6}, {"N", "S", 1, 1.7}, {"N", "S", 2, 1.5},

	{"O", "O", 1, 1.5}, {"O", "P", 1, 1.6}, {"O", "P", 2, 1.5},
	{"O", "S", 1, 1.6}, {"O", "S", 2, 1.4},

	{"P", "P", 1, 2.2}, {"P", "P", 2, 2.0}, {"P", "S", 2, 1.9},
	{"S", "S", 1, 2.0},
}

type bondKey struct {
	a, b  string //sorted
	order int
}

func newBondKey(a, b string, order int) bondKey {
	if b < a {
		a, b = b, a
	}
	return bondKey{a: a, b: b, order: order}
}

//Table holds the element data and the bond lengths, and answers lookups on them.
//A Table is not modified after it is built, so the same one can be shared by
//every structure and calculator.
type Table struct {
	elements map[string]ElementSpec
	symbols  []string
	lengths  map[bondKey]float64
}

func newTable() *Table {
	return &Table{elements: make(map[string]ElementSpec), lengths: make(map[bondKey]float64)}
}

//DefaultTable returns a new table with the built-in data.
func DefaultTable() *Table {
	t := newTable()
	for _, s := range symbolOrder {
		spec := symbolSpec[s]
		spec.Symbol = s
		t.elements[s] = spec
	}
	t.symbols = append(t.symbols, symbolOrder...)
	for _, v := range bondLengths {
		t.lengths[newBondKey(v.a, v.b, v.order)] = v.length
	}
	return t
}

//Spec returns the data for the element symbol. Unknown symbols get
//a default spec instead of an error.
func (T *Table) Spec(symbol string) ElementSpec {
	if s, ok := T.elements[symbol]; ok {
		return s
	}
	return ElementSpec{Symbol: symbol, Name: "Unknown", Color: DefaultColor, Valence: DefaultValence, Steric: DefaultSteric, VdwRadius: DefaultVdwRadius}
}

//Known returns true if symbol has an entry in the table.
func (T *Table) Known(symbol string) bool {
	_, ok := T.elements[symbol]
	return ok
}

//Symbols returns the symbols in the table, in the order in which they should be offered
//to the user.
func (T *Table) Symbols() []string {
	ret := make([]string, len(T.symbols))
	copy(ret, T.symbols)
	return ret
}

//BondLength returns the ideal length, in A, of a bond of the given order between
//elements a and b. The order of a and b doesn't matter. If there is no entry for the order,
//but there is for a single bond of length s, s-ln(order)/s is returned. That formula is not
//physically derived, but the snapping thresholds were tuned with it, so it stays.
//For pairs missing altogether, DefaultBondLength is returned.
func (T *Table) BondLength(a, b string, order int) float64 {
	if l, ok := T.lengths[newBondKey(a, b, order)]; ok {
		return l
	}
	if single, ok := T.lengths[newBondKey(a, b, 1)]; ok {
		return single - math.Log(float64(order))/single
	}
	return DefaultBondLength
}

//IdealBondLength is BondLength, but in the units of the structure coordinates (nm).
func (T *Table) IdealBondLength(a, b string, order int) float64 {
	return T.BondLength(a, b, order) * a2nm
}

//BondEntry is one entry of the bond-length table.
type BondEntry struct {
	A, B   string //A<=B
	Order  int
	Length float64 //A
}

//BondEntries returns the explicit entries of the bond-length table, sorted by pair and order.
func (T *Table) BondEntries() []BondEntry {
	ret := make([]BondEntry, 0, len(T.lengths))
	for k, v := range T.lengths {
		ret = append(ret, BondEntry{A: k.a, B: k.b, Order: k.order, Length: v})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].A != ret[j].A {
			return ret[i].A < ret[j].A
		}
		if ret[i].B != ret[j].B {
			return ret[i].B < ret[j].B
		}
		return ret[i].Order < ret[j].Order
	})
	return ret
}
