/*
 * tablefile.go, part of vsepr.
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
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

//The TOML layout of a table file. Every field is optional, and whatever is given
//replaces the built-in value:
//
//	[elements.Si]
//	name = "Silicon"
//	color = 0xf0c8a0
//	valence = 4
//	steric = 4
//	vdw_radius = 0.210
//
//	[[bond]]
//	a = "Si"
//	b = "O"
//	order = 1
//	length = 1.6
type tableFile struct {
	Elements map[string]elementEntry `toml:"elements"`
	Bonds    []bondEntry            `toml:"bond"`
}

type elementEntry struct {
	Name      *string  `toml:"name"`
	Color     *int64   `toml:"color"`
	Valence   *int     `toml:"valence"`
	Steric    *int     `toml:"steric"`
	VdwRadius *float64 `toml:"vdw_radius"`
}

type bondEntry struct {
	A      string  `toml:"a"`
	B      string  `toml:"b"`
	Order  int     `toml:"order"`
	Length float64 `toml:"length"`
}

//ReadTableFile reads a TOML table file from path. See ReadTable.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError("ReadTableFile", err, "can't open table file %s", path)
	}
	defer f.Close()
	t, err := ReadTable(f)
	return t, errDecorate(err, "ReadTableFile")
}

//ReadTable reads element and bond-length overrides in TOML from r, and returns
//the built-in table with those overrides applied. Elements not already in the table
//are added after the built-in ones, in alphabetical order.
func ReadTable(r io.Reader) (*Table, error) {
	var f tableFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, newError("ReadTable", err, "malformed table file")
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, 0, len(und))
		for _, k := range und {
			keys = append(keys, k.String())
		}
		return nil, newError("ReadTable", nil, "unknown keys in table file: %s", strings.Join(keys, ", "))
	}
	t := DefaultTable()
	news := make([]string, 0)
	for symbol, e := range f.Elements {
		if symbol == "" {
			return nil, newError("ReadTable", nil, "empty element symbol")
		}
		spec, ok := t.elements[symbol]
		if !ok {
			spec = t.Spec(symbol)
			news = append(news, symbol)
		}
		if err := e.apply(&spec); err != nil {
			return nil, errDecorate(err, "ReadTable")
		}
		t.elements[symbol] = spec
	}
	sort.Strings(news)
	t.symbols = append(t.symbols, news...)
	for i, b := range f.Bonds {
		if b.A == "" || b.B == "" {
			return nil, newError("ReadTable", nil, "bond entry %d: missing element", i)
		}
		if b.Order < 1 || b.Order > 3 {
			return nil, newError("ReadTable", nil, "bond entry %d (%s-%s): order %d outside 1-3", i, b.A, b.B, b.Order)
		}
		if b.Length <= 0 {
			return nil, newError("ReadTable", nil, "bond entry %d (%s-%s): non-positive length %g", i, b.A, b.B, b.Length)
		}
		t.lengths[newBondKey(b.A, b.B, b.Order)] = b.Length
	}
	return t, nil
}

func (e elementEntry) apply(spec *ElementSpec) error {
	if e.Name != nil {
		spec.Name = *e.Name
	}
	if e.Color != nil {
		if *e.Color < 0 || *e.Color > 0xffffff {
			return newError("apply", nil, "element %s: color %#x out of range", spec.Symbol, *e.Color)
		}
		spec.Color = uint32(*e.Color)
	}
	if e.Valence != nil {
		if *e.Valence < 0 {
			return newError("apply", nil, "element %s: negative valence", spec.Symbol)
		}
		spec.Valence = *e.Valence
	}
	if e.Steric != nil {
		if *e.Steric < 0 {
			return newError("apply", nil, "element %s: negative steric number", spec.Symbol)
		}
		spec.Steric = *e.Steric
	}
	if e.VdwRadius != nil {
		if *e.VdwRadius <= 0 {
			return newError("apply", nil, "element %s: non-positive vdW radius", spec.Symbol)
		}
		spec.VdwRadius = *e.VdwRadius
	}
	return nil
}
