/*
 * place.go, part of vsepr.
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

//Package place puts new atoms into a structure: it finds the atoms the new one
//should bond to, snaps the raw position towards their VSEPR guidelines and
//commits the atom and its bonds.
package place

import (
	"io"

	"github.com/charmbracelet/log"
	chem "github.com/rmera/vsepr"
	"github.com/rmera/vsepr/clash"
	"github.com/rmera/vsepr/guide"
	"github.com/rmera/vsepr/hitcheck"
	v3 "github.com/rmera/vsepr/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Snap blends cursor towards the nearest position of each guideline, in order.
//Each guideline pulls the position left by the previous ones, with a strength
//1/(1+4d)^2 that decays with the distance d to its nearest position.
//Guidelines without positions are skipped.
func Snap(guides []guide.Guideline, cursor r3.Vec) r3.Vec {
	working := cursor
	for _, g := range guides {
		if len(g.Positions) == 0 {
			continue
		}
		closest := g.Positions[hitcheck.SortedByDistance(working, g.Positions)[0]]
		diff := r3.Sub(closest, working)
		d := r3.Norm(diff)
		strength := 1 / ((1 + 4*d) * (1 + 4*d))
		working = r3.Add(working, r3.Scale(strength, diff))
	}
	return working
}

//Preview is what placing an atom would do, computed without touching the structure.
type Preview struct {
	Element    string
	Cursor     r3.Vec //the raw position
	Position   r3.Vec //the snapped position
	Candidates []*chem.Atom
	Guidelines []guide.Guideline
	Partners   []*chem.Atom //the candidates that still have room for a bond
	Clashes    []*chem.Atom //atoms, other than the candidates, too close to the new one
	Color      uint32
	Scale      float64
}

//Builder owns a structure and performs the placing and deleting of atoms
//on it. It is not safe for concurrent use.
type Builder struct {
	mol     *chem.MolecularStructure
	element string
	logger  *log.Logger
}

//Option configures a Builder.
type Option func(*Builder)

//WithLogger makes the builder log its changes to l.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

//WithElement sets the element initially selected.
func WithElement(element string) Option {
	return func(b *Builder) {
		b.element = element
	}
}

//NewBuilder returns a builder that adds atoms to mol. If mol is nil, a new, empty
//structure with the default table is used. Unless set with WithElement, the first
//element of the table is selected.
func NewBuilder(mol *chem.MolecularStructure, opts ...Option) *Builder {
	if mol == nil {
		mol = chem.NewStructure(nil)
	}
	b := &Builder{mol: mol, logger: log.New(io.Discard)}
	if s := mol.Table().Symbols(); len(s) > 0 {
		b.element = s[0]
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

//Structure returns the structure the builder works on.
func (B *Builder) Structure() *chem.MolecularStructure {
	return B.mol
}

//Element returns the currently selected element.
func (B *Builder) Element() string {
	return B.element
}

//SetElement selects the element for the next atoms placed.
func (B *Builder) SetElement(element string) {
	B.element = element
}

//CycleElement moves the selection step places along the element order of the table,
//wrapping around, and returns the new selection. An element not in the order
//is taken as the first one.
func (B *Builder) CycleElement(step int) string {
	symbols := B.mol.Table().Symbols()
	n := len(symbols)
	if n == 0 {
		return B.element
	}
	cur := 0
	for i, s := range symbols {
		if s == B.element {
			cur = i
			break
		}
	}
	B.element = symbols[((cur+step)%n+n)%n]
	return B.element
}

//Preview returns what placing an atom of the selected element at cursor would do.
//The structure is not modified.
func (B *Builder) Preview(cursor r3.Vec) Preview {
	p := Preview{Element: B.element, Cursor: cursor, Position: cursor}
	t := B.mol.Table()
	spec := t.Spec(B.element)
	p.Color = spec.Color
	p.Scale = spec.Scale()
	p.Candidates = hitcheck.CandidatesFor(t, B.element, cursor, B.mol.Atoms())
	if len(p.Candidates) > 0 {
		p.Guidelines = guide.Calculate(B.mol, p.Candidates, B.element, &cursor)
		p.Position = Snap(p.Guidelines, cursor)
	}
	for _, c := range p.Candidates {
		if c.EmptyBonds() > 0 {
			p.Partners = append(p.Partners, c)
		}
	}
	p.Clashes = clash.Clashes(B.mol, B.element, p.Position, p.Candidates)
	return p
}

//Place adds an atom of the selected element at cursor, snapped to the guidelines
//of the atoms around, and bonds it to them. It returns the new atom.
func (B *Builder) Place(cursor r3.Vec) *chem.Atom {
	return B.Commit(B.Preview(cursor))
}

//Commit adds the atom described by p at its snapped position, and bonds it
//with single bonds to its candidates, best first, as long as both ends have room.
//The candidates must still belong to the structure.
func (B *Builder) Commit(p Preview) *chem.Atom {
	at := B.mol.AddAtom(p.Element, p.Position)
	B.logger.Debug("placed atom", "atom", at, "cursor", p.Cursor, "position", p.Position, "candidates", len(p.Candidates))
	if len(p.Clashes) > 0 {
		over, other := clash.HighestOverlap(B.mol, p.Element, p.Position, append([]*chem.Atom{at}, p.Candidates...))
		B.logger.Warn("atom placed too close to others", "atom", at, "clashes", len(p.Clashes), "worst", other, "overlap", over)
	}
	for _, target := range p.Candidates {
		if at.EmptyBonds() <= 0 {
			break
		}
		if target.EmptyBonds() <= 0 {
			continue
		}
		b := B.mol.AddBond(at, target, 1)
		B.logger.Debug("bonded", "bond", b, "order", b.Order)
	}
	return at
}

//AtomAt returns the atom closest to point among those whose display sphere
//contains it, or nil if there is none.
func (B *Builder) AtomAt(point r3.Vec) *chem.Atom {
	atoms := B.mol.Atoms()
	pos := make([]r3.Vec, len(atoms))
	for i, a := range atoms {
		pos[i] = a.Pos
	}
	for _, i := range hitcheck.SortedByDistance(point, pos) {
		if v3.Distance(pos[i], point) <= atoms[i].Scale() {
			return atoms[i]
		}
	}
	return nil
}

//Delete removes the atom under point, as found by AtomAt, with all its bonds.
//It returns true if an atom was removed.
func (B *Builder) Delete(point r3.Vec) bool {
	at := B.AtomAt(point)
	if at == nil {
		B.logger.Debug("nothing to delete", "point", point)
		return false
	}
	B.logger.Debug("deleting atom", "atom", at, "bonds", len(at.Bonds()))
	B.mol.RemoveAtom(at)
	return true
}

//The element used to fill empty bonds.
const hydrogen = "H"

//AddHydrogens fills the empty bonds of every atom in the structure with hydrogens,
//placed on the guideline positions of the atom, and returns the new atoms.
//An atom keeps its empty bonds if its guidelines run out first.
func (B *Builder) AddHydrogens() []*chem.Atom {
	var added []*chem.Atom
	for _, a := range B.mol.Atoms() {
		if a.EmptyBonds() == 0 {
			continue
		}
		g := guide.Calculate(B.mol, []*chem.Atom{a}, hydrogen, nil)[0]
		for _, pos := range g.Positions {
			if a.EmptyBonds() <= 0 {
				break
			}
			h := B.mol.AddAtom(hydrogen, pos)
			B.mol.AddBond(h, a, 1)
			added = append(added, h)
		}
		if e := a.EmptyBonds(); e > 0 {
			B.logger.Debug("no room left for hydrogens", "atom", a, "empty", e)
		}
	}
	B.logger.Debug("added hydrogens", "count", len(added))
	return added
}
