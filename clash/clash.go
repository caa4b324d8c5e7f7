// Package clash finds atoms that would sit too close to a new one.
package clash

import (
	"sort"

	chem "github.com/rmera/vsepr"
	v3 "github.com/rmera/vsepr/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Overlap returns how much the display spheres of an atom of element at pos and
// the atom a overlap: the sum of their scales minus their distance. Positive values
// mean the spheres intersect.
func Overlap(t *chem.Table, element string, pos r3.Vec, a *chem.Atom) float64 {
	return t.Spec(element).Scale() + a.Scale() - v3.Distance(pos, a.Pos)
}

// Clashes returns the atoms of mol whose display spheres would intersect the one of an atom
// of element placed at pos, leaving out those in exclude (usually, the atoms it will bond to).
// The atoms are sorted by decreasing overlap.
func Clashes(mol *chem.MolecularStructure, element string, pos r3.Vec, exclude []*chem.Atom) []*chem.Atom {
	skip := make(map[*chem.Atom]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	t := mol.Table()
	var ret []*chem.Atom
	over := make(map[*chem.Atom]float64)
	for _, a := range mol.Atoms() {
		if skip[a] {
			continue
		}
		if o := Overlap(t, element, pos, a); o > 0 {
			ret = append(ret, a)
			over[a] = o
		}
	}
	sort.SliceStable(ret, func(i, j int) bool { return over[ret[i]] > over[ret[j]] })
	return ret
}

// HighestOverlap returns the atom of mol, not in exclude, with the largest overlap with an atom
// of element at pos, and the overlap. If mol has no atoms to test, it returns nil.
func HighestOverlap(mol *chem.MolecularStructure, element string, pos r3.Vec, exclude []*chem.Atom) (over float64, at *chem.Atom) {
	skip := make(map[*chem.Atom]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	t := mol.Table()
	for _, a := range mol.Atoms() {
		if skip[a] {
			continue
		}
		if o := Overlap(t, element, pos, a); at == nil || o > over {
			over = o
			at = a
		}
	}
	return
}
