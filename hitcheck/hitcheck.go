/*
 * hitcheck.go, part of vsepr.
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

//Package hitcheck decides which existing atoms are close enough to a point
//to be bonded to an atom placed there, and ranks them.
package hitcheck

import (
	"sort"

	chem "github.com/rmera/vsepr"
	v3 "github.com/rmera/vsepr/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//DefaultBias is the factor by which the ideal bond length is stretched to
//catch candidates that still have room for more bonds.
const DefaultBias = 1.5

//Full atoms have their distance divided by this when ranking.
const fullRankBias = 0.5

//Overlaps returns true if an atom of the given element placed at pos would be
//close enough to existing to bond with it, that is, if their distance is under
//the ideal single bond length times bias. Atoms with no empty bonds left don't
//get the bias (it is taken as 1).
func Overlaps(existing *chem.Atom, pos r3.Vec, element string, bias float64) bool {
	if existing.EmptyBonds() == 0 {
		bias = 1
	}
	ideal := existing.IdealBondLength(element, 1)
	return v3.Distance(existing.Pos, pos) < ideal*bias
}

//biasedDistance pushes atoms without empty bonds towards the back of a ranking.
func biasedDistance(a *chem.Atom, point r3.Vec) float64 {
	bias := 1.0
	if a.EmptyBonds() == 0 {
		bias = fullRankBias
	}
	return v3.Distance(a.Pos, point) / bias
}

//rank sorts atoms by biased distance to point, and keeps at most max of them.
func rank(atoms []*chem.Atom, point r3.Vec, max int) []*chem.Atom {
	sort.SliceStable(atoms, func(i, j int) bool {
		return biasedDistance(atoms[i], point) < biasedDistance(atoms[j], point)
	})
	if max < 0 {
		max = 0
	}
	if len(atoms) > max {
		atoms = atoms[:max]
	}
	return atoms
}

//CandidatesFor returns the atoms, among atoms, that an atom of element placed at pos
//should bond to, best first. At most as many atoms as the valence of element are returned.
func CandidatesFor(t *chem.Table, element string, pos r3.Vec, atoms []*chem.Atom) []*chem.Atom {
	ret := make([]*chem.Atom, 0, len(atoms))
	for _, c := range atoms {
		if Overlaps(c, pos, element, DefaultBias) {
			ret = append(ret, c)
		}
	}
	return rank(ret, pos, t.Spec(element).Valence)
}

//CandidatesAround is like CandidatesFor, but for the already placed atom hit, which
//is never its own candidate.
func CandidatesAround(hit *chem.Atom, atoms []*chem.Atom) []*chem.Atom {
	ret := make([]*chem.Atom, 0, len(atoms))
	for _, c := range atoms {
		if c != hit && Overlaps(c, hit.Pos, hit.Symbol, DefaultBias) {
			ret = append(ret, c)
		}
	}
	return rank(ret, hit.Pos, hit.Valence())
}

//SortedByDistance returns the indexes of positions, sorted by the distance
//of the corresponding position to point, closest first.
func SortedByDistance(point r3.Vec, positions []r3.Vec) []int {
	idx := make([]int, len(positions))
	d := make([]float64, len(positions))
	for i, p := range positions {
		idx[i] = i
		d[i] = r3.Norm2(r3.Sub(p, point))
	}
	sort.SliceStable(idx, func(i, j int) bool { return d[idx[i]] < d[idx[j]] })
	return idx
}
