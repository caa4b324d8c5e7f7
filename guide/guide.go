/*
 * guide.go, part of vsepr.
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

//Package guide calculates VSEPR guidelines: the ideal directions and positions
//for the next substituents of an atom, given the bonds it already has.
package guide

import (
	chem "github.com/rmera/vsepr"
	v3 "github.com/rmera/vsepr/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Angles, in degrees.
const (
	trigonal    = 120.0
	tetrahedral = 109.5
	//half the tetrahedral angle, to put two legs around the free space
	//left by the other two.
	halfTetrahedral = tetrahedral / 2
)

//Guideline holds the ideal directions for a new bond from Core, and the
//positions where a new atom would sit along them.
type Guideline struct {
	Core       *chem.Atom
	Directions []r3.Vec
	Positions  []r3.Vec
}

//Valid returns true if the core of the guideline can still take another bond.
func (G Guideline) Valid() bool {
	return EmptyBonds(G.Core) > 0
}

//EmptyBonds returns max(0, valence-total bond order) for the atom.
func EmptyBonds(A *chem.Atom) int {
	return A.EmptyBonds()
}

//HardPoints returns the unit directions from core to each of its bonded atoms.
//Bonded atoms sitting on the core give no direction, and are left out.
func HardPoints(core *chem.Atom) []r3.Vec {
	bonded := core.BondedAtoms()
	ret := make([]r3.Vec, 0, len(bonded))
	for _, b := range bonded {
		d := r3.Sub(b.Pos, core.Pos)
		if v3.NearZero(d) {
			continue
		}
		ret = append(ret, v3.Unit(d))
	}
	return ret
}

//nonZero returns the hard points that are not zero vectors.
func nonZero(hardPoints []r3.Vec) []r3.Vec {
	ret := make([]r3.Vec, 0, len(hardPoints))
	for _, h := range hardPoints {
		if !v3.NearZero(h) {
			ret = append(ret, h)
		}
	}
	return ret
}

//EffectiveSteric returns the steric number of core minus the electron domains
//taken by the extra orders of its multiple bonds.
func EffectiveSteric(core *chem.Atom) int {
	extra := core.TotalBondOrder() - len(core.Bonds())
	return core.Steric() - extra
}

//Directions returns the ideal unit directions for new bonds from an atom at core
//which already has bonds along hardPoints (unit vectors), for the given (effective)
//steric number. pose, if not nil, is a point that decides the free rotation when there are
//fewer than 2 hard points; if nil, the point above the core is used.
//Zero hard points are ignored.
func Directions(core r3.Vec, hardPoints []r3.Vec, pose *r3.Vec, steric int) []r3.Vec {
	p := r3.Add(core, v3.Up)
	if pose != nil {
		p = *pose
	}
	hardPoints = nonZero(hardPoints)
	switch len(hardPoints) {
	case 0:
		return noHardPoints(core, p, steric)
	case 1:
		return oneHardPoint(core, hardPoints[0], p, steric)
	case 2:
		return twoHardPoints(hardPoints[0], hardPoints[1], steric)
	case 3:
		return threeHardPoints(hardPoints[0], hardPoints[1], hardPoints[2], steric)
	default:
		return nil
	}
}

//ideal returns the unit direction from core to pose, or up if they coincide.
func ideal(core, pose r3.Vec) r3.Vec {
	d := r3.Sub(pose, core)
	if v3.NearZero(d) {
		return v3.Up
	}
	return v3.Unit(d)
}

func noHardPoints(core, pose r3.Vec, steric int) []r3.Vec {
	main := ideal(core, pose)
	dirs := []r3.Vec{main}
	axis := v3.CrossAxis(main, v3.Forward, v3.Up)
	switch steric {
	case 2:
		dirs = append(dirs, r3.Scale(-1, main))
	case 3:
		dirs = append(dirs, v3.AxisAngle(axis, trigonal, main), v3.AxisAngle(axis, -trigonal, main))
	case 4:
		sp3 := v3.AxisAngle(axis, tetrahedral, main)
		dirs = append(dirs, sp3, v3.AxisAngle(main, -trigonal, sp3), v3.AxisAngle(main, trigonal, sp3))
	}
	return dirs
}

//The hard point plays the role of the main direction, and the pose only
//decides on which side of it the new directions go.
func oneHardPoint(core, hp, pose r3.Vec, steric int) []r3.Vec {
	id := ideal(core, pose)
	axis := r3.Cross(id, hp)
	if v3.NearZero(axis) {
		axis = v3.CrossAxis(hp, v3.Up, v3.Forward)
	} else {
		axis = v3.Unit(axis)
	}
	switch steric {
	case 2:
		return []r3.Vec{r3.Scale(-1, hp)}
	case 3:
		return []r3.Vec{v3.AxisAngle(axis, trigonal, hp), v3.AxisAngle(axis, -trigonal, hp)}
	case 4:
		sp3 := v3.AxisAngle(axis, -tetrahedral, hp)
		return []r3.Vec{sp3, v3.AxisAngle(hp, -trigonal, sp3), v3.AxisAngle(hp, trigonal, sp3)}
	}
	return nil
}

//free returns the unit vector opposite to sum. If sum collapses (the hard points
//cancel each other) a vector perpendicular to ref is returned instead.
func free(sum, ref r3.Vec) r3.Vec {
	if v3.NearZero(sum) {
		return v3.Perpendicular(ref)
	}
	return v3.Unit(r3.Scale(-1, sum))
}

func twoHardPoints(h1, h2 r3.Vec, steric int) []r3.Vec {
	opp := free(r3.Add(h1, h2), h1)
	switch steric {
	case 3:
		return []r3.Vec{opp}
	case 4:
		//outer lies in the plane of the hard points, so rotating about it
		//takes opp out of that plane, to both sides.
		inner := v3.CrossAxis(opp, h1, h2)
		outer := v3.CrossAxis(opp, inner)
		return []r3.Vec{v3.AxisAngle(outer, halfTetrahedral, opp), v3.AxisAngle(outer, -halfTetrahedral, opp)}
	}
	return nil
}

func threeHardPoints(h1, h2, h3 r3.Vec, steric int) []r3.Vec {
	if steric != 4 {
		return nil
	}
	sum := r3.Add(r3.Add(h1, h2), h3)
	if v3.NearZero(sum) {
		//a planar arrangement, the free direction is its normal.
		return []r3.Vec{v3.CrossAxis(h1, h2, h3)}
	}
	return []r3.Vec{v3.Unit(r3.Scale(-1, sum))}
}

//Calculate returns one guideline for each of the cores, in the same order, for a new
//atom of element newElement. The cores must belong to mol, or Calculate panics.
//pose is passed to Directions.
func Calculate(mol *chem.MolecularStructure, cores []*chem.Atom, newElement string, pose *r3.Vec) []Guideline {
	ret := make([]Guideline, 0, len(cores))
	for _, core := range cores {
		mol.MustContain(core)
		dirs := Directions(core.Pos, HardPoints(core), pose, EffectiveSteric(core))
		length := core.IdealBondLength(newElement, 1)
		pos := make([]r3.Vec, 0, len(dirs))
		for _, d := range dirs {
			pos = append(pos, r3.Add(core.Pos, r3.Scale(length, d)))
		}
		ret = append(ret, Guideline{Core: core, Directions: dirs, Positions: pos})
	}
	return ret
}
