/*
 * geometric.go, part of vsepr.
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

package v3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Squared norm under which a cross product is considered to have collapsed.
const degenerate float64 = 1e-6

//Reference directions.
var (
	Up      = r3.Vec{X: 0, Y: 1, Z: 0}
	Forward = r3.Vec{X: 0, Y: 0, Z: 1}
)

//Deg2Rad converts f from degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts f from radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//Unit returns v scaled to unit length. The zero vector is returned unchanged,
//never as NaNs.
func Unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n <= appzero {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}

//Distance returns the euclidean distance between a and b
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

//NearZero returns true if v is too short to be used as a direction or rotation axis.
func NearZero(v r3.Vec) bool {
	return r3.Norm2(v) < degenerate
}

//AxisAngle rotates vec by angle degrees around axis (right hand rule) and returns
//the normalized result. axis needs not be normalized, but must not be zero.
func AxisAngle(axis r3.Vec, angle float64, vec r3.Vec) r3.Vec {
	rot := r3.NewRotation(Deg2Rad(angle), axis)
	return Unit(rot.Rotate(vec))
}

//Angle takes 2 vectors and calculate the angle in radians between them
//It does not check for correctness or return errors!
func Angle(v1, v2 r3.Vec) float64 {
	normproduct := r3.Norm(v1) * r3.Norm(v2)
	argument := r3.Dot(v1, v2) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//Perpendicular returns a unit vector perpendicular to v. The zero vector gets Up.
func Perpendicular(v r3.Vec) r3.Vec {
	if NearZero(v) {
		return Up
	}
	//crossing with the axis along which v is smallest is the best conditioned choice.
	ref := r3.Vec{X: 1}
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	if ay < ax && ay <= az {
		ref = r3.Vec{Y: 1}
	} else if az < ax && az < ay {
		ref = r3.Vec{Z: 1}
	}
	return Unit(r3.Cross(v, ref))
}

//CrossAxis returns the normalized a×b. If that cross product collapses, a×alt is
//tried for each of the alternates, in order. If all of them collapse, a vector
//perpendicular to a is returned, so the result is always a usable rotation axis.
func CrossAxis(a, b r3.Vec, alternates ...r3.Vec) r3.Vec {
	c := r3.Cross(a, b)
	if !NearZero(c) {
		return Unit(c)
	}
	for _, alt := range alternates {
		c = r3.Cross(a, alt)
		if !NearZero(c) {
			return Unit(c)
		}
	}
	return Perpendicular(a)
}
