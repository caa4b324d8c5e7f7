/*
 * doc.go, part of vsepr.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
Package v3 contains the small amount of 3D geometry the builder needs.

Single points and directions are gonum's r3.Vec. The functions here add
what r3 leaves to the caller: zero-safe normalization, rotations given in
degrees (through r3's quaternion Rotation), and cross products that never
collapse to a zero-length axis.

The Matrix type is a row-major Nx3 matrix (one row per point) based on
gonum's Dense. It is used to hand out the coordinates of a whole structure
at once.
*/
package v3
