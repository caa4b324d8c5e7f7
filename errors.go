/*
 * errors.go, part of vsepr.
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

/**Note: The structure functions panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong there (say, bonding an atom that belongs to another structure)
 * the program is way-most likely wrong and should crash. Errors are returned only for things that
 * come from outside the program, like table files.**/

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// CError is the error type returned by this package. It carries a list of the
// functions it went through on its way up, and, optionally, the error that caused it.
type CError struct {
	msg  string
	deco []string
	err  error
}

func newError(caller string, cause error, format string, a ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, a...), deco: []string{caller}, err: cause}
}

// Error returns the error message, including the one of the wrapped error, if any.
func (err *CError) Error() string {
	if err.err != nil {
		return err.msg + ": " + err.err.Error()
	}
	return err.msg
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Unwrap returns the error that caused err, if any.
func (err *CError) Unwrap() error { return err.err }

// errDecorate is a helper function that asserts that the error
// implements chem.Error and decorates the error with the caller's name before returning it.
// Other errors are returned as they are.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotInStructure = PanicMsg("vsepr: atom is not part of this structure")
	ErrNotInBond      = PanicMsg("vsepr: the origin atom given is not present in the bond")
	ErrNilAtom        = PanicMsg("vsepr: nil atom")
)
