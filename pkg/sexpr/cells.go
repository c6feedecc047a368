// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sexpr

import "strings"

// ===================================================================
// String
// ===================================================================

// String is a handle to a shared mutable character sequence.  Mutation via
// any handle is visible through every alias.
type String struct {
	cell *[]rune
}

var _ SExpr = String{}

// NewString constructs a fresh string cell holding the given text.
func NewString(text string) String {
	runes := []rune(text)
	return String{&runes}
}

// Len returns the number of characters in this string.
func (s String) Len() int { return len(*s.cell) }

// At returns the ith character of this string.
func (s String) At(i int) rune { return (*s.cell)[i] }

// SetAt overwrites the ith character of this string, in place.
func (s String) SetAt(i int, c rune) { (*s.cell)[i] = c }

// Text returns the current contents of this string as a Go string.
func (s String) Text() string { return string(*s.cell) }

// Replace swaps the entire contents of this string cell.
func (s String) Replace(text string) { *s.cell = []rune(text) }

// String prints the contents surrounded by double quotes.
func (s String) String() string { return `"` + s.Text() + `"` }

// ===================================================================
// Pair
// ===================================================================

type pairCell struct {
	car SExpr
	cdr SExpr
}

// Pair is a handle to a shared mutable cell holding two values.  The cdr
// need not be a list, making this the improper-pair representation.
type Pair struct {
	cell *pairCell
}

var _ SExpr = Pair{}

// NewPair constructs a fresh pair cell (car . cdr).
func NewPair(car, cdr SExpr) Pair {
	return Pair{&pairCell{car, cdr}}
}

// Car returns the first component of this pair.
func (p Pair) Car() SExpr { return p.cell.car }

// Cdr returns the second component of this pair.
func (p Pair) Cdr() SExpr { return p.cell.cdr }

// SetCar overwrites the first component of this pair, in place.
func (p Pair) SetCar(v SExpr) { p.cell.car = v }

// SetCdr overwrites the second component of this pair, in place.
func (p Pair) SetCdr(v SExpr) { p.cell.cdr = v }

func (p Pair) String() string {
	var sb strings.Builder
	//
	write(&sb, p, 0)
	//
	return sb.String()
}

// ===================================================================
// List
// ===================================================================

// List is a handle to a shared mutable cell holding an ordered sequence of
// values (a proper list).  In-place mutation (set-car!, splice) is visible
// through every alias; element handles are shared on copy.
type List struct {
	cell *[]SExpr
}

var _ SExpr = List{}

// NewList constructs a fresh list cell over the given elements.  The slice is
// adopted, not copied.
func NewList(elements []SExpr) List {
	return List{&elements}
}

// EmptyList constructs a fresh empty list cell.
func EmptyList() List {
	return NewList([]SExpr{})
}

// Len returns the number of elements in this list.
func (l List) Len() int { return len(*l.cell) }

// Get returns the ith element of this list.
func (l List) Get(i int) SExpr { return (*l.cell)[i] }

// SetAt overwrites the ith element of this list, in place.
func (l List) SetAt(i int, v SExpr) { (*l.cell)[i] = v }

// Elements returns the underlying element slice.  Callers must not retain it
// across mutations of the cell.
func (l List) Elements() []SExpr { return *l.cell }

// Tail returns a fresh slice holding elements i onwards.
func (l List) Tail(i int) []SExpr {
	return append([]SExpr(nil), (*l.cell)[i:]...)
}

// Append pushes an element onto the end of this list, in place.
func (l List) Append(v SExpr) { *l.cell = append(*l.cell, v) }

// Splice replaces elements [start,end) of this list with the given
// replacement, in place.
func (l List) Splice(start, end int, replacement []SExpr) {
	updated := make([]SExpr, 0, len(*l.cell)-(end-start)+len(replacement))
	updated = append(updated, (*l.cell)[:start]...)
	updated = append(updated, replacement...)
	updated = append(updated, (*l.cell)[end:]...)
	*l.cell = updated
}

func (l List) String() string {
	var sb strings.Builder
	//
	write(&sb, l, 0)
	//
	return sb.String()
}

// ===================================================================
// Vector
// ===================================================================

// Vector is a handle to a shared mutable cell holding an indexed sequence of
// values.  Its length is fixed after reader construction, though elements
// remain mutable.
type Vector struct {
	cell *[]SExpr
}

var _ SExpr = Vector{}

// NewVector constructs a fresh vector cell over the given elements.
func NewVector(elements []SExpr) Vector {
	return Vector{&elements}
}

// Len returns the number of elements in this vector.
func (v Vector) Len() int { return len(*v.cell) }

// Get returns the ith element of this vector.
func (v Vector) Get(i int) SExpr { return (*v.cell)[i] }

// SetAt overwrites the ith element of this vector, in place.
func (v Vector) SetAt(i int, e SExpr) { (*v.cell)[i] = e }

// Elements returns the underlying element slice.
func (v Vector) Elements() []SExpr { return *v.cell }

func (v Vector) String() string {
	var sb strings.Builder
	//
	write(&sb, v, 0)
	//
	return sb.String()
}
