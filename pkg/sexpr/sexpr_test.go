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

import (
	"strings"
	"testing"

	"github.com/consensys/go-skim/pkg/sexpr/number"
)

// ============================================================================
// Display
// ============================================================================

func TestSexpr_Display(t *testing.T) {
	tests := []struct {
		value    SExpr
		expected string
	}{
		{Boolean(true), "#t"},
		{Boolean(false), "#f"},
		{Char('a'), `#\a`},
		{Symbol("hello"), "hello"},
		{NewString("hi"), `"hi"`},
		{NewInt(42), "42"},
		{NewNumber(number.Float(2.5)), "2.5"},
		{Ok{}, "ok"},
		{Unspecified{}, "\n"},
		{EmptyList(), "()"},
		{NewList([]SExpr{NewInt(1), NewInt(2), NewInt(3)}), "(1 2 3)"},
		{NewPair(Symbol("a"), NewInt(3)), "(a . 3)"},
		{NewVector([]SExpr{NewInt(1), NewInt(2)}), "#(1 2)"},
		{NewList([]SExpr{Symbol("a"), NewList([]SExpr{Symbol("b")})}), "(a (b))"},
		{&Primitive{Name: "car"}, "#<primitive>"},
		{&SpecialForm{Name: "if"}, "#<special form>"},
		{&Compound{Params: []string{"x", "y"}}, "#<procedure (x, y)>"},
	}
	//
	for _, test := range tests {
		if test.value.String() != test.expected {
			t.Errorf("expected %q, got %q", test.expected, test.value.String())
		}
	}
}

func TestSexpr_DisplayCyclic(t *testing.T) {
	// A list made to contain itself must still print in finite time.
	list := NewList([]SExpr{NewInt(1), NewInt(2)})
	list.SetAt(0, list)
	//
	if s := list.String(); !strings.Contains(s, "...") {
		t.Errorf("expected bounded rendering of cyclic list, got %d chars", len(s))
	}
}

// ============================================================================
// Shared cells
// ============================================================================

func TestSexpr_ListSharing(t *testing.T) {
	inner := NewList([]SExpr{NewInt(1), NewInt(2)})
	outer := NewList([]SExpr{inner, inner})
	// Mutation through one handle is visible through every alias.
	inner.SetAt(0, NewInt(99))
	//
	if outer.String() != "((99 2) (99 2))" {
		t.Errorf("expected ((99 2) (99 2)), got %s", outer)
	}
}

func TestSexpr_ListSplice(t *testing.T) {
	list := NewList([]SExpr{NewInt(1), NewInt(2), NewInt(3), NewInt(4), NewInt(5)})
	alias := list
	// Insertion at start == end
	list.Splice(2, 2, []SExpr{NewInt(10), NewInt(11)})
	//
	if alias.String() != "(1 2 10 11 3 4 5)" {
		t.Errorf("expected (1 2 10 11 3 4 5), got %s", alias)
	}
	// Equal-width replacement
	list.Splice(0, 2, []SExpr{NewInt(8), NewInt(9)})
	//
	if alias.String() != "(8 9 10 11 3 4 5)" {
		t.Errorf("expected (8 9 10 11 3 4 5), got %s", alias)
	}
}

func TestSexpr_StringSharing(t *testing.T) {
	s := NewString("hallo")
	alias := s
	//
	s.SetAt(1, 'e')
	//
	if alias.Text() != "hello" {
		t.Errorf("expected hello, got %s", alias.Text())
	}
}

func TestSexpr_PairSharing(t *testing.T) {
	pair := NewPair(NewInt(1), NewInt(2))
	list := NewList([]SExpr{NewInt(1), pair})
	//
	pair.SetCar(NewInt(0))
	//
	if list.String() != "(1 (0 . 2))" {
		t.Errorf("expected (1 (0 . 2)), got %s", list)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func TestSexpr_Unquoted(t *testing.T) {
	datum := NewList([]SExpr{NewInt(1), NewInt(2)})
	quoted := Quote(datum)
	//
	stripped, ok := Unquoted(quoted)
	if !ok {
		t.Fatalf("expected quote to strip")
	}
	// The very same handle must come back.
	list, ok := stripped.(List)
	if !ok {
		t.Fatalf("expected a list back")
	}
	//
	list.SetAt(0, NewInt(9))
	//
	if datum.String() != "(9 2)" {
		t.Errorf("stripping lost sharing: %s", datum)
	}
	// Non-quoted forms pass through untouched.
	if _, ok := Unquoted(datum); ok {
		t.Errorf("expected plain list not to strip")
	}
}

func TestSexpr_Conversions(t *testing.T) {
	if v, ok := AsInt(NewInt(7)); !ok || v != 7 {
		t.Errorf("as-int failed")
	}
	//
	if _, ok := AsInt(NewNumber(number.Float(7))); ok {
		t.Errorf("as-int accepted a float")
	}
	//
	if c, ok := AsChar(Char('x')); !ok || c != 'x' {
		t.Errorf("as-char failed")
	}
	//
	if s, ok := AsSymbol(Symbol("s")); !ok || s != "s" {
		t.Errorf("as-symbol failed")
	}
	//
	if _, ok := AsList(NewVector(nil)); ok {
		t.Errorf("as-list accepted a vector")
	}
}
