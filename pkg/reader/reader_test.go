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
package reader

import (
	"testing"

	"github.com/consensys/go-skim/pkg/sexpr"
)

// ============================================================================
// Positive Tests
// ============================================================================

func TestReader_Atoms(t *testing.T) {
	CheckOk(t, "42", "42")
	CheckOk(t, "-7", "-7")
	CheckOk(t, "2.5", "2.5")
	CheckOk(t, "1/2", "1/2")
	CheckOk(t, "77777777777777777777", "77777777777777777777")
	CheckOk(t, "#t", "#t")
	CheckOk(t, "#f", "#f")
	CheckOk(t, "hello", "hello")
	CheckOk(t, `"hi there"`, `"hi there"`)
	CheckOk(t, `#\a`, `#\a`)
	CheckOk(t, "+inf.0", "+inf.0")
	CheckOk(t, "-inf.0", "-inf.0")
	CheckOk(t, "+nan.0", "+nan.0")
	CheckOk(t, "#x1f", "31")
	CheckOk(t, "#e1.5", "3/2")
	CheckOk(t, "#i3", "3.0")
}

func TestReader_Lists(t *testing.T) {
	CheckOk(t, "()", "()")
	CheckOk(t, "(1 2 3)", "(1 2 3)")
	CheckOk(t, "[1 2 3]", "(1 2 3)")
	CheckOk(t, "(a (b c) d)", "(a (b c) d)")
	CheckOk(t, "(+ 1 (* 2 3))", "(+ 1 (* 2 3))")
	CheckOk(t, "  ( 1   2\n\t3 )  ", "(1 2 3)")
}

func TestReader_Pairs(t *testing.T) {
	form := CheckOk(t, "(1 . 2)", "(1 . 2)")
	//
	if _, ok := form.(sexpr.Pair); !ok {
		t.Errorf("expected a pair, got %T", form)
	}
	// Square brackets never form pairs, even when the shape matches.
	form = CheckOk(t, "[1 . 2]", "(1 . 2)")
	//
	if _, ok := form.(sexpr.List); !ok {
		t.Errorf("expected a list, got %T", form)
	}
	// Only the exact three-element shape forms a pair.
	form = CheckOk(t, "(1 . 2 3)", "(1 . 2 3)")
	//
	if _, ok := form.(sexpr.List); !ok {
		t.Errorf("expected a list, got %T", form)
	}
}

func TestReader_Vectors(t *testing.T) {
	form := CheckOk(t, "#(1 2 3)", "#(1 2 3)")
	//
	if _, ok := form.(sexpr.Vector); !ok {
		t.Errorf("expected a vector, got %T", form)
	}
	//
	CheckOk(t, "#()", "#()")
	CheckOk(t, "#(1 (2 3))", "#(1 (2 3))")
}

func TestReader_QuoteShorthands(t *testing.T) {
	CheckOk(t, "'x", "(quote x)")
	CheckOk(t, "'(1 2)", "(quote (1 2))")
	CheckOk(t, "`x", "(quasiquote x)")
	CheckOk(t, ",x", "(unquote x)")
	CheckOk(t, ",@x", "(unquote-splicing x)")
	CheckOk(t, "`(a ,b ,@c)", "(quasiquote (a (unquote b) (unquote-splicing c)))")
	CheckOk(t, "''x", "(quote (quote x))")
}

func TestReader_Comments(t *testing.T) {
	CheckOk(t, "; a comment\n42", "42")
	CheckOk(t, "(1 ; inline\n 2)", "(1 2)")
}

func TestReader_NamedChars(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
	}{
		{`#\space`, ' '},
		{`#\newline`, '\n'},
		{`#\tab`, '\t'},
		{`#\W`, 'W'},
	}
	//
	for _, test := range tests {
		form, err := Parse(test.input)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", test.input, err)
		}
		//
		c, ok := sexpr.AsChar(form)
		if !ok || c != test.expected {
			t.Errorf("%s: expected char %q, got %s", test.input, test.expected, form)
		}
	}
}

func TestReader_MalformedCharBecomesSymbol(t *testing.T) {
	form, err := Parse(`#\wibble`)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	//
	if _, ok := form.(sexpr.Symbol); !ok {
		t.Errorf("expected symbol fallback, got %T", form)
	}
}

func TestReader_StringEscapes(t *testing.T) {
	form, err := Parse(`"a\"b\\c\nd"`)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	//
	s, ok := form.(sexpr.String)
	if !ok {
		t.Fatalf("expected a string, got %T", form)
	}
	//
	if s.Text() != "a\"b\\c\nd" {
		t.Errorf("unexpected decoding %q", s.Text())
	}
}

func TestReader_BalanceIgnoresStringsAndComments(t *testing.T) {
	CheckOk(t, `(display "(((")`, `(display "(((")`)
	CheckOk(t, "(1 2) ; )))", "(1 2)")
}

func TestReader_ParseAll(t *testing.T) {
	forms, err := ParseAll("(define x 1) (define y 2) x")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	//
	if len(forms) != 3 {
		t.Errorf("expected 3 forms, got %d", len(forms))
	}
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestReader_Unbalanced(t *testing.T) {
	CheckErr(t, "(+ 1 2")
	CheckErr(t, "(+ 1 2))")
	CheckErr(t, ")")
	CheckErr(t, "((a b)")
	CheckErr(t, "[1 2")
}

func TestReader_UnterminatedString(t *testing.T) {
	if _, err := Parse(`"abc`); err == nil {
		t.Errorf("expected an error")
	}
}

// ============================================================================
// Helpers
// ============================================================================

// CheckOk parses the input and checks the display form of the result.
func CheckOk(t *testing.T, input string, expected string) sexpr.SExpr {
	t.Helper()
	//
	form, err := Parse(input)
	if err != nil {
		t.Fatalf("%s: unexpected error %v", input, err)
	} else if form == nil {
		t.Fatalf("%s: unexpected end of input", input)
	}
	//
	if form.String() != expected {
		t.Errorf("%s: expected %s, got %s", input, expected, form)
	}
	//
	return form
}

// CheckErr checks the input is rejected.
func CheckErr(t *testing.T, input string) {
	t.Helper()
	//
	if form, err := Parse(input); err == nil {
		t.Errorf("%s: expected an error, got %s", input, form)
	}
}
