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
package interp

import (
	"os"
	"path/filepath"
	"testing"
)

// ============================================================================
// End-to-end scenarios
// ============================================================================

func TestInterp_Factorial(t *testing.T) {
	CheckEvalsTo(t,
		[][2]string{
			{"(begin (define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 5))", "120"},
			{"(fact 50)", "30414093201713378043612608166064768844377641568960512000000000000"},
		})
}

func TestInterp_DefineSet(t *testing.T) {
	CheckEvalsTo(t,
		[][2]string{
			{"(begin (define x 7) (define f1 (lambda () (define x 10) x)) (define f2 (lambda () (set! x 11) x)))", "ok"},
			{"(begin (f1) x)", "7"},
			{"(begin (f2) x)", "11"},
		})
}

func TestInterp_Sharing(t *testing.T) {
	CheckEvalsTo(t,
		[][2]string{
			{"(begin (define a (list 1 2)) (define b (list a a)) (set-car! a 99) b)", "((99 2) (99 2))"},
			{`(begin (define s "hello") (define w "world") (define l (list s w)) (string-set! s 0 #\W) l)`, `("Wello" "world")`},
		})
}

func TestInterp_Quasiquotation(t *testing.T) {
	CheckEvalsTo(t,
		[][2]string{
			{"`(,(+ 1 2) ,@(list 4 5) 6)", "(3 4 5 6)"},
		})
}

func TestInterp_Binding(t *testing.T) {
	CheckEvalsTo(t,
		[][2]string{
			{"(let ((x 2) (y 3)) (* x y))", "6"},
			{"(let ((x 2) (y 3)) (let* ((x 7) (z (+ x y))) (* z x)))", "70"},
		})
}

func TestInterp_DeepRecursion(t *testing.T) {
	CheckEvalsTo(t,
		[][2]string{
			{`(begin (define (count-to n) (if (= n 0) "Done!" (count-to (- n 1)))) (count-to 100000))`, `"Done!"`},
		})
}

func TestInterp_NumericLiteralRoundTrip(t *testing.T) {
	// Syntactically valid numeric literals evaluate to themselves.
	literals := []string{
		"42", "-7", "1/2", "2.5", "77777777777777777777", "+inf.0", "3.0+4.0i",
	}
	//
	interpreter := New(nil)
	//
	for _, literal := range literals {
		result, err := interpreter.EvalExpressionAndFormat(literal)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", literal, err)
		} else if result != literal {
			t.Errorf("%s: round-trip produced %s", literal, result)
		}
	}
}

func TestInterp_Prelude(t *testing.T) {
	CheckEvalsTo(t,
		[][2]string{
			{"(cadr '(1 2 3))", "2"},
			{"(cddr '(1 2 3))", "(3)"},
			{"(abs -5)", "5"},
			{"(positive? 3)", "#t"},
			{"(last '(1 2 3))", "3"},
		})
}

// ============================================================================
// Errors
// ============================================================================

func TestInterp_Errors(t *testing.T) {
	interpreter := New(nil)
	//
	inputs := []string{
		"(define f (lambda (3) (* 2 3)))",
		"(car '())",
		"(+ 'a 1)",
		"(+ 1 2",
		"unbound-name",
		"()",
	}
	//
	for _, input := range inputs {
		if err := interpreter.EvalExpressionNoPrint(input); err == nil {
			t.Errorf("%s: expected an error", input)
		}
	}
}

func TestInterp_ErrorsPrefixedWithException(t *testing.T) {
	interpreter := New(nil)
	//
	_, err := interpreter.EvalExpression("(car '())")
	if err == nil {
		t.Fatalf("expected an error")
	}
	//
	if msg := err.Error(); len(msg) < 10 || msg[:10] != "Exception:" {
		t.Errorf("expected Exception: prefix, got %q", msg)
	}
}

// ============================================================================
// Files
// ============================================================================

func TestInterp_ExecuteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.scm")
	//
	source := `
; a multi-line definition
(define (sum-to n)
  (if (= n 0)
      0
      (+ n (sum-to (- n 1)))))
(define result (sum-to 10))
`
	//
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	//
	interpreter := New(nil)
	//
	if err := interpreter.ExecuteFile(path); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// Definitions persist after execution.
	result, err := interpreter.EvalExpressionAndFormat("result")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	//
	if result != "55" {
		t.Errorf("expected 55, got %s", result)
	}
}

func TestInterp_ExecuteMissingFile(t *testing.T) {
	interpreter := New(nil)
	//
	if err := interpreter.ExecuteFile("no/such/file.scm"); err == nil {
		t.Errorf("expected an error")
	}
}

// ============================================================================
// Helpers
// ============================================================================

// CheckEvalsTo runs (input, expected) pairs sequentially against one
// interpreter instance, so earlier definitions remain visible.
func CheckEvalsTo(t *testing.T, tests [][2]string) {
	t.Helper()
	//
	interpreter := New(nil)
	//
	for _, test := range tests {
		result, err := interpreter.EvalExpressionAndFormat(test[0])
		//
		if err != nil {
			t.Fatalf("%s: unexpected error %v", test[0], err)
		} else if result != test[1] {
			t.Errorf("%s: expected %s, got %s", test[0], test[1], result)
		}
	}
}
