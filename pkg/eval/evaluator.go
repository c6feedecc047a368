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
package eval

import (
	"fmt"

	"github.com/consensys/go-skim/pkg/sexpr"
)

// Evaluator owns the root environment of one interpreter instance.
type Evaluator struct {
	root sexpr.Environment
}

// NewEvaluator constructs an evaluator over a given root environment, or over
// a freshly populated global environment when nil is passed.
func NewEvaluator(root sexpr.Environment) *Evaluator {
	if root == nil {
		root = NewGlobalEnv()
	}
	//
	return &Evaluator{root}
}

// Root returns the root environment of this evaluator.
func (e *Evaluator) Root() sexpr.Environment {
	return e.root
}

// Eval evaluates an expression against the root environment.
func (e *Evaluator) Eval(expression sexpr.SExpr) (sexpr.SExpr, error) {
	return Eval(expression, e.root)
}

// Eval evaluates an expression in a given environment.  The loop is a
// trampoline over a (current expression, current environment) pair: forms in
// tail position rewrite the pair rather than recursing into the host stack,
// which is what lets unbounded Scheme-level tail recursion run in constant
// host-stack space.
func Eval(expression sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	var (
		current = expression
		cenv    = env
	)
	//
	for {
		switch expr := current.(type) {
		case sexpr.Symbol:
			value, ok := cenv.Get(string(expr))
			if !ok {
				return nil, errUnbound(string(expr))
			}

			return value, nil
		case sexpr.List:
			if expr.Len() == 0 {
				return nil, errSyntax("wrong syntax ()")
			}
			// Reduce the head to a procedure
			head, err := Eval(expr.Get(0), cenv)
			if err != nil {
				return nil, err
			}
			// Arguments are handed over unevaluated; each procedure kind
			// decides how to reduce them.
			args := expr.Tail(1)
			//
			switch proc := head.(type) {
			case *sexpr.SpecialForm:
				result, err := proc.Fn(args, cenv)
				if err != nil || proc.Terminal {
					return result, err
				}
				// Tail position: re-enter the loop on the returned form.
				current = result
			case *sexpr.Primitive:
				evaluated, err := evalArgs(args, cenv)
				if err != nil {
					return nil, err
				}
				//
				result, err := proc.Fn(evaluated, cenv)
				if err != nil || !proc.Tail {
					return result, err
				}
				// apply/eval return an expression in tail position.
				current = result
			case *sexpr.Compound:
				if len(proc.Params) != len(args) {
					return nil, errArity("procedure application",
						fmt.Sprintf("%d arguments", len(proc.Params)), len(args))
				}
				//
				evaluated, err := evalArgs(args, cenv)
				if err != nil {
					return nil, err
				}
				// Parameters bind in a fresh child of the capture
				// environment; the body evaluates in a child of that, so
				// body-level defines never touch the parameter frame.
				frame := NewChildEnv(proc.Env)
				//
				for i, name := range proc.Params {
					frame.Define(name, evaluated[i])
				}
				//
				body := make([]sexpr.SExpr, 0, len(proc.Body)+1)
				body = append(body, beginForm)
				body = append(body, proc.Body...)
				//
				current = sexpr.NewList(body)
				cenv = NewChildEnv(frame)
			default:
				return nil, errNotCallable(head)
			}
		default:
			// Atoms (including pairs and vectors) are self-evaluating.
			return current, nil
		}
	}
}

// evalArgs evaluates an argument vector left-to-right.  A quoted argument (a
// two-element list headed by quote or quasiquote) is passed through with the
// wrapper stripped, preserving the sharing of the underlying datum; this is
// the rule that makes (apply f '(1 2)) receive raw data.
func evalArgs(args []sexpr.SExpr, env sexpr.Environment) ([]sexpr.SExpr, error) {
	evaluated := make([]sexpr.SExpr, len(args))
	//
	for i, arg := range args {
		if datum, ok := sexpr.Unquoted(arg); ok {
			evaluated[i] = datum
			continue
		}
		//
		value, err := Eval(arg, env)
		if err != nil {
			return nil, err
		}
		//
		evaluated[i] = value
	}
	//
	return evaluated, nil
}

// quoteExpr wraps an already-evaluated value such that re-entering it into
// the trampoline yields the value itself, rather than re-applying it.
func quoteExpr(value sexpr.SExpr) sexpr.SExpr {
	return sexpr.NewList([]sexpr.SExpr{quoteForm, value})
}
