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
	"github.com/consensys/go-skim/pkg/sexpr"
)

// quasiquote walks a form under quasiquote, tracking the nesting depth.  At
// depth one an unquote evaluates its argument and an unquote-splicing splices
// an evaluated list into the surrounding output; under a nested quasiquote
// both are kept literal, with the depth counter deciding when evaluation
// resumes.
func quasiquote(form sexpr.SExpr, env sexpr.Environment, depth int) (sexpr.SExpr, error) {
	switch form := form.(type) {
	case sexpr.List:
		switch {
		case sexpr.HeadedBy(form, sexpr.UnquoteSymbol):
			return quasiUnquote(form, env, depth)
		case sexpr.HeadedBy(form, sexpr.UnquoteSplicingSymbol):
			if depth == 1 {
				return nil, errType("quasiquote", form, "spliceable here (no enclosing list)")
			}

			return quasiNested(form, env, depth-1)
		case sexpr.HeadedBy(form, sexpr.QuasiquoteSymbol):
			return quasiNested(form, env, depth+1)
		default:
			return quasiWalk(form, env, depth)
		}
	case sexpr.Pair:
		car, err := quasiquote(form.Car(), env, depth)
		if err != nil {
			return nil, err
		}
		//
		cdr, err := quasiquote(form.Cdr(), env, depth)
		if err != nil {
			return nil, err
		}
		//
		return sexpr.NewPair(car, cdr), nil
	default:
		// Atoms quote to themselves.
		return form, nil
	}
}

// quasiUnquote reduces an (unquote x) form: evaluation at depth one,
// literal reconstruction one level shallower otherwise.
func quasiUnquote(form sexpr.List, env sexpr.Environment, depth int) (sexpr.SExpr, error) {
	if form.Len() != 2 {
		return nil, errArity("unquote", "1 argument", form.Len()-1)
	}
	//
	if depth == 1 {
		return Eval(form.Get(1), env)
	}
	//
	return quasiNested(form, env, depth-1)
}

// quasiNested reconstructs a quote-family form verbatim, walking its argument
// at the given depth.
func quasiNested(form sexpr.List, env sexpr.Environment, depth int) (sexpr.SExpr, error) {
	if form.Len() != 2 {
		return nil, errArity(form.Get(0).String(), "1 argument", form.Len()-1)
	}
	//
	inner, err := quasiquote(form.Get(1), env, depth)
	if err != nil {
		return nil, err
	}
	//
	return sexpr.NewList([]sexpr.SExpr{form.Get(0), inner}), nil
}

// quasiWalk rebuilds a list element by element, splicing in the results of
// depth-one unquote-splicing forms.
func quasiWalk(form sexpr.List, env sexpr.Environment, depth int) (sexpr.SExpr, error) {
	output := make([]sexpr.SExpr, 0, form.Len())
	//
	for _, element := range form.Elements() {
		if sexpr.HeadedBy(element, sexpr.UnquoteSplicingSymbol) && depth == 1 {
			splice, ok := sexpr.AsList(element)
			//
			if !ok || splice.Len() != 2 {
				return nil, errArity("unquote-splicing", "1 argument", splice.Len()-1)
			}
			//
			value, err := Eval(splice.Get(1), env)
			if err != nil {
				return nil, err
			}
			//
			spliced, ok := sexpr.AsList(value)
			if !ok {
				return nil, errType("unquote-splicing", value, "a list")
			}
			//
			output = append(output, spliced.Elements()...)
			//
			continue
		}
		//
		rebuilt, err := quasiquote(element, env, depth)
		if err != nil {
			return nil, err
		}
		//
		output = append(output, rebuilt)
	}
	//
	return sexpr.NewList(output), nil
}
