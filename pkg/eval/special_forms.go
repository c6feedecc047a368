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

// The special forms of the language.  Terminal forms produce a final value;
// all others produce an expression which the trampoline re-enters in tail
// position.
var (
	quoteForm      = &sexpr.SpecialForm{Name: "quote", Terminal: true, Fn: rQuote}
	quasiquoteForm = &sexpr.SpecialForm{Name: "quasiquote", Terminal: true, Fn: rQuasiquote}
	defineForm     = &sexpr.SpecialForm{Name: "define", Terminal: true, Fn: rDefine}
	setForm        = &sexpr.SpecialForm{Name: "set!", Terminal: true, Fn: rSet}
	letForm        = &sexpr.SpecialForm{Name: "let", Terminal: true, Fn: rLet}
	letStarForm    = &sexpr.SpecialForm{Name: "let*", Terminal: true, Fn: rLetStar}
	timeForm       = &sexpr.SpecialForm{Name: "time", Terminal: true, Fn: rTime}
	lambdaForm     = &sexpr.SpecialForm{Name: "lambda", Fn: rLambda}
	ifForm         = &sexpr.SpecialForm{Name: "if", Fn: rIf}
	condForm       = &sexpr.SpecialForm{Name: "cond", Fn: rCond}
	beginForm      = &sexpr.SpecialForm{Name: "begin"}
	andForm        = &sexpr.SpecialForm{Name: "and", Fn: rAnd}
	orForm         = &sexpr.SpecialForm{Name: "or", Fn: rOr}
	notForm        = &sexpr.SpecialForm{Name: "not", Fn: rNot}
)

// beginForm.Fn is wired up here instead of in the var block above: rBegin
// calls Eval, and Eval references beginForm directly (to splice an implicit
// begin around a compound procedure's body), which forms a package-level
// initializer cycle if assigned inline.
func init() {
	beginForm.Fn = rBegin
}

// rQuote returns its single argument unevaluated.
func rQuote(args []sexpr.SExpr, _ sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("quote", "1 argument", len(args))
	}

	return args[0], nil
}

// rQuasiquote hands its single argument to the quasiquote engine at depth
// one.
func rQuasiquote(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("quasiquote", "1 argument", len(args))
	}

	return quasiquote(args[0], env, 1)
}

// rDefine binds a name in the current frame.  The sugared form
// (define (name params...) body...) expands to a lambda binding.
func rDefine(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) < 2 {
		return nil, errArity("define", "2 arguments", len(args))
	}
	//
	switch target := args[0].(type) {
	case sexpr.Symbol:
		value, err := Eval(args[1], env)
		if err != nil {
			return nil, err
		}
		//
		env.Define(string(target), value)
		//
		return sexpr.Ok{}, nil
	case sexpr.List:
		if target.Len() == 0 {
			return nil, errSyntax("in define: missing procedure name")
		}
		//
		name, ok := sexpr.AsSymbol(target.Get(0))
		if !ok {
			return nil, errSyntax("in define: %s is not a symbol", target.Get(0))
		}
		//
		lambdaArgs := make([]sexpr.SExpr, 0, len(args))
		lambdaArgs = append(lambdaArgs, sexpr.NewList(target.Tail(1)))
		lambdaArgs = append(lambdaArgs, args[1:]...)
		//
		lambda, err := rLambda(lambdaArgs, env)
		if err != nil {
			return nil, err
		}
		//
		env.Define(name, lambda)
		//
		return sexpr.Ok{}, nil
	default:
		return nil, errSyntax("in define: %s is neither a symbol nor a list", args[0])
	}
}

// rSet assigns to the nearest binding of a name, walking outwards through the
// frame chain.
func rSet(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 2 {
		return nil, errArity("set!", "2 arguments", len(args))
	}
	//
	name, ok := sexpr.AsSymbol(args[0])
	if !ok {
		return nil, errSyntax("in set!: %s is not a symbol", args[0])
	}
	//
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	//
	if !env.Set(name, value) {
		return nil, errUnbound(name)
	}
	//
	return sexpr.Ok{}, nil
}

// rLambda reduces to a compound procedure capturing the current environment.
func rLambda(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) < 2 {
		return nil, errArity("lambda", "at least 2 arguments", len(args))
	}
	//
	paramList, ok := sexpr.AsList(args[0])
	if !ok {
		return nil, errSyntax("in lambda: %s is not a parameter list", args[0])
	}
	//
	params := make([]string, paramList.Len())
	//
	for i, p := range paramList.Elements() {
		name, ok := sexpr.AsSymbol(p)
		if !ok {
			return nil, errSyntax("in lambda: found non-symbol object %s in parameter list", p)
		}
		//
		params[i] = name
	}
	//
	return &sexpr.Compound{Params: params, Body: args[1:], Env: env}, nil
}

// rLet evaluates each initialiser in the enclosing environment, binds the
// results in a fresh child frame, then evaluates the body forms sequentially.
func rLet(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) < 2 {
		return nil, errArity("let", "at least 2 arguments", len(args))
	}
	//
	letEnv := NewChildEnv(env)
	//
	if err := bindLet(args[0], env, letEnv); err != nil {
		return nil, err
	}
	//
	return evalBody(args[1:], letEnv)
}

// rLetStar is as rLet, except each binding is made in its own nested frame
// and hence is visible to every subsequent initialiser.
func rLetStar(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) < 2 {
		return nil, errArity("let*", "at least 2 arguments", len(args))
	}
	//
	bindings, ok := sexpr.AsList(args[0])
	if !ok {
		return nil, errSyntax("in let*: %s is not a binding list", args[0])
	}
	//
	var inner sexpr.Environment = env
	//
	for _, binding := range bindings.Elements() {
		name, initialiser, err := splitBinding("let*", binding)
		if err != nil {
			return nil, err
		}
		//
		value, err := Eval(initialiser, inner)
		if err != nil {
			return nil, err
		}
		//
		child := NewChildEnv(inner)
		child.Define(name, value)
		inner = child
	}
	//
	return evalBody(args[1:], inner)
}

// bindLet evaluates every (name initialiser) pair of a let binding list in
// the outer environment and defines the results in the target frame.
func bindLet(bindingList sexpr.SExpr, outer sexpr.Environment, target *Env) error {
	bindings, ok := sexpr.AsList(bindingList)
	if !ok {
		return errSyntax("in let: %s is not a binding list", bindingList)
	}
	//
	for _, binding := range bindings.Elements() {
		name, initialiser, err := splitBinding("let", binding)
		if err != nil {
			return err
		}
		//
		value, err := Eval(initialiser, outer)
		if err != nil {
			return err
		}
		//
		target.Define(name, value)
	}
	//
	return nil
}

// splitBinding destructures a (name initialiser) binding clause.
func splitBinding(where string, binding sexpr.SExpr) (string, sexpr.SExpr, error) {
	clause, ok := sexpr.AsList(binding)
	if !ok || clause.Len() != 2 {
		return "", nil, errSyntax("in %s: %s is not a binding", where, binding)
	}
	//
	name, ok := sexpr.AsSymbol(clause.Get(0))
	if !ok {
		return "", nil, errSyntax("in %s: %s is not a symbol", where, clause.Get(0))
	}
	//
	return name, clause.Get(1), nil
}

// evalBody evaluates body forms sequentially, returning the value of the
// last.
func evalBody(body []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	var result sexpr.SExpr = sexpr.Unspecified{}
	//
	for _, form := range body {
		value, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		//
		result = value
	}
	//
	return result, nil
}

// rIf evaluates the test and reduces to the chosen branch, which the
// trampoline evaluates in tail position.  Only the literal #f counts as
// false.
func rIf(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, errArity("if", "2 or 3 arguments", len(args))
	}
	//
	test, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	//
	if test == sexpr.Boolean(false) {
		if len(args) == 3 {
			return args[2], nil
		}

		return sexpr.Ok{}, nil
	}
	//
	return args[1], nil
}

// rCond reduces to the expression of the first clause whose test holds.  An
// else clause matches unconditionally; with no matching clause the result is
// Ok.  Both the (else expr) clause form and a bare trailing "else expr" are
// accepted.
func rCond(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) == 0 {
		return nil, errArity("cond", "at least 1 argument", len(args))
	}
	//
	for i := 0; i < len(args); i++ {
		if args[i] == sexpr.Symbol("else") {
			if i+1 == len(args) {
				return nil, errSyntax("in cond: else clause missing an expression")
			}

			return args[i+1], nil
		}
		//
		clause, ok := sexpr.AsList(args[i])
		if !ok || clause.Len() != 2 {
			return nil, errSyntax("in cond: %s is not a clause", args[i])
		}
		//
		if clause.Get(0) == sexpr.Symbol("else") {
			return clause.Get(1), nil
		}
		//
		test, err := Eval(clause.Get(0), env)
		if err != nil {
			return nil, err
		}
		//
		if test != sexpr.Boolean(false) {
			return clause.Get(1), nil
		}
	}
	//
	return sexpr.Ok{}, nil
}

// rBegin evaluates all but its last form for their side effects and reduces
// to the last (tail position).
func rBegin(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) == 0 {
		return nil, errArity("begin", "at least 1 argument", len(args))
	}
	//
	for _, form := range args[:len(args)-1] {
		if _, err := Eval(form, env); err != nil {
			return nil, err
		}
	}
	//
	return args[len(args)-1], nil
}

// rAnd short-circuits on the first #f; otherwise it reduces to its final form
// in tail position.  (and) is #t.
func rAnd(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) == 0 {
		return sexpr.Boolean(true), nil
	}
	//
	for _, form := range args[:len(args)-1] {
		value, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		//
		if value == sexpr.Boolean(false) {
			return value, nil
		}
	}
	//
	return args[len(args)-1], nil
}

// rOr short-circuits on the first non-#f value; otherwise it reduces to its
// final form in tail position.  (or) is #t.
func rOr(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) == 0 {
		return sexpr.Boolean(true), nil
	}
	//
	for _, form := range args[:len(args)-1] {
		value, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		//
		if value != sexpr.Boolean(false) {
			// Already a value, so shield it from re-evaluation.
			return quoteExpr(value), nil
		}
	}
	//
	return args[len(args)-1], nil
}

// rNot evaluates its argument and returns #t exactly when it is the literal
// #f.
func rNot(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("not", "1 argument", len(args))
	}
	//
	value, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	//
	return sexpr.Boolean(value == sexpr.Boolean(false)), nil
}

// rTime evaluates its single argument and returns a symbol carrying the
// elapsed wall time.
func rTime(args []sexpr.SExpr, env sexpr.Environment) (sexpr.SExpr, error) {
	if len(args) != 1 {
		return nil, errArity("time", "1 argument", len(args))
	}
	//
	stats := NewPerfStats()
	//
	if _, err := Eval(args[0], env); err != nil {
		return nil, err
	}
	//
	return sexpr.Symbol(stats.Elapsed().String()), nil
}
