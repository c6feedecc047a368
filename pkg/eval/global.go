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
	"github.com/consensys/go-skim/pkg/sexpr/number"
)

// NewGlobalEnv constructs the root frame of an interpreter instance,
// pre-populated with the numeric constants, primitives and special forms of
// the initial namespace.
func NewGlobalEnv() *Env {
	env := NewEnv()
	// Numeric constants
	defineConstant(env, number.Pi, "pi", "π")
	defineConstant(env, number.Euler, "e", "euler")
	defineConstant(env, number.Avogadro, "avogadro")
	defineConstant(env, number.Boltzmann, "boltzmann")
	defineConstant(env, number.GoldenRatio, "golden-ratio")
	defineConstant(env, number.GravitationalConstant, "gravitational-constant")
	defineConstant(env, number.Planck, "planck", "h")
	// Arithmetic
	definePrimitives(env, sumPrim, diffPrim, prodPrim, quotPrim)
	// Comparisons
	definePrimitives(env, numEqPrim, gtPrim, gePrim, ltPrim, lePrim)
	// Predicates
	definePrimitives(env, isBooleanPrim, isCharPrim, isSymbolPrim, isStringPrim,
		isNumberPrim, isIntegerPrim, isRationalPrim, isRealPrim, isComplexPrim,
		isExactPrim, isNanPrim, isInfinitePrim, isZeroPrim, isPairPrim,
		isListPrim, isVectorPrim, isProcedurePrim, isNullPrim)
	// List/pair
	definePrimitives(env, carPrim, cdrPrim, consPrim, listPrim, setCarPrim,
		appendPrim, lengthPrim, listRefPrim, listTailPrim, listSplicePrim,
		reversePrim)
	// Strings
	definePrimitives(env, stringPrim, makeStringPrim, stringAppendPrim,
		stringRefPrim, stringSetPrim, stringLengthPrim, stringUpcasePrim,
		stringDowncasePrim)
	// Control
	definePrimitives(env, evalPrim, applyPrim, exitPrim, displayPrim,
		environmentBindingsPrim)
	// Special forms
	defineForms(env, quoteForm, "'")
	defineForms(env, quasiquoteForm, "`")
	defineForms(env, lambdaForm, "λ")
	defineForms(env, letForm)
	defineForms(env, letStarForm)
	defineForms(env, defineForm)
	defineForms(env, setForm)
	defineForms(env, ifForm)
	defineForms(env, beginForm)
	defineForms(env, notForm)
	defineForms(env, condForm)
	defineForms(env, andForm)
	defineForms(env, orForm)
	defineForms(env, timeForm)
	//
	return env
}

func defineConstant(env *Env, value number.Float, names ...string) {
	for _, name := range names {
		env.Define(name, sexpr.NewNumber(value))
	}
}

func definePrimitives(env *Env, primitives ...*sexpr.Primitive) {
	for _, primitive := range primitives {
		env.Define(primitive.Name, primitive)
	}
}

func defineForms(env *Env, form *sexpr.SpecialForm, aliases ...string) {
	env.Define(form.Name, form)
	//
	for _, alias := range aliases {
		env.Define(alias, form)
	}
}
