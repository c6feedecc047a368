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

import "github.com/consensys/go-skim/pkg/sexpr/number"

// Quotation symbols, as expanded by the reader from their shorthands.
const (
	QuoteSymbol           = Symbol("quote")
	QuasiquoteSymbol      = Symbol("quasiquote")
	UnquoteSymbol         = Symbol("unquote")
	UnquoteSplicingSymbol = Symbol("unquote-splicing")
)

// IsQuote checks whether a value is the quote symbol.
func IsQuote(e SExpr) bool { return e == QuoteSymbol }

// IsQuasiquote checks whether a value is the quasiquote symbol.
func IsQuasiquote(e SExpr) bool { return e == QuasiquoteSymbol }

// IsUnquote checks whether a value is the unquote symbol.
func IsUnquote(e SExpr) bool { return e == UnquoteSymbol }

// IsUnquoteSplicing checks whether a value is the unquote-splicing symbol.
func IsUnquoteSplicing(e SExpr) bool { return e == UnquoteSplicingSymbol }

// Quote wraps a value as (quote v).
func Quote(v SExpr) List {
	return NewList([]SExpr{QuoteSymbol, v})
}

// Unquoted checks whether a value is a two-element list headed by quote or
// quasiquote and, if so, returns the wrapped datum with the wrapper stripped.
// Sharing is preserved: the datum handle is returned as-is.
func Unquoted(e SExpr) (SExpr, bool) {
	list, ok := e.(List)
	if !ok || list.Len() != 2 {
		return nil, false
	}
	//
	if IsQuote(list.Get(0)) || IsQuasiquote(list.Get(0)) {
		return list.Get(1), true
	}
	//
	return nil, false
}

// HeadedBy checks whether a value is a non-empty list whose first element is
// the given symbol.
func HeadedBy(e SExpr, head Symbol) bool {
	list, ok := e.(List)
	return ok && list.Len() > 0 && list.Get(0) == head
}

// AsInt checks whether a value is a machine-integer number and, if so,
// returns it.
func AsInt(e SExpr) (int64, bool) {
	n, ok := e.(Number)
	if !ok {
		return 0, false
	}
	//
	i := n.Value.AsInt()
	if i == nil {
		return 0, false
	}
	//
	return int64(*i), true
}

// AsChar checks whether a value is a character and, if so, returns it.
func AsChar(e SExpr) (rune, bool) {
	c, ok := e.(Char)
	return rune(c), ok
}

// AsSymbol checks whether a value is a symbol and, if so, returns its text.
func AsSymbol(e SExpr) (string, bool) {
	s, ok := e.(Symbol)
	return string(s), ok
}

// AsList checks whether a value is a proper list and, if so, returns it.
func AsList(e SExpr) (List, bool) {
	l, ok := e.(List)
	return l, ok
}

// AsNumber checks whether a value is a number and, if so, returns the tower
// member.
func AsNumber(e SExpr) (number.Number, bool) {
	n, ok := e.(Number)
	if !ok {
		return nil, false
	}
	//
	return n.Value, true
}
