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
package number

import (
	"math"
	"math/big"
	"testing"
)

// ============================================================================
// Arithmetic
// ============================================================================

func TestNumber_Arithmetic(t *testing.T) {
	tests := []struct {
		lhs, rhs Number
		op       func(Number, Number) Number
		expected string
	}{
		{Int(1), Int(2), Add, "3"},
		{Int(1), Int(2), Sub, "-1"},
		{Int(3), Int(2), Mul, "6"},
		{Int(1), bigIntOf("77777777777777777777"), Add, "77777777777777777778"},
		{Int(1), bigIntOf("77777777777777777777"), Sub, "-77777777777777777776"},
		{bigIntOf("20000000000000000000"), bigIntOf("60000000000000000000"), Mul,
			"1200000000000000000000000000000000000000"},
		{Int(1), ratOf(1, 6), Add, "7/6"},
		{ratOf(1, 6), ratOf(1, 6), Add, "1/3"},
		{Int(3), ratOf(1, 2), Mul, "3/2"},
		{Int(1), Float(0.5), Add, "1.5"},
		{ratOf(1, 2), Float(0.5), Add, "1.0"},
		{Float(2), Float(10), Mul, "20.0"},
		{Float(1), Complex(complex(1, 2)), Add, "2.0+2.0i"},
		{Complex(complex(1, 2)), Complex(complex(1, -2)), Add, "2.0+0.0i"},
	}
	//
	for _, test := range tests {
		result := test.op(test.lhs, test.rhs)
		//
		if result.String() != test.expected {
			t.Errorf("%s op %s: expected %s, got %s", test.lhs, test.rhs, test.expected, result)
		}
	}
}

func TestNumber_Division(t *testing.T) {
	tests := []struct {
		lhs, rhs Number
		expected string
	}{
		{Int(1), Int(2), "1/2"},
		{Int(6), Int(3), "2"},
		{Int(-1), Int(6), "-1/6"},
		{bigIntOf("77777777777777777777"), Int(7), "11111111111111111111"},
		{ratOf(1, 2), Int(2), "1/4"},
		{Float(10), Float(2), "5.0"},
		{Int(1), Float(2), "0.5"},
	}
	//
	for _, test := range tests {
		result, ok := Div(test.lhs, test.rhs)
		//
		if !ok {
			t.Errorf("%s / %s: unexpected division failure", test.lhs, test.rhs)
		} else if result.String() != test.expected {
			t.Errorf("%s / %s: expected %s, got %s", test.lhs, test.rhs, test.expected, result)
		}
	}
}

func TestNumber_DivisionByZero(t *testing.T) {
	if _, ok := Div(Int(1), Int(0)); ok {
		t.Errorf("expected division by exact zero to fail")
	}
}

// ============================================================================
// Promotion
// ============================================================================

func TestNumber_PromotionAdd(t *testing.T) {
	max := Int(math.MaxInt64)
	result := Add(max, max)
	//
	if result.String() != "18446744073709551614" {
		t.Errorf("expected 18446744073709551614, got %s", result)
	}
	//
	if _, ok := result.(BigInt); !ok {
		t.Errorf("expected promotion to BigInt, got %T", result)
	}
}

func TestNumber_PromotionMul(t *testing.T) {
	max := Int(math.MaxInt64)
	result := Mul(max, max)
	//
	if result.String() != "85070591730234615847396907784232501249" {
		t.Errorf("expected (2^63-1)^2, got %s", result)
	}
}

func TestNumber_PromotionSub(t *testing.T) {
	result := Sub(Int(math.MinInt64), Int(math.MaxInt64))
	//
	if result.String() != "-18446744073709551615" {
		t.Errorf("expected -18446744073709551615, got %s", result)
	}
}

// ============================================================================
// Comparison
// ============================================================================

func TestNumber_Equality(t *testing.T) {
	tests := []struct {
		lhs, rhs Number
		expected bool
	}{
		{Int(1), Int(1), true},
		{Int(1), Int(2), false},
		{Int(1), bigIntOf("1"), true},
		{Int(3), ratOf(6, 2), true},
		{Int(2), Float(2.0), true},
		{ratOf(1, 2), Float(0.5), true},
		{Float(math.NaN()), Float(math.NaN()), false},
		{Complex(complex(2, 0)), Int(2), true},
		{Complex(complex(2, 1)), Int(2), false},
		{Complex(complex(2, 1)), Complex(complex(2, 1)), true},
	}
	//
	for _, test := range tests {
		if Equal(test.lhs, test.rhs) != test.expected {
			t.Errorf("(= %s %s): expected %t", test.lhs, test.rhs, test.expected)
		}
	}
}

func TestNumber_Ordering(t *testing.T) {
	tests := []struct {
		lhs, rhs Number
		expected int
	}{
		{Int(1), Int(2), -1},
		{Int(2), bigIntOf("1"), 1},
		{Int(3), ratOf(7, 2), -1},
		{Float(0.1), Float(0.2), -1},
		{bigIntOf("-77777777777777777777"), bigIntOf("77777777777777777777"), -1},
		{ratOf(-12, 4), Int(-3), 0},
	}
	//
	for _, test := range tests {
		c, ok := Cmp(test.lhs, test.rhs)
		//
		if !ok || c != test.expected {
			t.Errorf("cmp(%s, %s): expected %d, got %d (ok=%t)", test.lhs, test.rhs, test.expected, c, ok)
		}
	}
}

func TestNumber_OrderingUndefined(t *testing.T) {
	// NaN and complex operands have no ordering.
	if _, ok := Cmp(Float(math.NaN()), Int(1)); ok {
		t.Errorf("expected no ordering against NaN")
	}
	//
	if _, ok := Cmp(Complex(complex(1, 1)), Int(1)); ok {
		t.Errorf("expected no ordering against complex")
	}
}

// ============================================================================
// Classification
// ============================================================================

func TestNumber_Classification(t *testing.T) {
	tests := []struct {
		n                                 Number
		integer, rational, real, isExact  bool
	}{
		{Int(1), true, true, true, true},
		{bigIntOf("77777777777777777777"), true, true, true, true},
		{ratOf(1, 2), false, true, true, true},
		{ratOf(4, 2), true, true, true, true},
		{Float(2.0), true, true, true, false},
		{Float(2.5), false, true, true, false},
		{Float(math.Inf(1)), false, false, true, false},
		{Float(math.NaN()), false, false, true, false},
		{Complex(complex(2, 0)), true, true, true, false},
		{Complex(complex(2, 1)), false, false, false, false},
	}
	//
	for _, test := range tests {
		if IsInteger(test.n) != test.integer {
			t.Errorf("integer?(%s): expected %t", test.n, test.integer)
		}
		//
		if IsRational(test.n) != test.rational {
			t.Errorf("rational?(%s): expected %t", test.n, test.rational)
		}
		//
		if IsReal(test.n) != test.real {
			t.Errorf("real?(%s): expected %t", test.n, test.real)
		}
		//
		if test.n.Exact() != test.isExact {
			t.Errorf("exact?(%s): expected %t", test.n, test.isExact)
		}
	}
}

// ============================================================================
// Parsing
// ============================================================================

func TestNumber_ParseOk(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"77777777777777777777", "77777777777777777777"},
		{"1/2", "1/2"},
		{"6/3", "2"},
		{"-22/4", "-11/2"},
		{".11", "0.11"},
		{"2.5", "2.5"},
		{"1e3", "1000.0"},
		{"#b101", "5"},
		{"#o17", "15"},
		{"#d42", "42"},
		{"#x1f", "31"},
		{"#b#e101", "5"},
		{"#e1.5", "3/2"},
		{"#e0.1", "1/10"},
		{"#i3", "3.0"},
		{"#i1/2", "0.5"},
		{"+inf.0", "+inf.0"},
		{"-inf.0", "-inf.0"},
		{"+nan.0", "+nan.0"},
		{"3+4i", "3.0+4.0i"},
		{"-1.5-2i", "-1.5-2.0i"},
		{"+i", "0.0+1.0i"},
		{"4i", "0.0+4.0i"},
		{"2@0", "2.0+0.0i"},
	}
	//
	for _, test := range tests {
		n, ok := Parse(test.token)
		//
		if !ok {
			t.Errorf("%s: expected a number", test.token)
		} else if n.String() != test.expected {
			t.Errorf("%s: expected %s, got %s", test.token, test.expected, n)
		}
	}
}

func TestNumber_ParseNotANumber(t *testing.T) {
	tokens := []string{
		"", "hello", "+", "-", "...", "1/0", "inf", "nan", "#b", "#b2", "#x",
		"#b#d101", "#e#i1", "1.2.3", "e10",
	}
	//
	for _, token := range tokens {
		if n, ok := Parse(token); ok {
			t.Errorf("%s: expected not a number, got %s", token, n)
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

func bigIntOf(s string) BigInt {
	val, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("malformed test literal " + s)
	}
	//
	return NewBigInt(val)
}

func ratOf(p, q int64) Rational {
	return RationalFromInts(p, q)
}
