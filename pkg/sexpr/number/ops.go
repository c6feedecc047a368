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
)

// Add computes the sum of two numbers at their join level in the promotion
// lattice.  Machine-integer addition promotes to BigInt when either operand
// exceeds the safe magnitude threshold.
func Add(l, r Number) Number {
	switch join(l, r) {
	case levelInt:
		x, y := int64(*l.AsInt()), int64(*r.AsInt())
		if safeMagnitude(x, y, MaxSafeAdd) {
			return Int(x + y)
		}

		return BigInt{new(big.Int).Add(big.NewInt(x), big.NewInt(y))}
	case levelBigInt:
		return BigInt{new(big.Int).Add(toBigInt(l), toBigInt(r))}
	case levelRational:
		return Rational{new(big.Rat).Add(toRat(l), toRat(r))}
	case levelFloat:
		return Float(toFloat(l) + toFloat(r))
	default:
		return Complex(toComplex(l) + toComplex(r))
	}
}

// Sub computes the difference of two numbers at their join level.
func Sub(l, r Number) Number {
	switch join(l, r) {
	case levelInt:
		x, y := int64(*l.AsInt()), int64(*r.AsInt())
		if safeMagnitude(x, y, MaxSafeAdd) {
			return Int(x - y)
		}

		return BigInt{new(big.Int).Sub(big.NewInt(x), big.NewInt(y))}
	case levelBigInt:
		return BigInt{new(big.Int).Sub(toBigInt(l), toBigInt(r))}
	case levelRational:
		return Rational{new(big.Rat).Sub(toRat(l), toRat(r))}
	case levelFloat:
		return Float(toFloat(l) - toFloat(r))
	default:
		return Complex(toComplex(l) - toComplex(r))
	}
}

// Mul computes the product of two numbers at their join level.
func Mul(l, r Number) Number {
	switch join(l, r) {
	case levelInt:
		x, y := int64(*l.AsInt()), int64(*r.AsInt())
		if safeMagnitude(x, y, MaxSafeMul) {
			return Int(x * y)
		}

		return BigInt{new(big.Int).Mul(big.NewInt(x), big.NewInt(y))}
	case levelBigInt:
		return BigInt{new(big.Int).Mul(toBigInt(l), toBigInt(r))}
	case levelRational:
		return Rational{new(big.Rat).Mul(toRat(l), toRat(r))}
	case levelFloat:
		return Float(toFloat(l) * toFloat(r))
	default:
		return Complex(toComplex(l) * toComplex(r))
	}
}

// Div computes the quotient of two numbers.  Division of two exact operands
// yields an exact rational; any inexact operand yields an inexact result.
// Division of an exact operand by exact zero is reported via the ok flag.
func Div(l, r Number) (Number, bool) {
	switch join(l, r) {
	case levelInt, levelBigInt, levelRational:
		rr := toRat(r)
		if rr.Sign() == 0 {
			return nil, false
		}

		return Rational{new(big.Rat).Quo(toRat(l), rr)}, true
	case levelFloat:
		return Float(toFloat(l) / toFloat(r)), true
	default:
		return Complex(toComplex(l) / toComplex(r)), true
	}
}

// Neg computes the additive inverse of a number.
func Neg(n Number) Number {
	return Sub(Int(0), n)
}

// Cmp performs a three-way comparison of two numbers after promotion.  The
// ok flag is cleared when the ordering is undefined, i.e. when either operand
// is NaN or has a non-zero imaginary part; two identical complex operands
// still compare as equal.
func Cmp(l, r Number) (int, bool) {
	switch join(l, r) {
	case levelInt:
		x, y := int64(*l.AsInt()), int64(*r.AsInt())
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		default:
			return 0, true
		}
	case levelBigInt:
		return toBigInt(l).Cmp(toBigInt(r)), true
	case levelRational:
		return toRat(l).Cmp(toRat(r)), true
	case levelFloat:
		x, y := toFloat(l), toFloat(r)
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}

		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		default:
			return 0, true
		}
	default:
		x, y := toComplex(l), toComplex(r)
		if imag(x) != 0 || imag(y) != 0 {
			// Ordering is undefined off the real line; equality still holds
			// when both sides coincide.
			if x == y {
				return 0, true
			}

			return 0, false
		}

		return Cmp(Float(real(x)), Float(real(y)))
	}
}

// Equal checks two numbers for equality after promotion to their join type.
// A complex number equals a non-complex one only when its imaginary part is
// zero and the real parts coincide.
func Equal(l, r Number) bool {
	c, ok := Cmp(l, r)
	return ok && c == 0
}

// ===================================================================
// Classification
// ===================================================================

// IsInteger determines whether a number denotes an integer value.  A float is
// an integer when its fractional part is zero; a complex is an integer when
// it lies on the real line at an integral point.
func IsInteger(n Number) bool {
	switch n := n.(type) {
	case Int, BigInt:
		return true
	case Rational:
		return n.val.IsInt()
	case Float:
		f := float64(n)
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
	case Complex:
		return imag(complex128(n)) == 0 && IsInteger(Float(real(complex128(n))))
	default:
		return false
	}
}

// IsRational determines whether a number denotes a rational value.  Every
// finite non-NaN float is rational; a complex is rational when it lies on the
// real line at a rational point.
func IsRational(n Number) bool {
	switch n := n.(type) {
	case Int, BigInt, Rational:
		return true
	case Float:
		f := float64(n)
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	case Complex:
		return imag(complex128(n)) == 0 && IsRational(Float(real(complex128(n))))
	default:
		return false
	}
}

// IsReal determines whether a number lies on the real line.
func IsReal(n Number) bool {
	if c, ok := n.(Complex); ok {
		return imag(complex128(c)) == 0
	}

	return true
}

// IsZero determines whether a number equals zero.
func IsZero(n Number) bool {
	return Equal(n, Int(0))
}

// IsNaN determines whether a number is (or contains) a NaN component.
func IsNaN(n Number) bool {
	switch n := n.(type) {
	case Float:
		return math.IsNaN(float64(n))
	case Complex:
		return math.IsNaN(real(complex128(n))) || math.IsNaN(imag(complex128(n)))
	default:
		return false
	}
}

// IsInfinite determines whether a number is (or contains) an infinite
// component.
func IsInfinite(n Number) bool {
	switch n := n.(type) {
	case Float:
		return math.IsInf(float64(n), 0)
	case Complex:
		return math.IsInf(real(complex128(n)), 0) || math.IsInf(imag(complex128(n)), 0)
	default:
		return false
	}
}

// ===================================================================
// Promotion helpers
// ===================================================================

// join determines the least upper bound of two numbers in the lattice.
func join(l, r Number) int {
	if l.level() >= r.level() {
		return l.level()
	}

	return r.level()
}

// safeMagnitude checks both operands sit comfortably below the given
// magnitude threshold, such that the machine operation cannot overflow.
func safeMagnitude(x, y, limit int64) bool {
	return absClamped(x) < limit && absClamped(y) < limit
}

// absClamped computes |x|, clamping math.MinInt64 rather than overflowing.
func absClamped(x int64) int64 {
	if x == math.MinInt64 {
		return math.MaxInt64
	}

	if x < 0 {
		return -x
	}

	return x
}

func toBigInt(n Number) *big.Int {
	switch n := n.(type) {
	case Int:
		return big.NewInt(int64(n))
	case BigInt:
		return n.val
	default:
		panic("unreachable: operand above BigInt in the lattice")
	}
}

func toRat(n Number) *big.Rat {
	switch n := n.(type) {
	case Int:
		return new(big.Rat).SetInt64(int64(n))
	case BigInt:
		return new(big.Rat).SetInt(n.val)
	case Rational:
		return n.val
	default:
		panic("unreachable: operand above Rational in the lattice")
	}
}

func toFloat(n Number) float64 {
	switch n := n.(type) {
	case Int:
		return float64(n)
	case BigInt:
		f, _ := new(big.Float).SetInt(n.val).Float64()
		return f
	case Rational:
		f, _ := n.val.Float64()
		return f
	case Float:
		return float64(n)
	default:
		panic("unreachable: operand above Float in the lattice")
	}
}

func toComplex(n Number) complex128 {
	if c, ok := n.(Complex); ok {
		return complex128(c)
	}

	return complex(toFloat(n), 0)
}
