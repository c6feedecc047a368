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
	"strconv"
	"strings"
)

// Exactness requested by a literal prefix.
const (
	exactnessNone = iota
	exactnessExact
	exactnessInexact
)

// Parse attempts to read a token as a numeric literal.  After stripping up to
// two prefix pairs (at most one radix among #b/#o/#d/#x, at most one
// exactness among #e/#i), the remainder is tried as machine integer, big
// integer, rational (p/q), float, rectangular complex (a±bi) and finally
// polar complex (r@θ).  The ok flag is cleared when the token is not a
// number at all.
func Parse(token string) (Number, bool) {
	var (
		radix     = 0
		exactness = exactnessNone
		s         = token
	)
	// Strip prefix pairs
	for range 2 {
		if len(s) < 2 || s[0] != '#' {
			break
		}

		switch s[1] {
		case 'b', 'B':
			if radix != 0 {
				return nil, false
			}

			radix = 2
		case 'o', 'O':
			if radix != 0 {
				return nil, false
			}

			radix = 8
		case 'd', 'D':
			if radix != 0 {
				return nil, false
			}

			radix = 10
		case 'x', 'X':
			if radix != 0 {
				return nil, false
			}

			radix = 16
		case 'e', 'E':
			if exactness != exactnessNone {
				return nil, false
			}

			exactness = exactnessExact
		case 'i', 'I':
			if exactness != exactnessNone {
				return nil, false
			}

			exactness = exactnessInexact
		default:
			return nil, false
		}

		s = s[2:]
	}
	//
	if radix == 0 {
		radix = 10
	}
	//
	if s == "" {
		return nil, false
	}
	// Reserved float tokens
	switch s {
	case "+inf.0":
		return applyExactness(Float(math.Inf(1)), s, exactness)
	case "-inf.0":
		return applyExactness(Float(math.Inf(-1)), s, exactness)
	case "+nan.0", "-nan.0":
		return Float(math.NaN()), true
	}
	//
	if n, ok := parseReal(s, radix); ok {
		return applyExactness(n, s, exactness)
	}
	// Decimal-only forms
	if radix != 10 {
		return nil, false
	}
	//
	if n, ok := parseRectangular(s); ok {
		return applyExactness(n, s, exactness)
	}
	//
	if n, ok := parsePolar(s); ok {
		return applyExactness(n, s, exactness)
	}
	//
	return nil, false
}

// parseReal attempts a token as a real number in the given radix, trying the
// tower levels bottom-up: Int, then BigInt, then Rational, then (radix 10
// only) Float.
func parseReal(s string, radix int) (Number, bool) {
	if i, err := strconv.ParseInt(s, radix, 64); err == nil {
		return Int(i), true
	}
	// Either too large for a machine integer, or not an integer at all.
	if b, ok := new(big.Int).SetString(s, radix); ok {
		return BigInt{b}, true
	}
	//
	if p, q, ok := strings.Cut(s, "/"); ok {
		pv, pok := new(big.Int).SetString(p, radix)
		qv, qok := new(big.Int).SetString(q, radix)
		//
		if pok && qok && qv.Sign() != 0 {
			return Rational{new(big.Rat).SetFrac(pv, qv)}, true
		}

		return nil, false
	}
	//
	if radix == 10 && isFloatToken(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f), true
		}
	}
	//
	return nil, false
}

// parseRectangular attempts a token as a rectangular complex literal a±bi,
// where either part may itself be an integer, rational or float.
func parseRectangular(s string) (Number, bool) {
	if !strings.HasSuffix(s, "i") {
		return nil, false
	}
	// Locate the sign splitting real and imaginary parts: the last +/- which
	// is neither leading nor part of an exponent.
	body := s[:len(s)-1]
	split := -1
	//
	for i := len(body) - 1; i > 0; i-- {
		if body[i] != '+' && body[i] != '-' {
			continue
		}

		if body[i-1] == 'e' || body[i-1] == 'E' {
			continue
		}

		split = i

		break
	}
	//
	var realPart, imagPart string
	//
	if split < 0 {
		// Pure imaginary, e.g. 4i or -2.5i
		realPart, imagPart = "", body
	} else {
		realPart, imagPart = body[:split], body[split:]
	}
	//
	re := 0.0
	//
	if realPart != "" {
		n, ok := parseReal(realPart, 10)
		if !ok {
			return nil, false
		}

		re = toFloat(n)
	}
	//
	im, ok := parseSignedUnit(imagPart)
	if !ok {
		return nil, false
	}
	//
	return Complex(complex(re, im)), true
}

// parseSignedUnit reads the imaginary magnitude of a rectangular literal,
// where a bare sign denotes unit magnitude.  A bare "i" is a symbol, not a
// number, hence the empty string is rejected.
func parseSignedUnit(s string) (float64, bool) {
	switch s {
	case "":
		return 0, false
	case "+":
		return 1, true
	case "-":
		return -1, true
	}
	//
	n, ok := parseReal(s, 10)
	if !ok {
		return 0, false
	}
	//
	return toFloat(n), true
}

// parsePolar attempts a token as a polar complex literal r@θ.
func parsePolar(s string) (Number, bool) {
	r, theta, ok := strings.Cut(s, "@")
	if !ok || r == "" || theta == "" {
		return nil, false
	}
	//
	rn, rok := parseReal(r, 10)
	tn, tok := parseReal(theta, 10)
	//
	if !rok || !tok {
		return nil, false
	}
	//
	magnitude, angle := toFloat(rn), toFloat(tn)
	//
	return Complex(complex(magnitude*math.Cos(angle), magnitude*math.Sin(angle))), true
}

// applyExactness converts a parsed literal according to its exactness prefix:
// #e turns an inexact real into its exact rational reading (taken from the
// decimal text, not the rounded binary value), whilst #i turns an exact value
// into a float.
func applyExactness(n Number, text string, exactness int) (Number, bool) {
	switch exactness {
	case exactnessExact:
		f, ok := n.(Float)
		if !ok {
			// Already exact, or complex (which has no exact reading here).
			return n, true
		}

		if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
			return nil, false
		}

		r, ok := new(big.Rat).SetString(text)
		if !ok {
			r = new(big.Rat).SetFloat64(float64(f))
		}

		return Rational{r}, true
	case exactnessInexact:
		if n.Exact() {
			return Float(toFloat(n)), true
		}

		return n, true
	default:
		return n, true
	}
}

// isFloatToken performs a cheap shape check so that words accepted by
// strconv.ParseFloat ("inf", "nan") are not mistaken for numeric literals.
func isFloatToken(s string) bool {
	seenDigit := false
	//
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E':
			// structural characters
		default:
			return false
		}
	}
	//
	return seenDigit
}
