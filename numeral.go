/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package numsys

import (
	"math"
	"math/bits"
	"slices"
	"strings"
	"unicode/utf8"
)

// num returns the value of the digits s in the given radix. The array is
// arranged with the most significant digit in element 0. Every digit must be
// below radix.
func num(s []int, radix uint64) (uint64, error) {
	var x uint64
	for _, v := range s {
		hi, lo := bits.Mul64(x, radix)
		if hi != 0 {
			return 0, &Error{Kind: Overflow, Limit: int(radix)}
		}
		sum, carry := bits.Add64(lo, uint64(v), 0)
		if carry != 0 {
			return 0, &Error{Kind: Overflow, Limit: int(radix)}
		}
		x = sum
	}
	return x, nil
}

// str returns the digits of x in the given radix, most significant digit in
// element 0, without leading zeros. Zero has no digits.
func str(x uint64, radix uint64) []int {
	var r []int
	for x != 0 {
		r = append(r, int(x%radix))
		x /= radix
	}
	slices.Reverse(r)
	return r
}

// unaryLen reports the number of runes in s when s consists of a single
// distinct rune repeated.
func unaryLen(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	first, _ := utf8.DecodeRuneInString(s)
	var n uint64
	for _, rv := range s {
		if rv != first {
			return 0, false
		}
		n++
	}
	return n, true
}

// unary returns sym repeated n times.
func unary(sym rune, n uint64) (string, error) {
	s := string(sym)
	if n > uint64(math.MaxInt/len(s)) {
		return "", &Error{Kind: Overflow, Limit: 1}
	}
	return strings.Repeat(s, int(n)), nil
}

// Dec2Seq converts decimal to a sequence of symbols taken from alphabet, most
// significant symbol first. The base is the length of alphabet.
//
// A single-symbol alphabet produces the unary form: the symbol repeated
// decimal times. Zero is the empty sequence in every base; SwitchDecBase
// is the function that renders it as "0".
//
// Dec2Seq fails with DictEmpty when alphabet is empty and with InvalidSymbol
// when it holds a rune that cannot be written as UTF-8. Duplicate symbols are
// not rejected here, only by Seq2Dec.
func Dec2Seq(decimal uint64, alphabet []rune) (string, error) {
	if len(alphabet) == 0 {
		return "", &Error{Kind: DictEmpty}
	}
	for _, rv := range alphabet {
		if !utf8.ValidRune(rv) {
			return "", &Error{Kind: InvalidSymbol, Symbol: rv, Alphabet: slices.Clone(alphabet)}
		}
	}
	if len(alphabet) == 1 {
		return unary(alphabet[0], decimal)
	}
	return symbols(str(decimal, uint64(len(alphabet))), alphabet), nil
}

// Seq2Dec converts sequence, written with the symbols of alphabet most
// significant first, to its value.
//
// With a single-symbol alphabet, a sequence made of one distinct symbol is
// read as unary and its value is its length. Only the uniformity of sequence
// is checked in that case, not whether its symbol belongs to alphabet.
//
// Errors:
//   - DictEmpty when alphabet is empty
//   - MultipleChar when alphabet repeats a symbol
//   - InvalidSymbol when alphabet holds a rune that is not valid UTF-8
//   - MissingChar for the rightmost symbol of sequence not in alphabet
//   - Overflow when the value does not fit in a uint64
func Seq2Dec(sequence string, alphabet []rune) (uint64, error) {
	if len(alphabet) == 0 {
		return 0, &Error{Kind: DictEmpty}
	}
	if len(alphabet) == 1 {
		if n, ok := unaryLen(sequence); ok {
			return n, nil
		}
	}
	a, err := NewAlphabet(alphabet)
	if err != nil {
		return 0, err
	}
	digits, err := a.Encode(sequence)
	if err != nil {
		return 0, err
	}
	return num(digits, uint64(len(alphabet)))
}
