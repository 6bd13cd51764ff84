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
	"strings"
	"unicode/utf8"
)

// Alphabet supports the conversion between a set of unique symbols and
// ordinal values from 0 to the length of the alphabet-1.
// Element 'rtu' (rune-to-uint) maps symbols to ordinal values.
// Element 'utr' (uint-to-rune) maps ordinal values to symbols.
// An Alphabet is never modified after construction and may be shared between
// goroutines.
type Alphabet struct {
	rtu map[rune]int
	utr []rune
}

// NewAlphabet builds an Alphabet from symbols, where the position of each
// symbol is its digit value. It is an error for symbols to be empty, to
// contain the same rune twice or to contain a rune that is not valid UTF-8.
func NewAlphabet(symbols []rune) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, &Error{Kind: DictEmpty}
	}

	a := &Alphabet{
		rtu: make(map[rune]int, len(symbols)),
		utr: append([]rune(nil), symbols...),
	}
	for i, rv := range a.utr {
		if !utf8.ValidRune(rv) {
			return nil, &Error{Kind: InvalidSymbol, Symbol: rv, Alphabet: a.utr}
		}
		if _, ok := a.rtu[rv]; ok {
			return nil, &Error{Kind: MultipleChar, Symbol: rv, Alphabet: a.utr}
		}
		a.rtu[rv] = i
	}
	return a, nil
}

// NewAlphabetString is NewAlphabet over the runes of s.
func NewAlphabetString(s string) (*Alphabet, error) {
	return NewAlphabet([]rune(s))
}

// Radix returns the size of the alphabet.
func (a *Alphabet) Radix() int {
	return len(a.utr)
}

// Symbols returns a copy of the symbols in digit order.
func (a *Alphabet) Symbols() []rune {
	return append([]rune(nil), a.utr...)
}

// String returns the symbols of the alphabet as a string.
func (a *Alphabet) String() string {
	return string(a.utr)
}

// Encode the supplied sequence as an array of ordinal values giving the
// position of each symbol in the alphabet.
// Symbols are looked up from the least significant end, so when several are
// missing the error names the rightmost one.
func (a *Alphabet) Encode(s string) ([]int, error) {
	rs := []rune(s)
	ret := make([]int, len(rs))
	for i := len(rs) - 1; i >= 0; i-- {
		v, ok := a.rtu[rs[i]]
		if !ok {
			return nil, &Error{Kind: MissingChar, Symbol: rs[i], Alphabet: a.Symbols()}
		}
		ret[i] = v
	}
	return ret, nil
}

// Decode constructs a sequence from an array of ordinal values where each
// value specifies the position of the symbol in the alphabet.
// It is an error for the array to contain values outside the alphabet.
func (a *Alphabet) Decode(n []int) (string, error) {
	for _, v := range n {
		if v < 0 || v >= len(a.utr) {
			return "", &Error{Kind: DigitRange, Given: v, Limit: len(a.utr)}
		}
	}
	return symbols(n, a.utr), nil
}

// Format returns the representation of x in this alphabet, with the same
// results as Dec2Seq.
func (a *Alphabet) Format(x uint64) (string, error) {
	return Dec2Seq(x, a.utr)
}

// Parse returns the value of sequence s, with the same results as Seq2Dec.
func (a *Alphabet) Parse(s string) (uint64, error) {
	if len(a.utr) == 1 {
		if n, ok := unaryLen(s); ok {
			return n, nil
		}
	}
	digits, err := a.Encode(s)
	if err != nil {
		return 0, err
	}
	return num(digits, uint64(len(a.utr)))
}

// symbols maps digit values to runes of alphabet. Every value must be a valid
// index.
func symbols(n []int, alphabet []rune) string {
	var b strings.Builder
	b.Grow(len(n))
	for _, v := range n {
		b.WriteRune(alphabet[v])
	}
	return b.String()
}
