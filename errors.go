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

import "fmt"

// Kind identifies the class of a conversion failure. A Kind is itself an
// error, so callers can match on it with errors.Is.
type Kind uint8

const (
	// BaseTooSmall is returned when the requested base is below MinBase.
	BaseTooSmall Kind = iota + 1
	// BaseTooBig is returned when the requested base exceeds MaxBase.
	BaseTooBig
	// DictEmpty is returned for an empty alphabet.
	DictEmpty
	// MultipleChar is returned when an alphabet repeats a symbol.
	MultipleChar
	// MissingChar is returned when a sequence holds a symbol the alphabet lacks.
	MissingChar
	// Overflow is returned when a value does not fit in a uint64, or a unary
	// sequence would be too long to build.
	Overflow
	// DigitRange is returned by Alphabet.Decode for a digit value outside
	// the alphabet.
	DigitRange
	// InvalidSymbol is returned when an alphabet holds a rune that has no
	// UTF-8 encoding, such as a surrogate half.
	InvalidSymbol
)

var kindNames = map[Kind]string{
	BaseTooSmall:  "BaseTooSmall",
	BaseTooBig:    "BaseTooBig",
	DictEmpty:     "DictEmpty",
	MultipleChar:  "MultipleChar",
	MissingChar:   "MissingChar",
	Overflow:      "Overflow",
	DigitRange:    "DigitRange",
	InvalidSymbol: "InvalidSymbol",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) Error() string {
	return k.String()
}

// Error describes a failed conversion. Only the fields relevant to Kind are
// set:
//
//	BaseTooSmall, BaseTooBig   Given, Limit
//	MultipleChar, MissingChar  Symbol, Alphabet
//	Overflow                   Limit (the base)
//	DigitRange                 Given (the digit), Limit (the base)
//	InvalidSymbol              Symbol, Alphabet
type Error struct {
	Kind     Kind
	Given    int
	Limit    int
	Symbol   rune
	Alphabet []rune
}

func (e *Error) Error() string {
	switch e.Kind {
	case BaseTooSmall:
		return fmt.Sprintf("base must be %d or higher, given %d", e.Limit, e.Given)
	case BaseTooBig:
		return fmt.Sprintf("base must be at most %d, given %d", e.Limit, e.Given)
	case DictEmpty:
		return "alphabet is empty"
	case MultipleChar:
		return fmt.Sprintf("symbols must be unique, duplicated: %q in %q", e.Symbol, e.Alphabet)
	case MissingChar:
		return fmt.Sprintf("symbol %q not found in: %q", e.Symbol, e.Alphabet)
	case Overflow:
		return fmt.Sprintf("value in base %d overflows uint64", e.Limit)
	case InvalidSymbol:
		return fmt.Sprintf("symbol %U is not a valid rune", e.Symbol)
	case DigitRange:
		return fmt.Sprintf("digit %d out of range: not in [0..%d]", e.Given, e.Limit-1)
	}
	return e.Kind.String()
}

// Unwrap returns the Kind of e.
func (e *Error) Unwrap() error {
	return e.Kind
}
