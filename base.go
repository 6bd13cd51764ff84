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
	"slices"
	"strconv"
	"strings"
	"sync"
)

const (
	// MinBase is the smallest base accepted by SwitchDecBase and ParseDecBase.
	MinBase = 2
	// MaxBase is the length of the canonical alphabet, the largest base
	// accepted by SwitchDecBase and ParseDecBase.
	MaxBase = 36
)

// canonical is the alphabet 0-9 followed by A-Z.
var canonical = sync.OnceValue(func() []rune {
	r := make([]rune, 0, MaxBase)
	for c := '0'; c <= '9'; c++ {
		r = append(r, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		r = append(r, c)
	}
	return r
})

// Digits returns the runes '0' to '9'.
func Digits() []rune {
	return slices.Clone(canonical()[:10])
}

// UpperAZ returns the runes 'A' to 'Z'.
func UpperAZ() []rune {
	return slices.Clone(canonical()[10:])
}

// DigitsUpperAZ returns Digits followed by UpperAZ, the canonical alphabet
// used by SwitchDecBase.
func DigitsUpperAZ() []rune {
	return slices.Clone(canonical())
}

func checkBase(base int) error {
	if base < MinBase {
		return &Error{Kind: BaseTooSmall, Given: base, Limit: MinBase}
	}
	if base > MaxBase {
		return &Error{Kind: BaseTooBig, Given: base, Limit: MaxBase}
	}
	return nil
}

// SwitchDecBase converts decimal to base using the symbols 0-9 and A-Z.
// Zero is rendered as "0" and no other result has a leading zero.
//
// SwitchDecBase fails with BaseTooSmall when base is below MinBase and with
// BaseTooBig when it exceeds MaxBase. ParseDecBase is the inverse.
func SwitchDecBase(decimal uint64, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if decimal == 0 {
		return "0", nil
	}

	switch base {
	case 2, 8, 10:
		return strconv.FormatUint(decimal, base), nil
	case 16:
		return strings.ToUpper(strconv.FormatUint(decimal, base)), nil
	}
	return Dec2Seq(decimal, canonical()[:base])
}

// ParseDecBase converts a sequence of canonical symbols in base back to its
// value. Only upper-case letters are canonical; "a" fails with MissingChar.
// The empty sequence is zero.
func ParseDecBase(sequence string, base int) (uint64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	return Seq2Dec(sequence, canonical()[:base])
}
