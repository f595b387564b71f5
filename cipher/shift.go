// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Department of Linguistics,
// Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cipher implements the Caesar shift transform and the
// brute-force candidate generator over all 26 keys.
package cipher

import "strings"

const alphabetSize = 26

func shiftRune(r rune, k int) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+rune(k))%alphabetSize
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+rune(k))%alphabetSize
	default:
		// accents, digits, punctuation, emojis - passed through unchanged
		return r
	}
}

// Shift applies a circular shift of k positions to all Latin letters
// of text, preserving case. Any k (negative or above 25) is normalized
// mod 26. The result always has the same rune length as the input.
func Shift(text string, k int) string {
	k = ((k % alphabetSize) + alphabetSize) % alphabetSize
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		sb.WriteRune(shiftRune(r, k))
	}
	return sb.String()
}

// Unshift is the exact inverse of Shift: Unshift(Shift(x, k), k) == x.
func Unshift(text string, k int) string {
	return Shift(text, -k)
}
