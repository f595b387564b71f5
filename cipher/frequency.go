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

package cipher

import "unicode"

// LetterFrequency returns relative frequencies of the letters of text
// (uppercased), ignoring non-alphabetic characters. An input without
// letters yields an empty map.
func LetterFrequency(text string) map[rune]float64 {
	counts := make(map[rune]int)
	var total int
	for _, r := range text {
		if unicode.IsLetter(r) {
			counts[unicode.ToUpper(r)]++
			total++
		}
	}
	freqs := make(map[rune]float64, len(counts))
	if total == 0 {
		return freqs
	}
	for r, c := range counts {
		freqs[r] = float64(c) / float64(total)
	}
	return freqs
}

// BestKeyByFrequency proposes a candidate key by aligning the most
// frequent letter of the ciphertext with 'E', the most frequent letter
// in both English and French. This is only a quick single-guess
// heuristic; the scoring pipeline evaluates all 26 keys properly.
func BestKeyByFrequency(ciphertext string) int {
	freqs := LetterFrequency(ciphertext)
	if len(freqs) == 0 {
		return 0
	}
	var best rune
	bestFreq := -1.0
	for r, f := range freqs {
		// ties resolved towards the alphabetically smaller letter
		// to keep the guess deterministic
		if f > bestFreq || (f == bestFreq && r < best) {
			best = r
			bestFreq = f
		}
	}
	return (int(best-'E') + alphabetSize) % alphabetSize
}
