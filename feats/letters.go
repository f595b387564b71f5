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

package feats

import (
	"math"
	"strings"
	"unicode"
)

// MinLetterScore is the lower clamp of the letter-frequency score;
// keeping it above zero prevents a single bad signal from zeroing out
// an otherwise decent candidate in multiplicative contexts.
const MinLetterScore = 0.01

// unexpectedLetterPenalty is added to the chi-squared statistic per
// occurrence of a letter the language profile gives (near) zero
// probability - e.g. accented letters in English text.
const unexpectedLetterPenalty = 10.0

// LetterProfile maps lowercase letters to their relative frequency in
// a language. Profiles do not have to sum exactly to 1.
type LetterProfile map[rune]float64

var enLetterProbs = LetterProfile{
	'a': 0.08167, 'b': 0.01492, 'c': 0.02782, 'd': 0.04253, 'e': 0.12702,
	'f': 0.02228, 'g': 0.02015, 'h': 0.06094, 'i': 0.06966, 'j': 0.00153,
	'k': 0.00772, 'l': 0.04025, 'm': 0.02406, 'n': 0.06749, 'o': 0.07507,
	'p': 0.01929, 'q': 0.00095, 'r': 0.05987, 's': 0.06327, 't': 0.09056,
	'u': 0.02758, 'v': 0.00978, 'w': 0.02360, 'x': 0.00150, 'y': 0.01974,
	'z': 0.00074,
}

var frLetterProbs = LetterProfile{
	'a': 0.07636, 'b': 0.00901, 'c': 0.03260, 'd': 0.03669, 'e': 0.14715,
	'f': 0.01066, 'g': 0.00866, 'h': 0.00737, 'i': 0.07529, 'j': 0.00613,
	'k': 0.00049, 'l': 0.05456, 'm': 0.02968, 'n': 0.07110, 'o': 0.05796,
	'p': 0.02521, 'q': 0.01362, 'r': 0.06693, 's': 0.07948, 't': 0.07244,
	'u': 0.06311, 'v': 0.01629, 'w': 0.00074, 'x': 0.00427, 'y': 0.00128,
	'z': 0.00326,
}

// GetLetterProfile returns the letter frequency profile for a language
// code. Unknown languages fall back to English.
func GetLetterProfile(lang string) LetterProfile {
	if lang == "fr" {
		return frLetterProbs
	}
	return enLetterProbs
}

// ChiSquaredLetterScore measures how closely the letter distribution of
// text matches the expected profile, mapped to (0, 1] where higher
// means a better fit. The Pearson chi-squared statistic is computed
// over the union of observed and expected letters, normalized by the
// degrees of freedom and piecewise-mapped to a score. Letters outside
// the profile contribute a flat per-occurrence penalty instead of a
// chi-squared term. Text without letters yields MinLetterScore.
func ChiSquaredLetterScore(text string, expected LetterProfile) float64 {
	counts := make(map[rune]int)
	var n int
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			counts[r]++
			n++
		}
	}
	if n == 0 {
		return MinLetterScore
	}

	union := make(map[rune]bool)
	for r := range counts {
		union[r] = true
	}
	for r := range expected {
		union[r] = true
	}

	var chi2 float64
	for r := range union {
		observed := float64(counts[r])
		expCount := expected[r] * float64(n)
		if expCount > 0.01 {
			chi2 += (observed - expCount) * (observed - expCount) / expCount
		} else if observed > 0 {
			chi2 += observed * unexpectedLetterPenalty
		}
	}

	// a good fit has chi2 per degree of freedom around 1
	norm := chi2 / float64(max(len(union)-1, 1))

	var score float64
	switch {
	case norm < 1:
		score = 1.0
	case norm < 50:
		score = math.Exp(-norm / 10.0)
	default:
		score = 1.0 / (1.0 + norm/100.0)
	}
	return math.Max(MinLetterScore, math.Min(1.0, score))
}
