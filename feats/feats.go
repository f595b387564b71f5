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

// Package feats provides the individual plausibility signals the
// scoring engine combines - vocabulary matching, stopword counting,
// n-gram log-likelihood, character entropy, letter-frequency fit and
// digraph pattern density. All functions here are pure.
package feats

import (
	"math"
	"strings"
	"unicode"
)

// UnknownNgramLogProb is the log-probability assigned to any n-gram
// absent from the table. Unseen n-grams mean "very unlikely", never
// "unknown/neutral".
const UnknownNgramLogProb = -15.0

// unanimousVocabBonus rewards a candidate where every single token is
// a dictionary word over one carried by one lucky match.
const unanimousVocabBonus = 0.05

// Wordset is the read-only view of a vocabulary or stopword set.
type Wordset interface {
	Contains(w string) bool
	Size() int
}

// Tokenize splits text into maximal runs of letters, lowercased.
// Word boundaries are defined by any non-letter character.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// ValidWordRatio returns the fraction of tokens of text present in the
// vocabulary. If every token matches (and there is at least one), a
// small bonus is added, capped at 1.0. An empty vocabulary or a text
// without tokens yields 0.
func ValidWordRatio(text string, vocab Wordset) float64 {
	if vocab == nil || vocab.Size() == 0 {
		return 0.0
	}
	words := Tokenize(text)
	if len(words) == 0 {
		return 0.0
	}
	var valid int
	for _, w := range words {
		if vocab.Contains(w) {
			valid++
		}
	}
	ratio := float64(valid) / float64(len(words))
	if ratio == 1.0 {
		return math.Min(1.0, ratio+unanimousVocabBonus)
	}
	return ratio
}

// StopwordsCount returns the absolute number of tokens of text present
// in the stopword set. The caller normalizes by token count.
func StopwordsCount(text string, stopwords Wordset) int {
	if stopwords == nil || stopwords.Size() == 0 {
		return 0
	}
	var count int
	for _, w := range Tokenize(text) {
		if stopwords.Contains(w) {
			count++
		}
	}
	return count
}

// NgramLikelihood sums the log-probabilities of all overlapping
// n-character windows of the lowercased text. Windows are rune-based so
// accented characters count as one position.
func NgramLikelihood(text string, table map[string]float64, n int) float64 {
	runes := []rune(strings.ToLower(text))
	var score float64
	for i := 0; i+n <= len(runes); i++ {
		if p, ok := table[string(runes[i:i+n])]; ok {
			score += p
		} else {
			score += UnknownNgramLogProb
		}
	}
	return score
}

// CharacterEntropy computes the Shannon entropy (base 2) of the rune
// distribution of text. Callers restrict the input to letters when the
// entropy should reflect letter distribution specifically.
func CharacterEntropy(text string) float64 {
	counts := make(map[rune]int)
	var total int
	for _, r := range text {
		counts[r]++
		total++
	}
	if total == 0 {
		return 0.0
	}
	var entropy float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// LettersOnly strips all non-letter runes from text.
func LettersOnly(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
