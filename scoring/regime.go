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

package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextShape classifies an input by size for the purpose of selecting
// heuristic weights. Longer texts trust vocabulary and n-gram signals
// more; single words and short texts trust letter frequency and
// pattern signals.
type TextShape int

const (
	ShapeSingleWord TextShape = iota
	ShapeShort
	ShapeLong
)

// ClassifyShape determines the text shape based on whitespace token
// count and rune length.
func ClassifyShape(text string, shortLimit int) TextShape {
	switch {
	case len(strings.Fields(text)) == 1:
		return ShapeSingleWord
	case utf8.RuneCountInString(text) < shortLimit:
		return ShapeShort
	default:
		return ShapeLong
	}
}

// HeurWeightsFor selects the heuristic weight vector for a shape.
func (p Params) HeurWeightsFor(shape TextShape) HeurWeights {
	switch shape {
	case ShapeSingleWord:
		return p.HeurSingleWord
	case ShapeShort:
		return p.HeurShortText
	default:
		return p.HeurLongText
	}
}

// Regime is the top-level branch of the final blend, selected once per
// candidate from the input shape and the vocabulary match ratio.
type Regime int

const (
	RegimeSingleWordDictMatch Regime = iota
	RegimeSingleWordNoMatch
	RegimeVocabHigh
	RegimeVocabMid
	RegimeVocabLow
	RegimeNoVocab
)

// classifyRegime implements the regime decision table, in priority
// order: single-token inputs first, then vocabulary match bands.
func (p Params) classifyRegime(singleWord, dictMatch bool, wordScore float64) Regime {
	if singleWord {
		if dictMatch {
			return RegimeSingleWordDictMatch
		}
		return RegimeSingleWordNoMatch
	}
	switch {
	case wordScore > p.VocabHighLimit:
		return RegimeVocabHigh
	case wordScore > p.VocabMidLimit:
		return RegimeVocabMid
	case wordScore > 0:
		return RegimeVocabLow
	default:
		return RegimeNoVocab
	}
}

// blendFor maps a multi-token regime to its blend weights.
func (p Params) blendFor(regime Regime) BlendWeights {
	switch regime {
	case RegimeVocabHigh:
		return p.BlendVocabHigh
	case RegimeVocabMid:
		return p.BlendVocabMid
	case RegimeVocabLow:
		return p.BlendVocabLow
	default:
		return p.BlendNoVocab
	}
}

// IsSingleToken reports whether the input is exactly one
// whitespace-delimited token consisting of word characters only.
// A trailing punctuation mark disqualifies the input - it is then
// treated as (very short) running text.
func IsSingleToken(text string) bool {
	fields := strings.Fields(text)
	if len(fields) != 1 || len(strings.TrimSpace(text)) != len(fields[0]) {
		return false
	}
	for _, r := range fields[0] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
