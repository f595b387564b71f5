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
	"unicode/utf8"
)

// patternLengthDivisor scales the expected number of matched patterns
// with the text length.
const patternLengthDivisor = 20.0

// commonPatterns are short letter sequences typical of English and
// French text.
var commonPatterns = []string{
	"th", "he", "in", "er", "an", "re", "ed", "nd", "ou", "to",
	"en", "at", "it", "is", "or", "ti", "as", "of", "st", "le",
	"de", "et", "la", "un", "es", "nt", "on", "te",
}

// PatternScore measures how many of the common digraphs occur in the
// lowercased text at least once, normalized by text length and clamped
// to [0, 1].
func PatternScore(text string) float64 {
	lower := strings.ToLower(text)
	length := utf8.RuneCountInString(lower)
	if length == 0 {
		return 0.0
	}
	var count int
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			count++
		}
	}
	return math.Min(1.0, float64(count)/math.Max(float64(length)/patternLengthDivisor, 1.0))
}
