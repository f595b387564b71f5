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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSingleToken(t *testing.T) {
	assert.True(t, IsSingleToken("hello"))
	assert.True(t, IsSingleToken("  hello  "))
	assert.True(t, IsSingleToken("héllo"))
	assert.True(t, IsSingleToken("abc123"))
	assert.True(t, IsSingleToken("foo_bar"))
	assert.False(t, IsSingleToken("hello world"))
	assert.False(t, IsSingleToken("hello!"))
	assert.False(t, IsSingleToken(""))
	assert.False(t, IsSingleToken("   "))
}

func TestClassifyShape(t *testing.T) {
	limit := DefaultParams().ShortTextLimit
	assert.Equal(t, ShapeSingleWord, ClassifyShape("word", limit))
	assert.Equal(t, ShapeShort, ClassifyShape("two words", limit))
	assert.Equal(t, ShapeLong, ClassifyShape(
		"a sentence clearly longer than thirty characters in total", limit))
}

func TestClassifyRegimeDecisionTable(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name       string
		singleWord bool
		dictMatch  bool
		wordScore  float64
		expected   Regime
	}{
		{"single word in dictionary", true, true, 1.0, RegimeSingleWordDictMatch},
		{"single word missed", true, false, 0.0, RegimeSingleWordNoMatch},
		{"single word wins over vocab bands", true, false, 0.9, RegimeSingleWordNoMatch},
		{"high vocabulary match", false, false, 0.8, RegimeVocabHigh},
		{"mid vocabulary match", false, false, 0.5, RegimeVocabMid},
		{"low vocabulary match", false, false, 0.2, RegimeVocabLow},
		{"no vocabulary match", false, false, 0.0, RegimeNoVocab},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				p.classifyRegime(tt.singleWord, tt.dictMatch, tt.wordScore))
		})
	}
}

func TestHeurWeightsFor(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, p.HeurSingleWord, p.HeurWeightsFor(ShapeSingleWord))
	assert.Equal(t, p.HeurShortText, p.HeurWeightsFor(ShapeShort))
	assert.Equal(t, p.HeurLongText, p.HeurWeightsFor(ShapeLong))
}
