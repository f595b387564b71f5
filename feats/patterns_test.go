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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternScoreEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, PatternScore(""))
}

func TestPatternScoreNaturalTextBeatsGibberish(t *testing.T) {
	natural := PatternScore("the rain in spain stays mainly on the plain")
	gibberish := PatternScore("zxq wvk jqx pzv bqk mxz")
	assert.Greater(t, natural, gibberish)
}

func TestPatternScoreClamped(t *testing.T) {
	// a short text packed with common digraphs must not exceed 1.0
	score := PatternScore("then there")
	assert.LessOrEqual(t, score, 1.0)
	assert.Greater(t, score, 0.0)
}
