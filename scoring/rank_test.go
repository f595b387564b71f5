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

func TestRankSortsByScoreDescending(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		{Key: 0, Score: 0.2},
		{Key: 1, Score: 0.9},
		{Key: 2, Score: 0.5},
	})
	assert.Equal(t, []int{1, 2, 0}, []int{ranked[0].Key, ranked[1].Key, ranked[2].Key})
}

func TestRankIsStableOnEqualScores(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		{Key: 0, Score: 0.5},
		{Key: 1, Score: 0.7},
		{Key: 2, Score: 0.5},
		{Key: 3, Score: 0.5},
	})
	// equal scores keep ascending key order
	assert.Equal(t, []int{1, 0, 2, 3}, []int{
		ranked[0].Key, ranked[1].Key, ranked[2].Key, ranked[3].Key})
}

func TestRankDoesNotMutateInput(t *testing.T) {
	orig := []ScoredCandidate{
		{Key: 0, Score: 0.1},
		{Key: 1, Score: 0.9},
	}
	Rank(orig)
	assert.Equal(t, 0, orig[0].Key)
}

func TestTopN(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		{Key: 0, Score: 0.1},
		{Key: 1, Score: 0.9},
		{Key: 2, Score: 0.5},
	})
	assert.Equal(t, 2, len(TopN(ranked, 2)))
	// never padded beyond what exists
	assert.Equal(t, 3, len(TopN(ranked, 5)))
	assert.Empty(t, TopN(nil, 5))
}
