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

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/caesarus/cipher"
	"github.com/czcorpus/caesarus/feats"
	"github.com/czcorpus/caesarus/lexicon"
)

const testSample = "this is a sample of plain english text with some common words " +
	"and a secret message hidden inside the sentence for testing"

func testResources() *lexicon.Resources {
	return &lexicon.Resources{
		Lang:      "en",
		Vocab:     collections.NewSet(feats.Tokenize(testSample)...),
		Stopwords: collections.NewSet("this", "is", "a", "the", "of", "and", "with", "for"),
		Common:    collections.NewSet("the", "and", "is", "to", "of", "hello"),
		Bigrams:   lexicon.BuildNgramTable(testSample, 2),
		Trigrams:  lexicon.BuildNgramTable(testSample, 3),
	}
}

func emptyResources() *lexicon.Resources {
	return &lexicon.Resources{
		Lang:      "en",
		Vocab:     collections.NewSet[string](),
		Stopwords: collections.NewSet[string](),
		Common:    collections.NewSet[string](),
		Bigrams:   map[string]float64{},
		Trigrams:  map[string]float64{},
	}
}

func TestEvaluateRecoversKey(t *testing.T) {
	engine := NewEngine(DefaultParams())
	plain := "This is a secret message"
	ranked := engine.Evaluate(
		cipher.Shift(plain, 7), testResources(), feats.GetLetterProfile("en"))

	assert.Equal(t, cipher.NumKeys, len(ranked))
	assert.Equal(t, 7, ranked[0].Key)
	assert.Equal(t, plain, ranked[0].Plaintext)
}

func TestEvaluateScoresAlwaysPositive(t *testing.T) {
	engine := NewEngine(DefaultParams())
	profile := feats.GetLetterProfile("en")
	inputs := []string{
		"Mjqqt, btwqi! 123.",
		"zzz",
		"a",
		"The input may already be plain text",
	}
	for _, input := range inputs {
		for _, res := range []*lexicon.Resources{testResources(), emptyResources()} {
			for _, cand := range engine.Evaluate(input, res, profile) {
				assert.Greater(t, cand.Score, 0.0)
				assert.LessOrEqual(t, cand.Score, 1.0)
			}
		}
	}
}

func TestSingleWordDictMatchGetsBaseScore(t *testing.T) {
	engine := NewEngine(DefaultParams())
	ranked := engine.Evaluate(
		cipher.Shift("secret", 3), testResources(), feats.GetLetterProfile("en"))

	assert.Equal(t, 3, ranked[0].Key)
	assert.Equal(t, "secret", ranked[0].Plaintext)
	assert.GreaterOrEqual(t, ranked[0].Score, 0.95)
}

func TestSingleWordCuratedCommonWordMatches(t *testing.T) {
	// "hello" comes from the curated set, not the wordlist
	engine := NewEngine(DefaultParams())
	ranked := engine.Evaluate(
		cipher.Shift("hello", 11), testResources(), feats.GetLetterProfile("en"))

	assert.Equal(t, 11, ranked[0].Key)
	assert.GreaterOrEqual(t, ranked[0].Score, 0.95)
}

func TestHeuristicScoreRange(t *testing.T) {
	engine := NewEngine(DefaultParams())
	res := testResources()
	profile := feats.GetLetterProfile("en")
	for _, text := range []string{"", "a", "zzzz", testSample} {
		score := engine.HeuristicScore(text, res, profile)
		assert.GreaterOrEqual(t, score, DefaultParams().MinScore)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestHeuristicPrefersNaturalText(t *testing.T) {
	engine := NewEngine(DefaultParams())
	res := testResources()
	profile := feats.GetLetterProfile("en")
	natural := engine.HeuristicScore("this is a secret message", res, profile)
	garbled := engine.HeuristicScore("aopz pz h zljyla tlzzhnl", res, profile)
	assert.Greater(t, natural, garbled)
}

func TestScoreAllRecoversFromPanickingCandidate(t *testing.T) {
	engine := NewEngine(DefaultParams())
	candidates := cipher.BruteForce("some text")
	// nil resources make every candidate's scoring panic; each one must
	// still appear in the output with the floor score
	scored := engine.ScoreAll(candidates, nil, feats.GetLetterProfile("en"), false)

	assert.Equal(t, cipher.NumKeys, len(scored))
	for i, cand := range scored {
		assert.Equal(t, i, cand.Key)
		assert.Equal(t, DefaultParams().OutputFloor, cand.Score)
	}
}

func TestAlreadyPlainInputKeepsKeyZeroCompetitive(t *testing.T) {
	engine := NewEngine(DefaultParams())
	ranked := engine.Evaluate(
		"this is a secret message", testResources(), feats.GetLetterProfile("en"))
	assert.Equal(t, 0, ranked[0].Key)
}
