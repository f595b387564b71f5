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

// Package scoring ranks candidate decryptions by natural-language
// plausibility. No single feature is reliable across all input shapes,
// so the engine classifies each request into a regime and applies the
// regime's fixed weight vector over the extracted features.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/caesarus/cipher"
	"github.com/czcorpus/caesarus/feats"
	"github.com/czcorpus/caesarus/lexicon"
)

// naturalEntropy is the typical character entropy of natural-language
// letter sequences; the entropy signal scores closeness to this value.
const naturalEntropy = 4.0

// ScoredCandidate is a candidate decryption with its final score in
// (0, 1]. The score is never exactly zero.
type ScoredCandidate struct {
	Key       int     `json:"key"`
	Plaintext string  `json:"plaintext"`
	Score     float64 `json:"score"`
}

// Engine combines feature signals into one score per candidate.
type Engine struct {
	params Params
}

func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// HeuristicScore computes the general plausibility signal of a text:
// a weighted blend of vocabulary ratio, normalized stopword density,
// length-normalized n-gram likelihood, letter-frequency fit, digraph
// patterns and entropy, with weights selected by text shape. The
// result lies in [MinScore, 1].
func (e *Engine) HeuristicScore(text string, res *lexicon.Resources, profile feats.LetterProfile) float64 {
	lower := strings.ToLower(text)
	length := utf8.RuneCountInString(lower)
	if length == 0 {
		length = 1
	}
	wordCount := len(strings.Fields(lower))

	vr := feats.ValidWordRatio(lower, res.Vocab)
	var swNorm float64
	if wordCount > 0 {
		sw := feats.StopwordsCount(lower, res.Stopwords)
		swNorm = math.Min(float64(sw)/float64(wordCount), 1.0)
	}

	ngNorm := e.ngramSignal(lower, length, res)
	freqScore := feats.ChiSquaredLetterScore(lower, profile)

	var entScore float64
	if letters := feats.LettersOnly(lower); letters != "" {
		ent := feats.CharacterEntropy(letters)
		entScore = math.Max(0.0, 1.0-math.Abs(ent-naturalEntropy)/2.0)
	}

	patternScore := feats.PatternScore(lower)

	w := e.params.HeurWeightsFor(ClassifyShape(lower, e.params.ShortTextLimit))
	score := w.Freq*freqScore +
		w.Vocab*vr +
		w.Ngram*ngNorm +
		w.Stopword*swNorm +
		w.Pattern*patternScore +
		w.Entropy*entScore

	return math.Min(1.0, math.Max(e.params.MinScore, score))
}

// ngramSignal maps the raw n-gram log-likelihood to [0, 1] through a
// piecewise-linear curve over the per-window average. Trigrams are
// preferred; bigrams back them up for very short inputs or degraded
// resources. Typical good text averages around -3 to -5 per trigram,
// garbage -10 or worse.
func (e *Engine) ngramSignal(lower string, length int, res *lexicon.Resources) float64 {
	if len(res.Trigrams) > 0 && length >= 3 {
		avg := feats.NgramLikelihood(lower, res.Trigrams, 3) / float64(max(length-2, 1))
		switch {
		case avg > -3:
			return 1.0
		case avg > -10:
			return math.Max(0.0, 1.0+(avg+3)/7.0)
		default:
			return 0.0
		}
	}
	if len(res.Bigrams) > 0 && length >= 2 {
		avg := feats.NgramLikelihood(lower, res.Bigrams, 2) / float64(max(length-1, 1))
		switch {
		case avg > -2:
			return 1.0
		case avg > -8:
			return math.Max(0.0, 1.0+(avg+2)/6.0)
		default:
			return 0.0
		}
	}
	return 0.0
}

// Score computes the final score of one candidate plaintext in (0, 1].
// singleWord marks requests whose ciphertext was a single bare token;
// it is a property of the request, not of the candidate, so the caller
// determines it once.
func (e *Engine) Score(plaintext string, res *lexicon.Resources, profile feats.LetterProfile, singleWord bool) float64 {
	p := e.params
	hScore := e.HeuristicScore(plaintext, res, profile)
	wordScore := feats.ValidWordRatio(plaintext, res.Augmented())
	freqScore := feats.ChiSquaredLetterScore(plaintext, profile)
	dictMatch := singleWord &&
		res.Augmented().Contains(strings.ToLower(strings.TrimSpace(plaintext)))

	var score float64
	switch regime := p.classifyRegime(singleWord, dictMatch, wordScore); regime {
	case RegimeSingleWordDictMatch:
		// an exact dictionary hit wins; the frequency bonus keeps
		// multiple dictionary hits distinguishable
		score = p.SingleWordDictBase + freqScore*p.SingleWordDictFreqBonus
	case RegimeSingleWordNoMatch:
		score = freqScore*p.SingleWordFreq + hScore*p.SingleWordHeur
		if score < p.WeakSingleWordLimit {
			score *= p.WeakSingleWordPenalty
		}
	default:
		w := p.blendFor(regime)
		score = wordScore*w.Vocab + hScore*w.Heur + freqScore*w.Freq
	}
	return e.finalize(score)
}

// finalize applies the numeric safety policy: non-finite or negative
// values drop to MinScore, everything is floored at MinScore, rounded
// to 4 decimals and kept strictly above zero.
func (e *Engine) finalize(score float64) float64 {
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		score = e.params.MinScore
	}
	score = math.Max(e.params.MinScore, score)
	score = math.Round(score*10000) / 10000
	if score <= 0 {
		score = e.params.OutputFloor
	}
	return score
}

// ScoreAll scores all candidates sequentially. A panic while scoring
// one candidate is contained: the candidate stays in the output with
// the floor score so the ranking remains total.
func (e *Engine) ScoreAll(
	candidates []cipher.Candidate,
	res *lexicon.Resources,
	profile feats.LetterProfile,
	singleWord bool,
) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		scored = append(scored, e.scoreCandidate(cand, res, profile, singleWord))
	}
	return scored
}

func (e *Engine) scoreCandidate(
	cand cipher.Candidate,
	res *lexicon.Resources,
	profile feats.LetterProfile,
	singleWord bool,
) (ans ScoredCandidate) {
	ans = ScoredCandidate{
		Key:       cand.Key,
		Plaintext: cand.Plaintext,
		Score:     e.params.OutputFloor,
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Int("key", cand.Key).
				Any("panic", r).
				Msg("candidate scoring failed, using floor score")
		}
	}()
	ans.Score = e.Score(cand.Plaintext, res, profile, singleWord)
	return ans
}

// Evaluate runs the whole pipeline for one ciphertext: candidate
// generation, scoring and ranking. The returned slice holds all 26
// candidates, best first.
func (e *Engine) Evaluate(cipherText string, res *lexicon.Resources, profile feats.LetterProfile) []ScoredCandidate {
	candidates := cipher.BruteForce(cipherText)
	scored := e.ScoreAll(candidates, res, profile, IsSingleToken(cipherText))
	return Rank(scored)
}
