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
	"encoding/json"
	"fmt"
	"os"
)

// BlendWeights combines the three request-level signals (vocabulary
// match ratio, general heuristic score, letter-frequency score) into a
// final candidate score.
type BlendWeights struct {
	Vocab float64 `json:"vocab"`
	Heur  float64 `json:"heur"`
	Freq  float64 `json:"freq"`
}

// HeurWeights parameterizes the general heuristic blend for one text
// shape. Signals a shape does not trust simply carry zero weight.
type HeurWeights struct {
	Freq     float64 `json:"freq"`
	Vocab    float64 `json:"vocab"`
	Ngram    float64 `json:"ngram"`
	Stopword float64 `json:"stopword"`
	Pattern  float64 `json:"pattern"`
	Entropy  float64 `json:"entropy"`
}

// Params holds every tuned weight, threshold and floor of the scoring
// engine. The values are empirically tuned, not derived from a model;
// they are kept as data so they can be overridden from a file, but the
// defaults reproduce the tuned behavior exactly.
type Params struct {
	// single-token regime
	SingleWordDictBase      float64 `json:"singleWordDictBase"`
	SingleWordDictFreqBonus float64 `json:"singleWordDictFreqBonus"`
	SingleWordFreq          float64 `json:"singleWordFreq"`
	SingleWordHeur          float64 `json:"singleWordHeur"`
	WeakSingleWordLimit     float64 `json:"weakSingleWordLimit"`
	WeakSingleWordPenalty   float64 `json:"weakSingleWordPenalty"`

	// multi-token regime thresholds and blends
	VocabHighLimit float64      `json:"vocabHighLimit"`
	VocabMidLimit  float64      `json:"vocabMidLimit"`
	BlendVocabHigh BlendWeights `json:"blendVocabHigh"`
	BlendVocabMid  BlendWeights `json:"blendVocabMid"`
	BlendVocabLow  BlendWeights `json:"blendVocabLow"`
	BlendNoVocab   BlendWeights `json:"blendNoVocab"`

	// general heuristic, per text shape
	ShortTextLimit int         `json:"shortTextLimit"`
	HeurSingleWord HeurWeights `json:"heurSingleWord"`
	HeurShortText  HeurWeights `json:"heurShortText"`
	HeurLongText   HeurWeights `json:"heurLongText"`

	// numeric safety floors; MinScore applies during computation,
	// OutputFloor replaces anything that would display as zero
	MinScore    float64 `json:"minScore"`
	OutputFloor float64 `json:"outputFloor"`
}

// DefaultParams returns the tuned scoring parameters.
func DefaultParams() Params {
	return Params{
		SingleWordDictBase:      0.95,
		SingleWordDictFreqBonus: 0.05,
		SingleWordFreq:          0.65,
		SingleWordHeur:          0.35,
		WeakSingleWordLimit:     0.2,
		WeakSingleWordPenalty:   0.3,

		VocabHighLimit: 0.7,
		VocabMidLimit:  0.4,
		BlendVocabHigh: BlendWeights{Vocab: 0.55, Heur: 0.30, Freq: 0.15},
		BlendVocabMid:  BlendWeights{Vocab: 0.45, Heur: 0.35, Freq: 0.20},
		BlendVocabLow:  BlendWeights{Vocab: 0.30, Heur: 0.40, Freq: 0.30},
		BlendNoVocab:   BlendWeights{Vocab: 0, Heur: 0.45, Freq: 0.55},

		ShortTextLimit: 30,
		HeurSingleWord: HeurWeights{Freq: 0.50, Vocab: 0.30, Pattern: 0.15, Entropy: 0.05},
		HeurShortText:  HeurWeights{Freq: 0.35, Vocab: 0.30, Ngram: 0.20, Stopword: 0.10, Entropy: 0.05},
		HeurLongText:   HeurWeights{Vocab: 0.40, Ngram: 0.30, Freq: 0.15, Stopword: 0.10, Entropy: 0.05},

		MinScore:    0.01,
		OutputFloor: 0.0001,
	}
}

// SaveToFile writes the parameters to a JSON file.
func (p Params) SaveToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(p); err != nil {
		return fmt.Errorf("failed to encode scoring params: %w", err)
	}
	return nil
}

// LoadParamsFromFile loads scoring parameters from a JSON file.
func LoadParamsFromFile(path string) (Params, error) {
	file, err := os.Open(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var params Params
	if err := json.NewDecoder(file).Decode(&params); err != nil {
		return Params{}, fmt.Errorf("failed to decode scoring params: %w", err)
	}
	return params, nil
}
