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

package lexicon

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// NgramModel is a precomputed pair of n-gram tables as written by the
// `train` action. The loader prefers such a model over recomputing the
// tables from a raw corpus at every startup.
type NgramModel struct {
	Lang     string             `msgpack:"lang"`
	Bigrams  map[string]float64 `msgpack:"bigrams"`
	Trigrams map[string]float64 `msgpack:"trigrams"`
}

// SaveToFile serializes the model with msgpack.
func (m NgramModel) SaveToFile(path string) error {
	srz, err := msgpack.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize n-gram model: %w", err)
	}
	if err := os.WriteFile(path, srz, 0644); err != nil {
		return fmt.Errorf("failed to save n-gram model: %w", err)
	}
	return nil
}

// LoadNgramModel reads a msgpack-serialized model from path.
func LoadNgramModel(path string) (NgramModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NgramModel{}, fmt.Errorf("failed to read n-gram model: %w", err)
	}
	var model NgramModel
	if err := msgpack.Unmarshal(data, &model); err != nil {
		return NgramModel{}, fmt.Errorf("failed to decode n-gram model: %w", err)
	}
	return model, nil
}
