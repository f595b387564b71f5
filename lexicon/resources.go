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

// Package lexicon loads and caches per-language lexical resources:
// vocabulary, stopwords and character n-gram log-likelihood tables.
// A bundle is built once per language and never mutated afterwards, so
// concurrent readers need no locking.
package lexicon

import (
	"github.com/czcorpus/cnc-gokit/collections"
)

// Resources is an immutable per-language bundle consumed by the
// feature extractors and the scoring engine.
type Resources struct {
	Lang      string
	Vocab     *collections.Set[string]
	Stopwords *collections.Set[string]

	// Common holds a small hand-curated set of frequent words which
	// compensates for undersized wordlists on short inputs. It is kept
	// apart from Vocab: the general heuristic uses the base vocabulary
	// while dictionary matching uses the augmented view.
	Common *collections.Set[string]

	Bigrams  map[string]float64
	Trigrams map[string]float64
}

// InVocab tests a lowercase word against the base vocabulary.
func (r *Resources) InVocab(w string) bool {
	return r.Vocab != nil && r.Vocab.Contains(w)
}

// Augmented returns the vocabulary extended with the curated common
// words, as a read-only set view.
func (r *Resources) Augmented() *AugmentedVocab {
	return &AugmentedVocab{res: r}
}

// AugmentedVocab is a view over vocabulary + common words.
type AugmentedVocab struct {
	res *Resources
}

func (av *AugmentedVocab) Contains(w string) bool {
	return av.res.InVocab(w) || (av.res.Common != nil && av.res.Common.Contains(w))
}

func (av *AugmentedVocab) Size() int {
	var size int
	if av.res.Vocab != nil {
		size += av.res.Vocab.Size()
	}
	if av.res.Common != nil {
		size += av.res.Common.Size()
	}
	return size
}
