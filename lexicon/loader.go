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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/caesarus/feats"
)

// NormalizeLang maps any requested language to a supported one.
// Anything other than "en" or "fr" (including "auto" and an empty
// value) falls back to English.
func NormalizeLang(lang string) string {
	switch lang {
	case "en", "fr":
		return lang
	default:
		return "en"
	}
}

// Loader builds and memoizes per-language resource bundles. A bundle
// is built at most once per process; once published it is read-only.
type Loader struct {
	dataDir string
	mu      sync.Mutex
	cache   map[string]*Resources
}

func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir: dataDir,
		cache:   make(map[string]*Resources),
	}
}

// Get returns the resource bundle for a (normalized) language,
// building it on first use. Missing or unreadable source files degrade
// to empty sets/tables - the bundle is always usable, just weaker.
func (l *Loader) Get(lang string) *Resources {
	lang = NormalizeLang(lang)
	l.mu.Lock()
	defer l.mu.Unlock()
	if res, ok := l.cache[lang]; ok {
		return res
	}
	res := l.build(lang)
	l.cache[lang] = res
	return res
}

// Preload builds bundles for all supported languages eagerly, keeping
// the first requests off the file system.
func (l *Loader) Preload() {
	for _, lang := range []string{"en", "fr"} {
		l.Get(lang)
		log.Info().Str("lang", lang).Msg("preloaded lexical resources")
	}
}

func (l *Loader) build(lang string) *Resources {
	res := &Resources{
		Lang:      lang,
		Vocab:     loadWordlist(filepath.Join(l.dataDir, fmt.Sprintf("words_%s.txt", lang))),
		Stopwords: loadWordlist(filepath.Join(l.dataDir, fmt.Sprintf("stopwords_%s.txt", lang))),
		Common:    collections.NewSet(commonWordsFor(lang)...),
		Bigrams:   make(map[string]float64),
		Trigrams:  make(map[string]float64),
	}

	var haveModel bool
	modelPath := filepath.Join(l.dataDir, fmt.Sprintf("ngrams_%s.mpk", lang))
	if isFile, _ := fs.IsFile(modelPath); isFile {
		model, err := LoadNgramModel(modelPath)
		if err == nil {
			res.Bigrams = model.Bigrams
			res.Trigrams = model.Trigrams
			haveModel = true

		} else {
			log.Warn().Err(err).Str("path", modelPath).
				Msg("failed to load n-gram model, falling back to corpus")
		}
	}

	corpus, err := l.readCorpus(lang)
	if err != nil {
		if !haveModel {
			log.Warn().Err(err).Str("lang", lang).
				Msg("no usable corpus, n-gram scoring disabled for the language")
		}
		return res
	}
	if !haveModel {
		res.Bigrams = BuildNgramTable(corpus, 2)
		res.Trigrams = BuildNgramTable(corpus, 3)
	}

	// augment the vocabulary with corpus tokens to increase the chance
	// of matching short common words absent from small wordlists. This
	// applies even with a precomputed n-gram model - the model replaces
	// only the tables, never the dictionary.
	for _, w := range feats.Tokenize(corpus) {
		res.Vocab.Add(w)
	}
	return res
}

// readCorpus returns the content of the first existing sample corpus
// for the language (a per-language file, or the shared one).
func (l *Loader) readCorpus(lang string) (string, error) {
	candidates := []string{
		filepath.Join(l.dataDir, fmt.Sprintf("corpus_%s.txt", lang)),
		filepath.Join(l.dataDir, "sample_plain.txt"),
	}
	for _, path := range candidates {
		if isFile, _ := fs.IsFile(path); !isFile {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read corpus %s: %w", path, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no corpus file found for language %s", lang)
}

// loadWordlist reads a one-word-per-line file into a lowercase set.
// A missing file yields an empty set.
func loadWordlist(path string) *collections.Set[string] {
	ans := collections.NewSet[string]()
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to open wordlist")
		return ans
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w != "" {
			ans.Add(w)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to read wordlist")
	}
	return ans
}
