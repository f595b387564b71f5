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

// curated common words per language; these back up small or missing
// wordlists so that short inputs still have a chance of a dictionary
// match

var enCommonWords = []string{
	"the", "and", "is", "to", "of", "you", "hello", "that", "in", "it",
	"dog", "cat", "this", "message", "secret", "word", "text", "code",
}

var frCommonWords = []string{
	"le", "la", "et", "de", "un", "bonjour", "je", "tu", "il", "elle",
	"nous", "vous", "message", "secret", "mot", "texte", "code",
}

func commonWordsFor(lang string) []string {
	if lang == "fr" {
		return frCommonWords
	}
	return enCommonWords
}
