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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/caesarus/cnf"
	"github.com/czcorpus/caesarus/feats"
	"github.com/czcorpus/caesarus/lexicon"
	"github.com/czcorpus/caesarus/scoring"
)

const maxSuggestionDistance = 2

func ensureConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "caesarus")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

// suggestNearMiss finds the vocabulary word closest to w, if any lies
// within maxSuggestionDistance edits. Useful for spotting almost-right
// decryptions of misspelled input.
func suggestNearMiss(w string, res *lexicon.Resources) string {
	var best string
	bestDist := maxSuggestionDistance + 1
	for _, cand := range res.Vocab.ToSlice() {
		if d := levenshtein.ComputeDistance(w, cand); d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}

func runActionREPL(conf *cnf.Conf) {
	loader := lexicon.NewLoader(conf.DataDir)
	engine := newEngine(conf)

	titleColor := color.New(color.FgHiMagenta).SprintFunc()
	greenColor := color.New(color.FgGreen).SprintFunc()
	yellowColor := color.New(color.FgYellow).SprintFunc()

	lang := "en"

	fmt.Println("Caesarus - Caesar cipher cracker")
	fmt.Println("Commands:")
	fmt.Println("  <ciphertext>      - Crack a Caesar-enciphered text")
	fmt.Println("  set lang <lang>   - Set expected plaintext language (en|fr)")
	fmt.Println("  setup             - View current settings")
	fmt.Println("  exit              - Exit REPL")
	fmt.Println()

	var historyFile string
	historyDir, err := ensureConfigDir()
	if err != nil {
		log.Error().Err(err).Msg("failed to determine user config directory - falling back to session-local history")

	} else {
		historyFile = filepath.Join(historyDir, "caesarus-history.txt")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      color.New(color.FgHiGreen).Sprintf("/caesar> "),
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Printf("Error initializing readline: %v\n", err)
		os.Exit(exitErrorREPLReading)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("\nCaesarus out!")
				break
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}
		input := strings.TrimSpace(line)

		if input == "" {
			continue
		}
		if input == "exit" {
			fmt.Println("Goodbye!")
			break
		}
		if input == "setup" {
			fmt.Printf("lang: %s\n", lang)
			continue
		}
		if strings.HasPrefix(input, "set ") {
			parsedInput := strings.Fields(input)[1:]
			if len(parsedInput) == 2 && parsedInput[0] == "lang" {
				lang = lexicon.NormalizeLang(parsedInput[1])
				fmt.Printf("lang set to %s\n", lang)

			} else {
				fmt.Println("Error: Unknown setting")
			}
			continue
		}

		res := loader.Get(lang)
		ranked := engine.Evaluate(input, res, feats.GetLetterProfile(lang))
		best := ranked[0]

		fmt.Printf("%s key=%d score=%01.4f\n", titleColor("best:"), best.Key, best.Score)
		fmt.Printf("%s\n\n", greenColor(best.Plaintext))
		for i, cand := range scoring.TopN(ranked, 5) {
			fmt.Printf("  %d. key=%2d score=%01.4f  %s\n", i+1, cand.Key, cand.Score, cand.Plaintext)
		}

		augmented := res.Augmented()
		for _, w := range feats.Tokenize(best.Plaintext) {
			if augmented.Contains(w) {
				continue
			}
			if sugg := suggestNearMiss(w, res); sugg != "" {
				fmt.Printf("  %s %s -> %s\n", yellowColor("near miss:"), w, sugg)
			}
		}
		fmt.Println()
	}
}
