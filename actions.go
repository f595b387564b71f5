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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/czcorpus/caesarus/cipher"
	"github.com/czcorpus/caesarus/cnf"
	"github.com/czcorpus/caesarus/feats"
	"github.com/czcorpus/caesarus/lexicon"
)

const (
	errColor = color.FgHiRed
)

func runActionCrack(conf *cnf.Conf, cipherText, lang string, top int) {
	cipherText = strings.TrimSpace(cipherText)
	if cipherText == "" {
		color.New(errColor).Fprintln(os.Stderr, "empty cipher text")
		os.Exit(exitErrorGeneralFailure)
	}
	lang = lexicon.NormalizeLang(lang)
	loader := lexicon.NewLoader(conf.DataDir)
	engine := newEngine(conf)

	ranked := engine.Evaluate(cipherText, loader.Get(lang), feats.GetLetterProfile(lang))
	best := ranked[0]

	titleColor := color.New(color.FgHiMagenta).SprintFunc()
	greenColor := color.New(color.FgGreen).SprintFunc()

	fmt.Printf("%s\n", titleColor("best candidate:"))
	fmt.Printf("  key:   %s\n", greenColor(best.Key))
	fmt.Printf("  score: %s\n", greenColor(fmt.Sprintf("%01.4f", best.Score)))
	fmt.Printf("  text:  %s\n\n", greenColor(best.Plaintext))

	fmt.Printf("%s\n", titleColor(fmt.Sprintf("top %d candidates:", top)))
	for i, cand := range ranked {
		if i >= top {
			break
		}
		fmt.Printf("  %2d. key=%2d score=%01.4f  %s\n", i+1, cand.Key, cand.Score, cand.Plaintext)
	}
	fmt.Printf(
		"\nfrequency analysis hint: key=%d (most frequent letter aligned with 'e')\n",
		cipher.BestKeyByFrequency(cipherText),
	)
}

func runActionTrain(conf *cnf.Conf, corpusPath, lang string) {
	lang = lexicon.NormalizeLang(lang)
	srcFile, err := os.Open(corpusPath)
	if err != nil {
		color.New(errColor).Fprintln(os.Stderr, err)
		os.Exit(exitErrorTrainFailed)
	}
	defer srcFile.Close()
	srcInfo, err := srcFile.Stat()
	if err != nil {
		color.New(errColor).Fprintln(os.Stderr, err)
		os.Exit(exitErrorTrainFailed)
	}

	bigrams := lexicon.NewNgramCounter(2)
	trigrams := lexicon.NewNgramCounter(3)
	bar := progressbar.DefaultBytes(srcInfo.Size(), "scanning corpus")
	scanner := bufio.NewScanner(srcFile)
	for scanner.Scan() {
		line := scanner.Text() + "\n"
		bigrams.Feed(line)
		trigrams.Feed(line)
		bar.Add(len(line))
	}
	if err := scanner.Err(); err != nil {
		color.New(errColor).Fprintln(os.Stderr, err)
		os.Exit(exitErrorTrainFailed)
	}
	bar.Finish()

	model := lexicon.NgramModel{
		Lang:     lang,
		Bigrams:  bigrams.Table(),
		Trigrams: trigrams.Table(),
	}
	dstPath := filepath.Join(conf.DataDir, fmt.Sprintf("ngrams_%s.mpk", lang))
	if err := model.SaveToFile(dstPath); err != nil {
		color.New(errColor).Fprintln(os.Stderr, err)
		os.Exit(exitErrorTrainFailed)
	}
	fmt.Printf(
		"model saved to %s (%d bigrams, %d trigrams)\n",
		dstPath, len(model.Bigrams), len(model.Trigrams),
	)
}
