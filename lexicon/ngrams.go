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
	"math"
	"strings"
)

// NgramCounter accumulates n-gram counts from text chunks and turns
// them into a log-probability table. Windows are rune-based and do not
// cross chunk boundaries.
type NgramCounter struct {
	n      int
	counts map[string]int
	total  int
}

func NewNgramCounter(n int) *NgramCounter {
	return &NgramCounter{
		n:      n,
		counts: make(map[string]int),
	}
}

// Feed counts all overlapping n-rune windows of the lowercased text.
func (c *NgramCounter) Feed(text string) {
	runes := []rune(strings.ToLower(text))
	for i := 0; i+c.n <= len(runes); i++ {
		c.counts[string(runes[i:i+c.n])]++
		c.total++
	}
}

// Table returns the log-frequency table of everything fed so far.
// An empty counter yields an empty table.
func (c *NgramCounter) Table() map[string]float64 {
	table := make(map[string]float64, len(c.counts))
	if c.total == 0 {
		return table
	}
	for g, cnt := range c.counts {
		table[g] = math.Log(float64(cnt) / float64(c.total))
	}
	return table
}

// BuildNgramTable computes the n-gram log-frequency table of a single
// text in one step.
func BuildNgramTable(text string, n int) map[string]float64 {
	counter := NewNgramCounter(n)
	counter.Feed(text)
	return counter.Table()
}
