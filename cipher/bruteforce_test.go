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

package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBruteForceProducesAllKeysAscending(t *testing.T) {
	candidates := BruteForce("Aopz pz h zljyla tlzzhnl")
	assert.Equal(t, NumKeys, len(candidates))
	for i, cand := range candidates {
		assert.Equal(t, i, cand.Key)
	}
}

func TestBruteForceEmptyInput(t *testing.T) {
	candidates := BruteForce("")
	assert.Equal(t, NumKeys, len(candidates))
	for i, cand := range candidates {
		assert.Equal(t, i, cand.Key)
		assert.Equal(t, "", cand.Plaintext)
	}
}

func TestBruteForceContainsOriginal(t *testing.T) {
	plain := "This is a secret message"
	ciphertext := Shift(plain, 7)
	candidates := BruteForce(ciphertext)
	assert.Equal(t, plain, candidates[7].Plaintext)
	// key 0 keeps the ciphertext itself as a candidate
	assert.Equal(t, ciphertext, candidates[0].Plaintext)
}
