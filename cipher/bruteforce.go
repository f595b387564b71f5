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

// NumKeys is the number of possible Caesar keys (and thus candidates).
const NumKeys = 26

// Candidate is one possible decryption of a ciphertext.
type Candidate struct {
	Key       int
	Plaintext string
}

// BruteForce produces all 26 candidate decryptions of ciphertext with
// keys 0..25 in ascending order. Key 0 (identity) is included so that
// an already-plain input is still a valid candidate.
func BruteForce(ciphertext string) []Candidate {
	candidates := make([]Candidate, 0, NumKeys)
	for k := 0; k < NumKeys; k++ {
		candidates = append(candidates, Candidate{
			Key:       k,
			Plaintext: Unshift(ciphertext, k),
		})
	}
	return candidates
}
