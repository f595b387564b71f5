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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	orig := DefaultParams()
	require.NoError(t, orig.SaveToFile(path))

	loaded, err := LoadParamsFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestLoadParamsMissingFile(t *testing.T) {
	_, err := LoadParamsFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDefaultFloorsAreDistinct(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 0.01, p.MinScore)
	assert.Equal(t, 0.0001, p.OutputFloor)
}
