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

package apiserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/caesarus/cipher"
	"github.com/czcorpus/caesarus/cnf"
	"github.com/czcorpus/caesarus/lexicon"
	"github.com/czcorpus/caesarus/scoring"
)

func newTestServer(t *testing.T) *apiServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "words_en.txt"),
		[]byte("this\nis\na\nsecret\nmessage\n"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "sample_plain.txt"),
		[]byte("this is a secret message hidden in plain text\n"), 0644))
	return &apiServer{
		conf:    &cnf.Conf{DataDir: dir},
		loader:  lexicon.NewLoader(dir),
		engine:  scoring.NewEngine(scoring.DefaultParams()),
		version: VersionInfo{Version: "0.0.0-test"},
	}
}

func postAnalyze(t *testing.T, srv *apiServer, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(
		http.MethodPost, "/analyze", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	srv.handleAnalyze(ctx)
	return w
}

func TestAnalyzeRejectsEmptyCipherText(t *testing.T) {
	srv := newTestServer(t)
	for _, body := range []string{
		`{"cipherText": "", "lang": "en"}`,
		`{"cipherText": "   \t  ", "lang": "en"}`,
		`{"lang": "en"}`,
	} {
		w := postAnalyze(t, srv, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestAnalyzeReturnsRankedCandidates(t *testing.T) {
	srv := newTestServer(t)
	cipherText := cipher.Shift("this is a secret message", 7)
	w := postAnalyze(
		t, srv, `{"cipherText": "`+cipherText+`", "lang": "en"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp analysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Key)
	assert.Equal(t, "this is a secret message", resp.PlainText)
	assert.Greater(t, resp.Score, 0.0)
	assert.LessOrEqual(t, len(resp.Candidates), dfltNumCandidates)
	assert.NotEmpty(t, resp.Candidates)
	assert.Equal(t, resp.Key, resp.Candidates[0].Key)
}

func TestAnalyzeGETValidatesMaxCandidates(t *testing.T) {
	srv := newTestServer(t)
	for _, arg := range []string{"0", "40"} {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(
			http.MethodGet, "/analyze?q=abc&maxCandidates="+arg, nil)
		srv.handleAnalyzeGET(ctx)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/version", nil)
	srv.handleVersion(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "0.0.0-test", info.Version)
}
