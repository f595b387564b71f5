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
	"fmt"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"github.com/czcorpus/caesarus/cipher"
	"github.com/czcorpus/caesarus/feats"
	"github.com/czcorpus/caesarus/lexicon"
	"github.com/czcorpus/caesarus/scoring"
)

const (
	// dfltNumCandidates is how many top candidates a response carries
	dfltNumCandidates = 5

	// maxTextExcerpt limits cipher/plaintext echo in responses
	maxTextExcerpt = 500
)

func (api *apiServer) handleVersion(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, api.version)
}

func (api *apiServer) handleAnalyze(ctx *gin.Context) {
	var req analyzeRequest
	if err := ctx.BindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest,
		)
		return
	}
	api.analyze(ctx, req.CipherText, req.Lang, dfltNumCandidates)
}

func (api *apiServer) handleAnalyzeGET(ctx *gin.Context) {
	numCandidates, ok := unireq.GetURLIntArgOrFail(ctx, "maxCandidates", dfltNumCandidates)
	if !ok {
		return
	}
	if numCandidates < 1 || numCandidates > cipher.NumKeys {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("maxCandidates must be between 1 and %d", cipher.NumKeys),
			http.StatusBadRequest,
		)
		return
	}
	api.analyze(ctx, ctx.Query("q"), ctx.Query("lang"), numCandidates)
}

func (api *apiServer) analyze(ctx *gin.Context, cipherText, lang string, numCandidates int) {
	cipherText = strings.TrimSpace(cipherText)
	if cipherText == "" {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("empty cipher text"), http.StatusBadRequest,
		)
		return
	}
	lang = lexicon.NormalizeLang(lang)
	res := api.loader.Get(lang)
	profile := feats.GetLetterProfile(lang)

	ranked := api.engine.Evaluate(cipherText, res, profile)
	if len(ranked) == 0 {
		// unreachable with a fixed 26-key generator, guarded anyway
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("no candidates generated"), http.StatusInternalServerError,
		)
		return
	}
	best := ranked[0]
	uniresp.WriteJSONResponse(ctx.Writer, analysisResponse{
		Cipher:     excerpt(cipherText, maxTextExcerpt),
		Key:        best.Key,
		PlainText:  excerpt(best.Plaintext, maxTextExcerpt),
		Score:      best.Score,
		Candidates: scoring.TopN(ranked, numCandidates),
	})
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
