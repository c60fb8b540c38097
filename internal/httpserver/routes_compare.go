// internal/httpserver/routes_compare.go
//
// HTTP routes for scoring guesses.
//   - POST /compare        → score one guess against one answer
//   - POST /compare/batch  → score many pairs, results in request order
//
// Malformed words are rejected with 400 before any scoring happens; the
// comparator never sees a guess and answer of different lengths. Bodies are
// capped from the word length (and BatchMax for batches) before decoding.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/feedback/internal/feedback"
)

// compareReq is the request payload for /compare and each batch pair.
type compareReq struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
}

// compareRes is the response payload for one comparison.
type compareRes struct {
	Guess    string `json:"guess"`    // normalized guess
	Feedback string `json:"feedback"` // H/P/M codes
	Marks    []int  `json:"marks"`    // per-letter: 0=miss, 1=present, 2=hit
	Glyphs   string `json:"glyphs"`   // display tokens
	Solved   bool   `json:"solved"`
}

// batchReq/Res payloads for POST /compare/batch.
type batchReq struct {
	Pairs []compareReq `json:"pairs"`
}
type batchRes struct {
	Results []compareRes `json:"results"`
}

// pairBytes bounds the JSON size of one compareReq, whitespace included.
func (s *Server) pairBytes() int64 {
	return 64 + 8*int64(s.cmp.WordLength())
}

// compareLimit and batchLimit cap request bodies before they are decoded.
func (s *Server) compareLimit() int64 { return 1024 + s.pairBytes() }
func (s *Server) batchLimit() int64 {
	return 1024 + int64(s.cfg.BatchMax)*s.pairBytes()
}

// decodeBody decodes r.Body into v. On failure it writes the error response
// itself: 413 when the route's size cap was hit, 400 otherwise.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorRes{
			Error:  "body_too_large",
			Detail: "max " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
		})
		return false
	}
	writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
	return false
}

// handleCompare scores a single guess.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.cmp.ParsePair(req.Guess, req.Answer)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "invalid_input", Detail: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.resultFor(p.Guess(), p.Feedback()))
}

// handleBatch validates every pair in order, then scores them on a bounded
// set of goroutines. A single malformed pair fails the whole batch.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchReq
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Pairs) == 0 {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "empty_batch"})
		return
	}
	if len(req.Pairs) > s.cfg.BatchMax {
		writeJSON(w, http.StatusBadRequest, errorRes{
			Error:  "batch_too_large",
			Detail: "max " + strconv.Itoa(s.cfg.BatchMax) + " pairs",
		})
		return
	}

	pairs := make([]feedback.Pair, len(req.Pairs))
	for i, p := range req.Pairs {
		pp, err := s.cmp.ParsePair(p.Guess, p.Answer)
		if err != nil {
			idx := i
			writeJSON(w, http.StatusBadRequest, errorRes{Error: "invalid_input", Detail: err.Error(), Index: &idx})
			return
		}
		pairs[i] = pp
	}

	results := make([]compareRes, len(pairs))
	eg, ctx := errgroup.WithContext(r.Context())
	eg.SetLimit(s.cfg.BatchWorkers)
	for i := range pairs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.resultFor(pairs[i].Guess(), pairs[i].Feedback())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn().Err(err).Int("pairs", len(pairs)).Msg("batch compare")
		writeJSON(w, http.StatusServiceUnavailable, errorRes{Error: "batch_aborted", Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, batchRes{Results: results})
}
