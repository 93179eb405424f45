package web

import (
	"encoding/json"
	"net/http"
)

// searchResponse is the JSON shape of a single resolution.
type searchResponse struct {
	Query   string  `json:"query"`
	Match   string  `json:"match"`
	Matched bool    `json:"matched"`
	Stage   string  `json:"stage,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

// batchSearchRequest carries the queries for a batch resolution.
type batchSearchRequest struct {
	Queries []string `json:"queries"`
}

// handleSearch resolves a single query: GET /api/search?q=...
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	resp := searchResponse{Query: query}
	if result, ok := s.engine.Match(s.candidates, query); ok {
		resp.Match = result.Candidate
		resp.Matched = true
		resp.Stage = result.Stage
		resp.Score = result.Score
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleBatchSearch resolves many queries: POST /api/search/batch
func (s *Server) handleBatchSearch(w http.ResponseWriter, r *http.Request) {
	var req batchSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	results, err := s.engine.MatchBatch(r.Context(), s.candidates, req.Queries, 0)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resp := make([]searchResponse, len(req.Queries))
	for i, q := range req.Queries {
		resp[i] = searchResponse{Query: q}
		if results[i].Index >= 0 {
			resp[i].Match = results[i].Candidate
			resp[i].Matched = true
			resp[i].Stage = results[i].Stage
			resp[i].Score = results[i].Score
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleHealth reports liveness and the candidate count.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"candidates": len(s.candidates),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
