package docchat

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the doc-chat API routes.
func RegisterRoutes(r chi.Router, engine *Engine) {
	r.Route("/api/docs", func(r chi.Router) {
		r.Post("/ask", handleAsk(engine))
		r.Get("/search", handleSearch(engine))
		r.Get("/stats", handleStats(engine))
		r.Post("/sessions/{id}/reset", handleResetSession(engine))
	})
}

type askRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

func handleAsk(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Question == "" {
			http.Error(w, `{"error":"question is required"}`, http.StatusBadRequest)
			return
		}

		answer, err := engine.Ask(r.Context(), req.SessionID, req.Question)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"session_id": req.SessionID,
			"answer":     answer,
		})
	}
}

func handleSearch(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, `{"error":"q parameter is required"}`, http.StatusBadRequest)
			return
		}
		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		results, err := engine.Search(r.Context(), query, limit)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		type searchHit struct {
			Source     string  `json:"source"`
			Page       int     `json:"page"`
			Content    string  `json:"content"`
			Similarity float32 `json:"similarity"`
		}
		hits := make([]searchHit, 0, len(results))
		for _, r := range results {
			hits = append(hits, searchHit{
				Source:     r.Document.Metadata.SourceFile,
				Page:       r.Document.Metadata.Page,
				Content:    r.Document.Content,
				Similarity: r.Similarity,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hits)
	}
}

func handleStats(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"sources": engine.Sources(),
			"chunks":  engine.ChunkCount(),
		})
	}
}

func handleResetSession(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := engine.ResetSession(r.Context(), id); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "reset"})
	}
}
