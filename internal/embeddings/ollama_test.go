package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaEmbedderBatchesInputs(t *testing.T) {
	var got ollamaEmbedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embed" {
			t.Errorf("path = %q, want /api/embed", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		resp := ollamaEmbedResponse{
			Embeddings: make([][]float32, len(got.Input)),
		}
		for i := range resp.Embeddings {
			resp.Embeddings[i] = []float32{float32(i), 1}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	e := NewOllamaEmbedder("nomic-embed-text", 2, srv.URL)

	vectors, err := e.Embed(context.Background(), []string{"first chunk", "second chunk", "third chunk"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if len(got.Input) != 3 {
		t.Errorf("server saw %d inputs in one request, want 3", len(got.Input))
	}
	if got.Model != "nomic-embed-text" {
		t.Errorf("model = %q", got.Model)
	}
	if len(vectors) != 3 {
		t.Fatalf("got %d vectors, want 3", len(vectors))
	}
	if vectors[2][0] != 2 {
		t.Errorf("vectors[2][0] = %v, want 2", vectors[2][0])
	}
}

func TestOllamaEmbedderCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaEmbedResponse{
			Embeddings: [][]float32{{1, 2}},
		})
	}))
	defer srv.Close()

	e := NewOllamaEmbedder("nomic-embed-text", 2, srv.URL)

	if _, err := e.Embed(context.Background(), []string{"a", "b"}); err == nil {
		t.Error("expected error when the server returns fewer embeddings than inputs")
	}
}

func TestOllamaEmbedderEmptyInput(t *testing.T) {
	e := NewOllamaEmbedder("nomic-embed-text", 2, "http://unreachable.invalid")

	vectors, err := e.Embed(context.Background(), nil)
	if err != nil {
		t.Fatalf("Embed(nil): %v", err)
	}
	if vectors != nil {
		t.Errorf("Embed(nil) = %v, want nil", vectors)
	}
}
