package docchat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T, engine *Engine) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	RegisterRoutes(r, engine)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestAskEndpoint(t *testing.T) {
	provider := &fakeProvider{response: "The answer."}
	e := newTestEngine(t, provider, nil)
	ingestTestDoc(t, e, "policy.pdf", "Orders ship within two business days.")
	srv := newTestServer(t, e)

	body, _ := json.Marshal(map[string]string{"session_id": "s1", "question": "when do orders ship"})
	resp, err := http.Post(srv.URL+"/api/docs/ask", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["session_id"] != "s1" || got["answer"] == "" {
		t.Errorf("response = %v", got)
	}
}

func TestAskEndpointRejectsEmptyQuestion(t *testing.T) {
	e := newTestEngine(t, &fakeProvider{}, nil)
	srv := newTestServer(t, e)

	resp, err := http.Post(srv.URL+"/api/docs/ask", "application/json", bytes.NewReader([]byte(`{"question":""}`)))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSearchEndpoint(t *testing.T) {
	e := newTestEngine(t, &fakeProvider{}, nil)
	ingestTestDoc(t, e, "shipping.pdf", "Standard shipping takes three to five business days.")
	srv := newTestServer(t, e)

	resp, err := http.Get(srv.URL + "/api/docs/search?q=shipping+time&limit=2")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var hits []struct {
		Source  string `json:"source"`
		Page    int    `json:"page"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		t.Fatal(err)
	}
	if len(hits) == 0 {
		t.Fatal("expected at least one search hit")
	}
	if hits[0].Source != "shipping.pdf" || hits[0].Page != 1 {
		t.Errorf("hit = %+v", hits[0])
	}

	resp, err = http.Get(srv.URL + "/api/docs/search")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", resp.StatusCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	e := newTestEngine(t, &fakeProvider{}, nil)
	ingestTestDoc(t, e, "a.pdf", "first document content here")
	ingestTestDoc(t, e, "b.pdf", "second document content here")
	srv := newTestServer(t, e)

	resp, err := http.Get(srv.URL + "/api/docs/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got struct {
		Sources []string `json:"sources"`
		Chunks  int      `json:"chunks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got.Sources) != 2 || got.Chunks < 2 {
		t.Errorf("stats = %+v", got)
	}
}
