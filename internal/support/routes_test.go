package support

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	responder := NewResponder(testCatalog())
	store := NewSessionStore(nil)

	r := chi.NewRouter()
	RegisterRoutes(r, responder, store)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/support/chat", chatRequest{Message: "track order 12345"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SessionID == "" {
		t.Error("response should carry a session id")
	}
	if got.Intent != IntentTracking {
		t.Errorf("intent = %s, want %s", got.Intent, IntentTracking)
	}

	// Follow-up on the same session keeps state.
	resp2 := postJSON(t, srv.URL+"/api/support/chat", chatRequest{SessionID: got.SessionID, Message: "cancel my order #12345"})
	defer resp2.Body.Close()

	var got2 chatResponse
	if err := json.NewDecoder(resp2.Body).Decode(&got2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got2.SessionID != got.SessionID {
		t.Error("session id should be stable across turns")
	}
	if got2.Intent != IntentCancel {
		t.Errorf("intent = %s, want %s", got2.Intent, IntentCancel)
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/support/chat", chatRequest{})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSessionLifecycleEndpoints(t *testing.T) {
	srv := newTestServer(t)

	// Create.
	resp := postJSON(t, srv.URL+"/api/support/sessions", struct{}{})
	defer resp.Body.Close()

	var created map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := created["session_id"]
	if id == "" {
		t.Fatal("no session id returned")
	}

	// Chat one turn.
	postJSON(t, srv.URL+"/api/support/chat", chatRequest{SessionID: id, Message: "12345"}).Body.Close()

	// History.
	histResp, err := http.Get(srv.URL + "/api/support/sessions/" + id + "/history")
	if err != nil {
		t.Fatal(err)
	}
	defer histResp.Body.Close()

	var history []Turn
	if err := json.NewDecoder(histResp.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].User != "12345" {
		t.Errorf("history[0].User = %q", history[0].User)
	}

	// Reset.
	resetResp := postJSON(t, srv.URL+"/api/support/sessions/"+id+"/reset", struct{}{})
	resetResp.Body.Close()
	if resetResp.StatusCode != http.StatusOK {
		t.Fatalf("reset status = %d, want 200", resetResp.StatusCode)
	}

	// History is empty afterwards.
	histResp2, err := http.Get(srv.URL + "/api/support/sessions/" + id + "/history")
	if err != nil {
		t.Fatal(err)
	}
	defer histResp2.Body.Close()

	var history2 []Turn
	if err := json.NewDecoder(histResp2.Body).Decode(&history2); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history2) != 0 {
		t.Errorf("history after reset = %d turns, want 0", len(history2))
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/support/sessions/nope/history")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
