package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/namematch/internal/matcher"
)

func newTestServer() *Server {
	cfg := &Config{Host: "127.0.0.1", Port: 0}
	candidates := []string{"Dr. Ayesha Khan", "Mohammed Al-Fayed", "Sarah Connor"}
	return NewServer(cfg, matcher.NewDefaultEngine(), candidates)
}

func TestHandleSearch(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/api/search?q=Aysha", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp searchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Matched || resp.Match != "Dr. Ayesha Khan" {
		t.Errorf("response %+v, want match Dr. Ayesha Khan", resp)
	}
	if resp.Stage == "" {
		t.Error("response missing stage")
	}
}

func TestHandleSearchNoMatch(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/api/search?q=zzzzz", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var resp searchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Matched || resp.Match != "" {
		t.Errorf("response %+v, want no match", resp)
	}
}

func TestHandleBatchSearch(t *testing.T) {
	s := newTestServer()

	body := `{"queries": ["Aysha", "nobody zzz"]}`
	req := httptest.NewRequest("POST", "/api/search/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp []searchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("got %d results, want 2", len(resp))
	}
	if !resp[0].Matched || resp[0].Match != "Dr. Ayesha Khan" {
		t.Errorf("first result %+v, want Dr. Ayesha Khan", resp[0])
	}
	if resp[1].Matched {
		t.Errorf("second result %+v, want no match", resp[1])
	}
}

func TestHandleBatchSearchBadBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/api/search/batch", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field %v, want ok", resp["status"])
	}
	if resp["candidates"] != float64(3) {
		t.Errorf("candidates field %v, want 3", resp["candidates"])
	}
}
