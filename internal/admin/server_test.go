package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"failpolicy-sim/internal/config"
)

func newTestServer() *Server {
	return NewServer(config.Default())
}

func TestHandleRunUnsafe(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/run?policy=unsafe&scenario=reference", nil)
	w := httptest.NewRecorder()
	server.handleRun(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK, got %v", resp.StatusCode)
	}
	var result runResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Report.Successful != 2 || result.Report.Failed != 5 {
		t.Errorf("report = %d/%d, want 2/5", result.Report.Successful, result.Report.Failed)
	}
	if result.Report.AbortIndex == nil || *result.Report.AbortIndex != 3 {
		t.Errorf("expected abort at request 3, got %v", result.Report.AbortIndex)
	}
	if len(result.Outcomes) != 7 {
		t.Errorf("expected 7 outcome rows, got %d", len(result.Outcomes))
	}
}

func TestHandleRunUnknownPolicy(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/run?policy=bogus", nil)
	w := httptest.NewRecorder()
	server.handleRun(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected bad request, got %v", w.Result().StatusCode)
	}
}

func TestHandleRunUnknownScenario(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/run?scenario=bogus", nil)
	w := httptest.NewRecorder()
	server.handleRun(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected bad request, got %v", w.Result().StatusCode)
	}
}

func TestHandleScenarios(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/scenarios", nil)
	w := httptest.NewRecorder()
	server.handleScenarios(w, req)

	var names []string
	if err := json.NewDecoder(w.Result().Body).Decode(&names); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, n := range names {
		if n == "reference" {
			found = true
		}
	}
	if !found {
		t.Errorf("reference scenario missing from %v", names)
	}
}

func TestHandleIndex(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	server.handleIndex(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "failpolicy-sim") || !strings.Contains(body, "resilient") {
		t.Errorf("unexpected index page: %q", body)
	}
}
