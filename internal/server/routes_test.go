package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobmcallan/jinyao-fortune/internal/app"
	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/config"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Storage.Badger.Path = filepath.Join(t.TempDir(), "fortune")

	application, err := app.New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to create test app: %v", err)
	}

	t.Cleanup(func() {
		application.Close()
	})

	return application
}

func TestRoutes_HealthEndpoint(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %s", body["status"])
	}
	if body["mode"] != "template" {
		t.Errorf("expected template mode without credentials, got %s", body["mode"])
	}
}

func TestRoutes_VersionEndpoint(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("GET", "/api/version", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected version field in response")
	}
}

func TestRoutes_FortuneEndpoint(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("POST", "/api/fortune", strings.NewReader(`{"name":"王","company":"腾讯","wishId":"sales"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["scenario"] != "sales" {
		t.Errorf("expected scenario sales, got %s", body["scenario"])
	}
	for _, key := range []string{"big_character", "lucky_poem", "financial_insight", "header"} {
		if body[key] == "" {
			t.Errorf("expected %s in response", key)
		}
	}
}

func TestRoutes_FortuneRejectsGET(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("GET", "/api/fortune", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestRoutes_ScenariosAndCompanies(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	for _, path := range []string{"/api/scenarios", "/api/companies?q=moutai"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
	}
}

func TestRoutes_SessionFlow(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	post := func(body string) (int, map[string]interface{}) {
		req := httptest.NewRequest("POST", "/api/session", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		var out map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &out)
		return w.Code, out
	}

	code, created := post(`{}`)
	if code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", code)
	}
	sess, _ := created["session"].(map[string]interface{})
	id, _ := sess["id"].(string)
	if id == "" {
		t.Fatalf("expected session id, got %v", created)
	}

	for _, event := range []string{"start", "submit", "complete"} {
		code, _ := post(fmt.Sprintf(`{"id":%q,"event":%q}`, id, event))
		if code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", event, code)
		}
	}

	req := httptest.NewRequest("GET", "/api/session?id="+id, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"state":"result"`) {
		t.Errorf("expected result state, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"collected":1`) {
		t.Errorf("expected one collected fortune, got %s", w.Body.String())
	}

	req = httptest.NewRequest("PUT", "/api/session", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405 for PUT, got %d", w.Code)
	}
}

func TestRoutes_MCPEndpoint(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("POST", "/mcp", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "draw_fortune") {
		t.Errorf("expected draw_fortune in tools/list, got %s", w.Body.String())
	}
}

func TestRoutes_APINotFound(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("GET", "/api/nonexistent", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestRoutes_MiddlewareApplied(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	// Verify correlation ID middleware is applied
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected X-Correlation-ID header from middleware")
	}

	// Verify CORS middleware is applied
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header from middleware")
	}
}

func TestRoutes_SecurityHeadersApplied(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected X-Content-Type-Options header from security middleware")
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected X-Frame-Options header from security middleware")
	}
	if w.Header().Get("Referrer-Policy") == "" {
		t.Error("expected Referrer-Policy header from security middleware")
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Error("expected Content-Security-Policy header from security middleware")
	}
}

func TestRoutes_OversizedBodyRejected(t *testing.T) {
	application := newTestApp(t)
	srv := New(application)

	body := `{"name":"` + strings.Repeat("王", maxBodyBytes) + `"}`
	req := httptest.NewRequest("POST", "/api/fortune", strings.NewReader(body))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
