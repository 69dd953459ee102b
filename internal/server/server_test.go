package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	cfg := config.Config{Port: "8080", Env: "test", CORSAllowOrigin: []string{"*"}}
	return NewRouter(cfg, cat)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["ok"] != true {
		t.Errorf("ok field = %v, want true", body["ok"])
	}
	if body["questions"] != float64(20) {
		t.Errorf("questions = %v, want 20", body["questions"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "assessment_started_total") {
		t.Error("metrics output missing assessment_started_total")
	}
}

func TestCatalogRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestGinModeFollowsEnv(t *testing.T) {
	cases := []struct {
		env  string
		want string
	}{
		{"production", gin.ReleaseMode},
		{"staging", gin.ReleaseMode},
		{"test", gin.TestMode},
		{"dev", gin.DebugMode},
		{"", gin.DebugMode},
	}
	for _, tc := range cases {
		if got := ginMode(tc.env); got != tc.want {
			t.Errorf("ginMode(%q) = %q, want %q", tc.env, got, tc.want)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
