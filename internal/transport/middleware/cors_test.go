package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/healthtrack-backend/internal/config"
)

func TestCORS_Preflight(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   "https://example.com",
		AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowedHeaders:   "Content-Type,X-Request-Id",
		AllowCredentials: true,
		MaxAge:           86400,
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/exercise-logs/3", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()

	CORS(cfg)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	want := map[string]string{
		"Access-Control-Allow-Origin":      "https://example.com",
		"Access-Control-Allow-Methods":     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type,X-Request-Id",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "86400",
		"Vary":                             "Origin",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("expected %s %q, got %q", header, value, got)
		}
	}
}

func TestCORS_Origins(t *testing.T) {
	tests := []struct {
		name            string
		allowed         string
		credentials     bool
		origin          string
		wantOrigin      string
		wantCredentials string
	}{
		{name: "listed origin", allowed: "https://example.com, https://other.com", credentials: true, origin: "https://other.com", wantOrigin: "https://other.com", wantCredentials: "true"},
		{name: "unlisted origin", allowed: "https://example.com", credentials: true, origin: "https://evil.com"},
		{name: "wildcard without credentials", allowed: "*", origin: "https://any-origin.com", wantOrigin: "https://any-origin.com"},
		{name: "no origin header", allowed: "*", credentials: true},
		{name: "empty allow list", allowed: " , ", origin: "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.CORSConfig{
				AllowedOrigins:   tt.allowed,
				AllowedMethods:   "GET,POST",
				AllowedHeaders:   "Content-Type",
				AllowCredentials: tt.credentials,
				MaxAge:           3600,
			}

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(cfg)(handler).ServeHTTP(rec, req)

			if !called {
				t.Error("expected handler to be called")
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("expected Access-Control-Allow-Origin %q, got %q", tt.wantOrigin, got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCredentials {
				t.Errorf("expected Access-Control-Allow-Credentials %q, got %q", tt.wantCredentials, got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "" {
				t.Errorf("non-preflight must not set Access-Control-Allow-Methods, got %q", got)
			}
		})
	}
}
