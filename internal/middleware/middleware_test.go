package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"forum/internal/domain"
	"forum/internal/domain/models"
	"forum/internal/httputil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*models.AdminClaims, error) {
	switch token {
	case "admin-token":
		c := &models.AdminClaims{Role: "admin"}
		c.Subject = "admin-1"
		return c, nil
	case "user-token":
		return nil, domain.ErrForbidden
	default:
		return nil, domain.ErrUnauthorized
	}
}

func (stubVerifier) Close() error { return nil }

func TestRequireAdmin(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.AdminSubject(r)
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireAdmin(stubVerifier{}, testLogger())(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic admin-token", want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer junk", want: http.StatusUnauthorized},
		{name: "not an admin", header: "Bearer user-token", want: http.StatusForbidden},
		{name: "admin", header: "Bearer admin-token", want: http.StatusNoContent},
		{name: "scheme is case insensitive", header: "bearer admin-token", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodPost, "/api/curiosities", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusNoContent && seen != "admin-1" {
				t.Errorf("handler saw admin %q, want admin-1", seen)
			}
			if tt.want != http.StatusNoContent && seen != "" {
				t.Errorf("handler ran for a rejected request")
			}
		})
	}
}

func TestRequireAdmin_Disabled(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	RequireAdmin(nil, testLogger())(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	if !called {
		t.Error("disabled gate blocked the request")
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != false || body["message"] != "Erro interno do servidor" {
		t.Errorf("body = %v", body)
	}
}

func TestRecovery_AbortHandlerPropagates(t *testing.T) {
	h := Recovery(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	t.Error("ServeHTTP returned without panicking")
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/topics/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware(mux)

	for _, path := range []string{"/api/topics/1", "/api/topics/2", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "forum_http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, l := range metric.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			counts[strings.Join(labels, ",")] = metric.GetCounter().GetValue()
		}
	}

	if got := counts["method=GET,route=GET /api/topics/{id},status=404"]; got != 2 {
		t.Errorf("route count = %v, want 2 (all: %v)", got, counts)
	}
	if got := counts["method=GET,route=unmatched,status=404"]; got != 1 {
		t.Errorf("unmatched count = %v, want 1 (all: %v)", got, counts)
	}
}
