package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func callProtected(t *testing.T, configured, header string) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	RequireToken(configured)(next).ServeHTTP(rec, req)
	return rec
}

func TestRequireToken(t *testing.T) {
	cases := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"valid token", "sekret", "Bearer sekret", http.StatusNoContent},
		{"wrong token", "sekret", "Bearer nope", http.StatusUnauthorized},
		{"token is a prefix of configured", "sekret", "Bearer sek", http.StatusUnauthorized},
		{"missing header", "sekret", "", http.StatusUnauthorized},
		{"wrong scheme", "sekret", "Basic sekret", http.StatusUnauthorized},
		{"lowercase scheme", "sekret", "bearer sekret", http.StatusUnauthorized},
		{"token without scheme", "sekret", "sekret", http.StatusUnauthorized},
		{"empty configured token passes all", "", "", http.StatusNoContent},
		{"empty configured token ignores header", "", "Bearer whatever", http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := callProtected(t, tc.configured, tc.header)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRequireTokenErrorBody(t *testing.T) {
	rec := callProtected(t, "sekret", "Bearer nope")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":false,"error":"unauthorized"}`, rec.Body.String())
}
