package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/config"
	"github.com/junaidrashid-git/sportsstore/realtime"
	"github.com/junaidrashid-git/sportsstore/session"
	"github.com/junaidrashid-git/sportsstore/testutil"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testutil.Logger(t)
	cfg := &config.Config{
		Admin:   config.AdminConfig{APIKey: "key-123"},
		Catalog: config.CatalogConfig{PageSize: 4},
	}
	r := gin.New()
	SetupRoutes(r, Deps{
		DB:       testutil.SeededDB(t),
		Config:   cfg,
		Log:      log,
		Sessions: session.NewMemoryStore(session.MemoryOptions{Name: "sportsstore"}),
		Hub:      realtime.NewHub(log),
	})
	return r
}

func TestRoutesWiring(t *testing.T) {
	r := newEngine(t)
	tests := []struct {
		method string
		path   string
		apiKey string
		want   int
	}{
		{method: http.MethodGet, path: "/healthz", want: http.StatusOK},
		{method: http.MethodGet, path: "/", want: http.StatusOK},
		{method: http.MethodGet, path: "/store?page=2", want: http.StatusOK},
		{method: http.MethodGet, path: "/cart", want: http.StatusOK},
		{method: http.MethodPost, path: "/cart/clear", want: http.StatusSeeOther},
		{method: http.MethodGet, path: "/admin/products", want: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/admin/products", apiKey: "key-123", want: http.StatusOK},
		{method: http.MethodGet, path: "/admin/products/create", apiKey: "key-123", want: http.StatusOK},
		{method: http.MethodGet, path: "/admin/products/edit/9999", apiKey: "key-123", want: http.StatusNotFound},
		{method: http.MethodGet, path: "/admin/products/export-excel", apiKey: "key-123", want: http.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		if tt.apiKey != "" {
			req.Header.Set("X-API-KEY", tt.apiKey)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Fatalf("%s %s: status=%d want=%d body=%s", tt.method, tt.path, w.Code, tt.want, w.Body.String())
		}
	}
}
