package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	stockhandler "watchlist_backend/internal/feature/watchlist/transport/handler"
)

// TestNewRouter_CORS verifies the origin allow-list: allowed origins pass,
// preflight is answered by the middleware, everything else is rejected.
func TestNewRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173")

	r := NewRouter(stockhandler.NewStockHandler(nil))

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
	}{
		{
			name:           "allowed origin passes through",
			method:         http.MethodGet,
			origin:         "http://localhost:5173",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no origin header (same-origin or curl) passes",
			method:         http.MethodGet,
			origin:         "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "disallowed origin is rejected",
			method:         http.MethodGet,
			origin:         "http://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "preflight for allowed origin has no body",
			method:         http.MethodOptions,
			origin:         "http://localhost:5173",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "preflight for disallowed origin is rejected",
			method:         http.MethodOptions,
			origin:         "http://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, "/healthz", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", "POST")
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.method == http.MethodOptions && tt.expectedStatus == http.StatusNoContent {
				assert.Empty(t, w.Body.String(), "preflight must carry no body")
			}
		})
	}
}

// TestCorsConfig_EnvParsing verifies the ALLOWED_ORIGINS parsing.
func TestCorsConfig_EnvParsing(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected []string
	}{
		{
			name:     "default dev origins when unset",
			env:      "",
			expected: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		},
		{
			name:     "comma separated list with spaces",
			env:      "https://watchlist.example.com, https://staging.example.com",
			expected: []string{"https://watchlist.example.com", "https://staging.example.com"},
		},
		{
			name:     "trailing comma ignored",
			env:      "https://watchlist.example.com,",
			expected: []string{"https://watchlist.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ALLOWED_ORIGINS", tt.env)
			cfg := corsConfig()
			assert.Equal(t, tt.expected, cfg.AllowOrigins)
		})
	}
}
