package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestHealth verifies the health endpoint per HTTP method.
func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		expectedStatus int
		expectedBody   string
	}{
		{name: "GET returns ok body", method: http.MethodGet, expectedStatus: 200, expectedBody: `{"status":"ok"}`},
		{name: "HEAD returns 200 without body", method: http.MethodHead, expectedStatus: 200},
		{name: "OPTIONS returns 204", method: http.MethodOptions, expectedStatus: 204},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Any("/healthz", Health)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, "/healthz", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
