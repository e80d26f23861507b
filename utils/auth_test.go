package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestCreateBearerTokenMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantBody      string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"missing authorization header"}`,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic dXNlcjpwYXNz",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"invalid authorization header format"}`,
		},
		{
			name:          "unknown token",
			authorization: "Bearer nope",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"invalid token"}`,
		},
		{
			name:          "empty token never matches",
			authorization: "Bearer ",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"invalid token"}`,
		},
		{
			name:          "first token",
			authorization: "Bearer alpha",
			wantStatus:    http.StatusOK,
			wantBody:      `{"ok":true}`,
		},
		{
			name:          "second token",
			authorization: "Bearer beta",
			wantStatus:    http.StatusOK,
			wantBody:      `{"ok":true}`,
		},
	}

	e := echo.New()
	e.GET("/private", func(c *echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	}, CreateBearerTokenMiddleware([]string{"alpha", "", "beta"}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
