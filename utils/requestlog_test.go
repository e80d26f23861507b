package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedServer(buffer *bytes.Buffer) *echo.Echo {
	logger := logrus.New()
	logger.SetOutput(buffer)
	logger.SetFormatter(&logrus.JSONFormatter{})
	e := echo.New()
	e.Use(CreateRequestIDMiddleware())
	e.Use(CreateRequestLoggerMiddleware(logger))
	e.GET("/ping", func(c *echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	return e
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	var buffer bytes.Buffer
	e := newLoggedServer(&buffer)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	requestID := rec.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)
	assert.Contains(t, buffer.String(), requestID)
	assert.Contains(t, buffer.String(), `"uri":"/ping"`)
	assert.Contains(t, buffer.String(), `"status":200`)
	assert.Contains(t, buffer.String(), "request handled")
}

func TestRequestLogger_KeepsCallerRequestID(t *testing.T) {
	var buffer bytes.Buffer
	e := newLoggedServer(&buffer)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "caller-chosen")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "caller-chosen", rec.Header().Get(HeaderRequestID))
	assert.Contains(t, buffer.String(), `"request_id":"caller-chosen"`)
}
