package utils

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/sirupsen/logrus"
)

const HeaderRequestID = echo.HeaderXRequestID

// CreateRequestIDMiddleware tags every response with X-Request-ID,
// reusing the caller's id when present
func CreateRequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// CreateRequestLoggerMiddleware logs every request to logger.
// Register it after CreateRequestIDMiddleware so the id is known.
func CreateRequestLoggerMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogRequestID: true,
		LogMethod:    true,
		LogURI:       true,
		LogRemoteIP:  true,
		LogStatus:    true,
		LogLatency:   true,
		LogValuesFunc: func(c *echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"remote_ip":  v.RemoteIP,
				"status":     v.Status,
				"latency":    v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
			} else {
				entry.Info("request handled")
			}
			return nil
		},
	})
}
