package utils

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v5"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error string `json:"error"`
}

// EchoErrorResponse writes {"error": message} with the given status
func EchoErrorResponse(echoCtx *echo.Context, message string, status int) error {
	return echoCtx.JSON(status, ErrorBody{Error: message})
}

func EchoHandleGenericError(echoCtx *echo.Context, err error, status int) error {
	Logger.WithError(err).WithField("status", status).Error("Error handling request")
	return EchoErrorResponse(echoCtx, err.Error(), status)
}

func EchoHandleInternalError(echoCtx *echo.Context, err error) error {
	return EchoHandleGenericError(echoCtx, err, http.StatusInternalServerError)
}

// EchoJsonResponse marshals data up front so an encoding failure still yields a JSON error
func EchoJsonResponse(echoCtx *echo.Context, data any, status int) error {
	jsonString, err := json.Marshal(data)
	if err != nil {
		return EchoHandleInternalError(echoCtx, err)
	}
	return echoCtx.JSONBlob(status, jsonString)
}
