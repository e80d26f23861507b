package controller

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/tsingjyujing/polyglot/utils"
)

// RegisterRoutes mounts the detection API on e.
// Detection and the language list require a bearer token when tokens are configured.
func (c *Controller) RegisterRoutes(e *echo.Echo, tokens []string) {
	e.GET("/health", func(echoCtx *echo.Context) error {
		return echoCtx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/", c.Usage)

	var protected []echo.MiddlewareFunc
	if len(tokens) > 0 {
		logger.Infof("Bearer token authentication enabled with %d token(s)", len(tokens))
		protected = append(protected, utils.CreateBearerTokenMiddleware(tokens))
	} else {
		logger.Warn("Bearer token authentication disabled - no tokens configured")
	}

	e.POST("/", c.Detect, protected...)

	apiGroup := e.Group("/api/v1", protected...)
	apiGroup.GET("/languages", c.ListLanguages)
	apiGroup.POST("/detect", c.Detect)

	e.RouteNotFound("/*", func(echoCtx *echo.Context) error {
		return utils.EchoErrorResponse(echoCtx, MessageNotFound, http.StatusNotFound)
	})
}
