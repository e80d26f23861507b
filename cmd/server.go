package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/polyglot/boundary"
	"github.com/tsingjyujing/polyglot/config"
	"github.com/tsingjyujing/polyglot/controller"
	"github.com/tsingjyujing/polyglot/utils"
)

// newEchoServer wires middleware, metrics and the detection routes.
// The prometheus collectors register globally, so it is built once per process.
func newEchoServer(detector *boundary.Detector, envelope *config.Envelope) *echo.Echo {
	echoServer := echo.New()
	echoServer.Use(echoprometheus.NewMiddleware("polyglot"))
	echoServer.Use(utils.CreateRequestIDMiddleware())
	echoServer.Use(utils.CreateRequestLoggerMiddleware(logger))
	echoServer.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))
	// Set routes
	echoServer.GET("/metrics", echoprometheus.NewHandler())
	controller.NewController(detector, envelope.Limits).RegisterRoutes(echoServer, envelope.Server.Tokens)
	return echoServer
}

func NewServerCommand() *cobra.Command {
	var configFile string

	serverCommand := &cobra.Command{
		Use:   "server",
		Short: "Starting language detection server",
		Run: func(cmd *cobra.Command, args []string) {
			_, envelope := readConfig(configFile)

			if err := boundary.Init(envelope.Detector); err != nil {
				logger.WithError(err).Error("Detector configuration rejected, serving with the fallback engine")
			}
			detector := boundary.Default()
			logger.Infof("Loaded %s detector successfully", detector.EngineName())

			echoServer := newEchoServer(detector, envelope)

			addr := envelope.Server.Address
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           echoServer,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in a goroutine
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				logger.Infof("Starting server on %s", addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.WithError(err).Error("Server start error")
					stop()
				}
			}()

			// Wait for interrupt signal to gracefully shutdown the server with a timeout
			<-ctx.Done()
			stop()
			logger.Info("Shutting down server gracefully, press Ctrl+C again to force")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Server forced to shutdown")
			}

			logger.Info("Server stopped gracefully")
		},
	}
	serverCommand.Flags().StringVar(&configFile, "config", "", "Path to config file")
	return serverCommand
}
