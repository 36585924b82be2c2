package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/port"
	"github.com/uddugarg/email-microservice/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(queue port.Queue, logs port.EmailLogStore, validate *validator.Validate) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo: e,
	}

	sendHandler := handler.NewSendHTTPHandler(queue, validate)
	logsHandler := handler.NewLogsHTTPHandler(logs)

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/emails/send", sendHandler.Handle())
	e.GET("/api/v1/emails/:eventID/logs", logsHandler.GetByEvent())
	e.GET("/api/v1/tenants/:tenantID/users/:userID/logs", logsHandler.ListByTenantUser())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "email-api",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
