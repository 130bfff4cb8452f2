package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	v1 "github.com/restful-booker/messaging/internal/api/v1"
	"github.com/restful-booker/messaging/internal/api/v1/middleware"
	"github.com/restful-booker/messaging/internal/metrics"
	"go.uber.org/zap"
)

const prefixMessage = "/message"

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer,
	logger *zap.Logger) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", metrics.Handler(gatherer))

	messages := app.Group(prefixMessage, middleware.HTTPMetricsMiddleware(m, logger))
	messages.Get("/", handler.GetMessages)
	messages.Get("/count", handler.GetCount)
	messages.Get("/:id", handler.GetMessage)
	messages.Post("/", handler.CreateMessage)
	messages.Delete("/:id", handler.DeleteMessage)
	messages.Put("/:id/read", handler.MarkAsRead)
}
