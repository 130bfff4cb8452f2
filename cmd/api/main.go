package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/restful-booker/messaging/internal/api"
	v1 "github.com/restful-booker/messaging/internal/api/v1"
	"github.com/restful-booker/messaging/internal/api/validator"
	"github.com/restful-booker/messaging/internal/config"
	"github.com/restful-booker/messaging/internal/database"
	apperrors "github.com/restful-booker/messaging/internal/errors"
	"github.com/restful-booker/messaging/internal/metrics"
	"github.com/restful-booker/messaging/internal/publishers"
	"github.com/restful-booker/messaging/internal/service"
	"github.com/restful-booker/messaging/pkg/authgateway"
	"github.com/restful-booker/messaging/pkg/httpclient"
	"github.com/restful-booker/messaging/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			metrics.NewRegistry,
			NewMetrics,
			database.NewMessageRepository,
			NewAuthGateway,
			NewMessagePublisher,
			validator.NewXValidator,
			service.NewMessageService,
			v1.NewHandler,
			NewFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, registry *prometheus.Registry,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, registry, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			logger.Info("HTTP server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp(logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "messaging",
		ErrorHandler: apperrors.ErrorHandler(logger),
	})
	app.Use(recover.New())

	return app
}

func NewMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(registry)
}

func NewAuthGateway(cfg *config.Config) authgateway.AuthGateway {
	client := httpclient.NewHTTPClient(cfg.Auth.Timeout)
	return authgateway.NewAuthGateway(cfg.Auth, client)
}

func NewMessagePublisher(lc fx.Lifecycle, cfg *config.Config,
	logger *zap.Logger) (publishers.MessagePublisher, error) {
	if !cfg.API.PublishEvents {
		return publishers.NewNopMessagePublisher(), nil
	}

	rabbit, err := mq.NewConnection(cfg.RabbitMQ, logger)
	if err != nil {
		return nil, err
	}

	if err := rabbit.DeclareTopology(mq.Queue{Name: publishers.MessageCreatedQueue}); err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := publisher.Close(); err != nil {
				logger.Warn("Failed to close publisher channel", zap.Error(err))
			}
			return rabbit.Close()
		},
	})

	return publishers.NewMessagePublisher(publisher, logger), nil
}
