package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/restful-booker/messaging/internal/api/validator"
	"github.com/restful-booker/messaging/internal/config"
	"github.com/restful-booker/messaging/internal/consumers"
	"github.com/restful-booker/messaging/internal/database"
	"github.com/restful-booker/messaging/internal/metrics"
	"github.com/restful-booker/messaging/internal/repository"
	"github.com/restful-booker/messaging/internal/service"
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
			NewMQConnection,
			NewMQConsumer,
			validator.NewXValidator,
			NewBookingService,
			NewBookingConsumer,
		),
		fx.Invoke(runBookingConsumer, startMetricsServer),
	).Run()
}

func runBookingConsumer(bookingConsumer consumers.BookingConsumer, cfg *config.Config, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			queue := mq.Queue{Name: consumers.BookingCreatedQueue, DeadLetter: cfg.RabbitMQ.DeadLetter}
			if err := rabbit.DeclareTopology(queue); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := bookingConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("booking consumer started", zap.String("queue", consumers.BookingCreatedQueue))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping booking consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func startMetricsServer(registry *prometheus.Registry, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	app := fiber.New(fiber.Config{AppName: "worker-booking", DisableStartupMessage: true})
	app.Get("/metrics", metrics.Handler(registry))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.Worker.MetricsPort); err != nil {
					logger.Error("metrics server stopped", zap.Error(err))
				}
			}()
			logger.Info("metrics server started", zap.String("port", cfg.Worker.MetricsPort))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(registry)
}

func NewBookingService(repo repository.MessageRepository, logger *zap.Logger) service.BookingService {
	return service.NewBookingService(repo, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewBookingConsumer(cfg *config.Config, bookingService service.BookingService, consumer mq.Consumer,
	xValidator validator.IXValidator, m *metrics.Metrics, logger *zap.Logger) consumers.BookingConsumer {
	return consumers.NewBookingConsumer(bookingService, consumer, xValidator, m, cfg.Worker.Prefetch, logger)
}
