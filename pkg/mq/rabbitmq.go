package mq

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const deadLetterSuffix = ".dlq"

var ErrConnectionClosed = errors.New("rabbitmq connection is closed")

type Config struct {
	URL        string `mapstructure:"url"`
	DeadLetter bool   `mapstructure:"dead_letter"`
}

// Queue is a durable queue. With DeadLetter set, deliveries nacked without requeue
// are routed to DeadLetterName(Name) instead of being discarded.
type Queue struct {
	Name       string
	DeadLetter bool
}

func DeadLetterName(queue string) string {
	return queue + deadLetterSuffix
}

func (q Queue) arguments() amqp.Table {
	if !q.DeadLetter {
		return nil
	}

	return amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DeadLetterName(q.Name),
	}
}

type RabbitMQ struct {
	conn   *amqp.Connection
	logger *zap.Logger
}

func NewConnection(cfg Config, logger *zap.Logger) (*RabbitMQ, error) {
	uri, err := amqp.ParseURI(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid rabbitmq url: %w", err)
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		logger.Error("RabbitMQ dial failed",
			zap.String("host", uri.Host),
			zap.Int("port", uri.Port),
			zap.Error(err))
		return nil, fmt.Errorf("dial rabbitmq %s:%d: %w", uri.Host, uri.Port, err)
	}

	logger.Info("RabbitMQ connected", zap.String("host", uri.Host), zap.String("vhost", uri.Vhost))

	return &RabbitMQ{conn: conn, logger: logger}, nil
}

func (r *RabbitMQ) OpenChannel() (*amqp.Channel, error) {
	if r.conn == nil || r.conn.IsClosed() {
		return nil, ErrConnectionClosed
	}

	return r.conn.Channel()
}

// DeclareTopology declares every queue, and its dead letter queue first when enabled.
func (r *RabbitMQ) DeclareTopology(queues ...Queue) error {
	ch, err := r.OpenChannel()
	if err != nil {
		return fmt.Errorf("topology channel: %w", err)
	}
	defer ch.Close()

	for _, queue := range queues {
		if queue.DeadLetter {
			if _, err := ch.QueueDeclare(DeadLetterName(queue.Name), true, false, false, false, nil); err != nil {
				return fmt.Errorf("declare dead letter queue for %s: %w", queue.Name, err)
			}
		}

		if _, err := ch.QueueDeclare(queue.Name, true, false, false, false, queue.arguments()); err != nil {
			return fmt.Errorf("declare queue %s: %w", queue.Name, err)
		}

		r.logger.Info("Queue declared",
			zap.String("queue", queue.Name),
			zap.Bool("deadLetter", queue.DeadLetter))
	}

	return nil
}

func (r *RabbitMQ) CreatePublisher() (Publisher, error) {
	ch, err := r.OpenChannel()
	if err != nil {
		return nil, fmt.Errorf("publisher channel: %w", err)
	}

	return NewRabbitPublisher(ch), nil
}

func (r *RabbitMQ) CreateConsumer() (Consumer, error) {
	ch, err := r.OpenChannel()
	if err != nil {
		return nil, fmt.Errorf("consumer channel: %w", err)
	}

	return NewRabbitConsumer(ch), nil
}

func (r *RabbitMQ) Close() error {
	if r.conn == nil || r.conn.IsClosed() {
		return nil
	}

	r.logger.Info("Closing RabbitMQ connection")

	return r.conn.Close()
}
