package mq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQueue_Arguments(t *testing.T) {
	t.Run("plain queue has no arguments", func(t *testing.T) {
		assert.Nil(t, Queue{Name: "message.created"}.arguments())
	})

	t.Run("dead letter queue routes rejects to dlq", func(t *testing.T) {
		args := Queue{Name: "booking.created", DeadLetter: true}.arguments()

		assert.Equal(t, amqp.Table{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": "booking.created.dlq",
		}, args)
		require.NoError(t, args.Validate())
	})
}

func TestDeadLetterName(t *testing.T) {
	assert.Equal(t, "booking.created.dlq", DeadLetterName("booking.created"))
}

func TestNewConnection_InvalidURL(t *testing.T) {
	_, err := NewConnection(Config{URL: "http://localhost:5672"}, zap.NewNop())

	assert.ErrorContains(t, err, "invalid rabbitmq url")
}

func TestRabbitMQ_ClosedConnection(t *testing.T) {
	r := &RabbitMQ{logger: zap.NewNop()}

	_, err := r.OpenChannel()
	assert.ErrorIs(t, err, ErrConnectionClosed)

	_, err = r.CreatePublisher()
	assert.ErrorIs(t, err, ErrConnectionClosed)

	assert.ErrorIs(t, r.DeclareTopology(Queue{Name: "booking.created"}), ErrConnectionClosed)
	assert.NoError(t, r.Close())
}
