package mq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDelivery struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeDelivery) Ack(bool) error {
	f.acked = true
	return nil
}

func (f *fakeDelivery) Nack(_, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func TestSettle(t *testing.T) {
	t.Run("acks on success", func(t *testing.T) {
		d := &fakeDelivery{}
		settle(d, nil)

		assert.True(t, d.acked)
		assert.False(t, d.nacked)
	})

	t.Run("requeues temporary errors", func(t *testing.T) {
		d := &fakeDelivery{}
		settle(d, Temporary(errors.New("db down")))

		assert.True(t, d.nacked)
		assert.True(t, d.requeue)
	})

	t.Run("drops permanent errors", func(t *testing.T) {
		d := &fakeDelivery{}
		settle(d, errors.New("bad payload"))

		assert.True(t, d.nacked)
		assert.False(t, d.requeue)
	})
}

func TestTemporary(t *testing.T) {
	cause := errors.New("timeout")
	err := Temporary(cause)

	assert.True(t, IsTemporary(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsTemporary(cause))
	assert.Equal(t, "timeout", err.Error())
}
