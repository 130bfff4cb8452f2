package service_test

import (
	"errors"
	"testing"

	"github.com/restful-booker/messaging/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("uses cause message", func(t *testing.T) {
		cause := errors.New("strconv failure")
		err := service.NewServiceError("INVALID_MESSAGE_ID", cause)

		assert.Equal(t, "strconv failure", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("falls back to code without cause", func(t *testing.T) {
		err := service.NewServiceError("FORBIDDEN", nil)

		assert.Equal(t, "FORBIDDEN", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})
}
