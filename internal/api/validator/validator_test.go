package validator_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/restful-booker/messaging/internal/api/validator"
	"github.com/restful-booker/messaging/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Email string `validate:"required,email"`
	Phone string `validate:"required,phone"`
}

func TestXValidator_Validate(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	v := validator.NewXValidator(m)

	t.Run("valid struct", func(t *testing.T) {
		errs := v.Validate(contact{Email: "mark@mwtestconsultancy.co.uk", Phone: "01392123928"})

		assert.Empty(t, errs)
	})

	t.Run("reports failed fields", func(t *testing.T) {
		errs := v.Validate(contact{Email: "not-an-email", Phone: "123"})

		require.Len(t, errs, 2)
		assert.Equal(t, "Email", errs[0].FailedField)
		assert.Equal(t, "email", errs[0].Tag)
		assert.Equal(t, "Phone", errs[1].FailedField)
		assert.Equal(t, validator.PhoneTag, errs[1].Tag)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationErrors.WithLabelValues("Phone", "phone")))
	})

	t.Run("formats messages", func(t *testing.T) {
		errs := v.Validate(contact{})

		assert.Equal(t, []string{"Email is invalid", "Phone is invalid"}, v.Messages(errs, "%s is invalid"))
	})
}

func TestValidatePhone(t *testing.T) {
	v := validator.NewXValidator(nil)

	for _, phone := range []string{"01392123928", "+44 1392 123928", "012345678901234567890"} {
		assert.Empty(t, v.Validate(contact{Email: "a@b.co", Phone: phone}), phone)
	}

	for _, phone := range []string{"0139212392", "phone-number", "0123456789012345678901"} {
		assert.NotEmpty(t, v.Validate(contact{Email: "a@b.co", Phone: phone}), phone)
	}
}
