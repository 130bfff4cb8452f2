package errors

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/restful-booker/messaging/internal/api/contract"
	"github.com/restful-booker/messaging/internal/constants"
	"github.com/restful-booker/messaging/internal/service"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.Response{
				Code:    fiberErrorCode(fiberErr.Code),
				Message: fiberErr.Message,
			})
		}

		logger.Error("Unhandled request error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()))

		return c.Status(fiber.StatusInternalServerError).JSON(contract.Response{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == fiber.StatusInternalServerError {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(contract.Response{
		Code:    errorCode,
		Message: constants.GetErrorMessage(errorCode),
	})
}

// fiberErrorCode turns an HTTP status into an upper snake case code, e.g. 405 -> METHOD_NOT_ALLOWED.
func fiberErrorCode(status int) string {
	text := utils.StatusMessage(status)
	if text == "" {
		return constants.ErrCodeInternalError
	}

	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
