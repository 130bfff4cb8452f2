package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/restful-booker/messaging/internal/api/contract"
	"github.com/restful-booker/messaging/internal/api/validator"
	"github.com/restful-booker/messaging/internal/constants"
	"github.com/restful-booker/messaging/internal/metrics"
	"github.com/restful-booker/messaging/internal/publishers"
	"github.com/restful-booker/messaging/internal/service"
	"go.uber.org/zap"
)

const (
	TokenCookie = "token"
	sourceAPI   = "api"
)

type Handler struct {
	logger     *zap.Logger
	service    service.MessageService
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
	publisher  publishers.MessagePublisher
}

func NewHandler(logger *zap.Logger, service service.MessageService, XValidator validator.IXValidator,
	metrics *metrics.Metrics, publisher publishers.MessagePublisher) *Handler {
	return &Handler{
		logger:     logger,
		service:    service,
		XValidator: XValidator,
		metrics:    metrics,
		publisher:  publisher,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) GetMessages(c *fiber.Ctx) error {
	messages, err := h.service.GetMessages(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(messages)
}

func (h *Handler) GetCount(c *fiber.Ctx) error {
	count, err := h.service.GetCount(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(count)
}

func (h *Handler) GetMessage(c *fiber.Ctx) error {
	id, err := messageID(c)
	if err != nil {
		return err
	}

	result, err := h.service.GetSpecificMessage(c.UserContext(), id)
	if err != nil {
		return err
	}

	if result.Status != service.StatusOK {
		return statusError(result.Status)
	}

	return c.JSON(result.Message)
}

func (h *Handler) CreateMessage(c *fiber.Ctx) error {
	var request CreateMessageRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(contract.Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if errs := h.XValidator.Validate(request); len(errs) > 0 {
		h.logger.Warn("Invalid message request", zap.Any("errors", errs))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(contract.Response{
			Code:    constants.ErrCodeValidationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeValidationFailed),
			Errors:  h.XValidator.Messages(errs, constants.MessageErrorFormat),
		})
	}

	message, err := h.service.CreateMessage(c.UserContext(), request.toModel())
	if err != nil {
		return err
	}

	h.metrics.RecordMessageCreated(sourceAPI)

	if err := h.publisher.PublishCreated(c.UserContext(), message); err != nil {
		h.metrics.RecordPublishFailure()
		h.logger.Warn("Message stored but event not published",
			zap.Error(err),
			zap.Int64("messageID", message.ID))
	}

	return c.Status(service.StatusCreated.HTTPStatus()).JSON(message)
}

func (h *Handler) DeleteMessage(c *fiber.Ctx) error {
	id, err := messageID(c)
	if err != nil {
		return err
	}

	result, err := h.service.DeleteMessage(c.UserContext(), id, c.Cookies(TokenCookie))
	if err != nil {
		return err
	}

	switch result.Status {
	case service.StatusAccepted:
		h.metrics.RecordMessageDeleted()
	case service.StatusForbidden:
		h.metrics.RecordAuthRejection("delete")
		return statusError(result.Status)
	case service.StatusNotFound:
		return statusError(result.Status)
	}

	return c.SendStatus(result.Status.HTTPStatus())
}

func (h *Handler) MarkAsRead(c *fiber.Ctx) error {
	id, err := messageID(c)
	if err != nil {
		return err
	}

	status, err := h.service.MarkAsRead(c.UserContext(), id, c.Cookies(TokenCookie))
	if err != nil {
		return err
	}

	switch status {
	case service.StatusAccepted:
		h.metrics.RecordMessageMarkedRead()
	case service.StatusForbidden:
		h.metrics.RecordAuthRejection("mark_read")
		return statusError(status)
	}

	return c.SendStatus(status.HTTPStatus())
}

// statusError turns a rejected outcome into an error rendered by the error handler.
func statusError(status service.Status) error {
	switch status {
	case service.StatusForbidden:
		return service.NewServiceError(constants.ErrCodeForbidden, nil)
	case service.StatusNotFound:
		return service.NewServiceError(constants.ErrCodeMessageNotFound, nil)
	default:
		return fiber.NewError(status.HTTPStatus())
	}
}

func messageID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, service.NewServiceError(constants.ErrCodeInvalidMessageID, err)
	}

	return id, nil
}
