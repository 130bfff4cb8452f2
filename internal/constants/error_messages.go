package constants

const (
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeInvalidMessageID   = "INVALID_MESSAGE_ID"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeMessageNotFound    = "MESSAGE_NOT_FOUND"
	ErrCodeForbidden          = "FORBIDDEN"
)

const (
	ErrMsgInternalError      = "Internal server error"
	ErrMsgInvalidRequestBody = "failed to parse request body"
	ErrMsgInvalidMessageID   = "message id must be a number"
	ErrMsgValidationFailed   = "request validation failed"
	ErrMsgMessageNotFound    = "message not found"
	ErrMsgForbidden          = "not authorised"
)

const MessageErrorFormat = "%s is invalid"

var errorMessages = map[string]string{
	ErrCodeInternalError:      ErrMsgInternalError,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeInvalidMessageID:   ErrMsgInvalidMessageID,
	ErrCodeValidationFailed:   ErrMsgValidationFailed,
	ErrCodeMessageNotFound:    ErrMsgMessageNotFound,
	ErrCodeForbidden:          ErrMsgForbidden,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidMessageID:
		return 400
	case ErrCodeForbidden:
		return 403
	case ErrCodeMessageNotFound:
		return 404
	case ErrCodeValidationFailed:
		return 422
	default:
		return 500
	}
}
