package authgateway

import "errors"

const StatusOK = 200

const (
	ErrCodeTimeout = "AUTH_TIMEOUT"
)

var (
	ErrTimeout = errors.New(ErrCodeTimeout)
)
