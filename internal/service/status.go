package service

import (
	"net/http"

	"github.com/restful-booker/messaging/internal/model"
)

// Status is the outcome of a message operation, independent of any transport.
type Status int

const (
	StatusOK Status = iota + 1
	StatusCreated
	StatusAccepted
	StatusForbidden
	StatusNotFound
)

var statusNames = map[Status]string{
	StatusOK:        "OK",
	StatusCreated:   "CREATED",
	StatusAccepted:  "ACCEPTED",
	StatusForbidden: "FORBIDDEN",
	StatusNotFound:  "NOT_FOUND",
}

var statusHTTP = map[Status]int{
	StatusOK:        http.StatusOK,
	StatusCreated:   http.StatusCreated,
	StatusAccepted:  http.StatusAccepted,
	StatusForbidden: http.StatusForbidden,
	StatusNotFound:  http.StatusNotFound,
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) HTTPStatus() int {
	if code, ok := statusHTTP[s]; ok {
		return code
	}
	return http.StatusInternalServerError
}

type MessageResult struct {
	Message *model.Message
	Status  Status
}
