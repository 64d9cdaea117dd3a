package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

func NewErrorNotFoundWithMessage(message string) ErrorNotFound {
	return ErrorNotFound{Message: message}
}

type ErrorAlreadyExists struct {
	Message string
}

func (e ErrorAlreadyExists) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

func NewErrorAlreadyExistsWithMessage(message string) ErrorAlreadyExists {
	return ErrorAlreadyExists{Message: message}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorInvalidInput is a user-facing validation failure
type ErrorInvalidInput struct {
	Field   string
	Message string
}

func (e ErrorInvalidInput) Error() string {
	return e.Message
}

func NewErrorInvalidInput(field, message string) ErrorInvalidInput {
	return ErrorInvalidInput{Field: field, Message: message}
}

// ErrorConflict is returned when a conditional write lost against another writer
type ErrorConflict struct {
	URL string
}

func (e ErrorConflict) Error() string {
	return fmt.Sprintf("Conflict: %s was modified concurrently", e.URL)
}

func NewErrorConflict(url string) ErrorConflict {
	return ErrorConflict{URL: url}
}

// ErrorUpstream is a non-success response from a remote pod
type ErrorUpstream struct {
	Status int
	URL    string
}

func (e ErrorUpstream) Error() string {
	return fmt.Sprintf("Upstream error: %s responded %d", e.URL, e.Status)
}

func NewErrorUpstream(status int, url string) ErrorUpstream {
	return ErrorUpstream{Status: status, URL: url}
}

// StatusCode maps an error to the http status the api responds with
func StatusCode(err error) int {
	var (
		notFound   ErrorNotFound
		exists     ErrorAlreadyExists
		permission ErrorPermissionDenied
		invalid    ErrorInvalidInput
		conflict   ErrorConflict
		upstream   ErrorUpstream
	)
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &permission):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &exists), errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
