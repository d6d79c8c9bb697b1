// Package errors maps swap engine failures onto HTTP-facing categories
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a ServiceError for the HTTP boundary
type Category int

const (
	// CategoryGeneralError is an unexpected failure; its cause is logged, never shown
	CategoryGeneralError Category = iota
	// CategoryDataError is a malformed request
	CategoryDataError
	// CategoryResourceNotFound is a transaction or asset that does not exist
	CategoryResourceNotFound
	// CategoryDataConflict is a hash already processed or still executing
	CategoryDataConflict
	// CategoryConnectionTimeout is a chain wait that ran out of time
	CategoryConnectionTimeout
	// CategoryUnavailable is a chain node or database that could not be reached
	CategoryUnavailable
)

var categories = map[Category]struct {
	name   string
	status int
}{
	CategoryGeneralError:      {"CategoryGeneralError", http.StatusInternalServerError},
	CategoryDataError:         {"CategoryDataError", http.StatusBadRequest},
	CategoryResourceNotFound:  {"CategoryResourceNotFound", http.StatusNotFound},
	CategoryDataConflict:      {"CategoryDataConflict", http.StatusConflict},
	CategoryConnectionTimeout: {"CategoryConnectionTimeout", http.StatusGatewayTimeout},
	CategoryUnavailable:       {"CategoryUnavailable", http.StatusServiceUnavailable},
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return categories[CategoryGeneralError].name
}

// ServiceError carries a client-facing message next to the logged cause
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is matches any error whose text equals the client-facing message
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// StatusCode returns the HTTP status for the error category
func (err ServiceError) StatusCode() int {
	if info, ok := categories[err.Category]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Is reports whether err wraps a ServiceError of category cat
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

func newError(cat Category, err error, message string) error {
	if err == nil {
		err = errors.New(message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error"
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error")
}

// ResourceNotFoundError returns message to the client with a 404
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message)
}

// BadRequestError returns message to the client with a 400
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message)
}

// ConflictError returns message to the client with a 409
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message)
}

// TimeoutError returns message to the client with a 504
func TimeoutError(err error, message string) error {
	return newError(CategoryConnectionTimeout, err, message)
}

// UnavailableError returns message to the client with a 503
func UnavailableError(err error, message string) error {
	return newError(CategoryUnavailable, err, message)
}
