package errors

import (
	// Go internal packages
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// Error defines a standard application error.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Wrapped underlying error.
	WrappedErr error `json:"wrapped_err,omitempty"`
}

// Error returns the string representation of the error message.
func (e *Error) Error() string {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(e)
	return buf.String()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.WrappedErr
}

// NewError returns standard go error with given string
func NewError(e string) error {
	return errors.New(e)
}

// Kind defines the kind or class of an error.
type Kind uint8

// Transport agnostic error "kinds"
const (
	Other        Kind = iota // Unclassified error
	Internal                 // Internal error
	Conflict                 // Conflict when an entity already exists
	Invalid                  // Invalid input, validation error etc
	NotFound                 // Entity does not exist
	Unauthorized             // Unauthorized access
	Forbidden                // Forbidden access
)

func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal error"
	case Conflict:
		return "conflict"
	case Invalid:
		return "invalid input"
	case NotFound:
		return "entity not found"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unclassified error"
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.WrappedErr = arg
		case string:
			e.Message = arg
		}
	}
	return e
}

// HTTPStatus maps an error to the HTTP status code handlers should respond
// with. Non-application errors map to 500.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message extracts the human-readable message from an application error,
// falling back to err.Error() for plain errors.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// NewInternalServerError creates a new internal server error
func NewInternalServerError(msg string) error {
	return E(Internal, msg)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(msg string) error {
	return E(NotFound, msg)
}

// NewInvalidParamsError creates a new invalid parameters error
func NewInvalidParamsError(msg string) error {
	return E(Invalid, msg)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(msg string) error {
	return E(Unauthorized, msg)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(msg string) error {
	return E(Forbidden, msg)
}

var (
	As = errors.As
	Is = errors.Is
)
