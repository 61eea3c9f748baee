package apierror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error shape every service operation returns. The
// value itself marshals to the JSON body; Code carries the HTTP status.
type ErrorResponse interface {
	error
	Code() int
}

type simpleError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *simpleError) Error() string {
	return e.Message
}

func (e *simpleError) Code() int {
	return e.Status
}

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{Status: code, Message: message}
}

var (
	InternalServerError    = NewSimple(500, "Internal server error")
	MalformedBodyError     = NewSimple(400, "Malformed request body")
	NotFoundError          = NewSimple(404, "Not found")
	InvalidAuthTokenError  = NewSimple(401, "Invalid or missing session token")
	WrongPasswordError     = NewSimple(401, "Incorrect password")
	StoreUnavailableError  = NewSimple(503, "Appointment storage is unavailable, try again later")
	StoreConflictError     = NewSimple(409, "Appointment could not be saved because the agenda changed, try again")
	AppointmentInPastError = NewSimple(400, "Appointment date cannot be in the past")
	PurgeUnsupportedError  = NewSimple(501, "This storage backend does not support purging past appointments")
)

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(400, fmt.Sprintf("Missing required parameter: %s", name))
}

func NewInvalidParamTypeError(name, expected string) ErrorResponse {
	return NewSimple(400, fmt.Sprintf("Parameter %s must be of type %s", name, expected))
}

func NewUnknownServiceError(known []string) ErrorResponse {
	return NewSimple(400, fmt.Sprintf("Unknown service, expected one of: %s", strings.Join(known, ", ")))
}

type validationError struct {
	Status  int               `json:"-"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *validationError) Error() string {
	return e.Message
}

func (e *validationError) Code() int {
	return e.Status
}

// FromValidationError maps a validator.ValidationErrors into a 400 response
// keyed by lowercased field name.
func FromValidationError(err error) ErrorResponse {
	resp := &validationError{
		Status:  400,
		Message: "Validation failed",
		Fields:  map[string]string{},
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return resp
	}

	for _, fe := range verrs {
		resp.Fields[strings.ToLower(fe.Field())] = describeFieldError(fe)
	}
	return resp
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "isodate":
		return "must be a date in YYYY-MM-DD form"
	case "clocktime":
		return "must be a time in 24-hour HH:MM form"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
