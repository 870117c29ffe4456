package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that knows the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var (
	InvalidDateParam      = &Failure{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
	InvalidAPIKey         = &Failure{Code: http.StatusUnauthorized, Message: "invalid or missing API key"}
	MissingCredentials    = &Failure{Code: http.StatusUnauthorized, Message: "missing bearer token or API key"}
	InvalidSignature      = &Failure{Code: http.StatusUnauthorized, Message: "invalid webhook signature"}
	ProviderNotConfigured = &Failure{Code: http.StatusServiceUnavailable, Message: "booking provider is not configured"}
)

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the error a Failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// Wrap keeps err reachable through errors.Is and errors.As. A nil err stays nil.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func BadRequest(err error) error {
	return Wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// ServiceUnavailable is for a dependency that could not be reached.
func ServiceUnavailable(msg string) error {
	return New(http.StatusServiceUnavailable, msg)
}

// BadGateway is for a dependency that answered with an error.
func BadGateway(err error) error {
	return Wrap(http.StatusBadGateway, err)
}

// GetCode returns the status of the outermost Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
