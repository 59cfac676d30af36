package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/asset-store/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func PayloadTooLarge(message string) *AppError {
	return &AppError{
		Code:       "PAYLOAD_TOO_LARGE",
		Message:    message,
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

func UnprocessableEntity(message string) *AppError {
	return &AppError{
		Code:       "UNPROCESSABLE_ENTITY",
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:       appErr.Code,
			Message:    message,
			StatusCode: appErr.StatusCode,
			Err:        err,
		}
	}
	return Internal(fmt.Errorf("%s: %w", message, err))
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// FromDomain maps domain sentinel errors to their HTTP form. An AppError is
// returned as is; nil stays nil.
func FromDomain(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var mapped *AppError
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		mapped = NotFound("asset")
	case errors.Is(err, domain.ErrAssetAlreadyExists):
		mapped = Conflict("asset already exists")
	case errors.Is(err, domain.ErrEmptyFile):
		mapped = BadRequest("file is empty")
	case errors.Is(err, domain.ErrFileTooLarge):
		mapped = PayloadTooLarge("file too large")
	case errors.Is(err, domain.ErrEncodeFailure), errors.Is(err, domain.ErrUnsupportedFormat):
		mapped = UnprocessableEntity("image could not be processed")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrTokenInvalid):
		mapped = Unauthorized("invalid or expired token")
	default:
		return Internal(err)
	}
	mapped.Err = err
	return mapped
}
