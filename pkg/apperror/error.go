package apperror

import "net/http"

// FieldMsg mirrors the express-validator error item shape the clients expect.
type FieldMsg struct {
	Msg string `json:"msg"`
}

type AppError struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Fields  []FieldMsg `json:"fields,omitempty"`
	Err     error      `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports field-level failures as a 400 carrying one message per
// offending field.
func Validation(messages ...string) *AppError {
	e := New(http.StatusBadRequest, "Validation failed", nil)
	for _, m := range messages {
		e.Fields = append(e.Fields, FieldMsg{Msg: m})
	}
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Server Error", err)
}
