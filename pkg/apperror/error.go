package apperror

import "net/http"

// Machine-checkable error categories returned in the response body so callers
// can distinguish "your message was recorded" from "your message was lost".
const (
	CodeValidation    = "validation_error"
	CodeRateLimit     = "rate_limit_error"
	CodeVerification  = "verification_error"
	CodeConfiguration = "configuration_error"
	CodeDelivery      = "delivery_error"
)

type AppError struct {
	Status  int         `json:"status"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation builds a 400 carrying per-field failure details.
func Validation(message string, details interface{}) *AppError {
	e := New(http.StatusBadRequest, CodeValidation, message, nil)
	e.Details = details
	return e
}

func RateLimited(message string) *AppError {
	return New(http.StatusTooManyRequests, CodeRateLimit, message, nil)
}

// Verification reports a failed bot-mitigation check without revealing
// detection internals.
func Verification(err error) *AppError {
	return New(http.StatusBadRequest, CodeVerification, "Verification failed. Please try again.", err)
}

// Configuration reports a deployment-level misconfiguration. The message stays
// generic for end users; the wrapped error is logged server-side.
func Configuration(err error) *AppError {
	return New(http.StatusInternalServerError, CodeConfiguration, "Service temporarily unavailable. Please try again later.", err)
}

// Delivery reports that the email provider rejected or failed the send.
func Delivery(err error) *AppError {
	return New(http.StatusInternalServerError, CodeDelivery, "Failed to send message. Please try again later.", err)
}
