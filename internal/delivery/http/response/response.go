package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessBody is the JSON envelope for successful requests.
type SuccessBody struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody is the JSON envelope for failed requests. Code is a
// machine-checkable category; Details carries per-field validation failures
// when present.
type ErrorBody struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessBody{
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Code:    code,
		Details: details,
	})
}
