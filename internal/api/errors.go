package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// Generic
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeMethodNotAllowed   = "ERR_METHOD_NOT_ALLOWED"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// Auth
	ErrCodeMissingCredentials = "ERR_MISSING_CREDENTIALS"
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"

	// Resources
	ErrCodeFileNotFound         = "ERR_FILE_NOT_FOUND"
	ErrCodeNotificationNotFound = "ERR_NOTIFICATION_NOT_FOUND"

	// Business
	ErrCodeMissingField = "ERR_MISSING_FIELD"
	ErrCodeFileTooLarge = "ERR_FILE_TOO_LARGE"
	ErrCodeBackupFailed = "ERR_BACKUP_FAILED"
)

// APIError is the error body of every JSON endpoint.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusUnauthorized, code, message)
}

func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// MethodNotAllowed answers 405 and advertises the allowed method.
func MethodNotAllowed(c *gin.Context, allowed string) {
	c.Header("Allow", allowed)
	ErrorResponse(c, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
}

func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}
