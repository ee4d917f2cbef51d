package api

import (
	"errors"
	"net/http"
	"safetytips/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 认证错误码
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeUsernameExists     = "ERR_USERNAME_EXISTS"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeLoggedOut          = "ERR_LOGGED_OUT"

	// 资源错误码
	ErrCodeUserNotFound = "ERR_USER_NOT_FOUND"
	ErrCodeTipNotFound  = "ERR_TIP_NOT_FOUND"

	// 业务逻辑错误码
	ErrCodeMissingField      = "ERR_MISSING_FIELD"
	ErrCodeValidation        = "ERR_VALIDATION"
	ErrCodePasswordMismatch  = "ERR_PASSWORD_MISMATCH"
	ErrCodeNothingToUpdate   = "ERR_NOTHING_TO_UPDATE"
	ErrCodeCannotModifySelf  = "ERR_CANNOT_MODIFY_SELF"
	ErrCodeInvalidIdentifier = "ERR_INVALID_ID"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403 禁止访问
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// ServiceError maps a service error onto the response envelope. notFoundCode
// names the resource a missing record refers to.
func ServiceError(c *gin.Context, err error, notFoundCode string) {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		ErrorResponse(c, http.StatusConflict, ErrCodeUsernameExists, "username already exists")
	case errors.Is(err, service.ErrNotFound):
		if notFoundCode == "" {
			notFoundCode = ErrCodeNotFound
		}
		NotFound(c, notFoundCode, "resource not found")
	case errors.Is(err, service.ErrValidation):
		BadRequest(c, ErrCodeValidation, validationMessage(err))
	case errors.Is(err, service.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid username or password")
	case errors.Is(err, service.ErrForbidden):
		Forbidden(c, "administrator privileges required")
	case errors.Is(err, service.ErrLoggedOut):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeLoggedOut, "session has ended")
	default:
		InternalError(c, "internal error")
	}
}

func validationMessage(err error) string {
	msg := err.Error()
	prefix := service.ErrValidation.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return msg
}
