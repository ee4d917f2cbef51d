package api

import (
	"errors"
	"net/http"
	"strings"

	"safetytips/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	currentSessionContextKey = "current-session"
)

// AuthMiddleware JWT 认证中间件，为每个请求恢复会话
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "invalid authorization header",
			})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims, err := h.authManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("failed to parse jwt token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeSessionExpired,
				Message: "token is invalid or expired",
			})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		session, err := h.svc.Resume(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
					Code:    ErrCodeUserNotFound,
					Message: "user no longer exists",
				})
				return
			}
			logrus.WithError(err).WithField("user_id", claims.UserID).Error("failed to resume session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
				Code:    ErrCodeInternalError,
				Message: "failed to verify user",
			})
			return
		}

		c.Set(currentSessionContextKey, session)
		c.Next()
	}
}

// RequireAdmin 管理员权限守卫中间件
func (h *HTTPHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil || !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: "administrator privileges required",
			})
			return
		}
		c.Next()
	}
}

// CurrentSession 从上下文获取当前会话
func CurrentSession(c *gin.Context) *service.Session {
	value, exists := c.Get(currentSessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*service.Session)
	if !ok {
		return nil
	}
	return session
}

func adminCapabilities(c *gin.Context) (*service.AdminCapabilities, bool) {
	session := CurrentSession(c)
	if session == nil {
		Unauthorized(c, "authentication required")
		return nil, false
	}
	admin, err := session.Admin()
	if err != nil {
		ServiceError(c, err, "")
		return nil, false
	}
	return admin, true
}

func standardCapabilities(c *gin.Context) (*service.StandardCapabilities, bool) {
	session := CurrentSession(c)
	if session == nil {
		Unauthorized(c, "authentication required")
		return nil, false
	}
	standard, err := session.Standard()
	if err != nil {
		ServiceError(c, err, "")
		return nil, false
	}
	return standard, true
}
