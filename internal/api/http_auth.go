package api

import (
	"net/http"
	"safetytips/internal/entity/converter"
	"safetytips/internal/entity/dto"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *HTTPHandler) Register(c *gin.Context) {
	var req dto.AuthRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		MissingField(c, "username")
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		MissingField(c, "password")
		return
	}
	if req.Password != req.ConfirmPassword {
		BadRequest(c, ErrCodePasswordMismatch, "passwords do not match")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.Register(ctx, req.Username, req.Password)
	if err != nil {
		ServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, converter.UserToSummary(user))
}

func (h *HTTPHandler) Login(c *gin.Context) {
	var req dto.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	session, err := h.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		ServiceError(c, err, "")
		return
	}

	user := session.User()
	token, expiresAt, err := h.authManager.GenerateToken(user)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		InternalError(c, "failed to create session")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      converter.UserToSummary(user),
	})
}

// Logout records the logout. Tokens are not revoked and stay valid until
// they expire.
func (h *HTTPHandler) Logout(c *gin.Context) {
	session := CurrentSession(c)
	if session == nil {
		Unauthorized(c, "authentication required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	session.Logout(ctx)
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) Me(c *gin.Context) {
	session := CurrentSession(c)
	if session == nil || !session.LoggedIn() {
		Unauthorized(c, "authentication required")
		return
	}
	c.JSON(http.StatusOK, converter.UserToSummary(session.User()))
}

func (h *HTTPHandler) ChangePassword(c *gin.Context) {
	standard, ok := standardCapabilities(c)
	if !ok {
		return
	}

	var req dto.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		MissingField(c, "password")
		return
	}
	if req.Password != req.ConfirmPassword {
		BadRequest(c, ErrCodePasswordMismatch, "passwords do not match")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := standard.ChangePassword(ctx, req.Password); err != nil {
		ServiceError(c, err, ErrCodeUserNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
