package api

import (
	"errors"
	"net/http"
	"safetytips/internal/entity"
	"safetytips/internal/entity/converter"
	"safetytips/internal/entity/dto"
	"safetytips/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := admin.ListUsers(ctx)
	if err != nil {
		ServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{Users: converter.UsersToSummaries(users)})
}

func (h *HTTPHandler) GetUser(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := admin.GetUser(ctx, id)
	if err != nil {
		ServiceError(c, err, ErrCodeUserNotFound)
		return
	}
	c.JSON(http.StatusOK, converter.UserToSummary(user))
}

func (h *HTTPHandler) CreateUser(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}

	var req dto.UserCreateRequest
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

	user, err := admin.CreateUser(ctx, req.Username, req.Password, req.IsAdmin)
	if err != nil {
		ServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, converter.UserToSummary(user))
}

func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	changes := entity.UserChanges{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	}
	if changes.HasPassword() {
		if req.ConfirmPassword == nil || *req.ConfirmPassword != *req.Password {
			BadRequest(c, ErrCodePasswordMismatch, "passwords do not match")
			return
		}
	}
	if changes.IsEmpty() {
		BadRequest(c, ErrCodeNothingToUpdate, "no changes supplied")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	updated, err := admin.UpdateUser(ctx, id, changes)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			ErrorResponse(c, http.StatusForbidden, ErrCodeCannotModifySelf, "administrators cannot change their own role")
			return
		}
		ServiceError(c, err, ErrCodeUserNotFound)
		return
	}
	if !updated {
		NotFound(c, ErrCodeUserNotFound, "user not found")
		return
	}

	user, err := admin.GetUser(ctx, id)
	if err != nil {
		ServiceError(c, err, ErrCodeUserNotFound)
		return
	}
	c.JSON(http.StatusOK, converter.UserToSummary(user))
}

func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	removed, err := admin.RemoveUser(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			BadRequest(c, ErrCodeCannotModifySelf, "cannot delete current user")
			return
		}
		ServiceError(c, err, ErrCodeUserNotFound)
		return
	}
	if !removed {
		NotFound(c, ErrCodeUserNotFound, "user not found")
		return
	}

	c.Status(http.StatusNoContent)
}
