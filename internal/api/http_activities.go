package api

import (
	"net/http"
	"safetytips/internal/entity/converter"
	"safetytips/internal/entity/dto"

	"github.com/gin-gonic/gin"
)

// ListActivities 操作日志，最新的在前
func (h *HTTPHandler) ListActivities(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	entries, err := admin.ListActivities(ctx)
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.ActivityListResponse{Activities: converter.ActivitiesToItems(entries)})
}
