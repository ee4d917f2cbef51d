package api

import (
	"net/http"
	"safetytips/internal/entity/converter"
	"safetytips/internal/entity/dto"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListTips 搜索安全提示，q 为空时返回全部
func (h *HTTPHandler) ListTips(c *gin.Context) {
	standard, ok := standardCapabilities(c)
	if !ok {
		return
	}

	var query dto.TipQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	var q *string
	if trimmed := strings.TrimSpace(query.Query); trimmed != "" {
		q = &trimmed
	}
	tips, err := standard.SearchTips(ctx, q)
	if err != nil {
		ServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.TipListResponse{Tips: converter.TipsToItems(tips)})
}

func (h *HTTPHandler) GetTip(c *gin.Context) {
	standard, ok := standardCapabilities(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tip, err := standard.GetTip(ctx, id)
	if err != nil {
		ServiceError(c, err, ErrCodeTipNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.TipDetailResponse{Tip: converter.TipToItem(tip)})
}

func (h *HTTPHandler) CreateTip(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}

	var req dto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tip, err := admin.AddTip(ctx, req.Title, req.Content)
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, dto.TipDetailResponse{Tip: converter.TipToItem(tip)})
}

func (h *HTTPHandler) UpdateTip(c *gin.Context) {
	admin, ok := adminCapabilities(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	updated, err := admin.UpdateTip(ctx, id, req.Title, req.Content)
	if err != nil {
		ServiceError(c, err, ErrCodeTipNotFound)
		return
	}
	if !updated {
		NotFound(c, ErrCodeTipNotFound, "tip not found")
		return
	}

	tip, err := admin.GetTip(ctx, id)
	if err != nil {
		ServiceError(c, err, ErrCodeTipNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.TipDetailResponse{Tip: converter.TipToItem(tip)})
}

func (h *HTTPHandler) DeleteTip(c *gin.Context) {
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

	removed, err := admin.RemoveTip(ctx, id)
	if err != nil {
		ServiceError(c, err, ErrCodeTipNotFound)
		return
	}
	if !removed {
		NotFound(c, ErrCodeTipNotFound, "tip not found")
		return
	}
	c.Status(http.StatusNoContent)
}
