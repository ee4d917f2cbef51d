package api

import (
	"context"
	"net/http"
	"safetytips/internal/auth"
	"safetytips/internal/config"
	"safetytips/internal/service"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg         config.Config
	svc         *service.Service
	authManager *auth.Manager
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, svc *service.Service) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	return &HTTPHandler{
		cfg:         cfg,
		svc:         svc,
		authManager: authManager,
	}, nil
}

// RegisterRoutes 注册全部路由
func (h *HTTPHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/logout", h.AuthMiddleware(), h.Logout)
	authGroup.GET("/me", h.AuthMiddleware(), h.Me)

	protected := apiGroup.Group("")
	protected.Use(h.AuthMiddleware())
	protected.PUT("/me/password", h.ChangePassword)
	protected.GET("/tips", h.ListTips)
	protected.GET("/tips/:id", h.GetTip)

	tipAdmin := protected.Group("/tips")
	tipAdmin.Use(h.RequireAdmin())
	tipAdmin.POST("", h.CreateTip)
	tipAdmin.PATCH("/:id", h.UpdateTip)
	tipAdmin.DELETE("/:id", h.DeleteTip)

	userAdmin := protected.Group("/users")
	userAdmin.Use(h.RequireAdmin())
	userAdmin.GET("", h.ListUsers)
	userAdmin.POST("", h.CreateUser)
	userAdmin.GET("/:id", h.GetUser)
	userAdmin.PATCH("/:id", h.UpdateUser)
	userAdmin.DELETE("/:id", h.DeleteUser)

	activityAdmin := protected.Group("/activities")
	activityAdmin.Use(h.RequireAdmin())
	activityAdmin.GET("", h.ListActivities)
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// parseID 解析路径中的数字 ID
func parseID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidIdentifier, "invalid id")
		return 0, false
	}
	return uint(id), true
}
