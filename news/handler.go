package news

import (
	"github.com/gin-gonic/gin"

	"github.com/kochabx/newswire/errors"
	"github.com/kochabx/newswire/log"
	httpx "github.com/kochabx/newswire/transport/http"
)

// Handler 文章 HTTP 处理器
type Handler struct {
	service *Service
	logger  *log.Logger
}

// NewHandler 创建文章处理器
func NewHandler(svc *Service, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.G
	}
	return &Handler{service: svc, logger: logger}
}

// Register 注册公开路由
func (h *Handler) Register(api gin.IRouter) {
	api.GET("/articles", h.list)
	api.GET("/articles/:id", h.get)
}

// RegisterAdmin 注册管理路由（调用方挂载鉴权中间件）
func (h *Handler) RegisterAdmin(admin gin.IRouter) {
	admin.POST("/refresh", h.refresh)
}

// list 文章列表
func (h *Handler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.GinError(c, errors.BadRequest("invalid query: %v", err))
		return
	}

	articles, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httpx.GinError(c, err)
		return
	}
	httpx.GinJSON(c, articles)
}

// get 单篇文章
func (h *Handler) get(c *gin.Context) {
	article, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.GinError(c, err)
		return
	}
	httpx.GinJSON(c, article)
}

// refresh 触发一次全量刷新
func (h *Handler) refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		httpx.GinError(c, err)
		return
	}
	httpx.GinJSON(c, nil)
}
