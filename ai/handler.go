package ai

import (
	"github.com/gin-gonic/gin"

	"github.com/kochabx/newswire/errors"
	"github.com/kochabx/newswire/log"
	httpx "github.com/kochabx/newswire/transport/http"
)

// SummaryRequest 摘要请求
type SummaryRequest struct {
	Text string `json:"text" binding:"required"`
}

// SummaryResponse 摘要响应
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// Handler AI HTTP 处理器
type Handler struct {
	client *Client
	logger *log.Logger
}

// NewHandler 创建 AI 处理器
func NewHandler(client *Client, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.G
	}
	return &Handler{client: client, logger: logger}
}

// Register 注册路由
func (h *Handler) Register(api gin.IRouter) {
	api.POST("/ai/summary", h.summary)
}

// summary 摘要一段文章正文
func (h *Handler) summary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.GinError(c, errors.BadRequest("invalid request body: %v", err))
		return
	}

	summary, err := h.client.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		httpx.GinError(c, err)
		return
	}
	httpx.GinJSON(c, SummaryResponse{Summary: summary})
}
