package ai

import (
	"context"
	"time"

	"github.com/kochabx/newswire/core/tag"
	"github.com/kochabx/newswire/errors"
	"github.com/kochabx/newswire/fetch"
)

const completionsPath = "/v1/chat/completions"

// Config 补全 API 客户端配置
type Config struct {
	// BaseURL OpenAI 兼容服务地址
	BaseURL string `mapstructure:"base_url"`

	// APIKey Bearer 凭证，留空则不携带
	APIKey string `mapstructure:"api_key"`

	// Model 默认模型
	Model string `mapstructure:"model" default:"gpt-4o-mini"`

	// Timeout 单次调用超时（含全部重试）
	Timeout time.Duration `mapstructure:"timeout" default:"30s"`
}

// ApplyDefaults 应用默认值
func (c *Config) ApplyDefaults() error {
	return tag.ApplyDefaults(c)
}

// completionAPI 底层 HTTP 客户端
type completionAPI interface {
	Post(path string, body any, opts ...fetch.RequestOption) error
}

// Client 补全 API 直通客户端
// 超时与重试语义继承自 fetch.Client
type Client struct {
	api    completionAPI
	config *Config
}

// New 创建补全客户端
func New(cfg *Config) (*Client, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.Internal("ai client requires a base url")
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return &Client{
		api:    fetch.New(cfg.BaseURL, fetch.WithTimeout(cfg.Timeout)),
		config: cfg,
	}, nil
}

// ChatCompletion 调用 chat completions 接口
func (c *Client) ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, errors.BadRequest("completion request has no messages")
	}
	if req.Model == "" {
		req.Model = c.config.Model
	}

	opts := []fetch.RequestOption{fetch.WithContext(ctx)}
	if c.config.APIKey != "" {
		opts = append(opts, fetch.WithHeader(map[string]string{
			"Authorization": "Bearer " + c.config.APIKey,
		}))
	}

	var resp ChatResponse
	opts = append(opts, fetch.WithResponse(&resp))

	if err := c.api.Post(completionsPath, req, opts...); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.BadGateway("completion returned no choices")
	}
	return &resp, nil
}

// Summarize 生成文章摘要
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", errors.BadRequest("text to summarize is empty")
	}

	resp, err := c.ChatCompletion(ctx, &ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You summarize news articles in two or three sentences."},
			{Role: "user", Content: text},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Message.Content, nil
}
