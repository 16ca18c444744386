// Package generation 提供远程画像生成服务客户端
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"artisan-market-api/internal/application/profilegen"
	"artisan-market-api/internal/config"
	"artisan-market-api/pkg/metrics"
)

const (
	pathGenerateFromURLs    = "/generate-from-urls"
	pathGenerateFromAccount = "/generate-from-account"
	pathGenerateFromManual  = "/generate-from-manual"
)

// Client 远程画像生成端点的 HTTP 客户端
// 实现 profilegen.RemoteClient
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient 创建生成服务客户端
func NewClient(cfg *config.GenerationConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tracer: otel.Tracer("generation-client"),
	}
}

type urlsRequest struct {
	URLs      []string `json:"urls"`
	ContextID string   `json:"contextId"`
}

type accountRequest struct {
	ContextID string `json:"contextId"`
}

type manualRequest struct {
	ManualInstagramData manualData `json:"manualInstagramData"`
	ContextID           string     `json:"contextId"`
}

type manualData struct {
	Username     string `json:"username"`
	DisplayName  string `json:"displayName,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ImageDataURI string `json:"imageDataUri,omitempty"`
}

// generateResponse 三个端点共用的响应包络
type generateResponse struct {
	Success       bool           `json:"success"`
	Error         string         `json:"error"`
	ProfileData   map[string]any `json:"profileData"`
	ProcessedURLs int            `json:"processedUrls"`
	TotalURLs     int            `json:"totalUrls"`
	PostsAnalyzed int            `json:"posts_analyzed"`
}

// GenerateFromURLs 基于公开网页链接生成画像
func (c *Client) GenerateFromURLs(ctx context.Context, contextID string, urls []string) (*profilegen.RemoteResult, error) {
	return c.call(ctx, pathGenerateFromURLs, &urlsRequest{
		URLs:      urls,
		ContextID: contextID,
	})
}

// GenerateFromAccount 基于已连接社交账号生成画像
// 该端点以身份标识作为 contextId
func (c *Client) GenerateFromAccount(ctx context.Context, accountID string) (*profilegen.RemoteResult, error) {
	return c.call(ctx, pathGenerateFromAccount, &accountRequest{
		ContextID: accountID,
	})
}

// GenerateFromManual 基于手动录入的账号资料生成画像
func (c *Client) GenerateFromManual(ctx context.Context, contextID string, data profilegen.ManualAccountData) (*profilegen.RemoteResult, error) {
	return c.call(ctx, pathGenerateFromManual, &manualRequest{
		ManualInstagramData: manualData{
			Username:     data.Username,
			DisplayName:  data.DisplayName,
			Bio:          data.Bio,
			ImageDataURI: data.ImageDataURI,
		},
		ContextID: contextID,
	})
}

func (c *Client) call(ctx context.Context, path string, payload any) (*profilegen.RemoteResult, error) {
	ctx, span := c.tracer.Start(ctx, "generation"+path,
		trace.WithAttributes(attribute.String("generation.endpoint", path)),
	)
	defer span.End()

	start := time.Now()
	result, err := c.doCall(ctx, path, payload)
	metrics.RemoteCallDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		metrics.RemoteCallTotal.WithLabelValues(path, "error").Inc()
		return nil, err
	}
	metrics.RemoteCallTotal.WithLabelValues(path, "success").Inc()
	return result, nil
}

func (c *Client) doCall(ctx context.Context, path string, payload any) (*profilegen.RemoteResult, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("generation endpoint is empty")
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// 传输层失败的消息需带上网络签名，供上层错误分类
		return nil, fmt.Errorf("generation request failed: network error: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("generation request failed: non-2xx status code %d", httpResp.StatusCode)
	}

	var resp generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	if !resp.Success {
		message := resp.Error
		if message == "" {
			message = "generation failed without a reason"
		}
		return nil, &profilegen.RemoteError{Message: message}
	}

	return &profilegen.RemoteResult{
		ProfileData:   resp.ProfileData,
		ProcessedURLs: resp.ProcessedURLs,
		TotalURLs:     resp.TotalURLs,
		PostsAnalyzed: resp.PostsAnalyzed,
	}, nil
}
