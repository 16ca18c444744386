package profilegen

import (
	"context"
	"errors"
	"strings"
)

// ManualAccountData 手动录入的账号资料
type ManualAccountData struct {
	Username     string `json:"username"`
	DisplayName  string `json:"display_name,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ImageDataURI string `json:"image_data_uri,omitempty"`
}

// RemoteResult 远程生成端点的结构化结果
// ProfileData 为松散类型的后端字段，必须经 Draft Formatter 规范化后才能外流
type RemoteResult struct {
	ProfileData   map[string]any
	ProcessedURLs int
	TotalURLs     int
	PostsAnalyzed int
}

// RemoteError 远程端点显式报告的业务失败（success: false）
// 对消息分类而言与传输层失败同等对待
type RemoteError struct {
	Message string
}

// Error 实现 error 接口
func (e *RemoteError) Error() string {
	return e.Message
}

// RemoteClient 远程画像生成端点客户端
// 端点视为黑盒：接收请求并返回结构化结果或失败，本侧不做内容分析、不重试
type RemoteClient interface {
	// GenerateFromURLs 基于公开网页链接生成画像
	GenerateFromURLs(ctx context.Context, contextID string, urls []string) (*RemoteResult, error)

	// GenerateFromAccount 基于已连接社交账号生成画像
	GenerateFromAccount(ctx context.Context, accountID string) (*RemoteResult, error)

	// GenerateFromManual 基于手动录入的账号资料生成画像（AI 增强 + 原始数据合并）
	GenerateFromManual(ctx context.Context, contextID string, data ManualAccountData) (*RemoteResult, error)
}

// IsNoConnectionError 识别"未找到已连接账号"的失败信号
func IsNoConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		return false
	}
	msg := strings.ToLower(remoteErr.Message)
	return strings.Contains(msg, "no connection") ||
		strings.Contains(msg, "no connected account") ||
		strings.Contains(msg, "not connected")
}
