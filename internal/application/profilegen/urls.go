package profilegen

import (
	"net/url"
	"strings"
)

// platformLabels 按主机名关键字识别的平台展示名
var platformLabels = []struct {
	keyword string
	label   string
}{
	{"instagram", "Instagram"},
	{"twitter", "X (Twitter)"},
	{"x.com", "X (Twitter)"},
	{"linkedin", "LinkedIn"},
	{"behance", "Behance"},
	{"dribbble", "Dribbble"},
	{"etsy", "Etsy"},
	{"pinterest", "Pinterest"},
}

// filterValidURLs 过滤出结构合法的绝对链接，保持原有顺序
func filterValidURLs(raw []string) []string {
	valid := make([]string, 0, len(raw))
	for _, item := range raw {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		parsed, err := url.Parse(trimmed)
		if err != nil {
			continue
		}
		if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			continue
		}
		valid = append(valid, trimmed)
	}
	return valid
}

// hostOf 提取小写主机名并去除 www. 前缀；解析失败返回空串
func hostOf(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// platformLabel 将链接翻译为进度消息里的平台名，未识别时退回主机名
func platformLabel(raw string) string {
	host := hostOf(raw)
	if host == "" {
		return "web"
	}
	for _, p := range platformLabels {
		if strings.Contains(host, p.keyword) {
			return p.label
		}
	}
	return host
}
