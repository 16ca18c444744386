package profilegen

import (
	"strings"

	"artisan-market-api/internal/domain/entity"
)

// FormatDraft 将远程端点返回的松散字段规范化为画像草稿
//
// 这是非类型化数据进入系统的唯一边界：任何形状的输入都产出一个
// 合法草稿，缺失或畸形字段落为零值，绝不返回 nil、绝不报错。
func FormatDraft(raw map[string]any) *entity.ProfileDraft {
	return &entity.ProfileDraft{
		Name:            stringField(raw, "name"),
		Bio:             stringField(raw, "bio"),
		HighlightBio:    stringField(raw, "highlightBio", "highlight_bio"),
		Specialty:       stringField(raw, "specialty"),
		City:            stringField(raw, "city"),
		Country:         stringField(raw, "country"),
		Techniques:      listField(raw, "techniques"),
		Styles:          listField(raw, "styles"),
		ProfileImageURL: stringField(raw, "profileImageUrl", "profile_image_url"),
		SocialLinks:     linkListField(raw, "socialLinks", "social_links"),
	}
}

// FormatDraftWithFallback 规范化后逐字段回填缺省值
// 远程增强结果优先，空字段取用户手动录入的对应值
func FormatDraftWithFallback(raw map[string]any, fallback *entity.ProfileDraft) *entity.ProfileDraft {
	draft := FormatDraft(raw)
	if fallback == nil {
		return draft
	}
	if draft.Name == "" {
		draft.Name = fallback.Name
	}
	if draft.Bio == "" {
		draft.Bio = fallback.Bio
	}
	if draft.HighlightBio == "" {
		draft.HighlightBio = fallback.HighlightBio
	}
	if draft.Specialty == "" {
		draft.Specialty = fallback.Specialty
	}
	if draft.City == "" {
		draft.City = fallback.City
	}
	if draft.Country == "" {
		draft.Country = fallback.Country
	}
	if draft.ProfileImageURL == "" {
		draft.ProfileImageURL = fallback.ProfileImageURL
	}
	if len(draft.Techniques) == 0 {
		draft.Techniques = append([]string(nil), fallback.Techniques...)
	}
	if len(draft.Styles) == 0 {
		draft.Styles = append([]string(nil), fallback.Styles...)
	}
	if len(draft.SocialLinks) == 0 {
		draft.SocialLinks = append([]string(nil), fallback.SocialLinks...)
	}
	return draft
}

// stringField 从多个候选键中取第一个可转为字符串的值
func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// listField 从多个候选键中取第一个可转为字符串序列的值
func listField(raw map[string]any, keys ...string) []string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if items := asStringList(v); len(items) > 0 {
				return items
			}
		}
	}
	return []string{}
}

// linkListField 同 listField，但序列元素允许是 {url: ...} 对象
func linkListField(raw map[string]any, keys ...string) []string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if items := asLinkList(v); len(items) > 0 {
				return items
			}
		}
	}
	return []string{}
}

// asString 非字符串值一律视为缺失
func asString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// asStringList 序列原样通过，非空字符串整体包装为单元素序列
// 不做逗号拆分："oil, acrylic" 保持为一个元素
func asStringList(v any) []string {
	switch val := v.(type) {
	case []string:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(item); s != "" {
				items = append(items, s)
			}
		}
		return items
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s := asString(item); s != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return []string{s}
		}
		return []string{}
	default:
		return []string{}
	}
}

// asLinkList 社交链接序列：元素可为链接字符串或 {url: ...} 对象
func asLinkList(v any) []string {
	switch val := v.(type) {
	case []string, string:
		return asStringList(val)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			switch link := item.(type) {
			case string:
				if s := strings.TrimSpace(link); s != "" {
					items = append(items, s)
				}
			case map[string]any:
				if s := asString(link["url"]); s != "" {
					items = append(items, s)
				}
			}
		}
		return items
	default:
		return []string{}
	}
}
