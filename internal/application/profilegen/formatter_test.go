package profilegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisan-market-api/internal/domain/entity"
)

func TestFormatDraftNormalizesLooseFields(t *testing.T) {
	draft := FormatDraft(map[string]any{
		"name":            "Vera Moreno",
		"bio":             42, // 非字符串值视为缺失
		"specialty":       "ceramics",
		"techniques":      []any{"raku", "slip casting"},
		"styles":          "wabi-sabi, minimalism",
		"profileImageUrl": "https://cdn.example.com/vera.jpg",
		"socialLinks": []any{
			"https://veramoreno.art",
			map[string]any{"url": "https://shop.veramoreno.art"},
			map[string]any{"label": "no url key"},
		},
	})

	require.NotNil(t, draft)
	assert.Equal(t, "Vera Moreno", draft.Name)
	assert.Empty(t, draft.Bio)
	assert.Equal(t, "ceramics", draft.Specialty)
	assert.Equal(t, []string{"raku", "slip casting"}, draft.Techniques)
	// 字符串整体包装为单元素序列，不做逗号拆分
	assert.Equal(t, []string{"wabi-sabi, minimalism"}, draft.Styles)
	assert.Equal(t, []string{"https://veramoreno.art", "https://shop.veramoreno.art"}, draft.SocialLinks)
}

func TestFormatDraftSequencePassThroughIsIdempotent(t *testing.T) {
	raw := map[string]any{"techniques": []any{"etching", "linocut"}}

	first := FormatDraft(raw)
	second := FormatDraft(map[string]any{"techniques": first.Techniques})
	assert.Equal(t, first.Techniques, second.Techniques)
}

func TestFormatDraftNeverReturnsNil(t *testing.T) {
	for _, raw := range []map[string]any{nil, {}, {"name": nil, "techniques": 7}} {
		draft := FormatDraft(raw)
		require.NotNil(t, draft)
		assert.NotNil(t, draft.Techniques)
		assert.NotNil(t, draft.Styles)
		assert.NotNil(t, draft.SocialLinks)
	}
}

func TestFormatDraftWithFallbackPrefersEnhancedValues(t *testing.T) {
	fallback := &entity.ProfileDraft{
		Name: "typed name",
		Bio:  "hello from the studio",
	}

	draft := FormatDraftWithFallback(map[string]any{
		"name": "Enhanced Name",
		"bio":  "",
	}, fallback)

	assert.Equal(t, "Enhanced Name", draft.Name)
	assert.Equal(t, "hello from the studio", draft.Bio)
}

func TestFormatDraftWithFallbackFillsEmptySequences(t *testing.T) {
	fallback := &entity.ProfileDraft{SocialLinks: []string{"https://instagram.com/vera"}}

	draft := FormatDraftWithFallback(map[string]any{"socialLinks": []any{}}, fallback)
	assert.Equal(t, []string{"https://instagram.com/vera"}, draft.SocialLinks)
}
