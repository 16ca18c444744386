// Package entity 定义领域实体
package entity

// ProfileDraft 画像生成草稿
// 远程生成服务的规范化输出：所有字段均为可选，缺失字段为零值而非 null，
// 序列字段永远为非 nil 切片，下游表单绑定无需判空
type ProfileDraft struct {
	Name            string   `json:"name"`
	Bio             string   `json:"bio"`
	HighlightBio    string   `json:"highlight_bio"`
	Specialty       string   `json:"specialty"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Techniques      []string `json:"techniques"`
	Styles          []string `json:"styles"`
	ProfileImageURL string   `json:"profile_image_url"`
	SocialLinks     []string `json:"social_links"`
}

// FilledFieldCount 统计草稿中已填充的字段数
// 非空标量字段和非空序列字段各计 1
func (d *ProfileDraft) FilledFieldCount() int {
	if d == nil {
		return 0
	}
	count := 0
	for _, s := range []string{d.Name, d.Bio, d.HighlightBio, d.Specialty, d.City, d.Country, d.ProfileImageURL} {
		if s != "" {
			count++
		}
	}
	for _, seq := range [][]string{d.Techniques, d.Styles, d.SocialLinks} {
		if len(seq) > 0 {
			count++
		}
	}
	return count
}

// IsEmpty 检查草稿是否完全为空
func (d *ProfileDraft) IsEmpty() bool {
	return d.FilledFieldCount() == 0
}
