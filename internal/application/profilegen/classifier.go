package profilegen

import (
	"fmt"
	"regexp"
	"strings"
)

// networkErrorPattern 网络类失败的消息签名
// 不匹配的错误按业务失败处理，消息原样透传
var networkErrorPattern = regexp.MustCompile(
	`(?i)(failed to fetch|network|non-2xx|status code|timed? ?out|connection (refused|reset)|unreachable|\b50[234]\b)`,
)

// socialMediaHosts 已知会屏蔽服务端抓取的社交平台
var socialMediaHosts = []string{
	"instagram.com",
	"twitter.com",
	"x.com",
	"facebook.com",
	"tiktok.com",
}

// linkAggregatorHosts 已知会屏蔽服务端抓取的链接聚合服务
var linkAggregatorHosts = []string{
	"linktr.ee",
	"linkin.bio",
	"lnk.bio",
	"beacons.ai",
	"bio.link",
	"tap.bio",
	"campsite.bio",
	"solo.to",
}

// ClassifyError 将链接生成失败翻译为面向用户的可操作提示
//
// 仅消息带网络失败签名的错误参与分类；分类依据是提交的链接列表而非
// 错误本身（无法得知具体哪个链接失败）。优先级：社交平台 > 链接聚合
// 页 > 通用网络失败。业务类错误原样返回。
func ClassifyError(err error, attemptedURLs []string) string {
	msg := err.Error()
	if !networkErrorPattern.MatchString(msg) {
		return msg
	}

	if matched := matchHosts(attemptedURLs, socialMediaHosts); len(matched) > 0 {
		return fmt.Sprintf(
			"Social media sites like %s block automated access, so we couldn't read those pages. "+
				"Try your personal website or portfolio instead, or connect your Instagram account to import your work directly.",
			strings.Join(matched, ", "),
		)
	}

	if matched := matchHosts(attemptedURLs, linkAggregatorHosts); len(matched) > 0 {
		return fmt.Sprintf(
			"Link-in-bio services like %s block automated access. "+
				"Try submitting the individual links from that page instead, such as your website or online shop.",
			strings.Join(matched, ", "),
		)
	}

	return fmt.Sprintf(
		"We couldn't reach the pages you submitted (%s). "+
			"Check that the links are correct and publicly accessible, then try again.",
		strings.Join(attemptedURLs, ", "),
	)
}

// matchHosts 返回链接列表中主机名命中候选集的去重主机名
func matchHosts(urls []string, hosts []string) []string {
	seen := make(map[string]struct{})
	var matched []string
	for _, raw := range urls {
		host := hostOf(raw)
		if host == "" {
			continue
		}
		for _, candidate := range hosts {
			if host == candidate || strings.HasSuffix(host, "."+candidate) {
				if _, ok := seen[candidate]; !ok {
					seen[candidate] = struct{}{}
					matched = append(matched, candidate)
				}
				break
			}
		}
	}
	return matched
}
