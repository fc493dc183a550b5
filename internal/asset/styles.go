package asset

import "strings"

const AutoStyle = "auto"

var styleSuffixes = map[string]string{
	"realistic":    "，写实摄影风格，自然光线，高清细节，8K",
	"illustration": "，扁平插画风格，色彩明快，线条干净",
	"watercolor":   "，水彩画风格，柔和晕染，留白自然",
	"ink":          "，中国水墨画风格，意境悠远，黑白灰层次",
	"cartoon":      "，卡通风格，圆润可爱，色彩饱和",
	"3d":           "，3D 渲染风格，C4D 质感，柔和阴影",
	"minimalist":   "，极简主义风格，大面积留白，单一主色",
	"vintage":      "，复古胶片风格，暖色调，轻微颗粒感",
}

const autoSuffix = "，画面风格与文章氛围协调，构图简洁，高质量"

// StyleSuffix returns the text appended to every prompt for style. Unknown
// styles are passed through as a free-form description.
func StyleSuffix(style string) string {
	style = strings.TrimSpace(style)
	if style == "" || style == AutoStyle {
		return autoSuffix
	}
	if s, ok := styleSuffixes[strings.ToLower(style)]; ok {
		return s
	}
	return "，" + style + "风格"
}

type coverRule struct {
	name     string
	keywords []string
	template string
}

// coverRules are tried in order; the first rule with a matching keyword
// wins.
var coverRules = []coverRule{
	{
		name:     "business",
		keywords: []string{"商业", "创业", "职场", "管理", "营销", "投资", "理财", "企业", "business"},
		template: "公众号封面图，主题「%s」，商务风格，简洁大气的现代办公场景，蓝灰色调，留出标题空间",
	},
	{
		name:     "tech",
		keywords: []string{"科技", "技术", "人工智能", "ai", "编程", "互联网", "数码", "芯片", "tech"},
		template: "公众号封面图，主题「%s」，科技感，几何线条与光效，深蓝紫色渐变，未来感",
	},
	{
		name:     "creative",
		keywords: []string{"设计", "创意", "艺术", "摄影", "写作", "灵感", "design"},
		template: "公众号封面图，主题「%s」，创意拼贴风格，大胆配色，富有艺术感",
	},
	{
		name:     "lifestyle",
		keywords: []string{"生活", "美食", "旅行", "健康", "家庭", "育儿", "情感", "travel"},
		template: "公众号封面图，主题「%s」，温暖的生活场景，自然光，柔和暖色调",
	},
}

// CoverTemplate picks the cover rule for an article. Without a match the
// business rule applies.
func CoverTemplate(title, content string) (name, template string) {
	text := strings.ToLower(title + "\n" + content)
	for _, rule := range coverRules {
		for _, kw := range rule.keywords {
			if containsKeyword(text, kw) {
				return rule.name, rule.template
			}
		}
	}
	return coverRules[0].name, coverRules[0].template
}

// containsKeyword matches Latin keywords as whole words only, so "ai" does
// not hit "email". Other keywords match as substrings.
func containsKeyword(text, kw string) bool {
	if !isLatinWord(kw) {
		return strings.Contains(text, kw)
	}
	for from := 0; ; {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(kw)
		if (start == 0 || !isLatinByte(text[start-1])) && (end == len(text) || !isLatinByte(text[end])) {
			return true
		}
		from = start + 1
	}
}

func isLatinWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLatinByte(s[i]) {
			return false
		}
	}
	return s != ""
}

func isLatinByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
