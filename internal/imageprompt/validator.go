package imageprompt

import (
	"strings"
	"unicode"
)

const (
	DefaultMaxAttempts = 10
	DefaultThreshold   = 3
)

// vocabulary is the controlled set of visual elements compared between
// prompts. Terms are lowercase.
var vocabulary = func() []string {
	terms := []string{
		// locations
		"办公室", "街道", "客厅", "卧室", "教室", "森林", "山间", "湖边", "商场", "医院", "乡村", "天台",
		"office", "street", "park", "beach", "cafe", "kitchen", "library", "forest", "mountain",
		// times
		"日出", "日落", "夜晚", "早上", "中午", "下午",
		"morning", "sunset", "sunrise", "night", "dawn", "dusk",
		// people
		"女性", "男士", "孩子", "老师", "医生", "情侣", "母亲", "团队",
		"woman", "child", "family", "student", "couple", "elderly",
		// actions
		"微笑", "工作", "阅读", "思考", "交谈", "喝咖啡", "跑步", "拥抱",
		"reading", "walking", "running", "working", "smiling", "talking",
		// perspectives
		"近景", "仰视", "俯视", "第一人称", "鸟瞰",
		"close-up", "aerial", "wide shot", "top-down", "portrait",
	}
	for _, s := range scenarios {
		terms = append(terms, s.Time, s.Location, s.Person, s.Action, s.Perspective)
	}
	return terms
}()

// Validator removes near-duplicate prompts from a set.
type Validator struct {
	// Threshold is the number of shared vocabulary terms that makes two
	// prompts similar.
	Threshold int
	// MaxAttempts bounds substitutions per prompt. After the last attempt the
	// substitute is kept even if still similar.
	MaxAttempts int
}

func NewValidator(threshold, maxAttempts int) Validator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return Validator{Threshold: threshold, MaxAttempts: maxAttempts}
}

// Similar reports whether a and b normalize to the same text or share at
// least Threshold vocabulary terms.
func (v Validator) Similar(a, b string) bool {
	if normalize(a) == normalize(b) {
		return true
	}
	return sharedTerms(a, b) >= v.Threshold
}

// Validate returns a copy of prompts in which every prompt similar to an
// earlier one has been replaced by values drawn from next. The earlier
// prompt of a similar pair is always kept verbatim.
func (v Validator) Validate(prompts []string, next func() string) (out []string, replaced int) {
	out = make([]string, len(prompts))
	copy(out, prompts)

	for j := 1; j < len(out); j++ {
		if !v.similarToAny(out, j, j) {
			continue
		}
		replaced++
		for attempt := 0; attempt < v.MaxAttempts; attempt++ {
			out[j] = next()
			if !v.similarToAny(out, j, len(out)) {
				break
			}
		}
	}
	return out, replaced
}

// Pad appends values drawn from next until the set holds n prompts. A drawn
// prompt similar to one already in the set is drawn again, up to MaxAttempts
// draws per slot, after which the last draw is kept.
func (v Validator) Pad(prompts []string, n int, next func() string) (out []string, padded int) {
	out = make([]string, len(prompts), max(n, len(prompts)))
	copy(out, prompts)

	for len(out) < n {
		out = append(out, "")
		j := len(out) - 1
		for attempt := 0; attempt < v.MaxAttempts; attempt++ {
			out[j] = next()
			if !v.similarToAny(out, j, j) {
				break
			}
		}
		padded++
	}
	return out, padded
}

// similarToAny compares out[j] with out[i] for every i < limit, i != j.
func (v Validator) similarToAny(out []string, j, limit int) bool {
	for i := 0; i < limit; i++ {
		if i != j && v.Similar(out[i], out[j]) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func terms(s string) map[string]struct{} {
	lower := strings.ToLower(s)
	found := make(map[string]struct{})
	for _, t := range vocabulary {
		if strings.Contains(lower, t) {
			found[t] = struct{}{}
		}
	}
	return found
}

func sharedTerms(a, b string) int {
	ta, tb := terms(a), terms(b)
	n := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			n++
		}
	}
	return n
}
