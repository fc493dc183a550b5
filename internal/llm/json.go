package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"article_pipeline/internal/domain"
)

// ExtractJSON strips markdown code fences and returns the text between the
// first '{' and the last '}'. It returns "" when no object is present.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return content[start : end+1]
}

// DecodeArray reads the array stored under field of the JSON object in
// content.
//
// In strict mode any deviation fails the whole decode. In lenient mode the
// envelope may be damaged or surrounded by prose: each array element that is
// itself well formed is kept and the rest are counted in skipped.
func DecodeArray[T any](content, field string, lenient bool) (items []T, skipped int, err error) {
	if lenient {
		return decodeArrayLenient[T](content, field)
	}

	payload := ExtractJSON(content)
	if payload == "" {
		return nil, 0, fmt.Errorf("response missing json object: %w", domain.ErrUpstreamParse)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, 0, fmt.Errorf("decode envelope: %v: %w", err, domain.ErrUpstreamParse)
	}

	raw, ok := envelope[field]
	if !ok {
		return nil, 0, fmt.Errorf("response missing %q array: %w", field, domain.ErrUpstreamParse)
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %v: %w", field, err, domain.ErrUpstreamParse)
	}
	return items, 0, nil
}

func decodeArrayLenient[T any](content, field string) ([]T, int, error) {
	start := strings.Index(content, "{")
	if start == -1 {
		return nil, 0, fmt.Errorf("response missing json object: %w", domain.ErrUpstreamParse)
	}

	result := gjson.Get(content[start:], field)
	if !result.IsArray() {
		return nil, 0, fmt.Errorf("response missing %q array: %w", field, domain.ErrUpstreamParse)
	}

	var items []T
	var skipped int
	result.ForEach(func(_, value gjson.Result) bool {
		var item T
		if err := json.Unmarshal([]byte(value.Raw), &item); err != nil {
			skipped++
			return true
		}
		items = append(items, item)
		return true
	})

	if len(items) == 0 {
		return nil, skipped, fmt.Errorf("no well-formed %s entries: %w", field, domain.ErrUpstreamParse)
	}
	return items, skipped, nil
}
