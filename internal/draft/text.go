package draft

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultTitle is used when no usable line can be found.
const DefaultTitle = "精选好文"

const (
	headingMinRunes   = 8
	firstLineMinRunes = 10
	titleMaxRunes     = 50
	fallbackRunes     = 30
	wordsPerMinute    = 500
)

var (
	hanRe        = regexp.MustCompile(`\p{Han}`)
	latinRunRe   = regexp.MustCompile(`[A-Za-z]+`)
	headingRe    = regexp.MustCompile(`^#{1,6}\s*`)
	emphasisRe   = regexp.MustCompile("\\*\\*|__|~~|\\*|`")
	titleLabelRe = regexp.MustCompile(`(?i)^(副标题|标题|subtitle|title)\s*[:：]\s*`)
	decorRe      = regexp.MustCompile(`[【】〖〗「」『』\[\]"“”]`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// CountWords returns the number of Han ideographs plus the number of runs of
// Latin letters.
func CountWords(text string) int {
	return len(hanRe.FindAllStringIndex(text, -1)) + len(latinRunRe.FindAllStringIndex(text, -1))
}

// ReadingTime returns whole minutes at 500 words per minute, at least one.
func ReadingTime(wordCount int) int {
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// CalculateImageCount suggests how many images suit an article of
// wordCount words.
func CalculateImageCount(wordCount int) int {
	switch {
	case wordCount <= 0:
		return 0
	case wordCount < 800:
		return 1
	case wordCount < 1500:
		return 2
	case wordCount < 2500:
		return 3
	default:
		return min(4, wordCount/800)
	}
}

// ExtractTitle picks a title from generated text: a heading of suitable
// length, else a suitable first line, else the first line shortened, else
// DefaultTitle.
func ExtractTitle(content string) string {
	lines := strings.Split(content, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !headingRe.MatchString(line) {
			continue
		}
		if title := cleanTitle(line); inRange(title, headingMinRunes, titleMaxRunes) {
			return title
		}
	}

	var first string
	for _, line := range lines {
		if cleaned := cleanTitle(line); cleaned != "" {
			first = cleaned
			break
		}
	}
	if first == "" {
		return DefaultTitle
	}
	if inRange(first, firstLineMinRunes, titleMaxRunes) {
		return first
	}
	if utf8.RuneCountInString(first) > fallbackRunes {
		return string([]rune(first)[:fallbackRunes]) + "..."
	}
	return first
}

func cleanTitle(line string) string {
	s := strings.TrimSpace(line)
	s = headingRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = titleLabelRe.ReplaceAllString(s, "")
	s = decorRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.Trim(s, " :：|-·")
}

func inRange(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}
