// Package file loads collected articles from a local JSON document.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"article_pipeline/internal/domain"
)

// Source reads either a JSON array of articles or an object with an
// "articles" array.
type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) ID() string {
	return "file:" + filepath.Base(s.path)
}

func (s *Source) Name() string {
	return s.path
}

// FetchArticles ignores maxPages; the whole file is one page.
func (s *Source) FetchArticles(ctx context.Context, _ int) ([]domain.RawArticle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read articles file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	var articles []domain.RawArticle
	if strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal([]byte(trimmed), &articles)
	} else {
		var doc struct {
			Articles []domain.RawArticle `json:"articles"`
		}
		err = json.Unmarshal([]byte(trimmed), &doc)
		articles = doc.Articles
	}
	if err != nil {
		return nil, fmt.Errorf("decode articles file: %w", err)
	}
	return articles, nil
}
