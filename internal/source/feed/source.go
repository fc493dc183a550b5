// Package feed collects published articles and their engagement counters
// from a paginated JSON endpoint.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"article_pipeline/internal/domain"
)

const (
	SourceID   = "feed"
	SourceName = "Article Feed"
)

type Config struct {
	BaseURL        string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Source struct {
	httpClient     *http.Client
	baseURL        string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchArticles walks up to maxPages pages. On a page failure the articles
// collected so far are returned with the error.
func (s *Source) FetchArticles(ctx context.Context, maxPages int) ([]domain.RawArticle, error) {
	var items []Item

	for page := 0; page < maxPages; page++ {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			return s.transform(items), fmt.Errorf("fetch page %d: %w", page, err)
		}

		items = append(items, resp.Content...)

		s.logger.Debug("fetched page",
			"page", page,
			"articles", len(resp.Content),
			"total", len(items),
		)

		if page >= resp.PageInfo.NumPages-1 {
			break
		}
	}

	return s.transform(items), nil
}

func (s *Source) pageURL(page int) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("pageSize", strconv.Itoa(s.pageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *Source) fetchPage(ctx context.Context, page int) (*APIResponse, error) {
	pageURL, err := s.pageURL(page)
	if err != nil {
		return nil, err
	}

	var resp *APIResponse
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, pageURL)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, pageURL string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ArticlePipeline/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if s.maxBackoff > 0 && backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(items []Item) []domain.RawArticle {
	articles := make([]domain.RawArticle, 0, len(items))

	for _, it := range items {
		if strings.TrimSpace(it.Title) == "" {
			s.logger.Warn("skipping article without title", "external_id", it.ID)
			continue
		}

		content := it.Content
		if strings.TrimSpace(content) == "" && it.Digest != nil {
			content = *it.Digest
		}

		articles = append(articles, domain.RawArticle{
			Title:   it.Title,
			Content: content,
			Likes:   it.Likes,
			Reads:   it.Reads,
			URL:     it.URL,
		})
	}

	return articles
}
