package analysis

import (
	"context"
	"fmt"
	"net/http"
	nurl "net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const defaultFetchTimeout = 30 * time.Second

// ContentFetcher returns the readable text of a published page.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ReadabilityFetcher downloads a page and extracts its main text. The
// request is bound to ctx and to Timeout, whichever ends first.
type ReadabilityFetcher struct {
	Timeout time.Duration
	Client  *http.Client
}

func (f ReadabilityFetcher) Fetch(ctx context.Context, url string) (string, error) {
	pageURL, err := nurl.ParseRequestURI(url)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", url, err)
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", url, err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
