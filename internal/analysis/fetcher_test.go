package analysis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadabilityFetcher(t *testing.T) {
	paragraph := strings.Repeat("这是一段足够长的正文内容，用于测试正文提取。", 20)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>测试文章</title></head><body>
<nav>首页 | 关于</nav>
<article><h1>测试文章</h1><p>` + paragraph + `</p><p>` + paragraph + `</p></article>
</body></html>`))
	}))
	defer srv.Close()

	text, err := ReadabilityFetcher{Timeout: 5 * time.Second}.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "用于测试正文提取")
}

func TestReadabilityFetcher_CancelAbortsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err := ReadabilityFetcher{Timeout: 10 * time.Second}.Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestReadabilityFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := ReadabilityFetcher{}.Fetch(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestReadabilityFetcher_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadabilityFetcher{}.Fetch(ctx, "http://127.0.0.1:1")
	assert.ErrorIs(t, err, context.Canceled)
}
