// Package imagegen abstracts the image-generation service.
package imagegen

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const DefaultSize = "1024x1024"

// Request asks for Count images for Prompt at Size ("WIDTHxHEIGHT").
type Request struct {
	Prompt string
	Size   string
	Count  int
}

// Generator returns the URL of one generated image.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Settings configures the concrete generator.
type Settings struct {
	APIKey         string
	BaseURL        string
	Model          string
	PlaceholderURL string
	Timeout        time.Duration
}

// New returns an OpenAI backed generator, or a Placeholder when no
// credentials are configured so that no network call is attempted.
func New(s Settings) Generator {
	if s.APIKey == "" {
		return NewPlaceholder(s.PlaceholderURL, "article-image")
	}
	return NewOpenAI(s)
}

// Placeholder produces deterministic URLs under a namespace: the same prompt
// and size always map to the same URL.
type Placeholder struct {
	baseURL   string
	namespace string
}

func NewPlaceholder(baseURL, namespace string) *Placeholder {
	if baseURL == "" {
		baseURL = "https://picsum.photos/seed"
	}
	return &Placeholder{baseURL: strings.TrimSuffix(baseURL, "/"), namespace: namespace}
}

func (p *Placeholder) Generate(_ context.Context, req Request) (string, error) {
	sum := sha1.Sum([]byte(req.Prompt))
	return p.URL(p.namespace+"-"+hex.EncodeToString(sum[:6]), req.Size), nil
}

// URL builds a placeholder URL for an explicit seed.
func (p *Placeholder) URL(seed, size string) string {
	w, h := ParseSize(size)
	return fmt.Sprintf("%s/%s/%d/%d", p.baseURL, seed, w, h)
}

// ParseSize splits "WIDTHxHEIGHT", falling back to 1024x1024.
func ParseSize(size string) (int, int) {
	var w, h int
	if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 1024, 1024
	}
	return w, h
}

// SizeForRatio maps an aspect ratio onto a size the image API accepts.
func SizeForRatio(ratio string) string {
	switch ratio {
	case "16:9", "4:3", "3:2", "2.35:1":
		return "1792x1024"
	case "9:16", "3:4", "2:3":
		return "1024x1792"
	default:
		return DefaultSize
	}
}
