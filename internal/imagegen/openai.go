package imagegen

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI calls the images/generations endpoint.
type OpenAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(s Settings, extra ...option.RequestOption) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(s.APIKey)}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	if s.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(s.Timeout))
	}
	opts = append(opts, extra...)

	return &OpenAI{client: openai.NewClient(opts...), model: s.Model}
}

func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	size := req.Size
	if size == "" {
		size = DefaultSize
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}

	resp, err := o.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: req.Prompt,
		Model:  openai.ImageModel(o.model),
		N:      openai.Int(int64(count)),
		Size:   openai.ImageGenerateParamsSize(size),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("openai: no image url in response")
	}
	return resp.Data[0].URL, nil
}
