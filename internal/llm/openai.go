package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements Completer with the openai-go chat completions API. Any
// OpenAI compatible endpoint (DeepSeek, Qwen gateways) works via BaseURL.
type OpenAI struct {
	client      openai.Client
	model       string
	temperature float64
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

	return &OpenAI{
		client:      openai.NewClient(opts...),
		model:       s.Model,
		temperature: s.Temperature,
	}
}

func (o *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	model := req.Model
	if model == "" {
		model = o.model
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = o.temperature
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: msgs,
	}
	if temperature > 0 {
		params.Temperature = openai.Float(temperature)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
