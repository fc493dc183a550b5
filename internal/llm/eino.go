package llm

import (
	"context"
	"errors"
	"fmt"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Eino implements Completer on top of an eino chat model.
type Eino struct {
	chatModel   model.BaseChatModel
	temperature float64
}

func NewEino(ctx context.Context, s Settings) (*Eino, error) {
	cm, err := einoopenai.NewChatModel(ctx, chatModelConfig(s))
	if err != nil {
		return nil, fmt.Errorf("init eino chat model: %w", err)
	}
	return NewEinoWithModel(cm, s.Temperature), nil
}

func chatModelConfig(s Settings) *einoopenai.ChatModelConfig {
	return &einoopenai.ChatModelConfig{
		BaseURL: s.BaseURL,
		APIKey:  s.APIKey,
		Model:   s.Model,
		Timeout: s.Timeout,
	}
}

// NewEinoWithModel wraps an existing chat model.
func NewEinoWithModel(cm model.BaseChatModel, temperature float64) *Eino {
	return &Eino{chatModel: cm, temperature: temperature}
}

func (e *Eino) Complete(ctx context.Context, req Request) (string, error) {
	msgs := make([]*schema.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, schema.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, schema.AssistantMessage(m.Content, nil))
		default:
			msgs = append(msgs, schema.UserMessage(m.Content))
		}
	}

	var opts []model.Option
	temperature := req.Temperature
	if temperature == 0 {
		temperature = e.temperature
	}
	if temperature > 0 {
		opts = append(opts, model.WithTemperature(float32(temperature)))
	}
	if req.Model != "" {
		opts = append(opts, model.WithModel(req.Model))
	}

	resp, err := e.chatModel.Generate(ctx, msgs, opts...)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errors.New("eino: empty response")
	}
	return resp.Content, nil
}
