package models

import (
	"context"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicLLM implements Generator using Anthropic's Messages API.
type AnthropicLLM struct {
	Client *anthropic.Client
	Model  string
}

// NewAnthropicLLM constructs a client. It reads ANTHROPIC_API_KEY from the env.
func NewAnthropicLLM(model string) *AnthropicLLM {
	key := os.Getenv("ANTHROPIC_API_KEY")
	cl := anthropic.NewClient(
		anthropicopt.WithAPIKey(key),
	)
	return &AnthropicLLM{Client: &cl, Model: model}
}

func (a *AnthropicLLM) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if a.Model != "" {
		model = a.Model
	}

	system, rest := splitSystem(req.Messages)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(req.MaxOutputTokens),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	for _, m := range rest {
		var blocks []anthropic.ContentBlockParamUnion
		if !m.Multipart() {
			blocks = append(blocks, anthropic.NewTextBlock(m.Text))
		} else {
			for _, p := range m.Parts {
				if p.ImageURL != "" {
					blocks = append(blocks, anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: p.ImageURL}))
					continue
				}
				blocks = append(blocks, anthropic.NewTextBlock(p.Text))
			}
		}
		params.Messages = append(params.Messages, anthropic.NewUserMessage(blocks...))
	}

	msg, err := a.Client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return b.String(), nil
}
