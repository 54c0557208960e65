package models

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

// OllamaLLM implements Generator against a local Ollama server. Remote
// image URLs cannot be attached to Ollama requests, so multi-part content
// is flattened to text with the URLs referenced inline.
type OllamaLLM struct {
	Client *ollama.Client
	Model  string
}

func NewOllamaLLM(model string) (*OllamaLLM, error) {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = "http://localhost:11434"
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", host, err)
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	c := ollama.NewClient(u, httpClient)
	return &OllamaLLM{Client: c, Model: model}, nil
}

func (o *OllamaLLM) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if o.Model != "" {
		model = o.Model
	}

	messages := make([]ollama.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, ollama.Message{
			Role:    string(m.Role),
			Content: flattenMessage(m),
		})
	}

	stream := false
	chatReq := &ollama.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   &stream,
	}
	if req.MaxOutputTokens > 0 {
		chatReq.Options = map[string]any{"num_predict": req.MaxOutputTokens}
	}

	var text strings.Builder
	if err := o.Client.Chat(ctx, chatReq, func(resp ollama.ChatResponse) error {
		text.WriteString(resp.Message.Content)
		return nil
	}); err != nil {
		return "", err
	}
	return text.String(), nil
}
