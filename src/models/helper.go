package models

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

var imageExtMap = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".heic": "image/heic",
}

// NewProvider returns a concrete Generator for the named provider.
func NewProvider(ctx context.Context, provider, model string) (Generator, error) {
	switch provider {
	case "openai":
		return NewOpenAILLM(model), nil
	case "gemini", "google":
		return NewGeminiLLM(ctx, model)
	case "ollama":
		return NewOllamaLLM(model)
	case "anthropic", "claude":
		return NewAnthropicLLM(model), nil
	case "dummy":
		return NewDummyLLM(""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// imageMIMEFromURL guesses the media type of a referenced image from its
// URL path extension. Unknown extensions fall back to image/jpeg, which
// the vision models accept for the common upload formats.
func imageMIMEFromURL(rawURL string) string {
	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	} else {
		ext = strings.ToLower(filepath.Ext(rawURL))
	}
	if ext == "" {
		return "image/jpeg"
	}
	if mt, ok := imageExtMap[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); strings.HasPrefix(mt, "image/") {
		if i := strings.IndexByte(mt, ';'); i >= 0 {
			mt = strings.TrimSpace(mt[:i])
		}
		return mt
	}
	return "image/jpeg"
}

// flattenMessage renders a message body as plain text for providers that
// cannot attach remote images; image parts become reference lines so the
// model at least sees what was uploaded.
func flattenMessage(m Message) string {
	if !m.Multipart() {
		return m.Text
	}
	var sb strings.Builder
	var refs []string
	for _, p := range m.Parts {
		if p.ImageURL != "" {
			refs = append(refs, p.ImageURL)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	if len(refs) > 0 {
		sb.WriteString("\n\nReferenced images:\n")
		for _, r := range refs {
			sb.WriteString("- ")
			sb.WriteString(r)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// splitSystem separates the leading system message (if any) from the rest.
func splitSystem(messages []Message) (system string, rest []Message) {
	if len(messages) > 0 && messages[0].Role == RoleSystem {
		return messages[0].Text, messages[1:]
	}
	return "", messages
}
