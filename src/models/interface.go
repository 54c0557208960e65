package models

import "context"

// Role tags a chat message for the generation service.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Part is one unit of multi-part message content. Exactly one of Text or
// ImageURL is set; an image part references an already-uploaded public URL.
type Part struct {
	Text     string
	ImageURL string
}

// Message carries either plain text content (Parts empty) or an ordered
// multi-part body. When parts are present the text part comes first,
// followed by image parts in upload order.
type Message struct {
	Role  Role
	Text  string
	Parts []Part
}

// Multipart reports whether the message uses part-based content.
func (m Message) Multipart() bool { return len(m.Parts) > 0 }

// Request is one fully assembled invocation: an ordered message sequence
// (system first, then user), the model identifier, and the output bound.
// Requests are built fresh per invocation and never reused.
type Request struct {
	Messages        []Message
	Model           string
	MaxOutputTokens int
}

// Generator produces a single text completion for an assembled request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
