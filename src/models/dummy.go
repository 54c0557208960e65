package models

import (
	"context"
	"fmt"
	"strings"
)

// DummyLLM is a lightweight Generator useful for local testing without API calls.
// It echoes the last non-empty line of the user message.
type DummyLLM struct {
	Prefix string
}

func NewDummyLLM(prefix string) *DummyLLM {
	if strings.TrimSpace(prefix) == "" {
		prefix = "Dummy response:"
	}
	return &DummyLLM{Prefix: prefix}
}

func (d *DummyLLM) Generate(_ context.Context, req Request) (string, error) {
	var input string
	for _, m := range req.Messages {
		if m.Role == RoleUser {
			input = flattenMessage(m)
		}
	}

	lines := strings.Split(input, "\n")
	var last string
	for i := len(lines) - 1; i >= 0; i-- {
		candidate := strings.TrimSpace(lines[i])
		if candidate != "" {
			last = candidate
			break
		}
	}
	if last == "" {
		last = "<empty prompt>"
	}
	return fmt.Sprintf("%s %s", d.Prefix, last), nil
}
