package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentverse/agentverse/src/cache"
)

// CachedGenerator memoizes successful completions for identical
// requests. Failures are never cached.
type CachedGenerator struct {
	Inner Generator
	Cache *cache.ResponseCache
}

func NewCachedGenerator(inner Generator, c *cache.ResponseCache) *CachedGenerator {
	return &CachedGenerator{Inner: inner, Cache: c}
}

func (g *CachedGenerator) Generate(ctx context.Context, req Request) (string, error) {
	key := cache.HashKey(requestKey(req))
	if text, ok := g.Cache.Get(key); ok {
		return text, nil
	}
	text, err := g.Inner.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	g.Cache.Set(key, text)
	return text, nil
}

// requestKey serializes everything that influences the completion.
func requestKey(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d", req.Model, req.MaxOutputTokens)
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "|%s:%s", m.Role, m.Text)
		for _, p := range m.Parts {
			fmt.Fprintf(&b, "|part:%s:%s", p.Text, p.ImageURL)
		}
	}
	return b.String()
}
