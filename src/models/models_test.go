package models

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/agentverse/agentverse/src/cache"
)

type failingGenerator struct {
	err   error
	calls int
}

func (f *failingGenerator) Generate(ctx context.Context, req Request) (string, error) {
	f.calls++
	return "", f.err
}

func TestInvokerClassifiesFailures(t *testing.T) {
	gen := &failingGenerator{err: errors.New("connection reset by peer")}
	var logged strings.Builder
	iv := &Invoker{Generator: gen, Logger: log.New(&logged, "", 0)}

	_, err := iv.Invoke(context.Background(), Request{Model: "gpt-4o-mini"})
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if errors.Is(err, gen.err) {
		t.Fatalf("underlying cause leaked to the caller")
	}
	if !strings.Contains(logged.String(), "connection reset") {
		t.Errorf("diagnostic not logged: %q", logged.String())
	}
	if gen.calls != 1 {
		t.Errorf("expected exactly one attempt, got %d", gen.calls)
	}
}

func TestInvokerReturnsTextVerbatim(t *testing.T) {
	iv := NewInvoker(NewDummyLLM("echo:"))
	text, err := iv.Invoke(context.Background(), Request{
		Messages: []Message{
			{Role: RoleSystem, Text: "You are a test."},
			{Role: RoleUser, Text: "hello world"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "echo: hello world" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestFlattenMessageReferencesImages(t *testing.T) {
	m := Message{
		Role: RoleUser,
		Parts: []Part{
			{Text: "look at this"},
			{ImageURL: "https://files.example/a.png"},
			{ImageURL: "https://files.example/b.png"},
		},
	}
	flat := flattenMessage(m)
	if !strings.HasPrefix(flat, "look at this") {
		t.Fatalf("text part lost: %q", flat)
	}
	first := strings.Index(flat, "a.png")
	second := strings.Index(flat, "b.png")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("image references missing or out of order: %q", flat)
	}
}

func TestImageMIMEFromURL(t *testing.T) {
	cases := map[string]string{
		"https://files.example/chat-uploads/1-scan.png":      "image/png",
		"https://files.example/agent-uploads/2-photo.jpeg":   "image/jpeg",
		"https://files.example/agent-uploads/3-sticker.webp": "image/webp",
		"https://files.example/no-extension":                 "image/jpeg",
	}
	for url, want := range cases {
		if got := imageMIMEFromURL(url); got != want {
			t.Errorf("imageMIMEFromURL(%q) = %q, want %q", url, got, want)
		}
	}
}

func TestCachedGeneratorMemoizesSuccess(t *testing.T) {
	inner := &countingGenerator{text: "cached answer"}
	gen := NewCachedGenerator(inner, cache.NewResponseCache(8, time.Minute))
	req := Request{
		Messages: []Message{{Role: RoleUser, Text: "same question"}},
		Model:    "gpt-4o-mini",
	}

	for i := 0; i < 3; i++ {
		text, err := gen.Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if text != "cached answer" {
			t.Fatalf("text = %q", text)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("inner invoked %d times, want 1", inner.calls)
	}

	// A different request misses the cache.
	req.Messages[0].Text = "other question"
	if _, err := gen.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("inner invoked %d times, want 2", inner.calls)
	}
}

func TestCachedGeneratorSkipsFailures(t *testing.T) {
	inner := &failingGenerator{err: errors.New("boom")}
	gen := NewCachedGenerator(inner, cache.NewResponseCache(8, time.Minute))
	req := Request{Messages: []Message{{Role: RoleUser, Text: "q"}}}

	for i := 0; i < 2; i++ {
		if _, err := gen.Generate(context.Background(), req); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.calls != 2 {
		t.Fatalf("failure was cached: %d calls", inner.calls)
	}
}

type countingGenerator struct {
	text  string
	calls int
}

func (g *countingGenerator) Generate(ctx context.Context, req Request) (string, error) {
	g.calls++
	return g.text, nil
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(context.Background(), "clippy", "x"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
