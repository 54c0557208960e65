package agentverse

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agentverse/agentverse/src/catalog"
	"github.com/agentverse/agentverse/src/models"
	"github.com/agentverse/agentverse/src/notify"
	"github.com/agentverse/agentverse/src/storage"
)

type stubGenerator struct {
	mu    sync.Mutex
	calls int
	last  models.Request
	text  string
	err   error
	gate  chan struct{}
}

func (g *stubGenerator) Generate(ctx context.Context, req models.Request) (string, error) {
	g.mu.Lock()
	g.calls++
	g.last = req
	gate := g.gate
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return g.text, g.err
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (g *stubGenerator) lastRequest() models.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

var resumeAgent = catalog.Profile{
	ID:              "1",
	Name:            "ResumeAI",
	Description:     "AI-powered resume analyzer for job seekers",
	LongDescription: "Analyzes resumes against job descriptions. Highlights gaps. Suggests phrasing.",
	Category:        catalog.CategoryMicro,
	Price:           0.05,
	Currency:        "ETH",
	Verified:        true,
}

func TestTriggerRejectsBlankInput(t *testing.T) {
	gen := &stubGenerator{text: "unreachable"}
	rec := &notify.Recorder{}
	sess, err := NewAgentRunSession(resumeAgent, gen, nil, rec)
	if err != nil {
		t.Fatalf("NewAgentRunSession: %v", err)
	}

	if err := sess.Trigger(context.Background(), "   \n\t"); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if gen.callCount() != 0 {
		t.Fatalf("generator invoked %d times for blank input", gen.callCount())
	}
	if got := sess.State(); got != StateIdle {
		t.Fatalf("state = %v, want idle", got)
	}
	if n := len(rec.Errors()) + len(rec.Infos()) + len(rec.Successes()); n != 0 {
		t.Fatalf("blank input produced %d notifications", n)
	}
}

func TestTriggerRejectsOverlap(t *testing.T) {
	gen := &stubGenerator{text: "ok", gate: make(chan struct{})}
	sess, err := NewAgentRunSession(resumeAgent, gen, nil, nil)
	if err != nil {
		t.Fatalf("NewAgentRunSession: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- sess.Trigger(context.Background(), "first") }()

	deadline := time.After(2 * time.Second)
	for sess.State() != StateGenerating {
		select {
		case <-deadline:
			t.Fatal("session never entered generating state")
		case <-time.After(time.Millisecond):
		}
	}

	if err := sess.Trigger(context.Background(), "second"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if err := sess.Reset(); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy from reset, got %v", err)
	}

	close(gen.gate)
	if err := <-done; err != nil {
		t.Fatalf("first trigger failed: %v", err)
	}
	if gen.callCount() != 1 {
		t.Fatalf("generator invoked %d times, want 1", gen.callCount())
	}
}

func TestAgentRunSuccess(t *testing.T) {
	gen := &stubGenerator{text: "Great resume!"}
	rec := &notify.Recorder{}
	sess, err := NewAgentRunSession(resumeAgent, gen, nil, rec)
	if err != nil {
		t.Fatalf("NewAgentRunSession: %v", err)
	}

	if err := sess.Trigger(context.Background(), "Review my resume"); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if got := sess.State(); got != StateSucceeded {
		t.Fatalf("state = %v, want succeeded", got)
	}
	if got := sess.Result(); got != "Great resume!" {
		t.Fatalf("result = %q", got)
	}

	req := gen.lastRequest()
	if len(req.Messages) != 2 || req.Messages[0].Role != models.RoleSystem {
		t.Fatalf("unexpected messages: %+v", req.Messages)
	}
	sys := req.Messages[0].Text
	if !strings.Contains(sys, "ResumeAI") || !strings.Contains(sys, "analyzes resumes against job descriptions.") {
		t.Fatalf("system prompt missing agent identity: %q", sys)
	}

	if got := rec.Successes(); len(got) != 1 || got[0] != "Agent executed successfully!" {
		t.Fatalf("success notifications = %v", got)
	}
}

func TestAgentRunFailureStoresFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream 500")}
	rec := &notify.Recorder{}
	sess, err := NewAgentRunSession(resumeAgent, gen, nil, rec)
	if err != nil {
		t.Fatalf("NewAgentRunSession: %v", err)
	}

	if err := sess.Trigger(context.Background(), "Review my resume"); !errors.Is(err, models.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if got := sess.State(); got != StateFailed {
		t.Fatalf("state = %v, want failed", got)
	}
	if got := sess.Result(); got != agentRunFallback {
		t.Fatalf("result = %q, want fallback", got)
	}
	if got := rec.Errors(); len(got) != 1 || got[0] != "Failed to run agent. Please try again." {
		t.Fatalf("error notifications = %v", got)
	}
	if len(rec.Successes()) != 0 {
		t.Fatalf("failure emitted success notifications: %v", rec.Successes())
	}
}

func TestRecommendationTranscript(t *testing.T) {
	gen := &stubGenerator{text: "Try [View ResumeAI →](/agent/1) for that."}
	sess, err := NewRecommendationSession([]catalog.Profile{resumeAgent}, gen, nil)
	if err != nil {
		t.Fatalf("NewRecommendationSession: %v", err)
	}

	entries := sess.Transcript()
	if len(entries) != 1 || entries[0].Role != RoleAssistant || entries[0].Text != recommendSeed {
		t.Fatalf("seed transcript = %+v", entries)
	}

	if err := sess.Trigger(context.Background(), "I need resume help"); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	entries = sess.Transcript()
	if len(entries) != 3 {
		t.Fatalf("transcript has %d entries, want 3", len(entries))
	}
	if entries[1].Role != RoleUser || entries[1].Text != "I need resume help" {
		t.Fatalf("user entry = %+v", entries[1])
	}
	if entries[2].Role != RoleAssistant || entries[2].Text != gen.text {
		t.Fatalf("assistant entry = %+v", entries[2])
	}
	if !strings.Contains(gen.lastRequest().Messages[0].Text, "- ResumeAI:") {
		t.Fatalf("catalog listing missing from system prompt")
	}

	if err := sess.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	entries = sess.Transcript()
	if len(entries) != 1 || entries[0].Text != recommendSeed {
		t.Fatalf("reset transcript = %+v", entries)
	}
}

func TestRecommendationFailureAppendsFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	rec := &notify.Recorder{}
	sess, err := NewRecommendationSession([]catalog.Profile{resumeAgent}, gen, rec)
	if err != nil {
		t.Fatalf("NewRecommendationSession: %v", err)
	}

	if err := sess.Trigger(context.Background(), "anything"); !errors.Is(err, models.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	entries := sess.Transcript()
	if len(entries) != 3 || entries[2].Text != recommendFallback {
		t.Fatalf("transcript after failure = %+v", entries)
	}
	if got := rec.Errors(); len(got) != 1 {
		t.Fatalf("error notifications = %v", got)
	}
}

func TestDocumentAnalysisUploadsAssets(t *testing.T) {
	gen := &stubGenerator{text: "Strong candidate."}
	rec := &notify.Recorder{}
	store := storage.NewMemoryStore("https://storage.local")
	sess, err := NewDocumentAnalysisSession(gen, storage.NewUploader(store, rec), rec)
	if err != nil {
		t.Fatalf("NewDocumentAnalysisSession: %v", err)
	}

	sess.AttachAsset(storage.Asset{Name: "resume.png", Data: []byte{1, 2, 3}})
	if err := sess.Trigger(context.Background(), "What do you think?"); err != nil {
		t.Fatalf("Trigger: %v", err)
	}

	req := gen.lastRequest()
	user := req.Messages[len(req.Messages)-1]
	if !user.Multipart() || len(user.Parts) != 2 {
		t.Fatalf("expected text part plus one image part, got %+v", user)
	}
	url := user.Parts[1].ImageURL
	if !strings.Contains(url, chatUploadPrefix) || !strings.HasSuffix(url, "-resume.png") {
		t.Fatalf("uploaded url = %q", url)
	}
	if got := sess.State(); got != StateSucceeded {
		t.Fatalf("state = %v, want succeeded", got)
	}
}

func TestRemoveAsset(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	sess, err := NewDocumentAnalysisSession(gen, nil, nil)
	if err != nil {
		t.Fatalf("NewDocumentAnalysisSession: %v", err)
	}
	sess.AttachAsset(storage.Asset{Name: "a.png"})
	sess.AttachAsset(storage.Asset{Name: "b.png"})
	sess.RemoveAsset(0)
	if got := sess.Assets(); len(got) != 1 || got[0].Name != "b.png" {
		t.Fatalf("assets = %+v", got)
	}
	sess.RemoveAsset(5)
	if got := sess.Assets(); len(got) != 1 {
		t.Fatalf("out-of-range remove changed assets: %+v", got)
	}
}
