// Package agentverse coordinates the agent invocation pipeline: user
// input and optional image assets are uploaded, assembled into a
// structured request, sent to the generation service, and the result
// flows back into per-session state for rendering.
package agentverse

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/agentverse/agentverse/src/models"
	"github.com/agentverse/agentverse/src/notify"
	"github.com/agentverse/agentverse/src/render"
	"github.com/agentverse/agentverse/src/storage"
)

// State is the session lifecycle position.
type State int

const (
	StateIdle State = iota
	StateUploading
	StateGenerating
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateGenerating:
		return "generating"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TranscriptEntry is one turn of a conversational session. Entries are
// append-only; the transcript is cleared only by a full reset.
type TranscriptEntry struct {
	Role      string
	Text      string
	CreatedAt time.Time
}

// Options configure a new Session.
type Options struct {
	// Build assembles the invocation request from the trigger input and
	// the uploaded image URLs. Required.
	Build func(input string, imageURLs []string) models.Request

	// Generator performs the completion call. Required.
	Generator models.Generator

	// Uploader and UploadPrefix enable the asset-upload step. A nil
	// uploader makes the session text-only.
	Uploader     *storage.Uploader
	UploadPrefix string

	// Fallback is stored as the result (or appended to the transcript)
	// when generation fails.
	Fallback string

	// SuccessToast and ErrorToast are emitted through Notifier on the
	// matching terminal state. Empty strings suppress the notification.
	SuccessToast string
	ErrorToast   string
	Notifier     notify.Notifier

	// Conversational sessions append to a transcript instead of
	// replacing the single current result. Seed, if set, becomes the
	// transcript's initial assistant entry.
	Conversational bool
	Seed           string

	// OnSuccess runs after each successful invocation with the
	// generated text, outside the session lock.
	OnSuccess func(text string)
}

// Session owns the per-interaction state machine. All state is owned
// exclusively by the one session instance; the entry guard keeps at
// most one invocation in flight.
type Session struct {
	mu sync.Mutex

	build     func(string, []string) models.Request
	invoker   *models.Invoker
	uploader  *storage.Uploader
	prefix    string
	fallback  string
	success   string
	failure   string
	notifier  notify.Notifier
	chat      bool
	seed      string
	onSuccess func(string)

	state      State
	assets     []storage.Asset
	result     string
	transcript []TranscriptEntry
}

// NewSession creates a Session with the provided options.
func NewSession(opts Options) (*Session, error) {
	if opts.Build == nil {
		return nil, errors.New("session requires a request builder")
	}
	if opts.Generator == nil {
		return nil, errors.New("session requires a generator")
	}

	s := &Session{
		build:     opts.Build,
		invoker:   models.NewInvoker(opts.Generator),
		uploader:  opts.Uploader,
		prefix:    opts.UploadPrefix,
		fallback:  opts.Fallback,
		success:   opts.SuccessToast,
		failure:   opts.ErrorToast,
		notifier:  opts.Notifier,
		chat:      opts.Conversational,
		seed:      opts.Seed,
		onSuccess: opts.OnSuccess,
		state:     StateIdle,
	}
	if s.chat && s.seed != "" {
		s.transcript = append(s.transcript, TranscriptEntry{
			Role:      RoleAssistant,
			Text:      s.seed,
			CreatedAt: time.Now(),
		})
	}
	return s, nil
}

// State returns the current lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the current single-shot result (generated text or the
// fallback message after a failure).
func (s *Session) Result() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// ResultBlocks returns the current result as display blocks.
func (s *Session) ResultBlocks() []render.Block {
	return render.Render(s.Result())
}

// Transcript returns a snapshot of the conversation history.
func (s *Session) Transcript() []TranscriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TranscriptEntry(nil), s.transcript...)
}

// AttachAsset adds a locally selected asset to the next trigger.
func (s *Session) AttachAsset(a storage.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = append(s.assets, a)
}

// RemoveAsset discards the attached asset at index i.
func (s *Session) RemoveAsset(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.assets) {
		return
	}
	s.assets = append(s.assets[:i], s.assets[i+1:]...)
}

// Assets returns a snapshot of the attached assets.
func (s *Session) Assets() []storage.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storage.Asset(nil), s.assets...)
}

// OnSuccess replaces the success hook. The hook runs after each
// successful invocation with the generated text, outside the session
// lock.
func (s *Session) OnSuccess(fn func(text string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSuccess = fn
}

// Reset returns the session to its initial state: assets and result
// cleared, transcript back to the seed entry. Rejected while an
// invocation is in flight.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateUploading || s.state == StateGenerating {
		return ErrBusy
	}
	s.state = StateIdle
	s.assets = nil
	s.result = ""
	s.transcript = nil
	if s.chat && s.seed != "" {
		s.transcript = append(s.transcript, TranscriptEntry{
			Role:      RoleAssistant,
			Text:      s.seed,
			CreatedAt: time.Now(),
		})
	}
	return nil
}

// Trigger runs one invocation: upload attached assets (if any), assemble
// the request, invoke generation, and store the outcome. Blank input and
// overlapping triggers are rejected without side effects.
func (s *Session) Trigger(ctx context.Context, input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptyInput
	}

	s.mu.Lock()
	if s.state == StateUploading || s.state == StateGenerating {
		s.mu.Unlock()
		return ErrBusy
	}
	assets := append([]storage.Asset(nil), s.assets...)
	uploading := len(assets) > 0 && s.uploader != nil
	if uploading {
		s.state = StateUploading
	} else {
		s.state = StateGenerating
	}
	if s.chat {
		s.transcript = append(s.transcript, TranscriptEntry{
			Role:      RoleUser,
			Text:      input,
			CreatedAt: time.Now(),
		})
	}
	s.mu.Unlock()

	// Upload fully resolves (including per-item failures) before the
	// prompt is assembled; an all-asset failure yields a text-only request.
	var urls []string
	if uploading {
		urls = s.uploader.UploadAll(ctx, s.prefix, assets)
		s.mu.Lock()
		s.state = StateGenerating
		s.mu.Unlock()
	}

	text, err := s.invoker.Invoke(ctx, s.build(input, urls))

	s.mu.Lock()
	if err != nil {
		s.state = StateFailed
		if s.chat {
			s.transcript = append(s.transcript, TranscriptEntry{
				Role:      RoleAssistant,
				Text:      s.fallback,
				CreatedAt: time.Now(),
			})
		} else {
			s.result = s.fallback
		}
		s.mu.Unlock()
		if s.notifier != nil && s.failure != "" {
			s.notifier.Error(s.failure)
		}
		return err
	}

	s.state = StateSucceeded
	if s.chat {
		s.transcript = append(s.transcript, TranscriptEntry{
			Role:      RoleAssistant,
			Text:      text,
			CreatedAt: time.Now(),
		})
	} else {
		s.result = text
	}
	hook := s.onSuccess
	s.mu.Unlock()

	if s.notifier != nil && s.success != "" {
		s.notifier.Success(s.success)
	}
	if hook != nil {
		hook(text)
	}
	return nil
}
