package notify

import (
	"log"
	"sync"
)

// Notifier carries transient user-facing notifications (toast-style
// status messages). Implementations must be safe for use from the
// session goroutine.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to a standard logger.
type LogNotifier struct {
	Logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Info(msg string)    { n.Logger.Printf("info: %s", msg) }
func (n *LogNotifier) Success(msg string) { n.Logger.Printf("success: %s", msg) }
func (n *LogNotifier) Error(msg string)   { n.Logger.Printf("error: %s", msg) }

// Recorder captures notifications in memory. Useful in tests and for
// surfacing a notification history to a UI.
type Recorder struct {
	mu        sync.Mutex
	infos     []string
	successes []string
	errors    []string
}

func (r *Recorder) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, msg)
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *Recorder) Infos() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.infos...)
}

func (r *Recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}
