package sink

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Backend selects where diagnostics go. Exactly one is active per process.
type Backend int

const (
	// None disables emission entirely; bailing still works.
	None Backend = iota
	// Console writes human-readable lines.
	Console
	// Structured writes JSON records stamped with the process session id.
	Structured
)

// session distinguishes interleaved process runs in aggregated logs.
var session = uuid.NewString()

var (
	mu     sync.RWMutex
	logger = console(slog.LevelWarn, os.Stderr)
)

// Configure selects the backend and minimum severity once, process-wide.
// A nil writer means os.Stderr. Intended to be called at startup, before
// any bailing happens; it is not a per-call switch.
func Configure(b Backend, min slog.Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	var l *slog.Logger
	switch b {
	case Console:
		l = console(min, w)
	case Structured:
		l = structured(min, w)
	default:
		l = nil
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// SetLogger plugs an external structured backend in, replacing whatever
// Configure selected. The logger's own handler decides the minimum level.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func console(min slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: min}))
}

func structured(min slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: min})).
		With("session", session)
}

// Emit writes one diagnostic, best-effort. A missing, failing, or
// panicking backend never reaches the caller: bailing must exit the same
// way whether or not the log line made it out.
func Emit(level slog.Level, msg string, attrs ...slog.Attr) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	if l == nil {
		return
	}

	defer func() {
		_ = recover()
	}()
	l.LogAttrs(context.Background(), level, msg, attrs...)
}
