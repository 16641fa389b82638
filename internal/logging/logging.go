package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const maxLogSize = 5 * 1024 * 1024 // 5MB

// Options configures Setup.
type Options struct {
	// Path is the log file. Its directory is created if needed.
	Path string

	// Verbose mirrors records to Stderr.
	Verbose bool

	// Session tags every record. A new UUID is generated when empty.
	Session string

	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// Setup opens the log file (rotating it first if it is too large) and returns
// a JSON logger tagged with the session ID.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, nil, err
	}

	if err := RotateIfNeeded(opts.Path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = f
	if opts.Verbose {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		w = io.MultiWriter(f, stderr)
	}

	session := opts.Session
	if session == "" {
		session = NewSession()
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler).With(slog.String("session", session)), f, nil
}

// NewSession returns a fresh session ID.
func NewSession() string {
	return uuid.NewString()
}

func RotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		return nil // file doesn't exist yet
	}

	if info.Size() <= maxLogSize {
		return nil
	}

	backup := logPath + ".old"
	os.Remove(backup)
	return os.Rename(logPath, backup)
}

type NopHandler struct{}

func (NopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h NopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h NopHandler) WithGroup(string) slog.Handler            { return h }
