package audit

import (
	"context"
	"log/slog"
	"time"
)

// Entry describes one admin write against the content API.
type Entry struct {
	Subject   string
	Method    string
	Path      string
	Entity    string
	Ref       string
	Status    int
	RequestID string
	IP        string
	At        time.Time
}

// Logger defines the interface for auditing operations
type Logger interface {
	// LogContentWrite records a create, update or delete issued through an admin route
	LogContentWrite(ctx context.Context, entry Entry) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogContentWrite implements Logger.LogContentWrite
func (l *NoOpLogger) LogContentWrite(ctx context.Context, entry Entry) error {
	return nil
}

// SlogLogger writes audit entries to a structured logger under the "audit" group.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// LogContentWrite implements Logger.LogContentWrite
func (l *SlogLogger) LogContentWrite(ctx context.Context, e Entry) error {
	subject := e.Subject
	if subject == "" {
		subject = "anonymous"
	}

	l.logger.LogAttrs(ctx, slog.LevelInfo, "content write",
		slog.Group("audit",
			slog.String("subject", subject),
			slog.String("method", e.Method),
			slog.String("path", e.Path),
			slog.String("entity", e.Entity),
			slog.String("ref", e.Ref),
			slog.Int("status", e.Status),
			slog.String("requestID", e.RequestID),
			slog.String("ip", e.IP),
			slog.Time("at", e.At),
		),
	)
	return nil
}
