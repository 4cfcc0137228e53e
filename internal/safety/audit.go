// Package safety provides the guard rails around mutating operations:
// an audit log of every mutation issued and an interactive confirmation
// step for the destructive ones.
package safety

import (
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"
)

// ErrNilWriter is returned by AuditLogger.Log when the logger was constructed
// with a nil writer.
var ErrNilWriter = errors.New("audit logger: writer is nil")

// AuditEntry captures a single mutating operation issued against the server.
type AuditEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Operation string         `json:"operation"`
	Args      map[string]any `json:"args,omitempty"`
	Endpoint  string         `json:"endpoint,omitempty"`
	Result    string         `json:"result"`
	Duration  time.Duration  `json:"duration_ns"`
}

// AuditLogger writes AuditEntry records as newline-delimited JSON to an
// io.Writer. It is safe for concurrent use.
type AuditLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAuditLogger returns an AuditLogger that writes to w. If w is nil the
// returned logger is also nil; Log on a nil logger returns ErrNilWriter, so
// callers may pass the logger around without nil checks.
func NewAuditLogger(w io.Writer) *AuditLogger {
	if w == nil {
		return nil
	}
	return &AuditLogger{w: w}
}

// Log serialises entry as a single JSON line and writes it to the underlying
// writer. Log is safe for concurrent use.
func (l *AuditLogger) Log(entry AuditEntry) error {
	if l == nil || l.w == nil {
		return ErrNilWriter
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	data = append(data, '\n')

	l.mu.Lock()
	_, err = l.w.Write(data)
	l.mu.Unlock()

	return err
}

// Record logs a mutation outcome, silently ignoring a nil logger. Argument
// values named "password" are redacted before writing.
func Record(audit *AuditLogger, operation, endpoint, result string, args map[string]any, start time.Time) {
	if audit == nil {
		return
	}

	logged := make(map[string]any, len(args))
	for k, v := range args {
		logged[k] = redact(k, v)
	}

	_ = audit.Log(AuditEntry{
		Timestamp: start,
		Operation: operation,
		Args:      logged,
		Endpoint:  endpoint,
		Result:    result,
		Duration:  time.Since(start),
	})
}

func redact(key string, v any) any {
	if key == "password" {
		return "[redacted]"
	}
	if nested, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(nested))
		for k, nv := range nested {
			out[k] = redact(k, nv)
		}
		return out
	}
	return v
}
