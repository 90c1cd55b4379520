// Package audit provides the append-only text sink for account activity.
package audit

import (
	"fmt"
	"os"

	"atm-simulator/internal/core/domain"
	"atm-simulator/internal/core/ports"

	"github.com/rs/zerolog"
)

// FileSink appends one human-readable line per event to a text file and
// mirrors each event to the structured logger. Writes are best-effort: a
// failed write is logged at warn level and swallowed, so the banking
// operation that emitted the event is never disturbed.
type FileSink struct {
	f   *os.File
	log zerolog.Logger
}

var (
	_ ports.AuditSink = (*FileSink)(nil)
	_ ports.AuditSink = NopSink{}
)

// NewFileSink opens (or creates) the audit file in append mode.
func NewFileSink(path string, log zerolog.Logger) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening audit log %s: %w", path, err)
	}
	return &FileSink{f: f, log: log}, nil
}

// Record appends the event to the trail.
func (s *FileSink) Record(event domain.AuditEvent) {
	s.log.Info().
		Str("action", string(event.Action)).
		Str("account", event.Account).
		Str("detail", event.Detail).
		Msg("audit")

	if _, err := fmt.Fprintln(s.f, event.Line()); err != nil {
		s.log.Warn().Err(err).Str("action", string(event.Action)).Msg("failed to append audit line")
	}
}

// Close releases the underlying file.
func (s *FileSink) Close() error {
	return s.f.Close()
}

// NopSink discards events. It stands in when the audit file cannot be
// opened: failure to set the trail up must not stop banking either.
type NopSink struct{}

func (NopSink) Record(domain.AuditEvent) {}
