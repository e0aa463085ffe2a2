package di

import (
	"fmt"
	"strconv"

	goerrors "github.com/goliatone/go-errors"
)

// Diagnostic is one configuration-time finding.
type Diagnostic struct {
	Message string
}

// DiagnosticLog is an explicit, append-only accumulator for configuration
// diagnostics. It is threaded through the configuration phase as a value
// rather than living as ambient global state.
//
// Configuration runs single-threaded; the log is not safe for concurrent
// use and must not be appended to after the container is finalized.
type DiagnosticLog struct {
	entries []Diagnostic
}

// Addf appends one formatted diagnostic.
func (l *DiagnosticLog) Addf(format string, args ...any) {
	l.entries = append(l.entries, Diagnostic{Message: fmt.Sprintf(format, args...)})
}

// Len returns the number of accumulated diagnostics.
func (l *DiagnosticLog) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns a copy of the accumulated diagnostics in append order.
func (l *DiagnosticLog) Entries() []Diagnostic {
	if l == nil {
		return nil
	}
	return append([]Diagnostic(nil), l.entries...)
}

// Messages returns the diagnostic messages in append order.
func (l *DiagnosticLog) Messages() []string {
	if l == nil || len(l.entries) == 0 {
		return nil
	}
	out := make([]string, len(l.entries))
	for i, d := range l.entries {
		out[i] = d.Message
	}
	return out
}

// Err batches the accumulated diagnostics into a single reportable error, or
// returns nil when configuration produced none.
func (l *DiagnosticLog) Err() error {
	if l.Len() == 0 {
		return nil
	}
	return goerrors.New(
		"di: configuration failed with "+strconv.Itoa(l.Len())+" diagnostic(s)",
		goerrors.CategoryValidation,
	).
		WithTextCode("DI_CONFIG_INVALID").
		WithMetadata(map[string]any{"diagnostics": l.Messages()})
}
