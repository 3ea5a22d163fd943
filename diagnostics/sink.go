// Package diagnostics provides the non-fatal warning channel used by the
// rule parser and evaluator: unknown identifier references and invalid
// date literals are reported here rather than failing the enclosing
// rule. Grounded on the teacher's plain-log CLI idiom
// (cmd/goholidays/main.go uses the standard library's log package
// directly; no third-party logging library appears anywhere in the
// domain-fit reference repo).
package diagnostics

import (
	"fmt"
	"log"
	"os"
)

// Sink receives non-fatal diagnostic messages. stackDepth is a hint about
// how many rule-evaluation frames deep the diagnostic originated,
// letting a sink implementation prefix nested messages for readability.
type Sink interface {
	Warn(message string, stackDepth int)
}

// DefaultSink writes warnings to the host's standard warning channel
// (stderr) via the standard library's log package.
type DefaultSink struct {
	logger *log.Logger
}

// NewDefaultSink creates a DefaultSink writing to os.Stderr.
func NewDefaultSink() *DefaultSink {
	return &DefaultSink{logger: log.New(os.Stderr, "", log.LstdFlags)}
}

// Warn implements Sink.
func (s *DefaultSink) Warn(message string, stackDepth int) {
	if s.logger == nil {
		s.logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	s.logger.Printf("%s%s", indent(stackDepth), message)
}

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	buf := make([]byte, depth)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

// UnknownProducer formats the diagnostic for an unresolved identifier
// referenced from a rule.
func UnknownProducer(name string) string {
	return fmt.Sprintf("Unknown date function %s referenced.", name)
}

// InvalidLiteral formats the diagnostic for a date literal that cannot be
// converted to a real calendar date (e.g. 29 February in a non-leap
// year).
func InvalidLiteral(year, month, day int) string {
	return fmt.Sprintf("Date literal cannot be converted: %d/%d/%d", year, month, day)
}

// NopSink discards every warning. Useful in tests that do not inspect
// diagnostics and want to keep test output clean; tests that assert on
// which diagnostics were (or were not) emitted, such as short-circuit
// checks, need a recording sink like RecordingSink instead.
type NopSink struct{}

// Warn implements Sink by discarding the message.
func (NopSink) Warn(string, int) {}

// RecordingSink collects every warning it receives, for use in tests that
// assert on which diagnostics were (or were not) emitted.
type RecordingSink struct {
	Messages []string
}

// Warn implements Sink.
func (r *RecordingSink) Warn(message string, _ int) {
	r.Messages = append(r.Messages, message)
}
