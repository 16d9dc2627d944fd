// Package notify carries fire-and-forget user feedback. Senders never wait
// on a Notifier and never learn whether the message was shown.
package notify

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Level tags a message's severity
type Level int

const (
	Info Level = iota
	Success
	Error
)

// String returns the level name
func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notifier receives user-facing messages
type Notifier interface {
	Notify(level Level, message string)
}

// Func adapts a function to the Notifier interface
type Func func(level Level, message string)

// Notify calls f
func (f Func) Notify(level Level, message string) {
	f(level, message)
}

// LogNotifier records messages in the application log
type LogNotifier struct {
	logger log.FieldLogger
}

// NewLogNotifier creates a notifier writing to logger
func NewLogNotifier(logger log.FieldLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the message at error level for errors, info otherwise
func (n *LogNotifier) Notify(level Level, message string) {
	entry := n.logger.WithField("severity", level.String())
	if level == Error {
		entry.Error(message)
		return
	}
	entry.Info(message)
}

// WriterNotifier prints messages for a terminal, one per line
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a notifier printing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify prints the message with a severity marker
func (n *WriterNotifier) Notify(level Level, message string) {
	fmt.Fprintf(n.w, "%s %s\n", Symbol(level), message)
}

// Symbol returns a one-character marker for level
func Symbol(level Level) string {
	switch level {
	case Success:
		return "✓"
	case Error:
		return "✗"
	default:
		return "•"
	}
}

// Multi fans a message out to several notifiers
type Multi []Notifier

// Notify forwards to every notifier in order
func (m Multi) Notify(level Level, message string) {
	for _, n := range m {
		n.Notify(level, message)
	}
}
