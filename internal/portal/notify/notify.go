// Package notify surfaces short status messages to the user
package notify

import (
	"fmt"
	"io"
	"os"
)

// Level marks a message's severity
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

func (l Level) symbol() string {
	switch l {
	case LevelSuccess:
		return "✓"
	case LevelWarning:
		return "!"
	case LevelError:
		return "✗"
	default:
		return "•"
	}
}

// Message is one emitted notification
type Message struct {
	Level Level
	Text  string
}

// Notifier writes leveled messages and remembers them for inspection
type Notifier struct {
	out      io.Writer
	messages []Message
}

// New writes to stderr
func New() *Notifier {
	return &Notifier{out: os.Stderr}
}

// NewWithWriter writes to the given writer
func NewWithWriter(w io.Writer) *Notifier {
	return &Notifier{out: w}
}

// Success emits a success message
func (n *Notifier) Success(text string) { n.emit(LevelSuccess, text) }

// Warning emits a warning message
func (n *Notifier) Warning(text string) { n.emit(LevelWarning, text) }

// Error emits an error message
func (n *Notifier) Error(text string) { n.emit(LevelError, text) }

// Info emits an informational message
func (n *Notifier) Info(text string) { n.emit(LevelInfo, text) }

// Successf formats and emits a success message
func (n *Notifier) Successf(format string, args ...interface{}) {
	n.emit(LevelSuccess, fmt.Sprintf(format, args...))
}

// Errorf formats and emits an error message
func (n *Notifier) Errorf(format string, args ...interface{}) {
	n.emit(LevelError, fmt.Sprintf(format, args...))
}

// Infof formats and emits an informational message
func (n *Notifier) Infof(format string, args ...interface{}) {
	n.emit(LevelInfo, fmt.Sprintf(format, args...))
}

func (n *Notifier) emit(level Level, text string) {
	n.messages = append(n.messages, Message{Level: level, Text: text})
	fmt.Fprintf(n.out, "%s %s\n", level.symbol(), text)
}

// Messages returns the emitted messages in order
func (n *Notifier) Messages() []Message {
	out := make([]Message, len(n.messages))
	copy(out, n.messages)
	return out
}
