// Package command runs recorded intents off the update loop.
package command

import (
	"context"
	"time"

	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single intent execution.
const DefaultTimeout = 30 * time.Second

// Request encapsulates an intent invocation.
type Request struct {
	ID     string
	Intent intent.Intent
}

// Result is delivered to the model when an intent finishes.
type Result struct {
	Request
	Outcome intent.Outcome
	Err     error
}

// Bus coordinates the execution of intents.
type Bus struct {
	exec    intent.Executor
	timeout time.Duration
}

// New initialises a command bus around exec.
func New(exec intent.Executor) *Bus {
	return &Bus{exec: exec, timeout: DefaultTimeout}
}

// NewRequest tags i with a fresh request id.
func NewRequest(i intent.Intent) Request {
	return Request{ID: uuid.NewString(), Intent: i}
}

// Execute wraps an intent into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	label := req.Intent.Label()
	events.Command.Queue(req.ID, label)
	return func() tea.Msg {
		if b.exec == nil {
			events.Command.Skip(req.ID, label)
			return Result{Request: req}
		}
		ctx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()
		out, err := b.exec.Execute(ctx, req.Intent)
		events.Command.Result(req.ID, label, err)
		return Result{Request: req, Outcome: out, Err: err}
	}
}
