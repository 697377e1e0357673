// Package chat implements the resume wizard conversation: a fixed sequence of
// steps that collects contact data and work history, searches for jobs and
// generates a resume for the chosen one.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/khrees2412/cvexpress/pkg/models"
)

const (
	DefaultGreetingDelay = 500 * time.Millisecond
	DefaultPromptDelay   = time.Second
	DefaultDoneMarker    = "só isso"
)

// JobFinder searches for job postings
type JobFinder interface {
	FindJobs(ctx context.Context, role, location string) (models.SearchResult, error)
}

// ResumeWriter writes the narrative parts of a resume for a job
type ResumeWriter interface {
	GenerateResume(ctx context.Context, experience string, job models.Job) (models.GeneratedResume, error)
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

func WithLogger(log zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

func WithGreetingDelay(d time.Duration) EngineOption {
	return func(e *Engine) { e.greetingDelay = d }
}

func WithPromptDelay(d time.Duration) EngineOption {
	return func(e *Engine) { e.promptDelay = d }
}

// WithObserver registers fn to receive a snapshot after every state change
func WithObserver(fn func(State)) EngineOption {
	return func(e *Engine) { e.observer = fn }
}

// WithDoneMarker sets the phrase that ends the experience questions
func WithDoneMarker(marker string) EngineOption {
	return func(e *Engine) {
		if strings.TrimSpace(marker) != "" {
			e.doneMarker = strings.TrimSpace(marker)
		}
	}
}

// Engine drives one conversation. It is not safe for concurrent use; the
// Loading flag keeps turns from overlapping.
type Engine struct {
	finder JobFinder
	writer ResumeWriter

	log           zerolog.Logger
	greetingDelay time.Duration
	promptDelay   time.Duration
	doneMarker    string
	observer      func(State)

	transitions map[Step]transition
	state       State
	nextID      int64
}

// New creates an engine. Call Start to begin the conversation.
func New(finder JobFinder, writer ResumeWriter, opts ...EngineOption) *Engine {
	e := &Engine{
		finder:        finder,
		writer:        writer,
		log:           zerolog.Nop(),
		greetingDelay: DefaultGreetingDelay,
		promptDelay:   DefaultPromptDelay,
		doneMarker:    DefaultDoneMarker,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.transitions = e.transitionTable()
	return e
}

// Start resets the conversation and greets the user after the greeting delay
func (e *Engine) Start(ctx context.Context) error {
	e.state = State{
		SessionID: uuid.NewString(),
		Step:      StepStart,
	}
	e.nextID = 0
	e.log.Debug().Str("session", e.state.SessionID).Msg("conversation started")
	e.notify()

	if err := sleep(ctx, e.greetingDelay); err != nil {
		return err
	}

	e.bot(OptionList{
		Prompt: msgGreeting,
		Options: []Option{
			{Label: msgAccept, Value: valueAccept},
			{Label: msgDecline, Value: valueDecline},
		},
	})
	e.state.AwaitingConsent = true
	e.setStep(StepName)
	return nil
}

// Accept answers the greeting with yes and asks for the name
func (e *Engine) Accept(ctx context.Context) error {
	if !e.state.AwaitingConsent || e.state.Loading {
		return ErrNoConsentPending
	}
	e.state.AwaitingConsent = false
	e.user(msgAccept)

	e.state.Loading = true
	e.notify()
	defer e.setLoading(false)

	if err := sleep(ctx, e.promptDelay); err != nil {
		return err
	}
	e.bot(Text{Body: msgAskName})
	return nil
}

// Decline answers the greeting with no and ends the conversation
func (e *Engine) Decline() error {
	if !e.state.AwaitingConsent || e.state.Loading {
		return ErrNoConsentPending
	}
	e.state.AwaitingConsent = false
	e.user(msgDecline)
	e.bot(Text{Body: msgGoodbye})
	e.setStep(StepDeclined)
	return nil
}

// HandleInput processes one line typed by the user. Blank input and input
// received while a turn is running are ignored. Failures are reported in the
// conversation, never returned.
func (e *Engine) HandleInput(ctx context.Context, raw string) {
	value := strings.TrimSpace(raw)
	if value == "" || e.state.Loading {
		return
	}

	// Typing instead of answering the greeting counts as going ahead.
	e.state.AwaitingConsent = false

	e.user(value)
	e.state.Loading = true
	e.notify()
	defer e.setLoading(false)

	step := e.state.Step
	t, ok := e.transitions[step]
	if !ok {
		e.bot(Text{Body: msgNotUnderstood})
		return
	}

	if err := t(ctx, value); err != nil {
		e.log.Error().
			Err(err).
			Str("session", e.state.SessionID).
			Stringer("step", step).
			Msg("turn failed")
		e.bot(Text{Body: msgErrorPrefix + userMessage(err)})
	}
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() State {
	return e.state.clone()
}

// Resume returns the assembled resume once the conversation is done
func (e *Engine) Resume() (models.ResumeData, bool) {
	if e.state.Resume == nil {
		return models.ResumeData{}, false
	}
	r := *e.state.Resume
	r.Skills = append([]string(nil), r.Skills...)
	return r, true
}

func (e *Engine) bot(p Payload) {
	e.appendMessage(SenderBot, p)
}

func (e *Engine) user(text string) {
	e.appendMessage(SenderUser, Text{Body: text})
}

func (e *Engine) appendMessage(sender Sender, p Payload) {
	e.nextID++
	e.state.Messages = append(e.state.Messages, Message{
		ID:      e.nextID,
		Sender:  sender,
		Payload: p,
	})
	e.notify()
}

func (e *Engine) setStep(step Step) {
	if e.state.Step != step {
		e.log.Debug().
			Str("session", e.state.SessionID).
			Stringer("from", e.state.Step).
			Stringer("to", step).
			Msg("step changed")
	}
	e.state.Step = step
	e.notify()
}

func (e *Engine) setLoading(loading bool) {
	e.state.Loading = loading
	e.notify()
}

func (e *Engine) notify() {
	if e.observer != nil {
		e.observer(e.state.clone())
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
