package payment

import (
	"context"
	"sync"
)

type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomePending
	OutcomeError
	OutcomeClosed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePending:
		return "pending"
	case OutcomeError:
		return "error"
	case OutcomeClosed:
		return "close"
	default:
		return "unknown"
	}
}

// ParseOutcome accepts the callback names used by the hosted payment page.
func ParseOutcome(s string) (Outcome, bool) {
	switch s {
	case "success", "finish", "settlement":
		return OutcomeSuccess, true
	case "pending", "unfinish":
		return OutcomePending, true
	case "error", "failure", "deny", "expire":
		return OutcomeError, true
	case "close", "closed", "cancel":
		return OutcomeClosed, true
	default:
		return 0, false
	}
}

type Result struct {
	Outcome Outcome
	Payload map[string]interface{}
}

// Future resolves exactly once. Later resolutions are ignored.
type Future struct {
	once   sync.Once
	done   chan struct{}
	result Result
}

func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve reports whether this call was the one that resolved the future.
func (f *Future) Resolve(r Result) bool {
	resolved := false
	f.once.Do(func() {
		f.result = r
		close(f.done)
		resolved = true
	})
	return resolved
}

func (f *Future) Done() <-chan struct{} {
	return f.done
}

func (f *Future) Wait(ctx context.Context) (Result, error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Callbacks is the four-callback shape a payment widget calls back into.
type Callbacks struct {
	OnSuccess func(payload map[string]interface{})
	OnPending func(payload map[string]interface{})
	OnError   func(payload map[string]interface{})
	OnClose   func()
}

// Callbacks returns a callback set that resolves f.
func (f *Future) Callbacks() Callbacks {
	return Callbacks{
		OnSuccess: func(p map[string]interface{}) { f.Resolve(Result{Outcome: OutcomeSuccess, Payload: p}) },
		OnPending: func(p map[string]interface{}) { f.Resolve(Result{Outcome: OutcomePending, Payload: p}) },
		OnError:   func(p map[string]interface{}) { f.Resolve(Result{Outcome: OutcomeError, Payload: p}) },
		OnClose:   func() { f.Resolve(Result{Outcome: OutcomeClosed}) },
	}
}

// Widget opens the payment UI for a token.
type Widget interface {
	Open(ctx context.Context, token string) (*Future, error)
}
