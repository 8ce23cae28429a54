package lambda

import (
	"fmt"
	"sync"
)

// Event is a committed reduction step reported to a Sink.
type Event interface {
	Outcome() Outcome
	StepIndex() uint64
}

// AlphaConversionEvent reports that a binder inside the abstraction about to
// be applied was renamed from From to To. Before and After render that
// abstraction.
type AlphaConversionEvent struct {
	Step   uint64
	Before string
	After  string
	From   string
	To     string
}

func (AlphaConversionEvent) Outcome() Outcome    { return AlphaConverted }
func (e AlphaConversionEvent) StepIndex() uint64 { return e.Step }

// BetaReductionEvent reports a consumed redex. Before renders the redex and
// After its contraction.
type BetaReductionEvent struct {
	Step   uint64
	Before string
	After  string
}

func (BetaReductionEvent) Outcome() Outcome    { return BetaReduced }
func (e BetaReductionEvent) StepIndex() uint64 { return e.Step }

// FormatEvent renders an event as a single trace line.
func FormatEvent(ev Event) string {
	switch e := ev.(type) {
	case AlphaConversionEvent:
		return fmt.Sprintf("%s → α(%s→%s) → %s", e.Before, e.From, e.To, e.After)
	case BetaReductionEvent:
		return fmt.Sprintf("%s →β→ %s", e.Before, e.After)
	default:
		return ""
	}
}

// Sink receives trace events in step order.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

type discard struct{}

func (discard) Emit(Event) {}

// Discard drops every event.
var Discard Sink = discard{}

// Recorder keeps the first capacity events it receives.
type Recorder struct {
	mu     sync.Mutex
	buf    []Event
	cap    int
	missed uint64
}

// NewRecorder returns a Recorder holding at most capacity events.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 1
	}
	return &Recorder{buf: make([]Event, 0, min(capacity, 64)), cap: capacity}
}

func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.buf) >= r.cap {
		r.missed++
		return
	}
	r.buf = append(r.buf, ev)
}

// Snapshot returns a copy of the recorded events.
func (r *Recorder) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Event, len(r.buf))
	copy(res, r.buf)
	return res
}

// Dropped returns how many events did not fit.
func (r *Recorder) Dropped() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.missed
}
