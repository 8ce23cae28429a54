// Package session ties parsing, macro expansion and reduction together for
// one user. Sessions share nothing; each owns its macro table and settings.
package session

import (
	"fmt"

	"github.com/vic/achurch/pkg/config"
	"github.com/vic/achurch/pkg/lambda"
	"github.com/vic/achurch/pkg/macro"
	"github.com/vic/achurch/pkg/parser"
)

// DefaultMaxEvents bounds the trace events kept for one evaluation.
const DefaultMaxEvents = 1000

// Session is the state kept between evaluations.
type Session struct {
	Env    *macro.Env
	Config *config.Config

	// MaxEvents is how many trace events a Report keeps; later events are
	// only counted in Report.DroppedEvents.
	MaxEvents int

	builder  *macro.Builder
	imported bool
}

// New returns a session with an empty macro table. A nil cfg uses
// config.Default.
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	env := macro.NewEnv()
	return &Session{
		Env:       env,
		Config:    cfg,
		MaxEvents: DefaultMaxEvents,
		builder:   macro.NewBuilder(env),
	}
}

// Report describes one evaluated line.
type Report struct {
	Input string

	// Defined is set, and nothing else, when the line was a definition.
	Defined string

	Term          lambda.Term
	Result        lambda.Result
	Events        []lambda.Event
	DroppedEvents uint64
}

// Exhausted reports whether reduction stopped on the beta budget.
func (r *Report) Exhausted() bool {
	return r.Defined == "" && r.Result.Status == lambda.BudgetExhausted
}

// Eval parses src and either records a definition or reduces the term.
// Lines with syntax errors are not evaluated; the error is a
// *parser.SyntaxError carrying the error count.
func (s *Session) Eval(src string) (*Report, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	term, defined, err := s.builder.Build(tree)
	if err != nil {
		return nil, err
	}
	report := &Report{Input: src, Defined: defined}
	if defined != "" {
		return report, nil
	}
	report.Term = term

	rec := lambda.NewRecorder(s.MaxEvents)
	res, err := lambda.Reduce(term, s.Config.Options(), rec)
	report.Result = res
	report.Events = rec.Snapshot()
	report.DroppedEvents = rec.Dropped()
	if err != nil {
		return report, fmt.Errorf("reducing %s: %w", lambda.Render(term), err)
	}
	return report, nil
}

// ImportDefaults defines macro.Defaults once per session. Later calls do
// nothing and return false.
func (s *Session) ImportDefaults() (bool, error) {
	if s.imported {
		return false, nil
	}
	if err := s.builder.ImportDefaults(); err != nil {
		return false, err
	}
	s.imported = true
	return true, nil
}

// Imported reports whether the default macros were imported.
func (s *Session) Imported() bool {
	return s.imported
}
