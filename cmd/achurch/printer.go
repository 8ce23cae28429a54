package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/vic/achurch/pkg/config"
	"github.com/vic/achurch/pkg/graph"
	"github.com/vic/achurch/pkg/lambda"
	"github.com/vic/achurch/pkg/session"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// printer writes evaluation reports to the terminal.
type printer struct {
	out   io.Writer
	color bool
	quiet bool

	// ids names graph nodes; nil means graph.UUIDs.
	ids    graph.IDFunc
	graphs int
}

func (p *printer) bold(s string) string {
	if !p.color {
		return s
	}
	return ansiBold + s + ansiReset
}

func (p *printer) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// report prints the outcome of one evaluated line.
func (p *printer) report(r *session.Report, cfg *config.Config) error {
	if r.Defined != "" {
		p.printf("%s defined\n", p.bold(r.Defined))
		return nil
	}

	p.println(lambda.Render(r.Term))
	if !p.quiet {
		for _, ev := range r.Events {
			p.println(lambda.FormatEvent(ev))
		}
		if r.DroppedEvents > 0 {
			p.printf("(%s more steps not shown)\n", humanize.Comma(int64(r.DroppedEvents)))
		}
	}

	stats := r.Result.Stats
	if r.Result.Status == lambda.Aborted {
		return nil
	}
	if r.Exhausted() {
		p.println("...")
		p.printf("Reached the maximum of %s beta reductions (change it with :set max_reductions <n>).\n",
			humanize.Comma(int64(cfg.MaxBetaReductions)))
		p.printf("Result after %s beta reductions:\n", humanize.Comma(int64(stats.BetaReductions)))
	}
	if stats.Steps() > 0 || r.Exhausted() {
		p.println(p.bold(lambda.Render(r.Result.Term)))
	}

	if cfg.ShowStats && stats.Steps() > 0 {
		p.printf("%s alpha conversions, %s beta reductions\n",
			humanize.Comma(int64(stats.AlphaConversions)),
			humanize.Comma(int64(stats.BetaReductions)))
	}

	if cfg.ShowGraph {
		return p.writeGraphs(r, cfg.GraphDir)
	}
	return nil
}

// writeGraphs saves DOT files for the input and result terms.
func (p *printer) writeGraphs(r *session.Report, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating graph dir: %w", err)
	}
	ids := p.ids
	if ids == nil {
		ids = graph.UUIDs()
	}

	p.graphs++
	files := []struct {
		suffix string
		term   lambda.Term
	}{
		{"input", r.Term},
		{"result", r.Result.Term},
	}
	for _, f := range files {
		path := filepath.Join(dir, fmt.Sprintf("achurch-%03d-%s.dot", p.graphs, f.suffix))
		if err := graph.Render(f.term, ids).WriteFile(path); err != nil {
			return err
		}
		p.printf("graph written to %s\n", path)
	}
	return nil
}
