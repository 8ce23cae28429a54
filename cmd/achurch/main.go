package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vic/achurch/pkg/config"
	"github.com/vic/achurch/pkg/session"
)

var (
	configPath = flag.String("config", "", "path to achurch.yaml (default: search from the working directory)")
	maxBeta    = flag.Int("max", 0, "maximum beta reductions per expression (overrides the config)")
	graphDir   = flag.String("graph", "", "write DOT graphs of input and result terms to this directory")
	quiet      = flag.Bool("q", false, "print results only, no reduction steps")
	verbose    = flag.Bool("v", false, "log diagnostics to stderr")
)

func logf(format string, args ...any) {
	if *verbose {
		log.Printf(format, args...)
	}
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: achurch [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates one lambda expression or macro definition per line.\n")
		fmt.Fprintf(os.Stderr, "Without a file, reads stdin; an interactive terminal starts a REPL.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var input io.Reader = os.Stdin
	interactive := false
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	} else {
		interactive = isTerminal(os.Stdin)
	}

	p := &printer{
		out:   os.Stdout,
		color: useColor(cfg.Color),
		quiet: *quiet,
	}
	r := &repl{
		sess:        session.New(cfg),
		out:         p,
		interactive: interactive,
	}
	logf("config: max_reductions=%d color=%v interactive=%v", cfg.MaxBetaReductions, p.color, interactive)

	if interactive {
		fmt.Fprintln(os.Stdout, "achurch: lambda calculus evaluator. Type :help for commands.")
	}
	failures := r.run(newScanner(input))
	if failures > 0 && !interactive {
		os.Exit(1)
	}
}

// loadConfig reads the config file named by -config, or the nearest
// achurch.yaml, and applies command line overrides.
func loadConfig() (*config.Config, error) {
	path := *configPath
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		logf("loaded config %s", path)
		cfg = loaded
	}

	if *maxBeta != 0 {
		if err := cfg.Set("max_reductions", fmt.Sprint(*maxBeta)); err != nil {
			return nil, err
		}
	}
	if *graphDir != "" {
		cfg.ShowGraph = true
		cfg.GraphDir = *graphDir
	}
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout)
	}
}
