package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vic/achurch/pkg/config"
	"github.com/vic/achurch/pkg/lambda"
	"github.com/vic/achurch/pkg/session"
)

const prompt = "λ> "

const helpText = `Enter a lambda expression to reduce it, or NAME = expression to define a macro.
  λx.x  \x.x     abstraction (λxy.b is λx.λy.b)
  f a b          application, left associative
  A + B          infix macro call, same as + A B
  A ` + "`AND`" + ` B      infix call of an alphabetic macro
  A AND B        the same, for AND, OR and names given to :infix
Commands:
  :help              show this text
  :macros            list defined macros
  :import            define TRUE, FALSE, AND, N2, SUCC, Y and friends
  :config            show the current settings
  :infix <NAME>      allow NAME between its operands without backticks
  :set <key> <value> change a setting (` + "`:config`" + ` lists the keys)
  :quit              leave
`

// maxLineSize bounds one input line; macro heavy lines outgrow
// bufio.MaxScanTokenSize.
const maxLineSize = 16 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return sc
}

// errQuit is returned by a command that ends the session.
var errQuit = errors.New("quit")

// repl reads lines and evaluates them against one session.
type repl struct {
	sess        *session.Session
	out         *printer
	errOut      io.Writer
	interactive bool
}

// run evaluates every line from sc and returns the number of lines that
// failed.
func (r *repl) run(sc *bufio.Scanner) int {
	if r.errOut == nil {
		r.errOut = os.Stderr
	}

	failures := 0
	for {
		if r.interactive {
			fmt.Fprint(r.out.out, prompt)
		}
		if !sc.Scan() {
			break
		}
		err := r.line(sc.Text())
		if err == errQuit {
			return failures
		}
		if err != nil {
			failures++
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(r.errOut, "Error reading input: %v\n", err)
		failures++
	}
	if r.interactive {
		fmt.Fprintln(r.out.out)
	}
	return failures
}

// line handles one input line: a comment, a command or an expression.
func (r *repl) line(text string) error {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "--") {
		return nil
	}
	if strings.HasPrefix(text, ":") {
		return r.command(strings.Fields(text[1:]))
	}

	logf("eval %q", text)
	report, err := r.sess.Eval(text)
	if report != nil {
		if perr := r.out.report(report, r.sess.Config); perr != nil {
			return perr
		}
	}
	return err
}

func (r *repl) command(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("empty command, try :help")
	}
	p := r.out

	switch args[0] {
	case "help", "h", "?":
		fmt.Fprint(p.out, helpText)
	case "quit", "q", "exit":
		return errQuit
	case "macros", "m":
		if r.sess.Env.Len() == 0 {
			p.println("no macros defined, try :import")
			return nil
		}
		r.sess.Env.Each(func(name string, t lambda.Term) {
			p.printf("%s = %s\n", p.bold(name), lambda.Render(t))
		})
	case "import":
		ok, err := r.sess.ImportDefaults()
		if err != nil {
			return err
		}
		if !ok {
			p.println("default macros already imported")
			return nil
		}
		p.printf("imported %d macros\n", r.sess.Env.Len())
	case "infix":
		if len(args) != 2 {
			return fmt.Errorf("usage: :infix <NAME>")
		}
		if _, err := r.sess.Env.Lookup(args[1]); err != nil {
			return err
		}
		r.sess.Env.MarkOperator(args[1])
		p.printf("%s is now infix\n", p.bold(args[1]))
	case "config":
		data, err := r.sess.Config.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(p.out, string(data))
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: :set <key> <value> (keys: %s)", strings.Join(config.Keys(), ", "))
		}
		if err := r.sess.Config.Set(args[1], args[2]); err != nil {
			return err
		}
		if args[1] == "color" {
			p.color = useColor(r.sess.Config.Color)
		}
		p.printf("%s = %s\n", args[1], args[2])
	default:
		return fmt.Errorf("unknown command :%s, try :help", args[0])
	}
	return nil
}
