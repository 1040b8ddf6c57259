package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/peterh/liner"
	"github.com/vic/lamb/pkg/debruijn"
	"github.com/vic/lamb/pkg/eval"
	"github.com/vic/lamb/pkg/lambda"
)

const (
	historyFile  = ".lamb_history"
	promptMain   = "λ> "
	promptCont   = ".. "
	defaultTrace = 32
)

var (
	banner   = fmt.Sprintf("lamb %s REPL\nCtrl+C interrupts a reduction, Ctrl+D exits. Type :help for commands.", version)
	helpText = `
Statements:
  let Name = expr        define Name
  import path            load path.lamb
  expr                   reduce expr

REPL commands:
  :quit                  exit the REPL
  :help                  show this text
  :env                   list the definitions
  :strategy [name]       show or set the strategy (normal, applicative, cbn, cbv)
  :limit [n]             show or set the step limit (0 = none)
  :trace on|off          print the steps of each reduction
  :load <file>           load a file
`
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// interrupter cancels the reduction in progress when SIGINT arrives.
type interrupter struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

func (in *interrupter) begin() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	in.mu.Lock()
	in.cancel = cancel
	in.mu.Unlock()
	return ctx, func() {
		in.mu.Lock()
		in.cancel = nil
		in.mu.Unlock()
		cancel()
	}
}

func (in *interrupter) interrupt() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.cancel != nil {
		in.cancel()
	}
}

type repl struct {
	cf    *cliFlags
	ev    *eval.Evaluator
	intr  *interrupter
	trace bool
}

func cmdRepl(args []string) int {
	fs, cf := newFlagSet("repl")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ev, err := cf.evaluator()
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	for _, file := range fs.Args() {
		if err := ev.LoadFile(context.Background(), file); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
	}

	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r := &repl{cf: cf, ev: ev, intr: &interrupter{}, trace: cf.trace > 0}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		for range sigc {
			r.intr.interrupt()
		}
	}()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(code, ":") {
			if quit := r.command(code); quit {
				return 0
			}
			continue
		}
		r.exec(code)
	}
}

func (r *repl) exec(code string) {
	ctx, done := r.intr.begin()
	defer done()

	res, err := r.ev.ExecSource(ctx, code)
	if res != nil {
		if r.trace {
			printTrace(r.ev)
		}
		fmt.Println(res)
		if r.cf.stats {
			printStats(r.ev.Stats())
		}
	}
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, red("interrupted"))
	default:
		fmt.Fprintln(os.Stderr, red(err.Error()))
	}
}

// command runs a REPL command and reports whether the REPL should exit.
func (r *repl) command(code string) bool {
	fields := strings.Fields(code)
	arg := strings.TrimSpace(strings.TrimPrefix(code, fields[0]))

	switch strings.ToLower(fields[0]) {
	case ":quit", ":q":
		return true

	case ":help", ":h":
		fmt.Print(helpText)

	case ":env":
		for _, name := range r.ev.Env().Names() {
			def, _ := r.ev.Env().Lookup(name)
			fmt.Printf("%s = %s\n", name, def)
		}

	case ":strategy":
		if arg == "" {
			fmt.Println(r.ev.Options().Strategy)
			break
		}
		s, err := debruijn.ParseStrategy(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			break
		}
		r.ev.SetStrategy(s)

	case ":limit":
		if arg == "" {
			fmt.Println(r.ev.Options().Limit)
			break
		}
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(fmt.Sprintf("invalid limit %q", arg)))
			break
		}
		r.ev.SetLimit(n)

	case ":trace":
		switch strings.ToLower(arg) {
		case "on":
			capacity := r.cf.trace
			if capacity <= 0 {
				capacity = defaultTrace
			}
			r.ev.EnableTrace(capacity)
			r.trace = true
		case "off":
			r.ev.DisableTrace()
			r.trace = false
		default:
			fmt.Fprintln(os.Stderr, red("usage: :trace on|off"))
		}

	case ":load":
		if arg == "" {
			fmt.Fprintln(os.Stderr, red("usage: :load <file>"))
			break
		}
		ctx, done := r.intr.begin()
		defer done()
		if err := r.ev.LoadFile(ctx, arg); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}

	default:
		fmt.Printf("unknown command %s. Type :help for commands.\n", fields[0])
	}
	return false
}

// readByParseProbe reads lines until they form a complete statement or a
// REPL command. Input that fails to parse for another reason is returned
// as is so the error gets reported.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending entry.
			return "", true
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		_, perr := lambda.ParseStatement(src)
		if perr != nil && lambda.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
