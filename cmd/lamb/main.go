package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/vic/lamb/pkg/debruijn"
	"github.com/vic/lamb/pkg/eval"
	"github.com/vic/lamb/pkg/lambda"
)

const (
	appName = "lamb"
	version = "0.3.0"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lamb %s, an untyped lambda calculus evaluator

Usage:
  %s run [flags] <file.lamb>     Load a file and print the normal form of main
  %s eval [flags] [expr]         Evaluate statements from the arguments or stdin
  %s repl [flags]                Start the REPL
  %s version                     Print the version

Flags:
  -strategy normal|applicative|cbn|cbv
  -limit N       step limit per reduction (0 = none)
  -timeout D     time limit per reduction (0 = none)
  -prelude       load the standard definitions first
  -stats         print reduction stats to stderr
  -trace N       print the last N steps of each reduction
  -I dir         add dir to the import search path (repeatable)

Defaults come from LAMB_STRATEGY, LAMB_LIMIT, LAMB_TIMEOUT and LAMB_PATH.
`, version, appName, appName, appName, appName)
}

// pathList collects repeated -I flags.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(dir string) error {
	*p = append(*p, dir)
	return nil
}

type cliFlags struct {
	opts     eval.Options
	strategy string
	prelude  bool
	stats    bool
	trace    int
	include  pathList
}

func newFlagSet(name string) (*flag.FlagSet, *cliFlags) {
	cf := &cliFlags{opts: eval.DefaultOptions()}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cf.strategy, "strategy", cf.opts.Strategy.String(), "evaluation strategy")
	fs.Uint64Var(&cf.opts.Limit, "limit", cf.opts.Limit, "step limit per reduction (0 = none)")
	fs.DurationVar(&cf.opts.Timeout, "timeout", cf.opts.Timeout, "time limit per reduction (0 = none)")
	fs.BoolVar(&cf.prelude, "prelude", false, "load the standard definitions first")
	fs.BoolVar(&cf.stats, "stats", false, "print reduction stats to stderr")
	fs.IntVar(&cf.trace, "trace", 0, "print the last N steps of each reduction")
	fs.Var(&cf.include, "I", "add a directory to the import search path")
	return fs, cf
}

// evaluator builds an Evaluator from parsed flags.
func (cf *cliFlags) evaluator() (*eval.Evaluator, error) {
	s, err := debruijn.ParseStrategy(cf.strategy)
	if err != nil {
		return nil, err
	}
	cf.opts.Strategy = s
	cf.opts.SearchPath = append([]string(cf.include), cf.opts.SearchPath...)

	ev := eval.New(cf.opts)
	if cf.trace > 0 {
		ev.EnableTrace(cf.trace)
	}
	if cf.prelude {
		if err := ev.LoadPrelude(); err != nil {
			return nil, err
		}
	}
	return ev, nil
}

// report prints the trace and stats of the last reduction to stderr.
func (cf *cliFlags) report(ev *eval.Evaluator) {
	if cf.trace > 0 {
		printTrace(ev)
	}
	if cf.stats {
		printStats(ev.Stats())
	}
}

func printTrace(ev *eval.Evaluator) {
	steps := ev.Trace()
	if len(steps) == 0 {
		return
	}
	last := ev.Stats().Steps
	first := last - uint64(len(steps)) + 1
	for i, t := range steps {
		fmt.Fprintf(os.Stderr, "%6d  %s\n", first+uint64(i), t)
	}
}

func printStats(st debruijn.Stats) {
	seconds := st.Elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", st.Elapsed)
	fmt.Fprintf(os.Stderr, "Total Reductions: %d", st.Steps)
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(st.Steps)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Result Size: %d\n", st.ResultSize)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs, cf := newFlagSet("run")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [flags] <file.lamb>\n", appName)
		return 2
	}

	ev, err := cf.evaluator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := ev.LoadFile(ctx, fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	res, err := ev.ReduceName(ctx, "main")
	return finish(cf, ev, res, err)
}

// finish prints a reduction result, or the partial term and the reason
// the reduction stopped.
func finish(cf *cliFlags, ev *eval.Evaluator, res lambda.Term, err error) int {
	var nd *lambda.NotDefinedError
	if errors.As(err, &nd) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	if res != nil {
		fmt.Println(res)
	}
	cf.report(ev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// eval
// -----------------------------------------------------------------------------

func cmdEval(args []string) int {
	fs, cf := newFlagSet("eval")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var src string
	if fs.NArg() > 0 {
		src = strings.Join(fs.Args(), " ")
	} else {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return 1
		}
		src = string(input)
	}

	stmts, err := lambda.ParseFile(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		return 1
	}

	ev, err := cf.evaluator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, stmt := range stmts {
		res, err := ev.Exec(ctx, stmt)
		if _, ok := stmt.(lambda.ExprStmt); !ok {
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
				return 1
			}
			continue
		}
		if code := finish(cf, ev, res, err); code != 0 {
			return code
		}
	}
	return 0
}
