package eval

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/vic/lamb/pkg/debruijn"
	"github.com/vic/lamb/pkg/lambda"
	"golang.org/x/exp/slices"
)

var debug = os.Getenv("LAMB_DEBUG") != ""

//go:embed prelude.lamb
var prelude string

// PreludeName is the file name reported for errors in the prelude.
const PreludeName = "prelude.lamb"

// Evaluator executes statements against an Environment and reduces
// expressions with a bounded machine. An Evaluator is not safe for
// concurrent use.
type Evaluator struct {
	opts    Options
	env     *Environment
	machine *debruijn.Machine

	// resolver of the last reduction, kept to read back its trace
	resolver *lambda.Resolver

	loaded  map[string]bool
	loading []string
}

func New(opts Options) *Evaluator {
	m := debruijn.NewMachine(opts.Strategy)
	m.SetLimit(opts.Limit)
	return &Evaluator{
		opts:    opts,
		env:     NewEnvironment(),
		machine: m,
		loaded:  make(map[string]bool),
	}
}

func (e *Evaluator) Env() *Environment { return e.env }

func (e *Evaluator) Options() Options { return e.opts }

func (e *Evaluator) SetStrategy(s debruijn.Strategy) {
	e.opts.Strategy = s
	e.machine.SetStrategy(s)
}

func (e *Evaluator) SetLimit(n uint64) {
	e.opts.Limit = n
	e.machine.SetLimit(n)
}

// Stats returns the counters of the last reduction.
func (e *Evaluator) Stats() debruijn.Stats { return e.machine.Stats() }

func (e *Evaluator) EnableTrace(capacity int) { e.machine.EnableTrace(capacity) }

func (e *Evaluator) DisableTrace() { e.machine.DisableTrace() }

// Trace returns the terms of the last reduction's recorded steps, oldest
// first.
func (e *Evaluator) Trace() []lambda.Term {
	events := e.machine.TraceSnapshot()
	if len(events) == 0 || e.resolver == nil {
		return nil
	}
	out := make([]lambda.Term, len(events))
	for i, ev := range events {
		out[i] = e.resolver.ToNamed(ev.Term)
	}
	return out
}

// Expand resolves the identifiers of term against the environment.
func (e *Evaluator) Expand(term lambda.Term) (lambda.Term, error) {
	t, err := lambda.Expand(term, e.env)
	if err != nil {
		return nil, e.annotate(err)
	}
	return t, nil
}

// Reduce expands term and reduces it under the configured strategy. When
// the step limit or the timeout stops the reduction, the partial result
// is returned together with the error.
func (e *Evaluator) Reduce(ctx context.Context, term lambda.Term) (lambda.Term, error) {
	term, err := e.Expand(term)
	if err != nil {
		return nil, err
	}
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	idx, r := lambda.ToIndex(term)
	e.resolver = r
	res, err := e.machine.Run(ctx, idx)
	if debug {
		st := e.machine.Stats()
		log.Printf("[lamb] reduced in %d steps (%v), size %d", st.Steps, st.Elapsed, st.ResultSize)
	}
	return r.ToNamed(res), err
}

// ReduceName reduces the definition of name.
func (e *Evaluator) ReduceName(ctx context.Context, name string) (lambda.Term, error) {
	def, ok := e.env.Lookup(name)
	if !ok {
		return nil, e.annotate(&lambda.NotDefinedError{Name: name})
	}
	return e.Reduce(ctx, def)
}

// Exec runs one statement. A let stores the expanded definition, an
// import loads the named file and an expression is reduced; only the last
// returns a term.
func (e *Evaluator) Exec(ctx context.Context, stmt lambda.Statement) (lambda.Term, error) {
	return e.exec(ctx, stmt, "")
}

func (e *Evaluator) exec(ctx context.Context, stmt lambda.Statement, dir string) (lambda.Term, error) {
	switch s := stmt.(type) {
	case lambda.LetStmt:
		def, err := e.Expand(s.Expr)
		if err != nil {
			return nil, fmt.Errorf("let %s: %w", s.Name, err)
		}
		e.env.Define(s.Name, def)
		return nil, nil
	case lambda.ImportStmt:
		return nil, e.importFile(ctx, s.Path, dir)
	case lambda.ExprStmt:
		return e.Reduce(ctx, s.Expr)
	default:
		panic(fmt.Sprintf("eval: unknown statement type %T", stmt))
	}
}

// ExecSource parses and runs one REPL entry. Imports are resolved from
// the working directory.
func (e *Evaluator) ExecSource(ctx context.Context, src string) (lambda.Term, error) {
	stmt, err := lambda.ParseStatement(src)
	if err != nil {
		return nil, err
	}
	return e.Exec(ctx, stmt)
}

// LoadFile loads the statements of the file at path. Loading a file a
// second time is a no-op.
func (e *Evaluator) LoadFile(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if e.loaded[abs] {
		return nil
	}
	if slices.Contains(e.loading, abs) {
		return &ImportError{Path: path, Cycle: true}
	}
	src, err := os.ReadFile(abs)
	if err != nil {
		return err
	}

	e.loading = append(e.loading, abs)
	defer func() { e.loading = e.loading[:len(e.loading)-1] }()

	if err := e.LoadSource(ctx, path, string(src)); err != nil {
		return err
	}
	e.loaded[abs] = true
	return nil
}

// LoadSource runs every statement of src in order. name is used in
// errors and to resolve relative imports. The first failing statement
// aborts the load; definitions made before it are kept.
func (e *Evaluator) LoadSource(ctx context.Context, name, src string) error {
	stmts, err := lambda.ParseFile(src)
	if err != nil {
		return fmt.Errorf("%s:%w", name, err)
	}
	dir := filepath.Dir(name)
	for _, stmt := range stmts {
		res, err := e.exec(ctx, stmt, dir)
		if err != nil {
			var ie *ImportError
			if errors.As(err, &ie) {
				return err
			}
			return fmt.Errorf("%s: %w", name, err)
		}
		if res != nil && e.opts.Output != nil {
			fmt.Fprintln(e.opts.Output, res)
		}
	}
	return nil
}

// LoadPrelude defines the standard combinators, booleans, pairs and
// Church arithmetic.
func (e *Evaluator) LoadPrelude() error {
	return e.LoadSource(context.Background(), PreludeName, prelude)
}

// importFile finds path next to the importing file, then in each
// SearchPath directory.
func (e *Evaluator) importFile(ctx context.Context, path, dir string) error {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = []string{filepath.Join(dir, path)}
		for _, d := range e.opts.SearchPath {
			candidates = append(candidates, filepath.Join(d, path))
		}
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err != nil {
			continue
		}
		if debug {
			log.Printf("[lamb] import %s from %s", path, c)
		}
		err := e.LoadFile(ctx, c)
		var ie *ImportError
		if err != nil && !errors.As(err, &ie) {
			return &ImportError{Path: path, Err: err}
		}
		return err
	}
	return &ImportError{Path: path, Err: fs.ErrNotExist}
}
