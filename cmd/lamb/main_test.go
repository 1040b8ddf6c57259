package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vic/lamb/pkg/debruijn"
)

func TestFlags(t *testing.T) {
	t.Setenv("LAMB_PATH", "/env")
	fs, cf := newFlagSet("eval")
	err := fs.Parse([]string{"-strategy", "cbv", "-limit", "50", "-I", "/one", "-I", "/two", "-prelude", "rest"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ev, err := cf.evaluator()
	if err != nil {
		t.Fatalf("evaluator error: %v", err)
	}

	opts := ev.Options()
	if opts.Strategy != debruijn.CallByValue || opts.Limit != 50 {
		t.Errorf("unexpected options %+v", opts)
	}
	want := []string{"/one", "/two", "/env"}
	if len(opts.SearchPath) != len(want) {
		t.Fatalf("SearchPath = %v, expected %v", opts.SearchPath, want)
	}
	for i := range want {
		if opts.SearchPath[i] != want[i] {
			t.Errorf("SearchPath = %v, expected %v", opts.SearchPath, want)
		}
	}
	if _, ok := ev.Env().Lookup("Succ"); !ok {
		t.Error("-prelude should define Succ")
	}
	if fs.Arg(0) != "rest" {
		t.Errorf("positional args = %v", fs.Args())
	}
}

func TestBadStrategyFlag(t *testing.T) {
	fs, cf := newFlagSet("run")
	if err := fs.Parse([]string{"-strategy", "lazy"}); err != nil {
		t.Fatal(err)
	}
	if _, err := cf.evaluator(); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func TestReplCommands(t *testing.T) {
	fs, cf := newFlagSet("repl")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	ev, err := cf.evaluator()
	if err != nil {
		t.Fatal(err)
	}
	r := &repl{cf: cf, ev: ev, intr: &interrupter{}}

	if r.command(":strategy applicative") {
		t.Fatal(":strategy should not quit")
	}
	if ev.Options().Strategy != debruijn.ApplicativeOrder {
		t.Errorf("strategy = %s", ev.Options().Strategy)
	}
	r.command(":limit 7")
	if ev.Options().Limit != 7 {
		t.Errorf("limit = %d", ev.Options().Limit)
	}
	r.command(":limit lots")
	if ev.Options().Limit != 7 {
		t.Error("an invalid limit should be ignored")
	}
	r.command(":trace on")
	if !r.trace {
		t.Error(":trace on should enable tracing")
	}
	r.command(":trace off")
	if r.trace {
		t.Error(":trace off should disable tracing")
	}
	if !r.command(":quit") {
		t.Error(":quit should quit")
	}
}

func TestInterrupter(t *testing.T) {
	in := &interrupter{}
	in.interrupt() // nothing running

	ctx, done := in.begin()
	defer done()
	go func() {
		time.Sleep(10 * time.Millisecond)
		in.interrupt()
	}()

	m := debruijn.NewMachine(debruijn.NormalOrder)
	omega := debruijn.App{
		Fun: debruijn.Abs{Body: debruijn.App{Fun: debruijn.Var{Index: 0}, Arg: debruijn.Var{Index: 0}}},
		Arg: debruijn.Abs{Body: debruijn.App{Fun: debruijn.Var{Index: 0}, Arg: debruijn.Var{Index: 0}}},
	}
	if _, err := m.Run(ctx, omega); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
