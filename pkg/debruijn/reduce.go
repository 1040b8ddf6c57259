package debruijn

import "fmt"

// Step contracts at most one redex of t under strategy s. It returns the
// new term and true when a redex was contracted, or t and false when t is
// already in the strategy's target form (normal form for NormalOrder and
// ApplicativeOrder, weak head normal form for CallByName and CallByValue).
func Step(t Term, s Strategy) (Term, bool) {
	switch x := t.(type) {
	case Var:
		return x, false
	case Abs:
		if !s.Strong() {
			return x, false
		}
		body, ok := Step(x.Body, s)
		if !ok {
			return x, false
		}
		return Abs{Hint: x.Hint, Body: body}, true
	case App:
		return stepApp(x, s)
	default:
		panic(fmt.Sprintf("debruijn: unknown term type %T", t))
	}
}

func stepApp(x App, s Strategy) (Term, bool) {
	switch s {
	case NormalOrder, CallByName:
		if _, ok := x.Fun.(Abs); ok {
			return Beta(x), true
		}
		if fun, ok := Step(x.Fun, s); ok {
			return App{Fun: fun, Arg: x.Arg}, true
		}
		if s == CallByName {
			return x, false
		}
		if arg, ok := Step(x.Arg, s); ok {
			return App{Fun: x.Fun, Arg: arg}, true
		}
		return x, false

	case ApplicativeOrder:
		if fun, ok := Step(x.Fun, s); ok {
			return App{Fun: fun, Arg: x.Arg}, true
		}
		if arg, ok := Step(x.Arg, s); ok {
			return App{Fun: x.Fun, Arg: arg}, true
		}
		if _, ok := x.Fun.(Abs); ok {
			return Beta(x), true
		}
		return x, false

	case CallByValue:
		if arg, ok := Step(x.Arg, s); ok {
			return App{Fun: x.Fun, Arg: arg}, true
		}
		if fun, ok := Step(x.Fun, s); ok {
			return App{Fun: fun, Arg: x.Arg}, true
		}
		if _, ok := x.Fun.(Abs); ok {
			return Beta(x), true
		}
		return x, false

	default:
		panic(fmt.Sprintf("debruijn: unknown strategy %d", int(s)))
	}
}

// Reduce applies Step until it reports no progress. It does not return on
// a term that has no normal form under s.
func Reduce(t Term, s Strategy) Term {
	for {
		next, ok := Step(t, s)
		if !ok {
			return next
		}
		t = next
	}
}

// Normalize is the fixpoint form of Reduce: it reduces sub-terms
// recursively and agrees with Reduce on every input where either returns.
func Normalize(t Term, s Strategy) Term {
	switch s {
	case NormalOrder:
		return normalOrder(t)
	case ApplicativeOrder:
		return applicativeOrder(t)
	case CallByName:
		return callByName(t)
	case CallByValue:
		return callByValue(t)
	default:
		panic(fmt.Sprintf("debruijn: unknown strategy %d", int(s)))
	}
}

// Each App case loops: contracting a redex can expose a new one at the
// same position, so reduction restarts there until nothing applies.

func normalOrder(t Term) Term {
	for {
		switch x := t.(type) {
		case Var:
			return x
		case Abs:
			return Abs{Hint: x.Hint, Body: normalOrder(x.Body)}
		case App:
			fun := callByName(x.Fun)
			if _, ok := fun.(Abs); ok {
				t = Beta(App{Fun: fun, Arg: x.Arg})
				continue
			}
			// fun is headed by a variable and stays so.
			return App{Fun: normalOrder(fun), Arg: normalOrder(x.Arg)}
		default:
			panic(fmt.Sprintf("debruijn: unknown term type %T", t))
		}
	}
}

func applicativeOrder(t Term) Term {
	for {
		switch x := t.(type) {
		case Var:
			return x
		case Abs:
			return Abs{Hint: x.Hint, Body: applicativeOrder(x.Body)}
		case App:
			fun := applicativeOrder(x.Fun)
			arg := applicativeOrder(x.Arg)
			if _, ok := fun.(Abs); ok {
				t = Beta(App{Fun: fun, Arg: arg})
				continue
			}
			return App{Fun: fun, Arg: arg}
		default:
			panic(fmt.Sprintf("debruijn: unknown term type %T", t))
		}
	}
}

func callByName(t Term) Term {
	for {
		x, ok := t.(App)
		if !ok {
			return t
		}
		fun := callByName(x.Fun)
		if _, ok := fun.(Abs); ok {
			t = Beta(App{Fun: fun, Arg: x.Arg})
			continue
		}
		return App{Fun: fun, Arg: x.Arg}
	}
}

func callByValue(t Term) Term {
	for {
		x, ok := t.(App)
		if !ok {
			return t
		}
		arg := callByValue(x.Arg)
		fun := callByValue(x.Fun)
		if _, ok := fun.(Abs); ok {
			t = Beta(App{Fun: fun, Arg: arg})
			continue
		}
		return App{Fun: fun, Arg: arg}
	}
}
