package debruijn

import "fmt"

// Term represents a de Bruijn indexed lambda term.
type Term interface {
	String() string
}

// Var is a variable occurrence. Index counts the abstractions between the
// occurrence and its binder; indices at or above the current depth are free.
type Var struct {
	Index int
}

func (v Var) String() string {
	return fmt.Sprintf("%d", v.Index)
}

// Abs represents an abstraction. Hint is the binder's original name and is
// only used when converting back to a named term.
type Abs struct {
	Hint string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(λ %s)", a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// IsRedex reports whether t is an application of an abstraction.
func IsRedex(t Term) bool {
	app, ok := t.(App)
	if !ok {
		return false
	}
	_, ok = app.Fun.(Abs)
	return ok
}

// Equal reports whether two terms have the same structure. Hints are
// ignored, so Equal is alpha-equivalence.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Index == y.Index
	case Abs:
		y, ok := b.(Abs)
		return ok && Equal(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	default:
		return false
	}
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch x := t.(type) {
	case Var:
		return 1
	case Abs:
		return 1 + Size(x.Body)
	case App:
		return 1 + Size(x.Fun) + Size(x.Arg)
	default:
		panic(fmt.Sprintf("debruijn: unknown term type %T", t))
	}
}
