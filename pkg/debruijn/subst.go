package debruijn

import "fmt"

// Shift adds d to every free index of t.
func Shift(t Term, d int) Term {
	return shift(t, d, 0)
}

func shift(t Term, d, cutoff int) Term {
	switch x := t.(type) {
	case Var:
		if x.Index >= cutoff {
			if x.Index+d < 0 {
				panic(fmt.Sprintf("debruijn: shift by %d makes index %d negative", d, x.Index))
			}
			return Var{Index: x.Index + d}
		}
		return x
	case Abs:
		return Abs{Hint: x.Hint, Body: shift(x.Body, d, cutoff+1)}
	case App:
		return App{Fun: shift(x.Fun, d, cutoff), Arg: shift(x.Arg, d, cutoff)}
	default:
		panic(fmt.Sprintf("debruijn: unknown term type %T", t))
	}
}

// Subst replaces every free occurrence of index y in t with s.
// Occurrences under c binders match y+c and receive s shifted by c.
func Subst(t Term, y int, s Term) Term {
	return subst(t, y, s, 0)
}

func subst(t Term, y int, s Term, c int) Term {
	switch x := t.(type) {
	case Var:
		if x.Index == y+c {
			return Shift(s, c)
		}
		return x
	case Abs:
		return Abs{Hint: x.Hint, Body: subst(x.Body, y, s, c+1)}
	case App:
		return App{Fun: subst(x.Fun, y, s, c), Arg: subst(x.Arg, y, s, c)}
	default:
		panic(fmt.Sprintf("debruijn: unknown term type %T", t))
	}
}

// Beta contracts the redex App(Abs(body), arg). Any other term is
// returned unchanged.
func Beta(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return t
	}
	abs, ok := app.Fun.(Abs)
	if !ok {
		return t
	}
	return Shift(Subst(abs.Body, 0, Shift(app.Arg, 1)), -1)
}
