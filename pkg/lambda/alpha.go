package lambda

import (
	"fmt"

	"github.com/vic/lamb/pkg/debruijn"
)

// AlphaEqual reports whether two expanded terms are equal up to renaming
// of bound variables. Free variables must have the same names.
func AlphaEqual(a, b Term) bool {
	r := NewResolver()
	return debruijn.Equal(r.ToIndex(a), r.ToIndex(b))
}

// Canonical renames the bound variables of t to x0, x1, ... in traversal
// order, leaving free variables alone. Two terms are alpha-equivalent when
// their canonical forms print the same.
func Canonical(t Term) Term {
	// mapping from original bound name -> canonical name
	bindings := make(map[string]string)
	var idx int
	var walk func(Term) Term
	walk = func(tt Term) Term {
		switch v := tt.(type) {
		case Var:
			if name, ok := bindings[v.Name]; ok {
				return Var{Name: name}
			}
			return v
		case Abs:
			canon := fmt.Sprintf("x%d", idx)
			idx++
			// shadowing: save old if any
			old, had := bindings[v.Arg]
			bindings[v.Arg] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Arg] = old
			} else {
				delete(bindings, v.Arg)
			}
			return Abs{Arg: canon, Body: body}
		case App:
			return App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(t)
}
