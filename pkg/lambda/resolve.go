package lambda

import (
	"fmt"

	"github.com/vic/lamb/pkg/debruijn"
	"golang.org/x/exp/slices"
)

// Resolver converts between named and de Bruijn indexed terms.
//
// Free variables are kept in a table shared by both directions: a free
// name with table id i is encoded at binding depth c as index c+i. Use the
// same Resolver to convert a term and its reduct back.
type Resolver struct {
	free []string
	ids  map[string]int
}

func NewResolver() *Resolver {
	return &Resolver{ids: make(map[string]int)}
}

// Intern returns the table id of a free name, adding it if needed.
func (r *Resolver) Intern(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := len(r.free)
	r.free = append(r.free, name)
	r.ids[name] = id
	return id
}

// FreeName returns the free name with table id id.
func (r *Resolver) FreeName(id int) (string, bool) {
	if id < 0 || id >= len(r.free) {
		return "", false
	}
	return r.free[id], true
}

// FreeNames lists the interned free names in id order.
func (r *Resolver) FreeNames() []string {
	return slices.Clone(r.free)
}

// ToIndex converts a named term to its de Bruijn form. The term must be
// expanded: Ident, Num and Let nodes are rejected with a panic.
func (r *Resolver) ToIndex(term Term) debruijn.Term {
	// Binding depth of every visible bound name.
	bound := make(map[string]int)
	return r.toIndex(term, bound, 0)
}

func (r *Resolver) toIndex(term Term, bound map[string]int, c int) debruijn.Term {
	switch t := term.(type) {
	case Var:
		if i, ok := bound[t.Name]; ok {
			return debruijn.Var{Index: c - i - 1}
		}
		return debruijn.Var{Index: c + r.Intern(t.Name)}

	case Abs:
		// Save old binding if shadowing
		old, shadowing := bound[t.Arg]
		bound[t.Arg] = c

		body := r.toIndex(t.Body, bound, c+1)

		// Restore binding
		if shadowing {
			bound[t.Arg] = old
		} else {
			delete(bound, t.Arg)
		}
		return debruijn.Abs{Hint: t.Arg, Body: body}

	case App:
		return debruijn.App{
			Fun: r.toIndex(t.Fun, bound, c),
			Arg: r.toIndex(t.Arg, bound, c),
		}

	default:
		panic(fmt.Sprintf("lambda: %T %s must be expanded before conversion", term, term))
	}
}

// ToNamed converts a de Bruijn term back to a named term. Binders keep
// their hint unless it would clash with a name in scope or a free name,
// in which case primes are appended.
func (r *Resolver) ToNamed(term debruijn.Term) Term {
	var names []string
	return r.toNamed(term, &names, 0)
}

func (r *Resolver) toNamed(term debruijn.Term, names *[]string, c int) Term {
	switch t := term.(type) {
	case debruijn.Var:
		if t.Index >= c {
			name, ok := r.FreeName(t.Index - c)
			if !ok {
				panic(fmt.Sprintf("lambda: free index %d at depth %d has no name", t.Index, c))
			}
			return Var{Name: name}
		}
		return Var{Name: (*names)[c-1-t.Index]}

	case debruijn.Abs:
		name := r.pickFreshName(*names, t.Hint)
		*names = append(*names, name)
		body := r.toNamed(t.Body, names, c+1)
		*names = (*names)[:len(*names)-1]
		return Abs{Arg: name, Body: body}

	case debruijn.App:
		return App{
			Fun: r.toNamed(t.Fun, names, c),
			Arg: r.toNamed(t.Arg, names, c),
		}

	default:
		panic(fmt.Sprintf("lambda: unknown term type %T", term))
	}
}

func (r *Resolver) pickFreshName(names []string, name string) string {
	if name == "" {
		name = "x"
	}
	for {
		_, free := r.ids[name]
		if !free && !slices.Contains(names, name) {
			return name
		}
		name += "'"
	}
}

// ToIndex converts term with a fresh Resolver, which is returned for the
// conversion back.
func ToIndex(term Term) (debruijn.Term, *Resolver) {
	r := NewResolver()
	return r.ToIndex(term), r
}
