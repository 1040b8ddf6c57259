package lambda

import (
	"fmt"

	"github.com/samber/lo"
)

// Scope resolves identifiers to their definitions.
type Scope interface {
	Lookup(name string) (Term, bool)
}

// MapScope is a Scope backed by a map.
type MapScope map[string]Term

func (m MapScope) Lookup(name string) (Term, bool) {
	t, ok := m[name]
	return t, ok
}

// Expand removes the surface-only nodes of t: identifiers are replaced by
// their definitions in scope, numerals by Church numerals and let
// expressions by applications. The result contains only Var, Abs and App.
//
// A binder whose name occurs free in a definition used in its body is
// renamed first, so definitions are never captured.
func Expand(t Term, scope Scope) (Term, error) {
	e := &expander{
		scope:  scope,
		cache:  make(map[string]Term),
		active: make(map[string]bool),
	}
	return e.expand(t)
}

type expander struct {
	scope  Scope
	cache  map[string]Term
	active map[string]bool
}

func (e *expander) lookup(name string) (Term, error) {
	if def, ok := e.cache[name]; ok {
		return def, nil
	}
	if e.active[name] {
		return nil, fmt.Errorf("%s is defined in terms of itself", name)
	}
	if e.scope == nil {
		return nil, &NotDefinedError{Name: name}
	}
	def, ok := e.scope.Lookup(name)
	if !ok {
		return nil, &NotDefinedError{Name: name}
	}

	e.active[name] = true
	def, err := e.expand(def)
	delete(e.active, name)
	if err != nil {
		return nil, err
	}
	e.cache[name] = def
	return def, nil
}

func (e *expander) expand(term Term) (Term, error) {
	switch t := term.(type) {
	case Var:
		return t, nil

	case Ident:
		return e.lookup(t.Name)

	case Num:
		return Church(t.Value), nil

	case Let:
		return e.expand(App{Fun: Abs{Arg: t.Name, Body: t.Body}, Arg: t.Val})

	case App:
		fun, err := e.expand(t.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := e.expand(t.Arg)
		if err != nil {
			return nil, err
		}
		return App{Fun: fun, Arg: arg}, nil

	case Abs:
		imported, err := e.definitionFreeVars(t.Body)
		if err != nil {
			return nil, err
		}
		arg, body := t.Arg, t.Body
		if lo.Contains(imported, arg) {
			taken := append(imported, VarNames(body)...)
			fresh := arg
			for lo.Contains(taken, fresh) {
				fresh += "'"
			}
			arg, body = fresh, Rename(body, t.Arg, fresh)
		}
		body, err = e.expand(body)
		if err != nil {
			return nil, err
		}
		return Abs{Arg: arg, Body: body}, nil

	default:
		panic(fmt.Sprintf("lambda: unknown term type %T", term))
	}
}

// definitionFreeVars collects the free variables of every definition
// referenced in t.
func (e *expander) definitionFreeVars(term Term) ([]string, error) {
	var out []string
	var walk func(Term) error
	walk = func(term Term) error {
		switch t := term.(type) {
		case Ident:
			def, err := e.lookup(t.Name)
			if err != nil {
				return err
			}
			out = append(out, FreeVars(def)...)
		case Abs:
			return walk(t.Body)
		case App:
			if err := walk(t.Fun); err != nil {
				return err
			}
			return walk(t.Arg)
		case Let:
			if err := walk(t.Val); err != nil {
				return err
			}
			return walk(t.Body)
		}
		return nil
	}
	if err := walk(term); err != nil {
		return nil, err
	}
	return lo.Uniq(out), nil
}

// FreeVars returns the free variable names of t in order of first
// occurrence.
func FreeVars(t Term) []string {
	var out []string
	var walk func(Term, []string)
	walk = func(term Term, bound []string) {
		switch t := term.(type) {
		case Var:
			if !lo.Contains(bound, t.Name) {
				out = append(out, t.Name)
			}
		case Abs:
			walk(t.Body, append(bound, t.Arg))
		case App:
			walk(t.Fun, bound)
			walk(t.Arg, bound)
		case Let:
			walk(t.Val, bound)
			walk(t.Body, append(bound, t.Name))
		}
	}
	walk(t, nil)
	return lo.Uniq(out)
}

// VarNames returns every variable name used in t, bound or free.
func VarNames(t Term) []string {
	var out []string
	var walk func(Term)
	walk = func(term Term) {
		switch t := term.(type) {
		case Var:
			out = append(out, t.Name)
		case Abs:
			out = append(out, t.Arg)
			walk(t.Body)
		case App:
			walk(t.Fun)
			walk(t.Arg)
		case Let:
			out = append(out, t.Name)
			walk(t.Val)
			walk(t.Body)
		}
	}
	walk(t)
	return lo.Uniq(out)
}

// Rename replaces the free occurrences of variable old in t with new.
// new must not be bound anywhere in t.
func Rename(t Term, old, new string) Term {
	switch x := t.(type) {
	case Var:
		if x.Name == old {
			return Var{Name: new}
		}
		return x
	case Abs:
		if x.Arg == old {
			return x
		}
		return Abs{Arg: x.Arg, Body: Rename(x.Body, old, new)}
	case App:
		return App{Fun: Rename(x.Fun, old, new), Arg: Rename(x.Arg, old, new)}
	case Let:
		body := x.Body
		if x.Name != old {
			body = Rename(body, old, new)
		}
		return Let{Name: x.Name, Val: Rename(x.Val, old, new), Body: body}
	default:
		return t
	}
}
