package eval

import (
	"github.com/samber/lo"
	"github.com/vic/lamb/pkg/lambda"
	"golang.org/x/exp/slices"
)

// Environment maps definition names to their expanded terms. It satisfies
// lambda.Scope.
type Environment struct {
	defs map[string]lambda.Term
}

func NewEnvironment() *Environment {
	return &Environment{defs: make(map[string]lambda.Term)}
}

func (e *Environment) Lookup(name string) (lambda.Term, bool) {
	t, ok := e.defs[name]
	return t, ok
}

// Define binds name to term, replacing any earlier definition.
func (e *Environment) Define(name string, term lambda.Term) {
	e.defs[name] = term
}

// Names returns the defined names in sorted order.
func (e *Environment) Names() []string {
	names := lo.Keys(e.defs)
	slices.Sort(names)
	return names
}

func (e *Environment) Len() int {
	return len(e.defs)
}
