package lambda

import (
	"testing"

	"github.com/vic/lamb/pkg/debruijn"
)

// TestTranslationBoundIndex verifies the bound index formula: a variable
// bound at depth i and used at depth c gets index c-i-1, its distance to
// the binder.
func TestTranslationBoundIndex(t *testing.T) {
	// \x. \y. \z. x z (y z)
	term := mustParse(t, `\x. \y. \z. x z (y z)`)
	idx, _ := ToIndex(term)

	want := debruijn.Abs{Hint: "x", Body: debruijn.Abs{Hint: "y", Body: debruijn.Abs{Hint: "z", Body: debruijn.App{
		Fun: debruijn.App{Fun: debruijn.Var{Index: 2}, Arg: debruijn.Var{Index: 0}},
		Arg: debruijn.App{Fun: debruijn.Var{Index: 1}, Arg: debruijn.Var{Index: 0}},
	}}}}
	if !debruijn.Equal(idx, want) {
		t.Errorf("S combinator: got %v, expected %v", idx, want)
	}
	if idx.String() != "(λ (λ (λ ((2 0) (1 0)))))" {
		t.Errorf("unexpected rendering %s", idx)
	}
}

// TestTranslationFreeIndex verifies the free index formula: a free name
// with table id i used at depth c gets index c+i, so its free identity
// k-c is the same at every depth.
func TestTranslationFreeIndex(t *testing.T) {
	// a (\x. a b (\y. b))
	term := mustParse(t, `a (\x. a b (\y. b))`)
	r := NewResolver()
	idx := r.ToIndex(term)

	want := debruijn.App{
		Fun: debruijn.Var{Index: 0},
		Arg: debruijn.Abs{Hint: "x", Body: debruijn.App{
			Fun: debruijn.App{Fun: debruijn.Var{Index: 1}, Arg: debruijn.Var{Index: 2}},
			Arg: debruijn.Abs{Hint: "y", Body: debruijn.Var{Index: 3}},
		}},
	}
	if !debruijn.Equal(idx, want) {
		t.Errorf("got %v, expected %v", idx, want)
	}

	names := r.FreeNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("free table = %v, expected [a b]", names)
	}
}

// TestTranslationFreeNamesDistinct checks that distinct free names never
// share an index with each other or with a bound variable.
func TestTranslationFreeNamesDistinct(t *testing.T) {
	term := mustParse(t, `\x. x p q r`)
	idx, r := ToIndex(term)
	abs := idx.(debruijn.Abs)

	seen := map[int]bool{}
	var walk func(debruijn.Term)
	walk = func(t debruijn.Term) {
		switch v := t.(type) {
		case debruijn.Var:
			seen[v.Index] = true
		case debruijn.App:
			walk(v.Fun)
			walk(v.Arg)
		}
	}
	walk(abs.Body)
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct indices, got %v", seen)
	}
	if got := r.ToNamed(idx).String(); got != "(λx. (((x p) q) r))" {
		t.Errorf("unexpected readback %s", got)
	}
}
