package lambda

// Church returns the Church numeral λf. λx. fⁿ x.
func Church(n uint64) Term {
	var body Term = Var{Name: "x"}
	for i := uint64(0); i < n; i++ {
		body = App{Fun: Var{Name: "f"}, Arg: body}
	}
	return Abs{Arg: "f", Body: Abs{Arg: "x", Body: body}}
}

// Unchurch recognises a Church numeral with any binder names.
func Unchurch(t Term) (uint64, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok || inner.Arg == outer.Arg {
		return 0, false
	}

	var n uint64
	body := inner.Body
	for {
		switch b := body.(type) {
		case Var:
			return n, b.Name == inner.Arg
		case App:
			if f, ok := b.Fun.(Var); !ok || f.Name != outer.Arg {
				return 0, false
			}
			n++
			body = b.Arg
		default:
			return 0, false
		}
	}
}
