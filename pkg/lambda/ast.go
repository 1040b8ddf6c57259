package lambda

import "fmt"

// Term represents a named lambda calculus term.
type Term interface {
	String() string
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(λ%s. %s)", a.Arg, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Ident is a reference to a definition in the environment.
// Expand replaces it with the definition.
type Ident struct {
	Name string
}

func (i Ident) String() string {
	return i.Name
}

// Num is a numeric literal, expanded to a Church numeral.
type Num struct {
	Value uint64
}

func (n Num) String() string {
	return fmt.Sprintf("%d", n.Value)
}

// Let represents a let binding (sugar for application).
// let x = Val in Body -> (\x. Body) Val
type Let struct {
	Name string
	Val  Term
	Body Term
}

func (l Let) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", l.Name, l.Val, l.Body)
}

// Statement is one top-level entry of a file or REPL line.
type Statement interface {
	String() string
}

// LetStmt defines Name in the environment.
type LetStmt struct {
	Name string
	Expr Term
}

func (s LetStmt) String() string {
	return fmt.Sprintf("let %s = %s", s.Name, s.Expr)
}

// ImportStmt loads the definitions of another file.
type ImportStmt struct {
	Path string
}

func (s ImportStmt) String() string {
	return "import " + s.Path
}

// ExprStmt is a bare expression to evaluate.
type ExprStmt struct {
	Expr Term
}

func (s ExprStmt) String() string {
	return s.Expr.String()
}
