package lambda

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenVar
	TokenIdent
	TokenNumber
	TokenLambda
	TokenDot
	TokenEqual
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLet
	TokenIn
	TokenImport
	TokenIllegal
)

// SourceExt is appended to import paths that have no extension.
const SourceExt = ".lamb"

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: p.pos}
		return
	}

	start := p.pos
	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
			p.pos++
		}
		lit := p.input[start:p.pos]
		switch {
		case lit == "let":
			p.current = Token{Type: TokenLet, Literal: lit, Pos: start}
		case lit == "in":
			p.current = Token{Type: TokenIn, Literal: lit, Pos: start}
		case lit == "import":
			p.current = Token{Type: TokenImport, Literal: lit, Pos: start}
		case IsVarName(lit):
			p.current = Token{Type: TokenVar, Literal: lit, Pos: start}
		default:
			p.current = Token{Type: TokenIdent, Literal: lit, Pos: start}
		}
	case isDigit(ch):
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
		p.current = Token{Type: TokenNumber, Literal: p.input[start:p.pos], Pos: start}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: "\\", Pos: start}
		p.pos++
	case strings.HasPrefix(p.input[p.pos:], "λ"):
		p.current = Token{Type: TokenLambda, Literal: "λ", Pos: start}
		p.pos += len("λ")
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
		p.pos++
	case ch == '=':
		p.current = Token{Type: TokenEqual, Literal: "=", Pos: start}
		p.pos++
	case ch == ';':
		p.current = Token{Type: TokenSemicolon, Literal: ";", Pos: start}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
		p.pos++
	default:
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.current = Token{Type: TokenIllegal, Literal: p.input[p.pos : p.pos+size], Pos: start}
		p.pos += size
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '#' {
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		if !unicode.IsSpace(rune(ch)) {
			return
		}
		p.pos++
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '\''
}

// IsVarName reports whether name is a variable name: one lowercase letter
// optionally followed by primes. Any other identifier refers to a
// definition in the environment.
func IsVarName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	return strings.Trim(name[1:], "'") == ""
}

func (p *Parser) errorf(expected string) error {
	line, col := p.lineCol(p.current.Pos)
	found := strconv.Quote(p.current.Literal)
	if p.current.Type == TokenEOF {
		found = "end of input"
	}
	return &ParseError{
		Pos:      p.current.Pos,
		Line:     line,
		Col:      col,
		Expected: expected,
		Found:    found,
		EOF:      p.current.Type == TokenEOF,
	}
}

func (p *Parser) lineCol(pos int) (int, int) {
	before := p.input[:pos]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	return line, col
}

func (p *Parser) expect(typ TokenType, what string) error {
	if p.current.Type != typ {
		return p.errorf(what)
	}
	p.next()
	return nil
}

// Parse parses a single expression.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("end of input")
	}
	return term, nil
}

// Term ::= Abs | Let | App
func (p *Parser) parseTerm() (Term, error) {
	switch p.current.Type {
	case TokenLambda:
		return p.parseAbs()
	case TokenLet:
		return p.parseLet()
	default:
		return p.parseApp()
	}
}

// Abs ::= ("\" | "λ") Var {Var} "." Term
func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume lambda

	var args []string
	for p.current.Type == TokenVar {
		args = append(args, p.current.Literal)
		p.next()
	}
	if len(args) == 0 {
		return nil, p.errorf("variable name")
	}
	if err := p.expect(TokenDot, "'.'"); err != nil {
		return nil, err
	}

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	// \x y. B -> \x. \y. B
	for i := len(args) - 1; i >= 0; i-- {
		body = Abs{Arg: args[i], Body: body}
	}
	return body, nil
}

// App ::= Atom {Atom} [Abs]
// An abstraction extends as far right as possible, so `x \y. z a` parses
// as `x (\y. z a)`. A let expression in argument position must be
// parenthesised: a bare `let` ends the application and starts the next
// statement.
func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenLambda:
			right, err := p.parseAbs()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: right}, nil
		case TokenVar, TokenIdent, TokenNumber, TokenLParen:
			right, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			left = App{Fun: left, Arg: right}
		default:
			return left, nil
		}
	}
}

// MaxNumeral is the largest numeral literal accepted. A literal expands to
// that many nested applications before any step limit applies.
const MaxNumeral = 1 << 16

// Atom ::= Var | Ident | Number | "(" Term ")"
func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenVar:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Ident{Name: name}, nil
	case TokenNumber:
		n, err := strconv.ParseUint(p.current.Literal, 10, 64)
		if err != nil || n > MaxNumeral {
			return nil, p.errorf(fmt.Sprintf("numeral ≤ %d", MaxNumeral))
		}
		p.next()
		return Num{Value: n}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return term, nil
	default:
		return nil, p.errorf("term")
	}
}

// Let ::= "let" Var "=" Term "in" Term
func (p *Parser) parseLet() (Term, error) {
	p.next() // consume 'let'

	if p.current.Type != TokenVar {
		return nil, p.errorf("variable name in let binding")
	}
	name := p.current.Literal
	p.next()

	if err := p.expect(TokenEqual, "'='"); err != nil {
		return nil, err
	}
	val, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenIn, "'in'"); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Let{Name: name, Val: val, Body: body}, nil
}

// Stmt ::= "let" Ident "=" Term | "import" Path | Term
func (p *Parser) parseStatement() (Statement, error) {
	switch p.current.Type {
	case TokenImport:
		// The path is raw text, not tokens.
		path := p.readPath()
		if path == "" {
			p.next()
			return nil, p.errorf("import path")
		}
		p.next()
		return ImportStmt{Path: path}, nil

	case TokenLet:
		// Lookahead: `let x = ... in ...` is an expression.
		savePos := p.pos
		saveTok := p.current
		p.next()
		if p.current.Type == TokenVar {
			p.pos = savePos
			p.current = saveTok
			break
		}
		if p.current.Type != TokenIdent {
			return nil, p.errorf("identifier")
		}
		name := p.current.Literal
		p.next()
		if err := p.expect(TokenEqual, "'='"); err != nil {
			return nil, err
		}
		expr, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return LetStmt{Name: name, Expr: expr}, nil
	}

	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return ExprStmt{Expr: expr}, nil
}

func (p *Parser) readPath() string {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.input) && !unicode.IsSpace(rune(p.input[p.pos])) && p.input[p.pos] != ';' {
		p.pos++
	}
	path := p.input[start:p.pos]
	if path != "" && filepath.Ext(path) == "" {
		path += SourceExt
	}
	return path
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}

// ParseStatement parses a single statement, as typed at the REPL.
func ParseStatement(input string) (Statement, error) {
	p := NewParser(input)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.current.Type == TokenSemicolon {
		p.next()
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("end of statement")
	}
	return stmt, nil
}

// ParseFile parses a sequence of statements.
func ParseFile(input string) ([]Statement, error) {
	p := NewParser(input)
	var stmts []Statement
	for p.current.Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.current.Type == TokenSemicolon {
			p.next()
		}
	}
	return stmts, nil
}
