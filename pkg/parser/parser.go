package parser

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal
	TokenVar
	TokenMacro
	TokenInfix
	TokenLambda
	TokenDot
	TokenEqual
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenIllegal:
		return "illegal"
	case TokenVar:
		return "variable"
	case TokenMacro:
		return "macro"
	case TokenInfix:
		return "infix operator"
	case TokenLambda:
		return "'λ'"
	case TokenDot:
		return "'.'"
	case TokenEqual:
		return "'='"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "unknown"
	}
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	if t.Literal == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s %q", t.Type, t.Literal)
}

// Parser is a recursive descent parser for lambda expressions and macro
// definitions:
//
//	root       ::= definition | term
//	definition ::= (MACRO | INFIX) ('=' | '≡') term
//	term       ::= app (INFIX app)*
//	app        ::= atom atom* [abs]
//	atom       ::= VAR | MACRO | '(' term ')' | abs
//	abs        ::= ('λ' | '\') VAR+ '.' term
//
// Variables are single lowercase letters, so "xy" is x applied to y. Macro
// names start with an uppercase letter followed by uppercase letters or
// digits. Infix operators are runs of symbol characters such as "+", or any
// macro name quoted in backticks. Infix operators are left associative and
// bind looser than application; a lambda body extends as far right as
// possible.
type Parser struct {
	input   []rune
	pos     int
	current Token
	errs    []Error
}

func NewParser(input string) *Parser {
	p := &Parser{input: []rune(input)}
	p.next()
	return p
}

const operatorChars = "+-*/<>^&|~!?@#%$:;,"

func isOperator(ch rune) bool {
	return strings.ContainsRune(operatorChars, ch)
}

func isLower(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func isUpper(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
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
	case isLower(ch):
		p.pos++
		p.current = Token{Type: TokenVar, Literal: string(ch), Pos: start}
	case isUpper(ch):
		for p.pos < len(p.input) && (isUpper(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		p.current = Token{Type: TokenMacro, Literal: string(p.input[start:p.pos]), Pos: start}
	case isOperator(ch):
		for p.pos < len(p.input) && isOperator(p.input[p.pos]) {
			p.pos++
		}
		p.current = Token{Type: TokenInfix, Literal: string(p.input[start:p.pos]), Pos: start}
	case ch == '`':
		p.pos++
		nameStart := p.pos
		for p.pos < len(p.input) && (isUpper(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		name := string(p.input[nameStart:p.pos])
		if name == "" || !isUpper(p.input[nameStart]) || p.pos >= len(p.input) || p.input[p.pos] != '`' {
			p.current = Token{Type: TokenIllegal, Literal: string(p.input[start:p.pos]), Pos: start}
			return
		}
		p.pos++
		p.current = Token{Type: TokenInfix, Literal: name, Pos: start}
	case ch == 'λ' || ch == '\\':
		p.pos++
		p.current = Token{Type: TokenLambda, Literal: string(ch), Pos: start}
	case ch == '.':
		p.pos++
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
	case ch == '=' || ch == '≡':
		p.pos++
		p.current = Token{Type: TokenEqual, Literal: string(ch), Pos: start}
	case ch == '(':
		p.pos++
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
	case ch == ')':
		p.pos++
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
	default:
		p.pos++
		p.current = Token{Type: TokenIllegal, Literal: string(ch), Pos: start}
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *Parser) errorf(pos int, format string, args ...any) {
	p.errs = append(p.errs, Error{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// Parse parses the whole input. Syntax errors do not stop the parser; they
// are collected in the tree and reported together as a *SyntaxError.
func (p *Parser) Parse() (*Tree, error) {
	tree := &Tree{Source: string(p.input)}

	if p.current.Type == TokenMacro || p.current.Type == TokenInfix {
		savePos := p.pos
		saveTok := p.current
		p.next()
		if p.current.Type == TokenEqual {
			p.next() // consume '='
			body := p.parseTerm()
			tree.Definition = &Definition{Name: saveTok.Literal, Body: body}
		} else {
			p.pos = savePos
			p.current = saveTok
		}
	}

	if tree.Definition == nil {
		tree.Term = p.parseTerm()
	}

	if p.current.Type != TokenEOF {
		p.errorf(p.current.Pos, "unexpected %s", p.current)
	}

	tree.Errors = p.errs
	if len(p.errs) > 0 {
		return tree, &SyntaxError{Errors: p.errs}
	}
	return tree, nil
}

// term ::= app (INFIX app)*
func (p *Parser) parseTerm() Node {
	left := p.parseApp()
	for p.current.Type == TokenInfix {
		op := p.current
		p.next()
		right := p.parseApp()
		left = InfixNode{At: op.Pos, Left: left, Op: op.Literal, Right: right}
	}
	return left
}

func startsAtom(t TokenType) bool {
	switch t {
	case TokenVar, TokenMacro, TokenLParen, TokenLambda:
		return true
	}
	return false
}

// app ::= atom atom* [abs]
func (p *Parser) parseApp() Node {
	if p.current.Type == TokenLambda {
		return p.parseAbs()
	}

	left := p.parseAtom()
	for startsAtom(p.current.Type) {
		if p.current.Type == TokenLambda {
			// A lambda extends to the right, so it is the last argument.
			abs := p.parseAbs()
			return AppNode{At: left.Pos(), Fun: left, Arg: abs}
		}
		right := p.parseAtom()
		left = AppNode{At: left.Pos(), Fun: left, Arg: right}
	}
	return left
}

func (p *Parser) parseAtom() Node {
	tok := p.current
	switch tok.Type {
	case TokenVar:
		p.next()
		return VarNode{At: tok.Pos, Name: tok.Literal}
	case TokenMacro:
		p.next()
		return MacroNode{At: tok.Pos, Name: tok.Literal}
	case TokenLParen:
		p.next()
		term := p.parseTerm()
		if p.current.Type != TokenRParen {
			p.errorf(p.current.Pos, "expected ')', got %s", p.current)
			return term
		}
		p.next()
		return term
	case TokenLambda:
		return p.parseAbs()
	default:
		p.errorf(tok.Pos, "unexpected %s", tok)
		if tok.Type != TokenEOF && tok.Type != TokenRParen {
			p.next()
		}
		return VarNode{At: tok.Pos, Name: tok.Literal}
	}
}

// abs ::= ('λ' | '\') VAR+ '.' term
func (p *Parser) parseAbs() Node {
	at := p.current.Pos
	p.next() // consume 'λ'

	var params []string
	for p.current.Type == TokenVar {
		params = append(params, p.current.Literal)
		p.next()
	}
	if len(params) == 0 {
		p.errorf(p.current.Pos, "expected variable after λ, got %s", p.current)
	}

	if p.current.Type != TokenDot {
		p.errorf(p.current.Pos, "expected '.', got %s", p.current)
	} else {
		p.next()
	}

	body := p.parseTerm()
	return AbsNode{At: at, Params: params, Body: body}
}

// Parse parses a lambda expression or macro definition from a string.
func Parse(input string) (*Tree, error) {
	p := NewParser(input)
	return p.Parse()
}
