/*
File    : pseudo/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser over the lexer's
// token stream, producing ast.Node values. The parser is parameterised on
// an expected indentation level passed downward through block parsing; it
// never looks at absolute column position, only at TAB counts following
// NEWLINE.
package parser

import (
	"fmt"

	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/lexer"
)

// Parser holds the token stream and a two-token lookahead (current, next).
type Parser struct {
	tokens []lexer.Token
	pos    int

	Curr lexer.Token
	Next lexer.Token

	// tabExpect is the indentation level of the statement currently being
	// parsed, threaded to control-flow atoms (if/for/while/repeat/Algorithm/
	// Struct) so their bodies know what depth an indented block opens at.
	tabExpect int

	// blockEnded is set by statement() when it detects a dedent and rewinds
	// past it, signalling block() to stop looping instead of re-entering
	// statement() on the NEWLINE it just gave back.
	blockEnded bool

	Errors []string
}

// NewParser tokenises src under fileName and primes the lookahead.
func NewParser(fileName, src string) *Parser {
	lex := lexer.NewLexer(fileName, src)
	p := &Parser{tokens: lex.ConsumeTokens()}
	p.advance()
	p.advance()
	return p
}

// advance shifts Curr <- Next and reads the following token from the
// pre-lexed stream, repeating EOF once the stream is exhausted.
func (p *Parser) advance() {
	p.Curr = p.Next
	if p.pos < len(p.tokens) {
		p.Next = p.tokens[p.pos]
		p.pos++
	} else {
		p.Next = lexer.NewToken(lexer.EOF_TYPE, "", p.Curr.Pos)
	}
}

// at reports whether Curr is of the given type.
func (p *Parser) at(t lexer.TokenType) bool { return p.Curr.Type == t }

// atKeyword reports whether Curr is the reserved word kw.
func (p *Parser) atKeyword(kw string) bool {
	return p.Curr.Type == lexer.KEYWORD_TYPE && p.Curr.Literal == kw
}

// expect advances past Curr if it matches t, else records an error and
// returns false, leaving the cursor in place for error recovery upstream.
func (p *Parser) expect(t lexer.TokenType) bool {
	if !p.at(t) {
		p.errorf("expected %s, got %s %q", t, p.Curr.Type, p.Curr.Literal)
		return false
	}
	p.advance()
	return true
}

// expectKeyword advances past Curr if it is the reserved word kw.
func (p *Parser) expectKeyword(kw string) bool {
	if !p.atKeyword(kw) {
		p.errorf("expected keyword %q, got %s %q", kw, p.Curr.Type, p.Curr.Literal)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) errorf(format string, args ...interface{}) *ast.ErrorNode {
	msg := fmt.Sprintf(format, args...)
	p.Errors = append(p.Errors, msg)
	return &ast.ErrorNode{Token: p.Curr, Message: msg}
}

// HasErrors reports whether any ErrorNode was produced during parsing.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns all collected parse error messages.
func (p *Parser) GetErrors() []string { return p.Errors }

// isError reports whether n is an ast.ErrorNode.
func isError(n ast.Node) bool {
	_, ok := n.(*ast.ErrorNode)
	return ok
}

// Parse tokenises (already done in NewParser) and parses the whole input
// as a top-level block at indentation 0, returning its statement list.
func (p *Parser) Parse() []ast.Node {
	// skip any blank leading newlines
	for p.at(lexer.NEWLINE_TYPE) {
		p.advance()
	}
	return p.block(0)
}
