/*
File    : pseudo/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/lexer"
)

// atom := INT | FLOAT | STRING | BUILTIN_CONST | BUILTIN_ALGO
//       | "(" expr ")"
//       | IDENT
//       | "self"
//       | if_expr | for_expr | while_expr | repeat_expr
//       | algo_def | struct_def
//       | "{" (expr ("," expr)*)? "}"
//       | "return" expr?
func (p *Parser) atom() ast.Node {
	tabExpect := p.tabExpect

	switch {
	case p.at(lexer.INT_TYPE), p.at(lexer.FLOAT_TYPE), p.at(lexer.STRING_TYPE), p.at(lexer.BUILTIN_CONST):
		tok := p.Curr
		p.advance()
		return &ast.ValueNode{Token: tok}

	case p.at(lexer.BUILTIN_ALGO):
		tok := p.Curr
		p.advance()
		return &ast.VarAccessNode{Token: tok}

	case p.at(lexer.LEFT_PAREN):
		p.advance()
		inner := p.expr()
		if isError(inner) {
			return inner
		}
		if !p.expect(lexer.RIGHT_PAREN) {
			return p.errorf("expected ')' to close parenthesized expression")
		}
		return inner

	case p.at(lexer.IDENTIFIER_TYPE):
		tok := p.Curr
		p.advance()
		return &ast.VarAccessNode{Token: tok}

	case p.atKeyword("self"):
		tok := p.Curr
		p.advance()
		return &ast.VarAccessNode{Token: tok}

	case p.atKeyword("if"):
		return p.parseIf(tabExpect)

	case p.atKeyword("for"):
		return p.parseFor(tabExpect)

	case p.atKeyword("while"):
		return p.parseWhile(tabExpect)

	case p.atKeyword("repeat"):
		return p.parseRepeat(tabExpect)

	case p.atKeyword("Algorithm"):
		return p.parseAlgoDef(tabExpect)

	case p.atKeyword("Struct"):
		return p.parseStructDef(tabExpect)

	case p.at(lexer.LEFT_BRACE):
		return p.parseArrayLiteral()

	case p.atKeyword("return"):
		tok := p.Curr
		p.advance()
		if p.atStatementEnd() {
			return &ast.ReturnNode{Token: tok}
		}
		val := p.expr()
		if isError(val) {
			return val
		}
		return &ast.ReturnNode{Token: tok, Expr: val}

	default:
		return p.errorf("unexpected token %s %q", p.Curr.Type, p.Curr.Literal)
	}
}

// atStatementEnd reports whether Curr ends a statement (used to detect a
// bare "return" with no trailing expression).
func (p *Parser) atStatementEnd() bool {
	switch p.Curr.Type {
	case lexer.NEWLINE_TYPE, lexer.SEMICOLON_TYPE, lexer.EOF_TYPE, lexer.RIGHT_PAREN, lexer.RIGHT_BRACE:
		return true
	}
	return false
}

// parseArrayLiteral parses "{" (expr ("," expr)*)? "}".
func (p *Parser) parseArrayLiteral() ast.Node {
	open := p.Curr
	p.advance()
	var elems []ast.Node
	if !p.at(lexer.RIGHT_BRACE) {
		elems = p.argList()
		if len(elems) > 0 && isError(elems[len(elems)-1]) {
			return elems[len(elems)-1]
		}
	}
	if !p.expect(lexer.RIGHT_BRACE) {
		return p.errorf("expected '}' to close array literal")
	}
	return &ast.ArrayNode{Token: open, Elements: elems}
}
