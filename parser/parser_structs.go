/*
File    : pseudo/parser/parser_structs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/lexer"
)

// parseAlgoDef parses an "Algorithm" definition. The name production
// accepts, after the keyword: "operator" OP (stored as "operator "+OP),
// IDENT "::" IDENT or IDENT IDENT (both install the algorithm as a method
// of the struct named by the first identifier, stored as "Struct::method"
// for eval's ALGODEF dispatch to recognise), a bare IDENT, or no name at
// all (stored as "Anonymous").
func (p *Parser) parseAlgoDef(tabExpect int) ast.Node {
	tok := p.Curr
	p.advance() // "Algorithm"

	name := "Anonymous"
	switch {
	case p.atKeyword("operator"):
		p.advance()
		opTok := p.Curr
		p.advance()
		name = "operator " + opTok.Literal
	case p.at(lexer.IDENTIFIER_TYPE):
		first := p.Curr.Literal
		p.advance()
		switch {
		case p.at(lexer.SCOPE_RES):
			p.advance()
			if !p.at(lexer.IDENTIFIER_TYPE) {
				return p.errorf("expected method name after '::'")
			}
			second := p.Curr.Literal
			p.advance()
			name = first + "::" + second
		case p.at(lexer.IDENTIFIER_TYPE):
			second := p.Curr.Literal
			p.advance()
			name = first + "::" + second
		default:
			name = first
		}
	}

	if !p.expect(lexer.LEFT_PAREN) {
		return p.errorf("expected '(' after algorithm name")
	}
	var params []string
	if !p.at(lexer.RIGHT_PAREN) {
		for {
			if !p.at(lexer.IDENTIFIER_TYPE) {
				return p.errorf("expected parameter name, got %s", p.Curr.Type)
			}
			params = append(params, p.Curr.Literal)
			p.advance()
			if p.at(lexer.COMMA_TYPE) {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expect(lexer.RIGHT_PAREN) {
		return p.errorf("expected ')' after parameter list")
	}
	if !p.expect(lexer.COLON_TYPE) {
		return p.errorf("expected ':' after algorithm signature")
	}

	body := p.blockAfterNewline(tabExpect)
	if e := lastIsError(body); e != nil {
		return e
	}

	return &ast.AlgoDefNode{Token: tok, Name: name, Params: params, Body: body}
}

// parseStructDef parses "Struct" IDENT ":" then an indented block of
// declared member names and Algorithm method definitions.
func (p *Parser) parseStructDef(tabExpect int) ast.Node {
	tok := p.Curr
	p.advance() // "Struct"

	if !p.at(lexer.IDENTIFIER_TYPE) {
		return p.errorf("expected struct name after 'Struct'")
	}
	name := p.Curr.Literal
	p.advance()

	if !p.expect(lexer.COLON_TYPE) {
		return p.errorf("expected ':' after struct name")
	}

	stmts := p.blockAfterNewline(tabExpect)

	var members []string
	var methods []*ast.AlgoDefNode
	for _, s := range stmts {
		if isError(s) {
			return s
		}
		switch n := s.(type) {
		case *ast.VarAccessNode:
			members = append(members, n.Token.Literal)
		case *ast.AlgoDefNode:
			methods = append(methods, n)
		default:
			return p.errorf("struct body may only contain member names and Algorithm definitions")
		}
	}

	return &ast.StructDefNode{Token: tok, Name: name, Members: members, Methods: methods}
}
