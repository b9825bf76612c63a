/*
File    : pseudo/parser/parser_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/lexer"
)

// sameLevelKeyword consumes kw if it appears immediately (inline body), or
// on the next line at exactly tabExpect indentation (block body); it
// rewinds and reports false otherwise, leaving the stream for the caller's
// enclosing block parser to re-consume the NEWLINE.
func (p *Parser) sameLevelKeyword(tabExpect int, kw string) bool {
	if p.atKeyword(kw) {
		p.advance()
		return true
	}
	if p.at(lexer.NEWLINE_TYPE) {
		save := p.snapshot()
		p.advance()
		depth := 0
		for p.at(lexer.TAB_TYPE) {
			depth++
			p.advance()
		}
		if depth == tabExpect && p.atKeyword(kw) {
			p.advance()
			return true
		}
		p.restore(save)
	}
	return false
}

// inlineOrBlockBody parses either a single inline expression following a
// header keyword ("then"/"do"), or (when a NEWLINE follows) an indented
// block at tabExpect+1.
func (p *Parser) inlineOrBlockBody(tabExpect int) []ast.Node {
	if p.at(lexer.NEWLINE_TYPE) {
		return p.blockAfterNewline(tabExpect)
	}
	e := p.expr()
	return []ast.Node{e}
}

func lastIsError(nodes []ast.Node) ast.Node {
	if len(nodes) > 0 && isError(nodes[len(nodes)-1]) {
		return nodes[len(nodes)-1]
	}
	return nil
}

// parseIf: "if" cond "then" body [same-level "else" (if_expr | body)]
func (p *Parser) parseIf(tabExpect int) ast.Node {
	tok := p.Curr
	p.advance() // "if"

	cond := p.expr()
	if isError(cond) {
		return cond
	}
	if !p.expectKeyword("then") {
		return p.errorf("expected 'then' after if condition")
	}

	thenBody := p.inlineOrBlockBody(tabExpect)
	if e := lastIsError(thenBody); e != nil {
		return e
	}

	var elseBody []ast.Node
	if p.sameLevelKeyword(tabExpect, "else") {
		switch {
		case p.atKeyword("if"):
			elseBody = []ast.Node{p.parseIf(tabExpect)}
		default:
			elseBody = p.inlineOrBlockBody(tabExpect)
		}
		if e := lastIsError(elseBody); e != nil {
			return e
		}
	}

	return &ast.IfNode{Token: tok, Cond: cond, Then: thenBody, Else: elseBody}
}

// parseFor: "for" IDENT "<-" expr "to" expr ("step" expr)? "do" body
func (p *Parser) parseFor(tabExpect int) ast.Node {
	tok := p.Curr
	p.advance() // "for"

	if !p.at(lexer.IDENTIFIER_TYPE) {
		return p.errorf("expected loop variable name after 'for', got %s", p.Curr.Type)
	}
	varTok := p.Curr
	p.advance()

	if !p.expect(lexer.ASSIGN_TYPE) {
		return p.errorf("expected '<-' after for loop variable")
	}
	start := p.expr()
	if isError(start) {
		return start
	}
	varAssign := &ast.VarAssignNode{Token: varTok, Expr: start}

	if !p.expectKeyword("to") {
		return p.errorf("expected 'to' in for loop")
	}
	end := p.expr()
	if isError(end) {
		return end
	}

	var step ast.Node
	if p.atKeyword("step") {
		p.advance()
		step = p.expr()
		if isError(step) {
			return step
		}
	}

	if !p.expectKeyword("do") {
		return p.errorf("expected 'do' in for loop")
	}
	body := p.inlineOrBlockBody(tabExpect)
	if e := lastIsError(body); e != nil {
		return e
	}

	return &ast.ForNode{Token: tok, VarAssign: varAssign, End: end, Step: step, Body: body}
}

// parseWhile: "while" expr "do" body
func (p *Parser) parseWhile(tabExpect int) ast.Node {
	tok := p.Curr
	p.advance() // "while"

	cond := p.expr()
	if isError(cond) {
		return cond
	}
	if !p.expectKeyword("do") {
		return p.errorf("expected 'do' in while loop")
	}
	body := p.inlineOrBlockBody(tabExpect)
	if e := lastIsError(body); e != nil {
		return e
	}
	return &ast.WhileNode{Token: tok, Cond: cond, Body: body}
}

// parseRepeat: "repeat" body "until" expr
func (p *Parser) parseRepeat(tabExpect int) ast.Node {
	tok := p.Curr
	p.advance() // "repeat"

	body := p.inlineOrBlockBody(tabExpect)
	if e := lastIsError(body); e != nil {
		return e
	}

	if !p.sameLevelKeyword(tabExpect, "until") {
		return p.errorf("expected 'until' to close repeat block")
	}
	cond := p.expr()
	if isError(cond) {
		return cond
	}
	return &ast.RepeatNode{Token: tok, Body: body, Cond: cond}
}
