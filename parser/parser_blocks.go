/*
File    : pseudo/parser/parser_blocks.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/lexer"
)

// block parses a sequence of statements at the given indentation level,
// one TAB per level. It is used for the top-level program and for every
// indented body (if/for/while/repeat/Algorithm/Struct). It stops as soon
// as statement() reports the block has ended (dedent or EOF), leaving the
// boundary NEWLINE unconsumed for the enclosing block.
func (p *Parser) block(tabExpect int) []ast.Node {
	var stmts []ast.Node
	for {
		stmt := p.statement(tabExpect)
		if stmt == nil {
			return stmts
		}
		stmts = append(stmts, stmt)
		if isError(stmt) {
			return stmts
		}
		if p.blockEnded {
			p.blockEnded = false
			return stmts
		}
	}
}

// statement parses one line of a block at tabExpect, following the
// NEWLINE+TAB-counting contract: consume a NEWLINE, count following TABs,
// compare against tabExpect. Equal continues the block; less rewinds (so
// the enclosing block can re-consume the boundary NEWLINE) and sets
// blockEnded so block() stops instead of re-entering statement() on that
// same NEWLINE; greater is a parse error naming the expected level. Blank
// lines (a NEWLINE immediately followed by another NEWLINE, with nothing
// but TABs between) are skipped rather than counted, so they never look
// like a dedent or a fresh statement to parse. ";" behaves as an in-line
// equivalent to a properly indented NEWLINE.
func (p *Parser) statement(tabExpect int) ast.Node {
	if p.at(lexer.EOF_TYPE) {
		return nil
	}

	p.tabExpect = tabExpect
	expr := p.expr()
	if isError(expr) {
		return expr
	}

	if p.at(lexer.SEMICOLON_TYPE) {
		p.advance()
		return expr
	}

	if !p.at(lexer.NEWLINE_TYPE) {
		return expr
	}

	// Peek past the newline(s) to see how many TABs open the next real
	// line, without committing to consuming them yet. A blank line re-runs
	// this loop instead of being treated as the statement boundary.
	save := p.snapshot()
	tabCount := 0
	for p.at(lexer.NEWLINE_TYPE) {
		save = p.snapshot()
		p.advance() // consume NEWLINE
		tabCount = 0
		for p.at(lexer.TAB_TYPE) {
			tabCount++
			p.advance()
		}
	}

	switch {
	case p.at(lexer.EOF_TYPE):
		return expr
	case tabCount < tabExpect:
		// Block end: rewind so the outer block parser can re-consume
		// the NEWLINE that closes this block.
		p.restore(save)
		p.blockEnded = true
		return expr
	case tabCount > tabExpect:
		return p.errorf("unexpected indentation: expected %d tab(s), got %d", tabExpect, tabCount)
	default:
		return expr
	}
}

// parserSnapshot captures enough parser state to rewind a speculative scan.
type parserSnapshot struct {
	pos  int
	curr lexer.Token
	next lexer.Token
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{pos: p.pos, curr: p.Curr, next: p.Next}
}

func (p *Parser) restore(s parserSnapshot) {
	p.pos = s.pos
	p.Curr = s.curr
	p.Next = s.next
}

// blockAfterNewline expects the caller already parsed a header ending
// right before a NEWLINE; it consumes the NEWLINE, counts TABs, verifies
// they equal tabExpect+1, and parses the nested block at that deeper level.
// Used by if/for/while/repeat/Algorithm/Struct to parse an indented body.
func (p *Parser) blockAfterNewline(tabExpect int) []ast.Node {
	if !p.at(lexer.NEWLINE_TYPE) {
		return []ast.Node{p.errorf("expected newline before indented block")}
	}
	p.advance()
	depth := 0
	for p.at(lexer.TAB_TYPE) {
		depth++
		p.advance()
	}
	if depth != tabExpect+1 {
		return []ast.Node{p.errorf("expected %d tab(s) to open block, got %d", tabExpect+1, depth)}
	}
	return p.block(tabExpect + 1)
}
