/*
File    : pseudo/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/lexer"
)

// expr := comp_expr (("and"|"or") comp_expr)*
func (p *Parser) expr() ast.Node {
	left := p.compExpr()
	if isError(left) {
		return left
	}
	for p.atKeyword("and") || p.atKeyword("or") {
		op := p.Curr
		p.advance()
		right := p.compExpr()
		if isError(right) {
			return right
		}
		left = &ast.BinOpNode{Left: left, Op: op, Right: right}
	}
	return left
}

// comp_expr := "not" comp_expr | arith_expr (("="|"!="|"<"|">"|"<="|">=") arith_expr)*
func (p *Parser) compExpr() ast.Node {
	if p.atKeyword("not") {
		op := p.Curr
		p.advance()
		operand := p.compExpr()
		if isError(operand) {
			return operand
		}
		return &ast.UnaryOpNode{Op: op, Operand: operand}
	}

	left := p.arithExpr()
	if isError(left) {
		return left
	}
	for isCompareOp(p.Curr.Type) {
		op := p.Curr
		p.advance()
		right := p.arithExpr()
		if isError(right) {
			return right
		}
		left = &ast.BinOpNode{Left: left, Op: op, Right: right}
	}
	return left
}

func isCompareOp(t lexer.TokenType) bool {
	switch t {
	case lexer.EQUAL_TYPE, lexer.NEQ_TYPE, lexer.LESS_TYPE, lexer.GREATER_TYPE, lexer.LEQ_TYPE, lexer.GEQ_TYPE:
		return true
	}
	return false
}

// arith_expr := term (("+"|"-") term)*
func (p *Parser) arithExpr() ast.Node {
	left := p.term()
	if isError(left) {
		return left
	}
	for p.at(lexer.ADD_TYPE) || p.at(lexer.SUB_TYPE) {
		op := p.Curr
		p.advance()
		right := p.term()
		if isError(right) {
			return right
		}
		left = &ast.BinOpNode{Left: left, Op: op, Right: right}
	}
	return left
}

// term := factor (("*"|"/"|"%") factor)*
func (p *Parser) term() ast.Node {
	left := p.factor()
	if isError(left) {
		return left
	}
	for p.at(lexer.MUL_TYPE) || p.at(lexer.DIV_TYPE) || p.at(lexer.MOD_TYPE) {
		op := p.Curr
		p.advance()
		right := p.factor()
		if isError(right) {
			return right
		}
		left = &ast.BinOpNode{Left: left, Op: op, Right: right}
	}
	return left
}

// factor := ("+"|"-") factor | pow
func (p *Parser) factor() ast.Node {
	if p.at(lexer.ADD_TYPE) || p.at(lexer.SUB_TYPE) {
		op := p.Curr
		p.advance()
		operand := p.factor()
		if isError(operand) {
			return operand
		}
		return &ast.UnaryOpNode{Op: op, Operand: operand}
	}
	return p.pow()
}

// pow := call ("^" factor)*
func (p *Parser) pow() ast.Node {
	left := p.call()
	if isError(left) {
		return left
	}
	for p.at(lexer.POW_TYPE) {
		op := p.Curr
		p.advance()
		right := p.factor()
		if isError(right) {
			return right
		}
		left = &ast.BinOpNode{Left: left, Op: op, Right: right}
	}
	return left
}

// call := atom ( "." IDENT | "(" args? ")" | "[" expr "]" )* ( "<-" expr )?
func (p *Parser) call() ast.Node {
	node := p.atom()
	if isError(node) {
		return node
	}

chain:
	for {
		switch {
		case p.at(lexer.DOT_TYPE):
			p.advance()
			if !p.at(lexer.IDENTIFIER_TYPE) && !p.at(lexer.BUILTIN_ALGO) {
				return p.errorf("expected member name after '.', got %s", p.Curr.Type)
			}
			member := p.Curr
			p.advance()
			node = &ast.MemAccessNode{Token: member, Object: node, Member: member.Literal}
		case p.at(lexer.LEFT_PAREN):
			open := p.Curr
			p.advance()
			var args []ast.Node
			if !p.at(lexer.RIGHT_PAREN) {
				args = p.argList()
				if len(args) > 0 && isError(args[len(args)-1]) {
					return args[len(args)-1]
				}
			}
			if !p.expect(lexer.RIGHT_PAREN) {
				return p.errorf("expected ')' to close call")
			}
			node = &ast.AlgoCallNode{Token: open, Callee: node, Args: args}
		case p.at(lexer.LEFT_SQUARE):
			open := p.Curr
			p.advance()
			idx := p.expr()
			if isError(idx) {
				return idx
			}
			if !p.expect(lexer.RIGHT_SQUARE) {
				return p.errorf("expected ']' to close index")
			}
			node = &ast.ArrAccessNode{Token: open, Target: node, Index: idx}
		default:
			break chain
		}
	}

	if p.at(lexer.ASSIGN_TYPE) {
		assign := p.Curr
		p.advance()
		rhs := p.expr()
		if isError(rhs) {
			return rhs
		}
		switch node.(type) {
		case *ast.ArrAccessNode, *ast.MemAccessNode:
			return &ast.ArrAssignNode{Token: assign, Lvalue: node, Rhs: rhs}
		case *ast.VarAccessNode:
			v := node.(*ast.VarAccessNode)
			return &ast.VarAssignNode{Token: v.Token, Expr: rhs}
		default:
			return p.errorf("invalid assignment target")
		}
	}

	return node
}

// argList parses a comma-separated expr list (used for call arguments and
// ARRAY literal elements).
func (p *Parser) argList() []ast.Node {
	var args []ast.Node
	first := p.expr()
	args = append(args, first)
	if isError(first) {
		return args
	}
	for p.at(lexer.COMMA_TYPE) {
		p.advance()
		next := p.expr()
		args = append(args, next)
		if isError(next) {
			return args
		}
	}
	return args
}
