/*
File    : pseudo/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tagged AST node variants produced by the parser
// and walked by the evaluator: VALUE, VARACCESS, VARASSIGN, BINOP, UNARYOP,
// ARRAY, ARRACCESS, ARRASSIGN, MEMACCESS, IF, FOR, WHILE, REPEAT, ALGODEF,
// ALGOCALL, STRUCTDEF, RETURN, and a sentinel ERROR node.
package ast

import (
	"github.com/akashmaji946/pseudo/lexer"
)

// Visitor implements the Visitor design pattern for traversing the AST.
// Each Visit method handles exactly one node variant; the evaluator is the
// production implementation, but the same interface supports alternate
// walks (a printer, a static checker) without touching node definitions.
type Visitor interface {
	VisitValue(node *ValueNode) interface{}
	VisitVarAccess(node *VarAccessNode) interface{}
	VisitVarAssign(node *VarAssignNode) interface{}
	VisitBinOp(node *BinOpNode) interface{}
	VisitUnaryOp(node *UnaryOpNode) interface{}
	VisitArray(node *ArrayNode) interface{}
	VisitArrAccess(node *ArrAccessNode) interface{}
	VisitArrAssign(node *ArrAssignNode) interface{}
	VisitMemAccess(node *MemAccessNode) interface{}
	VisitIf(node *IfNode) interface{}
	VisitFor(node *ForNode) interface{}
	VisitWhile(node *WhileNode) interface{}
	VisitRepeat(node *RepeatNode) interface{}
	VisitAlgoDef(node *AlgoDefNode) interface{}
	VisitAlgoCall(node *AlgoCallNode) interface{}
	VisitStructDef(node *StructDefNode) interface{}
	VisitReturn(node *ReturnNode) interface{}
	VisitError(node *ErrorNode) interface{}
}

// Node is the base interface every AST node satisfies.
type Node interface {
	Literal() string
	Accept(v Visitor) interface{}
	Pos() lexer.Token // the token the node is anchored on, for diagnostics
}

// ValueNode wraps a literal token (INT, FLOAT, STRING, BUILTIN_CONST).
type ValueNode struct {
	Token lexer.Token
}

func (n *ValueNode) Literal() string           { return n.Token.Literal }
func (n *ValueNode) Pos() lexer.Token          { return n.Token }
func (n *ValueNode) Accept(v Visitor) interface{} { return v.VisitValue(n) }

// VarAccessNode reads a named variable.
type VarAccessNode struct {
	Token lexer.Token // IDENTIFIER
}

func (n *VarAccessNode) Literal() string           { return n.Token.Literal }
func (n *VarAccessNode) Pos() lexer.Token          { return n.Token }
func (n *VarAccessNode) Accept(v Visitor) interface{} { return v.VisitVarAccess(n) }

// VarAssignNode binds the identifier in Token to the value of Expr in the
// current scope.
type VarAssignNode struct {
	Token lexer.Token // IDENTIFIER being assigned
	Expr  Node
}

func (n *VarAssignNode) Literal() string           { return n.Token.Literal + " <- " + n.Expr.Literal() }
func (n *VarAssignNode) Pos() lexer.Token          { return n.Token }
func (n *VarAssignNode) Accept(v Visitor) interface{} { return v.VisitVarAssign(n) }

// BinOpNode applies Op to Left and Right, evaluated left-to-right.
type BinOpNode struct {
	Left  Node
	Op    lexer.Token
	Right Node
}

func (n *BinOpNode) Literal() string { return n.Left.Literal() + " " + n.Op.Literal + " " + n.Right.Literal() }
func (n *BinOpNode) Pos() lexer.Token          { return n.Op }
func (n *BinOpNode) Accept(v Visitor) interface{} { return v.VisitBinOp(n) }

// UnaryOpNode applies Op to a single Operand ("-", "+", "not").
type UnaryOpNode struct {
	Op      lexer.Token
	Operand Node
}

func (n *UnaryOpNode) Literal() string           { return n.Op.Literal + n.Operand.Literal() }
func (n *UnaryOpNode) Pos() lexer.Token          { return n.Op }
func (n *UnaryOpNode) Accept(v Visitor) interface{} { return v.VisitUnaryOp(n) }

// ArrayNode is an ordered `{ expr, expr, ... }` literal.
type ArrayNode struct {
	Token    lexer.Token // the opening "{"
	Elements []Node
}

func (n *ArrayNode) Literal() string           { return "{...}" }
func (n *ArrayNode) Pos() lexer.Token          { return n.Token }
func (n *ArrayNode) Accept(v Visitor) interface{} { return v.VisitArray(n) }

// ArrAccessNode reads Target[Index] (1-indexed at the source level).
type ArrAccessNode struct {
	Token  lexer.Token // the "["
	Target Node
	Index  Node
}

func (n *ArrAccessNode) Literal() string           { return n.Target.Literal() + "[" + n.Index.Literal() + "]" }
func (n *ArrAccessNode) Pos() lexer.Token          { return n.Token }
func (n *ArrAccessNode) Accept(v Visitor) interface{} { return v.VisitArrAccess(n) }

// ArrAssignNode assigns Rhs through an lvalue chain (ARRACCESS or MEMACCESS).
type ArrAssignNode struct {
	Token  lexer.Token // the "<-"
	Lvalue Node
	Rhs    Node
}

func (n *ArrAssignNode) Literal() string           { return n.Lvalue.Literal() + " <- " + n.Rhs.Literal() }
func (n *ArrAssignNode) Pos() lexer.Token          { return n.Token }
func (n *ArrAssignNode) Accept(v Visitor) interface{} { return v.VisitArrAssign(n) }

// MemAccessNode reads Object.Member (field, or a bound-method reference).
type MemAccessNode struct {
	Token  lexer.Token // the member identifier
	Object Node
	Member string
}

func (n *MemAccessNode) Literal() string           { return n.Object.Literal() + "." + n.Member }
func (n *MemAccessNode) Pos() lexer.Token          { return n.Token }
func (n *MemAccessNode) Accept(v Visitor) interface{} { return v.VisitMemAccess(n) }

// IfNode: Cond selects Then or Else (Else may be nil for a bodyless if).
type IfNode struct {
	Token lexer.Token // "if"
	Cond  Node
	Then  []Node
	Else  []Node
}

func (n *IfNode) Literal() string           { return "if " + n.Cond.Literal() }
func (n *IfNode) Pos() lexer.Token          { return n.Token }
func (n *IfNode) Accept(v Visitor) interface{} { return v.VisitIf(n) }

// ForNode: `for VarAssign to End step Step do Body`. Step is nil when the
// source omits "step", which the evaluator defaults to INT 1.
type ForNode struct {
	Token     lexer.Token // "for"
	VarAssign *VarAssignNode
	End       Node
	Step      Node
	Body      []Node
}

func (n *ForNode) Literal() string           { return "for " + n.VarAssign.Literal() }
func (n *ForNode) Pos() lexer.Token          { return n.Token }
func (n *ForNode) Accept(v Visitor) interface{} { return v.VisitFor(n) }

// WhileNode: `while Cond do Body`.
type WhileNode struct {
	Token lexer.Token // "while"
	Cond  Node
	Body  []Node
}

func (n *WhileNode) Literal() string           { return "while " + n.Cond.Literal() }
func (n *WhileNode) Pos() lexer.Token          { return n.Token }
func (n *WhileNode) Accept(v Visitor) interface{} { return v.VisitWhile(n) }

// RepeatNode: `repeat Body until Cond` (Body always runs at least once).
type RepeatNode struct {
	Token lexer.Token // "repeat"
	Body  []Node
	Cond  Node
}

func (n *RepeatNode) Literal() string           { return "repeat ... until " + n.Cond.Literal() }
func (n *RepeatNode) Pos() lexer.Token          { return n.Token }
func (n *RepeatNode) Accept(v Visitor) interface{} { return v.VisitRepeat(n) }

// AlgoDefNode defines a first-class algorithm, or a struct method when Name
// is of the form "StructName::method" or was parsed from a Struct body.
type AlgoDefNode struct {
	Token  lexer.Token // "Algorithm"
	Name   string
	Params []string
	Body   []Node
}

func (n *AlgoDefNode) Literal() string           { return "Algorithm " + n.Name }
func (n *AlgoDefNode) Pos() lexer.Token          { return n.Token }
func (n *AlgoDefNode) Accept(v Visitor) interface{} { return v.VisitAlgoDef(n) }

// AlgoCallNode invokes Callee (commonly a VARACCESS or MEMACCESS) with Args.
type AlgoCallNode struct {
	Token  lexer.Token // "("
	Callee Node
	Args   []Node
}

func (n *AlgoCallNode) Literal() string           { return n.Callee.Literal() + "(...)" }
func (n *AlgoCallNode) Pos() lexer.Token          { return n.Token }
func (n *AlgoCallNode) Accept(v Visitor) interface{} { return v.VisitAlgoCall(n) }

// StructDefNode declares a named record type: Members are declared field
// names, Methods are AlgoDefNode bodies parsed within the Struct block.
type StructDefNode struct {
	Token   lexer.Token // "Struct"
	Name    string
	Members []string
	Methods []*AlgoDefNode
}

func (n *StructDefNode) Literal() string           { return "Struct " + n.Name }
func (n *StructDefNode) Pos() lexer.Token          { return n.Token }
func (n *StructDefNode) Accept(v Visitor) interface{} { return v.VisitStructDef(n) }

// ReturnNode carries an optional expression (nil when bare "return").
type ReturnNode struct {
	Token lexer.Token // "return"
	Expr  Node
}

func (n *ReturnNode) Literal() string {
	if n.Expr == nil {
		return "return"
	}
	return "return " + n.Expr.Literal()
}
func (n *ReturnNode) Pos() lexer.Token          { return n.Token }
func (n *ReturnNode) Accept(v Visitor) interface{} { return v.VisitReturn(n) }

// ErrorNode is a sentinel produced by the parser in place of a real node
// when parsing cannot continue; it carries a position and message.
type ErrorNode struct {
	Token   lexer.Token
	Message string
}

func (n *ErrorNode) Literal() string           { return n.Message }
func (n *ErrorNode) Pos() lexer.Token          { return n.Token }
func (n *ErrorNode) Accept(v Visitor) interface{} { return v.VisitError(n) }
