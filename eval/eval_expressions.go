/*
File    : pseudo/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strconv"

	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/lexer"
	"github.com/akashmaji946/pseudo/objects"
)

// VisitValue boxes a literal token (INT, FLOAT, STRING, BUILTIN_CONST).
func (e *Evaluator) VisitValue(node *ast.ValueNode) interface{} {
	tok := node.Token
	switch tok.Type {
	case lexer.INT_TYPE:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return objects.NewError("malformed INT literal %q", tok.Literal)
		}
		return &objects.Int{Value: n}
	case lexer.FLOAT_TYPE:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return objects.NewError("malformed FLOAT literal %q", tok.Literal)
		}
		return &objects.Float{Value: f}
	case lexer.STRING_TYPE:
		return &objects.String{Value: tok.Literal}
	case lexer.BUILTIN_CONST:
		n, ok := lexer.BUILTIN_CONST_NAMES[tok.Literal]
		if !ok {
			return objects.NewError("unknown constant %q", tok.Literal)
		}
		return &objects.Int{Value: n}
	}
	return objects.NewError("unexpected literal token %s", tok.Type)
}

// VisitVarAccess resolves a VARACCESS against the current scope. A
// BUILTIN_ALGO token always yields a fresh descriptor rather than a scope
// lookup, since the lexer never reclassifies a built-in name back to a
// plain IDENTIFIER — nothing can ever shadow or rebind it.
func (e *Evaluator) VisitVarAccess(node *ast.VarAccessNode) interface{} {
	if node.Token.Type == lexer.BUILTIN_ALGO {
		return builtinDescriptor(node.Token.Literal)
	}
	v, ok := e.Scope.Get(node.Token.Literal)
	if !ok {
		return objects.NewError("name error: %q is not defined", node.Token.Literal)
	}
	return v
}

// VisitVarAssign evaluates Expr and defines-or-overwrites Name in the
// *current* scope only (assignment never walks to an outer scope).
func (e *Evaluator) VisitVarAssign(node *ast.VarAssignNode) interface{} {
	val := e.eval(node.Expr)
	if isErr(val) || objects.IsControlSignal(val) {
		return val
	}
	e.Scope.Set(node.Token.Literal, val)
	return val
}

// VisitBinOp evaluates both operands left-to-right (and/or are not
// short-circuiting), then dispatches to an `operator OP` overload on an
// INSTANCE left operand if one is defined, else the built-in value table.
func (e *Evaluator) VisitBinOp(node *ast.BinOpNode) interface{} {
	left := e.eval(node.Left)
	if isErr(left) || objects.IsControlSignal(left) {
		return left
	}
	right := e.eval(node.Right)
	if isErr(right) || objects.IsControlSignal(right) {
		return right
	}

	op := node.Op.Literal
	if inst, ok := left.(*objects.Instance); ok {
		if algo, ok := inst.Struct.GetMethod(objects.OperatorMethodName(op)); ok {
			return e.callBoundMethod(inst, algo, []objects.Value{right})
		}
	}
	return objects.BinOp(op, left, right)
}

// VisitUnaryOp evaluates Operand then applies Op ("-", "+", "not").
func (e *Evaluator) VisitUnaryOp(node *ast.UnaryOpNode) interface{} {
	operand := e.eval(node.Operand)
	if isErr(operand) || objects.IsControlSignal(operand) {
		return operand
	}
	return objects.UnaryOp(node.Op.Literal, operand)
}

// VisitArray evaluates each element in order, short-circuiting on the
// first ERROR or ControlSignal.
func (e *Evaluator) VisitArray(node *ast.ArrayNode) interface{} {
	elems := make([]objects.Value, 0, len(node.Elements))
	for _, el := range node.Elements {
		v := e.eval(el)
		if isErr(v) || objects.IsControlSignal(v) {
			return v
		}
		elems = append(elems, v)
	}
	return &objects.Array{Elements: elems}
}

// VisitArrAccess evaluates Target[Index] (1-indexed); ERROR if Target is
// not an ARRAY, Index doesn't coerce to an integer, or the index is out of
// range.
func (e *Evaluator) VisitArrAccess(node *ast.ArrAccessNode) interface{} {
	target := e.eval(node.Target)
	if isErr(target) || objects.IsControlSignal(target) {
		return target
	}
	idx := e.eval(node.Index)
	if isErr(idx) || objects.IsControlSignal(idx) {
		return idx
	}
	arr, ok := target.(*objects.Array)
	if !ok {
		return objects.NewError("type error: cannot index %s", target.GetType())
	}
	i, ok := objects.AsInt64(idx)
	if !ok {
		return objects.NewError("type error: array index must be numeric")
	}
	return arr.Get(i)
}

// VisitArrAssign assigns through an lvalue chain: a MEMACCESS on an
// INSTANCE sets a member, an ARRACCESS sets an element.
func (e *Evaluator) VisitArrAssign(node *ast.ArrAssignNode) interface{} {
	switch lv := node.Lvalue.(type) {
	case *ast.MemAccessNode:
		obj := e.eval(lv.Object)
		if isErr(obj) || objects.IsControlSignal(obj) {
			return obj
		}
		inst, ok := obj.(*objects.Instance)
		if !ok {
			return objects.NewError("type error: cannot assign member %q on %s", lv.Member, obj.GetType())
		}
		rhs := e.eval(node.Rhs)
		if isErr(rhs) || objects.IsControlSignal(rhs) {
			return rhs
		}
		inst.SetMember(lv.Member, rhs)
		return rhs

	case *ast.ArrAccessNode:
		target := e.eval(lv.Target)
		if isErr(target) || objects.IsControlSignal(target) {
			return target
		}
		arr, ok := target.(*objects.Array)
		if !ok {
			return objects.NewError("type error: cannot index %s", target.GetType())
		}
		idxVal := e.eval(lv.Index)
		if isErr(idxVal) || objects.IsControlSignal(idxVal) {
			return idxVal
		}
		i, ok := objects.AsInt64(idxVal)
		if !ok {
			return objects.NewError("type error: array index must be numeric")
		}
		rhs := e.eval(node.Rhs)
		if isErr(rhs) || objects.IsControlSignal(rhs) {
			return rhs
		}
		return arr.Set(i, rhs)

	default:
		return objects.NewError("invalid assignment target")
	}
}

// VisitMemAccess reads Object.Member: an INSTANCE field, an INSTANCE method
// (producing a BOUND_METHOD), or an ARRAY method (likewise).
func (e *Evaluator) VisitMemAccess(node *ast.MemAccessNode) interface{} {
	obj := e.eval(node.Object)
	if isErr(obj) || objects.IsControlSignal(obj) {
		return obj
	}
	switch v := obj.(type) {
	case *objects.Instance:
		if val, ok := v.GetMember(node.Member); ok {
			return val
		}
		if _, ok := v.Struct.GetMethod(node.Member); ok {
			return &objects.BoundMethod{Receiver: v, Method: node.Member}
		}
		return objects.NewError("name error: %s has no member %q", v.Struct.Name, node.Member)
	case *objects.Array:
		if objects.IsArrayMethod(node.Member) {
			return &objects.BoundMethod{Receiver: v, Method: node.Member}
		}
		return objects.NewError("type error: array has no method %q", node.Member)
	default:
		return objects.NewError("type error: cannot access member %q on %s", node.Member, obj.GetType())
	}
}
