/*
File    : pseudo/eval/eval_control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/objects"
)

// VisitIf evaluates Cond; a numeric-truthy value selects Then, else Else
// (or INT 0 when there is no Else branch).
func (e *Evaluator) VisitIf(node *ast.IfNode) interface{} {
	cond := e.eval(node.Cond)
	if isErr(cond) || objects.IsControlSignal(cond) {
		return cond
	}
	if objects.Truthy(cond) {
		return e.evalBlock(node.Then)
	}
	if len(node.Else) > 0 {
		return e.evalBlock(node.Else)
	}
	return &objects.Int{Value: 0}
}

// VisitFor binds the loop variable in the current scope, then iterates
// while `i <= end` (step > 0) or `i >= end` (step < 0), accumulating each
// iteration's body value into an ARRAY. Step 0 is a domain error.
func (e *Evaluator) VisitFor(node *ast.ForNode) interface{} {
	start := e.eval(node.VarAssign.Expr)
	if isErr(start) || objects.IsControlSignal(start) {
		return start
	}
	varName := node.VarAssign.Token.Literal
	e.Scope.Set(varName, start)

	end := e.eval(node.End)
	if isErr(end) || objects.IsControlSignal(end) {
		return end
	}

	var step objects.Value = &objects.Int{Value: 1}
	if node.Step != nil {
		step = e.eval(node.Step)
		if isErr(step) || objects.IsControlSignal(step) {
			return step
		}
	}
	stepF, ok := objects.AsFloat64(step)
	if !ok {
		return objects.NewError("type error: for-loop step must be numeric")
	}
	if stepF == 0 {
		return objects.NewError("Infinite for loop")
	}

	var results []objects.Value
	for {
		cur, _ := e.Scope.Get(varName)
		var cmp objects.Value
		if stepF > 0 {
			cmp = objects.BinOp("<=", cur, end)
		} else {
			cmp = objects.BinOp(">=", cur, end)
		}
		if isErr(cmp) {
			return cmp
		}
		if !objects.Truthy(cmp) {
			break
		}

		bodyVal := e.evalBlock(node.Body)
		if isErr(bodyVal) || objects.IsControlSignal(bodyVal) {
			return bodyVal
		}
		results = append(results, bodyVal)

		cur, _ = e.Scope.Get(varName)
		next := objects.BinOp("+", cur, step)
		if isErr(next) {
			return next
		}
		e.Scope.Set(varName, next)
	}
	return &objects.Array{Elements: results}
}

// VisitWhile evaluates Cond before each iteration, running Body while it is
// numerically truthy, accumulating each iteration's value into an ARRAY.
func (e *Evaluator) VisitWhile(node *ast.WhileNode) interface{} {
	var results []objects.Value
	for {
		cond := e.eval(node.Cond)
		if isErr(cond) || objects.IsControlSignal(cond) {
			return cond
		}
		if !objects.Truthy(cond) {
			break
		}
		bodyVal := e.evalBlock(node.Body)
		if isErr(bodyVal) || objects.IsControlSignal(bodyVal) {
			return bodyVal
		}
		results = append(results, bodyVal)
	}
	return &objects.Array{Elements: results}
}

// VisitRepeat always runs Body once before checking Cond, stopping once
// Cond becomes numerically truthy, accumulating each iteration's value.
func (e *Evaluator) VisitRepeat(node *ast.RepeatNode) interface{} {
	var results []objects.Value
	for {
		bodyVal := e.evalBlock(node.Body)
		if isErr(bodyVal) || objects.IsControlSignal(bodyVal) {
			return bodyVal
		}
		results = append(results, bodyVal)

		cond := e.eval(node.Cond)
		if isErr(cond) || objects.IsControlSignal(cond) {
			return cond
		}
		if objects.Truthy(cond) {
			break
		}
	}
	return &objects.Array{Elements: results}
}
