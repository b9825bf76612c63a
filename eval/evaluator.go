/*
File    : pseudo/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator: an ast.Visitor that
// turns a parsed program into Values against a lexically chained scope.
// The evaluator holds its current scope as a field rather than threading it
// through every Visit call, since ast.Visitor's methods take only the node
// (see ast.Node.Accept) — nested evaluation (call frames, block bodies)
// saves and restores Scope around the inner walk.
package eval

import (
	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/hostio"
	"github.com/akashmaji946/pseudo/objects"
	"github.com/akashmaji946/pseudo/scope"
)

// Evaluator walks an AST against a chain of scopes, calling into IO for the
// console built-ins (print/read/read_line/clear/quit).
type Evaluator struct {
	Root  *scope.Scope // the program's root scope; BOUND_METHOD calls parent here
	Scope *scope.Scope // the scope currently being evaluated against
	IO    hostio.HostIO
}

// NewEvaluator builds an Evaluator with a fresh root scope bound to io.
func NewEvaluator(io hostio.HostIO) *Evaluator {
	root := scope.NewScope(nil)
	return &Evaluator{Root: root, Scope: root, IO: io}
}

// Eval runs a parsed program (a list of top-level statements) against the
// evaluator's root scope and returns the value of its last statement,
// unwrapping a top-level `return` to its plain value.
func (e *Evaluator) Eval(nodes []ast.Node) objects.Value {
	e.Scope = e.Root
	return objects.Unwrap(e.evalBlock(nodes))
}

// eval walks a single node through the Visitor interface and asserts the
// result back to a Value (every Visit method returns one).
func (e *Evaluator) eval(node ast.Node) objects.Value {
	if node == nil {
		return objects.NONE
	}
	return node.Accept(e).(objects.Value)
}

// evalBlock evaluates a statement list in order, short-circuiting on the
// first ERROR or in-flight ControlSignal exactly like an ERROR (per the
// RETURN redesign), and otherwise returning the value of the last statement.
func (e *Evaluator) evalBlock(stmts []ast.Node) objects.Value {
	var last objects.Value = objects.NONE
	for _, s := range stmts {
		last = e.eval(s)
		if isErr(last) || objects.IsControlSignal(last) {
			return last
		}
	}
	return last
}

func isErr(v objects.Value) bool {
	_, ok := v.(*objects.Error)
	return ok
}
