/*
File    : pseudo/eval/eval_algos.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/pseudo/ast"
	"github.com/akashmaji946/pseudo/objects"
	"github.com/akashmaji946/pseudo/scope"
)

// VisitAlgoDef builds an ALGO value closing over the current scope. A name
// of the form "Struct::method" installs it into that struct's method table
// instead of binding it as a variable (ERROR if the struct isn't defined
// yet); a bare name binds normally in the current scope.
func (e *Evaluator) VisitAlgoDef(node *ast.AlgoDefNode) interface{} {
	if structName, methodName, ok := strings.Cut(node.Name, "::"); ok {
		v, found := e.Scope.Get(structName)
		if !found {
			return objects.NewError("name error: struct %q is not defined", structName)
		}
		def, ok := v.(*objects.StructDef)
		if !ok {
			return objects.NewError("type error: %q is not a struct", structName)
		}
		algo := &objects.Algo{Name: methodName, Def: node, Closure: e.Scope}
		def.Methods[methodName] = algo
		return algo
	}

	algo := &objects.Algo{Name: node.Name, Def: node, Closure: e.Scope}
	e.Scope.Set(node.Name, algo)
	return algo
}

// VisitStructDef declares a STRUCT_DEF: its members in source order, plus
// an ALGO built from every Algorithm parsed directly within its body. A
// method written in the "Algorithm Struct method(...)" form is installed
// under its method name alone.
func (e *Evaluator) VisitStructDef(node *ast.StructDefNode) interface{} {
	def := &objects.StructDef{
		Name:    node.Name,
		Members: node.Members,
		Methods: make(map[string]*objects.Algo, len(node.Methods)),
	}
	for _, m := range node.Methods {
		name := m.Name
		if _, method, ok := strings.Cut(name, "::"); ok {
			name = method
		}
		def.Methods[name] = &objects.Algo{Name: name, Def: m, Closure: e.Scope}
	}
	e.Scope.Set(node.Name, def)
	return def
}

// VisitAlgoCall evaluates the callee and arguments (caller's scope,
// left-to-right), then dispatches on the callee's runtime kind.
func (e *Evaluator) VisitAlgoCall(node *ast.AlgoCallNode) interface{} {
	callee := e.eval(node.Callee)
	if isErr(callee) || objects.IsControlSignal(callee) {
		return callee
	}

	args := make([]objects.Value, 0, len(node.Args))
	for _, a := range node.Args {
		v := e.eval(a)
		if isErr(v) || objects.IsControlSignal(v) {
			return v
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *objects.Algo:
		return e.callAlgo(fn, args)
	case *objects.BuiltinAlgo:
		return e.callBuiltin(fn, args)
	case *objects.StructDef:
		return e.construct(fn, args)
	case *objects.BoundMethod:
		return e.callBound(fn, args)
	default:
		return objects.NewError("type error: %s is not callable", callee.GetType())
	}
}

// VisitReturn evaluates an optional expression (NONE when bare `return`)
// and wraps it in a ControlSignal that unwinds the nearest ALGO/method call.
func (e *Evaluator) VisitReturn(node *ast.ReturnNode) interface{} {
	var val objects.Value = objects.NONE
	if node.Expr != nil {
		val = e.eval(node.Expr)
		if isErr(val) {
			return val
		}
		if objects.IsControlSignal(val) {
			return val
		}
	}
	return &objects.ControlSignal{Value: val}
}

// VisitError turns a parser ErrorNode into a runtime ERROR.
func (e *Evaluator) VisitError(node *ast.ErrorNode) interface{} {
	return objects.NewError("%s", node.Message)
}

// callAlgo invokes a first-class ALGO: a new scope parented at the
// algorithm's *closure* (lexical capture), one binding per declared
// parameter, arity checked exactly.
func (e *Evaluator) callAlgo(algo *objects.Algo, args []objects.Value) objects.Value {
	params := algo.Def.Params
	if len(args) < len(params) {
		return objects.NewError("Too few arguments: %s expects %d, got %d", algo.Name, len(params), len(args))
	}
	if len(args) > len(params) {
		return objects.NewError("Too many arguments: %s expects %d, got %d", algo.Name, len(params), len(args))
	}

	parent, ok := algo.Closure.(*scope.Scope)
	if !ok {
		return objects.NewError("internal error: algorithm %q lost its closure scope", algo.Name)
	}
	callScope := scope.NewScope(parent)
	for i, p := range params {
		callScope.Set(p, args[i])
	}

	saved := e.Scope
	e.Scope = callScope
	result := e.evalBlock(algo.Def.Body)
	e.Scope = saved

	return objects.Unwrap(result)
}

// callBoundMethod invokes a struct method with `self` bound to inst: a new
// scope parented at the evaluator's *root* (not the defining closure), per
// the method-dispatch model's self-injection rule.
func (e *Evaluator) callBoundMethod(inst *objects.Instance, algo *objects.Algo, args []objects.Value) objects.Value {
	params := algo.Def.Params
	if len(args) < len(params) {
		return objects.NewError("Too few arguments: %s expects %d, got %d", algo.Name, len(params), len(args))
	}
	if len(args) > len(params) {
		return objects.NewError("Too many arguments: %s expects %d, got %d", algo.Name, len(params), len(args))
	}

	methodScope := scope.NewScope(e.Root)
	methodScope.Set("self", inst)
	for i, p := range params {
		methodScope.Set(p, args[i])
	}

	saved := e.Scope
	e.Scope = methodScope
	result := e.evalBlock(algo.Def.Body)
	e.Scope = saved

	return objects.Unwrap(result)
}

// callBound dispatches a BOUND_METHOD call against its receiver kind.
func (e *Evaluator) callBound(bm *objects.BoundMethod, args []objects.Value) objects.Value {
	switch recv := bm.Receiver.(type) {
	case *objects.Array:
		return objects.CallArrayMethod(recv, bm.Method, args)
	case *objects.Instance:
		algo, ok := recv.Struct.GetMethod(bm.Method)
		if !ok {
			return objects.NewError("name error: %s has no method %q", recv.Struct.Name, bm.Method)
		}
		return e.callBoundMethod(recv, algo, args)
	default:
		return objects.NewError("type error: cannot call a method on %s", bm.Receiver.GetType())
	}
}

// construct builds a new INSTANCE of def: declared members start NONE, then
// a `constructor` method (if any) runs as a bound method; on a non-ERROR
// result the instance itself (not the constructor's return value) is
// returned.
func (e *Evaluator) construct(def *objects.StructDef, args []objects.Value) objects.Value {
	inst := objects.NewInstance(def)
	if ctor, ok := def.GetMethod("constructor"); ok {
		result := e.callBoundMethod(inst, ctor, args)
		if isErr(result) {
			return result
		}
	}
	return inst
}
