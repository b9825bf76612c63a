/*
File    : pseudo/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/pseudo/objects"
)

// builtinArity gives each built-in's fixed parameter count, or
// -1 for one that accepts any count (only `open`, whose result is a fixed
// ERROR regardless of its arguments).
var builtinArity = map[string]int{
	"print":     1,
	"read":      0,
	"read_line": 0,
	"clear":     0,
	"quit":      0,
	"int":       1,
	"float":     1,
	"string":    1,
	"open":      -1,
}

// builtinDescriptor builds the fixed-arity BUILTIN_ALGO value for name.
func builtinDescriptor(name string) *objects.BuiltinAlgo {
	arity, ok := builtinArity[name]
	if !ok {
		arity = -1
	}
	return &objects.BuiltinAlgo{Name: name, Arity: arity}
}

// callBuiltin dispatches a BUILTIN_ALGO call to its console-I/O or
// conversion semantics.
func (e *Evaluator) callBuiltin(b *objects.BuiltinAlgo, args []objects.Value) objects.Value {
	if b.Arity >= 0 && len(args) != b.Arity {
		return objects.NewError("%s: expected %d argument(s), got %d", b.Name, b.Arity, len(args))
	}

	switch b.Name {
	case "print":
		e.IO.PrintLine(stringify(args[0]))
		return objects.NONE

	case "read":
		tok, err := e.IO.ReadToken()
		if err != nil {
			return objects.NewError("read: %v", err)
		}
		return &objects.String{Value: tok}

	case "read_line":
		line, err := e.IO.ReadLine()
		if err != nil {
			return objects.NewError("read_line: %v", err)
		}
		return &objects.String{Value: line}

	case "clear":
		e.IO.ClearScreen()
		return objects.NONE

	case "quit":
		e.IO.Terminate(0)
		return objects.NONE

	case "int":
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("int: expected a STRING argument")
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64)
		if err != nil {
			return objects.NewError("int: cannot parse %q as INT", s.Value)
		}
		return &objects.Int{Value: n}

	case "float":
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("float: expected a STRING argument")
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
		if err != nil {
			return objects.NewError("float: cannot parse %q as FLOAT", s.Value)
		}
		return &objects.Float{Value: f}

	case "string":
		return &objects.String{Value: stringify(args[0])}

	case "open":
		// original_source hard-codes this to a fixed error regardless of
		// arguments; the language's closed Value set has no FILE variant
		// to hand back a real handle through.
		return objects.NewError("open: not available")
	}

	return objects.NewError("unknown built-in %q", b.Name)
}

// stringify renders a Value the way `print`/`string` do: a STRING's raw
// bytes (no escaping), everything else via ToString.
func stringify(v objects.Value) string {
	if s, ok := v.(*objects.String); ok {
		return s.Value
	}
	return v.ToString()
}
