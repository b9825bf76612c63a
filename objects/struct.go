/*
File    : pseudo/objects/struct.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"strings"

	"github.com/akashmaji946/pseudo/ast"
)

// Environment is the minimal symbol-table contract an ALGO closure and a
// BOUND_METHOD call need from the scope package, kept here (rather than
// importing scope directly) to avoid an import cycle: scope already depends
// on objects for its Variables map's value type.
type Environment interface {
	Get(name string) (Value, bool)
	Set(name string, value Value)
}

// Algo is a first-class algorithm: its defining AST node plus the lexical
// scope it closes over.
type Algo struct {
	Name    string
	Def     *ast.AlgoDefNode
	Closure Environment
}

func (a *Algo) GetType() ValueType { return AlgoType }
func (a *Algo) ToString() string   { return "<Algorithm " + a.Name + ">" }

// BuiltinAlgo names one of the fixed built-ins (print, read, read_line,
// open, clear, quit, int, float, string). These are not stored in any
// scope; the evaluator builds a descriptor each time one is named.
type BuiltinAlgo struct {
	Name  string
	Arity int
}

func (b *BuiltinAlgo) GetType() ValueType { return BuiltinAlgoType }
func (b *BuiltinAlgo) ToString() string   { return "<built-in " + b.Name + ">" }

// StructDef is a user-defined record type: its declared member names, in
// declaration order, plus a name-to-ALGO method table.
type StructDef struct {
	Name    string
	Members []string
	Methods map[string]*Algo
}

func (s *StructDef) GetType() ValueType { return StructDefType }
func (s *StructDef) ToString() string   { return "<Struct " + s.Name + ">" }

// GetMethod looks up a method by name; ok is false if undefined.
func (s *StructDef) GetMethod(name string) (*Algo, bool) {
	m, ok := s.Methods[name]
	return m, ok
}

// Instance is a reference to its StructDef plus a per-instance member map.
// Every declared member is present at construction time, set to NONE.
// Per the language's permissive member-assignment policy, SetMember also
// accepts names the struct never declared (dynamic member addition).
type Instance struct {
	Struct  *StructDef
	Members map[string]Value
}

// NewInstance builds an instance with every declared member set to NONE.
func NewInstance(def *StructDef) *Instance {
	inst := &Instance{Struct: def, Members: make(map[string]Value, len(def.Members))}
	for _, m := range def.Members {
		inst.Members[m] = NONE
	}
	return inst
}

func (i *Instance) GetType() ValueType { return InstanceType }
func (i *Instance) ToString() string   { return "<instance of " + i.Struct.Name + ">" }

// GetMember returns a declared or dynamically-added member's value.
func (i *Instance) GetMember(name string) (Value, bool) {
	v, ok := i.Members[name]
	return v, ok
}

// SetMember always writes, permitting dynamic member addition: the struct's
// declared member list sets which members start as NONE, not what an
// instance may hold.
func (i *Instance) SetMember(name string, value Value) {
	i.Members[name] = value
}

// BoundMethod pairs a receiver (ARRAY or INSTANCE) with a method name,
// produced by MEMACCESS and resolved against the receiver at call time.
type BoundMethod struct {
	Receiver Value
	Method   string
}

func (b *BoundMethod) GetType() ValueType { return BoundMethodType }
func (b *BoundMethod) ToString() string   { return "<bound method " + b.Method + ">" }

// arrayMethodSet names the built-in methods dispatchable on an ARRAY
// receiver, used by MEMACCESS to decide whether a name resolves to a
// BOUND_METHOD instead of an ERROR.
var arrayMethodSet = map[string]bool{
	"push": true, "push_back": true,
	"pop": true, "pop_back": true,
	"size": true, "back": true, "resize": true,
}

// IsArrayMethod reports whether name is one of the array's built-in methods.
func IsArrayMethod(name string) bool { return arrayMethodSet[name] }

// CallArrayMethod dispatches a BOUND_METHOD call on an ARRAY receiver.
func CallArrayMethod(arr *Array, method string, args []Value) Value {
	switch method {
	case "push", "push_back":
		if len(args) != 1 {
			return NewError("%s: expected 1 argument, got %d", method, len(args))
		}
		arr.Elements = append(arr.Elements, args[0])
		return args[0]
	case "pop", "pop_back":
		if len(args) != 0 {
			return NewError("%s: expected 0 arguments, got %d", method, len(args))
		}
		if len(arr.Elements) == 0 {
			return NewError("%s: array is empty", method)
		}
		last := arr.Elements[len(arr.Elements)-1]
		arr.Elements = arr.Elements[:len(arr.Elements)-1]
		return last
	case "size":
		if len(args) != 0 {
			return NewError("size: expected 0 arguments, got %d", len(args))
		}
		return &Int{Value: int64(len(arr.Elements))}
	case "back":
		if len(args) != 0 {
			return NewError("back: expected 0 arguments, got %d", len(args))
		}
		if len(arr.Elements) == 0 {
			return NewError("back: array is empty")
		}
		return arr.Elements[len(arr.Elements)-1]
	case "resize":
		if len(args) != 1 {
			return NewError("resize: expected 1 argument, got %d", len(args))
		}
		n, ok := args[0].(*Int)
		if !ok || n.Value < 0 {
			return NewError("resize: argument must be a non-negative INT")
		}
		switch {
		case int(n.Value) < len(arr.Elements):
			arr.Elements = arr.Elements[:n.Value]
		case int(n.Value) > len(arr.Elements):
			for int64(len(arr.Elements)) < n.Value {
				arr.Elements = append(arr.Elements, NONE)
			}
		}
		return arr
	}
	return NewError("unknown array method %q", method)
}

// OperatorMethodName is the method-table key an `operator OP` definition
// installs into a struct, and the key eval's BINOP dispatch checks for
// before falling back to the built-in operator table.
func OperatorMethodName(op string) string {
	return "operator " + op
}

// IsOperatorMethodName reports whether name is an operator-overload entry.
func IsOperatorMethodName(name string) bool {
	return strings.HasPrefix(name, "operator ")
}
