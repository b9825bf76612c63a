/*
File    : pseudo/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the runtime Value variants of the pseudocode
// language: INT, FLOAT, STRING, ARRAY, NONE, ERROR, ALGO, BUILTIN_ALGO,
// STRUCT_DEF, INSTANCE, BOUND_METHOD. All types implement the Value
// interface, which allows type checking and string rendering. The operator
// table over INT/FLOAT/STRING per the language's promotion rules lives in
// operators.go.
package objects

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/pseudo/lexer"
)

// ValueType names a runtime Value's variant.
type ValueType string

const (
	IntType          ValueType = "int"
	FloatType        ValueType = "float"
	StringType       ValueType = "string"
	ArrayType        ValueType = "array"
	NoneType         ValueType = "none"
	ErrorType        ValueType = "error"
	AlgoType         ValueType = "algo"
	BuiltinAlgoType  ValueType = "builtin_algo"
	StructDefType    ValueType = "struct_def"
	InstanceType     ValueType = "instance"
	BoundMethodType  ValueType = "bound_method"
)

// Value is the interface every runtime value implements.
type Value interface {
	GetType() ValueType
	ToString() string
}

// Int is a 64-bit signed integer value.
type Int struct {
	Value int64
}

func (i *Int) GetType() ValueType { return IntType }
func (i *Int) ToString() string   { return strconv.FormatInt(i.Value, 10) }

// Float is a double-precision floating point value.
type Float struct {
	Value float64
}

func (f *Float) GetType() ValueType { return FloatType }
func (f *Float) ToString() string   { return strconv.FormatFloat(f.Value, 'f', -1, 64) }

// String is a byte-sequence value; escape rendering mirrors the lexer's
// accepted escape set so printed strings round-trip through the lexer.
type String struct {
	Value string
}

func (s *String) GetType() ValueType { return StringType }
func (s *String) ToString() string   { return s.Value }

// Repr renders the string with escapes re-applied, for diagnostic/nested
// display contexts (e.g. an array of strings).
func (s *String) Repr() string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s.Value); i++ {
		c := s.Value[i]
		if e, ok := lexer.ReverseEscape(c); ok && (c == '\n' || c == '\t' || c == '\\' || c == '"') {
			b.WriteByte('\\')
			b.WriteByte(e)
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// None is the unit-like absence value; there is exactly one logical NONE.
type None struct{}

func (n *None) GetType() ValueType { return NoneType }
func (n *None) ToString() string   { return "NONE" }

// NONE is the shared absence value; since None carries no state, callers may
// share this instance freely instead of allocating a new one each time.
var NONE = &None{}

// Error carries a message and propagates eagerly through any operator or
// statement that receives it as an operand.
type Error struct {
	Message string
}

func (e *Error) GetType() ValueType { return ErrorType }
func (e *Error) ToString() string   { return e.Message }

// NewError is a convenience constructor mirroring fmt.Errorf's call shape.
func NewError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Array is an ordered, shared-by-reference sequence of Values. User-facing
// indices are 1-based; Elements is stored 0-based internally.
type Array struct {
	Elements []Value
}

func (a *Array) GetType() ValueType { return ArrayType }

func (a *Array) ToString() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		if s, ok := el.(*String); ok {
			parts[i] = s.Repr()
		} else {
			parts[i] = el.ToString()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the 1-indexed element at idx, or an ERROR if out of range.
func (a *Array) Get(idx int64) Value {
	if idx < 1 || int(idx) > len(a.Elements) {
		return NewError("index %d out of range (size %d)", idx, len(a.Elements))
	}
	return a.Elements[idx-1]
}

// Set writes the 1-indexed element at idx, or returns an ERROR if out of range.
func (a *Array) Set(idx int64, v Value) Value {
	if idx < 1 || int(idx) > len(a.Elements) {
		return NewError("index %d out of range (size %d)", idx, len(a.Elements))
	}
	a.Elements[idx-1] = v
	return v
}

// Truthy reports whether a Value is numeric-nonzero per the language's
// truthy convention (a non-numeric value is never truthy).
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Int:
		return val.Value != 0
	case *Float:
		return val.Value != 0
	}
	return false
}

// AsFloat64 extracts a numeric Value's float64 representation; ok is false
// for non-numeric values.
func AsFloat64(v Value) (float64, bool) {
	switch val := v.(type) {
	case *Int:
		return float64(val.Value), true
	case *Float:
		return val.Value, true
	}
	return 0, false
}

// AsInt64 extracts a numeric Value's int64 representation (truncating a
// FLOAT); ok is false for non-numeric values.
func AsInt64(v Value) (int64, bool) {
	switch val := v.(type) {
	case *Int:
		return val.Value, true
	case *Float:
		return int64(val.Value), true
	}
	return 0, false
}
