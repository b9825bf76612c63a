/*
File    : pseudo/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the lexically chained symbol table: a mapping
// from identifier to Value with an optional parent link.
package scope

import "github.com/akashmaji946/pseudo/objects"

// Scope is a name-to-value mapping with an optional parent, forming the
// lexical chain an ALGO closure captures a reference into.
type Scope struct {
	Variables map[string]objects.Value
	Parent    *Scope
}

// NewScope creates a scope whose parent is the given scope (nil for root).
func NewScope(parent *Scope) *Scope {
	return &Scope{Variables: make(map[string]objects.Value), Parent: parent}
}

// Get searches this scope, then each parent in turn, for name.
func (s *Scope) Get(name string) (objects.Value, bool) {
	if v, ok := s.Variables[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	return nil, false
}

// Set writes name unconditionally into this scope. VARASSIGN never walks
// to an outer scope: it defines or overwrites in the current one only.
func (s *Scope) Set(name string, value objects.Value) {
	s.Variables[name] = value
}

// Erase removes name from this scope only.
func (s *Scope) Erase(name string) {
	delete(s.Variables, name)
}
