/*
File    : pseudo/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/pseudo/position"
)

// TokenType identifies the lexical category of a Token. Defined as a
// string so token kinds double as their own literal for single-character
// operators, matching the teacher's TokenType convention.
type TokenType string

const (
	// Special
	EOF_TYPE   TokenType = "EOF"
	ERROR_TYPE TokenType = "ERROR"
	NONE_TYPE  TokenType = "NONE"

	// Literals
	INT_TYPE        TokenType = "INT"
	FLOAT_TYPE      TokenType = "FLOAT"
	STRING_TYPE     TokenType = "STRING"
	IDENTIFIER_TYPE TokenType = "IDENTIFIER"
	KEYWORD_TYPE    TokenType = "KEYWORD"
	BUILTIN_ALGO    TokenType = "BUILTIN_ALGO"
	BUILTIN_CONST   TokenType = "BUILTIN_CONST"

	// Arithmetic operators
	ADD_TYPE TokenType = "+"
	SUB_TYPE TokenType = "-"
	MUL_TYPE TokenType = "*"
	DIV_TYPE TokenType = "/"
	MOD_TYPE TokenType = "%"
	POW_TYPE TokenType = "^"

	// Assignment / comparison
	ASSIGN_TYPE  TokenType = "<-"
	EQUAL_TYPE   TokenType = "="
	NEQ_TYPE     TokenType = "!="
	LESS_TYPE    TokenType = "<"
	GREATER_TYPE TokenType = ">"
	LEQ_TYPE     TokenType = "<="
	GEQ_TYPE     TokenType = ">="

	// Structural
	LEFT_PAREN     TokenType = "("
	RIGHT_PAREN    TokenType = ")"
	LEFT_BRACE     TokenType = "{"
	RIGHT_BRACE    TokenType = "}"
	LEFT_SQUARE    TokenType = "["
	RIGHT_SQUARE   TokenType = "]"
	COMMA_TYPE     TokenType = ","
	COLON_TYPE     TokenType = ":"
	SEMICOLON_TYPE TokenType = ";"
	DOT_TYPE       TokenType = "."
	SCOPE_RES      TokenType = "::"

	// Layout
	NEWLINE_TYPE TokenType = "NEWLINE"
	TAB_TYPE     TokenType = "TAB"
)

// KEYWORDS is the reserved-word set recognised by the lexer; identifiers
// matching one of these are reclassified to KEYWORD_TYPE.
var KEYWORDS = map[string]bool{
	"if": true, "then": true, "else": true,
	"for": true, "to": true, "step": true, "do": true,
	"while": true, "repeat": true, "until": true,
	"and": true, "or": true, "not": true,
	"self": true, "Algorithm": true, "Struct": true,
	"return": true, "continue": true, "break": true, "operator": true,
}

// BUILTIN_ALGO_NAMES is the set reclassified to BUILTIN_ALGO.
var BUILTIN_ALGO_NAMES = map[string]bool{
	"print": true, "read": true, "read_line": true, "open": true,
	"clear": true, "quit": true, "int": true, "float": true, "string": true,
}

// BUILTIN_CONST_NAMES is the set reclassified to BUILTIN_CONST, with
// their pre-defined numeric values.
var BUILTIN_CONST_NAMES = map[string]int64{
	"TRUE": 1, "FALSE": 0, "NONE": 0,
}

// Token is a single lexical unit: its kind, the raw source lexeme, and the
// starting position it was scanned from.
type Token struct {
	Type    TokenType
	Literal string
	Pos     position.Position
}

// NewToken builds a Token with the given kind, lexeme, and position.
func NewToken(tokType TokenType, literal string, pos position.Position) Token {
	return Token{Type: tokType, Literal: literal, Pos: pos}
}

// IsNumber reports whether the token is an INT or FLOAT literal.
func (t Token) IsNumber() bool {
	return t.Type == INT_TYPE || t.Type == FLOAT_TYPE
}

// String renders the token as "literal:type", for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Literal, t.Type)
}

// lookupIdent classifies a scanned identifier lexeme into KEYWORD_TYPE,
// BUILTIN_ALGO, BUILTIN_CONST, or plain IDENTIFIER_TYPE.
func lookupIdent(ident string) TokenType {
	if KEYWORDS[ident] {
		return KEYWORD_TYPE
	}
	if BUILTIN_ALGO_NAMES[ident] {
		return BUILTIN_ALGO
	}
	if _, ok := BUILTIN_CONST_NAMES[ident]; ok {
		return BUILTIN_CONST
	}
	return IDENTIFIER_TYPE
}
