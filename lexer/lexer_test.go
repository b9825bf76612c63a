/*
File    : pseudo/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/pseudo/position"
	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected (type, literal) pairs
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
// against arithmetic, structural, and number-literal tokens.
func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `123 + 2   31 - 12`,
			ExpectedTokens: []Token{
				NewToken(INT_TYPE, "123", position.Position{}),
				NewToken(ADD_TYPE, "+", position.Position{}),
				NewToken(INT_TYPE, "2", position.Position{}),
				NewToken(INT_TYPE, "31", position.Position{}),
				NewToken(SUB_TYPE, "-", position.Position{}),
				NewToken(INT_TYPE, "12", position.Position{}),
			},
		},
		{
			Input: `{ } + []  abc - a12`,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{", position.Position{}),
				NewToken(RIGHT_BRACE, "}", position.Position{}),
				NewToken(ADD_TYPE, "+", position.Position{}),
				NewToken(LEFT_SQUARE, "[", position.Position{}),
				NewToken(RIGHT_SQUARE, "]", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "abc", position.Position{}),
				NewToken(SUB_TYPE, "-", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "a12", position.Position{}),
			},
		},
		{
			Input: `<=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LEQ_TYPE, "<=", position.Position{}),
				NewToken(ADD_TYPE, "+", position.Position{}),
				NewToken(INT_TYPE, "2", position.Position{}),
				NewToken(LEFT_BRACE, "{", position.Position{}),
				NewToken(INT_TYPE, "31", position.Position{}),
				NewToken(RIGHT_BRACE, "}", position.Position{}),
				NewToken(SUB_TYPE, "-", position.Position{}),
				NewToken(INT_TYPE, "12", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "__a19bcd_aa90", position.Position{}),
			},
		},
		{
			Input: `3.14 5 5.`,
			ExpectedTokens: []Token{
				NewToken(FLOAT_TYPE, "3.14", position.Position{}),
				NewToken(INT_TYPE, "5", position.Position{}),
				NewToken(INT_TYPE, "5", position.Position{}),
				NewToken(DOT_TYPE, ".", position.Position{}),
			},
		},
	}
	runCasesIgnoringPosition(t, tests)
}

// TestNewLexer_Indentation verifies tab/newline tokens are emitted, since
// block structure depends on counting them.
func TestNewLexer_Indentation(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: "a\n\tb",
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TYPE, "a", position.Position{}),
				NewToken(NEWLINE_TYPE, "\n", position.Position{}),
				NewToken(TAB_TYPE, "\t", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "b", position.Position{}),
			},
		},
	}
	runCasesIgnoringPosition(t, tests)
}

// TestNewLexer_AssignAndComparisons covers the compound operators specific
// to this language: <- assignment, != neq, <= / >= comparisons.
func TestNewLexer_AssignAndComparisons(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `x <- 1`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TYPE, "x", position.Position{}),
				NewToken(ASSIGN_TYPE, "<-", position.Position{}),
				NewToken(INT_TYPE, "1", position.Position{}),
			},
		},
		{
			Input: `a != b <= c >= d = e`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_TYPE, "a", position.Position{}),
				NewToken(NEQ_TYPE, "!=", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "b", position.Position{}),
				NewToken(LEQ_TYPE, "<=", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "c", position.Position{}),
				NewToken(GEQ_TYPE, ">=", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "d", position.Position{}),
				NewToken(EQUAL_TYPE, "=", position.Position{}),
				NewToken(IDENTIFIER_TYPE, "e", position.Position{}),
			},
		},
	}
	runCasesIgnoringPosition(t, tests)
}

// TestNewLexer_Keywords checks every reserved word reclassifies to KEYWORD_TYPE.
func TestNewLexer_Keywords(t *testing.T) {
	src := "if then else for to step do while repeat until and or not self Algorithm Struct return continue break operator"
	tokens := NewLexer("test", src).ConsumeTokens()
	for _, tok := range tokens[:len(tokens)-1] {
		assert.Equal(t, KEYWORD_TYPE, tok.Type, "expected keyword for %q", tok.Literal)
	}
}

// TestNewLexer_BuiltinAlgosAndConsts checks the built-in algorithm and
// constant name sets reclassify correctly.
func TestNewLexer_BuiltinAlgosAndConsts(t *testing.T) {
	tokens := NewLexer("test", "print read read_line open clear quit int float string TRUE FALSE NONE").ConsumeTokens()
	for _, tok := range tokens[:9] {
		assert.Equal(t, BUILTIN_ALGO, tok.Type, "expected builtin algo for %q", tok.Literal)
	}
	for _, tok := range tokens[9:12] {
		assert.Equal(t, BUILTIN_CONST, tok.Type, "expected builtin const for %q", tok.Literal)
	}
}

// TestNewLexer_StringEscapes covers the escape set \n \t \\ \" \'.
func TestNewLexer_StringEscapes(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `"hello\nworld"`,
			ExpectedTokens: []Token{
				NewToken(STRING_TYPE, "hello\nworld", position.Position{}),
			},
		},
		{
			Input: `"tab\there"`,
			ExpectedTokens: []Token{
				NewToken(STRING_TYPE, "tab\there", position.Position{}),
			},
		},
		{
			Input: `"escaped\\backslash"`,
			ExpectedTokens: []Token{
				NewToken(STRING_TYPE, "escaped\\backslash", position.Position{}),
			},
		},
		{
			Input: `"escaped\"quote"`,
			ExpectedTokens: []Token{
				NewToken(STRING_TYPE, "escaped\"quote", position.Position{}),
			},
		},
	}
	runCasesIgnoringPosition(t, tests)
}

// TestNewLexer_UnterminatedString ensures an unterminated literal yields an error token.
func TestNewLexer_UnterminatedString(t *testing.T) {
	tokens := NewLexer("test", `"abc`).ConsumeTokens()
	assert.Equal(t, ERROR_TYPE, tokens[0].Type)
}

// TestNewLexer_InvalidEscape ensures an unsupported escape yields an error token.
func TestNewLexer_InvalidEscape(t *testing.T) {
	tokens := NewLexer("test", `"abc\qdef"`).ConsumeTokens()
	assert.Equal(t, ERROR_TYPE, tokens[0].Type)
}

// TestNewLexer_ScopeResolutionAndArrays covers "::" and array-literal braces.
func TestNewLexer_ScopeResolutionAndArrays(t *testing.T) {
	tokens := NewLexer("test", "List::push { 1, 2 }").ConsumeTokens()
	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		IDENTIFIER_TYPE, SCOPE_RES, IDENTIFIER_TYPE, LEFT_BRACE,
		INT_TYPE, COMMA_TYPE, INT_TYPE, RIGHT_BRACE, EOF_TYPE,
	}, types)
}

// TestNewLexer_Comment ensures "# ... \n" is skipped but the newline itself
// still surfaces as a token.
func TestNewLexer_Comment(t *testing.T) {
	tokens := NewLexer("test", "1 # this is ignored\n2").ConsumeTokens()
	assert.Equal(t, INT_TYPE, tokens[0].Type)
	assert.Equal(t, NEWLINE_TYPE, tokens[1].Type)
	assert.Equal(t, INT_TYPE, tokens[2].Type)
}

// TestNewLexer_IllegalCharacter ensures unsupported bytes yield an error token.
func TestNewLexer_IllegalCharacter(t *testing.T) {
	tokens := NewLexer("test", "@").ConsumeTokens()
	assert.Equal(t, ERROR_TYPE, tokens[0].Type)
}

// runCasesIgnoringPosition compares only Type and Literal, since expected
// tokens above are built with a zero Position for brevity.
func runCasesIgnoringPosition(t *testing.T, tests []TestConsumeToken) {
	for _, test := range tests {
		lex := NewLexer("test", test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens)+1, len(gotTokens))
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
		assert.Equal(t, EOF_TYPE, gotTokens[len(gotTokens)-1].Type)
	}
}
