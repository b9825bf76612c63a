/*
File    : pseudo/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"
	"testing"

	"github.com/akashmaji946/pseudo/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) []ast.Node {
	t.Helper()
	p := NewParser("test", src)
	nodes := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return nodes
}

func TestArithmeticPrecedence(t *testing.T) {
	nodes := parseOK(t, "1 + 2 * 3\n")
	require.Len(t, nodes, 1)
	bin, ok := nodes[0].(*ast.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Literal)
	_, leftIsValue := bin.Left.(*ast.ValueNode)
	assert.True(t, leftIsValue)
	rightBin, ok := bin.Right.(*ast.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, "*", rightBin.Op.Literal)
}

func TestVarAssignAndAccess(t *testing.T) {
	nodes := parseOK(t, "x <- 5\nprint(x)\n")
	require.Len(t, nodes, 2)
	assign, ok := nodes[0].(*ast.VarAssignNode)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Token.Literal)
}

func TestIfThenElse(t *testing.T) {
	nodes := parseOK(t, "if x > 0 then\n\tprint(1)\nelse\n\tprint(2)\n")
	require.Len(t, nodes, 1)
	ifNode, ok := nodes[0].(*ast.IfNode)
	require.True(t, ok)
	assert.Len(t, ifNode.Then, 1)
	assert.Len(t, ifNode.Else, 1)
}

func TestForLoopWithStep(t *testing.T) {
	nodes := parseOK(t, "for i <- 1 to 10 step 2 do\n\tprint(i)\n")
	require.Len(t, nodes, 1)
	forNode, ok := nodes[0].(*ast.ForNode)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.VarAssign.Token.Literal)
	require.NotNil(t, forNode.Step)
}

func TestForLoopWithoutStep(t *testing.T) {
	nodes := parseOK(t, "for i <- 1 to 10 do\n\tprint(i)\n")
	forNode, ok := nodes[0].(*ast.ForNode)
	require.True(t, ok)
	assert.Nil(t, forNode.Step)
}

func TestWhileLoop(t *testing.T) {
	nodes := parseOK(t, "while x < 10 do\n\tx <- x + 1\n")
	_, ok := nodes[0].(*ast.WhileNode)
	assert.True(t, ok)
}

func TestRepeatUntil(t *testing.T) {
	nodes := parseOK(t, "repeat\n\tx <- x + 1\nuntil x >= 10\n")
	repeatNode, ok := nodes[0].(*ast.RepeatNode)
	require.True(t, ok)
	require.NotNil(t, repeatNode.Cond)
}

func TestAlgorithmDefinition(t *testing.T) {
	nodes := parseOK(t, "Algorithm add(a, b):\n\treturn a + b\n")
	def, ok := nodes[0].(*ast.AlgoDefNode)
	require.True(t, ok)
	assert.Equal(t, "add", def.Name)
	assert.Equal(t, []string{"a", "b"}, def.Params)
}

func TestAlgorithmOperatorOverload(t *testing.T) {
	src := strings.Join([]string{
		"Struct Vec:",
		"\tx",
		"\tAlgorithm operator +(other):",
		"\t\tself.x + other.x",
		"",
	}, "\n")
	nodes := parseOK(t, src)
	structDef, ok := nodes[0].(*ast.StructDefNode)
	require.True(t, ok)
	require.Len(t, structDef.Methods, 1)
	assert.Equal(t, "operator +", structDef.Methods[0].Name)
}

func TestStructDefinitionSeparatesMembersAndMethods(t *testing.T) {
	src := strings.Join([]string{
		"Struct Pair:",
		"\tx",
		"\ty",
		"\tAlgorithm constructor(a, b):",
		"\t\tself.x <- a",
		"\t\tself.y <- b",
		"",
	}, "\n")
	nodes := parseOK(t, src)
	structDef, ok := nodes[0].(*ast.StructDefNode)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, structDef.Members)
	require.Len(t, structDef.Methods, 1)
	assert.Equal(t, "constructor", structDef.Methods[0].Name)
}

func TestArrayLiteral(t *testing.T) {
	nodes := parseOK(t, "a <- {1, 2, 3}\n")
	assign, ok := nodes[0].(*ast.VarAssignNode)
	require.True(t, ok)
	arr, ok := assign.Expr.(*ast.ArrayNode)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestArrayIndexAssignment(t *testing.T) {
	nodes := parseOK(t, "a[2] <- 99\n")
	assign, ok := nodes[0].(*ast.ArrAssignNode)
	require.True(t, ok)
	accessNode, ok := assign.Lvalue.(*ast.ArrAccessNode)
	require.True(t, ok)
	_, targetIsAccess := accessNode.Target.(*ast.VarAccessNode)
	assert.True(t, targetIsAccess)
}

func TestMemberAssignmentThroughSelf(t *testing.T) {
	nodes := parseOK(t, "self.x <- a\n")
	assign, ok := nodes[0].(*ast.ArrAssignNode)
	require.True(t, ok)
	mem, ok := assign.Lvalue.(*ast.MemAccessNode)
	require.True(t, ok)
	assert.Equal(t, "x", mem.Member)
}

func TestNestedIndentationBlocks(t *testing.T) {
	src := strings.Join([]string{
		"if x > 0 then",
		"\tfor i <- 1 to 3 do",
		"\t\tprint(i)",
		"",
	}, "\n")
	nodes := parseOK(t, src)
	ifNode, ok := nodes[0].(*ast.IfNode)
	require.True(t, ok)
	require.Len(t, ifNode.Then, 1)
	_, ok = ifNode.Then[0].(*ast.ForNode)
	assert.True(t, ok)
}

func TestAlgorithmCallChain(t *testing.T) {
	nodes := parseOK(t, "fact(5)\n")
	call, ok := nodes[0].(*ast.AlgoCallNode)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
}

func TestMalformedInputProducesError(t *testing.T) {
	p := NewParser("test", "if x then\n")
	p.Parse()
	assert.True(t, p.HasErrors())
}
