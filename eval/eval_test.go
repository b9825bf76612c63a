/*
File    : pseudo/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"
	"testing"

	"github.com/akashmaji946/pseudo/hostio"
	"github.com/akashmaji946/pseudo/objects"
	"github.com/akashmaji946/pseudo/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and evaluates src, returning the evaluator's printed output
// and the final statement's value.
func run(t *testing.T, src string) (string, objects.Value) {
	t.Helper()
	p := parser.NewParser("test", src)
	nodes := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())

	buf := hostio.NewBuffer("")
	ev := NewEvaluator(buf)
	result := ev.Eval(nodes)
	return buf.Output.String(), result
}

func TestScenarios_ArithmeticPrecedence(t *testing.T) {
	out, _ := run(t, "print(1 + 2 * 3)\n")
	assert.Equal(t, "7\n", out)
}

func TestScenarios_ForLoopAccumulation(t *testing.T) {
	out, _ := run(t, "s <- 0\nfor i <- 1 to 5 do s <- s + i\nprint(s)\n")
	assert.Equal(t, "15\n", out)
}

func TestScenarios_ArrayMutationAndPrint(t *testing.T) {
	out, _ := run(t, "a <- {10, 20, 30}\na[2] <- 99\nprint(a)\n")
	assert.Equal(t, "{10, 99, 30}\n", out)
}

func TestScenarios_RecursiveAlgorithm(t *testing.T) {
	src := "Algorithm fact(n):\n\tif n <= 1 then 1 else n * fact(n-1)\nprint(fact(5))\n"
	out, _ := run(t, src)
	assert.Equal(t, "120\n", out)
}

func TestScenarios_StructConstructorAndMembers(t *testing.T) {
	src := strings.Join([]string{
		"Struct Pair:",
		"\tx",
		"\ty",
		"\tAlgorithm constructor(a, b):",
		"\t\tself.x <- a",
		"\t\tself.y <- b",
		"p <- Pair(3, 4)",
		"print(p.x + p.y)",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "7\n", out)
}

func TestScenarios_DivisionByZero(t *testing.T) {
	_, result := run(t, "print(1 / 0)\n")
	require.IsType(t, &objects.Error{}, result)
	assert.Equal(t, "DIV by 0", result.(*objects.Error).Message)
}

func TestProperty_ArrayPushPopRoundTrips(t *testing.T) {
	src := strings.Join([]string{
		"a <- {1, 2}",
		"a.push(3)",
		"before <- a.size()",
		"x <- a.pop()",
		"after <- a.size()",
		"print(x)",
		"print(before - after)",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "3\n1\n", out)
}

func TestProperty_InstanceMembersStartNone(t *testing.T) {
	src := strings.Join([]string{
		"Struct Box:",
		"\titem",
		"b <- Box()",
		"print(b.item)",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "NONE\n", out)
}

func TestProperty_IntegerArithmeticClosed(t *testing.T) {
	out, _ := run(t, "print(7 + 3)\nprint(7 - 3)\nprint(7 * 3)\nprint(7 / 3)\nprint(7 % 3)\n")
	assert.Equal(t, "10\n4\n21\n2\n1\n", out)
}

func TestProperty_LexicalScopeCapturesEnclosing(t *testing.T) {
	src := strings.Join([]string{
		"x <- 10",
		"Algorithm useX():",
		"\tx + 1",
		"print(useX())",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "11\n", out)
}

func TestReturn_EarlyExitFromLoopBody(t *testing.T) {
	src := strings.Join([]string{
		"Algorithm findFive():",
		"\tfor i <- 1 to 10 do",
		"\t\tif i = 5 then return i",
		"print(findFive())",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "5\n", out)
}

func TestWhileLoop_AccumulatesUntilFalse(t *testing.T) {
	src := strings.Join([]string{
		"i <- 0",
		"while i < 3 do",
		"\ti <- i + 1",
		"print(i)",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "3\n", out)
}

func TestRepeatUntil_RunsBodyAtLeastOnce(t *testing.T) {
	src := strings.Join([]string{
		"i <- 0",
		"repeat",
		"\ti <- i + 1",
		"until i >= 1",
		"print(i)",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "1\n", out)
}

func TestOperatorOverload_DispatchesToInstanceMethod(t *testing.T) {
	src := strings.Join([]string{
		"Struct Vec:",
		"\tx",
		"\tAlgorithm constructor(a):",
		"\t\tself.x <- a",
		"\tAlgorithm operator +(other):",
		"\t\tself.x + other.x",
		"a <- Vec(3)",
		"b <- Vec(4)",
		"print(a + b)",
		"",
	}, "\n")
	out, _ := run(t, src)
	assert.Equal(t, "7\n", out)
}
