/*
File    : pseudo/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinOpIntegerArithmetic(t *testing.T) {
	cases := []struct {
		op       string
		left     int64
		right    int64
		expected int64
	}{
		{"+", 2, 3, 5},
		{"-", 5, 3, 2},
		{"*", 4, 3, 12},
		{"/", 7, 2, 3},
		{"%", 7, 2, 1},
	}
	for _, c := range cases {
		result := BinOp(c.op, &Int{Value: c.left}, &Int{Value: c.right})
		n, ok := result.(*Int)
		require.True(t, ok, "op %s produced %T", c.op, result)
		assert.Equal(t, c.expected, n.Value)
	}
}

func TestBinOpFloatPromotion(t *testing.T) {
	result := BinOp("+", &Int{Value: 2}, &Float{Value: 0.5})
	f, ok := result.(*Float)
	require.True(t, ok)
	assert.Equal(t, 2.5, f.Value)
}

func TestBinOpDivisionByZero(t *testing.T) {
	result := BinOp("/", &Int{Value: 1}, &Int{Value: 0})
	err, ok := result.(*Error)
	require.True(t, ok)
	assert.Equal(t, "DIV by 0", err.Message)
}

func TestBinOpStringConcatenation(t *testing.T) {
	result := BinOp("+", &String{Value: "foo"}, &String{Value: "bar"})
	s, ok := result.(*String)
	require.True(t, ok)
	assert.Equal(t, "foobar", s.Value)
}

func TestBinOpStringRepetition(t *testing.T) {
	result := BinOp("*", &String{Value: "ab"}, &Int{Value: 3})
	s, ok := result.(*String)
	require.True(t, ok)
	assert.Equal(t, "ababab", s.Value)
}

func TestBinOpComparisonOperators(t *testing.T) {
	assert.Equal(t, int64(1), BinOp("<", &Int{Value: 1}, &Int{Value: 2}).(*Int).Value)
	assert.Equal(t, int64(0), BinOp("<", &Int{Value: 2}, &Int{Value: 1}).(*Int).Value)
	assert.Equal(t, int64(1), BinOp("=", &Int{Value: 5}, &Int{Value: 5}).(*Int).Value)
}

func TestUnaryOpNegationAndNot(t *testing.T) {
	neg := UnaryOp("-", &Int{Value: 5})
	assert.Equal(t, int64(-5), neg.(*Int).Value)

	notResult := UnaryOp("not", &Int{Value: 0})
	assert.Equal(t, int64(1), notResult.(*Int).Value)
}

func TestArrayGetSetOneIndexed(t *testing.T) {
	arr := &Array{Elements: []Value{&Int{Value: 10}, &Int{Value: 20}, &Int{Value: 30}}}
	got := arr.Get(2)
	assert.Equal(t, int64(20), got.(*Int).Value)

	arr.Set(2, &Int{Value: 99})
	assert.Equal(t, int64(99), arr.Elements[1].(*Int).Value)
}

func TestArrayGetOutOfRangeIsError(t *testing.T) {
	arr := &Array{Elements: []Value{&Int{Value: 1}}}
	result := arr.Get(5)
	_, ok := result.(*Error)
	assert.True(t, ok)
}

func TestArrayPushPopMethods(t *testing.T) {
	arr := &Array{Elements: []Value{&Int{Value: 1}}}

	pushed := CallArrayMethod(arr, "push", []Value{&Int{Value: 2}})
	assert.Equal(t, int64(2), pushed.(*Int).Value)
	assert.Len(t, arr.Elements, 2)

	popped := CallArrayMethod(arr, "pop", nil)
	assert.Equal(t, int64(2), popped.(*Int).Value)
	assert.Len(t, arr.Elements, 1)
}

func TestInstanceStartsWithDeclaredMembersAsNone(t *testing.T) {
	def := &StructDef{Name: "Box", Members: []string{"item"}, Methods: map[string]*Algo{}}
	inst := NewInstance(def)
	v, ok := inst.GetMember("item")
	require.True(t, ok)
	assert.Same(t, NONE, v)
}

func TestInstanceSetMemberAllowsDynamicAddition(t *testing.T) {
	def := &StructDef{Name: "Box", Members: nil, Methods: map[string]*Algo{}}
	inst := NewInstance(def)
	inst.SetMember("extra", &Int{Value: 7})
	v, ok := inst.GetMember("extra")
	require.True(t, ok)
	assert.Equal(t, int64(7), v.(*Int).Value)
}

func TestOperatorMethodNameFormat(t *testing.T) {
	assert.Equal(t, "operator +", OperatorMethodName("+"))
}
