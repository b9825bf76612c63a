/*
File    : pseudo/objects/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import "math"

// BinOp applies op (one of + - * / % ^ = != < > <= >= and or) to left and right
// per the promotion table: INT op INT stays INT unless either side is
// FLOAT, STRING concatenates/repeats for a few operators, and every other
// pairing is an ERROR.
func BinOp(op string, left, right Value) Value {
	if e, ok := left.(*Error); ok {
		return e
	}
	if e, ok := right.(*Error); ok {
		return e
	}

	switch op {
	case "+":
		return add(left, right)
	case "-":
		return sub(left, right)
	case "*":
		return mul(left, right)
	case "/":
		return div(left, right)
	case "%":
		return mod(left, right)
	case "^":
		return pow(left, right)
	case "=":
		return compare(left, right, func(c int) bool { return c == 0 })
	case "!=":
		return compare(left, right, func(c int) bool { return c != 0 })
	case "<":
		return compare(left, right, func(c int) bool { return c < 0 })
	case ">":
		return compare(left, right, func(c int) bool { return c > 0 })
	case "<=":
		return compare(left, right, func(c int) bool { return c <= 0 })
	case ">=":
		return compare(left, right, func(c int) bool { return c >= 0 })
	case "and":
		return boolOp(left, right, func(a, b bool) bool { return a && b })
	case "or":
		return boolOp(left, right, func(a, b bool) bool { return a || b })
	}
	return NewError("unknown operator %q", op)
}

func isFloat(v Value) bool { _, ok := v.(*Float); return ok }
func isNumeric(v Value) bool {
	switch v.(type) {
	case *Int, *Float:
		return true
	}
	return false
}

func add(left, right Value) Value {
	if ls, ok := left.(*String); ok {
		if rs, ok := right.(*String); ok {
			return &String{Value: ls.Value + rs.Value}
		}
		return NewError("cannot add %s and %s", left.GetType(), right.GetType())
	}
	if !isNumeric(left) || !isNumeric(right) {
		return NewError("cannot add %s and %s", left.GetType(), right.GetType())
	}
	if isFloat(left) || isFloat(right) {
		lf, _ := AsFloat64(left)
		rf, _ := AsFloat64(right)
		return &Float{Value: lf + rf}
	}
	li, _ := AsInt64(left)
	ri, _ := AsInt64(right)
	return &Int{Value: li + ri}
}

func sub(left, right Value) Value {
	if !isNumeric(left) || !isNumeric(right) {
		return NewError("cannot subtract %s and %s", left.GetType(), right.GetType())
	}
	if isFloat(left) || isFloat(right) {
		lf, _ := AsFloat64(left)
		rf, _ := AsFloat64(right)
		return &Float{Value: lf - rf}
	}
	li, _ := AsInt64(left)
	ri, _ := AsInt64(right)
	return &Int{Value: li - ri}
}

func mul(left, right Value) Value {
	if ls, ok := left.(*String); ok {
		if ri, ok := right.(*Int); ok {
			return repeatString(ls.Value, ri.Value)
		}
		return NewError("cannot multiply %s and %s", left.GetType(), right.GetType())
	}
	if rs, ok := right.(*String); ok {
		if li, ok := left.(*Int); ok {
			return repeatString(rs.Value, li.Value)
		}
		return NewError("cannot multiply %s and %s", left.GetType(), right.GetType())
	}
	if !isNumeric(left) || !isNumeric(right) {
		return NewError("cannot multiply %s and %s", left.GetType(), right.GetType())
	}
	if isFloat(left) || isFloat(right) {
		lf, _ := AsFloat64(left)
		rf, _ := AsFloat64(right)
		return &Float{Value: lf * rf}
	}
	li, _ := AsInt64(left)
	ri, _ := AsInt64(right)
	return &Int{Value: li * ri}
}

func repeatString(s string, n int64) Value {
	if n < 0 {
		return NewError("string repetition count must be >= 0")
	}
	out := ""
	for i := int64(0); i < n; i++ {
		out += s
	}
	return &String{Value: out}
}

func div(left, right Value) Value {
	if !isNumeric(left) || !isNumeric(right) {
		return NewError("cannot divide %s and %s", left.GetType(), right.GetType())
	}
	if isFloat(left) || isFloat(right) {
		lf, _ := AsFloat64(left)
		rf, _ := AsFloat64(right)
		if rf == 0 {
			return NewError("DIV by 0")
		}
		return &Float{Value: lf / rf}
	}
	li, _ := AsInt64(left)
	ri, _ := AsInt64(right)
	if ri == 0 {
		return NewError("DIV by 0")
	}
	return &Int{Value: li / ri}
}

func mod(left, right Value) Value {
	li, lok := left.(*Int)
	ri, rok := right.(*Int)
	if !lok || !rok {
		return NewError("%% requires INT operands, got %s and %s", left.GetType(), right.GetType())
	}
	if ri.Value == 0 {
		return NewError("DIV by 0")
	}
	return &Int{Value: li.Value % ri.Value}
}

func pow(left, right Value) Value {
	if !isNumeric(left) || !isNumeric(right) {
		return NewError("cannot raise %s to %s", left.GetType(), right.GetType())
	}
	lf, _ := AsFloat64(left)
	rf, _ := AsFloat64(right)
	if lf == 0 && rf == 0 {
		return NewError("0^0 is undefined")
	}
	if isFloat(left) || isFloat(right) {
		return &Float{Value: math.Pow(lf, rf)}
	}
	li, _ := AsInt64(left)
	ri, _ := AsInt64(right)
	if ri < 0 {
		return &Float{Value: math.Pow(lf, rf)}
	}
	return &Int{Value: intPow(li, ri)}
}

// intPow computes base^exp for exp >= 0 by exponentiation by squaring,
// staying in int64 arithmetic so large integer powers remain exact instead
// of being rounded through a float64 intermediate.
func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func compare(left, right Value, test func(int) bool) Value {
	if ls, ok := left.(*String); ok {
		if rs, ok := right.(*String); ok {
			return boolResult(test(stringCompare(ls.Value, rs.Value)))
		}
		return NewError("cannot compare %s and %s", left.GetType(), right.GetType())
	}
	if !isNumeric(left) || !isNumeric(right) {
		return NewError("cannot compare %s and %s", left.GetType(), right.GetType())
	}
	lf, _ := AsFloat64(left)
	rf, _ := AsFloat64(right)
	switch {
	case lf < rf:
		return boolResult(test(-1))
	case lf > rf:
		return boolResult(test(1))
	default:
		return boolResult(test(0))
	}
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolResult(b bool) Value {
	if b {
		return &Int{Value: 1}
	}
	return &Int{Value: 0}
}

// boolOp implements the language's non-short-circuiting "and"/"or": both
// operands are already evaluated by the caller before this runs.
func boolOp(left, right Value, combine func(a, b bool) bool) Value {
	return boolResult(combine(Truthy(left), Truthy(right)))
}

// UnaryOp applies a prefix operator ("-", "+", "not") to operand.
func UnaryOp(op string, operand Value) Value {
	if e, ok := operand.(*Error); ok {
		return e
	}
	switch op {
	case "-":
		switch v := operand.(type) {
		case *Int:
			return &Int{Value: -v.Value}
		case *Float:
			return &Float{Value: -v.Value}
		}
		return NewError("cannot negate %s", operand.GetType())
	case "+":
		if isNumeric(operand) {
			return operand
		}
		return NewError("unary + requires a numeric operand, got %s", operand.GetType())
	case "not":
		return boolResult(!Truthy(operand))
	}
	return NewError("unknown unary operator %q", op)
}
