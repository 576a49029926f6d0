/*
File    : microscala/eval/operators.go
Derived from: github.com/akashmaji946/go-mix/eval/eval_expressions.go
              (evaluateBinaryOp / evalUnaryExpression / evalBooleanExpression
              dispatch shape), with exact semantics confirmed against
              _examples/original_source/MicroInterp.py's Expr and Cond methods.

Deliberate deviations from the teacher's evalBooleanExpression: this
evaluator does NOT short-circuit && / || (spec.md §4.3: "both sides are
evaluated"), matching the source's Cond method which always evaluates
both operands before combining.
*/
package eval

import (
	"github.com/akashmaji946/microscala/ast"
	"github.com/akashmaji946/microscala/diagnostics"
	"github.com/akashmaji946/microscala/value"
)

// evalExpr dispatches one ast.Expr by its Op tag. Term2 is nil for the
// unary operators (!, head, tail, isEmpty, unary +/-).
func (e *Evaluator) evalExpr(n *ast.Expr) value.Value {
	switch n.Op {
	case ast.OpNot:
		return boolValue(!truthy(e.Eval(n.Term1)))
	case ast.OpHead:
		return e.evalHead(e.Eval(n.Term1))
	case ast.OpTail:
		return e.evalTail(e.Eval(n.Term1))
	case ast.OpIsEmpty:
		return boolValue(isEmptyValue(e.Eval(n.Term1)))
	case ast.OpNeg:
		return &value.Int{Value: -intOperand(e.Eval(n.Term1), "unary -")}
	case ast.OpPos:
		return &value.Int{Value: intOperand(e.Eval(n.Term1), "unary +")}
	}

	// Binary operators: both operands are always evaluated before
	// combining, even for && / || (spec.md §4.3; no short-circuit).
	left := e.Eval(n.Term1)
	right := e.Eval(n.Term2)

	switch n.Op {
	case ast.OpOr:
		return boolValue(truthy(left) || truthy(right))
	case ast.OpAnd:
		return boolValue(truthy(left) && truthy(right))
	case ast.OpEq:
		return boolValue(valuesEqual(left, right))
	case ast.OpNe:
		return boolValue(!valuesEqual(left, right))
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return boolValue(e.evalRelational(n.Op, left, right))
	case ast.OpAdd:
		return &value.Int{Value: intOperand(left, "+") + intOperand(right, "+")}
	case ast.OpSub:
		return &value.Int{Value: intOperand(left, "-") - intOperand(right, "-")}
	case ast.OpMul:
		return &value.Int{Value: intOperand(left, "*") * intOperand(right, "*")}
	case ast.OpDiv:
		return e.evalDiv(left, right)
	case ast.OpCons:
		return e.evalCons(left, right)
	}

	diagnostics.Failf("unsupported operator %s", n.Op)
	return nil
}

// boolValue renders a MicroScala boolean as the Int 1 (true) or 0
// (false): there is no separate Boolean runtime kind (spec.md §3 only
// names Int and List), so truth values are integers, matching how
// relational/logical Expr results feed straight back into `if`/`while`
// conditions (also Int-or-List truthy checks).
func boolValue(b bool) value.Value {
	if b {
		return &value.Int{Value: 1}
	}
	return &value.Int{Value: 0}
}

func intOperand(v value.Value, op string) int64 {
	i, ok := v.(*value.Int)
	if !ok {
		diagnostics.Failf("operator %s requires Int operands", op)
	}
	return i.Value
}

// evalDiv implements integer floor-division with a zero-denominator
// check (spec.md §4.3). Go's native `/` truncates toward zero, which
// differs from the source's Python `//` for operands of different
// sign, so floor division is computed explicitly.
func (e *Evaluator) evalDiv(left, right value.Value) value.Value {
	a := intOperand(left, "/")
	b := intOperand(right, "/")
	if b == 0 {
		diagnostics.Fail("Divide by zero")
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return &value.Int{Value: q}
}

// evalRelational defines < <= > >= only on Int operands (spec.md
// §4.3: "applying them to lists produces undefined results
// (implementation may reject)" — this implementation rejects).
func (e *Evaluator) evalRelational(op ast.Op, left, right value.Value) bool {
	a := intOperand(left, string(op))
	b := intOperand(right, string(op))
	switch op {
	case ast.OpLt:
		return a < b
	case ast.OpLe:
		return a <= b
	case ast.OpGt:
		return a > b
	case ast.OpGe:
		return a >= b
	}
	return false
}

// valuesEqual implements spec.md §4.3's typed equality rule: value
// equality on Int, element-wise-and-equal-length on List, and always
// unequal across the two kinds.
func valuesEqual(left, right value.Value) bool {
	li, lIsInt := left.(*value.Int)
	ri, rIsInt := right.(*value.Int)
	if lIsInt && rIsInt {
		return li.Value == ri.Value
	}
	ll, lIsList := left.(*value.List)
	rl, rIsList := right.(*value.List)
	if lIsList && rIsList {
		if len(ll.Elements) != len(rl.Elements) {
			return false
		}
		for i := range ll.Elements {
			if ll.Elements[i] != rl.Elements[i] {
				return false
			}
		}
		return true
	}
	return false
}

// evalCons implements `::` (spec.md §4.3): an Int left operand prepends
// to a List right operand; a List left operand concatenates with a
// List right operand. Every result is a freshly allocated List — no
// aliasing of the operands' backing storage (spec.md §3 Lifecycle).
func (e *Evaluator) evalCons(left, right value.Value) value.Value {
	rl, ok := right.(*value.List)
	if !ok {
		diagnostics.Fail(":: requires a List[Int] right operand")
	}

	switch l := left.(type) {
	case *value.Int:
		elems := make([]int64, 0, len(rl.Elements)+1)
		elems = append(elems, l.Value)
		elems = append(elems, rl.Elements...)
		return &value.List{Elements: elems}
	case *value.List:
		elems := make([]int64, 0, len(l.Elements)+len(rl.Elements))
		elems = append(elems, l.Elements...)
		elems = append(elems, rl.Elements...)
		return &value.List{Elements: elems}
	default:
		diagnostics.Fail(":: requires an Int or List[Int] left operand")
		return nil
	}
}

// evalHead: on a non-empty list, the first element; on an Int,
// identity (spec.md §4.3); on an empty list, fatal.
func (e *Evaluator) evalHead(v value.Value) value.Value {
	switch val := v.(type) {
	case *value.Int:
		return val
	case *value.List:
		if len(val.Elements) == 0 {
			diagnostics.Fail("Head: List is empty")
		}
		return &value.Int{Value: val.Elements[0]}
	}
	diagnostics.Fail(".head requires an Int or List[Int] operand")
	return nil
}

// evalTail: on a non-empty list, all elements except the first AND the
// last (xs[1:-1] in the source — a deliberate preserved quirk, see
// spec.md §9, not the conventional xs[1:]); on an Int, identity; on an
// empty list, fatal.
func (e *Evaluator) evalTail(v value.Value) value.Value {
	switch val := v.(type) {
	case *value.Int:
		return val
	case *value.List:
		n := len(val.Elements)
		if n == 0 {
			diagnostics.Fail("Tail: List is empty")
		}
		if n <= 2 {
			return &value.List{}
		}
		trimmed := make([]int64, n-2)
		copy(trimmed, val.Elements[1:n-1])
		return &value.List{Elements: trimmed}
	}
	diagnostics.Fail(".tail requires an Int or List[Int] operand")
	return nil
}

// isEmptyValue: a List is empty iff its length is zero; an Int is
// always treated as length zero (spec.md §4.3, §9 — preserved from the
// source even though it is not the conventional meaning of "empty").
func isEmptyValue(v value.Value) bool {
	switch val := v.(type) {
	case *value.Int:
		_ = val
		return true
	case *value.List:
		return len(val.Elements) == 0
	}
	diagnostics.Fail(".isEmpty requires an Int or List[Int] operand")
	return false
}
