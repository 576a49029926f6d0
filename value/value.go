/*
File    : microscala/value/value.go
Derived from: github.com/akashmaji946/go-mix/objects/objects.go (GoMixObject
              GetType/ToString/ToObject triad, Error, ReturnValue, Array)

MicroScala's runtime is closed over exactly two value kinds (spec.md
§3): Int and List. Value collapses the teacher's three-method
GoMixObject interface to two, since this language never needs a
separate "inspect" form distinct from its println rendering — the list
print format `[1, 2, 3]` below is grounded directly on the teacher's
own Array.ToString().
*/
package value

import (
	"fmt"
	"strings"
)

// Kind identifies a runtime value's type for arity/type checking in
// the function-call protocol (spec.md §4.3 step 3).
type Kind string

const (
	IntKind    Kind = "Int"
	ListKind   Kind = "List[Int]"
	ReturnKind Kind = "return"
)

// Value is implemented by every runtime value kind.
type Value interface {
	Kind() Kind
	String() string
}

// Int is a signed 64-bit integer value.
type Int struct {
	Value int64
}

func (i *Int) Kind() Kind     { return IntKind }
func (i *Int) String() string { return fmt.Sprintf("%d", i.Value) }

// List is a finite sequence of signed integers, copy-by-value: every
// operation that produces a new List allocates a new backing slice, so
// there is no aliasing of list storage (spec.md §3 Lifecycle).
type List struct {
	Elements []int64
}

func (l *List) Kind() Kind { return ListKind }

// String renders the list the way the host's natural sequence
// rendering does (spec.md §6): "[1, 2, 3]"; an empty list (Nil) prints
// as "[]".
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = fmt.Sprintf("%d", e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NewNil builds the empty list that the Nil literal evaluates to
// (spec.md §3 Literal).
func NewNil() *List { return &List{} }

// ReturnValue wraps a value produced by a `return` statement so the
// evaluator can unwind a function body early. Grounded on the
// teacher's objects.ReturnValue delegating-wrapper pattern. Every
// semantic error in MicroScala is fatal-and-terminal (spec.md §7), so
// unlike the teacher's *objects.Error this package carries no
// error-value kind: failures go straight through
// diagnostics.Fail/FailAt instead of being threaded through Eval's
// return values.
type ReturnValue struct {
	Value Value
}

func (r *ReturnValue) Kind() Kind     { return ReturnKind }
func (r *ReturnValue) String() string { return r.Value.String() }

// UnwrapReturnValue strips a *ReturnValue wrapper if present, mirroring
// the teacher's eval.UnwrapReturnValue helper.
func UnwrapReturnValue(v Value) Value {
	if rv, ok := v.(*ReturnValue); ok {
		return rv.Value
	}
	return v
}
