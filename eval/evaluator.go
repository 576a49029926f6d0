/*
File    : microscala/eval/evaluator.go
Derived from: github.com/akashmaji946/go-mix/eval/evaluator.go (Evaluator
              struct shape, NewEvaluator/SetWriter conventions, CallFunction
              arity check, CreateError position-tagged messages) and
              github.com/akashmaji946/go-mix/eval/eval_expressions.go (the
              central Eval(n parser.Node) type-switch dispatcher).

Every operator's exact edge-case behavior (floor division, .tail
trimming both ends, isEmpty on Int, cons prepend/concat, typed
equality, non-short-circuit && / ||) is grounded on
_examples/original_source/MicroInterp.py's Expr/Cond methods, per
spec.md §4.3 and the redesign notes of §9.
*/
package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/microscala/ast"
	"github.com/akashmaji946/microscala/diagnostics"
	"github.com/akashmaji946/microscala/env"
	"github.com/akashmaji946/microscala/value"
)

// Evaluator walks an *ast.Program and executes it. Unlike the teacher's
// Evaluator, it carries no Builtins map (println is the language's only
// I/O operation and is dispatched directly by Eval) and no Scp field
// (see env.Environment for why a stack of frames replaces scope.Scope).
type Evaluator struct {
	Out     io.Writer
	Program *ast.Program
	Env     *env.Environment
}

// NewEvaluator creates an Evaluator that writes println output to w.
func NewEvaluator(w io.Writer) *Evaluator {
	return &Evaluator{Out: w}
}

// Run populates the global context from the program's top-level `var`
// declarations, verifies a `main` exists, then enters it (spec.md §4.3
// Evaluator contract). Diagnostics raised anywhere during evaluation
// surface as a panic(*diagnostics.Diagnostic); the caller (the CLI
// entry point in cmd/microscala) is responsible for recovering it.
func (e *Evaluator) Run(prog *ast.Program) {
	if prog.Stmt == nil && prog.Main == nil {
		diagnostics.Fail("empty file")
	}
	if prog.Main == nil {
		diagnostics.Fail("no main found")
	}

	e.Program = prog
	e.Env = env.NewEnvironment()

	for _, d := range prog.DecVars {
		e.Env.BindGlobal(d.Name, e.evalLiteral(d.Value))
	}

	e.callFunction(prog.Main, nil)
}

// evalLiteral evaluates a DecVar's initializer/placeholder, which is
// always a *ast.IntLit or *ast.NilLit.
func (e *Evaluator) evalLiteral(n ast.Node) value.Value {
	return e.Eval(n)
}

// callFunction implements steps 4-8 of the function-call protocol
// (spec.md §4.3): allocate a fresh callee frame, bind formals (already
// evaluated and type-checked by the caller, or nil for `main`, whose
// `args` parameter is required-but-inert per spec.md §9), initialize
// locals, execute the body, and destroy the frame on return.
func (e *Evaluator) callFunction(fn *ast.Program, args []value.Value) value.Value {
	e.Env.Push(env.NewFrame())
	defer e.Env.Pop()

	if fn.Name == "main" {
		e.Env.BindLocal("args", value.NewNil())
	} else {
		for i, p := range fn.Params {
			e.Env.BindLocal(p.Name, args[i])
		}
	}

	for _, d := range fn.DecVars {
		e.Env.BindLocal(d.Name, e.evalLiteral(d.Value))
	}

	result := e.Eval(fn.Stmt)
	return value.UnwrapReturnValue(result)
}

// Eval dispatches one AST node to its handler. Control-flow statements
// (Block/If/While) return a *value.ReturnValue when a `return` inside
// them has fired, so callers must check for that wrapper to unwind
// early; all other statements return nil.
func (e *Evaluator) Eval(node ast.Node) value.Value {
	switch n := node.(type) {

	case *ast.IntLit:
		return &value.Int{Value: n.Value}

	case *ast.NilLit:
		return value.NewNil()

	case *ast.Variable:
		v, ok := e.Env.Lookup(n.Name)
		if !ok {
			diagnostics.Failf("%s undefined", n.Name)
		}
		return v

	case *ast.Block:
		for _, stmt := range n.Stmts {
			result := e.Eval(stmt)
			if isReturn(result) {
				return result
			}
		}
		return nil

	case *ast.If:
		if truthy(e.Eval(n.Cond)) {
			return e.Eval(n.Then)
		}
		if n.Else != nil {
			return e.Eval(n.Else)
		}
		return nil

	case *ast.While:
		for truthy(e.Eval(n.Cond)) {
			result := e.Eval(n.Body)
			if isReturn(result) {
				return result
			}
		}
		return nil

	case *ast.Assignment:
		v := e.Eval(n.Rhs)
		e.Env.Assign(n.Lhs.Name, v)
		return nil

	case *ast.Println:
		v := e.Eval(n.Expr)
		fmt.Fprintln(e.Out, v.String())
		return nil

	case *ast.Return:
		return &value.ReturnValue{Value: e.Eval(n.Expr)}

	case *ast.FunctionCall:
		return e.evalCall(n)

	case *ast.Expr:
		return e.evalExpr(n)
	}

	diagnostics.Failf("cannot evaluate node %T", node)
	return nil
}

func isReturn(v value.Value) bool {
	if v == nil {
		return false
	}
	_, ok := v.(*value.ReturnValue)
	return ok
}

// truthy implements spec.md §4.3's "nonzero integers and non-empty
// lists are truthy" rule for the underlying boolean arithmetic of
// `! && ||`.
func truthy(v value.Value) bool {
	switch val := v.(type) {
	case *value.Int:
		return val.Value != 0
	case *value.List:
		return len(val.Elements) != 0
	default:
		diagnostics.Fail("boolean context requires Int or List[Int]")
		return false
	}
}

// evalCall implements steps 1-3 of the function-call protocol
// (spec.md §4.3): exact-name lookup (spec.md §9 redesign — NOT the
// source's tree.name.startswith(func.name) prefix match), arity check,
// then evaluate and type-check each actual in the caller's context
// before handing off to callFunction.
func (e *Evaluator) evalCall(call *ast.FunctionCall) value.Value {
	fn := e.lookupFunction(call.Name)
	if fn == nil {
		diagnostics.Failf("function %s not found", call.Name)
	}

	if len(call.Args) < len(fn.Params) {
		diagnostics.Failf("Not enough arguments passed to function %s", call.Name)
	}
	if len(call.Args) > len(fn.Params) {
		diagnostics.Failf("Too many arguments passed to function %s", call.Name)
	}

	actuals := make([]value.Value, len(call.Args))
	for i, argExpr := range call.Args {
		v := e.Eval(argExpr)
		formal := fn.Params[i]
		if !typeMatches(formal.Type.Kind, v) {
			diagnostics.Failf(
				"function %s: parameter %s expected %s, got %s",
				call.Name, formal.Name, formal.Type.Kind, string(v.Kind()),
			)
		}
		actuals[i] = v
	}

	return e.callFunction(fn, actuals)
}

// lookupFunction finds fn.Name by exact string equality against the
// program's function list.
func (e *Evaluator) lookupFunction(name string) *ast.Program {
	for _, fn := range e.Program.Funcs {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

func typeMatches(formal ast.TypeKind, v value.Value) bool {
	switch formal {
	case ast.TypeInt:
		return v.Kind() == value.IntKind
	case ast.TypeListInt:
		return v.Kind() == value.ListKind
	default:
		return false
	}
}
