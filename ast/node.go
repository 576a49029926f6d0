/*
File    : microscala/ast/node.go
Derived from: github.com/akashmaji946/go-mix/parser/node.go

The grammar in spec.md §4.2 is small and closed, so rather than the
teacher's ~25-method NodeVisitor the AST here is a plain sum type: one
concrete struct per variant, dispatched with a type switch at the point
of use (the evaluator's own Eval does this, mirroring the teacher's own
eval/eval_expressions.go Eval(n parser.Node) dispatcher).
*/
package ast

import (
	"fmt"
	"strings"
)

// Node is implemented by every AST variant. String renders a
// parenthesized s-expression for debug tooling; it is not valid
// MicroScala source (the parser round-trip test renders through
// PrintProgram in print.go instead).
type Node interface {
	String() string
}

// TypeKind names one of the three formal types in MicroScala (spec.md
// §3 TypeTag). Array[String] appears only as the type of main's args.
type TypeKind string

const (
	TypeInt         TypeKind = "Int"
	TypeListInt     TypeKind = "List[Int]"
	TypeArrayString TypeKind = "Array[String]"
)

// TypeTag wraps a TypeKind so it can appear as a field with its own
// String(), matching the other node variants.
type TypeTag struct {
	Kind TypeKind
}

func (t TypeTag) String() string { return string(t.Kind) }

// IntLit is the integer literal variant of Literal (spec.md §3).
type IntLit struct {
	Value int64
}

func (n *IntLit) String() string { return fmt.Sprintf("%d", n.Value) }

// NilLit is the Nil literal variant of Literal; it evaluates to the
// empty list (spec.md §3, §9).
type NilLit struct{}

func (n *NilLit) String() string { return "Nil" }

// DecVar is a `var name : Type = literal` declaration, used both for
// top-level/local variable declarations and for formal parameters
// (whose Value holds the parser-supplied placeholder default — spec.md
// §4.2 "Parameter defaults").
type DecVar struct {
	Name  string
	Type  TypeTag
	Value Node // *IntLit or *NilLit
}

func (n *DecVar) String() string {
	return fmt.Sprintf("(var %s : %s = %s)", n.Name, n.Type, n.Value)
}

// Program models the compilation unit, each function definition, and
// the main entry point (spec.md §3 Program). Which fields are populated
// depends on which of the three roles this node plays:
//
//   - compilation unit: Name, DecVars (globals), Funcs, Main set; Params/
//     ReturnType/Stmt unused.
//   - function: Name, Params, ReturnType, DecVars (locals), Stmt set;
//     Funcs/Main unused.
//   - main: Name == "main", Params (just args : Array[String]), DecVars
//     (locals), Stmt set; Funcs/Main/ReturnType unused.
type Program struct {
	Name       string
	DecVars    []*DecVar
	Funcs      []*Program
	Main       *Program
	Params     []*DecVar
	ReturnType *TypeTag
	Stmt       Node // *Block
}

func (n *Program) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(program %s", n.Name)
	if n.ReturnType != nil {
		fmt.Fprintf(&b, " : %s", n.ReturnType)
	}
	for _, p := range n.Params {
		fmt.Fprintf(&b, " (param %s)", p)
	}
	for _, d := range n.DecVars {
		fmt.Fprintf(&b, " %s", d)
	}
	for _, f := range n.Funcs {
		fmt.Fprintf(&b, " %s", f)
	}
	if n.Main != nil {
		fmt.Fprintf(&b, " %s", n.Main)
	}
	if n.Stmt != nil {
		fmt.Fprintf(&b, " %s", n.Stmt)
	}
	b.WriteByte(')')
	return b.String()
}

// Block is a flat sequence of statements (spec.md §9's recommended
// replacement for the source's left-deep binary Statement(stmt, stmt2)
// tree).
type Block struct {
	Stmts []Node
}

func (n *Block) String() string {
	parts := make([]string, len(n.Stmts))
	for i, s := range n.Stmts {
		parts[i] = s.String()
	}
	return "(block " + strings.Join(parts, " ") + ")"
}

// If is `if (cond) then [else else_]`. Else is nil for a bare `if`.
type If struct {
	Cond Node
	Then Node
	Else Node
}

func (n *If) String() string {
	if n.Else != nil {
		return fmt.Sprintf("(if-else %s %s %s)", n.Cond, n.Then, n.Else)
	}
	return fmt.Sprintf("(if %s %s)", n.Cond, n.Then)
}

// While is `while (cond) body`.
type While struct {
	Cond Node
	Body Node
}

func (n *While) String() string {
	return fmt.Sprintf("(while %s %s)", n.Cond, n.Body)
}

// Assignment is `lhs = rhs`.
type Assignment struct {
	Lhs *Variable
	Rhs Node
}

func (n *Assignment) String() string {
	return fmt.Sprintf("(assign %s %s)", n.Lhs, n.Rhs)
}

// Println is `println(expr)`.
type Println struct {
	Expr Node
}

func (n *Println) String() string { return fmt.Sprintf("(println %s)", n.Expr) }

// Return is `return expr`, required as the last statement of every
// non-main function body (spec.md §4.3).
type Return struct {
	Expr Node
}

func (n *Return) String() string { return fmt.Sprintf("(return %s)", n.Expr) }

// Variable is a bare identifier reference.
type Variable struct {
	Name string
}

func (n *Variable) String() string { return n.Name }

// FunctionCall is `name(args...)`.
type FunctionCall struct {
	Name string
	Args []Node
}

func (n *FunctionCall) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("(call %s %s)", n.Name, strings.Join(parts, " "))
}

// Op enumerates the OpTag values an Expr node may carry (spec.md §3).
type Op string

const (
	OpOr      Op = "||"
	OpAnd     Op = "&&"
	OpNot     Op = "!"
	OpEq      Op = "=="
	OpNe      Op = "!="
	OpLt      Op = "<"
	OpLe      Op = "<="
	OpGt      Op = ">"
	OpGe      Op = ">="
	OpAdd     Op = "+"
	OpSub     Op = "-"
	OpMul     Op = "*"
	OpDiv     Op = "/"
	OpCons    Op = "::"
	OpHead    Op = "head"
	OpTail    Op = "tail"
	OpIsEmpty Op = "isEmpty"
	OpNeg     Op = "unary-" // unary minus, distinct from binary "-"
	OpPos     Op = "unary+" // unary plus
)

// Expr is the one generic binary/unary operator node. Term2 is nil for
// the unary operators (!, head, tail, isEmpty, unary +/-).
type Expr struct {
	Op    Op
	Term1 Node
	Term2 Node // nil when unary
}

func (n *Expr) String() string {
	if n.Term2 == nil {
		return fmt.Sprintf("(%s %s)", n.Op, n.Term1)
	}
	return fmt.Sprintf("(%s %s %s)", n.Op, n.Term1, n.Term2)
}
