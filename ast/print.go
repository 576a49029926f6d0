/*
File    : microscala/ast/print.go
Derived from: the grammar of spec.md §4.2 / _examples/original_source/MicroTree.py,
              rendered back to front (each production's Render* mirrors the
              corresponding parser/parser.go production in reverse).

This is a SEPARATE printer from Node.String() in node.go: String() is a
debug s-expression, never valid MicroScala source. Print/PrintProgram
below emit real concrete syntax, so that parsing their output
reproduces an identical AST (spec.md §8's parse round-trip property).
*/
package ast

import (
	"fmt"
	"strings"
)

// PrintProgram renders a compilation unit as MicroScala source:
// `object Name { {var} {def} mainDef }`.
func PrintProgram(p *Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "object %s {\n", p.Name)
	for _, d := range p.DecVars {
		fmt.Fprintf(&b, "  %s\n", printVarDef(d))
	}
	for _, fn := range p.Funcs {
		b.WriteString(printFuncDef(fn))
	}
	if p.Main != nil {
		b.WriteString(printMainDef(p.Main))
	}
	b.WriteByte('}')
	return b.String()
}

func printVarDef(d *DecVar) string {
	return fmt.Sprintf("var %s : %s = %s;", d.Name, printType(d.Type), Print(d.Value))
}

// printParam renders a formal parameter as `id : Type`. Unlike
// printVarDef, it never prints the placeholder default value: spec.md
// §4.2's param production has no `= literal` clause, the default only
// exists as an internal fill-in the parser attaches to DecVar.Value.
func printParam(d *DecVar) string {
	return fmt.Sprintf("%s : %s", d.Name, printType(d.Type))
}

func printType(t TypeTag) string {
	return string(t.Kind)
}

func printFuncDef(fn *Program) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = printParam(p)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  def %s(%s) : %s = {\n", fn.Name, strings.Join(params, ", "), printType(*fn.ReturnType))
	for _, d := range fn.DecVars {
		fmt.Fprintf(&b, "    %s\n", printVarDef(d))
	}
	block := fn.Stmt.(*Block)
	for _, stmt := range block.Stmts {
		fmt.Fprintf(&b, "    %s\n", printStmt(stmt))
	}
	b.WriteString("  }\n")
	return b.String()
}

func printMainDef(main *Program) string {
	var b strings.Builder
	b.WriteString("  def main(args : Array[String]) {\n")
	for _, d := range main.DecVars {
		fmt.Fprintf(&b, "    %s\n", printVarDef(d))
	}
	block := main.Stmt.(*Block)
	for _, stmt := range block.Stmts {
		fmt.Fprintf(&b, "    %s\n", printStmt(stmt))
	}
	b.WriteString("  }\n")
	return b.String()
}

// printStmt renders one statement production. Return does not append
// its own trailing statement punctuation beyond the required `;` —
// printFuncDef places it last in the body, matching the grammar's
// `{statement} return listExpr ;` shape.
func printStmt(n Node) string {
	switch s := n.(type) {
	case *If:
		if s.Else != nil {
			return fmt.Sprintf("if (%s) %s else %s", Print(s.Cond), printStmt(s.Then), printStmt(s.Else))
		}
		return fmt.Sprintf("if (%s) %s", Print(s.Cond), printStmt(s.Then))
	case *While:
		return fmt.Sprintf("while (%s) %s", Print(s.Cond), printStmt(s.Body))
	case *Block:
		var b strings.Builder
		b.WriteString("{\n")
		for _, stmt := range s.Stmts {
			fmt.Fprintf(&b, "      %s\n", printStmt(stmt))
		}
		b.WriteString("    }")
		return b.String()
	case *Assignment:
		return fmt.Sprintf("%s = %s;", s.Lhs.Name, Print(s.Rhs))
	case *Println:
		return fmt.Sprintf("println(%s);", Print(s.Expr))
	case *Return:
		return fmt.Sprintf("return %s;", Print(s.Expr))
	default:
		panic(fmt.Sprintf("ast.printStmt: unhandled statement node %T", n))
	}
}

// Print renders one expression production as valid MicroScala source.
// Every sub-expression that is itself an *Expr is parenthesized via
// operand, so round-tripping through Print never depends on the
// printer reconstructing the grammar's precedence/associativity
// rules — parentheses make every grouping explicit and unambiguous.
func Print(n Node) string {
	switch e := n.(type) {
	case *IntLit:
		return fmt.Sprintf("%d", e.Value)
	case *NilLit:
		return "Nil"
	case *Variable:
		return e.Name
	case *FunctionCall:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = Print(a)
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	case *Expr:
		return printExpr(e)
	default:
		panic(fmt.Sprintf("ast.Print: unhandled expression node %T", n))
	}
}

func printExpr(e *Expr) string {
	if e.Term2 == nil {
		switch e.Op {
		case OpNot:
			return "!" + operand(e.Term1)
		case OpNeg:
			return "-" + operand(e.Term1)
		case OpPos:
			return "+" + operand(e.Term1)
		case OpHead, OpTail, OpIsEmpty:
			return operand(e.Term1) + "." + string(e.Op)
		default:
			panic(fmt.Sprintf("ast.printExpr: unhandled unary op %q", e.Op))
		}
	}
	return fmt.Sprintf("%s %s %s", operand(e.Term1), e.Op, operand(e.Term2))
}

// operand renders a sub-expression, wrapping it in parentheses when it
// is itself an *Expr (spec.md §4.2's `( expr )` simpleExpr production
// introduces no AST node of its own, so parenthesizing any operator
// node here is always safe and always round-trips).
func operand(n Node) string {
	if _, ok := n.(*Expr); ok {
		return "(" + Print(n) + ")"
	}
	return Print(n)
}
