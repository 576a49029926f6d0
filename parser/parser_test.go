/*
File    : microscala/parser/parser_test.go
Derived from: github.com/akashmaji946/go-mix/parser/parser_test.go
              (table-driven assert.* style), plus a round-trip property
              test added from github.com/aledsdavies-opal's use of
              google/go-cmp for AST diffing.
*/
package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/microscala/ast"
)

const minimalObject = `object Test {
  def main(args : Array[String]) {
    println(1);
  }
}`

func TestParser_ParsesMinimalMain(t *testing.T) {
	p := NewParser(minimalObject)
	prog := p.Parse()

	assert.Equal(t, "Test", prog.Name)
	assert.NotNil(t, prog.Main)
	assert.Empty(t, p.GetErrors())

	block, ok := prog.Main.Stmt.(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, block.Stmts, 1)
}

func TestParser_ParsesGlobalVar(t *testing.T) {
	src := `object Test {
  var total : Int = 0;
  def main(args : Array[String]) {
    println(total);
  }
}`
	p := NewParser(src)
	prog := p.Parse()

	assert.Len(t, prog.DecVars, 1)
	assert.Equal(t, "total", prog.DecVars[0].Name)
	assert.Equal(t, ast.TypeInt, prog.DecVars[0].Type.Kind)
}

func TestParser_ParsesFunctionWithParamsAndReturn(t *testing.T) {
	src := `object Test {
  def add(x : Int, y : Int) : Int = {
    return x + y;
  }
  def main(args : Array[String]) {
    println(add(1, 2));
  }
}`
	p := NewParser(src)
	prog := p.Parse()

	assert.Len(t, prog.Funcs, 1)
	fn := prog.Funcs[0]
	assert.Equal(t, "add", fn.Name)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, ast.TypeInt, fn.ReturnType.Kind)

	block := fn.Stmt.(*ast.Block)
	ret, ok := block.Stmts[len(block.Stmts)-1].(*ast.Return)
	assert.True(t, ok)
	expr, ok := ret.Expr.(*ast.Expr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpAdd, expr.Op)
}

func TestParser_ConsIsRightAssociative(t *testing.T) {
	src := `object Test {
  def main(args : Array[String]) {
    println(1 :: 2 :: Nil);
  }
}`
	p := NewParser(src)
	prog := p.Parse()

	block := prog.Main.Stmt.(*ast.Block)
	println := block.Stmts[0].(*ast.Println)
	outer := println.Expr.(*ast.Expr)
	assert.Equal(t, ast.OpCons, outer.Op)

	inner, ok := outer.Term2.(*ast.Expr)
	assert.True(t, ok, "1 :: (2 :: Nil): :: must nest on the right")
	assert.Equal(t, ast.OpCons, inner.Op)
}

func TestParser_AdditionIsLeftAssociative(t *testing.T) {
	src := `object Test {
  def main(args : Array[String]) {
    println(1 - 2 - 3);
  }
}`
	p := NewParser(src)
	prog := p.Parse()

	block := prog.Main.Stmt.(*ast.Block)
	println := block.Stmts[0].(*ast.Println)
	outer := println.Expr.(*ast.Expr)
	assert.Equal(t, ast.OpSub, outer.Op)

	inner, ok := outer.Term1.(*ast.Expr)
	assert.True(t, ok, "(1 - 2) - 3: - must nest on the left")
	assert.Equal(t, ast.OpSub, inner.Op)
}

func TestParser_PrefixSignWrapsAfterMethodChain(t *testing.T) {
	src := `object Test {
  def main(args : Array[String]) {
    println(-xs.head);
  }
}`
	p := NewParser(src)
	prog := p.Parse()

	block := prog.Main.Stmt.(*ast.Block)
	println := block.Stmts[0].(*ast.Println)
	outer := println.Expr.(*ast.Expr)
	assert.Equal(t, ast.OpNeg, outer.Op, "sign must wrap the whole chain, not just the operand")

	inner, ok := outer.Term1.(*ast.Expr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpHead, inner.Op)
}

func TestParser_IfElseAndWhile(t *testing.T) {
	src := `object Test {
  def main(args : Array[String]) {
    if (1) { println(1); } else { println(0); }
    while (0) { println(9); }
  }
}`
	p := NewParser(src)
	prog := p.Parse()
	block := prog.Main.Stmt.(*ast.Block)
	assert.Len(t, block.Stmts, 2)

	ifNode, ok := block.Stmts[0].(*ast.If)
	assert.True(t, ok)
	assert.NotNil(t, ifNode.Else)

	_, ok = block.Stmts[1].(*ast.While)
	assert.True(t, ok)
}

func TestParser_ParseRoundTrip(t *testing.T) {
	// Parsing, rendering back to valid MicroScala source via
	// ast.PrintProgram, and reparsing must produce an identical AST
	// (spec.md §8). Node.String() is a debug s-expression and is NOT
	// valid concrete syntax, so the round trip goes through
	// ast.PrintProgram/ast.Print instead (ast/print.go).
	src := `object Test {
  var total : Int = 0;
  def fact(n : Int) : Int = {
    var acc : Int = 1;
    while (n) {
      acc = acc * n;
      n = n - 1;
    }
    return acc;
  }
  def main(args : Array[String]) {
    println(fact(5));
  }
}`
	first := NewParser(src).Parse()
	second := NewParser(ast.PrintProgram(first)).Parse()

	assert.Empty(t, cmp.Diff(first, second), "reparsed AST must equal the original")
}

func TestParser_ParseRoundTripWithListsAndOperators(t *testing.T) {
	// A second round-trip program exercising cons, list methods, unary
	// sign interacting with a method chain, and non-short-circuit
	// boolean/relational operators — the operator-heavy paths
	// ast.Print's parenthesization has to get right.
	src := `object Test {
  def sum(xs : List[Int]) : Int = {
    var result : Int = 0;
    if (xs.isEmpty) {
      result = 0;
    } else {
      result = xs.head + sum(xs.tail);
    }
    return result;
  }
  def main(args : Array[String]) {
    println(1 :: 2 :: 3 :: Nil);
    println(-xs.head);
    println(1 + 2 * 3 - 4 / 2);
    println(1 < 2 && 3 >= 2 || !(1 == 2));
  }
}`
	first := NewParser(src).Parse()
	second := NewParser(ast.PrintProgram(first)).Parse()

	assert.Empty(t, cmp.Diff(first, second), "reparsed AST must equal the original")
}

func TestParser_ExpectMismatchFailsWithDiagnostic(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r, "a malformed program must panic with a diagnostic")
	}()
	NewParser(`object Test { def main(args : Array[String]) { println(1) } }`).Parse()
}
