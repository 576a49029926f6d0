/*
File    : microscala/eval/evaluator_test.go
Derived from: github.com/akashmaji946/go-mix/eval/evaluator_test.go
              (in-process pipeline test: build a *bytes.Buffer writer,
              drive lexer/parser/evaluator end to end, assert on the
              captured stdout string).

Covers the six worked scenarios of spec.md §8 plus the fatal-diagnostic
paths (divide-by-zero, arity mismatch).
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/microscala/parser"
)

// run parses src and evaluates it, returning stdout. Diagnostics panic;
// callers that expect a diagnostic wrap run in their own recover.
func run(t *testing.T, src string) string {
	t.Helper()
	prog := parser.NewParser(src).Parse()
	var out bytes.Buffer
	NewEvaluator(&out).Run(prog)
	return out.String()
}

// runExpectFailure runs src and returns the recovered panic value,
// asserting that evaluation did in fact panic.
func runExpectFailure(t *testing.T, src string) (result any) {
	t.Helper()
	defer func() {
		result = recover()
		assert.NotNil(t, result, "expected src to raise a diagnostic")
	}()
	prog := parser.NewParser(src).Parse()
	var out bytes.Buffer
	NewEvaluator(&out).Run(prog)
	return nil
}

func TestEval_Arithmetic(t *testing.T) {
	out := run(t, `object Test {
  def main(args : Array[String]) {
    println(3 + 4);
  }
}`)
	assert.Equal(t, "7\n", out)
}

func TestEval_FactorialOfFive(t *testing.T) {
	out := run(t, `object Test {
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
}`)
	assert.Equal(t, "120\n", out)
}

func TestEval_ConsBuildsList(t *testing.T) {
	out := run(t, `object Test {
  def main(args : Array[String]) {
    println(1 :: 2 :: 3 :: Nil);
  }
}`)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestEval_HeadOfNonEmptyList(t *testing.T) {
	out := run(t, `object Test {
  def main(args : Array[String]) {
    println((7 :: 8 :: Nil).head);
  }
}`)
	assert.Equal(t, "7\n", out)
}

func TestEval_TailTrimsBothEnds(t *testing.T) {
	out := run(t, `object Test {
  def main(args : Array[String]) {
    println((1 :: 2 :: 3 :: 4 :: Nil).tail);
  }
}`)
	assert.Equal(t, "[2, 3]\n", out)
}

func TestEval_IsEmptyOnIntIsAlwaysTrue(t *testing.T) {
	out := run(t, `object Test {
  def main(args : Array[String]) {
    println(5.isEmpty);
  }
}`)
	assert.Equal(t, "1\n", out)
}

func TestEval_FloorDivisionRoundsTowardNegativeInfinity(t *testing.T) {
	out := run(t, `object Test {
  def main(args : Array[String]) {
    println(-7 / 2);
  }
}`)
	// -7 / 2 floors to -4, not the Go-truncated -3.
	assert.Equal(t, "-4\n", out)
}

func TestEval_DivideByZeroIsFatal(t *testing.T) {
	r := runExpectFailure(t, `object Test {
  def main(args : Array[String]) {
    println(1 / 0);
  }
}`)
	assertDiagnosticContains(t, r, "Divide by zero")
}

func TestEval_ArityMismatchNamesTheFunction(t *testing.T) {
	r := runExpectFailure(t, `object Test {
  def add(x : Int, y : Int) : Int = {
    return x + y;
  }
  def main(args : Array[String]) {
    println(add(1));
  }
}`)
	assertDiagnosticContains(t, r, "add")
}

func TestEval_NonShortCircuitAndStillEvaluatesRightSide(t *testing.T) {
	// 0 && (1/0) must still divide by zero: && never short-circuits
	// (spec.md §4.3).
	r := runExpectFailure(t, `object Test {
  def main(args : Array[String]) {
    println(0 && (1 / 0));
  }
}`)
	assertDiagnosticContains(t, r, "Divide by zero")
}

func TestEval_TypedEqualityCrossTypeIsAlwaysUnequal(t *testing.T) {
	out := run(t, `object Test {
  def main(args : Array[String]) {
    println(1 == (1 :: Nil));
  }
}`)
	assert.Equal(t, "0\n", out)
}

func TestEval_GlobalVarIsVisibleInsideFunction(t *testing.T) {
	out := run(t, `object Test {
  var total : Int = 41;
  def bump() : Int = {
    return total + 1;
  }
  def main(args : Array[String]) {
    println(bump());
  }
}`)
	assert.Equal(t, "42\n", out)
}

func assertDiagnosticContains(t *testing.T, r any, substr string) {
	t.Helper()
	switch v := r.(type) {
	case interface{ Error() string }:
		assert.True(t, strings.Contains(v.Error(), substr), "got %q, want substring %q", v.Error(), substr)
	default:
		t.Fatalf("recovered value %v is not an error", r)
	}
}
