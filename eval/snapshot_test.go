/*
File    : microscala/eval/snapshot_test.go
Derived from: github.com/gkampitakis/go-snaps usage in
              _examples/CWBudde-go-dws/internal/interp/fixture_test.go
              (snaps.MatchSnapshot(t, name, actualOutput) golden-file
              convention, one snapshot per named program).
*/
package eval

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/akashmaji946/microscala/parser"
)

var goldenPrograms = []struct {
	name string
	src  string
}{
	{
		name: "factorial_of_five",
		src: `object Test {
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
}`,
	},
	{
		// sum uses a single trailing return, not an early return inside
		// the if: spec.md §4.2's functionDef production only allows
		// `return` as the last statement of the body.
		name: "list_building_and_traversal",
		src: `object Test {
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
    println(sum(1 :: 2 :: 3 :: Nil));
  }
}`,
	},
}

// TestEval_GoldenPrograms snapshots stdout for a handful of
// representative MicroScala programs, the way the pack's fixture test
// pins per-script output.
func TestEval_GoldenPrograms(t *testing.T) {
	for _, tc := range goldenPrograms {
		t.Run(tc.name, func(t *testing.T) {
			prog := parser.NewParser(tc.src).Parse()
			var out bytes.Buffer
			NewEvaluator(&out).Run(prog)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", tc.name), out.String())
		})
	}
}
