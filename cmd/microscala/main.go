/*
File    : microscala/cmd/microscala/main.go
Derived from: github.com/akashmaji946/go-mix/main/main.go (color
              conventions redColor/cyanColor, executeFileWithRecovery's
              defer/recover → os.Exit(1) shape), restructured onto
              github.com/spf13/cobra the way
              _examples/CWBudde-go-dws and _examples/aledsdavies-opal
              build their CLIs, and the "Input:"/"Output:" banner of
              _examples/original_source/MicroInterp.py's __init__.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/microscala/diagnostics"
	"github.com/akashmaji946/microscala/eval"
	"github.com/akashmaji946/microscala/parser"
	"github.com/akashmaji946/microscala/source"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:   "microscala [SOURCE_FILE]",
		Short: "MicroScala - a tiny statically-typed Scala-like interpreted language",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInterpreter,
	}
	root.Flags().BoolVarP(&debug, "debug", "d", false, "accepted for compatibility; has no semantic effect (spec.md §6)")

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] %v\n", err)
		os.Exit(1)
	}
}

func runInterpreter(cmd *cobra.Command, args []string) error {
	fileName := "./Test1.scala"
	if len(args) == 1 {
		fileName = args[0]
	}

	src, err := source.Read(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	executeWithRecovery(src)
	return nil
}

// executeWithRecovery mirrors the teacher's executeFileWithRecovery:
// parsing and evaluation run under a deferred recover so a diagnostic
// raised anywhere in the pipeline is rendered and turned into a
// nonzero exit rather than an unhandled panic (spec.md §9's
// nonzero-exit redesign).
func executeWithRecovery(src string) {
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*diagnostics.Diagnostic); ok {
				diagnostics.Render(os.Stderr, d)
			} else {
				redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", r)
			}
			os.Exit(1)
		}
	}()

	// spec.md §6: the Input: banner unconditionally echoes each fully-
	// lexed source line, regardless of -d/--debug, which carries no
	// semantic effect beyond its own presence.
	cyanColor.Println("\nInput:")
	fmt.Println(src)

	prog := parser.NewParser(src).Parse()

	cyanColor.Println("\nOutput:")
	eval.NewEvaluator(os.Stdout).Run(prog)
	fmt.Println()
}
