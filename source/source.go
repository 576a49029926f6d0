/*
File    : microscala/source/source.go
Derived from: github.com/akashmaji946/go-mix/main/main.go's runFile
              (os.ReadFile, wrapped as a distinct error for the CLI to
              report under its own "[FILE ERROR]" banner).
*/
package source

import (
	"fmt"
	"os"
)

// Read loads a MicroScala source file from disk. Errors are wrapped so
// the caller can distinguish "file not found" from a diagnostic raised
// during lexing/parsing/evaluation.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file %q: %w", path, err)
	}
	return string(data), nil
}
