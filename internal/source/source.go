package source

import (
	_ "embed"
	"fmt"
	"io"
	"os"
)

// Stdin is the path argument that selects standard input.
const Stdin = "-"

// Sample is the built-in access log analyzed when no input is given.
//
//go:embed sample.log
var Sample string

// Load returns the full text to analyze. An empty path selects Sample,
// Stdin reads all of stdin, and anything else is read as a file.
func Load(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return Sample, nil
	case Stdin:
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read log file: %w", err)
		}
		return string(raw), nil
	}
}
