package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// UsageExitf writes the message followed by usage to stderr and exits with
// code 2, the conventional status for command-line misuse.
func UsageExitf(usage func(io.Writer), format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	if usage != nil {
		usage(os.Stderr)
	}
	os.Exit(2)
}
