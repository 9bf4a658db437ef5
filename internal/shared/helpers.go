// Package shared provides common utility functions used across multiple
// packages in the composer-sync codebase.
package shared

import (
	"fmt"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// QuoteArg single-quotes a shell argument, escaping embedded quotes, so
// dependency names can be passed to the resolver safely.
func QuoteArg(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

// HasPathPrefix reports whether path is dir itself or lies underneath it.
// Comparison is purely lexical over slash-separated repo paths.
func HasPathPrefix(path string, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, "/")+"/")
}
