// Where: internal/app/output.go
// What: Shared output helpers for command handlers.
// Why: Keep error reporting uniform across commands.
package app

import (
	"fmt"
	"io"
)

// exitWithError prints an error and returns the failure exit code.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
