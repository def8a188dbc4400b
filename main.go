// Command fractalexplorer lives in cmd/fractalexplorer. This stub keeps
// `go run .` at the repository root pointing there.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "fractalexplorer: run `go run ./cmd/fractalexplorer` or install it with `go install ./cmd/fractalexplorer`")
	os.Exit(2)
}
