// Command ctaudit reports conditional branches in the compiled
// ctmask primitives.
//
// Build a binary that links the primitives, for example the
// package's test binary, and audit it:
//
//	go test -c -o ctmask.test github.com/ericlagergren/ctmask
//	ctaudit scan ctmask.test
//
// ctaudit exits with a non-zero status if it finds a conditional
// branch.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ctaudit:", err)
		os.Exit(1)
	}
}
