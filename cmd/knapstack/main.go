// Command knapstack solves a knapsack instance file and prints the optimal
// selection together with the time the solve took.
//
// Usage:
//
//	knapstack solve instance.txt
//	knapstack solve --variant unbounded --algorithm dp instance.yaml
package main

import (
	"fmt"
	"os"
)

// Version is overridden at build time with -ldflags "-X main.Version=…".
var Version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
