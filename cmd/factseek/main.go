// Package main provides the factseek CLI, a brute-force scanner for
// solutions to the Permutation–Factorial (nPr = c!) and Binomial–Factorial
// (C(n,r) = c!) relations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
