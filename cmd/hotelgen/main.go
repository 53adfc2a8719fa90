// Package main is the entry point for hotelgen.
package main

import (
	"fmt"
	"os"

	"github.com/hotelops/hotelgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
