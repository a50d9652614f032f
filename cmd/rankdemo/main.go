// Package main provides the entry point for the rankdemo CLI.
package main

import (
	"os"

	"github.com/ranklab/rankcore/cmd/rankdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
