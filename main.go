// main package for the flowlint command-line tool
// Package main is the entry point for the flowlint CLI.
package main

import "flowlint.dev/pkg/flowlint/cmd"

func main() {
	cmd.Execute()
}
