// Package main is the entry point for the capres CLI.
package main

import "capres.dev/pkg/capres/cmd"

func main() {
	cmd.Execute()
}
