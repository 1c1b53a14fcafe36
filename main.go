// Package main is the entry point for the BoundSmith CLI.
package main

import "boundsmith.dev/pkg/boundsmith/cmd"

func main() {
	cmd.Execute()
}
