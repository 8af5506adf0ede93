// Package main provides the CLI entrypoint for reconcile.
//
// reconcile matches the participant names of a meeting transcript against a
// roster of known people:
//   - run reconciles a session file and prints the match of every name
//   - suggest lists roster entries that could belong to unresolved names
//   - translit shows how names are transliterated between scripts
//   - config init writes the effective configuration as a YAML file
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
