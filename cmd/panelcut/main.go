// Command panelcut is the CLI front end for the panel-cutting optimizer:
// optimize a request, render a result to SVG, estimate purchasing needs,
// and manage the on-disk preset library.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
