// Tincture - Accessible colour contrast checking
//
// Tincture measures WCAG contrast between colour pairs, builds contrast
// matrices for palettes and suggests the nearest accessible foreground for
// pairs that fail.
package main

import (
	"os"

	"github.com/jmylchreest/tincture/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
