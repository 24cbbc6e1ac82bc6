// Command whetstone is a CLI host over the whetstone expression
// engine: parse, evaluate, and inspect the built-in grammars.
package main

import (
	"fmt"
	"os"

	"github.com/rpreston/whetstone/cmd/whetstone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
