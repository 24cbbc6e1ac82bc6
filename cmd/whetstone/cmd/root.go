package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "whetstone",
	Short: "Parse and evaluate single-line mathematical expressions",
	Long: `whetstone parses and evaluates mathematical expression text against
a pluggable surface grammar.

Two grammars ship built in: Standard ("2x + sin(pi/4)") and LaTeX
("2x + \\sin\\left(\\pi \\div 4\\right)"). Custom grammars can be loaded from a JSON
rule collection definition.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().String("syntax", "standard", "surface grammar: standard|latex")
	rootCmd.PersistentFlags().String("kind", "float64", "value kind: float32|float64")
	rootCmd.PersistentFlags().String("definition", "", "path to a custom JSON rule collection definition")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
