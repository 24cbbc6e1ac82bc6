package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/match"
	"github.com/tidwall/pretty"

	"github.com/rpreston/whetstone"
)

var grammarPretty bool

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Inspect the built-in grammars and registered bindings",
}

var grammarShowCmd = &cobra.Command{
	Use:       "show <standard|latex>",
	Short:     "Dump the embedded grammar JSON",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"standard", "latex"},
	RunE:      runGrammarShow,
}

var grammarBindingsFilter string

var grammarBindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List registered bindings for a value kind",
	RunE:  runGrammarBindings,
}

func init() {
	rootCmd.AddCommand(grammarCmd)
	grammarCmd.AddCommand(grammarShowCmd)
	grammarCmd.AddCommand(grammarBindingsCmd)

	grammarShowCmd.Flags().BoolVar(&grammarPretty, "pretty", false, "reformat the embedded JSON for readability")
	grammarBindingsCmd.Flags().StringVar(&grammarBindingsFilter, "filter", "", "glob pattern to filter binding labels, e.g. 'Hyp*'")
}

func runGrammarShow(cmd *cobra.Command, args []string) error {
	var raw []byte
	switch args[0] {
	case "standard":
		raw = whetstone.StandardJSON()
	case "latex":
		raw = whetstone.LaTeXJSON()
	default:
		return fmt.Errorf("unknown grammar %q (want standard|latex)", args[0])
	}

	if grammarPretty {
		raw = pretty.Pretty(raw)
	}
	fmt.Print(string(raw))
	return nil
}

func runGrammarBindings(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	for _, b := range whetstone.ListBindings(kind) {
		if grammarBindingsFilter != "" && !match.Match(b.Label, grammarBindingsFilter) {
			continue
		}
		fmt.Printf("%-20s arity %d\n", b.Label, b.Arity)
	}
	return nil
}
