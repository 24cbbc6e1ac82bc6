package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpreston/whetstone"
)

func buildParser(cmd *cobra.Command) (*whetstone.Parser, error) {
	syntaxName, _ := cmd.Flags().GetString("syntax")
	kind, _ := cmd.Flags().GetString("kind")
	defPath, _ := cmd.Flags().GetString("definition")

	opts := []whetstone.Option{whetstone.WithValueKind(kind)}

	if defPath != "" {
		raw, err := os.ReadFile(defPath)
		if err != nil {
			return nil, fmt.Errorf("reading definition file: %w", err)
		}
		return whetstone.NewParserFromJSON(raw, opts...)
	}

	switch syntaxName {
	case "latex":
		opts = append(opts, whetstone.WithSyntax(whetstone.LaTeX))
	case "standard", "":
		opts = append(opts, whetstone.WithSyntax(whetstone.Standard))
	default:
		return nil, fmt.Errorf("unknown syntax %q (want standard|latex)", syntaxName)
	}
	return whetstone.NewParser(opts...)
}
