package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expr>",
	Short: "Parse an expression and print its postfix program and variables",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := buildParser(cmd)
	if err != nil {
		return err
	}

	expr, err := p.Parse(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("postfix: %s\n", expr.String())
	if vars := expr.Variables(); len(vars) > 0 {
		fmt.Printf("variables: %s\n", strings.Join(vars, ", "))
	} else {
		fmt.Println("variables: (none)")
	}
	return nil
}
