package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rpreston/whetstone"
)

var (
	evalVars   []string
	evalLocale string
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Parse, assign variables, evaluate, and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable assignment name=value (repeatable)")
	evalCmd.Flags().StringVar(&evalLocale, "locale", "en", "BCP 47 locale tag used to format the printed result")
}

func runEval(cmd *cobra.Command, args []string) error {
	p, err := buildParser(cmd)
	if err != nil {
		return err
	}

	expr, err := p.Parse(args[0])
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("kind")

	for _, assignment := range evalVars {
		name, raw, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("invalid --var %q, want name=value", assignment)
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid --var %q: %w", assignment, err)
		}
		v, err := expr.Variable(name)
		if err != nil {
			return err
		}

		var val whetstone.Value
		switch kind {
		case "float32":
			val = whetstone.Float32(float32(f))
		default:
			val = whetstone.Float64(f)
		}
		if err := v.Set(val); err != nil {
			return err
		}
	}

	result, err := expr.Evaluate()
	if err != nil {
		return err
	}

	tag, err := language.Parse(evalLocale)
	if err != nil {
		return fmt.Errorf("invalid --locale %q: %w", evalLocale, err)
	}

	f, err := strconv.ParseFloat(result.String(), 64)
	if err != nil {
		// Not every value kind stringifies as a plain float (custom
		// kinds might not); fall back to the raw string.
		fmt.Println(result.String())
		return nil
	}

	message.NewPrinter(tag).Printf("%.10g\n", f)
	return nil
}
