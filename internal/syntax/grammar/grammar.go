// Package grammar embeds the two built-in rule collection definitions
// named in spec.md §6.2, preserving the original crate's
// syntax/json/standard.json and latex.json naming.
package grammar

import (
	_ "embed"

	"github.com/rpreston/whetstone/internal/syntax"
)

//go:embed standard.json
var standardJSON []byte

//go:embed latex.json
var latexJSON []byte

// StandardJSON returns the raw embedded Standard syntax definition.
func StandardJSON() []byte { return standardJSON }

// LaTeXJSON returns the raw embedded LaTeX syntax definition.
func LaTeXJSON() []byte { return latexJSON }

// Standard parses and returns the built-in Standard syntax.Definition.
func Standard() (*syntax.Definition, error) {
	return syntax.ParseDefinitionJSON(standardJSON)
}

// LaTeX parses and returns the built-in LaTeX syntax.Definition.
func LaTeX() (*syntax.Definition, error) {
	return syntax.ParseDefinitionJSON(latexJSON)
}
