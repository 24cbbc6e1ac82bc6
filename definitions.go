package whetstone

import (
	"github.com/tidwall/sjson"

	"github.com/rpreston/whetstone/internal/syntax"
	"github.com/rpreston/whetstone/internal/syntax/grammar"
)

// StandardDefinition returns a fresh, independently mutable copy of the
// built-in Standard syntax.Definition, for hosts that want to tweak one
// category (e.g. loosen a may_follow list) before building a Parser
// with WithDefinition.
func StandardDefinition() (*syntax.Definition, error) {
	def, err := grammar.Standard()
	if err != nil {
		return nil, err
	}
	return def.Clone(), nil
}

// LaTeXDefinition returns a fresh, independently mutable copy of the
// built-in LaTeX syntax.Definition.
func LaTeXDefinition() (*syntax.Definition, error) {
	def, err := grammar.LaTeX()
	if err != nil {
		return nil, err
	}
	return def.Clone(), nil
}

// StandardJSON returns the raw embedded Standard syntax definition
// text, for hosts that prefer to patch the JSON directly rather than
// go through Definition/Clone.
func StandardJSON() []byte { return grammar.StandardJSON() }

// LaTeXJSON returns the raw embedded LaTeX syntax definition text.
func LaTeXJSON() []byte { return grammar.LaTeXJSON() }

// PatchDefinitionJSON sets the value at path (gjson/sjson dot-path
// syntax, e.g. "Operators.default_precedence") within raw rule
// collection JSON and returns the patched document, without requiring
// a round trip through the Definition struct.
func PatchDefinitionJSON(raw []byte, path string, v any) ([]byte, error) {
	return sjson.SetBytes(raw, path, v)
}
