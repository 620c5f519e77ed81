package atparser

import "github.com/cssat/atrules/internal/cssast"

// ParseContext is the small, copyable record threaded through every
// scoped sub-parser. It is always passed and returned by value: a callee
// that wants to change it for a nested scope takes a copy, mutates the
// copy, and the caller's copy is untouched on return — the Go equivalent
// of automatic restoration at scope exit.
type ParseContext struct {
	InPageAtRule              bool
	InFontFeatureValuesAtRule bool
	InContainerAtRule         bool
	InImportAtRule            bool
	InSupportsAtRule          bool
	BlockContentsGrammar      cssast.BlockGrammar
}

// RootContext is the context a top-level stylesheet parse starts from.
func RootContext() ParseContext {
	return ParseContext{BlockContentsGrammar: cssast.GrammarStylesheet}
}

func (c ParseContext) withGrammar(g cssast.BlockGrammar) ParseContext {
	c.BlockContentsGrammar = g
	return c
}

func (c ParseContext) withPageAtRule() ParseContext {
	c.InPageAtRule = true
	return c
}

func (c ParseContext) withFontFeatureValuesAtRule() ParseContext {
	c.InFontFeatureValuesAtRule = true
	return c
}

func (c ParseContext) withContainerAtRule() ParseContext {
	c.InContainerAtRule = true
	return c
}

func (c ParseContext) withImportAtRule() ParseContext {
	c.InImportAtRule = true
	return c
}

func (c ParseContext) withSupportsAtRule() ParseContext {
	c.InSupportsAtRule = true
	return c
}
