package atparser

import (
	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseSimpleBlock consumes a brace-delimited block and interprets its
// contents under grammar. Returns
// errIgnore if the cursor isn't on "{"; errRecovered if the block's
// closing "}" was never found.
func ParseSimpleBlock(cur *csstoken.Cursor, grammar cssast.BlockGrammar, ctx ParseContext, log *diag.Log, cfg Config) (cssast.SimpleBlock, error) {
	if !cur.Is(csstoken.TLBrace) {
		return cssast.SimpleBlock{}, errIgnore
	}
	open := cur.Bump()
	block := cssast.SimpleBlock{Grammar: grammar}

	switch grammar {
	case cssast.GrammarStylesheet:
		block.Rules = ParseStylesheetContents(cur, ctx, log, cfg)
	case cssast.GrammarStyleBlock:
		block.Rules = ParseStyleBlockContents(cur, ctx, log, cfg)
	case cssast.GrammarDeclarationList:
		block.Declarations, block.Rules = ParseDeclarationListContents(cur, ctx, log, cfg)
	case cssast.GrammarDeclarationValue:
		block.Value = cssvalue.ParseComponentValuesUntil(cur, csstoken.TRBrace)
	case cssast.GrammarKeyframeList:
		block.KeyframeBlocks = ParseKeyframesBlockContents(cur, ctx, log, cfg)
	default: // NoGrammar
		block.Value = cssvalue.ParseComponentValuesUntil(cur, csstoken.TRBrace)
	}

	hi := cur.LastEndPos()
	if !cur.Eat(csstoken.TRBrace) {
		block.Span = csstoken.Span{Lo: open.Span.Lo, Hi: hi}
		return block, errRecovered
	}
	block.Span = csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()}
	return block, nil
}

// ParseDeclarationListContents implements the DeclarationList grammar:
// declarations only, separated by semicolons. The two documented
// exceptions are @page and @font-feature-values: when ctx.InPageAtRule or
// ctx.InFontFeatureValuesAtRule is set, a nested at-keyword is parsed as
// an at-rule (a page margin box, or a sub-rule such as @swash) and
// returned in rules rather than dropped, since those grammars admit both
// declarations and nested at-rules.
func ParseDeclarationListContents(cur *csstoken.Cursor, ctx ParseContext, log *diag.Log, cfg Config) ([]cssast.Declaration, []cssast.Rule) {
	var decls []cssast.Declaration
	var rules []cssast.Rule
	for {
		cur.SkipWS()
		for cur.Eat(csstoken.TSemicolon) {
			cur.SkipWS()
		}
		if cur.Is(csstoken.TRBrace) || cur.Peek().Kind == csstoken.TEOF {
			break
		}
		if (ctx.InPageAtRule || ctx.InFontFeatureValuesAtRule) && cur.Is(csstoken.TAtKeyword) {
			ar := ParseAtRule(cur, ctx, log, cfg)
			rules = append(rules, cssast.Rule{Span: ar.Span, Data: &cssast.RAtRule{AtRule: ar}})
			continue
		}
		decl, ok := cssvalue.ParseDeclaration(cur, log)
		if !ok {
			cssvalue.SkipComponentValuesUntilAny(cur, csstoken.TSemicolon, csstoken.TRBrace)
			continue
		}
		decls = append(decls, decl)
	}
	return decls, rules
}

// ParseStylesheetContents implements the Stylesheet grammar: a sequence
// of at-rules and qualified rules.
func ParseStylesheetContents(cur *csstoken.Cursor, ctx ParseContext, log *diag.Log, cfg Config) []cssast.Rule {
	var rules []cssast.Rule
	for {
		cur.SkipWS()
		for cur.Eat(csstoken.TSemicolon) {
			cur.SkipWS()
		}
		if cur.Is(csstoken.TRBrace) || cur.Peek().Kind == csstoken.TEOF {
			break
		}
		if cur.Is(csstoken.TAtKeyword) {
			ar := ParseAtRule(cur, ctx, log, cfg)
			rules = append(rules, cssast.Rule{Span: ar.Span, Data: &cssast.RAtRule{AtRule: ar}})
			continue
		}
		rules = append(rules, parseQualifiedOrBad(cur, ctx, log, cfg))
	}
	return rules
}

// ParseStyleBlockContents implements the StyleBlock grammar: declarations
// interleaved with nested at-rules and qualified (nested) rules.
func ParseStyleBlockContents(cur *csstoken.Cursor, ctx ParseContext, log *diag.Log, cfg Config) []cssast.Rule {
	var rules []cssast.Rule
	for {
		cur.SkipWS()
		for cur.Eat(csstoken.TSemicolon) {
			cur.SkipWS()
		}
		if cur.Is(csstoken.TRBrace) || cur.Peek().Kind == csstoken.TEOF {
			break
		}
		if cur.Is(csstoken.TAtKeyword) {
			ar := ParseAtRule(cur, ctx, log, cfg)
			rules = append(rules, cssast.Rule{Span: ar.Span, Data: &cssast.RAtRule{AtRule: ar}})
			continue
		}
		if cur.Is(csstoken.TIdent) {
			save := cur.Save()
			mark := log.Mark()
			decl, ok := cssvalue.ParseDeclaration(cur, log)
			if ok {
				cur.SkipWS()
				if cur.Is(csstoken.TSemicolon) || cur.Is(csstoken.TRBrace) || cur.Peek().Kind == csstoken.TEOF {
					cur.Eat(csstoken.TSemicolon)
					rules = append(rules, cssast.Rule{Span: decl.Span, Data: &cssast.RDeclaration{Declaration: decl}})
					continue
				}
			}
			cur.Restore(save)
			log.Truncate(mark)
		}
		rules = append(rules, parseQualifiedOrBad(cur, ctx, log, cfg))
	}
	return rules
}

func parseQualifiedOrBad(cur *csstoken.Cursor, ctx ParseContext, log *diag.Log, cfg Config) cssast.Rule {
	prelude := cssvalue.ParseComponentValuesUntilAny(cur, csstoken.TLBrace, csstoken.TSemicolon)
	if cur.Is(csstoken.TLBrace) {
		block, err := ParseSimpleBlock(cur, cssast.GrammarStyleBlock, ctx, log, cfg)
		if err != nil && err != errRecovered {
			log.ExpectedButFound(tokenRange(cur.Peek()), "\"}\"", cur.Peek().Kind.String())
		}
		return cssast.Rule{Span: block.Span, Data: &cssast.RQualified{Prelude: prelude, Block: block}}
	}
	log.ExpectedButFound(tokenRange(cur.Peek()), "\"{\"", cur.Peek().Kind.String())
	cur.Eat(csstoken.TSemicolon)
	return cssast.Rule{Data: &cssast.RBadDeclaration{Tokens: prelude}}
}
