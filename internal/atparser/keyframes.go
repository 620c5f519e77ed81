package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseKeyframesPrelude implements <keyframes-name>. The :local(..)/:global(..) and
// "local <name>"/"global <name>" spellings only apply when cssModules is
// enabled.
func ParseKeyframesPrelude(cur *csstoken.Cursor, log *diag.Log, cssModules bool) (*cssast.KeyframesPrelude, error) {
	cur.SkipWS()
	t := cur.Peek()

	if t.Kind == csstoken.TString {
		cur.Bump()
		return &cssast.KeyframesPrelude{
			Span: t.Span,
			Name: cssast.KeyframesName{Span: t.Span, Kind: cssast.KeyframesNameString, Value: t.Text},
		}, nil
	}

	if cssModules {
		if t.Kind == csstoken.TColon {
			save := cur.Save()
			cur.Bump()
			ft := cur.Peek()
			if ft.Kind == csstoken.TFunction {
				lower := strings.ToLower(ft.Text)
				if lower == "local" || lower == "global" {
					kind := cssast.KeyframesNameLocal
					if lower == "global" {
						kind = cssast.KeyframesNameGlobal
					}
					cur.Bump()
					cur.SkipWS()
					name := ""
					if cur.Is(csstoken.TIdent) {
						name = cur.Bump().Text
					}
					cur.SkipWS()
					cur.Eat(csstoken.TRParen)
					return &cssast.KeyframesPrelude{
						Span: csstoken.Span{Lo: t.Span.Lo, Hi: cur.LastEndPos()},
						Name: cssast.KeyframesName{Span: csstoken.Span{Lo: t.Span.Lo, Hi: cur.LastEndPos()}, Kind: kind, Value: name},
					}, nil
				}
			}
			cur.Restore(save)
		}
		if t.Kind == csstoken.TIdent {
			lower := strings.ToLower(t.Text)
			if lower == "local" || lower == "global" {
				kind := cssast.KeyframesNameLocal
				if lower == "global" {
					kind = cssast.KeyframesNameGlobal
				}
				cur.Bump()
				cur.SkipWS()
				if !cur.Is(csstoken.TIdent) {
					log.ExpectedButFound(tokenRange(cur.Peek()), "a keyframes name", cur.Peek().Kind.String())
					return nil, errRecovered
				}
				name := cur.Bump().Text
				return &cssast.KeyframesPrelude{
					Span: csstoken.Span{Lo: t.Span.Lo, Hi: cur.LastEndPos()},
					Name: cssast.KeyframesName{Span: csstoken.Span{Lo: t.Span.Lo, Hi: cur.LastEndPos()}, Kind: kind, Value: name},
				}, nil
			}
		}
	}

	ci, ok := cssvalue.ParseCustomIdent(cur, log, "none")
	if !ok {
		return nil, errRecovered
	}
	return &cssast.KeyframesPrelude{
		Span: ci.Span,
		Name: cssast.KeyframesName{Span: ci.Span, Kind: cssast.KeyframesNameCustomIdent, Value: ci.Raw},
	}, nil
}

// parseKeyframeSelector implements <keyframe-selector>.
func parseKeyframeSelector(cur *csstoken.Cursor, log *diag.Log) (cssast.KeyframeSelector, bool) {
	t := cur.Peek()
	if t.Kind == csstoken.TIdent {
		lower := strings.ToLower(t.Text)
		if lower == "from" || lower == "to" {
			cur.Bump()
			kind := cssast.KeyframeSelectorFrom
			if lower == "to" {
				kind = cssast.KeyframeSelectorTo
			}
			return cssast.KeyframeSelector{Span: t.Span, Kind: kind}, true
		}
		log.ExpectedButFound(tokenRange(t), "\"from\", \"to\", or a percentage", "identifier \""+t.Text+"\"")
		return cssast.KeyframeSelector{}, false
	}
	if t.Kind == csstoken.TPercentage {
		cur.Bump()
		return cssast.KeyframeSelector{Span: t.Span, Kind: cssast.KeyframeSelectorPercentage, Percentage: t.Text}, true
	}
	log.ExpectedButFound(tokenRange(t), "\"from\", \"to\", or a percentage", t.Kind.String())
	return cssast.KeyframeSelector{}, false
}

// ParseKeyframesBlockContents implements @keyframes's special-cased block
// grammar: a whitespace-separated list of <keyframe-block>s,
// each a comma-separated <keyframe-selector> list followed by a
// DeclarationList simple block.
func ParseKeyframesBlockContents(cur *csstoken.Cursor, ctx ParseContext, log *diag.Log, cfg Config) []cssast.KeyframeBlock {
	var blocks []cssast.KeyframeBlock
	for {
		cur.SkipWS()
		if cur.Is(csstoken.TRBrace) || cur.Peek().Kind == csstoken.TEOF {
			break
		}
		lo := cur.Peek().Span.Lo
		var selectors []cssast.KeyframeSelector
		ok := true
		for {
			cur.SkipWS()
			sel, selOK := parseKeyframeSelector(cur, log)
			if !selOK {
				ok = false
				cssvalue.SkipComponentValuesUntilAny(cur, csstoken.TDelimComma, csstoken.TLBrace, csstoken.TRBrace)
			} else {
				selectors = append(selectors, sel)
			}
			cur.SkipWS()
			if cur.Eat(csstoken.TDelimComma) {
				continue
			}
			break
		}
		if !ok && !cur.Is(csstoken.TLBrace) {
			continue
		}
		cur.SkipWS()
		var decls []cssast.Declaration
		if cur.Eat(csstoken.TLBrace) {
			decls, _ = ParseDeclarationListContents(cur, ctx, log, cfg)
			cur.Eat(csstoken.TRBrace)
		} else {
			log.ExpectedButFound(tokenRange(cur.Peek()), "\"{\"", cur.Peek().Kind.String())
		}
		blocks = append(blocks, cssast.KeyframeBlock{
			Span:           csstoken.Span{Lo: lo, Hi: cur.LastEndPos()},
			Selectors:      selectors,
			Declarations:   decls,
			CloseBraceSpan: csstoken.Span{Lo: cur.LastEndPos(), Hi: cur.LastEndPos()},
		})
	}
	return blocks
}
