package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseImportPrelude implements @import's prelude: href, then
// optional layer, then optional supports(...), then optional
// <media-query-list>, strictly in that order.
func ParseImportPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.ImportPrelude, error) {
	cur.SkipWS()
	lo := cur.Peek().Span.Lo

	href, hrefSpan, isURL, ok := cssvalue.ParseURLOrString(cur)
	if !ok {
		log.ExpectedButFound(tokenRange(cur.Peek()), "a string or url()", cur.Peek().Kind.String())
		return nil, errRecovered
	}
	prelude := &cssast.ImportPrelude{Href: href, HrefSpan: hrefSpan, HrefIsURL: isURL}
	cur.SkipWS()

	prelude.Layer = parseImportLayer(cur, log)
	cur.SkipWS()

	prelude.Supports = parseImportSupports(cur, log)
	cur.SkipWS()

	prelude.Media = ParseMediaQueryList(cur, log, csstoken.TSemicolon)
	prelude.Span = csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}
	return prelude, nil
}

// parseImportLayer handles the bare "layer" keyword and the
// "layer(<layer-name>)" function form. A zero- or multiple-argument
// layer() is a non-fatal diagnostic with the layer dropped: layer(...)
// must contain exactly one non-empty layer-name.
func parseImportLayer(cur *csstoken.Cursor, log *diag.Log) *cssast.ImportLayer {
	t := cur.Peek()
	if t.Kind == csstoken.TIdent && strings.EqualFold(t.Text, "layer") {
		cur.Bump()
		return &cssast.ImportLayer{Span: t.Span, Anonymous: true}
	}
	if !(t.Kind == csstoken.TFunction && strings.EqualFold(t.Text, "layer")) {
		return nil
	}
	cur.Bump()
	cur.SkipWS()

	if cur.Is(csstoken.TRParen) {
		log.Add(diag.KindInvalidImportLayer, tokenRange(t), "layer() requires exactly one layer name")
		cur.Bump()
		return nil
	}

	name := parseLayerName(cur)
	cur.SkipWS()
	extra := false
	for cur.Eat(csstoken.TDelimComma) {
		extra = true
		cur.SkipWS()
		parseLayerName(cur)
		cur.SkipWS()
	}
	if !cur.Eat(csstoken.TRParen) {
		log.ExpectedButFound(tokenRange(cur.Peek()), "\")\"", cur.Peek().Kind.String())
	}
	if extra || len(name.Segments) == 0 {
		log.Add(diag.KindInvalidImportLayer, tokenRange(t), "layer() requires exactly one non-empty layer name")
		return nil
	}
	return &cssast.ImportLayer{Span: csstoken.Span{Lo: t.Span.Lo, Hi: cur.LastEndPos()}, Name: &name}
}

// parseImportSupports handles the optional "supports( <supports-condition>
// | <declaration> )" clause.
func parseImportSupports(cur *csstoken.Cursor, log *diag.Log) *cssast.ImportSupports {
	t := cur.Peek()
	if !(t.Kind == csstoken.TFunction && strings.EqualFold(t.Text, "supports")) {
		return nil
	}
	cur.Bump()
	cur.SkipWS()

	sup := &cssast.ImportSupports{}
	if looksLikeDeclaration(cur) {
		decl, ok := cssvalue.ParseDeclaration(cur, log)
		if ok {
			sup.Declaration = &decl
		}
	} else {
		cond, err := parseSupportsCondition(cur, log)
		if err == nil {
			sup.Condition = &cond
		}
	}
	cur.SkipWS()
	hi := cur.LastEndPos()
	if cur.Eat(csstoken.TRParen) {
		hi = cur.LastEndPos()
	} else {
		log.ExpectedButFound(tokenRange(cur.Peek()), "\")\"", cur.Peek().Kind.String())
	}
	sup.Span = csstoken.Span{Lo: t.Span.Lo, Hi: hi}
	return sup
}

// looksLikeDeclaration peeks (without consuming) for "<ident> <ws>* :",
// the shape that disambiguates supports(...)'s <declaration> alternative
// from its <supports-condition> alternative.
func looksLikeDeclaration(cur *csstoken.Cursor) bool {
	if !cur.Is(csstoken.TIdent) {
		return false
	}
	save := cur.Save()
	cur.Bump()
	cur.SkipWS()
	isDecl := cur.Is(csstoken.TColon)
	cur.Restore(save)
	return isDecl
}
