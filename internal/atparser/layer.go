package atparser

import (
	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

// parseLayerName implements <layer-name>: one or more
// "."-separated idents. If the first token isn't an ident, one token is
// still consumed to guarantee forward progress, and an empty segment list is returned.
func parseLayerName(cur *csstoken.Cursor) cssast.LayerName {
	lo := cur.Peek().Span.Lo
	if !cur.Is(csstoken.TIdent) {
		if cur.Peek().Kind != csstoken.TEOF {
			cur.Bump()
		}
		return cssast.LayerName{Span: csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}}
	}

	first := cur.Bump()
	segs := []string{first.Text}
	hi := first.Span.Hi

	for cur.Is(csstoken.TDot) {
		save := cur.Save()
		cur.Bump()
		if !cur.Is(csstoken.TIdent) {
			cur.Restore(save)
			break
		}
		t := cur.Bump()
		segs = append(segs, t.Text)
		hi = t.Span.Hi
	}

	return cssast.LayerName{Span: csstoken.Span{Lo: lo, Hi: hi}, Segments: segs}
}

// ParseLayerPrelude covers all three @layer prelude shapes: a missing prelude (anonymous
// layer), a single name, or a comma-separated list.
func ParseLayerPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.LayerPrelude, error) {
	cur.SkipWS()
	if cur.Is(csstoken.TLBrace) || cur.Is(csstoken.TSemicolon) || cur.Peek().Kind == csstoken.TEOF {
		return nil, nil
	}

	lo := cur.Peek().Span.Lo
	var names []cssast.LayerName
	for {
		cur.SkipWS()
		names = append(names, parseLayerName(cur))
		cur.SkipWS()
		if cur.Eat(csstoken.TDelimComma) {
			continue
		}
		break
	}
	return &cssast.LayerPrelude{Span: csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}, Names: names}, nil
}
