package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

var pagePseudos = map[string]bool{"left": true, "right": true, "first": true, "blank": true}

// parsePageSelector implements <page-selector>: an optional
// page-type ident followed by zero or more ":pseudo" items.
func parsePageSelector(cur *csstoken.Cursor, log *diag.Log) cssast.PageSelector {
	lo := cur.Peek().Span.Lo
	var sel cssast.PageSelector

	if cur.Is(csstoken.TIdent) {
		t := cur.Bump()
		v := t.Text
		sel.Type = &v
		sel.TypeSpan = t.Span
	}

	for cur.Is(csstoken.TColon) {
		save := cur.Save()
		cur.Bump()
		if !cur.Is(csstoken.TIdent) {
			cur.Restore(save)
			break
		}
		t := cur.Bump()
		if !pagePseudos[strings.ToLower(t.Text)] {
			log.Add(diag.KindInvalidPagePseudo, tokenRange(t), "\""+t.Text+"\" is not a valid page pseudo-class")
			continue
		}
		sel.Pseudos = append(sel.Pseudos, strings.ToLower(t.Text))
		sel.RawPseudo = append(sel.RawPseudo, t.Text)
	}

	sel.Span = csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}
	return sel
}

// ParsePagePrelude implements @page's prelude: an optional
// <page-selector-list>, comma-separated.
func ParsePagePrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.PagePrelude, error) {
	cur.SkipWS()
	if cur.Is(csstoken.TLBrace) || cur.Peek().Kind == csstoken.TEOF {
		return nil, nil
	}

	lo := cur.Peek().Span.Lo
	var selectors []cssast.PageSelector
	for {
		cur.SkipWS()
		selectors = append(selectors, parsePageSelector(cur, log))
		cur.SkipWS()
		if cur.Eat(csstoken.TDelimComma) {
			continue
		}
		break
	}
	return &cssast.PagePrelude{Span: csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}, Selectors: selectors}, nil
}
