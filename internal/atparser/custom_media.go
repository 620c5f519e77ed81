package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseCustomMediaPrelude implements @custom-media's prelude:
// an <extension-name> (dashed-ident) then either a boolean ident or a
// full <media-query-list>. No terminator is enforced here.
func ParseCustomMediaPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.CustomMediaPrelude, error) {
	cur.SkipWS()
	name, nameSpan, ok := cssvalue.ParseDashedIdent(cur, log)
	if !ok {
		return nil, errRecovered
	}
	cur.SkipWS()

	if cur.Is(csstoken.TIdent) {
		lower := strings.ToLower(cur.Peek().Text)
		if lower == "true" || lower == "false" {
			t := cur.Bump()
			b := lower == "true"
			return &cssast.CustomMediaPrelude{
				Span:      csstoken.Span{Lo: nameSpan.Lo, Hi: t.Span.Hi},
				Name:      name,
				NameSpan:  nameSpan,
				BoolValue: &b,
			}, nil
		}
	}

	mql := ParseMediaQueryList(cur, log, csstoken.TSemicolon)
	return &cssast.CustomMediaPrelude{
		Span:     csstoken.Span{Lo: nameSpan.Lo, Hi: cur.LastEndPos()},
		Name:     name,
		NameSpan: nameSpan,
		Queries:  mql,
	}, nil
}
