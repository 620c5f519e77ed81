package atparser

import (
	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseNamespacePrelude implements @namespace's prelude: an
// optional <ident> prefix then a <string|url|url()>.
func ParseNamespacePrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.NamespacePrelude, error) {
	cur.SkipWS()
	lo := cur.Peek().Span.Lo

	var prefix *string
	var prefixSpan csstoken.Span
	if cur.Is(csstoken.TIdent) {
		t := cur.Bump()
		v := t.Text
		prefix = &v
		prefixSpan = t.Span
		cur.SkipWS()
	}

	text, span, _, ok := cssvalue.ParseURLOrString(cur)
	if !ok {
		log.ExpectedButFound(tokenRange(cur.Peek()), "a string or url()", cur.Peek().Kind.String())
		return nil, errRecovered
	}

	return &cssast.NamespacePrelude{
		Span:       csstoken.Span{Lo: lo, Hi: cur.LastEndPos()},
		Prefix:     prefix,
		PrefixSpan: prefixSpan,
		URI:        text,
		URISpan:    span,
	}, nil
}
