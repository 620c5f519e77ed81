package atparser

import (
	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// parseGeneralEnclosed is the forward-compatibility fallback:
// either a function call, or a simple block whose first significant child
// is an ident. Both are parsed under NoGrammar — their tokens are
// preserved verbatim rather than interpreted. Returns errIgnore, without
// logging anything, if the current token is neither shape. A "(" whose
// first significant child is not an ident is consumed before errIgnore
// is returned; the cursor is not restored on that path.
func parseGeneralEnclosed(cur *csstoken.Cursor) (cssast.GeneralEnclosed, error) {
	t := cur.Peek()
	switch t.Kind {
	case csstoken.TFunction:
		cur.Bump()
		args := cssvalue.ParseComponentValuesUntil(cur, csstoken.TRParen)
		hi := cur.LastEndPos()
		if cur.Eat(csstoken.TRParen) {
			hi = cur.LastEndPos()
		}
		return cssast.GeneralEnclosed{
			Span:         csstoken.Span{Lo: t.Span.Lo, Hi: hi},
			FunctionName: t.Text,
			Tokens:       args,
		}, nil
	case csstoken.TLParen:
		cur.Bump()
		cur.SkipWS()
		if !cur.Is(csstoken.TIdent) {
			return cssast.GeneralEnclosed{}, errIgnore
		}
		inner := cssvalue.ParseComponentValuesUntil(cur, csstoken.TRParen)
		hi := cur.LastEndPos()
		if cur.Eat(csstoken.TRParen) {
			hi = cur.LastEndPos()
		}
		return cssast.GeneralEnclosed{
			Span:   csstoken.Span{Lo: t.Span.Lo, Hi: hi},
			Tokens: inner,
		}, nil
	default:
		return cssast.GeneralEnclosed{}, errIgnore
	}
}

// mustGeneralEnclosed is parseGeneralEnclosed with a logged diagnostic on
// failure, for call sites where general-enclosed is the last alternative
// in a <*-in-parens> chain rather than an optional try.
func mustGeneralEnclosed(cur *csstoken.Cursor, log *diag.Log) (cssast.GeneralEnclosed, bool) {
	ge, err := parseGeneralEnclosed(cur)
	if err == nil {
		return ge, true
	}
	t := cur.Peek()
	log.ExpectedButFound(tokenRange(t), "a feature, parenthesized condition, or general-enclosed form", t.Kind.String())
	return cssast.GeneralEnclosed{}, false
}

func tokenRange(t csstoken.Token) diag.Range {
	return diag.Range{Loc: diag.Loc{Start: t.Span.Lo}, Len: t.Span.Hi - t.Span.Lo}
}
