package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseDocumentPrelude implements @document's / -moz-document's prelude
//: a comma-separated list of url()/string or function
// matchers (url-prefix(), domain(), regexp(), or any other function).
func ParseDocumentPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.DocumentPrelude, error) {
	cur.SkipWS()
	lo := cur.Peek().Span.Lo

	var matchers []cssast.DocumentMatcher
	for {
		cur.SkipWS()
		m, ok := parseDocumentMatcher(cur, log)
		if !ok {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a url() or matcher function", cur.Peek().Kind.String())
			cssvalue.SkipComponentValuesUntilAny(cur, csstoken.TDelimComma, csstoken.TLBrace, csstoken.TSemicolon)
		} else {
			matchers = append(matchers, m)
		}
		cur.SkipWS()
		if cur.Eat(csstoken.TDelimComma) {
			continue
		}
		break
	}

	if len(matchers) == 0 {
		return nil, errRecovered
	}
	return &cssast.DocumentPrelude{
		Span:     csstoken.Span{Lo: lo, Hi: cur.LastEndPos()},
		Matchers: matchers,
	}, nil
}

func parseDocumentMatcher(cur *csstoken.Cursor, log *diag.Log) (cssast.DocumentMatcher, bool) {
	t := cur.Peek()
	switch t.Kind {
	case csstoken.TURL:
		cur.Bump()
		return cssast.DocumentMatcher{Span: t.Span, Kind: cssast.DocumentMatcherURL, Arg: t.Text}, true
	case csstoken.TString:
		cur.Bump()
		return cssast.DocumentMatcher{Span: t.Span, Kind: cssast.DocumentMatcherURL, Arg: t.Text}, true
	case csstoken.TFunction:
		cur.Bump()
		cur.SkipWS()
		var arg string
		if s, _, ok := cssvalue.ParseString(cur); ok {
			arg = s
		} else if cur.Is(csstoken.TURL) {
			tk := cur.Bump()
			arg = tk.Text
		}
		cur.SkipWS()
		hi := cur.LastEndPos()
		if cur.Eat(csstoken.TRParen) {
			hi = cur.LastEndPos()
		} else {
			log.ExpectedButFound(tokenRange(cur.Peek()), "\")\"", cur.Peek().Kind.String())
		}
		var kind cssast.DocumentMatcherKind
		switch strings.ToLower(t.Text) {
		case "url-prefix":
			kind = cssast.DocumentMatcherURLPrefix
		case "domain":
			kind = cssast.DocumentMatcherDomain
		case "regexp":
			kind = cssast.DocumentMatcherRegexp
		default:
			kind = cssast.DocumentMatcherFunction
		}
		return cssast.DocumentMatcher{
			Span: csstoken.Span{Lo: t.Span.Lo, Hi: hi},
			Kind: kind,
			Name: t.Text,
			Arg:  arg,
		}, true
	default:
		return cssast.DocumentMatcher{}, false
	}
}
