package atparser

import (
	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

// ParseCharsetPrelude implements @charset's prelude: exactly one <string>.
func ParseCharsetPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.CharsetPrelude, error) {
	cur.SkipWS()
	t := cur.Peek()
	if t.Kind != csstoken.TString {
		log.Add(diag.KindInvalidCharsetAtRule, tokenRange(t), "@charset must be followed by a single string")
		return nil, errRecovered
	}
	cur.Bump()
	return &cssast.CharsetPrelude{Span: t.Span, Encoding: t.Text, EncodingSpan: t.Span}, nil
}
