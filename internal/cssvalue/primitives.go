package cssvalue

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

// ParseIdent consumes a single TIdent token.
func ParseIdent(cur *csstoken.Cursor) (text string, span csstoken.Span, ok bool) {
	t := cur.Peek()
	if t.Kind != csstoken.TIdent {
		return "", csstoken.Span{}, false
	}
	cur.Bump()
	return t.Text, t.Span, true
}

// ParseString consumes a single TString token.
func ParseString(cur *csstoken.Cursor) (text string, span csstoken.Span, ok bool) {
	t := cur.Peek()
	if t.Kind != csstoken.TString {
		return "", csstoken.Span{}, false
	}
	cur.Bump()
	return t.Text, t.Span, true
}

// ParseURLOrString consumes a TURL token or a TString token (the two
// spellings <url> accepts per the CSS syntax grammar). Returns whether
// the matched token was a URL-function spelling.
func ParseURLOrString(cur *csstoken.Cursor) (text string, span csstoken.Span, isURL bool, ok bool) {
	t := cur.Peek()
	switch t.Kind {
	case csstoken.TURL:
		cur.Bump()
		return t.Text, t.Span, true, true
	case csstoken.TString:
		cur.Bump()
		return t.Text, t.Span, false, true
	default:
		return "", csstoken.Span{}, false, false
	}
}

// ParseCustomIdent consumes a single ident, rejecting it if it
// case-insensitively matches one of forbidden (e.g. "none" for
// @keyframes).
func ParseCustomIdent(cur *csstoken.Cursor, log *diag.Log, forbidden ...string) (cssast.CustomIdent, bool) {
	t := cur.Peek()
	if t.Kind != csstoken.TIdent {
		log.ExpectedButFound(tokenRange(t), "identifier", t.Kind.String())
		return cssast.CustomIdent{}, false
	}
	for _, f := range forbidden {
		if strings.EqualFold(t.Text, f) {
			log.Add(diag.KindInvalidCustomIdent, tokenRange(t), "\""+t.Text+"\" cannot be used here")
			cur.Bump()
			return cssast.CustomIdent{}, false
		}
	}
	cur.Bump()
	return cssast.CustomIdent{Span: t.Span, Raw: t.Text}, true
}

// ParseDashedIdent consumes a single ident whose decoded value starts
// with "--".
func ParseDashedIdent(cur *csstoken.Cursor, log *diag.Log) (string, csstoken.Span, bool) {
	t := cur.Peek()
	if t.Kind != csstoken.TIdent || !t.IsDashed {
		log.ExpectedButFound(tokenRange(t), "a \"--\"-prefixed identifier", t.Kind.String())
		// Guarantee forward progress even on failure, matching the
		// <layer-name>/<extension-name> "consume one token anyway" rule.
		if t.Kind != csstoken.TEOF {
			cur.Bump()
		}
		return "", t.Span, false
	}
	cur.Bump()
	return t.Text, t.Span, true
}

// ParseNumber consumes a single TNumber or TInteger token.
func ParseNumber(cur *csstoken.Cursor) (cssast.Value, bool) {
	t := cur.Peek()
	if t.Kind != csstoken.TNumber && t.Kind != csstoken.TInteger {
		return cssast.Value{}, false
	}
	cur.Bump()
	kind := cssast.ValueNumber
	if t.Kind == csstoken.TInteger {
		kind = cssast.ValueInteger
	}
	return cssast.Value{Span: t.Span, Kind: kind, Number: t.Text}, true
}

// ParseDimension consumes a single TDimension token.
func ParseDimension(cur *csstoken.Cursor) (cssast.Value, bool) {
	t := cur.Peek()
	if t.Kind != csstoken.TDimension {
		return cssast.Value{}, false
	}
	cur.Bump()
	return cssast.Value{
		Span:           t.Span,
		Kind:           cssast.ValueDimension,
		DimensionValue: t.DimensionValue(),
		DimensionUnit:  t.DimensionUnit(),
	}, true
}

// ParsePercentage consumes a single TPercentage token.
func ParsePercentage(cur *csstoken.Cursor) (cssast.Value, bool) {
	t := cur.Peek()
	if t.Kind != csstoken.TPercentage {
		return cssast.Value{}, false
	}
	cur.Bump()
	return cssast.Value{Span: t.Span, Kind: cssast.ValueDimension, DimensionValue: t.Text, DimensionUnit: "%"}, true
}

// ParseRatio consumes "<number> / <number>" with no intervening
// whitespace requirement beyond what the grammar allows. The
// cursor must already be positioned on the first number.
func ParseRatio(cur *csstoken.Cursor) (cssast.Value, bool) {
	start := cur.Save()
	numTok := cur.Peek()
	if numTok.Kind != csstoken.TNumber && numTok.Kind != csstoken.TInteger {
		return cssast.Value{}, false
	}
	cur.Bump()
	if !cur.Eat(csstoken.TSlash) {
		cur.Restore(start)
		return cssast.Value{}, false
	}
	denTok := cur.Peek()
	if denTok.Kind != csstoken.TNumber && denTok.Kind != csstoken.TInteger {
		cur.Restore(start)
		return cssast.Value{}, false
	}
	cur.Bump()
	return cssast.Value{
		Span:             csstoken.Span{Lo: numTok.Span.Lo, Hi: denTok.Span.Hi},
		Kind:             cssast.ValueRatio,
		RatioNumerator:   numTok.Text,
		RatioDenominator: denTok.Text,
	}, true
}

// ParseFeatureValue parses the <media-feature>/<size-feature> value
// grammar: a ratio (tried first, since it starts like a
// plain number), a number, an ident, a dimension/percentage, or a
// math-function call.
func ParseFeatureValue(cur *csstoken.Cursor) (cssast.Value, bool) {
	if v, ok := ParseRatio(cur); ok {
		return v, true
	}
	if v, ok := ParseNumber(cur); ok {
		return v, true
	}
	if v, ok := ParseDimension(cur); ok {
		return v, true
	}
	if v, ok := ParsePercentage(cur); ok {
		return v, true
	}
	if t := cur.Peek(); t.Kind == csstoken.TFunction {
		cur.Bump()
		args := ParseComponentValuesUntil(cur, csstoken.TRParen)
		hi := cur.LastEndPos()
		if cur.Eat(csstoken.TRParen) {
			hi = cur.LastEndPos()
		}
		return cssast.Value{
			Span:         csstoken.Span{Lo: t.Span.Lo, Hi: hi},
			Kind:         cssast.ValueFunction,
			FunctionName: t.Text,
			FunctionArgs: args,
		}, true
	}
	if text, span, ok := ParseIdent(cur); ok {
		return cssast.Value{Span: span, Kind: cssast.ValueIdent, Ident: text}, true
	}
	return cssast.Value{}, false
}

func tokenRange(t csstoken.Token) diag.Range {
	return diag.Range{Loc: diag.Loc{Start: t.Span.Lo}, Len: t.Span.Hi - t.Span.Lo}
}
