package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseDashedIdentPrelude implements the single-dashed-ident prelude shape
// shared by @font-palette-values and @property.
func ParseDashedIdentPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.DashedIdentPrelude, error) {
	cur.SkipWS()
	name, span, ok := cssvalue.ParseDashedIdent(cur, log)
	if !ok {
		return nil, errRecovered
	}
	return &cssast.DashedIdentPrelude{Span: span, Value: name}, nil
}

// ParseColorProfilePrelude implements @color-profile's prelude: a
// dashed-ident or the bare keyword "device-cmyk".
func ParseColorProfilePrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.ColorProfilePrelude, error) {
	cur.SkipWS()
	if cur.Is(csstoken.TIdent) && strings.EqualFold(cur.Peek().Text, "device-cmyk") {
		t := cur.Bump()
		return &cssast.ColorProfilePrelude{Span: t.Span, DeviceCMYK: true}, nil
	}
	name, span, ok := cssvalue.ParseDashedIdent(cur, log)
	if !ok {
		return nil, errRecovered
	}
	return &cssast.ColorProfilePrelude{Span: span, Name: name}, nil
}

// ParseCounterStylePrelude implements @counter-style's prelude: a single
// custom-ident. Unlike @keyframes, "none" is not forbidden here (grounded
// in original_source's counter-style handling).
func ParseCounterStylePrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.CustomIdentPrelude, error) {
	cur.SkipWS()
	ident, ok := cssvalue.ParseCustomIdent(cur, log)
	if !ok {
		return nil, errRecovered
	}
	return &cssast.CustomIdentPrelude{Span: ident.Span, Value: ident.Raw}, nil
}

// ParseFontFeatureValuesPrelude implements @font-feature-values's prelude:
// a comma-separated <family-name-list>.
func ParseFontFeatureValuesPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.FamilyNameListPrelude, error) {
	cur.SkipWS()
	lo := cur.Peek().Span.Lo
	var names []cssast.FamilyName
	for {
		cur.SkipWS()
		name, ok := parseFamilyName(cur)
		if !ok {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a family name", cur.Peek().Kind.String())
			cssvalue.SkipComponentValuesUntilAny(cur, csstoken.TDelimComma, csstoken.TLBrace, csstoken.TSemicolon)
		} else {
			names = append(names, name)
		}
		cur.SkipWS()
		if cur.Eat(csstoken.TDelimComma) {
			continue
		}
		break
	}
	if len(names) == 0 {
		return nil, errRecovered
	}
	return &cssast.FamilyNameListPrelude{Span: csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}, Names: names}, nil
}

func parseFamilyName(cur *csstoken.Cursor) (cssast.FamilyName, bool) {
	if s, span, ok := cssvalue.ParseString(cur); ok {
		return cssast.FamilyName{Span: span, IsQuoted: true, Value: s}, true
	}
	if !cur.Is(csstoken.TIdent) {
		return cssast.FamilyName{}, false
	}
	first := cur.Bump()
	parts := []string{first.Text}
	lo, hi := first.Span.Lo, first.Span.Hi
	for {
		save := cur.Save()
		cur.SkipWS()
		if !cur.Is(csstoken.TIdent) {
			cur.Restore(save)
			break
		}
		t := cur.Bump()
		parts = append(parts, t.Text)
		hi = t.Span.Hi
	}
	return cssast.FamilyName{Span: csstoken.Span{Lo: lo, Hi: hi}, Value: strings.Join(parts, " ")}, true
}

// ParseNestPrelude implements @nest's prelude as an opaque list of
// component values, a deliberate simplification in place of a full
// selector-list grammar.
func ParseNestPrelude(cur *csstoken.Cursor) (*cssast.ListOfComponentValues, error) {
	cur.SkipWS()
	lo := cur.Peek().Span.Lo
	values := cssvalue.ParseComponentValuesUntilAny(cur, csstoken.TLBrace, csstoken.TSemicolon)
	if len(values) == 0 {
		return nil, errIgnore
	}
	return &cssast.ListOfComponentValues{Span: csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}, Values: values}, nil
}
