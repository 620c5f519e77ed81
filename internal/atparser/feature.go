package atparser

import (
	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// parseCompareOp consumes one comparison operator, merging an adjacent
// "<"/">" and "=" pair (no intervening token) into "<="/">=". Returns
// CmpNone, consuming nothing, if the current token is not a comparison
// operator.
func parseCompareOp(cur *csstoken.Cursor) cssast.CompareOp {
	t := cur.Peek()
	switch t.Kind {
	case csstoken.TLT:
		cur.Bump()
		if n := cur.Peek(); n.Kind == csstoken.TEq && n.Span.Lo == t.Span.Hi {
			cur.Bump()
			return cssast.CmpLe
		}
		return cssast.CmpLt
	case csstoken.TGT:
		cur.Bump()
		if n := cur.Peek(); n.Kind == csstoken.TEq && n.Span.Lo == t.Span.Hi {
			cur.Bump()
			return cssast.CmpGe
		}
		return cssast.CmpGt
	case csstoken.TEq:
		cur.Bump()
		return cssast.CmpEq
	default:
		return cssast.CmpNone
	}
}

// parseFeature implements <media-feature>/<size-feature>,
// shared verbatim between @media/@import's media-query-list and
// @container's size-feature since both share one grammar shape. Returns
// errIgnore (no diagnostic, cursor restored) when the current token is
// not even "(", so callers can try their next <*-in-parens> alternative.
func parseFeature(cur *csstoken.Cursor, log *diag.Log) (cssast.Feature, error) {
	if !cur.Is(csstoken.TLParen) {
		return cssast.Feature{}, errIgnore
	}
	start := cur.Save()
	open := cur.Bump()
	cur.SkipWS()

	v1, ok := cssvalue.ParseFeatureValue(cur)
	if !ok {
		cur.Restore(start)
		return cssast.Feature{}, errIgnore
	}
	cur.SkipWS()

	switch {
	case cur.Is(csstoken.TRParen):
		if v1.Kind != cssast.ValueIdent {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a feature name", "a value")
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		cur.Bump()
		return cssast.Feature{
			Span:     csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()},
			Name:     v1.Ident,
			NameSpan: v1.Span,
			Kind:     cssast.FeatureBoolean,
		}, nil

	case cur.Is(csstoken.TColon):
		if v1.Kind != cssast.ValueIdent {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a feature name", "a value")
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		cur.Bump()
		cur.SkipWS()
		v2, ok2 := cssvalue.ParseFeatureValue(cur)
		if !ok2 {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a feature value", cur.Peek().Kind.String())
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		cur.SkipWS()
		if !cur.Eat(csstoken.TRParen) {
			log.ExpectedButFound(tokenRange(cur.Peek()), "\")\"", cur.Peek().Kind.String())
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		return cssast.Feature{
			Span:       csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()},
			Name:       v1.Ident,
			NameSpan:   v1.Span,
			Kind:       cssast.FeaturePlain,
			PlainValue: &v2,
		}, nil

	case cur.Is(csstoken.TLT) || cur.Is(csstoken.TGT) || cur.Is(csstoken.TEq):
		op1 := parseCompareOp(cur)
		cur.SkipWS()
		v2, ok2 := cssvalue.ParseFeatureValue(cur)
		if !ok2 {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a feature value", cur.Peek().Kind.String())
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		cur.SkipWS()

		if cur.Eat(csstoken.TRParen) {
			// Two-term range: whichever of V1/V2 is the Ident is the name;
			// the other is the single flanking value.
			f := cssast.Feature{
				Span: csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()},
				Kind: cssast.FeatureRangeKind,
			}
			switch {
			case v1.Kind == cssast.ValueIdent:
				f.Name, f.NameSpan = v1.Ident, v1.Span
				v2 := v2
				f.Right, f.RightOp = &v2, op1
			case v2.Kind == cssast.ValueIdent:
				f.Name, f.NameSpan = v2.Ident, v2.Span
				v1 := v1
				f.Left, f.LeftOp = &v1, op1
			default:
				log.ExpectedButFound(tokenRange(open), "a feature name on one side of the comparison", "two values")
				cur.Restore(start)
				return cssast.Feature{}, errRecovered
			}
			return f, nil
		}

		// Three-term range: the center value must be the name.
		if v2.Kind != cssast.ValueIdent {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a feature name", "a value")
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		op2 := parseCompareOp(cur)
		if op2 == cssast.CmpNone {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a comparison operator", cur.Peek().Kind.String())
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		cur.SkipWS()
		v3, ok3 := cssvalue.ParseFeatureValue(cur)
		if !ok3 {
			log.ExpectedButFound(tokenRange(cur.Peek()), "a feature value", cur.Peek().Kind.String())
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		cur.SkipWS()
		if !cur.Eat(csstoken.TRParen) {
			log.ExpectedButFound(tokenRange(cur.Peek()), "\")\"", cur.Peek().Kind.String())
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		if op1.Dir() != op2.Dir() {
			log.Add(diag.KindMixedRangeDirection, tokenRange(open), "range comparisons must point the same direction")
			cur.Restore(start)
			return cssast.Feature{}, errRecovered
		}
		return cssast.Feature{
			Span:     csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()},
			Name:     v2.Ident,
			NameSpan: v2.Span,
			Kind:     cssast.FeatureRangeKind,
			Left:     &v1,
			LeftOp:   op1,
			Right:    &v3,
			RightOp:  op2,
		}, nil

	default:
		log.ExpectedButFound(tokenRange(cur.Peek()), "\")\", \":\", or a comparison operator", cur.Peek().Kind.String())
		cur.Restore(start)
		return cssast.Feature{}, errRecovered
	}
}
