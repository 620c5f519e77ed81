// Package cssvalue provides the minimal slice of the "generic
// component-value / simple-block parser" and "parse_as<T>()" external
// services that the at-rule grammars in internal/atparser
// actually reach into. It deliberately does not attempt full selector,
// declaration-value, color, or calc() semantics — those stay out of scope,
// matched here by simply preserving their tokens verbatim rather than
// interpreting them.
package cssvalue

import (
	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
)

// ParseComponentValue consumes exactly one component value: either a
// single token, or a function call / parenthesized, bracketed, or braced
// block together with its (recursively collected) children. The closing
// token of a block is consumed but not itself stored as a child.
func ParseComponentValue(cur *csstoken.Cursor) cssast.ComponentValue {
	t := cur.Peek()

	var close csstoken.T
	switch t.Kind {
	case csstoken.TFunction:
		close = csstoken.TRParen
	case csstoken.TLParen:
		close = csstoken.TRParen
	case csstoken.TLBrace:
		close = csstoken.TRBrace
	case csstoken.TLBracket:
		close = csstoken.TRBracket
	default:
		cur.Bump()
		return cssast.ComponentValue{Span: t.Span, Kind: t.Kind, Text: t.Text, Raw: t.Raw}
	}

	cur.Bump()
	children := ParseComponentValuesUntil(cur, close)
	hi := cur.LastEndPos()
	if cur.Peek().Kind == close {
		cur.Bump()
		hi = cur.LastEndPos()
	}
	return cssast.ComponentValue{
		Span:     csstoken.Span{Lo: t.Span.Lo, Hi: hi},
		Kind:     t.Kind,
		Text:     t.Text,
		Raw:      t.Raw,
		Children: children,
	}
}

// ParseComponentValuesUntil collects component values until the stop kind
// (or EOF) is reached, without consuming the stop token.
func ParseComponentValuesUntil(cur *csstoken.Cursor, stop csstoken.T) []cssast.ComponentValue {
	var out []cssast.ComponentValue
	for {
		k := cur.Peek().Kind
		if k == stop || k == csstoken.TEOF {
			break
		}
		out = append(out, ParseComponentValue(cur))
	}
	return out
}

// ParseComponentValuesUntilAny is ParseComponentValuesUntil generalized to
// multiple stop kinds, for contexts (like a declaration's value, which
// ends at either ";" or an enclosing "}") where more than one token can
// terminate the scan.
func ParseComponentValuesUntilAny(cur *csstoken.Cursor, stops ...csstoken.T) []cssast.ComponentValue {
	var out []cssast.ComponentValue
	for {
		k := cur.Peek().Kind
		if k == csstoken.TEOF {
			break
		}
		stop := false
		for _, s := range stops {
			if k == s {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		out = append(out, ParseComponentValue(cur))
	}
	return out
}

// SkipComponentValuesUntilAny advances over component values until the
// current token matches one of stops (or EOF), without consuming it. Used
// by recovery paths that need to scan past an arbitrary malformed prelude.
func SkipComponentValuesUntilAny(cur *csstoken.Cursor, stops ...csstoken.T) {
	for {
		k := cur.Peek().Kind
		if k == csstoken.TEOF {
			return
		}
		for _, s := range stops {
			if k == s {
				return
			}
		}
		ParseComponentValue(cur)
	}
}
