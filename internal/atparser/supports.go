package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// parseSupportsFeature implements <supports-feature>:
// either "( <declaration> )" or a "selector( … )" function call. The
// selector() arguments are kept as raw component values; no parse
// context or InSupportsAtRule flag is applied to them.
func parseSupportsFeature(cur *csstoken.Cursor, log *diag.Log) (cssast.SupportsFeature, error) {
	t := cur.Peek()
	if t.Kind == csstoken.TFunction && strings.EqualFold(t.Text, "selector") {
		cur.Bump()
		args := cssvalue.ParseComponentValuesUntil(cur, csstoken.TRParen)
		hi := cur.LastEndPos()
		if cur.Eat(csstoken.TRParen) {
			hi = cur.LastEndPos()
		}
		return cssast.SupportsFeature{
			Span:     csstoken.Span{Lo: t.Span.Lo, Hi: hi},
			Selector: &cssast.SelectorFunction{Span: csstoken.Span{Lo: t.Span.Lo, Hi: hi}, Args: args},
		}, nil
	}
	if t.Kind != csstoken.TLParen {
		return cssast.SupportsFeature{}, errIgnore
	}
	start := cur.Save()
	open := cur.Bump()
	cur.SkipWS()
	if !cur.Is(csstoken.TIdent) {
		cur.Restore(start)
		return cssast.SupportsFeature{}, errIgnore
	}
	decl, ok := cssvalue.ParseDeclaration(cur, log)
	if !ok {
		cur.Restore(start)
		return cssast.SupportsFeature{}, errRecovered
	}
	cur.SkipWS()
	if !cur.Eat(csstoken.TRParen) {
		log.ExpectedButFound(tokenRange(cur.Peek()), "\")\"", cur.Peek().Kind.String())
		cur.Restore(start)
		return cssast.SupportsFeature{}, errRecovered
	}
	return cssast.SupportsFeature{
		Span:        csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()},
		Declaration: &decl,
	}, nil
}

// parseSupportsInParens implements <supports-in-parens>.
func parseSupportsInParens(cur *csstoken.Cursor, log *diag.Log) (cssast.SupportsInParens, error) {
	start := cur.Save()
	mark := log.Mark()

	if f, err := parseSupportsFeature(cur, log); err == nil {
		return cssast.SupportsInParens{Span: f.Span, Feature: &f}, nil
	}
	// A "(" ident-led form that fails as a <declaration> (no colon, say)
	// may still be a nested condition or a general-enclosed form.
	log.Truncate(mark)
	cur.Restore(start)

	if cur.Is(csstoken.TLParen) {
		save := cur.Save()
		open := cur.Bump()
		cond, err := parseSupportsCondition(cur, log)
		if err == nil {
			cur.SkipWS()
			if cur.Eat(csstoken.TRParen) {
				return cssast.SupportsInParens{
					Span:      csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()},
					Condition: &cond,
				}, nil
			}
		}
		log.Truncate(mark)
		cur.Restore(save)
	}

	ge, ok := mustGeneralEnclosed(cur, log)
	if !ok {
		return cssast.SupportsInParens{}, errRecovered
	}
	return cssast.SupportsInParens{Span: ge.Span, GeneralEnclosed: &ge}, nil
}

// parseSupportsCondition implements <supports-condition>,
// which (unlike <media-condition>) always allows both "and" and "or"
// chains, just not mixed within one level.
func parseSupportsCondition(cur *csstoken.Cursor, log *diag.Log) (cssast.SupportsCondition, error) {
	cur.SkipWS()
	start := cur.Save()

	if cur.Is(csstoken.TIdent) && strings.ToLower(cur.Peek().Text) == "not" {
		notTok := cur.Bump()
		cur.SkipWS()
		inner, err := parseSupportsInParens(cur, log)
		if err != nil {
			cur.Restore(start)
			return cssast.SupportsCondition{}, err
		}
		return cssast.SupportsCondition{
			Span: csstoken.Span{Lo: notTok.Span.Lo, Hi: cur.LastEndPos()},
			Not:  &inner,
		}, nil
	}

	first, err := parseSupportsInParens(cur, log)
	if err != nil {
		return cssast.SupportsCondition{}, err
	}
	lo := first.Span.Lo
	items := []cssast.SupportsCondItem{{Combinator: cssast.CombinatorNone, Value: first}}
	combinator := cssast.CombinatorNone

	for {
		save := cur.Save()
		cur.SkipWS()
		if !cur.Is(csstoken.TIdent) {
			cur.Restore(save)
			break
		}
		word := strings.ToLower(cur.Peek().Text)
		if word != "and" && word != "or" {
			cur.Restore(save)
			break
		}
		this := cssast.CombinatorAnd
		if word == "or" {
			this = cssast.CombinatorOr
		}
		if combinator != cssast.CombinatorNone && combinator != this {
			log.Add(diag.KindMixedCombinators, tokenRange(cur.Peek()), "cannot mix \"and\" and \"or\" combinators in one condition")
			cur.Restore(save)
			break
		}
		combinator = this
		cur.Bump()
		cur.SkipWS()
		next, err := parseSupportsInParens(cur, log)
		if err != nil {
			cur.Restore(save)
			break
		}
		items = append(items, cssast.SupportsCondItem{Combinator: this, Value: next})
	}

	return cssast.SupportsCondition{Span: csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}, Items: items}, nil
}

// ParseSupportsPrelude is @supports's prelude: a bare <supports-condition>.
func ParseSupportsPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.SupportsCondition, error) {
	cond, err := parseSupportsCondition(cur, log)
	if err != nil {
		return nil, err
	}
	return &cond, nil
}
