package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

// parseQueryInParens implements <query-in-parens>, <size-feature>'s
// specialization of the <*-in-parens> shape, reusing parseFeature since
// <size-feature> has the identical shape to <media-feature>.
func parseQueryInParens(cur *csstoken.Cursor, log *diag.Log) (cssast.QueryInParens, error) {
	start := cur.Save()
	mark := log.Mark()

	if f, err := parseFeature(cur, log); err == nil {
		return cssast.QueryInParens{Span: f.Span, Feature: &f}, nil
	}
	// Same ambiguity as <media-in-parens>: an ident-led "(foo bar)" is
	// feature-shaped enough to reach and fail parseFeature's branches
	// but may still be a nested query or a general-enclosed form.
	log.Truncate(mark)
	cur.Restore(start)

	if cur.Is(csstoken.TLParen) {
		save := cur.Save()
		open := cur.Bump()
		q, err := parseContainerQuery(cur, log)
		if err == nil {
			cur.SkipWS()
			if cur.Eat(csstoken.TRParen) {
				return cssast.QueryInParens{
					Span:  csstoken.Span{Lo: open.Span.Lo, Hi: cur.LastEndPos()},
					Query: &q,
				}, nil
			}
		}
		log.Truncate(mark)
		cur.Restore(save)
	}

	ge, ok := mustGeneralEnclosed(cur, log)
	if !ok {
		return cssast.QueryInParens{}, errRecovered
	}
	return cssast.QueryInParens{Span: ge.Span, GeneralEnclosed: &ge}, nil
}

// parseContainerQuery implements <container-query>.
func parseContainerQuery(cur *csstoken.Cursor, log *diag.Log) (cssast.ContainerQuery, error) {
	cur.SkipWS()
	start := cur.Save()

	if cur.Is(csstoken.TIdent) && strings.ToLower(cur.Peek().Text) == "not" {
		notTok := cur.Bump()
		cur.SkipWS()
		inner, err := parseQueryInParens(cur, log)
		if err != nil {
			cur.Restore(start)
			return cssast.ContainerQuery{}, err
		}
		return cssast.ContainerQuery{
			Span: csstoken.Span{Lo: notTok.Span.Lo, Hi: cur.LastEndPos()},
			Not:  &inner,
		}, nil
	}

	first, err := parseQueryInParens(cur, log)
	if err != nil {
		return cssast.ContainerQuery{}, err
	}
	lo := first.Span.Lo
	items := []cssast.ContainerCondItem{{Combinator: cssast.CombinatorNone, Value: first}}
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
		next, err := parseQueryInParens(cur, log)
		if err != nil {
			cur.Restore(save)
			break
		}
		items = append(items, cssast.ContainerCondItem{Combinator: this, Value: next})
	}

	return cssast.ContainerQuery{Span: csstoken.Span{Lo: lo, Hi: cur.LastEndPos()}, Items: items}, nil
}

// ParseContainerPrelude is @container's prelude: an optional container
// name followed by the required query.
func ParseContainerPrelude(cur *csstoken.Cursor, log *diag.Log) (*cssast.ContainerPrelude, error) {
	cur.SkipWS()
	var name *string
	var nameSpan csstoken.Span
	lo := cur.Peek().Span.Lo

	if cur.Is(csstoken.TIdent) && strings.ToLower(cur.Peek().Text) != "not" {
		t := cur.Bump()
		n := t.Text
		name = &n
		nameSpan = t.Span
		cur.SkipWS()
	}

	q, err := parseContainerQuery(cur, log)
	if err != nil {
		return nil, err
	}
	return &cssast.ContainerPrelude{
		Span:     csstoken.Span{Lo: lo, Hi: cur.LastEndPos()},
		Name:     name,
		NameSpan: nameSpan,
		Query:    q,
	}, nil
}
