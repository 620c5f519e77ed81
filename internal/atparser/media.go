package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

var mediaReservedTypes = map[string]bool{"not": true, "and": true, "or": true, "only": true, "layer": true}

// ParseMediaQueryList parses <media-query-list>: a
// comma-separated, whitespace-trimmed sequence of <media-query>, stopping
// at any of stops (the caller's terminator, e.g. "{" for @media's own
// prelude or ";" for @import's embedded list) or EOF.
func ParseMediaQueryList(cur *csstoken.Cursor, log *diag.Log, stops ...csstoken.T) cssast.MediaQueryList {
	var queries []cssast.MediaQuery
	for {
		cur.SkipWS()
		if atStop(cur, stops) {
			break
		}
		q, err := parseMediaQuery(cur, log)
		if err == nil {
			queries = append(queries, q)
		} else {
			stopSet := append(append([]csstoken.T{}, stops...), csstoken.TDelimComma)
			cssvalue.SkipComponentValuesUntilAny(cur, stopSet...)
		}
		cur.SkipWS()
		if !cur.Eat(csstoken.TDelimComma) {
			break
		}
	}
	return cssast.MediaQueryList{Queries: queries}
}

func atStop(cur *csstoken.Cursor, stops []csstoken.T) bool {
	k := cur.Peek().Kind
	if k == csstoken.TEOF {
		return true
	}
	for _, s := range stops {
		if k == s {
			return true
		}
	}
	return false
}

// parseMediaQuery implements <media-query>'s two alternatives — an
// optional only/not modifier plus <media-type>, or a bare
// <media-condition> — with a restore-before-second-alternative rule for
// a leading "not".
func parseMediaQuery(cur *csstoken.Cursor, log *diag.Log) (cssast.MediaQuery, error) {
	start := cur.Save()
	startLo := cur.Peek().Span.Lo

	mod := cssast.MediaModNone
	if cur.Is(csstoken.TIdent) {
		switch strings.ToLower(cur.Peek().Text) {
		case "only":
			mod = cssast.MediaModOnly
			cur.Bump()
			cur.SkipWS()
		case "not":
			mod = cssast.MediaModNot
			cur.Bump()
			cur.SkipWS()
		}
	}

	if cur.Is(csstoken.TIdent) && !mediaReservedTypes[strings.ToLower(cur.Peek().Text)] {
		typeTok := cur.Bump()
		q := cssast.MediaQuery{Modifier: mod, Type: typeTok.Text, TypeSpan: typeTok.Span}

		save := cur.Save()
		cur.SkipWS()
		if cur.Is(csstoken.TIdent) && strings.ToLower(cur.Peek().Text) == "and" {
			cur.Bump()
			cur.SkipWS()
			cond, err := parseMediaCondition(cur, log, true)
			if err == nil {
				q.AndOrNil = &cond
			} else {
				cur.Restore(save)
			}
		} else {
			cur.Restore(save)
		}
		q.Span = csstoken.Span{Lo: startLo, Hi: cur.LastEndPos()}
		return q, nil
	}

	// Either the modifier wasn't followed by a usable <media-type>, or
	// there was no modifier/type at all: restore fully (the leading "not",
	// if any, belongs to a top-level <media-condition> instead) and try
	// the bare-condition alternative.
	cur.Restore(start)
	cond, err := parseMediaCondition(cur, log, false)
	if err != nil {
		return cssast.MediaQuery{}, err
	}
	return cssast.MediaQuery{Condition: &cond, Span: cond.Span}, nil
}

// parseMediaCondition implements <media-condition>/<media-condition-without-or>.
func parseMediaCondition(cur *csstoken.Cursor, log *diag.Log, withoutOr bool) (cssast.MediaCondition, error) {
	cur.SkipWS()
	start := cur.Save()

	if cur.Is(csstoken.TIdent) && strings.ToLower(cur.Peek().Text) == "not" {
		notTok := cur.Bump()
		cur.SkipWS()
		inner, err := parseMediaInParens(cur, log, false)
		if err != nil {
			cur.Restore(start)
			return cssast.MediaCondition{}, err
		}
		return cssast.MediaCondition{
			Span:      csstoken.Span{Lo: notTok.Span.Lo, Hi: cur.LastEndPos()},
			Not:       &inner,
			WithoutOr: withoutOr,
		}, nil
	}

	first, err := parseMediaInParens(cur, log, withoutOr)
	if err != nil {
		return cssast.MediaCondition{}, err
	}
	lo := first.Span.Lo
	items := []cssast.MediaCondItem{{Combinator: cssast.CombinatorNone, Value: first}}
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
		if word == "or" && withoutOr {
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
		next, err := parseMediaInParens(cur, log, withoutOr)
		if err != nil {
			cur.Restore(save)
			break
		}
		items = append(items, cssast.MediaCondItem{Combinator: this, Value: next})
	}

	return cssast.MediaCondition{
		Span:      csstoken.Span{Lo: lo, Hi: cur.LastEndPos()},
		Items:     items,
		WithoutOr: withoutOr,
	}, nil
}

// parseMediaInParens implements <media-in-parens>: feature
// grammar, then a parenthesized nested condition, then <general-enclosed>,
// each tried with full state restore on failure.
func parseMediaInParens(cur *csstoken.Cursor, log *diag.Log, withoutOr bool) (cssast.MediaInParens, error) {
	start := cur.Save()
	mark := log.Mark()

	if f, err := parseFeature(cur, log); err == nil {
		return cssast.MediaInParens{Span: f.Span, Feature: &f}, nil
	}
	// Any feature-shaped content that isn't a valid feature still might be
	// a parenthesized condition or a general-enclosed form, e.g. "(foo
	// bar)" reaches parseFeature's ident branches and fails there, but is
	// a perfectly good general-enclosed. Discard what the failed attempt
	// logged and keep trying the remaining alternatives.
	log.Truncate(mark)
	cur.Restore(start)

	if cur.Is(csstoken.TLParen) {
		save := cur.Save()
		open := cur.Bump()
		cond, err := parseMediaCondition(cur, log, withoutOr)
		if err == nil {
			cur.SkipWS()
			if cur.Eat(csstoken.TRParen) {
				return cssast.MediaInParens{
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
		return cssast.MediaInParens{}, errRecovered
	}
	return cssast.MediaInParens{Span: ge.Span, GeneralEnclosed: &ge}, nil
}
