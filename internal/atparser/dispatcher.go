package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/cssvalue"
	"github.com/cssat/atrules/internal/diag"
)

// ParseAtRule implements the at-rule dispatcher. The cursor
// must be positioned on an at-keyword token; ParseAtRule always consumes
// through a terminating ";", the closing "}" of a block, or EOF.
func ParseAtRule(cur *csstoken.Cursor, ctx ParseContext, log *diag.Log, cfg Config) cssast.AtRule {
	at := cur.Bump()
	kind := cssast.IdentPlain
	if at.IsDashed {
		kind = cssast.IdentDashed
	}
	name := cssast.AtRuleName{
		Span:  csstoken.Span{Lo: at.Span.Lo + 1, Hi: at.Span.Hi},
		Raw:   at.Text,
		Lower: strings.ToLower(at.Text),
		Kind:  kind,
	}
	ar := cssast.AtRule{Name: name}

	for {
		cur.SkipWS()
		t := cur.Peek()

		switch t.Kind {
		case csstoken.TEOF:
			if brace, semi := legalTerminator(name.Lower, ar.Prelude); brace != semi {
				if brace {
					log.Expected(tokenRange(t), "\"{\" token")
				} else {
					log.Expected(tokenRange(t), "\";\" token")
				}
			}
			ar.Span = csstoken.Span{Lo: at.Span.Lo, Hi: cur.LastEndPos()}
			return ar

		case csstoken.TSemicolon:
			if brace, semi := legalTerminator(name.Lower, ar.Prelude); !semi && brace {
				log.Expected(tokenRange(t), "\"{\" token")
			}
			cur.Bump()
			ar.Span = csstoken.Span{Lo: at.Span.Lo, Hi: cur.LastEndPos()}
			return ar

		case csstoken.TLBrace:
			if brace, semi := legalTerminator(name.Lower, ar.Prelude); !brace && semi {
				log.Expected(tokenRange(t), "\";\" token")
			}
			grammar, blockCtx := blockGrammarFor(name.Lower, ctx)
			save := cur.Save()
			block, err := ParseSimpleBlock(cur, grammar, blockCtx, log, cfg)
			if err != nil {
				if err != errIgnore {
					log.Expected(tokenRange(cur.Peek()), "\"}\" token")
				}
				cur.Restore(save)
				block, _ = ParseSimpleBlock(cur, cssast.GrammarNoGrammar, blockCtx, log, cfg)
			}
			ar.Block = &block
			ar.Span = csstoken.Span{Lo: at.Span.Lo, Hi: cur.LastEndPos()}
			return ar

		default:
			if ar.Prelude != nil {
				log.ExpectedButFound(tokenRange(t), "\"{\" or \";\"", t.Kind.String())
				ar.Prelude = appendRecoveryValue(ar.Prelude, cssvalue.ParseComponentValue(cur))
				continue
			}
			save := cur.Save()
			p, err := resolvePrelude(name.Lower, cur, ctx, log, cfg)
			if err == nil && p != nil {
				ar.Prelude = p
				continue
			}
			if err == nil {
				// The family takes no prelude here; the stray token goes to
				// the recovery list below so the loop still makes progress.
				log.ExpectedButFound(tokenRange(t), "\"{\" or \";\"", t.Kind.String())
			}
			if err != errIgnore {
				cur.Restore(save)
			}
			ar.Prelude = appendRecoveryValue(ar.Prelude, cssvalue.ParseComponentValue(cur))
		}
	}
}

// appendRecoveryValue implements the dispatcher's generic fallback for an
// unrecognized or malformed prelude: a ListOfComponentValues accumulates
// one component value per iteration, created on first use.
func appendRecoveryValue(prelude cssast.Prelude, v cssast.ComponentValue) cssast.Prelude {
	lst, _ := prelude.(*cssast.ListOfComponentValues)
	if lst == nil {
		lst = &cssast.ListOfComponentValues{Span: v.Span}
	}
	lst.Values = append(lst.Values, v)
	lst.Span = csstoken.Union(lst.Span, v.Span)
	return lst
}
