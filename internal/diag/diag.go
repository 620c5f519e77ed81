// Package diag is an append-only diagnostic collector: sub-parsers record
// non-fatal findings here and the dispatcher always returns a full AST
// regardless of what's collected. Its shape is a small Loc/Range pair, a
// Msg with a kind, a range and a text, and a Log that callers drain once parsing
// completes.
package diag

import (
	"fmt"

	"go.uber.org/multierr"
)

// Loc is a 0-based byte offset into the source.
type Loc struct{ Start int }

// Range is a Loc plus a length in bytes.
type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int { return r.Loc.Start + r.Len }

// Kind identifies the taxonomy of recoverable parse errors.
// Ignore is a sentinel: it signals "this at-rule/feature is not
// recognized here" to the dispatcher and must never reach a Log — see
// the comment on Log.Add.
type Kind uint8

const (
	KindExpected Kind = iota
	KindInvalidCharsetAtRule
	KindInvalidCustomIdent
	KindInvalidImportLayer
	KindInvalidPagePseudo
	KindMixedCombinators
	KindMixedRangeDirection
	KindUnexpected
	Ignore
)

func (k Kind) String() string {
	switch k {
	case KindExpected:
		return "expected"
	case KindInvalidCharsetAtRule:
		return "invalid-at-charset"
	case KindInvalidCustomIdent:
		return "invalid-custom-ident"
	case KindInvalidImportLayer:
		return "invalid-at-import-layer"
	case KindInvalidPagePseudo:
		return "invalid-page-pseudo"
	case KindMixedCombinators:
		return "mixed-combinators"
	case KindMixedRangeDirection:
		return "mixed-range-direction"
	case KindUnexpected:
		return "unexpected-token"
	default:
		return "ignore"
	}
}

// Msg is one collected diagnostic.
type Msg struct {
	Kind  Kind
	Range Range
	Text  string
}

func (m Msg) Error() string {
	return fmt.Sprintf("%d: %s", m.Range.Loc.Start, m.Text)
}

// Log is the monotonically-growing collector. It is not safe to share a
// single Log across concurrent Parse calls; each call owns its own.
type Log struct {
	msgs []Msg
}

func NewLog() *Log { return &Log{} }

// Add records a diagnostic. Kind Ignore is refused: it is pure dispatcher
// control flow and must never become a visible diagnostic. Callers that
// want to signal "unknown at-rule here" should return the Ignore
// sentinel value from their sub-parser instead of calling Add.
func (l *Log) Add(kind Kind, r Range, text string) {
	if kind == Ignore {
		panic("diag: Ignore must not be logged, it is dispatcher control flow")
	}
	l.msgs = append(l.msgs, Msg{Kind: kind, Range: r, Text: text})
}

func (l *Log) Expected(r Range, what string) {
	l.Add(KindExpected, r, fmt.Sprintf("Expected %s", what))
}

func (l *Log) ExpectedButFound(r Range, what, found string) {
	l.Add(KindExpected, r, fmt.Sprintf("Expected %s but found %s", what, found))
}

// Msgs returns every diagnostic collected so far. Drain after parsing
// completes.
func (l *Log) Msgs() []Msg {
	out := make([]Msg, len(l.msgs))
	copy(out, l.msgs)
	return out
}

// Mark returns a checkpoint for Truncate, the diagnostic-log counterpart
// to a token cursor's Save: callers that speculatively try a grammar and
// may abandon it for another alternative use this to discard whatever
// that attempt logged.
func (l *Log) Mark() int { return len(l.msgs) }

// Truncate discards every diagnostic added since mark.
func (l *Log) Truncate(mark int) { l.msgs = l.msgs[:mark] }

func (l *Log) HasErrors() bool { return len(l.msgs) > 0 }

// Err combines every collected diagnostic into a single error via
// multierr, for callers that only want a pass/fail signal rather than
// walking Msgs() themselves.
func (l *Log) Err() error {
	if len(l.msgs) == 0 {
		return nil
	}
	errs := make([]error, len(l.msgs))
	for i, m := range l.msgs {
		errs[i] = m
	}
	return multierr.Combine(errs...)
}
