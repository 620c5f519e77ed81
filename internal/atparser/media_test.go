package atparser

import (
	"testing"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

func TestMediaQuery_OnlyModifier(t *testing.T) {
	cur := csstoken.NewCursor("only screen")
	log := diag.NewLog()
	q, err := parseMediaQuery(cur, log)
	if err != nil {
		t.Fatalf("parseMediaQuery failed: %v", log.Msgs())
	}
	if q.Modifier != cssast.MediaModOnly || q.Type != "screen" {
		t.Fatalf("q = %+v", q)
	}
}

func TestMediaQuery_NotModifier(t *testing.T) {
	cur := csstoken.NewCursor("not print")
	log := diag.NewLog()
	q, err := parseMediaQuery(cur, log)
	if err != nil {
		t.Fatalf("parseMediaQuery failed: %v", log.Msgs())
	}
	if q.Modifier != cssast.MediaModNot || q.Type != "print" {
		t.Fatalf("q = %+v", q)
	}
}

func TestMediaQuery_TypeAndCondition(t *testing.T) {
	cur := csstoken.NewCursor("screen and (color)")
	log := diag.NewLog()
	q, err := parseMediaQuery(cur, log)
	if err != nil {
		t.Fatalf("parseMediaQuery failed: %v", log.Msgs())
	}
	if q.Type != "screen" || q.AndOrNil == nil {
		t.Fatalf("q = %+v", q)
	}
}

func TestMediaQuery_BareConditionFallsBackWhenNoType(t *testing.T) {
	// "(color)" starts with "(", not an ident, so it can't parse as a
	// <media-type>; it must fall through to the bare-condition form
	// via full restore.
	cur := csstoken.NewCursor("(color)")
	log := diag.NewLog()
	q, err := parseMediaQuery(cur, log)
	if err != nil {
		t.Fatalf("parseMediaQuery failed: %v", log.Msgs())
	}
	if q.Condition == nil || q.Type != "" {
		t.Fatalf("q = %+v, want a bare condition with no type", q)
	}
}

func TestMediaQueryList_CommaSeparated(t *testing.T) {
	cur := csstoken.NewCursor("screen, print and (color) {")
	log := diag.NewLog()
	lst := ParseMediaQueryList(cur, log, csstoken.TLBrace)
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if len(lst.Queries) != 2 {
		t.Fatalf("queries = %+v", lst.Queries)
	}
	if lst.Queries[0].Type != "screen" || lst.Queries[1].Type != "print" {
		t.Fatalf("queries = %+v", lst.Queries)
	}
	if !cur.Is(csstoken.TLBrace) {
		t.Fatalf("cursor should stop at the stop token, got %v", cur.Peek().Kind)
	}
}

func TestMediaQueryList_StopsAtEOFWithoutStopToken(t *testing.T) {
	cur := csstoken.NewCursor("screen")
	log := diag.NewLog()
	lst := ParseMediaQueryList(cur, log, csstoken.TLBrace)
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if len(lst.Queries) != 1 {
		t.Fatalf("queries = %+v", lst.Queries)
	}
	if !cur.Is(csstoken.TEOF) {
		t.Fatalf("cursor should be at EOF, got %v", cur.Peek().Kind)
	}
}

func TestMediaCondition_MixedCombinatorsRejected(t *testing.T) {
	cur := csstoken.NewCursor("(width > 1px) and (width < 2px) or (height > 1px)")
	log := diag.NewLog()
	cond, err := parseMediaCondition(cur, log, false)
	if err != nil {
		t.Fatalf("parseMediaCondition failed: %v", log.Msgs())
	}
	found := false
	for _, m := range log.Msgs() {
		if m.Kind == diag.KindMixedCombinators {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a KindMixedCombinators diagnostic, got: %v", log.Msgs())
	}
	if len(cond.Items) != 2 {
		t.Fatalf("items = %+v, want the third term dropped after the mismatch", cond.Items)
	}
}

func TestMediaCondition_WithoutOrRejectsBareOr(t *testing.T) {
	// Inside an "and"-introduced sub-condition, "or" is not allowed per
	// <media-condition-without-or>: the loop must stop before consuming it.
	cur := csstoken.NewCursor("(color) or (monochrome)")
	log := diag.NewLog()
	cond, err := parseMediaCondition(cur, log, true)
	if err != nil {
		t.Fatalf("parseMediaCondition failed: %v", log.Msgs())
	}
	if len(cond.Items) != 1 {
		t.Fatalf("items = %+v, want only the first term consumed", cond.Items)
	}
	if !cur.Is(csstoken.TIdent) {
		t.Fatalf("cursor should stop before consuming \"or\", got %v", cur.Peek().Kind)
	}
}

// An ident-led "(foo bar)" is feature-shaped enough to reach and fail
// parseFeature's branches, but it is still a valid general-enclosed form
// and must parse without a diagnostic rather than being dropped.
func TestMediaInParens_IdentPairFallsBackToGeneralEnclosedWithoutDiagnostic(t *testing.T) {
	cur := csstoken.NewCursor("(foo bar)")
	log := diag.NewLog()
	mip, err := parseMediaInParens(cur, log, false)
	if err != nil {
		t.Fatalf("parseMediaInParens failed: %v", log.Msgs())
	}
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if mip.GeneralEnclosed == nil {
		t.Fatalf("mip = %+v, want a GeneralEnclosed fallback", mip)
	}
}

func TestMediaInParens_NestedCondition(t *testing.T) {
	cur := csstoken.NewCursor("((color) and (monochrome))")
	log := diag.NewLog()
	mip, err := parseMediaInParens(cur, log, false)
	if err != nil {
		t.Fatalf("parseMediaInParens failed: %v", log.Msgs())
	}
	if mip.Condition == nil || len(mip.Condition.Items) != 2 {
		t.Fatalf("mip = %+v", mip)
	}
}
