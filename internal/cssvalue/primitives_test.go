package cssvalue

import (
	"testing"

	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

func TestParseCustomIdent_ForbidsListedWords(t *testing.T) {
	cur := csstoken.NewCursor("none")
	log := diag.NewLog()
	_, ok := ParseCustomIdent(cur, log, "none")
	if ok {
		t.Fatalf("expected \"none\" to be rejected")
	}
	if !log.HasErrors() {
		t.Fatalf("expected a diagnostic for the forbidden ident")
	}
}

func TestParseCustomIdent_AllowsUnlisted(t *testing.T) {
	cur := csstoken.NewCursor("spin")
	log := diag.NewLog()
	ci, ok := ParseCustomIdent(cur, log, "none")
	if !ok || ci.Raw != "spin" {
		t.Fatalf("ci = %+v ok = %v", ci, ok)
	}
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
}

func TestParseDashedIdent_ForwardProgressOnFailure(t *testing.T) {
	cur := csstoken.NewCursor("notdashed rest")
	log := diag.NewLog()
	before := cur.Save()
	_, _, ok := ParseDashedIdent(cur, log)
	if ok {
		t.Fatalf("expected failure for a non-dashed ident")
	}
	if !log.HasErrors() {
		t.Fatalf("expected a diagnostic")
	}
	if cur.Save() == before {
		t.Fatalf("ParseDashedIdent must consume one token even on failure")
	}
}

func TestParseDashedIdent_Success(t *testing.T) {
	cur := csstoken.NewCursor("--my-prop")
	log := diag.NewLog()
	name, _, ok := ParseDashedIdent(cur, log)
	if !ok || name != "--my-prop" {
		t.Fatalf("name = %q ok = %v", name, ok)
	}
}

func TestParseRatio(t *testing.T) {
	cur := csstoken.NewCursor("16/9")
	v, ok := ParseRatio(cur)
	if !ok || v.RatioNumerator != "16" || v.RatioDenominator != "9" {
		t.Fatalf("v = %+v ok = %v", v, ok)
	}
}

func TestParseRatio_RestoresOnFailure(t *testing.T) {
	cur := csstoken.NewCursor("16 solidus-missing")
	before := cur.Save()
	_, ok := ParseRatio(cur)
	if ok {
		t.Fatalf("expected failure without a following \"/\"")
	}
	if cur.Save() != before {
		t.Fatalf("ParseRatio must restore the cursor on failure")
	}
}

func TestParseFeatureValue_PrefersRatioOverNumber(t *testing.T) {
	cur := csstoken.NewCursor("16/9")
	v, ok := ParseFeatureValue(cur)
	if !ok {
		t.Fatalf("ParseFeatureValue failed")
	}
	if v.RatioNumerator != "16" {
		t.Fatalf("v = %+v, want a ratio", v)
	}
}
