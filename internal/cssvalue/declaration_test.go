package cssvalue

import (
	"testing"

	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

func TestParseDeclaration_Basic(t *testing.T) {
	cur := csstoken.NewCursor("color: red")
	log := diag.NewLog()
	decl, ok := ParseDeclaration(cur, log)
	if !ok {
		t.Fatalf("ParseDeclaration failed: %v", log.Msgs())
	}
	if decl.Name != "color" || decl.Important {
		t.Fatalf("decl = %+v", decl)
	}
	if len(decl.Value) != 1 || decl.Value[0].Text != "red" {
		t.Fatalf("value = %+v", decl.Value)
	}
}

func TestParseDeclaration_Important(t *testing.T) {
	cur := csstoken.NewCursor("color: red !important")
	log := diag.NewLog()
	decl, ok := ParseDeclaration(cur, log)
	if !ok {
		t.Fatalf("ParseDeclaration failed: %v", log.Msgs())
	}
	if !decl.Important {
		t.Fatalf("decl = %+v, want Important", decl)
	}
	if len(decl.Value) != 1 || decl.Value[0].Text != "red" {
		t.Fatalf("value = %+v, want just \"red\" with !important stripped", decl.Value)
	}
}

func TestParseDeclaration_ImportantCaseInsensitiveAndSpaced(t *testing.T) {
	cur := csstoken.NewCursor("color: red ! IMPORTANT")
	log := diag.NewLog()
	decl, ok := ParseDeclaration(cur, log)
	if !ok {
		t.Fatalf("ParseDeclaration failed: %v", log.Msgs())
	}
	if !decl.Important {
		t.Fatalf("decl = %+v, want Important", decl)
	}
}

func TestParseDeclaration_MissingColon(t *testing.T) {
	cur := csstoken.NewCursor("color red")
	log := diag.NewLog()
	_, ok := ParseDeclaration(cur, log)
	if ok {
		t.Fatalf("expected failure for a missing \":\"")
	}
	if !log.HasErrors() {
		t.Fatalf("expected a diagnostic for the missing \":\"")
	}
}

func TestParseDeclaration_NotAnIdent(t *testing.T) {
	cur := csstoken.NewCursor("123: red")
	log := diag.NewLog()
	_, ok := ParseDeclaration(cur, log)
	if ok {
		t.Fatalf("expected failure for a non-ident declaration name")
	}
}

func TestParseDeclaration_StopsAtSemicolonOrBrace(t *testing.T) {
	cur := csstoken.NewCursor("color: red; next: 1")
	log := diag.NewLog()
	decl, ok := ParseDeclaration(cur, log)
	if !ok {
		t.Fatalf("ParseDeclaration failed: %v", log.Msgs())
	}
	if !cur.Is(csstoken.TSemicolon) {
		t.Fatalf("cursor should stop before the \";\", got %v", cur.Peek().Kind)
	}
	if len(decl.Value) != 1 || decl.Value[0].Text != "red" {
		t.Fatalf("value = %+v", decl.Value)
	}
}
