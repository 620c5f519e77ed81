package atparser

import (
	"testing"

	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

func TestParseCharsetPrelude_Success(t *testing.T) {
	cur := csstoken.NewCursor(`"utf-8"`)
	log := diag.NewLog()
	cp, err := ParseCharsetPrelude(cur, log)
	if err != nil {
		t.Fatalf("ParseCharsetPrelude failed: %v", log.Msgs())
	}
	if cp.Encoding != "utf-8" {
		t.Fatalf("cp = %+v", cp)
	}
}

func TestParseCharsetPrelude_NotAString(t *testing.T) {
	cur := csstoken.NewCursor("utf-8")
	log := diag.NewLog()
	_, err := ParseCharsetPrelude(cur, log)
	if err == nil {
		t.Fatalf("expected failure for a bare ident")
	}
	if !log.HasErrors() {
		t.Fatalf("expected a diagnostic")
	}
}
