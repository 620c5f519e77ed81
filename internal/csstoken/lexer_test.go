package csstoken

import "testing"

func TestTokenize_RawPreservesExactSourceSubstring(t *testing.T) {
	source := `@media (min-width: 100px) { }`
	toks := Tokenize(source)
	for _, tok := range toks {
		if tok.Kind == TEOF {
			continue
		}
		if got := source[tok.Span.Lo:tok.Span.Hi]; got != tok.Raw {
			t.Fatalf("token %+v: source slice %q != Raw %q", tok, got, tok.Raw)
		}
	}
}

func TestTokenize_AtKeywordTextExcludesAt(t *testing.T) {
	toks := Tokenize("@media")
	if toks[0].Kind != TAtKeyword || toks[0].Text != "media" {
		t.Fatalf("token = %+v", toks[0])
	}
	if toks[0].Raw != "@media" {
		t.Fatalf("raw = %q", toks[0].Raw)
	}
}

func TestTokenize_DashedIdentFlag(t *testing.T) {
	toks := Tokenize("--custom-prop")
	if !toks[0].IsDashed {
		t.Fatalf("token = %+v, want IsDashed", toks[0])
	}
}

func TestTokenize_IntegerVsNumber(t *testing.T) {
	toks := Tokenize("42 3.14")
	if toks[0].Kind != TInteger {
		t.Fatalf("token 0 = %+v, want TInteger", toks[0])
	}
	// toks[1] is whitespace, toks[2] the float
	if toks[2].Kind != TNumber {
		t.Fatalf("token 2 = %+v, want TNumber", toks[2])
	}
}

func TestTokenize_DimensionSplitsValueAndUnit(t *testing.T) {
	toks := Tokenize("100px")
	if toks[0].Kind != TDimension {
		t.Fatalf("token = %+v", toks[0])
	}
	if toks[0].DimensionValue() != "100" || toks[0].DimensionUnit() != "px" {
		t.Fatalf("value=%q unit=%q", toks[0].DimensionValue(), toks[0].DimensionUnit())
	}
}

func TestTokenize_ComparisonDelimiters(t *testing.T) {
	toks := Tokenize("< > <= >= =")
	kinds := []T{}
	for _, tok := range toks {
		if tok.Kind != TWhitespace && tok.Kind != TEOF {
			kinds = append(kinds, tok.Kind)
		}
	}
	want := []T{TLT, TGT, TLT, TEq, TGT, TEq, TEq}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestCursor_SaveRestore(t *testing.T) {
	cur := NewCursor("a b c")
	save := cur.Save()
	cur.Bump()
	cur.Bump()
	if cur.Peek().Raw == "a" {
		t.Fatalf("expected cursor to have advanced")
	}
	cur.Restore(save)
	if cur.Peek().Raw != "a" {
		t.Fatalf("Restore did not return to the saved position, got %q", cur.Peek().Raw)
	}
}

func TestCursor_EOFIsStable(t *testing.T) {
	cur := NewCursor("")
	first := cur.Peek()
	cur.Bump()
	second := cur.Peek()
	if first.Kind != TEOF || second.Kind != TEOF {
		t.Fatalf("first=%+v second=%+v", first, second)
	}
}
