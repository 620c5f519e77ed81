package atparser

import (
	"testing"

	"github.com/cssat/atrules/internal/cssast"
)

func TestSimpleFamilies_PropertyDashedIdent(t *testing.T) {
	ar, log := parseOneAtRule(t, "@property --my-color { syntax: \"<color>\"; inherits: false; }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	dip, ok := ar.Prelude.(*cssast.DashedIdentPrelude)
	if !ok || dip.Value != "--my-color" {
		t.Fatalf("prelude = %+v (%T)", ar.Prelude, ar.Prelude)
	}
	if ar.Block == nil || ar.Block.Grammar != cssast.GrammarDeclarationList || len(ar.Block.Declarations) != 2 {
		t.Fatalf("block = %+v", ar.Block)
	}
}

func TestSimpleFamilies_ColorProfileDeviceCMYK(t *testing.T) {
	ar, log := parseOneAtRule(t, "@color-profile device-cmyk { }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	cp := ar.Prelude.(*cssast.ColorProfilePrelude)
	if !cp.DeviceCMYK || cp.Name != "" {
		t.Fatalf("prelude = %+v", cp)
	}
}

func TestSimpleFamilies_ColorProfileDashedIdent(t *testing.T) {
	ar, log := parseOneAtRule(t, "@color-profile --swop5c { }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	cp := ar.Prelude.(*cssast.ColorProfilePrelude)
	if cp.DeviceCMYK || cp.Name != "--swop5c" {
		t.Fatalf("prelude = %+v", cp)
	}
}

func TestSimpleFamilies_CounterStyleAllowsNone(t *testing.T) {
	ar, log := parseOneAtRule(t, "@counter-style none { }")
	if log.HasErrors() {
		t.Fatalf("@counter-style must not forbid \"none\" (unlike @keyframes): %v", log.Msgs())
	}
	ci, ok := ar.Prelude.(*cssast.CustomIdentPrelude)
	if !ok || ci.Value != "none" {
		t.Fatalf("prelude = %+v (%T)", ar.Prelude, ar.Prelude)
	}
}

func TestSimpleFamilies_FontFeatureValuesFamilyList(t *testing.T) {
	ar, log := parseOneAtRule(t, `@font-feature-values "My Family", Other Family { }`)
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	fnl, ok := ar.Prelude.(*cssast.FamilyNameListPrelude)
	if !ok {
		t.Fatalf("prelude type = %T", ar.Prelude)
	}
	if len(fnl.Names) != 2 || !fnl.Names[0].IsQuoted || fnl.Names[0].Value != "My Family" {
		t.Fatalf("names[0] = %+v", fnl.Names[0])
	}
	if fnl.Names[1].IsQuoted || fnl.Names[1].Value != "Other Family" {
		t.Fatalf("names[1] = %+v", fnl.Names[1])
	}
}

// font-feature-values sub-rules (swash, styleset, ...) are recognized
// only inside @font-feature-values's block.
func TestSimpleFamilies_FontFeatureValuesSubRules(t *testing.T) {
	ar, log := parseOneAtRule(t, `@font-feature-values "My Family" { @swash { ornate: 1; } }`)
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if ar.Block == nil || len(ar.Block.Rules) != 1 {
		t.Fatalf("block = %+v", ar.Block)
	}
	rat, ok := ar.Block.Rules[0].Data.(*cssast.RAtRule)
	if !ok || rat.AtRule.Name.Lower != "swash" {
		t.Fatalf("rule data = %+v", ar.Block.Rules[0].Data)
	}
	if rat.AtRule.Prelude != nil {
		t.Fatalf("sub-rule prelude must be nil, got %+v", rat.AtRule.Prelude)
	}
	if rat.AtRule.Block == nil || len(rat.AtRule.Block.Declarations) != 1 {
		t.Fatalf("sub-rule block = %+v", rat.AtRule.Block)
	}
}

func TestSimpleFamilies_NestOpaquePrelude(t *testing.T) {
	ar, log := parseOneAtRule(t, "@nest .parent & { color: red; }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	lst, ok := ar.Prelude.(*cssast.ListOfComponentValues)
	if !ok || len(lst.Values) == 0 {
		t.Fatalf("prelude = %+v (%T)", ar.Prelude, ar.Prelude)
	}
	if ar.Block == nil || ar.Block.Grammar != cssast.GrammarStyleBlock {
		t.Fatalf("block = %+v, want StyleBlock grammar", ar.Block)
	}
}

func TestSimpleFamilies_FontFaceAndViewportHaveNoPrelude(t *testing.T) {
	ar, log := parseOneAtRule(t, "@font-face { font-family: Arial; }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if ar.Prelude != nil {
		t.Fatalf("@font-face prelude = %+v, want nil", ar.Prelude)
	}

	ar2, log2 := parseOneAtRule(t, "@viewport { width: device-width; }")
	if log2.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log2.Msgs())
	}
	if ar2.Prelude != nil {
		t.Fatalf("@viewport prelude = %+v, want nil", ar2.Prelude)
	}
}
