package atparser

import (
	"testing"

	"github.com/cssat/atrules/internal/cssast"
)

// Three keyframe blocks with from/percentage/to selectors.
func TestKeyframes_BlockSelectors(t *testing.T) {
	ar, log := parseOneAtRule(t, "@keyframes spin { from { x: 0 } 50% { x: 1 } to { x: 2 } }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	kp, ok := ar.Prelude.(*cssast.KeyframesPrelude)
	if !ok {
		t.Fatalf("prelude type = %T", ar.Prelude)
	}
	if kp.Name.Value != "spin" || kp.Name.Kind != cssast.KeyframesNameCustomIdent {
		t.Fatalf("name = %+v", kp.Name)
	}
	if ar.Block == nil || ar.Block.Grammar != cssast.GrammarKeyframeList {
		t.Fatalf("block = %+v", ar.Block)
	}
	blocks := ar.Block.KeyframeBlocks
	if len(blocks) != 3 {
		t.Fatalf("got %d keyframe blocks, want 3", len(blocks))
	}
	if blocks[0].Selectors[0].Kind != cssast.KeyframeSelectorFrom {
		t.Fatalf("blocks[0] selector = %+v", blocks[0].Selectors[0])
	}
	if blocks[1].Selectors[0].Kind != cssast.KeyframeSelectorPercentage || blocks[1].Selectors[0].Percentage != "50" {
		t.Fatalf("blocks[1] selector = %+v", blocks[1].Selectors[0])
	}
	if blocks[2].Selectors[0].Kind != cssast.KeyframeSelectorTo {
		t.Fatalf("blocks[2] selector = %+v", blocks[2].Selectors[0])
	}
	if len(blocks[0].Declarations) != 1 || blocks[0].Declarations[0].Name != "x" {
		t.Fatalf("blocks[0] declarations = %+v", blocks[0].Declarations)
	}
}

// "none" is forbidden as a @keyframes name.
func TestKeyframes_NoneForbidden(t *testing.T) {
	_, log := parseOneAtRule(t, "@keyframes none { }")
	if !log.HasErrors() {
		t.Fatalf("expected a diagnostic rejecting \"none\" as a keyframes name")
	}
}

// Vendor-prefixed spellings normalize to the same rule family.
func TestKeyframes_VendorPrefixNormalizes(t *testing.T) {
	ar, log := parseOneAtRule(t, "@-webkit-keyframes spin { from { x: 0 } }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if ar.Block == nil || ar.Block.Grammar != cssast.GrammarKeyframeList {
		t.Fatalf("vendor-prefixed @keyframes did not get the keyframe-list grammar: %+v", ar.Block)
	}
}
