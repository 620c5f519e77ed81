package atparser

import (
	"testing"

	"github.com/cssat/atrules/internal/cssast"
)

func TestDispatcher_VendorPrefixedKeyframesAllResolveToKeyframeList(t *testing.T) {
	for _, prefix := range []string{"", "-webkit-", "-moz-", "-ms-", "-o-"} {
		src := "@" + prefix + "keyframes spin { from { x: 0 } to { x: 1 } }"
		ar, log := parseOneAtRule(t, src)
		if log.HasErrors() {
			t.Fatalf("prefix %q: unexpected diagnostics: %v", prefix, log.Msgs())
		}
		if ar.Block == nil || ar.Block.Grammar != cssast.GrammarKeyframeList {
			t.Fatalf("prefix %q: block = %+v, want GrammarKeyframeList", prefix, ar.Block)
		}
		if len(ar.Block.KeyframeBlocks) != 2 {
			t.Fatalf("prefix %q: keyframe blocks = %+v", prefix, ar.Block.KeyframeBlocks)
		}
	}
}

func TestDispatcher_VendorPrefixedViewportAllResolveToDeclarationList(t *testing.T) {
	for _, prefix := range []string{"", "-webkit-", "-moz-", "-ms-", "-o-"} {
		src := "@" + prefix + "viewport { width: device-width; }"
		ar, log := parseOneAtRule(t, src)
		if log.HasErrors() {
			t.Fatalf("prefix %q: unexpected diagnostics: %v", prefix, log.Msgs())
		}
		if ar.Block == nil || ar.Block.Grammar != cssast.GrammarDeclarationList {
			t.Fatalf("prefix %q: block = %+v, want GrammarDeclarationList", prefix, ar.Block)
		}
		if len(ar.Block.Declarations) != 1 || ar.Block.Declarations[0].Name != "width" {
			t.Fatalf("prefix %q: declarations = %+v", prefix, ar.Block.Declarations)
		}
	}
}

func TestDispatcher_UnrecognizedVendorPrefixIsIgnored(t *testing.T) {
	// Only -webkit-/-moz-/-ms-/-o- are recognized, and only for
	// keyframes/viewport; anything else falls through to the generic
	// unknown-at-rule path rather than being stripped.
	ar, log := parseOneAtRule(t, "@-xyz-keyframes spin { from { x: 0 } }")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if ar.Block != nil && ar.Block.Grammar == cssast.GrammarKeyframeList {
		t.Fatalf("unrecognized vendor prefix should not get the keyframe-list grammar: %+v", ar.Block)
	}
}
