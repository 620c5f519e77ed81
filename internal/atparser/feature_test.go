package atparser

import (
	"testing"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

func parseFeatureFromParen(t *testing.T, source string) (cssast.Feature, *diag.Log) {
	t.Helper()
	cur := csstoken.NewCursor(source)
	log := diag.NewLog()
	f, err := parseFeature(cur, log)
	if err != nil {
		t.Fatalf("parseFeature(%q) = %v", source, err)
	}
	return f, log
}

func TestFeature_Boolean(t *testing.T) {
	f, log := parseFeatureFromParen(t, "(color)")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if f.Kind != cssast.FeatureBoolean || f.Name != "color" {
		t.Fatalf("feature = %+v", f)
	}
}

func TestFeature_Plain(t *testing.T) {
	f, log := parseFeatureFromParen(t, "(min-width: 100px)")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if f.Kind != cssast.FeaturePlain || f.Name != "min-width" {
		t.Fatalf("feature = %+v", f)
	}
	if f.PlainValue == nil || f.PlainValue.DimensionValue != "100" || f.PlainValue.DimensionUnit != "px" {
		t.Fatalf("plain value = %+v", f.PlainValue)
	}
}

// Two-term range: name-first ("width > 400px").
func TestFeature_TwoTermRangeNameFirst(t *testing.T) {
	f, log := parseFeatureFromParen(t, "(width > 400px)")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if f.Kind != cssast.FeatureRangeKind || f.Name != "width" {
		t.Fatalf("feature = %+v", f)
	}
	if f.LeftOp != cssast.CmpNone || f.RightOp != cssast.CmpGt {
		t.Fatalf("ops = left:%v right:%v", f.LeftOp, f.RightOp)
	}
	if f.Right == nil || f.Right.DimensionValue != "400" {
		t.Fatalf("right = %+v", f.Right)
	}
}

// Two-term range: name-second ("400px < width").
func TestFeature_TwoTermRangeNameSecond(t *testing.T) {
	f, log := parseFeatureFromParen(t, "(400px < width)")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if f.Kind != cssast.FeatureRangeKind || f.Name != "width" {
		t.Fatalf("feature = %+v", f)
	}
	if f.Left == nil || f.Left.DimensionValue != "400" || f.LeftOp != cssast.CmpLt {
		t.Fatalf("left = %+v op=%v", f.Left, f.LeftOp)
	}
}

// Three-term range, both comparisons "<".
func TestFeature_ThreeTermRangeSameDirection(t *testing.T) {
	f, log := parseFeatureFromParen(t, "(400px < width < 800px)")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Msgs())
	}
	if f.Name != "width" || f.LeftOp != cssast.CmpLt || f.RightOp != cssast.CmpLt {
		t.Fatalf("feature = %+v", f)
	}
}

// Mixed-direction three-term range is a KindMixedRangeDirection diagnostic.
func TestFeature_ThreeTermRangeMixedDirection(t *testing.T) {
	cur := csstoken.NewCursor("(400px < width > 800px)")
	log := diag.NewLog()
	_, err := parseFeature(cur, log)
	if err == nil {
		t.Fatalf("expected an error for a mixed-direction range")
	}
	msgs := log.Msgs()
	if len(msgs) != 1 || msgs[0].Kind != diag.KindMixedRangeDirection {
		t.Fatalf("diagnostics = %+v, want exactly one KindMixedRangeDirection", msgs)
	}
}

func TestFeature_NotAParen(t *testing.T) {
	cur := csstoken.NewCursor("screen")
	log := diag.NewLog()
	_, err := parseFeature(cur, log)
	if err != errIgnore {
		t.Fatalf("err = %v, want errIgnore", err)
	}
	if log.HasErrors() {
		t.Fatalf("errIgnore path must not log anything")
	}
}
