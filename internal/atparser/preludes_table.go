package atparser

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

var vendorFamilyPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-"}

// normalizeFamily strips a recognized vendor prefix from families that
// vary by vendor (@keyframes, @viewport), so the dispatch table only has
// to name the unprefixed family once.
func normalizeFamily(lower string) string {
	for _, p := range vendorFamilyPrefixes {
		if rest, ok := strings.CutPrefix(lower, p); ok && (rest == "keyframes" || rest == "viewport") {
			return rest
		}
	}
	return lower
}

var marginBoxNames = map[string]bool{
	"top-left-corner": true, "top-left": true, "top-center": true, "top-right": true, "top-right-corner": true,
	"bottom-left-corner": true, "bottom-left": true, "bottom-center": true, "bottom-right": true, "bottom-right-corner": true,
	"left-top": true, "left-middle": true, "left-bottom": true,
	"right-top": true, "right-middle": true, "right-bottom": true,
}

var fontFeatureValuesSubRules = map[string]bool{
	"stylistic": true, "swash": true, "styleset": true, "character-variant": true,
	"historical-forms": true, "annotation": true, "ornaments": true,
}

// resolvePrelude implements the per-family prelude table. Returns
// errIgnore for any family not recognized at all (the dispatcher's generic
// fallback then takes over).
func resolvePrelude(lower string, cur *csstoken.Cursor, ctx ParseContext, log *diag.Log, cfg Config) (cssast.Prelude, error) {
	family := normalizeFamily(lower)

	if ctx.InPageAtRule && marginBoxNames[lower] {
		return nil, nil
	}
	if ctx.InFontFeatureValuesAtRule && fontFeatureValuesSubRules[lower] {
		return nil, nil
	}

	switch family {
	case "charset":
		p, err := ParseCharsetPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "import":
		p, err := ParseImportPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "namespace":
		p, err := ParseNamespacePrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "media":
		cur.SkipWS()
		if cur.Is(csstoken.TLBrace) || cur.Peek().Kind == csstoken.TEOF {
			return nil, nil
		}
		mql := ParseMediaQueryList(cur, log, csstoken.TLBrace)
		return &mql, nil
	case "supports":
		p, err := ParseSupportsPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "container":
		p, err := ParseContainerPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "keyframes":
		p, err := ParseKeyframesPrelude(cur, log, cfg.CSSModules)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "layer":
		p, err := ParseLayerPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "document", "-moz-document":
		p, err := ParseDocumentPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "page":
		p, err := ParsePagePrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "font-face":
		return nil, nil
	case "viewport":
		return nil, nil
	case "font-palette-values":
		p, err := ParseDashedIdentPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "font-feature-values":
		p, err := ParseFontFeatureValuesPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "property":
		p, err := ParseDashedIdentPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "counter-style":
		p, err := ParseCounterStylePrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "color-profile":
		p, err := ParseColorProfilePrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "nest":
		p, err := ParseNestPrelude(cur)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case "custom-media":
		p, err := ParseCustomMediaPrelude(cur, log)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, errIgnore
	}
}

// legalTerminator reports which terminators are legal after a prelude,
// including @layer's prelude-dependent none/single/comma-list dichotomy
// and @custom-media's open-ended carve-out.
func legalTerminator(lower string, prelude cssast.Prelude) (brace, semi bool) {
	family := normalizeFamily(lower)
	switch family {
	case "charset", "import", "namespace":
		return false, true
	case "custom-media":
		return true, true
	case "layer":
		lp, _ := prelude.(*cssast.LayerPrelude)
		switch {
		case lp == nil:
			return true, false
		case len(lp.Names) == 1:
			return true, true
		default:
			return false, true
		}
	default:
		return true, false
	}
}

// blockGrammarFor selects the block-contents grammar for a family,
// returning it together with the (possibly flag-updated) context the
// block's contents should be parsed under.
func blockGrammarFor(lower string, outerCtx ParseContext) (cssast.BlockGrammar, ParseContext) {
	family := normalizeFamily(lower)

	if outerCtx.InPageAtRule && marginBoxNames[lower] {
		return cssast.GrammarDeclarationList, outerCtx.withGrammar(cssast.GrammarDeclarationList)
	}
	if outerCtx.InFontFeatureValuesAtRule && fontFeatureValuesSubRules[lower] {
		return cssast.GrammarDeclarationList, outerCtx.withGrammar(cssast.GrammarDeclarationList)
	}

	switch family {
	case "viewport", "font-face", "font-palette-values", "property", "color-profile", "counter-style":
		return cssast.GrammarDeclarationList, outerCtx.withGrammar(cssast.GrammarDeclarationList)
	case "font-feature-values":
		ctx := outerCtx.withFontFeatureValuesAtRule().withGrammar(cssast.GrammarDeclarationList)
		return cssast.GrammarDeclarationList, ctx
	case "page":
		ctx := outerCtx.withPageAtRule().withGrammar(cssast.GrammarDeclarationList)
		return cssast.GrammarDeclarationList, ctx
	case "keyframes":
		return cssast.GrammarKeyframeList, outerCtx.withGrammar(cssast.GrammarKeyframeList)
	case "layer":
		return cssast.GrammarStylesheet, outerCtx.withGrammar(cssast.GrammarStylesheet)
	case "nest":
		return cssast.GrammarStyleBlock, outerCtx.withGrammar(cssast.GrammarStyleBlock)
	case "media", "supports", "document", "-moz-document":
		if outerCtx.BlockContentsGrammar == cssast.GrammarStyleBlock {
			return cssast.GrammarStyleBlock, outerCtx.withGrammar(cssast.GrammarStyleBlock)
		}
		return cssast.GrammarStylesheet, outerCtx.withGrammar(cssast.GrammarStylesheet)
	case "container":
		if outerCtx.BlockContentsGrammar == cssast.GrammarStyleBlock {
			ctx := outerCtx.withContainerAtRule()
			return cssast.GrammarStyleBlock, ctx.withGrammar(cssast.GrammarStyleBlock)
		}
		return cssast.GrammarStylesheet, outerCtx.withGrammar(cssast.GrammarStylesheet)
	default:
		return cssast.GrammarNoGrammar, outerCtx.withGrammar(cssast.GrammarNoGrammar)
	}
}
