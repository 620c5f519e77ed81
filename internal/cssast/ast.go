// Package cssast defines the typed AST the at-rule core builds: at-rules,
// their family-specific preludes, simple blocks, and the shared
// component-value / declaration leaves that the (minimal, in-scope)
// value-level services in internal/cssvalue produce. Every node carries a
// Span; children's spans lie within their parent's.
package cssast

import "github.com/cssat/atrules/internal/csstoken"

// Span is reused verbatim from the token cursor: AST spans are always
// expressed in the same byte-offset coordinate space as token spans.
type Span = csstoken.Span

// IdentKind distinguishes a plain ident name from a dashed-ident
// (custom-ident starting with "--").
type IdentKind uint8

const (
	IdentPlain IdentKind = iota
	IdentDashed
)

// AtRuleName is the at-keyword's name, spanning one byte after the "@".
type AtRuleName struct {
	Span  Span
	Raw   string // exact source casing, for round-trip
	Lower string // ASCII-lowercased, used for dispatch
	Kind  IdentKind
}

// Prelude is the tagged union of at-rule preludes, one implementation per
// family.
type Prelude interface{ isPrelude() }

// AtRule is the dispatcher's output. Prelude is nil
// exactly when the family allows an absent prelude and none was present.
// Block is nil for at-rules terminated by ";".
type AtRule struct {
	Span    Span
	Name    AtRuleName
	Prelude Prelude
	Block   *SimpleBlock
}

// BlockGrammar selects how a SimpleBlock's contents are interpreted.
type BlockGrammar uint8

const (
	GrammarNone BlockGrammar = iota
	GrammarStylesheet
	GrammarStyleBlock
	GrammarDeclarationList
	GrammarDeclarationValue
	GrammarNoGrammar
	GrammarKeyframeList // @keyframes's special-cased block
)

func (g BlockGrammar) String() string {
	switch g {
	case GrammarStylesheet:
		return "Stylesheet"
	case GrammarStyleBlock:
		return "StyleBlock"
	case GrammarDeclarationList:
		return "DeclarationList"
	case GrammarDeclarationValue:
		return "DeclarationValue"
	case GrammarNoGrammar:
		return "NoGrammar"
	case GrammarKeyframeList:
		return "KeyframeList"
	default:
		return "None"
	}
}

// SimpleBlock is brace-delimited content parsed under a specific
// BlockGrammar. The payload field matching Grammar is populated; a
// DeclarationList block may also carry nested at-rules in Rules (page
// margin boxes, @font-feature-values sub-rules).
type SimpleBlock struct {
	Span    Span
	Grammar BlockGrammar

	Rules          []Rule          // Stylesheet / StyleBlock; nested at-rules of a DeclarationList
	Declarations   []Declaration   // DeclarationList
	Value          []ComponentValue // DeclarationValue / NoGrammar
	KeyframeBlocks []KeyframeBlock // GrammarKeyframeList
}

// ComponentValue is the generic unit the (out-of-scope, minimally
// implemented here) component-value parser produces: either a single
// token or a function/simple-block with nested children.
type ComponentValue struct {
	Span     Span
	Kind     csstoken.T
	Text     string
	Raw      string
	Children []ComponentValue // contents of TFunction/TLBrace/TLParen/TLBracket; nil when empty
}

// Declaration is a single "name: value [!important]" pair, the leaf the
// DeclarationList / DeclarationValue grammars bottom out at.
type Declaration struct {
	Span      Span
	Name      string
	NameSpan  Span
	Value     []ComponentValue
	Important bool
}

// RuleData is the tagged union of things that can appear in a
// Stylesheet/StyleBlock-grammar SimpleBlock.
type RuleData interface{ isRuleData() }

type Rule struct {
	Span Span
	Data RuleData
}

// RAtRule wraps a nested at-rule (the dispatcher recurses into itself for
// e.g. "@media { @supports { ... } }").
type RAtRule struct{ AtRule AtRule }

// RQualified is a qualified (selector) rule. Selector parsing is an
// out-of-scope external collaborator; its prelude is kept as
// opaque component values rather than a structured selector list.
type RQualified struct {
	Prelude []ComponentValue
	Block   SimpleBlock
}

type RDeclaration struct{ Declaration Declaration }

// RBadDeclaration preserves a syntactically-invalid declaration's tokens
// instead of dropping them, so recovery still returns something with a
// sensible span.
type RBadDeclaration struct{ Tokens []ComponentValue }

func (*RAtRule) isRuleData()         {}
func (*RQualified) isRuleData()      {}
func (*RDeclaration) isRuleData()    {}
func (*RBadDeclaration) isRuleData() {}
