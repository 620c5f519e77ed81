package cssast

// CharsetPrelude is @charset's single-string prelude.
type CharsetPrelude struct {
	Span         Span
	Encoding     string
	EncodingSpan Span
}

func (*CharsetPrelude) isPrelude() {}

// ImportLayer is @import's optional "layer" or "layer(<layer-name>)"
// clause.
type ImportLayer struct {
	Span      Span
	Anonymous bool // bare "layer" keyword, no name
	Name      *LayerName
}

// ImportSupports is @import's optional "supports(...)" clause, accepting
// either a full <supports-condition> or a single <declaration>.
type ImportSupports struct {
	Span        Span
	Condition   *SupportsCondition
	Declaration *Declaration
}

// ImportPrelude is @import's prelude: href, then optional layer, supports,
// and media, strictly in that order.
type ImportPrelude struct {
	Span      Span
	Href      string
	HrefSpan  Span
	HrefIsURL bool // true for url(...)/URL(...), false for a bare string
	Layer     *ImportLayer
	Supports  *ImportSupports
	Media     MediaQueryList
}

func (*ImportPrelude) isPrelude() {}

// NamespacePrelude is @namespace's prelude: an optional prefix ident then
// a string-or-url.
type NamespacePrelude struct {
	Span      Span
	Prefix    *string
	PrefixSpan Span
	URI       string
	URISpan   Span
}

func (*NamespacePrelude) isPrelude() {}

// CustomMediaPrelude is @custom-media's prelude: a dashed extension-name
// then either a boolean ident or a <media-query-list>.
type CustomMediaPrelude struct {
	Span      Span
	Name      string
	NameSpan  Span
	BoolValue *bool
	Queries   MediaQueryList
}

func (*CustomMediaPrelude) isPrelude() {}

// DocumentMatcherKind distinguishes the function forms @document (and
// -moz-document) accept.
type DocumentMatcherKind uint8

const (
	DocumentMatcherURL DocumentMatcherKind = iota
	DocumentMatcherURLPrefix
	DocumentMatcherDomain
	DocumentMatcherRegexp
	DocumentMatcherFunction
)

type DocumentMatcher struct {
	Span Span
	Kind DocumentMatcherKind
	Name string // function name as written, for DocumentMatcherFunction
	Arg  string // decoded string/url argument
}

// DocumentPrelude is @document's / -moz-document's comma-list prelude.
type DocumentPrelude struct {
	Span     Span
	Matchers []DocumentMatcher
}

func (*DocumentPrelude) isPrelude() {}

// DashedIdentPrelude covers the several at-rules whose prelude is a
// single dashed-ident: @font-palette-values, @property, and (one of two
// shapes) @color-profile.
type DashedIdentPrelude struct {
	Span  Span
	Value string
}

func (*DashedIdentPrelude) isPrelude() {}

// ColorProfilePrelude is @color-profile's prelude: a dashed-ident or the
// bare keyword "device-cmyk".
type ColorProfilePrelude struct {
	Span          Span
	Name          string // dashed-ident value, empty when DeviceCMYK
	DeviceCMYK    bool
}

func (*ColorProfilePrelude) isPrelude() {}

// CustomIdentPrelude covers @counter-style's prelude: a single
// custom-ident.
type CustomIdentPrelude struct {
	Span  Span
	Value string
}

func (*CustomIdentPrelude) isPrelude() {}

// FamilyNameListPrelude is @font-feature-values's prelude: a comma list
// of family names.
type FamilyNameListPrelude struct {
	Span  Span
	Names []FamilyName
}

func (*FamilyNameListPrelude) isPrelude() {}

// ListOfComponentValues is both the dispatcher's generic recovery prelude
// and, as a deliberate simplification, @nest's prelude in place of a full
// selector-list grammar.
type ListOfComponentValues struct {
	Span   Span
	Values []ComponentValue
}

func (*ListOfComponentValues) isPrelude() {}
