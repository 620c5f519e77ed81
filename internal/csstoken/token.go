// Package csstoken implements the restartable token cursor that the at-rule
// core consumes as an external service. Raw scanning is delegated
// to github.com/tdewolff/parse/v2/css; this package re-buckets that
// lexer's token stream into the finer-grained kinds the at-rule grammars
// need (in particular splitting delimiters into LT/GT/Eq/Slash/Dot rather
// than a single generic "delim" kind, and recognizing integers as a
// sub-kind of number).
package csstoken

// Span is a byte-offset range into the original source. Lo is the position
// of the first byte of the token; Hi is one past the last byte.
type Span struct {
	Lo, Hi int
}

func (s Span) IsValid() bool { return s.Hi >= s.Lo }

// Union returns the smallest span containing both a and b.
func Union(a, b Span) Span {
	lo, hi := a.Lo, a.Hi
	if b.Lo < lo {
		lo = b.Lo
	}
	if b.Hi > hi {
		hi = b.Hi
	}
	return Span{Lo: lo, Hi: hi}
}

// T enumerates the token kinds recognized by the at-rule grammars.
type T uint8

const (
	TEOF T = iota
	TAtKeyword
	TIdent
	TFunction
	TString
	TURL
	TBadString
	TBadURL
	TNumber
	TInteger
	TDimension
	TPercentage
	TDelimComma
	TColon
	TSemicolon
	TLBrace
	TRBrace
	TLParen
	TRParen
	TLBracket
	TRBracket
	TLT
	TGT
	TEq
	TSlash
	TDot
	TDelimOther // any other single-character delimiter (e.g. "&", "*", "#")
	TWhitespace
)

var names = [...]string{
	"end of file",
	"at-keyword",
	"identifier",
	"function",
	"string",
	"URL",
	"bad string",
	"bad URL",
	"number",
	"integer",
	"dimension",
	"percentage",
	"\",\"",
	"\":\"",
	"\";\"",
	"\"{\"",
	"\"}\"",
	"\"(\"",
	"\")\"",
	"\"[\"",
	"\"]\"",
	"\"<\"",
	"\">\"",
	"\"=\"",
	"\"/\"",
	"\".\"",
	"delimiter",
	"whitespace",
}

func (t T) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown token"
}

// Token is a single lexical token together with its source span. Text
// holds the decoded value (e.g. a string's contents without quotes, an
// identifier with escapes resolved); Raw holds the exact source substring
// a caller can use to reconstruct the input byte-for-byte.
type Token struct {
	Span Span
	Kind T
	Text string
	Raw  string

	// UnitOffset splits Text for TDimension tokens: Text[:UnitOffset] is the
	// number, Text[UnitOffset:] is the unit.
	UnitOffset int

	// IsDashed is set for TIdent/TFunction/TAtKeyword tokens whose decoded
	// value starts with "--" (custom-ident / dashed-ident / custom property).
	IsDashed bool
}

func (t Token) Number() string      { return t.Text }
func (t Token) DimensionValue() string {
	return t.Text[:t.UnitOffset]
}
func (t Token) DimensionUnit() string {
	return t.Text[t.UnitOffset:]
}
