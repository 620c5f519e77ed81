package cssvalue

import (
	"strings"

	"github.com/cssat/atrules/internal/cssast"
	"github.com/cssat/atrules/internal/csstoken"
	"github.com/cssat/atrules/internal/diag"
)

// ParseDeclaration consumes "<ident> : <value> [!important]" with the
// cursor positioned on the name ident. It does not consume a trailing
// ";" or "}" — callers (the DeclarationList/StyleBlock grammars, and
// <supports-feature>'s "( <declaration> )" form) decide what follows.
func ParseDeclaration(cur *csstoken.Cursor, log *diag.Log) (cssast.Declaration, bool) {
	nameTok := cur.Peek()
	if nameTok.Kind != csstoken.TIdent {
		log.ExpectedButFound(tokenRange(nameTok), "identifier", nameTok.Kind.String())
		return cssast.Declaration{}, false
	}
	cur.Bump()
	name := nameTok.Text
	nameSpan := nameTok.Span

	cur.SkipWS()
	if !cur.Eat(csstoken.TColon) {
		log.ExpectedButFound(tokenRange(cur.Peek()), "\":\"", cur.Peek().Kind.String())
		return cssast.Declaration{}, false
	}
	cur.SkipWS()

	value := ParseComponentValuesUntilAny(cur, csstoken.TSemicolon, csstoken.TRBrace)

	important, value := extractImportant(value)

	hi := nameSpan.Hi
	if len(value) > 0 {
		hi = value[len(value)-1].Span.Hi
	} else {
		hi = cur.LastEndPos()
	}

	return cssast.Declaration{
		Span:      csstoken.Span{Lo: nameSpan.Lo, Hi: hi},
		Name:      name,
		NameSpan:  nameSpan,
		Value:     value,
		Important: important,
	}, true
}

// extractImportant strips a trailing "! important" (spelled with any
// amount of internal whitespace/comments, already collapsed into
// TWhitespace tokens) from a declaration's decoded value tokens.
func extractImportant(value []cssast.ComponentValue) (bool, []cssast.ComponentValue) {
	trimmed := trimTrailingWhitespace(value)
	n := len(trimmed)
	if n < 2 {
		return false, value
	}
	last := trimmed[n-1]
	if last.Kind != csstoken.TIdent || !strings.EqualFold(last.Text, "important") {
		return false, value
	}
	rest := trimTrailingWhitespace(trimmed[:n-1])
	if len(rest) == 0 || rest[len(rest)-1].Kind != csstoken.TDelimOther || rest[len(rest)-1].Raw != "!" {
		return false, value
	}
	return true, trimTrailingWhitespace(rest[:len(rest)-1])
}

func trimTrailingWhitespace(tokens []cssast.ComponentValue) []cssast.ComponentValue {
	n := len(tokens)
	for n > 0 && tokens[n-1].Kind == csstoken.TWhitespace {
		n--
	}
	return tokens[:n]
}

func tokenRange(t csstoken.Token) diag.Range {
	return diag.Range{Loc: diag.Loc{Start: t.Span.Lo}, Len: t.Span.Hi - t.Span.Lo}
}
