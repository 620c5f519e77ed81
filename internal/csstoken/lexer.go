package csstoken

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Tokenize scans source in full and returns the token slice the Cursor
// walks. The core parser never reparses incrementally, so
// up-front tokenization (rather than a pull-based stream) keeps the cursor
// trivially restartable: a saved state is just a slice index.
func Tokenize(source string) []Token {
	lexer := css.NewLexer(parse.NewInputString(source))
	var out []Token
	pos := 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		raw := string(data)
		start := pos
		end := pos + len(raw)
		pos = end
		span := Span{Lo: start, Hi: end}

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			out = append(out, Token{Span: span, Kind: TWhitespace, Raw: raw})

		case css.AtKeywordToken:
			text := decodeIdentLike(raw[1:])
			out = append(out, Token{Span: span, Kind: TAtKeyword, Raw: raw, Text: text, IsDashed: strings.HasPrefix(text, "--")})

		case css.IdentToken:
			text := decodeIdentLike(raw)
			out = append(out, Token{Span: span, Kind: TIdent, Raw: raw, Text: text, IsDashed: strings.HasPrefix(text, "--")})

		case css.FunctionToken:
			// tdewolff includes the trailing "(" in the function token's raw bytes
			text := decodeIdentLike(raw[:len(raw)-1])
			out = append(out, Token{Span: span, Kind: TFunction, Raw: raw, Text: text, IsDashed: strings.HasPrefix(text, "--")})

		case css.StringToken:
			out = append(out, Token{Span: span, Kind: TString, Raw: raw, Text: decodeString(raw)})

		case css.BadStringToken:
			out = append(out, Token{Span: span, Kind: TBadString, Raw: raw})

		case css.URLToken:
			out = append(out, Token{Span: span, Kind: TURL, Raw: raw, Text: decodeURL(raw)})

		case css.BadURLToken:
			out = append(out, Token{Span: span, Kind: TBadURL, Raw: raw})

		case css.NumberToken:
			kind := TNumber
			if isIntegerLiteral(raw) {
				kind = TInteger
			}
			out = append(out, Token{Span: span, Kind: kind, Raw: raw, Text: raw})

		case css.PercentageToken:
			out = append(out, Token{Span: span, Kind: TPercentage, Raw: raw, Text: strings.TrimSuffix(raw, "%")})

		case css.DimensionToken:
			numLen := numericPrefixLen(raw)
			out = append(out, Token{Span: span, Kind: TDimension, Raw: raw, Text: raw, UnitOffset: numLen})

		case css.ColonToken:
			out = append(out, Token{Span: span, Kind: TColon, Raw: raw})

		case css.SemicolonToken:
			out = append(out, Token{Span: span, Kind: TSemicolon, Raw: raw})

		case css.CommaToken:
			out = append(out, Token{Span: span, Kind: TDelimComma, Raw: raw})

		case css.LeftBraceToken:
			out = append(out, Token{Span: span, Kind: TLBrace, Raw: raw})

		case css.RightBraceToken:
			out = append(out, Token{Span: span, Kind: TRBrace, Raw: raw})

		case css.LeftParenthesisToken:
			out = append(out, Token{Span: span, Kind: TLParen, Raw: raw})

		case css.RightParenthesisToken:
			out = append(out, Token{Span: span, Kind: TRParen, Raw: raw})

		case css.LeftBracketToken:
			out = append(out, Token{Span: span, Kind: TLBracket, Raw: raw})

		case css.RightBracketToken:
			out = append(out, Token{Span: span, Kind: TRBracket, Raw: raw})

		case css.DelimToken:
			out = append(out, delimToken(span, raw))

		default:
			// CDO/CDC, hash, unicode-range, match operators and anything else
			// not needed by at-rule grammars is preserved verbatim as a
			// generic delimiter-ish token so downstream component-value
			// collection never silently drops source text.
			out = append(out, Token{Span: span, Kind: TDelimOther, Raw: raw, Text: raw})
		}
	}

	out = append(out, Token{Span: Span{Lo: pos, Hi: pos}, Kind: TEOF})
	return out
}

func delimToken(span Span, raw string) Token {
	switch raw {
	case "<":
		return Token{Span: span, Kind: TLT, Raw: raw}
	case ">":
		return Token{Span: span, Kind: TGT, Raw: raw}
	case "=":
		return Token{Span: span, Kind: TEq, Raw: raw}
	case "/":
		return Token{Span: span, Kind: TSlash, Raw: raw}
	case ".":
		return Token{Span: span, Kind: TDot, Raw: raw}
	default:
		return Token{Span: span, Kind: TDelimOther, Raw: raw, Text: raw}
	}
}

func isIntegerLiteral(raw string) bool {
	for _, c := range raw {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}

func numericPrefixLen(raw string) int {
	i := 0
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i < len(raw) && raw[i] == '.' {
		j := i + 1
		for j < len(raw) && raw[j] >= '0' && raw[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	if i < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if j < len(raw) && (raw[j] == '+' || raw[j] == '-') {
			j++
		}
		k := j
		for k < len(raw) && raw[k] >= '0' && raw[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// decodeIdentLike resolves CSS escapes in an identifier-family raw token.
// Escapes are rare in practice, so this only pays the cost when a
// backslash is actually present.
func decodeIdentLike(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			// Hex escape: up to 6 hex digits optionally followed by one whitespace.
			if isHexDigit(raw[i]) {
				j := i
				for j < len(raw) && j < i+6 && isHexDigit(raw[j]) {
					j++
				}
				if r, ok := parseHexRune(raw[i:j]); ok {
					b.WriteRune(r)
				}
				i = j - 1
				if i+1 < len(raw) && isEscapeWhitespace(raw[i+1]) {
					i++
				}
				continue
			}
			b.WriteByte(raw[i])
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isEscapeWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func parseHexRune(hex string) (rune, bool) {
	var v int64
	for i := 0; i < len(hex); i++ {
		v *= 16
		c := hex[i]
		switch {
		case c >= '0' && c <= '9':
			v += int64(c - '0')
		case c >= 'a' && c <= 'f':
			v += int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int64(c-'A') + 10
		}
	}
	if v <= 0 || v > 0x10FFFF {
		return 0, false
	}
	return rune(v), true
}

func decodeString(raw string) string {
	if len(raw) < 2 {
		return ""
	}
	return decodeIdentLike(raw[1 : len(raw)-1])
}

func decodeURL(raw string) string {
	// raw is "url(" ... ")"; the inner part may itself be quoted.
	inner := raw
	if strings.HasPrefix(inner, "url(") || strings.HasPrefix(inner, "URL(") {
		inner = inner[4:]
	}
	inner = strings.TrimSuffix(inner, ")")
	inner = strings.TrimSpace(inner)
	if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') {
		return decodeIdentLike(inner[1 : len(inner)-1])
	}
	return decodeIdentLike(inner)
}
