package mucalc

import "fmt"

// tokenType is the kind of lexical token.
type tokenType int

const (
	tokEOF tokenType = iota

	tokLParen   // "("
	tokRParen   // ")"
	tokLAngle   // "<"
	tokRAngle   // ">"
	tokLBracket // "["
	tokRBracket // "]"
	tokDot      // "."
	tokAnd      // "&&"
	tokOr       // "||"

	tokTrue  // "true"
	tokFalse // "false"
	tokMu    // "mu"
	tokNu    // "nu"

	tokVar   // single uppercase letter
	tokIdent // lowercase identifier: an action name
)

// tokenName maps a token kind to its display name for diagnostics.
var tokenName = map[tokenType]string{
	tokEOF:      "end of input",
	tokLParen:   `"("`,
	tokRParen:   `")"`,
	tokLAngle:   `"<"`,
	tokRAngle:   `">"`,
	tokLBracket: `"["`,
	tokRBracket: `"]"`,
	tokDot:      `"."`,
	tokAnd:      `"&&"`,
	tokOr:       `"||"`,
	tokTrue:     `"true"`,
	tokFalse:    `"false"`,
	tokMu:       `"mu"`,
	tokNu:       `"nu"`,
	tokVar:      "variable",
	tokIdent:    "action name",
}

// token is a lexical token with its position (1-based line and column).
type token struct {
	kind   tokenType
	lexeme string
	line   int
	col    int
}

// keywords recognized among lowercase identifiers.
var keywords = map[string]tokenType{
	"true":  tokTrue,
	"false": tokFalse,
	"mu":    tokMu,
	"nu":    tokNu,
}

// lex splits src into tokens, ending with a tokEOF entry. Whitespace is
// insignificant; '%' starts a comment to end of line.
func lex(src string) ([]token, error) {
	toks := make([]token, 0, 16)
	line, col := 1, 1

	advance := func(n int) {
		for i := 0; i < n; i++ {
			if src[i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		src = src[n:]
	}

	for len(src) > 0 {
		c := src[0]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			advance(1)
		case c == '%':
			n := 1
			for n < len(src) && src[n] != '\n' {
				n++
			}
			advance(n)
		case c == '(':
			toks = append(toks, token{kind: tokLParen, lexeme: "(", line: line, col: col})
			advance(1)
		case c == ')':
			toks = append(toks, token{kind: tokRParen, lexeme: ")", line: line, col: col})
			advance(1)
		case c == '<':
			toks = append(toks, token{kind: tokLAngle, lexeme: "<", line: line, col: col})
			advance(1)
		case c == '>':
			toks = append(toks, token{kind: tokRAngle, lexeme: ">", line: line, col: col})
			advance(1)
		case c == '[':
			toks = append(toks, token{kind: tokLBracket, lexeme: "[", line: line, col: col})
			advance(1)
		case c == ']':
			toks = append(toks, token{kind: tokRBracket, lexeme: "]", line: line, col: col})
			advance(1)
		case c == '.':
			toks = append(toks, token{kind: tokDot, lexeme: ".", line: line, col: col})
			advance(1)
		case c == '&' || c == '|':
			if len(src) < 2 || src[1] != c {
				return nil, fmt.Errorf("%w: line %d, col %d: unexpected %q", ErrSyntax, line, col, string(rune(c)))
			}
			kind := tokAnd
			if c == '|' {
				kind = tokOr
			}
			toks = append(toks, token{kind: kind, lexeme: src[:2], line: line, col: col})
			advance(2)
		case c >= 'A' && c <= 'Z':
			toks = append(toks, token{kind: tokVar, lexeme: src[:1], line: line, col: col})
			advance(1)
		case c >= 'a' && c <= 'z':
			n := 1
			for n < len(src) && (src[n] >= 'a' && src[n] <= 'z' ||
				src[n] >= '0' && src[n] <= '9' || src[n] == '_') {
				n++
			}
			word := src[:n]
			kind, isKeyword := keywords[word]
			if !isKeyword {
				kind = tokIdent
			}
			toks = append(toks, token{kind: kind, lexeme: word, line: line, col: col})
			advance(n)
		default:
			return nil, fmt.Errorf("%w: line %d, col %d: unexpected %q", ErrSyntax, line, col, string(rune(c)))
		}
	}
	toks = append(toks, token{kind: tokEOF, lexeme: "", line: line, col: col})

	return toks, nil
}
