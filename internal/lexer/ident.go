package lexer

import "strings"

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || isDecDigit(r)
}

// lexIdentifierFrom consumes the remainder of a maximal [A-Za-z0-9_]* run
// whose first character has already been consumed, then classifies it
// against the closed keyword set (§4.6).
func (l *Lexer) lexIdentifierFrom(start int, first rune) Token {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		r, ok := l.cur.peek(0)
		if !ok || !isIdentChar(r) {
			break
		}
		l.cur.consume()
		sb.WriteRune(r)
	}
	word := sb.String()
	if kw, ok := LookupKeyword(word); ok {
		return Token{Kind: Keyword, Keyword: kw, Span: NewSpan(start, l.cur.at())}
	}
	return Token{Kind: Identifier, Text: word, Span: NewSpan(start, l.cur.at())}
}
