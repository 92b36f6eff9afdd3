package lexer

import "strings"

func isQuote(r rune) bool { return r == '\'' || r == '"' }

func (l *Lexer) peekRune(offset int) rune {
	r, ok := l.cur.peek(offset)
	if !ok {
		return 0
	}
	return r
}

// lexPrefixedAtom is entered on seeing 'r', 'f', or 'b' as a dispatch
// character, with that character already consumed. It greedily matches the
// fixed prefix table (§4.5) against a following quote, falling back to
// identifier/keyword recognition when the lookahead does not resolve to a
// string opener (§9 prefix overlap note: "rb_1" is an identifier, "rb'..'"
// is a byte string).
func (l *Lexer) lexPrefixedAtom(start int, first rune) (Token, error) {
	switch first {
	case 'r':
		if q := l.peekRune(0); isQuote(q) {
			l.cur.consume()
			return l.lexStringBody(start, q, RawStr, Bytes, false)
		}
		if second, ok := l.cur.peek(0); ok && (second == 'f' || second == 'b') {
			if q := l.peekRune(1); isQuote(q) {
				l.cur.consume()
				l.cur.consume()
				if second == 'f' {
					return l.lexStringBody(start, q, RawFormat, Bytes, false)
				}
				return l.lexStringBody(start, q, RawStr, RawBytes, true)
			}
		}
	case 'f':
		if q := l.peekRune(0); isQuote(q) {
			l.cur.consume()
			return l.lexStringBody(start, q, Format, Bytes, false)
		}
	case 'b':
		if q := l.peekRune(0); isQuote(q) {
			l.cur.consume()
			return l.lexStringBody(start, q, Str, Bytes, true)
		}
	}
	return l.lexIdentifierFrom(start, first), nil
}

// lexStringBody consumes a string literal given its already-consumed
// opening delimiter. isByte selects the byte-string branch (§4.5's
// resolution of the repository ambiguity: presence of 'b' anywhere in the
// prefix wins, producing ByteString regardless of whether 'r' is also
// present).
func (l *Lexer) lexStringBody(start int, delim rune, textFlavor StringFlavor, bytesFlavor BytesFlavor, isByte bool) (Token, error) {
	long := false
	if r1, ok1 := l.cur.peek(0); ok1 && r1 == delim {
		if r2, ok2 := l.cur.peek(1); ok2 && r2 == delim {
			l.cur.consume()
			l.cur.consume()
			long = true
		}
	}

	var sb strings.Builder
	for {
		r, ok := l.cur.peek(0)
		if !ok {
			return Token{}, newError(UnterminatedString, NewSpan(start, l.cur.at()))
		}
		if !long && (r == '\r' || r == '\n') {
			// A raw newline terminates a short string without being
			// consumed into its span (§9 scenario 9).
			return Token{}, newError(UnterminatedString, NewSpan(start, l.cur.at()))
		}
		l.cur.consume()
		if isByte && r > 0x7F {
			return Token{}, newError(InvalidCharacterInByteString, NewSpan(start, l.cur.at()))
		}
		if !long {
			if r == delim {
				break
			}
			sb.WriteRune(r)
			continue
		}
		if r == delim {
			if r1, ok1 := l.cur.peek(0); ok1 && r1 == delim {
				if r2, ok2 := l.cur.peek(1); ok2 && r2 == delim {
					l.cur.consume()
					l.cur.consume()
					break
				}
			}
		}
		sb.WriteRune(r)
	}

	text := sb.String()
	if isByte {
		return Token{Kind: ByteString, Text: text, BytesFlavor: bytesFlavor, Span: NewSpan(start, l.cur.at())}, nil
	}
	return Token{Kind: String, Text: text, StringFlavor: textFlavor, Span: NewSpan(start, l.cur.at())}, nil
}
