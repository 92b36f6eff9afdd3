package lexer

import "strings"

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isAsciiAlnum(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// scanDigitRun consumes a run of digit/underscore characters satisfying
// isDigit, stripping underscores from the returned text. An underscore is
// legal only between two valid digits (§4.4); violating that consumes the
// offending underscore and reports InvalidCharacterAfterUnderscoreInDigitPart
// with a span ending just past it. precedingDigit reports whether a valid
// digit was already consumed by the caller immediately before this run
// starts (e.g. the leading 1-9 of a decimal literal), since that digit is
// not part of sb but still counts for the underscore's left side.
func (l *Lexer) scanDigitRun(start int, isDigit func(rune) bool, precedingDigit bool) (string, *LexerError) {
	var sb strings.Builder
	for {
		r, ok := l.cur.peek(0)
		if !ok {
			break
		}
		if isDigit(r) {
			l.cur.consume()
			sb.WriteRune(r)
			continue
		}
		if r == '_' {
			next, nok := l.cur.peek(1)
			if (sb.Len() == 0 && !precedingDigit) || !nok || !isDigit(next) {
				l.cur.consume()
				return sb.String(), newError(InvalidCharacterAfterUnderscoreInDigitPart, NewSpan(start, l.cur.at()))
			}
			l.cur.consume()
			continue
		}
		break
	}
	return sb.String(), nil
}

// checkImaginarySuffix consumes a trailing "im" if present, applicable only
// to decimal integer and float forms (§4.4).
func (l *Lexer) checkImaginarySuffix() bool {
	r0, ok0 := l.cur.peek(0)
	r1, ok1 := l.cur.peek(1)
	if ok0 && ok1 && r0 == 'i' && r1 == 'm' {
		l.cur.consume()
		l.cur.consume()
		return true
	}
	return false
}

// lexPrefixedInteger lexes the digit body of a 0x/0b/0o literal; the prefix
// itself (e.g. "0x") has already been consumed by the caller.
func (l *Lexer) lexPrefixedInteger(start int, base IntegerBase, isDigit func(rune) bool, missing LexerErrorKind) (Token, error) {
	if r, ok := l.cur.peek(0); ok && r == '_' {
		if next, nok := l.cur.peek(1); nok && isDigit(next) {
			l.cur.consume()
		}
	}
	digits, lerr := l.scanDigitRun(start, isDigit, false)
	if lerr != nil {
		return Token{}, lerr
	}
	if digits == "" {
		return Token{}, newError(missing, NewSpan(start, l.cur.at()))
	}
	if r, ok := l.cur.peek(0); ok && isAsciiAlnum(r) {
		return Token{}, newError(InvalidDigitInInteger, NewSpan(start, l.cur.at()))
	}
	return Token{Kind: Integer, Text: digits, IntegerBase: base, Span: NewSpan(start, l.cur.at())}, nil
}

// lexDecimalLeadingZero lexes a decimal literal whose first character was
// '0' and whose second character is not a base prefix letter.
func (l *Lexer) lexDecimalLeadingZero(start int) (Token, error) {
	for {
		r, ok := l.cur.peek(0)
		if !ok {
			break
		}
		switch {
		case r == '0':
			l.cur.consume()
		case r == '_':
			next, nok := l.cur.peek(1)
			if !nok || !isDecDigit(next) {
				l.cur.consume()
				return Token{}, newError(InvalidCharacterAfterUnderscoreInDigitPart, NewSpan(start, l.cur.at()))
			}
			l.cur.consume()
		case r >= '1' && r <= '9':
			return Token{}, newError(InvalidLeadingZeroInDecInteger, NewSpan(start, l.cur.at()))
		case r == '.':
			l.cur.consume()
			return l.lexFloatFraction(start, "0")
		case r == 'e' || r == 'E':
			l.cur.consume()
			return l.lexExponentTail(start, "0")
		default:
			goto done
		}
	}
done:
	if l.checkImaginarySuffix() {
		return Token{Kind: Imag, Text: "0", Span: NewSpan(start, l.cur.at())}, nil
	}
	return Token{Kind: Integer, Text: "0", IntegerBase: Dec, Span: NewSpan(start, l.cur.at())}, nil
}

// lexDecimalLeadingNonzero lexes a decimal literal starting with 1-9.
func (l *Lexer) lexDecimalLeadingNonzero(start int, first rune) (Token, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	rest, lerr := l.scanDigitRun(start, isDecDigit, true)
	if lerr != nil {
		return Token{}, lerr
	}
	sb.WriteString(rest)
	digits := sb.String()

	if r, ok := l.cur.peek(0); ok && r == '.' {
		l.cur.consume()
		return l.lexFloatFraction(start, digits)
	}
	if r, ok := l.cur.peek(0); ok && (r == 'e' || r == 'E') {
		l.cur.consume()
		return l.lexExponentTail(start, digits)
	}
	if l.checkImaginarySuffix() {
		return Token{Kind: Imag, Text: digits, Span: NewSpan(start, l.cur.at())}, nil
	}
	return Token{Kind: Integer, Text: digits, IntegerBase: Dec, Span: NewSpan(start, l.cur.at())}, nil
}

// lexFloatFraction lexes the digits after a '.' that has already been
// consumed, given the canonicalized integer part seen so far.
func (l *Lexer) lexFloatFraction(start int, intPart string) (Token, error) {
	frac, lerr := l.scanDigitRun(start, isDecDigit, false)
	if lerr != nil {
		return Token{}, lerr
	}
	if frac == "" {
		return Token{}, newError(MissingDigitPartInFloatFraction, NewSpan(start, l.cur.at()))
	}
	text := intPart + "." + frac
	if r, ok := l.cur.peek(0); ok && (r == 'e' || r == 'E') {
		l.cur.consume()
		return l.lexExponentTail(start, text)
	}
	if l.checkImaginarySuffix() {
		return Token{Kind: Imag, Text: text, Span: NewSpan(start, l.cur.at())}, nil
	}
	return Token{Kind: Float, Text: text, Span: NewSpan(start, l.cur.at())}, nil
}

// lexExponentTail lexes an exponent whose 'e'/'E' has already been
// consumed, appending it to prefix (the canonicalized text seen so far).
// The sign is always canonicalized to be explicit in the payload (§9).
func (l *Lexer) lexExponentTail(start int, prefix string) (Token, error) {
	sign := "+"
	if r, ok := l.cur.peek(0); ok && (r == '+' || r == '-') {
		if r == '-' {
			sign = "-"
		}
		l.cur.consume()
	}
	expDigits, lerr := l.scanDigitRun(start, isDecDigit, false)
	if lerr != nil {
		return Token{}, lerr
	}
	if expDigits == "" {
		return Token{}, newError(MissingDigitPartInFloatExponent, NewSpan(start, l.cur.at()))
	}
	text := prefix + "e" + sign + expDigits
	if l.checkImaginarySuffix() {
		return Token{Kind: Imag, Text: text, Span: NewSpan(start, l.cur.at())}, nil
	}
	return Token{Kind: Float, Text: text, Span: NewSpan(start, l.cur.at())}, nil
}

// lexFloatFromDot lexes a literal that starts with '.' followed by a digit
// (§4.2: "." + digit is a float recognizer starting at fraction).
func (l *Lexer) lexFloatFromDot(start int) (Token, error) {
	return l.lexFloatFraction(start, "0")
}
