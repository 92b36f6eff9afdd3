// Package lexer implements the tokenizer for Raccoon source: a streaming,
// pull-based scanner that turns a decoded Unicode string into a sequence of
// tokens, reconciling significant-whitespace indentation, a layered string
// literal grammar, and a based/underscore-separated numeric grammar.
package lexer

import "io"

// Lexer is a single-threaded, pull-based token stream over borrowed input.
// It is not safe for concurrent use. Once Next returns a non-nil error
// other than io.EOF, every subsequent call returns io.EOF: the stream is
// terminated, never resumed.
type Lexer struct {
	cur    *cursor
	scopes *scopeStack

	indentKind IndentKind
	indentStep int

	pending []Token
	errored bool
}

// New constructs a Lexer over input, ready to be pulled with Next.
func New(input string) *Lexer {
	return &Lexer{
		cur:    newCursor(input),
		scopes: newScopeStack(),
	}
}

// Tokenize runs a Lexer over input to completion, a convenience for callers
// that want the whole token slice rather than pulling one at a time.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			if err == io.EOF {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// Next pulls the next token from the stream. It returns io.EOF once the
// input (and any buffered Dedents) is exhausted, or a *LexerError the first
// time a diagnosis is reached.
func (l *Lexer) Next() (Token, error) {
	if l.errored {
		return Token{}, io.EOF
	}
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}

	for {
		start := l.cur.at()
		ch, ok := l.cur.consume()
		if !ok {
			toks := l.finalDedents(start)
			if len(toks) == 0 {
				return Token{}, io.EOF
			}
			l.pending = toks[1:]
			return toks[0], nil
		}

		switch {
		case ch == ' ' || ch == '\t':
			l.consumeHorizontalWhitespace()
			continue

		case ch == '\r' || ch == '\n':
			tok, err := l.handleNewline(start, ch)
			if err != nil {
				l.errored = true
				return Token{}, err
			}
			return tok, nil

		case ch == '#':
			l.consumeComment()
			continue

		case ch == '\\':
			if err := l.consumeLineContinuation(start); err != nil {
				l.errored = true
				return Token{}, err
			}
			continue

		case ch == '\'' || ch == '"':
			tok, err := l.lexStringBody(start, ch, Str, Bytes, false)
			if err != nil {
				l.errored = true
				return Token{}, err
			}
			return tok, nil

		case ch == '.':
			if r, ok := l.cur.peek(0); ok && isDecDigit(r) {
				tok, err := l.lexFloatFromDot(start)
				if err != nil {
					l.errored = true
					return Token{}, err
				}
				return tok, nil
			}
			return l.delim(start, "."), nil

		case ch == '0':
			tok, err := l.lexZeroLead(start)
			if err != nil {
				l.errored = true
				return Token{}, err
			}
			return tok, nil

		case ch >= '1' && ch <= '9':
			tok, err := l.lexDecimalLeadingNonzero(start, ch)
			if err != nil {
				l.errored = true
				return Token{}, err
			}
			return tok, nil

		case ch == 'f' || ch == 'b' || ch == 'r':
			tok, err := l.lexPrefixedAtom(start, ch)
			if err != nil {
				l.errored = true
				return Token{}, err
			}
			return tok, nil

		case isIdentStart(ch):
			return l.lexIdentifierFrom(start, ch), nil

		case isPunctuationLead(ch):
			tok, err := l.lexOperatorOrDelimiter(start, ch)
			if err != nil {
				l.errored = true
				return Token{}, err
			}
			return tok, nil

		default:
			l.errored = true
			return Token{}, newError(InvalidCharacter, NewSpan(start, l.cur.at()))
		}
	}
}

func (l *Lexer) consumeHorizontalWhitespace() {
	for {
		r, ok := l.cur.peek(0)
		if !ok || (r != ' ' && r != '\t') {
			break
		}
		l.cur.consume()
	}
}

func (l *Lexer) consumeComment() {
	for {
		r, ok := l.cur.peek(0)
		if !ok || r == '\r' || r == '\n' {
			break
		}
		l.cur.consume()
	}
}

// consumeLineContinuation handles a backslash that must be immediately
// followed by a newline (§4.2). The newline itself, including a Windows
// CRLF pair, is consumed and produces no token.
func (l *Lexer) consumeLineContinuation(start int) error {
	r, ok := l.cur.peek(0)
	if !ok || (r != '\r' && r != '\n') {
		return newError(InvalidLineContinuationEscapeSequence, NewSpan(start, l.cur.at()))
	}
	l.cur.consume()
	if r == '\r' {
		if r2, ok2 := l.cur.peek(0); ok2 && r2 == '\n' {
			l.cur.consume()
		}
	}
	return nil
}

// lexZeroLead dispatches on the character following a leading '0': a base
// prefix, or the decimal leading-zero grammar.
func (l *Lexer) lexZeroLead(start int) (Token, error) {
	if r, ok := l.cur.peek(0); ok {
		switch r {
		case 'x', 'X':
			l.cur.consume()
			return l.lexPrefixedInteger(start, Hex, isHexDigit, MissingDigitPartInHexInteger)
		case 'b', 'B':
			l.cur.consume()
			return l.lexPrefixedInteger(start, Bin, isBinDigit, MissingDigitPartInBinInteger)
		case 'o', 'O':
			l.cur.consume()
			return l.lexPrefixedInteger(start, Oct, isOctDigit, MissingDigitPartInOctInteger)
		}
	}
	return l.lexDecimalLeadingZero(start)
}

func isPunctuationLead(r rune) bool {
	switch r {
	case '/', '>', '<', '=', '!', '|', '-', '+', '*', '^', '&', '%', '@',
		'~', '²', '√', '(', ')', '[', ']', '{', '}', ',', ':', ';':
		return true
	}
	return false
}
