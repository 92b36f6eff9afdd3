package lexer

// handleNewline is entered once a CR or LF has been consumed (first holds
// which one). It implements the indentation engine of §4.3: Windows
// newline folding, leading-whitespace accounting, and scope-stack
// transitions that emit Newline, Indent, or Dedent.
func (l *Lexer) handleNewline(start int, first rune) (Token, error) {
	if first == '\r' {
		if r, ok := l.cur.peek(0); ok && r == '\n' {
			l.cur.consume()
		}
	}

	spaceCount := 0
	var runKind IndentKind
	mixed := false
	for {
		r, ok := l.cur.peek(0)
		if !ok || (r != ' ' && r != '\t') {
			break
		}
		l.cur.consume()
		kind := SpaceIndent
		if r == '\t' {
			kind = TabIndent
		}
		if spaceCount > 0 && kind != runKind {
			mixed = true
		}
		runKind = kind
		spaceCount++
	}

	if peek, ok := l.cur.peek(0); !ok || peek == '\r' || peek == '\n' || peek == '#' {
		return Token{Kind: Newline, Span: NewSpan(start, l.cur.at())}, nil
	}

	if mixed {
		return Token{}, newError(MixedSpaces, NewSpan(start, l.cur.at()))
	}
	if spaceCount > 0 {
		if l.indentKind == UnknownIndent {
			l.indentKind = runKind
		} else if runKind != l.indentKind {
			return Token{}, newError(InconsistentIndent, NewSpan(start, l.cur.at()))
		}
	}

	top := l.scopes.top()
	if top.Tag == scopeBracket {
		if spaceCount < top.StartSpaceCount {
			return Token{}, newError(InvalidInBracketDedent, NewSpan(start, l.cur.at()))
		}
		return Token{Kind: Newline, Span: NewSpan(start, l.cur.at())}, nil
	}

	current := top.spaceCount()
	diff := spaceCount - current
	switch {
	case diff > 0:
		if l.indentStep == 0 {
			l.indentStep = diff
		} else if diff != l.indentStep {
			return Token{}, newError(MixedIndentSizes, NewSpan(start, l.cur.at()))
		}
		l.scopes.push(scope{Tag: scopeIndent, StartSpaceCount: current, SpaceCount: spaceCount})
		return Token{Kind: Indent, Span: NewSpan(start, l.cur.at())}, nil
	case diff < 0:
		absDiff := -diff
		if l.indentStep == 0 || absDiff%l.indentStep != 0 {
			return Token{}, newError(InconsistentDedent, NewSpan(start, l.cur.at()))
		}
		k := absDiff / l.indentStep
		for i := 0; i < k; i++ {
			if l.scopes.top().Tag != scopeIndent {
				return Token{}, newError(InconsistentDedent, NewSpan(start, l.cur.at()))
			}
			l.scopes.pop()
		}
		span := NewSpan(start, l.cur.at())
		for i := 1; i < k; i++ {
			l.pending = append(l.pending, Token{Kind: Dedent, Span: span})
		}
		return Token{Kind: Dedent, Span: span}, nil
	default:
		return Token{Kind: Newline, Span: NewSpan(start, l.cur.at())}, nil
	}
}

// finalDedents synthesizes the Dedent tokens owed at end of input, one per
// Indent frame above Initial (§4.3 "End of input").
func (l *Lexer) finalDedents(at int) []Token {
	var toks []Token
	span := NewSpan(at, at)
	for l.scopes.top().Tag == scopeIndent {
		l.scopes.pop()
		toks = append(toks, Token{Kind: Dedent, Span: span})
	}
	return toks
}
