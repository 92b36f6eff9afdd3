package lexer

import (
	"fmt"
	"io"

	participle "github.com/alecthomas/participle/v2/lexer"
)

// This file adapts *Lexer to participle/v2's lexer.Definition and
// lexer.Lexer interfaces, so a downstream parser-combinator grammar can
// consume the token stream directly instead of a bespoke interface. No
// parser is built against it here; the adapter only keeps that door open.

// participleType is the TokenType participle expects; kindToParticipleType
// gives every Kind a distinct negative-free small integer; participle
// reserves negative values below lexer.EOF for its own use, so ours start at
// 1.
type participleType = participle.TokenType

const (
	ptNewline participleType = iota + 1
	ptIndent
	ptDedent
	ptInteger
	ptFloat
	ptImag
	ptString
	ptByteString
	ptIdentifier
	ptKeyword
	ptOperator
	ptDelimiter
)

var kindToParticipleType = map[Kind]participleType{
	Newline:    ptNewline,
	Indent:     ptIndent,
	Dedent:     ptDedent,
	Integer:    ptInteger,
	Float:      ptFloat,
	Imag:       ptImag,
	String:     ptString,
	ByteString: ptByteString,
	Identifier: ptIdentifier,
	Keyword:    ptKeyword,
	Operator:   ptOperator,
	Delimiter:  ptDelimiter,
}

// Definition implements participle/v2's lexer.Definition.
type Definition struct{}

var _ participle.Definition = Definition{}

func (Definition) Symbols() map[string]participleType {
	return map[string]participleType{
		"Newline":    ptNewline,
		"Indent":     ptIndent,
		"Dedent":     ptDedent,
		"Integer":    ptInteger,
		"Float":      ptFloat,
		"Imag":       ptImag,
		"String":     ptString,
		"ByteString": ptByteString,
		"Identifier": ptIdentifier,
		"Keyword":    ptKeyword,
		"Operator":   ptOperator,
		"Delimiter":  ptDelimiter,
	}
}

func (Definition) Lex(filename string, r io.Reader) (participle.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("raccoon: reading %s: %w", filename, err)
	}
	return newParticipleLexer(filename, string(data)), nil
}

func (Definition) LexString(filename, input string) (participle.Lexer, error) {
	return newParticipleLexer(filename, input), nil
}

func (Definition) LexBytes(filename string, input []byte) (participle.Lexer, error) {
	return newParticipleLexer(filename, string(input)), nil
}

// participleLexer wraps *Lexer to implement participle/v2's lexer.Lexer.
type participleLexer struct {
	inner    *Lexer
	filename string
}

var _ participle.Lexer = (*participleLexer)(nil)

func newParticipleLexer(filename, input string) *participleLexer {
	return &participleLexer{inner: New(input), filename: filename}
}

func (p *participleLexer) Next() (participle.Token, error) {
	tok, err := p.inner.Next()
	if err == io.EOF {
		return participle.EOFToken(participle.Position{Filename: p.filename}), nil
	}
	if err != nil {
		return participle.Token{}, err
	}
	return participle.Token{
		Type:  kindToParticipleType[tok.Kind],
		Value: participleValue(tok),
		Pos: participle.Position{
			Filename: p.filename,
			Offset:   tok.Span.Start,
			Column:   tok.Span.Start + 1,
		},
	}, nil
}

// participleValue renders the token's value for the participle interface.
// Structural tokens carry no text of their own; keyword tokens surface
// their canonical spelling since Token.Keyword has no Text payload.
func participleValue(tok Token) string {
	switch tok.Kind {
	case Newline, Indent, Dedent:
		return ""
	case Keyword:
		return tok.Keyword.String()
	default:
		return tok.Text
	}
}
