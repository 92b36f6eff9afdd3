package lexer

import "fmt"

// Kind identifies the variant a Token carries. It mirrors the tagged
// variant described in spec.md: structural tokens, literal tokens with a
// canonicalized payload, and lexical atoms.
type Kind int

const (
	// Structural
	Newline Kind = iota
	Indent
	Dedent

	// Literals
	Integer
	Float
	Imag
	String
	ByteString

	// Lexical atoms
	Identifier
	Keyword
	Operator
	Delimiter
)

// String returns a human-readable name for a Kind.
func (k Kind) String() string {
	switch k {
	case Newline:
		return "NEWLINE"
	case Indent:
		return "INDENT"
	case Dedent:
		return "DEDENT"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case Imag:
		return "IMAG"
	case String:
		return "STRING"
	case ByteString:
		return "BYTESTRING"
	case Identifier:
		return "IDENTIFIER"
	case Keyword:
		return "KEYWORD"
	case Operator:
		return "OPERATOR"
	case Delimiter:
		return "DELIMITER"
	default:
		return "UNKNOWN"
	}
}

// IntegerBase identifies the base of an Integer token's canonical payload.
type IntegerBase int

const (
	Dec IntegerBase = iota
	Bin
	Oct
	Hex
)

func (b IntegerBase) String() string {
	switch b {
	case Dec:
		return "dec"
	case Bin:
		return "bin"
	case Oct:
		return "oct"
	case Hex:
		return "hex"
	default:
		return "unknown"
	}
}

// StringFlavor distinguishes text-string prefix combinations.
type StringFlavor int

const (
	Str StringFlavor = iota
	RawStr
	Format
	RawFormat
)

func (f StringFlavor) String() string {
	switch f {
	case Str:
		return "str"
	case RawStr:
		return "raw_str"
	case Format:
		return "format"
	case RawFormat:
		return "raw_format"
	default:
		return "unknown"
	}
}

// BytesFlavor distinguishes byte-string prefix combinations.
type BytesFlavor int

const (
	Bytes BytesFlavor = iota
	RawBytes
)

func (f BytesFlavor) String() string {
	switch f {
	case Bytes:
		return "bytes"
	case RawBytes:
		return "raw_bytes"
	default:
		return "unknown"
	}
}

// KeywordName identifies which of the 47 reserved words a Keyword token
// carries.
type KeywordName int

const (
	And KeywordName = iota
	As
	Assert
	Async
	Await
	Break
	Class
	Const
	Continue
	Def
	Del
	Elif
	Else
	Enum
	Except
	False
	Finally
	For
	From
	Global
	If
	Import
	In
	Interface
	Is
	Lambda
	Let
	Macro
	Match
	Mut
	Nonlocal
	Not
	Or
	Pass
	Ptr
	Raise
	Ref
	Return
	True
	Try
	Typealias
	Val
	Var
	Where
	While
	With
	Yield
)

// Token is a pair of (Kind, Span) plus whatever payload its Kind carries.
//
// Only the fields relevant to Kind are meaningful; e.g. a Newline token
// never sets Text. Literal text is the canonicalized payload described in
// spec.md §3, not the raw source slice.
type Token struct {
	Kind Kind
	Span Span

	// Text holds the canonicalized literal payload for Integer, Float,
	// Imag, String, ByteString, Identifier, Operator, and Delimiter
	// tokens. It is empty for Newline, Indent, Dedent, and Keyword.
	Text string

	IntegerBase  IntegerBase
	StringFlavor StringFlavor
	BytesFlavor  BytesFlavor
	Keyword      KeywordName
}

func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("Token{%s, %s}", t.Kind, t.Span)
	}
	return fmt.Sprintf("Token{%s, %q, %s}", t.Kind, t.Text, t.Span)
}

// keywords is the closed set of 47 reserved words recognized by Raccoon.
var keywords = map[string]KeywordName{
	"and": And, "as": As, "assert": Assert, "async": Async, "await": Await,
	"break": Break, "class": Class, "const": Const, "continue": Continue,
	"def": Def, "del": Del, "elif": Elif, "else": Else, "enum": Enum,
	"except": Except, "false": False, "finally": Finally, "for": For,
	"from": From, "global": Global, "if": If, "import": Import, "in": In,
	"interface": Interface, "is": Is, "lambda": Lambda, "let": Let,
	"macro": Macro, "match": Match, "mut": Mut, "nonlocal": Nonlocal,
	"not": Not, "or": Or, "pass": Pass, "ptr": Ptr, "raise": Raise,
	"ref": Ref, "return": Return, "true": True, "try": Try,
	"typealias": Typealias, "val": Val, "var": Var, "where": Where,
	"while": While, "with": With, "yield": Yield,
}

var keywordNames = func() map[KeywordName]string {
	m := make(map[KeywordName]string, len(keywords))
	for text, name := range keywords {
		m[name] = text
	}
	return m
}()

// LookupKeyword reports whether word is one of the 47 reserved words, and
// which one.
func LookupKeyword(word string) (KeywordName, bool) {
	name, ok := keywords[word]
	return name, ok
}

func (k KeywordName) String() string {
	if s, ok := keywordNames[k]; ok {
		return s
	}
	return "unknown"
}
