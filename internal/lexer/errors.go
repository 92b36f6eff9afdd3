package lexer

import "fmt"

// LexerErrorKind is the closed set of diagnoses the lexer can report. No
// other error kind is ever produced.
type LexerErrorKind int

const (
	MixedSpaces LexerErrorKind = iota
	InconsistentIndent
	MixedIndentSizes
	InconsistentDedent
	InvalidInBracketDedent
	UnterminatedString
	InvalidCharacterInByteString
	InvalidLineContinuationEscapeSequence
	InvalidLeadingZeroInDecInteger
	InvalidCharacterAfterUnderscoreInDigitPart
	MissingDigitPartInFloatFraction
	MissingDigitPartInFloatExponent
	MissingDigitPartInBinInteger
	MissingDigitPartInOctInteger
	MissingDigitPartInHexInteger
	InvalidDigitInInteger
	InvalidOperator
	InvalidCharacter
	MismatchedBracket
)

func (k LexerErrorKind) String() string {
	switch k {
	case MixedSpaces:
		return "MixedSpaces"
	case InconsistentIndent:
		return "InconsistentIndent"
	case MixedIndentSizes:
		return "MixedIndentSizes"
	case InconsistentDedent:
		return "InconsistentDedent"
	case InvalidInBracketDedent:
		return "InvalidInBracketDedent"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidCharacterInByteString:
		return "InvalidCharacterInByteString"
	case InvalidLineContinuationEscapeSequence:
		return "InvalidLineContinuationEscapeSequence"
	case InvalidLeadingZeroInDecInteger:
		return "InvalidLeadingZeroInDecInteger"
	case InvalidCharacterAfterUnderscoreInDigitPart:
		return "InvalidCharacterAfterUnderscoreInDigitPart"
	case MissingDigitPartInFloatFraction:
		return "MissingDigitPartInFloatFraction"
	case MissingDigitPartInFloatExponent:
		return "MissingDigitPartInFloatExponent"
	case MissingDigitPartInBinInteger:
		return "MissingDigitPartInBinInteger"
	case MissingDigitPartInOctInteger:
		return "MissingDigitPartInOctInteger"
	case MissingDigitPartInHexInteger:
		return "MissingDigitPartInHexInteger"
	case InvalidDigitInInteger:
		return "InvalidDigitInInteger"
	case InvalidOperator:
		return "InvalidOperator"
	case InvalidCharacter:
		return "InvalidCharacter"
	case MismatchedBracket:
		return "MismatchedBracket"
	default:
		return "Unknown"
	}
}

// LexerError is a terminal diagnostic: once yielded, the owning Lexer
// produces no further tokens.
type LexerError struct {
	Kind LexerErrorKind
	Span Span
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Span)
}

func newError(kind LexerErrorKind, span Span) *LexerError {
	return &LexerError{Kind: kind, Span: span}
}
