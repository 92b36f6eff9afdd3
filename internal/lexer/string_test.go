package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcypher/raccoon/internal/lexer"
)

func TestStrings_PlainShortAndLong(t *testing.T) {
	tok := singleToken(t, `'hello'`)
	assert.Equal(t, lexer.String, tok.Kind)
	assert.Equal(t, lexer.Str, tok.StringFlavor)
	assert.Equal(t, "hello", tok.Text)

	tok = singleToken(t, `"""multi
line"""`)
	assert.Equal(t, lexer.String, tok.Kind)
	assert.Equal(t, "multi\nline", tok.Text)
}

func TestStrings_NoEscapeDecoding(t *testing.T) {
	// Escape sequences are carried through verbatim, not decoded.
	tok := singleToken(t, `'a\nb'`)
	assert.Equal(t, `a\nb`, tok.Text)
}

func TestStrings_PrefixFlavors(t *testing.T) {
	tok := singleToken(t, `r'raw'`)
	assert.Equal(t, lexer.String, tok.Kind)
	assert.Equal(t, lexer.RawStr, tok.StringFlavor)

	tok = singleToken(t, `f'fmt {x}'`)
	assert.Equal(t, lexer.String, tok.Kind)
	assert.Equal(t, lexer.Format, tok.StringFlavor)

	tok = singleToken(t, `b'bytes'`)
	assert.Equal(t, lexer.ByteString, tok.Kind)
	assert.Equal(t, lexer.Bytes, tok.BytesFlavor)

	tok = singleToken(t, `rb'rawbytes'`)
	assert.Equal(t, lexer.ByteString, tok.Kind)
	assert.Equal(t, lexer.RawBytes, tok.BytesFlavor)

	tok = singleToken(t, `rf'rawfmt'`)
	assert.Equal(t, lexer.String, tok.Kind)
	assert.Equal(t, lexer.RawFormat, tok.StringFlavor)
}

func TestStrings_PrefixLikeIdentifierFallsThrough(t *testing.T) {
	tok := singleToken(t, "rb_1")
	assert.Equal(t, lexer.Identifier, tok.Kind)
	assert.Equal(t, "rb_1", tok.Text)
}

func TestStrings_ByteStringRejectsNonASCII(t *testing.T) {
	_, err := lexer.Tokenize("b'café'")
	require.Error(t, err)
	lerr, ok := err.(*lexer.LexerError)
	require.True(t, ok)
	assert.Equal(t, lexer.InvalidCharacterInByteString, lerr.Kind)
}

func TestStrings_DoubleQuoteDelimiter(t *testing.T) {
	tok := singleToken(t, `"hello"`)
	assert.Equal(t, "hello", tok.Text)
	assert.Equal(t, lexer.Str, tok.StringFlavor)
}

func TestStrings_LongStringAllowsEmbeddedSingleQuote(t *testing.T) {
	tok := singleToken(t, `'''it's fine'''`)
	assert.Equal(t, "it's fine", tok.Text)
}

func TestStrings_EmptyShortString(t *testing.T) {
	tok := singleToken(t, `''`)
	assert.Equal(t, "", tok.Text)
}
