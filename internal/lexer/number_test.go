package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcypher/raccoon/internal/lexer"
)

func singleToken(t *testing.T, src string) lexer.Token {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	require.Len(t, toks, 1, "expected exactly one token from %q", src)
	return toks[0]
}

func TestNumbers_DecimalForms(t *testing.T) {
	tok := singleToken(t, "123")
	assert.Equal(t, lexer.Integer, tok.Kind)
	assert.Equal(t, lexer.Dec, tok.IntegerBase)
	assert.Equal(t, "123", tok.Text)

	tok = singleToken(t, "1_000_000")
	assert.Equal(t, "1000000", tok.Text)

	tok = singleToken(t, "0")
	assert.Equal(t, lexer.Integer, tok.Kind)
	assert.Equal(t, "0", tok.Text)
}

func TestNumbers_BasePrefixes(t *testing.T) {
	tok := singleToken(t, "0xFF")
	assert.Equal(t, lexer.Hex, tok.IntegerBase)
	assert.Equal(t, "FF", tok.Text)

	tok = singleToken(t, "0o17")
	assert.Equal(t, lexer.Oct, tok.IntegerBase)
	assert.Equal(t, "17", tok.Text)

	tok = singleToken(t, "0b101")
	assert.Equal(t, lexer.Bin, tok.IntegerBase)
	assert.Equal(t, "101", tok.Text)
}

func TestNumbers_BasePrefixSingleLeadingUnderscore(t *testing.T) {
	// A single underscore directly after the base prefix is permitted,
	// ahead of the first required digit.
	tok := singleToken(t, "0x_FF")
	assert.Equal(t, lexer.Integer, tok.Kind)
	assert.Equal(t, "FF", tok.Text)
}

func TestNumbers_FloatForms(t *testing.T) {
	tok := singleToken(t, "3.14")
	assert.Equal(t, lexer.Float, tok.Kind)
	assert.Equal(t, "3.14", tok.Text)

	tok = singleToken(t, ".5")
	assert.Equal(t, lexer.Float, tok.Kind)
	assert.Equal(t, "0.5", tok.Text)

	tok = singleToken(t, "1e10")
	assert.Equal(t, lexer.Float, tok.Kind)
	assert.Equal(t, "1e+10", tok.Text)

	tok = singleToken(t, "1E-10")
	assert.Equal(t, "1e-10", tok.Text)

	tok = singleToken(t, "2.5e+3")
	assert.Equal(t, "2.5e+3", tok.Text)
}

func TestNumbers_ImaginarySuffix(t *testing.T) {
	tok := singleToken(t, "3im")
	assert.Equal(t, lexer.Imag, tok.Kind)
	assert.Equal(t, "3", tok.Text)

	tok = singleToken(t, "3.5im")
	assert.Equal(t, lexer.Imag, tok.Kind)
	assert.Equal(t, "3.5", tok.Text)

	tok = singleToken(t, "1e10im")
	assert.Equal(t, lexer.Imag, tok.Kind)
	assert.Equal(t, "1e+10", tok.Text)
}

func TestNumbers_MissingDigitErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind lexer.LexerErrorKind
	}{
		{"0x", lexer.MissingDigitPartInHexInteger},
		{"0b", lexer.MissingDigitPartInBinInteger},
		{"0o", lexer.MissingDigitPartInOctInteger},
		{"1.", lexer.MissingDigitPartInFloatFraction},
		{"1e", lexer.MissingDigitPartInFloatExponent},
		{"1e+", lexer.MissingDigitPartInFloatExponent},
	}
	for _, c := range cases {
		_, err := lexer.Tokenize(c.src)
		require.Error(t, err, c.src)
		lerr, ok := err.(*lexer.LexerError)
		require.True(t, ok, c.src)
		assert.Equal(t, c.kind, lerr.Kind, c.src)
	}
}

func TestNumbers_UnderscoreSeparatorLaw(t *testing.T) {
	_, err := lexer.Tokenize("1__000")
	require.Error(t, err)
	lerr, ok := err.(*lexer.LexerError)
	require.True(t, ok)
	assert.Equal(t, lexer.InvalidCharacterAfterUnderscoreInDigitPart, lerr.Kind)

	_, err = lexer.Tokenize("_1")
	// A leading underscore before any digit makes this an identifier, not a
	// number; no error should occur.
	require.NoError(t, err)
}
