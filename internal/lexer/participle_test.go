package lexer_test

import (
	"testing"

	participle "github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcypher/raccoon/internal/lexer"
)

// lexAllParticiple drains a participle lexer.Lexer to its EOF token,
// collecting every token seen including EOF itself.
func lexAllParticiple(t *testing.T, l participle.Lexer) []participle.Token {
	t.Helper()
	var toks []participle.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.EOF() {
			break
		}
		if len(toks) > 1000 {
			t.Fatal("participle lexer produced too many tokens, possible infinite loop")
		}
	}
	return toks
}

func TestParticiple_LexStringProducesExpectedValues(t *testing.T) {
	def := lexer.Definition{}
	l, err := def.LexString("test.rac", "x = 1")
	require.NoError(t, err)

	toks := lexAllParticiple(t, l)
	require.NotEmpty(t, toks)
	assert.True(t, toks[len(toks)-1].EOF())

	var values []string
	for _, tok := range toks {
		if !tok.EOF() {
			values = append(values, tok.Value)
		}
	}
	assert.Equal(t, []string{"x", "=", "1"}, values)
}

func TestParticiple_SymbolsMatchKnownKinds(t *testing.T) {
	def := lexer.Definition{}
	symbols := def.Symbols()
	for _, name := range []string{
		"Newline", "Indent", "Dedent", "Integer", "Float", "Imag",
		"String", "ByteString", "Identifier", "Keyword", "Operator", "Delimiter",
	} {
		_, ok := symbols[name]
		assert.True(t, ok, "missing symbol %q", name)
	}
}

func TestParticiple_LexBytesAndLexEquivalent(t *testing.T) {
	def := lexer.Definition{}
	lStr, err := def.LexString("a.rac", "pass\n")
	require.NoError(t, err)
	lBytes, err := def.LexBytes("a.rac", []byte("pass\n"))
	require.NoError(t, err)

	toksStr := lexAllParticiple(t, lStr)
	toksBytes := lexAllParticiple(t, lBytes)
	require.Equal(t, len(toksStr), len(toksBytes))
	for i := range toksStr {
		assert.Equal(t, toksStr[i].Type, toksBytes[i].Type)
		assert.Equal(t, toksStr[i].Value, toksBytes[i].Value)
	}
}

func TestParticiple_PropagatesLexerError(t *testing.T) {
	def := lexer.Definition{}
	l, err := def.LexString("bad.rac", "0b1234")
	require.NoError(t, err)

	_, err = l.Next()
	assert.Error(t, err)
}
