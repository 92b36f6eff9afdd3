package lexer_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcypher/raccoon/internal/lexer"
)

// identifierGenerator produces strings matching [A-Za-z_][A-Za-z0-9_]*,
// the grammar the property-test boundary is required to exercise.
type identifierGenerator string

const (
	identStartAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identRestAlphabet  = identStartAlphabet + "0123456789"
)

func (identifierGenerator) Generate(rng *rand.Rand, size int) any {
	if size < 1 {
		size = 1
	}
	n := 1 + rng.Intn(size)
	b := make([]byte, n)
	b[0] = identStartAlphabet[rng.Intn(len(identStartAlphabet))]
	for i := 1; i < n; i++ {
		b[i] = identRestAlphabet[rng.Intn(len(identRestAlphabet))]
	}
	return identifierGenerator(b)
}

// TestProperty_IdentifierGrammarAlwaysTokenizesOk is the property-test
// boundary from spec.md §6: every string generated by the identifier
// grammar must tokenize with no error, as a single token (keyword or
// identifier, never split, never an error).
func TestProperty_IdentifierGrammarAlwaysTokenizesOk(t *testing.T) {
	check := func(s identifierGenerator) bool {
		toks, err := lexer.Tokenize(string(s))
		if err != nil {
			return false
		}
		if len(toks) != 1 {
			return false
		}
		switch toks[0].Kind {
		case lexer.Identifier, lexer.Keyword:
			return true
		default:
			return false
		}
	}
	require.NoError(t, quick.Check(check, &quick.Config{MaxCount: 2000}))
}

func TestProperty_IdentifierRoundTripsKeywordOrText(t *testing.T) {
	check := func(s identifierGenerator) bool {
		toks, err := lexer.Tokenize(string(s))
		if err != nil || len(toks) != 1 {
			return false
		}
		tok := toks[0]
		if tok.Kind == lexer.Keyword {
			return tok.Keyword.String() == string(s)
		}
		return tok.Text == string(s)
	}
	require.NoError(t, quick.Check(check, &quick.Config{MaxCount: 2000}))
}

func TestProperty_SampleIdentifiersAreWellFormed(t *testing.T) {
	var gen identifierGenerator
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		v := gen.Generate(rng, 20).(identifierGenerator)
		s := string(v)
		assert.Regexp(t, `^[A-Za-z_][A-Za-z0-9_]*$`, s)
	}
}
