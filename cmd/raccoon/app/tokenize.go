package app

import (
	"fmt"
	"io"
	"os"

	"github.com/appcypher/raccoon/internal/config"
	"github.com/appcypher/raccoon/internal/diagnostic"
	"github.com/appcypher/raccoon/internal/lexer"
)

// Tokenize reads path, tokenizes it, and prints every token with its kind,
// span, and canonicalized text, one per line. On a lexer error it prints a
// diagnostic report to stderr and returns the error.
func Tokenize(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	src := string(data)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("=== TOKENS: %s ===\n", path)

	l := lexer.New(src)
	index := 0
	for {
		tok, err := l.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			lexErr, ok := err.(*lexer.LexerError)
			if !ok {
				return err
			}
			d := diagnostic.New(lexErr, path, src, cfg)
			fmt.Fprint(os.Stderr, d.Format())
			return lexErr
		}

		text := tok.Text
		if text == "" && tok.Kind == lexer.Keyword {
			text = tok.Keyword.String()
		}
		if text == "" {
			fmt.Printf("%4d  %-10s %s\n", index, tok.Kind, tok.Span)
		} else {
			fmt.Printf("%4d  %-10s %s  %q\n", index, tok.Kind, tok.Span, text)
		}
		index++
	}

	fmt.Printf("=== %d tokens ===\n", index)
	return nil
}
