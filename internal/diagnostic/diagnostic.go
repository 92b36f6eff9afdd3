// Package diagnostic renders a *lexer.LexerError as a human-readable
// report: the message, a file:line:column location, the offending source
// line, and a caret under the error span. Colorization and tab-expanded
// column display are controlled by an internal/config.Config.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/appcypher/raccoon/internal/config"
	"github.com/appcypher/raccoon/internal/lexer"
)

// Location is a 1-indexed line/column position resolved from a character
// offset into source text.
type Location struct {
	Line   int
	Column int
}

// Locate walks src and resolves offset (a character index, matching
// lexer.Span's units) to a 1-indexed line and column. A tab advances column
// to the next stop tabWidth characters wide, matching how a terminal or
// editor renders it; tabWidth <= 0 is treated as 1 (no expansion).
func Locate(src string, offset int, tabWidth int) Location {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	line, col := 1, 1
	i := 0
	for _, r := range src {
		if i >= offset {
			break
		}
		switch r {
		case '\n':
			line++
			col = 1
		case '\t':
			col += tabWidth - (col-1)%tabWidth
		default:
			col++
		}
		i++
	}
	return Location{Line: line, Column: col}
}

// expandTabs renders s with every tab replaced by spaces up to the next
// tabWidth-wide stop, so a printed source line lines up with a Location
// computed by Locate over the same tabWidth.
func expandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	var out strings.Builder
	col := 1
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - (col-1)%tabWidth
			out.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		out.WriteRune(r)
		col++
	}
	return out.String()
}

// Diagnostic pairs a *lexer.LexerError with the filename and source text
// needed to render it, plus the CLI preferences (color, tab width) that
// control its presentation.
type Diagnostic struct {
	Err      *lexer.LexerError
	Filename string
	Source   string
	Config   *config.Config
}

// New wraps err for display against source. filename is shown as-is in the
// location line; pass "" for anonymous/REPL input. cfg may be nil, in which
// case config.Default() is used.
func New(err *lexer.LexerError, filename, source string, cfg *config.Config) *Diagnostic {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Diagnostic{Err: err, Filename: filename, Source: source, Config: cfg}
}

// color wraps s in the given ANSI code when d.Config.Color is set, and
// returns s unchanged otherwise.
func (d *Diagnostic) color(code, s string) string {
	if !d.Config.Color {
		return s
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", code, s)
}

// Format renders the diagnostic the way the CLI prints it to stderr.
func (d *Diagnostic) Format() string {
	var out strings.Builder

	tabWidth := d.Config.TabWidth
	loc := Locate(d.Source, d.Err.Span.Start, tabWidth)
	message := message(d.Err.Kind)

	out.WriteString(fmt.Sprintf("%s: %s\n", d.color("31", "error"), message))
	out.WriteString(fmt.Sprintf("  %s\n", d.color("36", fmt.Sprintf("--> %s:%d:%d", d.Filename, loc.Line, loc.Column))))

	lines := strings.Split(d.Source, "\n")
	if loc.Line <= 0 || loc.Line > len(lines) {
		return out.String()
	}
	sourceLine := expandTabs(lines[loc.Line-1], tabWidth)
	lineNumStr := fmt.Sprintf("%d", loc.Line)

	out.WriteString(fmt.Sprintf("   %s | %s\n", d.color("34", lineNumStr), sourceLine))

	width := d.Err.Span.Len()
	if width < 1 {
		width = 1
	}
	gutter := strings.Repeat(" ", len(lineNumStr)) + " | " + strings.Repeat(" ", loc.Column-1)
	out.WriteString(fmt.Sprintf("   %s%s\n", gutter, d.color("31", strings.Repeat("^", width))))

	if help := help(d.Err.Kind); help != "" {
		out.WriteString(fmt.Sprintf("   %s %s\n", d.color("33", "help:"), help))
	}
	return out.String()
}

// message returns the human-readable description of a LexerErrorKind.
func message(kind lexer.LexerErrorKind) string {
	switch kind {
	case lexer.MixedSpaces:
		return "tabs and spaces are mixed within one indentation run"
	case lexer.InconsistentIndent:
		return "indentation switched between tabs and spaces"
	case lexer.MixedIndentSizes:
		return "this indent does not match the step established earlier"
	case lexer.InconsistentDedent:
		return "this dedent does not land on any enclosing indentation level"
	case lexer.InvalidInBracketDedent:
		return "dedented past the column where the enclosing bracket was opened"
	case lexer.UnterminatedString:
		return "string literal is not terminated before end of line or input"
	case lexer.InvalidCharacterInByteString:
		return "byte strings may only contain ASCII characters"
	case lexer.InvalidLineContinuationEscapeSequence:
		return "a line continuation backslash must be followed immediately by a newline"
	case lexer.InvalidLeadingZeroInDecInteger:
		return "decimal integers may not have a leading zero"
	case lexer.InvalidCharacterAfterUnderscoreInDigitPart:
		return "an underscore digit separator must be between two valid digits"
	case lexer.MissingDigitPartInFloatFraction:
		return "a float's fractional part needs at least one digit"
	case lexer.MissingDigitPartInFloatExponent:
		return "a float's exponent needs at least one digit"
	case lexer.MissingDigitPartInBinInteger:
		return "a binary literal needs at least one binary digit"
	case lexer.MissingDigitPartInOctInteger:
		return "an octal literal needs at least one octal digit"
	case lexer.MissingDigitPartInHexInteger:
		return "a hex literal needs at least one hex digit"
	case lexer.InvalidDigitInInteger:
		return "this digit is not valid for the literal's base"
	case lexer.InvalidOperator:
		return "not a recognized operator"
	case lexer.InvalidCharacter:
		return "unrecognized character"
	case lexer.MismatchedBracket:
		return "closing bracket does not match the innermost open bracket"
	default:
		return "unknown lexer error"
	}
}

// help returns an optional actionable suggestion for a LexerErrorKind, or
// "" when there is nothing more specific to say than the message itself.
func help(kind lexer.LexerErrorKind) string {
	switch kind {
	case lexer.MixedSpaces, lexer.InconsistentIndent:
		return "pick either tabs or spaces for indentation and use it consistently throughout the file"
	case lexer.UnterminatedString:
		return "close the string with a matching quote, or use triple quotes for a string spanning multiple lines"
	case lexer.InvalidLeadingZeroInDecInteger:
		return "use a 0o prefix for octal, or drop the leading zero"
	case lexer.InvalidCharacterAfterUnderscoreInDigitPart:
		return "remove the stray underscore"
	default:
		return ""
	}
}
