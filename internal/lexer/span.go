package lexer

import "fmt"

// Span is a half-open interval [Start, End) over the input, measured in
// characters consumed by the cursor, not bytes.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a Span from a start and end offset.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Len reports the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}
