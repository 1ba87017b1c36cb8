package calculator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// boundaryChars always terminate the current token and form a token of their own.
const boundaryChars = "()+-*/%^="

// Tokenize splits expr into unit tokens. Whitespace separates tokens. An
// underscore directly followed by a digit is a digit group separator and is
// dropped, so "1_000" yields "1000".
func Tokenize(expr string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for pos := 0; pos < len(expr); {
		r, width := utf8.DecodeRuneInString(expr[pos:])
		if width == 0 {
			return nil, &TokenizationError{Input: expr, Pos: pos}
		}

		switch {
		case strings.ContainsRune(boundaryChars, r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		case r == '_' && startsWithDigit(expr[pos+width:]):
			// digit group separator
		default:
			current.WriteRune(r)
		}

		pos += width
	}

	flush()
	return tokens, nil
}

func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r >= '0' && r <= '9'
}
