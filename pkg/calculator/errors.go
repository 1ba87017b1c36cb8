package calculator

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNumeric is returned by Eval when the committed result is NaN or infinite.
var ErrNumeric = errors.New("numeric error")

// InvalidUnitError is returned when a token is not a bracket, operator, constant or number.
type InvalidUnitError struct {
	Token string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit: %q", e.Token)
}

// TokenizationError is returned when the tokenizer stops making progress.
// It indicates a bug in the tokenizer rather than bad input.
type TokenizationError struct {
	Input string
	Pos   int
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("tokenizer stuck at offset %d of %q", e.Pos, e.Input)
}

// IsInvalidUnit reports whether the cause of err is an InvalidUnitError.
func IsInvalidUnit(err error) bool {
	_, ok := errors.Cause(err).(*InvalidUnitError)
	return ok
}
