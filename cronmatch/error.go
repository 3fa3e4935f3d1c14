package cronmatch

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is returned when a cron expression, or one of its
// field components, cannot be parsed.
var ErrInvalidExpression = errors.New("invalid cron expression")

// invalidExpressionError returns an error with a custom formatted message,
// which unwraps to ErrInvalidExpression.
func invalidExpressionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidExpression, fmt.Sprintf(format, args...))
}
