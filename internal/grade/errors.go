package grade

import "fmt"

// ValidationError indicates candidate input that cannot be accepted.
// Recoverable: the caller should re-prompt before assembly.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
