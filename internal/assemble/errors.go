package assemble

import (
	"fmt"
	"strings"
)

// EmptyPoolError indicates the category filter matched no questions.
// Recoverable: the caller should re-prompt with a different filter.
type EmptyPoolError struct {
	CategoryIDs []string
}

func (e *EmptyPoolError) Error() string {
	if len(e.CategoryIDs) == 0 {
		return "no questions available in the bank"
	}
	return fmt.Sprintf("no questions available for categories %s", strings.Join(e.CategoryIDs, ", "))
}
