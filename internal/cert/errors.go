package cert

import "fmt"

// RenderingOverflowError indicates an element that cannot fit a page even
// after pagination. This is a rendering defect, never a reason to silently
// truncate content.
type RenderingOverflowError struct {
	Height float64
	Usable float64
}

func (e *RenderingOverflowError) Error() string {
	return fmt.Sprintf("element height %.1fmm exceeds usable page height %.1fmm", e.Height, e.Usable)
}
