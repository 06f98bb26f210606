package cert

// Flow tracks a vertical layout cursor across pages. It owns the overflow
// policy: before emitting an element, Request checks whether the element
// would cross the usable band (pageHeight - margin - reserve) and starts a
// new page if so. The actual drawing backend is attached via OnPageBreak,
// which keeps the policy testable without producing a document.
type Flow struct {
	pageHeight float64
	margin     float64
	reserve    float64

	cursor  float64
	pages   int
	onBreak func()
}

// NewFlow creates a flow for a page of the given height, with the cursor at
// the top margin of page one. reserve is the band above the bottom margin
// kept clear for the footer.
func NewFlow(pageHeight, margin, reserve float64) *Flow {
	return &Flow{
		pageHeight: pageHeight,
		margin:     margin,
		reserve:    reserve,
		cursor:     margin,
		pages:      1,
	}
}

// OnPageBreak registers a callback invoked after each page break, before
// the cursor is used on the new page.
func (f *Flow) OnPageBreak(fn func()) { f.onBreak = fn }

// Cursor returns the current vertical position.
func (f *Flow) Cursor() float64 { return f.cursor }

// Pages returns the number of pages started so far.
func (f *Flow) Pages() int { return f.pages }

// Advance moves the cursor down by h without any overflow check. Use
// Request first for elements that must not cross the page boundary.
func (f *Flow) Advance(h float64) { f.cursor += h }

// Request ensures h of vertical space is available before the reserve band,
// starting a new page if needed. It reports whether a page break occurred.
// An element taller than a whole usable page cannot be placed at all and
// yields *RenderingOverflowError.
func (f *Flow) Request(h float64) (bool, error) {
	usable := f.pageHeight - 2*f.margin - f.reserve
	if h > usable {
		return false, &RenderingOverflowError{Height: h, Usable: usable}
	}
	if f.cursor+h > f.pageHeight-f.margin-f.reserve {
		f.pages++
		f.cursor = f.margin
		if f.onBreak != nil {
			f.onBreak()
		}
		return true, nil
	}
	return false, nil
}
