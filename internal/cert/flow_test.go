package cert

import (
	"errors"
	"testing"
)

// Geometry chosen so exactly 30 rows of height 5 fit per page:
// usable band per page = 180 - 10 (top margin) - 10 (bottom margin)
// - 10 (footer reserve) = 150.
const (
	testPageHeight = 180
	testMargin     = 10
	testReserve    = 10
	testRowHeight  = 5
)

func TestFlow_FortyRowsAcrossTwoPages(t *testing.T) {
	f := NewFlow(testPageHeight, testMargin, testReserve)

	breaks := 0
	f.OnPageBreak(func() { breaks++ })

	for i := 0; i < 40; i++ {
		if _, err := f.Request(testRowHeight); err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		f.Advance(testRowHeight)
	}

	if f.Pages() != 2 {
		t.Errorf("Pages = %d, want 2", f.Pages())
	}
	if breaks != 1 {
		t.Errorf("page breaks = %d, want 1", breaks)
	}

	// Ten rows sit on page two; the footer still fits there.
	broke, err := f.Request(12)
	if err != nil {
		t.Fatalf("footer request: %v", err)
	}
	if broke {
		t.Error("footer forced a page break despite available room")
	}
	if f.Pages() != 2 {
		t.Errorf("Pages after footer = %d, want 2", f.Pages())
	}
}

func TestFlow_FooterPushedToFreshPage(t *testing.T) {
	f := NewFlow(testPageHeight, testMargin, testReserve)

	// Fill page one completely.
	for i := 0; i < 30; i++ {
		if _, err := f.Request(testRowHeight); err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		f.Advance(testRowHeight)
	}
	if f.Pages() != 1 {
		t.Fatalf("Pages = %d, want 1 after an exactly-full page", f.Pages())
	}

	broke, err := f.Request(12)
	if err != nil {
		t.Fatalf("footer request: %v", err)
	}
	if !broke {
		t.Error("footer should start a new page rather than overlap the last row")
	}
	if f.Pages() != 2 {
		t.Errorf("Pages = %d, want 2", f.Pages())
	}
	if f.Cursor() != testMargin {
		t.Errorf("cursor = %v, want reset to top margin %v", f.Cursor(), testMargin)
	}
}

func TestFlow_OverflowError(t *testing.T) {
	f := NewFlow(testPageHeight, testMargin, testReserve)

	_, err := f.Request(1000)
	var overflow *RenderingOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("err = %v, want *RenderingOverflowError", err)
	}
	if f.Pages() != 1 {
		t.Errorf("overflow must not start pages, got %d", f.Pages())
	}
}

func TestFlow_AdvanceWithoutRequest(t *testing.T) {
	f := NewFlow(testPageHeight, testMargin, testReserve)
	f.Advance(7)
	if f.Cursor() != testMargin+7 {
		t.Errorf("Cursor = %v, want %v", f.Cursor(), testMargin+7)
	}
}
