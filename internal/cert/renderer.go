// Package cert renders a paginated PDF certificate from a graded result:
// colored header band, candidate block, optional environment details, score
// summary, per-category table and footer. Pagination is driven by a Flow so
// the overflow policy is testable apart from the PDF backend.
package cert

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/quizcert/quizcert/internal/envinfo"
	"github.com/quizcert/quizcert/internal/grade"
)

// Options controls page geometry and titling.
type Options struct {
	Title      string
	Subtitle   string
	PageWidth  float64 // mm
	PageHeight float64 // mm
	Margin     float64 // mm
	// FooterReserve is the band above the bottom margin kept clear for
	// the footer lines.
	FooterReserve float64
}

// DefaultOptions returns A4 portrait geometry with 15mm margins.
func DefaultOptions() Options {
	return Options{
		Title:         "Certificate of Achievement",
		Subtitle:      "Knowledge Assessment",
		PageWidth:     210,
		PageHeight:    297,
		Margin:        15,
		FooterReserve: 20,
	}
}

// Header band colors, keyed to the two-state pass/fail verdict.
var (
	passColor = [3]int{33, 150, 243}
	failColor = [3]int{244, 67, 54}
)

const (
	bandHeight  = 50
	rowHeight   = 6
	lineHeight  = 6
	smallLine   = 5
	uaLine      = 4
	textGray    = 100
)

// Renderer produces certificate documents. A Renderer is stateless and safe
// for concurrent use; all per-document state lives in Render.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with the given options. Zero-valued
// geometry fields fall back to defaults.
func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.PageWidth == 0 {
		opts.PageWidth = def.PageWidth
	}
	if opts.PageHeight == 0 {
		opts.PageHeight = def.PageHeight
	}
	if opts.Margin == 0 {
		opts.Margin = def.Margin
	}
	if opts.FooterReserve == 0 {
		opts.FooterReserve = def.FooterReserve
	}
	return &Renderer{opts: opts}
}

// Render lays out the certificate for a graded result. The issuedAt instant
// is the only time input: rendering the same result with the same issuedAt
// produces byte-identical output.
func (r *Renderer) Render(result *grade.Result, candidate string, details *envinfo.Details, issuedAt time.Time) ([]byte, error) {
	o := r.opts
	contentWidth := o.PageWidth - 2*o.Margin

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(issuedAt)
	pdf.SetModificationDate(issuedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	flow := NewFlow(o.PageHeight, o.Margin, o.FooterReserve)
	flow.OnPageBreak(func() {
		pdf.AddPage()
	})

	band := passColor
	status := "PASSED"
	if !result.Passed {
		band = failColor
		status = "NOT PASSED"
	}

	// Header band.
	pdf.SetFillColor(band[0], band[1], band[2])
	pdf.Rect(0, 0, o.PageWidth, bandHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetXY(0, 12)
	pdf.CellFormat(o.PageWidth, 12, o.Title, "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(0, 31)
	pdf.CellFormat(o.PageWidth, 8, status, "", 0, "C", false, 0, "")
	flow.Advance(bandHeight + 10 - o.Margin) // cursor below the band

	// Candidate block.
	pdf.SetTextColor(0, 0, 0)
	if err := r.heading(pdf, flow, "Candidate Information", 12); err != nil {
		return nil, err
	}
	if err := r.line(pdf, flow, fmt.Sprintf("Name: %s", candidate), 10, lineHeight); err != nil {
		return nil, err
	}
	if err := r.line(pdf, flow, fmt.Sprintf("Date: %s", issuedAt.Format("2006-01-02")), 10, lineHeight); err != nil {
		return nil, err
	}
	flow.Advance(4)

	// Environment details, only when at least one field is present. Fields
	// render independently; absent ones are skipped without gaps.
	if !details.Empty() {
		if err := r.heading(pdf, flow, "Environment Details", 11); err != nil {
			return nil, err
		}
		if details.LocalTime != nil {
			if err := r.line(pdf, flow, "Local Time: "+*details.LocalTime, 9, smallLine); err != nil {
				return nil, err
			}
		}
		if details.UTCTime != nil {
			if err := r.line(pdf, flow, "UTC Time: "+*details.UTCTime, 9, smallLine); err != nil {
				return nil, err
			}
		}
		if details.TimeZone != nil {
			if err := r.line(pdf, flow, "Timezone: "+*details.TimeZone, 9, smallLine); err != nil {
				return nil, err
			}
		}
		if details.UserAgent != nil {
			// Wrapped to content width; the cursor advances by the actual
			// number of wrapped lines.
			pdf.SetFont("Helvetica", "", 9)
			lines := pdf.SplitText("Browser/Device: "+*details.UserAgent, contentWidth)
			for _, ln := range lines {
				if _, err := flow.Request(uaLine); err != nil {
					return nil, err
				}
				pdf.SetXY(o.Margin, flow.Cursor())
				pdf.CellFormat(contentWidth, uaLine, ln, "", 0, "L", false, 0, "")
				flow.Advance(uaLine)
			}
			flow.Advance(1)
		}
		if details.Location != nil {
			loc := details.Location
			text := fmt.Sprintf("Location: %.5f, %.5f", loc.Latitude, loc.Longitude)
			if loc.AccuracyM > 0 {
				text += fmt.Sprintf(" (within %.0fm)", loc.AccuracyM)
			}
			if err := r.line(pdf, flow, text, 9, smallLine); err != nil {
				return nil, err
			}
		}
		flow.Advance(4)
	}

	// Score summary.
	if err := r.heading(pdf, flow, "Score Summary", 12); err != nil {
		return nil, err
	}
	if err := r.line(pdf, flow, fmt.Sprintf("Total Score: %d/%d (%d%%)", result.Score, result.Total, result.Percentage), 10, lineHeight); err != nil {
		return nil, err
	}
	if err := r.line(pdf, flow, fmt.Sprintf("Passing Threshold: %d%%", grade.PassThreshold), 10, lineHeight); err != nil {
		return nil, err
	}
	flow.Advance(4)

	// Category table.
	if err := r.table(pdf, flow, result, band); err != nil {
		return nil, err
	}

	// Footer; starts a fresh page when the last row left no room.
	if _, err := flow.Request(12); err != nil {
		return nil, err
	}
	pdf.SetTextColor(textGray, textGray, textGray)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetXY(o.Margin, o.PageHeight-15)
	pdf.CellFormat(contentWidth, 5, "This certificate was generated by the assessment engine from a graded attempt.", "", 0, "L", false, 0, "")
	pdf.SetXY(o.Margin, o.PageHeight-10)
	pdf.CellFormat(contentWidth, 5, "Results reflect the candidate's answers at the time of issue.", "", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// heading emits a bold section heading and advances the cursor.
func (r *Renderer) heading(pdf *fpdf.Fpdf, flow *Flow, text string, size float64) error {
	if _, err := flow.Request(8); err != nil {
		return err
	}
	pdf.SetFont("Helvetica", "B", size)
	pdf.SetXY(r.opts.Margin, flow.Cursor())
	pdf.CellFormat(r.opts.PageWidth-2*r.opts.Margin, 8, text, "", 0, "L", false, 0, "")
	flow.Advance(8)
	return nil
}

// line emits one plain text line and advances the cursor.
func (r *Renderer) line(pdf *fpdf.Fpdf, flow *Flow, text string, size, height float64) error {
	if _, err := flow.Request(height); err != nil {
		return err
	}
	pdf.SetFont("Helvetica", "", size)
	pdf.SetXY(r.opts.Margin, flow.Cursor())
	pdf.CellFormat(r.opts.PageWidth-2*r.opts.Margin, height, text, "", 0, "L", false, 0, "")
	flow.Advance(height)
	return nil
}

// table renders the per-category breakdown: colored header cells followed
// by plain rows, fixed column widths, sorted by category id for stable
// output. Rows that would cross the reserve band start a new page.
func (r *Renderer) table(pdf *fpdf.Fpdf, flow *Flow, result *grade.Result, band [3]int) error {
	o := r.opts
	if err := r.heading(pdf, flow, "Category Breakdown", 11); err != nil {
		return err
	}

	widths := []float64{30, 70, 25, 25, 30}
	headers := []string{"Category", "Name", "Correct", "Total", "Percent"}

	if _, err := flow.Request(rowHeight); err != nil {
		return err
	}
	pdf.SetFillColor(band[0], band[1], band[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(o.Margin, flow.Cursor())
	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	flow.Advance(rowHeight)

	ids := make([]string, 0, len(result.PerCategory))
	for id := range result.PerCategory {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 8)
	for _, id := range ids {
		cs := result.PerCategory[id]
		if _, err := flow.Request(rowHeight); err != nil {
			return err
		}
		name := result.CategoryNames[id]
		if name == "" {
			name = id
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(o.Margin, flow.Cursor())
		pdf.CellFormat(widths[0], rowHeight, id, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], rowHeight, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], rowHeight, fmt.Sprintf("%d", cs.Correct), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], rowHeight, fmt.Sprintf("%d", cs.Total), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], rowHeight, fmt.Sprintf("%d%%", grade.Percentage(cs.Correct, cs.Total)), "1", 0, "C", false, 0, "")
		flow.Advance(rowHeight)
	}
	flow.Advance(5)
	return nil
}
