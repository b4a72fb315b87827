package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rmoreira/researchflow/internal/types"
)

// Fixed page geometry, in millimeters.
const (
	margin = 20.0
	topY   = 20.0
	// breakThreshold is the near-bottom cursor limit checked at each
	// section boundary. Content already being wrapped is never split onto
	// a new page mid-item, so long summaries may overflow this before
	// their own next check.
	breakThreshold = 250.0
	footerOffset   = 10.0
)

// Placeholder strings for absent fields.
const (
	placeholderTitle        = "Untitled"
	placeholderGoal         = "N/A"
	placeholderReasoning    = "No details available."
	placeholderSectionTitle = "Untitled Section"
	placeholderSummary      = "No summary content."
)

// Render lays the article out on the canvas: header, metadata, highlighted
// score panel, then the numbered section blocks with page-break detection,
// and finally a centered "Page X of N" footer stamped on every page. A nil
// article is a no-op.
func Render(c Canvas, article *types.ProcessedArticle) {
	if article == nil {
		return
	}

	pageWidth, pageHeight := c.PageSize()
	contentWidth := pageWidth - margin*2
	y := topY

	// Header
	c.SetFont("B", 22)
	c.Text(margin, y, "Research Summary Report")
	y += 15

	// Metadata
	c.SetFont("", 10)
	c.SetTextColor(100, 100, 100)
	generated := time.UnixMilli(article.ProcessedAt).Format("Jan 2, 2006 3:04:05 PM")
	c.Text(margin, y, "Generated on: "+generated)
	y += 10

	// Title
	c.SetFont("B", 16)
	c.SetTextColor(0, 0, 0)
	title := article.Title
	if title == "" {
		title = placeholderTitle
	}
	y = drawWrapped(c, title, contentWidth, y, 7) + 5

	// Research context
	c.SetFont("B", 12)
	c.Text(margin, y, "Research Context:")
	y += 7
	c.SetFont("", 12)
	goal := article.ResearchGoal
	if goal == "" {
		goal = placeholderGoal
	}
	c.Text(margin, y, goal)
	y += 12

	// Importance panel
	c.SetFillColor(240, 245, 255)
	c.FillRect(margin-2, y-5, contentWidth+4, 30)
	c.SetFont("B", 12)
	c.Text(margin, y+2, fmt.Sprintf("Importance Score: %s/100", formatScore(article.ImportanceScore)))
	y += 10
	c.SetFont("", 12)
	reasoning := article.ImportanceReasoning
	if reasoning == "" {
		reasoning = placeholderReasoning
	}
	y = drawWrapped(c, reasoning, contentWidth, y, 6) + 15

	// Sections
	c.SetFont("B", 14)
	c.Text(margin, y, "Key Findings & Section Summaries")
	y += 10

	for i, section := range article.Sections {
		// Page-break check happens only at the section boundary.
		if y > breakThreshold {
			c.AddPage()
			y = topY
		}

		sectionTitle := section.Title
		if sectionTitle == "" {
			sectionTitle = placeholderSectionTitle
		}
		c.SetFont("B", 11)
		y = drawWrapped(c, fmt.Sprintf("%d. %s", i+1, sectionTitle), contentWidth, y, 6) + 2

		summary := section.Summary
		if summary == "" {
			summary = placeholderSummary
		}
		c.SetFont("", 11)
		y = drawWrapped(c, summary, contentWidth, y, 6) + 10
	}

	// Footer pass: total page count is only known now.
	total := c.PageCount()
	for page := 1; page <= total; page++ {
		c.SetPage(page)
		c.SetFont("", 10)
		c.SetTextColor(150, 150, 150)
		c.CenteredText(pageHeight-footerOffset, fmt.Sprintf("Page %d of %d", page, total))
	}
}

// drawWrapped wraps text to width, draws each line advancing by lineHeight,
// and returns the cursor position after the block.
func drawWrapped(c Canvas, text string, width, y, lineHeight float64) float64 {
	lines := c.SplitText(text, width)
	for _, line := range lines {
		c.Text(margin, y, line)
		y += lineHeight
	}
	return y
}

// formatScore renders the score without a trailing fractional part for
// whole values. Absent scores render as 0; out-of-range values pass through.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
