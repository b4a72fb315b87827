// Package report lays out a processed article as a paginated PDF document.
package report

// Canvas is the paged-document surface the layout engine draws on. It
// mirrors the capabilities of the PDF backend (fonts, filled rectangles,
// positioned text with width-based wrapping, page management) so the layout
// algorithm itself stays backend-agnostic and testable.
//
// Coordinates and sizes are in millimeters; font sizes are in points.
// Style is a font style code: "" for normal, "B" for bold.
type Canvas interface {
	// PageSize returns the page width and height.
	PageSize() (w, h float64)
	// SetFont selects the style and size for subsequent text.
	SetFont(style string, size float64)
	// SetTextColor sets the color for subsequent text.
	SetTextColor(r, g, b int)
	// SetFillColor sets the color for subsequent filled shapes.
	SetFillColor(r, g, b int)
	// FillRect draws a filled rectangle.
	FillRect(x, y, w, h float64)
	// SplitText wraps text to the given width using the current font,
	// returning the resulting lines.
	SplitText(text string, width float64) []string
	// Text draws a single line with its baseline at y.
	Text(x, y float64, line string)
	// CenteredText draws a single line horizontally centered on the page.
	CenteredText(y float64, line string)
	// AddPage starts a new page and makes it current.
	AddPage()
	// PageCount returns the number of pages emitted so far.
	PageCount() int
	// SetPage makes an already emitted page current again, for the
	// footer pass once the total page count is known.
	SetPage(n int)
}
