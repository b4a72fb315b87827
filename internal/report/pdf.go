package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rmoreira/researchflow/internal/types"
)

// pdfCanvas adapts an fpdf document to the Canvas interface.
type pdfCanvas struct {
	doc *fpdf.Fpdf
}

func newPDFCanvas() *pdfCanvas {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &pdfCanvas{doc: doc}
}

func (c *pdfCanvas) PageSize() (float64, float64) {
	w, h := c.doc.GetPageSize()
	return w, h
}

func (c *pdfCanvas) SetFont(style string, size float64) {
	c.doc.SetFont("Helvetica", style, size)
}

func (c *pdfCanvas) SetTextColor(r, g, b int) {
	c.doc.SetTextColor(r, g, b)
}

func (c *pdfCanvas) SetFillColor(r, g, b int) {
	c.doc.SetFillColor(r, g, b)
}

func (c *pdfCanvas) FillRect(x, y, w, h float64) {
	c.doc.Rect(x, y, w, h, "F")
}

func (c *pdfCanvas) SplitText(text string, width float64) []string {
	return c.doc.SplitText(text, width)
}

func (c *pdfCanvas) Text(x, y float64, line string) {
	c.doc.Text(x, y, line)
}

func (c *pdfCanvas) CenteredText(y float64, line string) {
	pageWidth, _ := c.doc.GetPageSize()
	lineWidth := c.doc.GetStringWidth(line)
	c.doc.Text((pageWidth-lineWidth)/2, y, line)
}

func (c *pdfCanvas) AddPage() {
	c.doc.AddPage()
}

func (c *pdfCanvas) PageCount() int {
	return c.doc.PageCount()
}

func (c *pdfCanvas) SetPage(n int) {
	c.doc.SetPage(n)
}

// Generate renders the article into PDF bytes. A nil article is a silent
// no-op producing no document.
func Generate(article *types.ProcessedArticle) ([]byte, error) {
	if article == nil {
		return nil, nil
	}

	canvas := newPDFCanvas()
	Render(canvas, article)

	var buf bytes.Buffer
	if err := canvas.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to produce PDF: %w", err)
	}
	return buf.Bytes(), nil
}
