package pdftable

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily     = "Helvetica"
	ellipsis       = "..."
	cellPadding    = 2.0
	footerFontSize = 9.0
)

// Render lays out the table and draws it with fpdf. No bytes are produced
// when the table is empty.
func Render(table Table, opts Options) ([]byte, error) {
	doc, err := Layout(table, opts)
	if err != nil {
		return nil, err
	}
	return Draw(doc)
}

// Draw writes a laid out document to PDF bytes.
func Draw(doc *Document) ([]byte, error) {
	opts := doc.Options

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: string(opts.Orientation),
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: opts.PageSize.Width, Ht: opts.PageSize.Height},
	})
	pdf.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(opts.GeneratedAt)
	pdf.SetCreator("retiree-registry", false)
	if len(doc.Pages) > 0 && len(doc.Pages[0].Title) > 0 {
		pdf.SetTitle(doc.Pages[0].Title[0].Text, true)
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// First pass: content
	for _, page := range doc.Pages {
		pdf.AddPage()
		drawTitle(pdf, tr, doc, page)
		drawHeader(pdf, tr, doc, page)
		drawRows(pdf, tr, doc, page)
	}

	// Second pass: footers, once the page count is final
	for i, page := range doc.Pages {
		pdf.SetPage(i + 1)
		pdf.SetFont(fontFamily, "I", footerFontSize)
		pdf.SetFontSize(footerFontSize)
		pdf.SetTextColor(90, 90, 90)
		pdf.SetXY(opts.Margin, doc.Height-opts.Margin/2-footerFontSize/2)
		pdf.CellFormat(doc.Width-2*opts.Margin, footerFontSize, tr(page.Footer), "", 0, "C", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to draw pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTitle(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, page *Page) {
	if len(page.Title) == 0 {
		return
	}
	pdf.SetTextColor(0, 0, 0)
	last := len(page.Title) - 1
	for i, line := range page.Title {
		style := "B"
		if i == last {
			// generation timestamp
			style = ""
		}
		pdf.SetFont(fontFamily, style, line.Size)
		w := pdf.GetStringWidth(tr(line.Text))
		pdf.Text((doc.Width-w)/2, line.Y, tr(line.Text))
	}
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, page *Page) {
	opts := doc.Options
	pdf.SetFont(fontFamily, "B", opts.FontSize)
	pdf.SetTextColor(0, 0, 0)
	for _, col := range doc.Columns {
		pdf.SetXY(col.X, page.HeaderY)
		text := fit(pdf, tr(col.Header), col.Width-cellPadding)
		pdf.CellFormat(col.Width, opts.HeaderRowHeight, text, "", 0, "L", false, 0, "")
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.8)
	pdf.Line(opts.Margin, page.RuleY, doc.Width-opts.Margin, page.RuleY)
}

func drawRows(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, page *Page) {
	opts := doc.Options
	pdf.SetFont(fontFamily, "", opts.FontSize)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	for _, row := range page.Rows {
		for i, col := range doc.Columns {
			pdf.SetXY(col.X, row.Y)
			text := fit(pdf, tr(row.Cells[i]), col.Width-cellPadding)
			pdf.CellFormat(col.Width, opts.RowHeight, text, "", 0, "L", false, 0, "")
		}
		y := row.Y + opts.RowHeight
		pdf.Line(opts.Margin, y, doc.Width-opts.Margin, y)
	}
}

// fit truncates text with an ellipsis so it does not exceed width.
// text is already cp1252, one byte per glyph.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	text = strings.TrimSpace(text)
	if width <= 0 || pdf.GetStringWidth(text) <= width {
		return text
	}
	for n := len(text) - 1; n > 0; n-- {
		candidate := text[:n] + ellipsis
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
