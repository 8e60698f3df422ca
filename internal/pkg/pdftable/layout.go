// Package pdftable lays out and renders paginated tables as PDF documents.
//
// Rendering happens in two passes: Layout streams rows onto pages and only
// then knows the page count, after which every page gets its footer.
package pdftable

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyReport     = errors.New("report has no rows")
	ErrNoColumns       = errors.New("table has no columns")
	ErrColumnMismatch  = errors.New("row cell count does not match columns")
	ErrPageTooSmall    = errors.New("page is too small for the table header and one row")
	ErrInvalidPageSize = errors.New("invalid page size")
)

// Orientation of the page
type Orientation string

const (
	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

// PageSize in points, portrait orientation
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	Letter = PageSize{Name: "Letter", Width: 612, Height: 792}
	A4     = PageSize{Name: "A4", Width: 595.28, Height: 841.89}
)

// Column declares a table column. Weight <= 0 counts as 1.
type Column struct {
	Key    string
	Header string
	Weight float64
}

// Table is the input of the renderer
type Table struct {
	Title   []string
	Columns []Column
	Rows    [][]string
}

// Options controls page geometry and typography. Zero values take defaults.
type Options struct {
	PageSize        PageSize
	Orientation     Orientation
	Margin          float64
	FontSize        float64
	TitleFontSize   float64
	HeaderRowHeight float64
	RowHeight       float64
	// MaxRowsPerPage caps data rows per page in addition to the page height.
	MaxRowsPerPage int
	GeneratedAt    time.Time
	FooterFormat   string
}

const (
	defaultMargin          = 40
	defaultFontSize        = 12
	defaultTitleFontSize   = 16
	defaultHeaderRowHeight = 20
	defaultFooterFormat    = "Page %d of %d"
	titleLineSpacing       = 1.4
	titleGap               = 10
)

func (o Options) withDefaults() Options {
	if o.PageSize.Width == 0 && o.PageSize.Height == 0 {
		o.PageSize = Letter
	}
	if o.Orientation == "" {
		o.Orientation = Portrait
	}
	if o.Margin <= 0 {
		o.Margin = defaultMargin
	}
	if o.FontSize <= 0 {
		o.FontSize = defaultFontSize
	}
	if o.TitleFontSize <= 0 {
		o.TitleFontSize = defaultTitleFontSize
	}
	if o.HeaderRowHeight <= 0 {
		o.HeaderRowHeight = defaultHeaderRowHeight
	}
	if o.RowHeight <= 0 {
		o.RowHeight = o.FontSize * 1.6
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	if o.FooterFormat == "" {
		o.FooterFormat = defaultFooterFormat
	}
	return o
}

// Dimensions returns the page width and height for the orientation.
func (o Options) Dimensions() (width, height float64) {
	w, h := o.PageSize.Width, o.PageSize.Height
	if o.Orientation == Landscape {
		return h, w
	}
	return w, h
}

// PlacedColumn is a column with its computed position
type PlacedColumn struct {
	Header string
	X      float64
	Width  float64
}

// TextLine is a positioned line of the title block
type TextLine struct {
	Text string
	Y    float64
	Size float64
}

// PlacedRow is a data row with its baseline cursor position
type PlacedRow struct {
	Index int
	Y     float64
	Cells []string
}

// Page is one laid out page
type Page struct {
	Number  int
	Title   []TextLine
	HeaderY float64
	RuleY   float64
	Rows    []PlacedRow
	Footer  string
}

// Document is the result of Layout
type Document struct {
	Width   float64
	Height  float64
	Options Options
	Columns []PlacedColumn
	Pages   []*Page
}

// PageCount returns the number of laid out pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// ColumnWidths computes each column's share of the usable width.
func ColumnWidths(columns []Column, usableWidth float64) []float64 {
	total := 0.0
	for _, c := range columns {
		total += weightOf(c)
	}

	widths := make([]float64, len(columns))
	if total == 0 {
		return widths
	}
	for i, c := range columns {
		widths[i] = weightOf(c) / total * usableWidth
	}
	return widths
}

func weightOf(c Column) float64 {
	if c.Weight <= 0 {
		return 1
	}
	return c.Weight
}

// Layout paginates the table. It fails with ErrEmptyReport when there are no rows.
func Layout(table Table, opts Options) (*Document, error) {
	if len(table.Rows) == 0 {
		return nil, ErrEmptyReport
	}
	if len(table.Columns) == 0 {
		return nil, ErrNoColumns
	}

	opts = opts.withDefaults()
	width, height := opts.Dimensions()
	if width <= 2*opts.Margin || height <= 2*opts.Margin {
		return nil, ErrInvalidPageSize
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrColumnMismatch, i+1, len(row), len(table.Columns))
		}
	}

	doc := &Document{
		Width:   width,
		Height:  height,
		Options: opts,
		Columns: placeColumns(table.Columns, width, opts.Margin),
	}

	bottom := height - opts.Margin
	if opts.Margin+opts.HeaderRowHeight+opts.RowHeight > bottom {
		return nil, ErrPageTooSmall
	}

	// Title block, page 1 only
	first := &Page{Number: 1}
	y := opts.Margin
	for _, line := range table.Title {
		y += opts.TitleFontSize
		first.Title = append(first.Title, TextLine{Text: line, Y: y, Size: opts.TitleFontSize})
		y += opts.TitleFontSize * (titleLineSpacing - 1)
	}
	y += opts.FontSize
	first.Title = append(first.Title, TextLine{
		Text: "Generated: " + opts.GeneratedAt.Format("02/01/2006 15:04"),
		Y:    y,
		Size: opts.FontSize,
	})
	y += titleGap

	if y+opts.HeaderRowHeight+opts.RowHeight > bottom {
		return nil, ErrPageTooSmall
	}

	page := first
	y = emitHeader(page, y, opts)
	doc.Pages = append(doc.Pages, page)

	for i, cells := range table.Rows {
		full := opts.MaxRowsPerPage > 0 && len(page.Rows) >= opts.MaxRowsPerPage
		if y+opts.RowHeight > bottom || full {
			page = &Page{Number: len(doc.Pages) + 1}
			y = emitHeader(page, opts.Margin, opts)
			doc.Pages = append(doc.Pages, page)
		}
		page.Rows = append(page.Rows, PlacedRow{Index: i, Y: y, Cells: cells})
		y += opts.RowHeight
	}

	// Second pass: the total is known only now
	total := len(doc.Pages)
	for _, p := range doc.Pages {
		p.Footer = fmt.Sprintf(opts.FooterFormat, p.Number, total)
	}

	return doc, nil
}

func emitHeader(page *Page, y float64, opts Options) float64 {
	page.HeaderY = y
	y += opts.HeaderRowHeight
	page.RuleY = y
	return y
}

func placeColumns(columns []Column, pageWidth, margin float64) []PlacedColumn {
	widths := ColumnWidths(columns, pageWidth-2*margin)
	placed := make([]PlacedColumn, len(columns))
	x := margin
	for i, c := range columns {
		header := c.Header
		if header == "" {
			header = c.Key
		}
		placed[i] = PlacedColumn{Header: header, X: x, Width: widths[i]}
		x += widths[i]
	}
	return placed
}
