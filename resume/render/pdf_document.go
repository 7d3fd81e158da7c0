package render

import (
	"bytes"
	"errors"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageMarginX      = 40
	pageMarginY      = 50
	fontFamily       = "Helvetica"
	lineHeightFactor = 1.25
	bulletIndent     = 12
	bullet           = "• "
)

var errDocumentClosed = errors.New("document closed")

// Document is the output handle of one export. Add appends blocks in order,
// Finish serializes the result and Close releases the handle. Close must be
// safe to call after Finish and more than once.
type Document interface {
	Add(b Block) error
	Finish() ([]byte, error)
	Close() error
}

// DocumentMeta is written into the document information dictionary.
type DocumentMeta struct {
	Title    string
	Author   string
	Subject  string
	Lang     string
	Created  time.Time
	Compress bool
}

// DocumentFactory opens a fresh Document for a single export.
type DocumentFactory func(meta DocumentMeta) (Document, error)

// pdfDocument lays blocks out on A4 pages using the PDF core Helvetica family.
type pdfDocument struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewPDFDocument opens an A4 portrait document measured in points.
func NewPDFDocument(meta DocumentMeta) (Document, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMarginX, pageMarginY, pageMarginX)
	pdf.SetAutoPageBreak(true, pageMarginY)
	pdf.SetCompression(meta.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(meta.Created)
	pdf.SetModificationDate(meta.Created)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(meta.Title), false)
	pdf.SetAuthor(tr(meta.Author), false)
	pdf.SetSubject(tr(meta.Subject), false)
	pdf.SetCreator("cvPro", false)
	pdf.SetProducer("cvPro", false)
	if meta.Lang != "" {
		pdf.SetLang(meta.Lang)
	}
	pdf.AddPage()
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return &pdfDocument{pdf: pdf, tr: tr}, nil
}

func (d *pdfDocument) Add(b Block) error {
	if d.pdf == nil {
		return errDocumentClosed
	}
	if b.SpaceBefore > 0 {
		d.pdf.Ln(b.SpaceBefore)
	}

	switch b.Kind {
	case BlockRule:
		d.rule(b.Style)
	case BlockLabeled:
		d.labeled(b)
	case BlockBullets:
		d.bullets(b)
	default:
		d.paragraph(b.Text, b.Style)
	}

	if b.SpaceAfter > 0 {
		d.pdf.Ln(b.SpaceAfter)
	}
	return d.pdf.Error()
}

func (d *pdfDocument) Finish() ([]byte, error) {
	if d.pdf == nil {
		return nil, errDocumentClosed
	}
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *pdfDocument) Close() error {
	d.pdf = nil
	return nil
}

func (d *pdfDocument) paragraph(text string, s Style) {
	d.apply(s)
	d.pdf.MultiCell(0, lineHeight(s), d.tr(text), "", alignString(s.Align), false)
}

func (d *pdfDocument) labeled(b Block) {
	h := lineHeight(b.Style)
	if lh := lineHeight(b.LabelStyle); lh > h {
		h = lh
	}
	d.apply(b.LabelStyle)
	d.pdf.Write(h, d.tr(b.Label))
	d.apply(b.Style)
	d.pdf.Write(h, d.tr(b.Text))
	d.pdf.Ln(h)
}

func (d *pdfDocument) bullets(b Block) {
	d.apply(b.Style)
	left, _, _, _ := d.pdf.GetMargins()
	for _, item := range b.Items {
		d.pdf.SetX(left + bulletIndent)
		d.pdf.MultiCell(0, lineHeight(b.Style), d.tr(bullet+item), "", "L", false)
	}
}

func (d *pdfDocument) rule(s Style) {
	width, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	y := d.pdf.GetY()
	d.pdf.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
	d.pdf.SetLineWidth(s.Size)
	d.pdf.Line(left, y, width-right, y)
}

func (d *pdfDocument) apply(s Style) {
	d.pdf.SetFont(fontFamily, fontStyle(s), s.Size)
	d.pdf.SetTextColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
}

func fontStyle(s Style) string {
	style := ""
	if s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	return style
}

func alignString(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignJustify:
		return "J"
	default:
		return "L"
	}
}

func lineHeight(s Style) float64 {
	return s.Size * lineHeightFactor
}
