package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotPDF is returned for payloads without a PDF header.
	ErrNotPDF = errors.New("not a pdf")

	labelKey = regexp.MustCompile(`(?i)\bcv\.(?:summary|experience|education|skills|languages|volunteer|interests|present)\b`)
)

// TextFromPDF returns the text layer of every page, in page order.
func TextFromPDF(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return "", ErrNotPDF
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

// PageCount reports how many pages the document has.
func PageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return reader.NumPage(), nil
}

// Report is the outcome of checking an exported CV's text.
type Report struct {
	Pages       int
	HasName     bool
	LeakedKeys  []string
	TextPreview string
}

// OK reports whether the export passed every check.
func (r Report) OK() bool {
	return r.HasName && len(r.LeakedKeys) == 0
}

// Verify reads an exported CV back and checks that fullName was drawn and that
// no untranslated label key reached the page, in any case. Whitespace is ignored when
// matching the name because text extraction may split runs.
func Verify(ctx context.Context, data []byte, fullName string) (Report, error) {
	text, err := TextFromPDF(ctx, data)
	if err != nil {
		return Report{}, err
	}
	pages, err := PageCount(data)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Pages:       pages,
		HasName:     strings.Contains(squash(text), squash(fullName)),
		LeakedKeys:  leakedKeys(text),
		TextPreview: preview(text, 120),
	}
	return report, nil
}

func leakedKeys(text string) []string {
	seen := make(map[string]struct{})
	for _, key := range labelKey.FindAllString(text, -1) {
		seen[strings.ToLower(key)] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func preview(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
