package extractor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LedongthucReader is the production PDFTextReader, backed by the
// github.com/ledongthuc/pdf text-layer reader. Row-based extraction preserves
// the tabular layout of statements better than plain-text extraction, so it is
// tried first.
type LedongthucReader struct{}

// ReadText extracts the text layer of a PDF. The underlying library panics on
// some malformed files, so extraction runs behind a recover.
func (r *LedongthucReader) ReadText(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf reader crashed: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	text = extractByRow(reader, numPages)
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	// Fall back to whole-document plain text when row extraction yields nothing
	return extractPlainText(reader)
}

func extractByRow(reader *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(pages, "\n")
}

func extractPlainText(reader *pdf.Reader) (string, error) {
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading plain text: %w", err)
	}
	data, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("reading plain text: %w", err)
	}
	return string(data), nil
}
