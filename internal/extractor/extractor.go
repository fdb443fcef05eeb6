// Package extractor converts an input document (CSV bytes or PDF) into plain
// UTF-8 text. It is purely functional: the same bytes always produce the same
// text or the same failure.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"finsight/statement-import/internal/importerror"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

// MaxFileSize is the hard ceiling enforced before any extraction is attempted.
const MaxFileSize int64 = 50 << 20 // 50MB

// DefaultTimeout bounds PDF text extraction so pathological files cannot hang
// an import.
const DefaultTimeout = 30 * time.Second

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PDFTextReader extracts the embedded text layer from PDF bytes.
type PDFTextReader interface {
	ReadText(data []byte) (string, error)
}

// Extractor turns documents into plain text.
type Extractor struct {
	logger    logging.Logger
	pdfReader PDFTextReader
	timeout   time.Duration
}

// New creates an Extractor with the production PDF reader and default timeout.
func New(logger logging.Logger) *Extractor {
	return NewWithReader(logger, nil, DefaultTimeout)
}

// NewWithReader creates an Extractor with an injected PDF reader, used by
// tests and by callers that want a different extraction backend. A nil reader
// selects the production one; a non-positive timeout selects the default.
func NewWithReader(logger logging.Logger, reader PDFTextReader, timeout time.Duration) *Extractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if reader == nil {
		reader = &LedongthucReader{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{
		logger:    logger,
		pdfReader: reader,
		timeout:   timeout,
	}
}

// Extract returns the plain text of a document. Oversize documents are
// rejected before extraction. A PDF whose extracted text is empty or
// whitespace-only fails with NoTextLayerError; any other PDF failure is an
// ExtractionFailedError.
func (e *Extractor) Extract(ctx context.Context, doc models.Document) (string, error) {
	size := doc.Size
	if size == 0 {
		size = int64(len(doc.Content))
	}
	if size > MaxFileSize {
		e.logger.Warn("Rejecting oversize document",
			logging.Field{Key: logging.FieldFile, Value: doc.Name},
			logging.Field{Key: logging.FieldSize, Value: size})
		return "", &importerror.FileTooLargeError{FileName: doc.Name, Size: size, Limit: MaxFileSize}
	}

	switch doc.MediaType {
	case models.MediaTypeCSV:
		return decodeText(doc.Content), nil
	case models.MediaTypePDF:
		return e.extractPDF(ctx, doc)
	default:
		return "", &importerror.InvalidFileTypeError{FileName: doc.Name, MediaType: doc.MediaType}
	}
}

// decodeText decodes CSV bytes as UTF-8 text. A leading BOM is dropped and
// invalid sequences are replaced rather than failing the import.
func decodeText(content []byte) string {
	content = bytes.TrimPrefix(content, utf8BOM)
	content = bytes.ToValidUTF8(content, []byte("�"))
	return string(content)
}

func (e *Extractor) extractPDF(ctx context.Context, doc models.Document) (string, error) {
	start := time.Now()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := e.pdfReader.ReadText(doc.Content)
		done <- result{text: text, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-time.After(e.timeout):
		return "", &importerror.ExtractionFailedError{
			FileName: doc.Name,
			Err:      fmt.Errorf("extraction exceeded %s", e.timeout),
		}
	case <-ctx.Done():
		return "", &importerror.ExtractionFailedError{FileName: doc.Name, Err: ctx.Err()}
	}

	if res.err != nil {
		e.logger.WithError(res.err).Error("PDF text extraction failed",
			logging.Field{Key: logging.FieldFile, Value: doc.Name})
		return "", &importerror.ExtractionFailedError{FileName: doc.Name, Err: res.err}
	}

	if strings.TrimSpace(res.text) == "" {
		// The designed signal for scanned/image-based statements
		return "", &importerror.NoTextLayerError{FileName: doc.Name}
	}

	e.logger.Debug("Extracted PDF text",
		logging.Field{Key: logging.FieldFile, Value: doc.Name},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return res.text, nil
}
