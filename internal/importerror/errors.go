// Package importerror defines the typed errors surfaced by the import
// pipeline. Only document-level problems are expressed as Go errors; per-row
// problems are recorded as models.ImportError entries instead.
package importerror

import "fmt"

// InvalidFileTypeError is returned when the declared media type is not one the
// pipeline accepts.
type InvalidFileTypeError struct {
	FileName  string
	MediaType string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %q: expected csv or pdf", e.MediaType, e.FileName)
}

// FileTooLargeError is returned before any extraction is attempted when the
// input exceeds the hard size ceiling.
type FileTooLargeError struct {
	FileName string
	Size     int64
	Limit    int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %q is %d bytes, exceeding the %d byte limit", e.FileName, e.Size, e.Limit)
}

// NoTextLayerError signals a PDF with no embedded text layer, the designed
// marker for scanned or image-based statements. Callers should present the
// Suggestion rather than a generic failure.
type NoTextLayerError struct {
	FileName string
}

func (e *NoTextLayerError) Error() string {
	return fmt.Sprintf("no text layer found in %q: the PDF appears to be scanned or image-based", e.FileName)
}

// Suggestion returns the user-facing remediation for a scanned PDF.
func (e *NoTextLayerError) Suggestion() string {
	return "run the document through OCR, or re-export the statement from your bank with selectable text"
}

// ExtractionFailedError covers every other extraction failure: corrupt files,
// unsupported encodings, extraction timeouts.
type ExtractionFailedError struct {
	FileName string
	Err      error
}

func (e *ExtractionFailedError) Error() string {
	return fmt.Sprintf("text extraction failed for %q: %v", e.FileName, e.Err)
}

func (e *ExtractionFailedError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure while parsing a specific piece of extracted
// text. It is caught locally and converted to a row-level ImportError.
type ParseError struct {
	Stage string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s=%q: %v", e.Stage, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
