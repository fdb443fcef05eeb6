package extractor

import "time"

// MockPDFReader implements PDFTextReader for testing. It returns predefined
// text or an error instead of reading an actual PDF, optionally after a delay
// to exercise the extraction timeout.
type MockPDFReader struct {
	MockText string
	MockErr  error
	Delay    time.Duration
}

// NewMockPDFReader creates a MockPDFReader with the given canned response.
func NewMockPDFReader(text string, err error) *MockPDFReader {
	return &MockPDFReader{MockText: text, MockErr: err}
}

// ReadText returns the predefined text or error.
func (m *MockPDFReader) ReadText(data []byte) (string, error) {
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	if m.MockErr != nil {
		return "", m.MockErr
	}
	return m.MockText, nil
}
