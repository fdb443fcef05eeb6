package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-import/internal/importerror"
	"finsight/statement-import/internal/models"
)

func TestDocumentFromFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Date,Amount\n"), 0644))

	doc, err := DocumentFromFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "statement.csv", doc.Name)
	assert.Equal(t, models.MediaTypeCSV, doc.MediaType)
	assert.Equal(t, int64(12), doc.Size)
	assert.Equal(t, []byte("Date,Amount\n"), doc.Content)

	pdfPath := filepath.Join(dir, "Statement.PDF")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF"), 0644))

	doc, err = DocumentFromFile(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypePDF, doc.MediaType)
}

func TestDocumentFromFileRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := DocumentFromFile(path)

	var invalid *importerror.InvalidFileTypeError
	assert.ErrorAs(t, err, &invalid)
}

func TestDocumentFromFileMissing(t *testing.T) {
	_, err := DocumentFromFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
