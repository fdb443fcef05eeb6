package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finsight/statement-import/internal/importerror"
	"finsight/statement-import/internal/models"
)

// DocumentFromFile reads a statement file from disk and builds the Document
// handed to Import. The media type is inferred from the file extension;
// unknown extensions fail with InvalidFileTypeError before any bytes are read.
func DocumentFromFile(path string) (models.Document, error) {
	mediaType, err := mediaTypeFromName(path)
	if err != nil {
		return models.Document{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return models.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return models.Document{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Size:      info.Size(),
		Content:   content,
	}, nil
}

func mediaTypeFromName(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return models.MediaTypeCSV, nil
	case ".pdf":
		return models.MediaTypePDF, nil
	default:
		return "", &importerror.InvalidFileTypeError{
			FileName:  filepath.Base(path),
			MediaType: strings.TrimPrefix(filepath.Ext(path), "."),
		}
	}
}
