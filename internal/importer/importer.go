// Package importer owns the per-file import workflow: extraction, bank
// detection, recognition, normalization and categorization, aggregated into a
// single ImportReport. This is the boundary the surrounding application
// consumes.
package importer

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/google/uuid"

	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/categorizer"
	"finsight/statement-import/internal/extractor"
	"finsight/statement-import/internal/importerror"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
	"finsight/statement-import/internal/normalizer"
	"finsight/statement-import/internal/recognizer"
)

// Importer runs the import pipeline. It holds no per-import state: concurrent
// calls are safe because each one operates on its own document and report.
type Importer struct {
	extractor  *extractor.Extractor
	engine     *recognizer.Engine
	normalizer *normalizer.Normalizer
	classifier *categorizer.Classifier
	logger     logging.Logger
}

// Option customizes an Importer.
type Option func(*Importer)

// WithExtractor overrides the text extractor, mainly for tests.
func WithExtractor(e *extractor.Extractor) Option {
	return func(imp *Importer) { imp.extractor = e }
}

// WithEngine overrides the recognition engine.
func WithEngine(e *recognizer.Engine) Option {
	return func(imp *Importer) { imp.engine = e }
}

// WithClassifier overrides the category classifier.
func WithClassifier(c *categorizer.Classifier) Option {
	return func(imp *Importer) { imp.classifier = c }
}

// New creates an Importer with production defaults.
func New(logger logging.Logger, opts ...Option) *Importer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	imp := &Importer{
		extractor:  extractor.New(logger),
		engine:     recognizer.NewEngine(logger),
		normalizer: normalizer.New(logger),
		classifier: categorizer.New(logger),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Import processes one document start to finish and returns its report.
// Recoverable conditions (unparseable rows, zero-result parses) become
// ImportError entries; only document-level problems return a Go error:
// invalid file type, oversize file, and total extraction failure.
//
// Import is idempotent: the same bytes yield the same multiset of
// (date, description, amount, direction, category) tuples, and transaction
// ids derive from content and index rather than wall-clock time.
func (imp *Importer) Import(ctx context.Context, doc models.Document) (*models.ImportReport, error) {
	if doc.MediaType != models.MediaTypeCSV && doc.MediaType != models.MediaTypePDF {
		return nil, &importerror.InvalidFileTypeError{FileName: doc.Name, MediaType: doc.MediaType}
	}

	text, err := imp.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, &importerror.NoTextLayerError{FileName: doc.Name}
	}

	profile := bankprofile.Detect(text)
	imp.logger.Info("Detected bank profile",
		logging.Field{Key: logging.FieldFile, Value: doc.Name},
		logging.Field{Key: logging.FieldBank, Value: profile.Name})

	candidates, strategy, importErrors := imp.engine.Recognize(text, profile)
	if strategy != "" {
		imp.logger.Info("Recognition strategy selected",
			logging.Field{Key: logging.FieldStrategy, Value: strategy},
			logging.Field{Key: logging.FieldCount, Value: len(candidates)})
	}

	transactions := make([]models.ParsedTransaction, 0, len(candidates))
	seen := make(map[string]bool)

	for i, candidate := range candidates {
		tx, err := imp.normalizer.Normalize(candidate)
		if err != nil {
			importErrors = append(importErrors, rowError(candidate, err))
			continue
		}

		tx.Category = imp.classifier.Classify(tx.Description)
		tx.ID = transactionID(tx, i)

		if seen[tx.DedupKey()] {
			continue
		}
		seen[tx.DedupKey()] = true
		transactions = append(transactions, tx)
	}

	// Stable keeps input order within a day; ISO dates sort lexically
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date < transactions[j].Date
	})

	report := &models.ImportReport{
		ID:               uuid.NewString(),
		BankName:         profile.DisplayName,
		Transactions:     transactions,
		Errors:           importErrors,
		StatementPeriod:  statementPeriod(transactions),
		TransactionCount: len(transactions),
	}

	imp.logger.Info("Import finished",
		logging.Field{Key: logging.FieldFile, Value: doc.Name},
		logging.Field{Key: logging.FieldCount, Value: report.TransactionCount})

	return report, nil
}

// rowError converts a normalization failure into a row-level ImportError.
// Expected parse failures are warnings; anything else is an error entry.
// Either way the pipeline continues with the next row.
func rowError(candidate recognizer.Candidate, err error) models.ImportError {
	var parseErr *importerror.ParseError
	if errors.As(err, &parseErr) {
		suggestion := ""
		if parseErr.Field == "date" {
			suggestion = "expected DD/MM/YYYY or DD-MM-YYYY"
		}
		return models.ImportError{
			Row:        candidate.Line,
			Field:      parseErr.Field,
			Message:    parseErr.Error(),
			Severity:   models.SeverityWarning,
			Suggestion: suggestion,
		}
	}
	return models.ImportError{
		Row:      candidate.Line,
		Message:  err.Error(),
		Severity: models.SeverityError,
	}
}

// transactionID derives a stable id from transaction content and batch index,
// so that re-importing the same file reproduces the same ids.
func transactionID(tx models.ParsedTransaction, index int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s|%d", tx.Date, tx.Description, tx.Amount.StringFixed(2), tx.Direction, index)
	return fmt.Sprintf("txn-%016x", h.Sum64())
}

func statementPeriod(transactions []models.ParsedTransaction) models.StatementPeriod {
	if len(transactions) == 0 {
		return models.StatementPeriod{}
	}
	period := models.StatementPeriod{
		StartDate: transactions[0].Date,
		EndDate:   transactions[0].Date,
	}
	for _, tx := range transactions[1:] {
		if tx.Date < period.StartDate {
			period.StartDate = tx.Date
		}
		if tx.Date > period.EndDate {
			period.EndDate = tx.Date
		}
	}
	return period
}
