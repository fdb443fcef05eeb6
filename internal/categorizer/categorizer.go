// Package categorizer assigns a semantic category to a transaction
// description via ordered keyword lookup. Matching is substring and
// case-insensitive; the first category whose keyword list contains a hit wins.
package categorizer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

// Classifier holds an ordered rule table.
type Classifier struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Classifier with the built-in rules.
func New(logger logging.Logger) *Classifier {
	return NewWithRules(logger, DefaultRules())
}

// NewWithRules creates a Classifier with an explicit rule table.
func NewWithRules(logger logging.Logger, rules []Rule) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{rules: rules, logger: logger}
}

// NewFromFile creates a Classifier from a YAML rules file. The file fully
// replaces the built-in table so that its order, and therefore its
// precedence, is exactly what the user wrote.
func NewFromFile(path string, logger logging.Logger) (*Classifier, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing categories file %s: %w", path, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("categories file %s defines no rules", path)
	}

	return NewWithRules(logger, file.Rules), nil
}

// Classify returns the category for a cleaned description, or
// models.CategoryOther when nothing matches.
func (c *Classifier) Classify(description string) string {
	lowered := strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lowered, strings.ToLower(keyword)) {
				c.logger.Debug("Matched category keyword",
					logging.Field{Key: logging.FieldCategory, Value: rule.Category},
					logging.Field{Key: "keyword", Value: keyword})
				return rule.Category
			}
		}
	}
	return models.CategoryOther
}
