// Package bankprofile holds the static parsing profiles for supported banks
// and the keyword heuristic that selects one from extracted statement text.
package bankprofile

import (
	"regexp"
	"strings"
)

// Profile is a named parsing configuration: the patterns and vocabularies the
// recognition engine applies to a statement. Profiles are immutable; they are
// selected per import, never mutated.
type Profile struct {
	Name        string
	DisplayName string

	// Keywords identify the bank in extracted text, checked case-insensitively.
	Keywords []string

	DatePattern        *regexp.Regexp
	AmountPattern      *regexp.Regexp
	DescriptionPattern *regexp.Regexp

	// HeaderVocab lists word sets that mark a tabular header line. A line
	// containing every word of any one set is treated as the header.
	HeaderVocab [][]string

	BalanceKeywords []string
}

// Shared patterns. The supported banks export largely compatible layouts, so
// profiles differ mainly in their identifying keywords; the recognition engine
// validates matches line by line either way, which keeps false positives cheap.
var (
	datePattern   = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2})\b`)
	amountPattern = regexp.MustCompile(`-?\b(?:\d{1,3}(?:,\d{2,3})+|\d+)(?:\.\d{1,2})?\b`)
	descPattern   = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9@./&-]*`)

	headerVocab = [][]string{
		{"date", "narration", "debit", "credit"},
		{"date", "description", "debit", "credit"},
		{"date", "particulars", "debit", "credit"},
		{"date", "narration", "amount"},
		{"date", "description", "amount"},
		{"date", "particulars", "amount"},
		{"date", "details", "amount"},
		{"date", "remarks", "amount"},
	}

	balanceKeywords = []string{"balance", "closing balance", "opening balance", "bal"}
)

func newProfile(name, displayName string, keywords ...string) *Profile {
	return &Profile{
		Name:               name,
		DisplayName:        displayName,
		Keywords:           keywords,
		DatePattern:        datePattern,
		AmountPattern:      amountPattern,
		DescriptionPattern: descPattern,
		HeaderVocab:        headerVocab,
		BalanceKeywords:    balanceKeywords,
	}
}

// Generic is the fallback profile used when no bank keyword matches.
var Generic = newProfile("generic", "")

// profiles is the fixed detection order. It is calibrated by expected
// statement frequency, not alphabetical; first match wins.
var profiles = []*Profile{
	newProfile("hdfc", "HDFC Bank", "hdfc"),
	newProfile("sbi", "State Bank of India", "state bank", "sbi"),
	newProfile("icici", "ICICI Bank", "icici"),
	newProfile("axis", "Axis Bank", "axis bank", "axis"),
	newProfile("kotak", "Kotak Mahindra Bank", "kotak"),
	newProfile("pnb", "Punjab National Bank", "punjab national", "pnb"),
	newProfile("bob", "Bank of Baroda", "bank of baroda", "baroda"),
	newProfile("canara", "Canara Bank", "canara"),
	newProfile("union", "Union Bank of India", "union bank"),
	newProfile("idbi", "IDBI Bank", "idbi"),
	newProfile("yes", "Yes Bank", "yes bank"),
	newProfile("indusind", "IndusInd Bank", "indusind"),
}

// Detect selects a parsing profile from extracted statement text. False
// negatives fall back safely to Generic; false positives are tolerated because
// the recognition engine validates every line against the profile anyway.
func Detect(text string) *Profile {
	lowered := strings.ToLower(text)
	for _, p := range profiles {
		for _, keyword := range p.Keywords {
			if strings.Contains(lowered, keyword) {
				return p
			}
		}
	}
	return Generic
}

// Lookup returns the profile with the given name, or nil if none exists.
// Generic is addressable by name as well.
func Lookup(name string) *Profile {
	if name == Generic.Name {
		return Generic
	}
	for _, p := range profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Names lists the supported profile names in detection order, ending with the
// generic fallback.
func Names() []string {
	out := make([]string, 0, len(profiles)+1)
	for _, p := range profiles {
		out = append(out, p.Name)
	}
	return append(out, Generic.Name)
}
