// Package fields applies pattern-based heuristics to locate contact fields
// in resume text. Each field has its own strategy; strategies never fail,
// they only decline, and one field's absence never blocks the others.
package fields

import (
	"regexp"
	"strings"
)

// Field names used by the strategies.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCollege = "college"
)

// collegeMaxLen bounds the returned college line to a displayable length.
const collegeMaxLen = 120

// Strategy is the uniform capability for one field heuristic, so alternative
// heuristics can be swapped without touching the score aggregator.
type Strategy interface {
	Field() string
	Extract(text string) (string, bool)
}

// Fields holds the best-effort contact fields pulled from one resume.
// Empty string means the field was not found.
type Fields struct {
	Name    string
	Email   string
	Phone   string
	College string
}

// DefaultStrategies returns the standard strategy set, one per field.
func DefaultStrategies() []Strategy {
	return []Strategy{
		nameStrategy{},
		emailStrategy{},
		phoneStrategy{},
		collegeStrategy{},
	}
}

// ExtractAll runs every default strategy over the raw text.
func ExtractAll(text string) Fields {
	return Apply(text, DefaultStrategies())
}

// Apply runs the given strategies and collects their results by field name.
func Apply(text string, strategies []Strategy) Fields {
	var f Fields
	for _, s := range strategies {
		value, ok := s.Extract(text)
		if !ok {
			continue
		}
		switch s.Field() {
		case FieldName:
			f.Name = value
		case FieldEmail:
			f.Email = value
		case FieldPhone:
			f.Phone = value
		case FieldCollege:
			f.College = value
		}
	}
	return f
}

// --- email ---

var emailRe = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9._-]*@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}`)

type emailStrategy struct{}

func (emailStrategy) Field() string { return FieldEmail }

// Extract returns the first substring matching a user@domain pattern in
// document order.
func (emailStrategy) Extract(text string) (string, bool) {
	m := emailRe.FindString(text)
	return m, m != ""
}

// --- phone ---

// phoneRe matches an optional leading '+' and digits with at most two
// consecutive separator characters between them. Greedy leftmost matching
// means a candidate always consumes its entire digit run, so fragments of
// longer numeric runs (IDs, card numbers) are never matched: the whole run
// is found, fails the 7-15 digit count, and is skipped.
var phoneRe = regexp.MustCompile(`\+?[0-9](?:[ \-()]{0,2}[0-9])*`)

type phoneStrategy struct{}

func (phoneStrategy) Field() string { return FieldPhone }

func (phoneStrategy) Extract(text string) (string, bool) {
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 && digits <= 15 {
			return strings.TrimSpace(candidate), true
		}
	}
	return "", false
}

// --- college ---

var collegeKeywords = []string{"university", "college", "institute", "school of"}

type collegeStrategy struct{}

func (collegeStrategy) Field() string { return FieldCollege }

// Extract returns the first line containing an education keyword, trimmed
// and truncated to a display length.
func (collegeStrategy) Extract(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, kw := range collegeKeywords {
			if strings.Contains(lower, kw) {
				if len(trimmed) > collegeMaxLen {
					trimmed = strings.TrimSpace(trimmed[:collegeMaxLen])
				}
				return trimmed, true
			}
		}
	}
	return "", false
}

// --- name ---

// nameStopWords are terms that disqualify the first line from being a name.
var nameStopWords = []string{
	"university", "college", "institute", "school",
	"resume", "cv", "curriculum", "vitae",
	"email", "phone", "tel", "contact", "address", "www", "@",
}

type nameStrategy struct{}

func (nameStrategy) Field() string { return FieldName }

// Extract treats the document's first non-empty line as the candidate name
// when it has no digits, no education or contact keywords, and one to five
// words.
func (nameStrategy) Extract(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.ContainsAny(trimmed, "0123456789") {
			return "", false
		}
		lower := strings.ToLower(trimmed)
		for _, kw := range nameStopWords {
			if strings.Contains(lower, kw) {
				return "", false
			}
		}
		words := strings.Fields(trimmed)
		if len(words) >= 1 && len(words) <= 5 {
			return trimmed, true
		}
		return "", false
	}
	return "", false
}
