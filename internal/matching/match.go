// Package matching decides which job-required skills are present in resume
// text using boundary-respecting lexical matching.
package matching

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/textnorm"
)

// Match returns the subset of jobSkills present in the normalized resume
// text, in job-list order. Matching is whole-word: the normalized skill
// phrase must appear bounded by token boundaries, so "go" never matches
// inside "google" and "java" never matches inside "javascript". Duplicate
// entries in jobSkills are reported at most once. An empty result is a valid
// outcome, not an error.
func Match(resume textnorm.NormalizedText, jobSkills []string) []string {
	matched := make([]string, 0, len(jobSkills))
	seen := make(map[string]struct{}, len(jobSkills))

	for _, skill := range jobSkills {
		phrase := textnorm.NormalizeSkill(skill)
		if phrase == "" {
			continue
		}
		if _, dup := seen[phrase]; dup {
			continue
		}
		seen[phrase] = struct{}{}

		if containsSkill(resume.Text, phrase) {
			matched = append(matched, skill)
		}
	}
	return matched
}

// containsSkill checks the phrase and, for multi-word phrases, its hyphenated
// spelling ("machine learning" also matches the token "machine-learning").
func containsSkill(text, phrase string) bool {
	if ContainsPhrase(text, phrase) {
		return true
	}
	if strings.Contains(phrase, " ") {
		return ContainsPhrase(text, strings.ReplaceAll(phrase, " ", "-"))
	}
	if strings.Contains(phrase, "-") {
		return ContainsPhrase(text, strings.ReplaceAll(phrase, "-", " "))
	}
	return false
}

// ContainsPhrase reports whether phrase occurs in text bounded by spaces or
// string edges. Both arguments must already be normalized; normalized text
// joins tokens with single spaces, so space boundaries are token boundaries.
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(phrase)
		leftOK := idx == 0 || text[idx-1] == ' '
		rightOK := end == len(text) || text[end] == ' '
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}
