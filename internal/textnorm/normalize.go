// Package textnorm tokenizes and canonicalizes text so resume content and
// job-role definitions compare on equal footing.
package textnorm

import (
	"strings"
	"unicode"
)

// aliases maps common skill spelling variants to one canonical form. The map
// is deliberately conservative: spelling variants only, never abbreviations
// that could collide with ordinary prose (e.g. "ml" is not an alias for
// "machine learning").
var aliases = map[string]string{
	"golang":     "go",
	"go-lang":    "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"node.js":    "nodejs",
	"node-js":    "nodejs",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"postgres":   "postgresql",
	"ci-cd":      "ci/cd",
	"restful":    "rest",
	"mongo":      "mongodb",
	"tf":         "terraform",
	"py":         "python",
	"golanglang": "go",
}

// NormalizedText is the canonical form of a piece of text: a lowercase string
// with all token runs joined by single spaces, plus the token sequence itself.
// Because Text is exactly the tokens joined by spaces, whole-word substring
// matching on Text respects token boundaries.
type NormalizedText struct {
	Text   string
	Tokens []string
}

func (n NormalizedText) String() string { return n.Text }

// IsEmpty reports whether no tokens survived normalization.
func (n NormalizedText) IsEmpty() bool { return len(n.Tokens) == 0 }

// Normalize lowercases text, splits it on whitespace and punctuation, and
// resolves spelling aliases. Hyphens and dots internal to a token are kept
// ("machine-learning" and "node.js" stay single tokens), as are trailing
// '+' and '#' ("c++", "c#"). Total: never fails, including on empty input.
func Normalize(text string) NormalizedText {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	for i, tok := range tokens {
		if canonical, ok := aliases[tok]; ok {
			tokens[i] = canonical
		}
	}

	return NormalizedText{
		Text:   strings.Join(tokens, " "),
		Tokens: tokens,
	}
}

// NormalizeSkill canonicalizes a job skill phrase the same way resume text is
// normalized, so phrase presence can be tested by substring search.
func NormalizeSkill(skill string) string {
	return Normalize(skill).Text
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenize splits on anything that is not a letter or digit, except that '-'
// and '.' between two token runes stay inside the token and '+' / '#'
// directly after a token rune extend it.
func tokenize(s string) []string {
	runes := []rune(s)
	var tokens []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		switch {
		case isTokenRune(r):
			cur = append(cur, r)
		case (r == '-' || r == '.') && len(cur) > 0 && i+1 < len(runes) && isTokenRune(runes[i+1]):
			cur = append(cur, r)
		case (r == '+' || r == '#') && len(cur) > 0:
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}
