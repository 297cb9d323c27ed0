// Package scoring combines skill coverage, keyword density, and profile
// completeness into the final 1-100 relevance score.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/textnorm"
	"github.com/jonathan/resume-screener/internal/types"
)

// Default weights. These are a policy choice, not a derived constant: skill
// coverage dominates, keyword density and profile completeness temper it.
const (
	defaultSkillWeight        = 0.60
	defaultKeywordWeight      = 0.25
	defaultCompletenessWeight = 0.15
)

// significantWordMinLen is the minimum length for a description/requirements
// word to count toward keyword density.
const significantWordMinLen = 4

// profileFieldCount is the number of contact fields completeness is measured
// against (name, email, phone, college).
const profileFieldCount = 4

// Weights is the scoring policy. The three weights must be non-negative and
// sum to 1.0.
type Weights struct {
	Skill        float64 `json:"skill_weight"`
	Keyword      float64 `json:"keyword_weight"`
	Completeness float64 `json:"completeness_weight"`
}

// DefaultWeights returns the documented default policy (0.60/0.25/0.15).
func DefaultWeights() Weights {
	return Weights{
		Skill:        defaultSkillWeight,
		Keyword:      defaultKeywordWeight,
		Completeness: defaultCompletenessWeight,
	}
}

// Validate checks the policy invariants.
func (w Weights) Validate() error {
	if w.Skill < 0 || w.Keyword < 0 || w.Completeness < 0 {
		return fmt.Errorf("score weights must be non-negative, got %+v", w)
	}
	sum := w.Skill + w.Keyword + w.Completeness
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("score weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// Breakdown exposes the three normalized signals behind a score, for audit.
type Breakdown struct {
	SkillCoverage  float64 `json:"skill_coverage"`
	KeywordDensity float64 `json:"keyword_density"`
	Completeness   float64 `json:"completeness"`
}

// Outcome is the result of scoring one extracted profile against one job.
type Outcome struct {
	Score         int       `json:"score"`
	MatchedSkills []string  `json:"matched_skills"`
	ResumeSkills  []string  `json:"resume_skills"`
	Breakdown     Breakdown `json:"breakdown"`
}

// Score computes the relevance of an extracted profile against a job role.
// Deterministic, monotonic in each signal, and always in [1,100]: the floor
// of 1 distinguishes "scored but unmatched" from "not processed".
func Score(profile *types.ExtractedProfile, job *types.JobRole, weights Weights) Outcome {
	resume := textnorm.Normalize(profile.RawText)

	matched := matching.Match(resume, job.Skills)
	coverage := skillCoverage(matched, job.Skills)
	density := keywordDensity(resume, job.Description+" "+job.Requirements)
	completeness := float64(profile.CompletedFields()) / profileFieldCount

	weighted := coverage*weights.Skill + density*weights.Keyword + completeness*weights.Completeness
	score := int(math.Round(1 + 99*weighted))
	if score < 1 {
		score = 1
	}
	if score > 100 {
		score = 100
	}

	return Outcome{
		Score:         score,
		MatchedSkills: matched,
		ResumeSkills:  resumeSkills(resume, matched),
		Breakdown: Breakdown{
			SkillCoverage:  coverage,
			KeywordDensity: density,
			Completeness:   completeness,
		},
	}
}

// skillCoverage is |matched| over the number of distinct job skills.
// Duplicates in the job's skill list are counted once in the denominator,
// mirroring the set semantics of the matcher.
func skillCoverage(matched, jobSkills []string) float64 {
	distinct := make(map[string]struct{}, len(jobSkills))
	for _, s := range jobSkills {
		if phrase := textnorm.NormalizeSkill(s); phrase != "" {
			distinct[phrase] = struct{}{}
		}
	}
	if len(distinct) == 0 {
		return 0
	}
	return float64(len(matched)) / float64(len(distinct))
}

// keywordDensity is the fraction of distinct significant words from the job
// text that also appear in the resume.
func keywordDensity(resume textnorm.NormalizedText, jobText string) float64 {
	jobWords := significantWords(textnorm.Normalize(jobText))
	if len(jobWords) == 0 {
		return 0
	}

	resumeSet := make(map[string]struct{}, len(resume.Tokens))
	for _, tok := range resume.Tokens {
		resumeSet[tok] = struct{}{}
	}

	hits := 0
	for word := range jobWords {
		if _, ok := resumeSet[word]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(jobWords))
}

// significantWords collects the distinct tokens long enough to carry signal,
// minus stopwords.
func significantWords(text textnorm.NormalizedText) map[string]struct{} {
	words := make(map[string]struct{})
	for _, tok := range text.Tokens {
		if len(tok) < significantWordMinLen {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		words[tok] = struct{}{}
	}
	return words
}

// resumeSkills is the full catalog-derived skill list, unioned with matched
// job skills so MatchedSkills stays a subset of Skills even when a job lists
// a skill the catalog does not know.
func resumeSkills(resume textnorm.NormalizedText, matched []string) []string {
	skills := matching.FoundSkills(resume)

	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		seen[textnorm.NormalizeSkill(s)] = struct{}{}
	}
	for _, s := range matched {
		key := textnorm.NormalizeSkill(s)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			skills = append(skills, s)
		}
	}
	return skills
}
