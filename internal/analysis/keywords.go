// Package analysis implements the deterministic scoring engine: profile
// completeness, content quality, keyword coverage, skill categorization, and
// rule-based insights. All scorers are pure functions of the normalized
// profile and the injected configuration.
package analysis

import (
	"strings"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/matching"
	"github.com/jonathan/profile-analyzer/internal/parsing"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// ExtractKeywords derives the candidate keyword set from a job description:
// lowercase tokens with stop words and short tokens removed, first-seen order
// preserved.
func ExtractKeywords(cfg *config.Config, jobDescription string) []string {
	return parsing.Tokenize(jobDescription, cfg.MinKeywordLength, parsing.StopWordSet(cfg.StopWords))
}

// AnalyzeKeywords partitions the extracted keywords into those the profile
// covers and those it misses. A keyword counts as found when it, or a
// registered synonym, appears in the skills, headline, about, or any
// experience title/description. Found and Missing always partition the full
// extracted set; an empty job description yields two empty sets.
func AnalyzeKeywords(cfg *config.Config, synonyms *matching.SynonymTable, profile *types.Profile, jobDescription string) types.KeywordAnalysis {
	kw := types.KeywordAnalysis{Found: []string{}, Missing: []string{}}
	if strings.TrimSpace(jobDescription) == "" {
		return kw
	}

	profileText := profile.AllText()
	for _, keyword := range ExtractKeywords(cfg, jobDescription) {
		if synonyms.AppearsIn(profileText, keyword) {
			kw.Found = append(kw.Found, keyword)
		} else {
			kw.Missing = append(kw.Missing, keyword)
		}
	}
	return kw
}
