package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// quantifiedRe matches quantified-result mentions: currency amounts, and
// numbers with an optional %, multiplier, or magnitude suffix. "30%", "$2M",
// "3x", "5 times", "200k" all count.
var quantifiedRe = regexp.MustCompile(`(?i)[$€£]\s?\d[\d.,]*[kmb]?|\b\d[\d.,]*\s?(?:%|percent|x\b|times\b|[km]\b)?`)

// AssessQuality scans the about section and every experience description for
// professional-writing signals and maps the total into an ordinal label via
// the configured thresholds.
func AssessQuality(cfg *config.Config, p *types.Profile) types.ContentQuality {
	sections := make([]string, 0, 1+len(p.Experience))
	if p.About != "" {
		sections = append(sections, p.About)
	}
	for _, exp := range p.Experience {
		if exp.Description != "" {
			sections = append(sections, exp.Description)
		}
	}

	verbRe := actionVerbPattern(cfg.ActionVerbs)
	quality := types.ContentQuality{}
	for _, text := range sections {
		quality.ActionWordCount += len(verbRe.FindAllString(text, -1))
		quality.QuantifiedResultCount += len(quantifiedRe.FindAllString(text, -1))
	}

	quality.Label = qualityLabel(cfg.Quality, quality.ActionWordCount+quality.QuantifiedResultCount)
	return quality
}

// actionVerbPattern builds a case-insensitive whole-word alternation over the
// configured action verbs.
func actionVerbPattern(verbs []string) *regexp.Regexp {
	escaped := make([]string, len(verbs))
	for i, v := range verbs {
		escaped[i] = regexp.QuoteMeta(strings.ToLower(v))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// qualityLabel maps a total signal count onto the ordinal scale.
func qualityLabel(t config.QualityThresholds, total int) types.QualityLabel {
	switch {
	case total >= t.Excellent:
		return types.QualityExcellent
	case total >= t.Good:
		return types.QualityGood
	case total >= t.Fair:
		return types.QualityFair
	default:
		return types.QualityPoor
	}
}
