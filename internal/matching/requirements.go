package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/parsing"
)

var requiredYearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?\b`)

// Requirements is what the matcher extracts from a job description.
type Requirements struct {
	// Skills are required-skill names in table order, deduplicated.
	Skills []string
	// Keywords are the salient job-description tokens.
	Keywords []string
	// YearsExperience is the smallest "N+ years" figure found, 0 if none.
	YearsExperience int
}

// ExtractRequirements parses a job description into a structured requirement
// set using the configured known-skill table and stop words. It is purely
// lexical: no inference beyond the tables.
func ExtractRequirements(cfg *config.Config, jobDescription string) Requirements {
	var req Requirements
	if strings.TrimSpace(jobDescription) == "" {
		return req
	}

	for _, skill := range cfg.KnownSkills {
		if parsing.ContainsTerm(jobDescription, skill) {
			req.Skills = append(req.Skills, strings.ToLower(skill))
		}
	}

	req.Keywords = parsing.Tokenize(jobDescription, cfg.MinKeywordLength, parsing.StopWordSet(cfg.StopWords))

	for _, m := range requiredYearsRe.FindAllStringSubmatch(jobDescription, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if req.YearsExperience == 0 || years < req.YearsExperience {
			req.YearsExperience = years
		}
	}

	return req
}
