// Package config provides configuration loading and validation for the
// analysis engine. Everything here encodes product policy (weights, lookup
// tables, thresholds) rather than algorithmic necessity, so it is loadable
// from a JSON file and validated once at startup.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// weightEpsilon is the tolerance when checking that a weight set sums to 1.0.
const weightEpsilon = 1e-9

// SectionWeights are the completeness-score weights per profile section.
// They must sum to 1.0.
type SectionWeights struct {
	BasicInfo  float64 `json:"basic_info"`
	About      float64 `json:"about"`
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
	Education  float64 `json:"education"`
}

// Sum returns the total of all section weights.
func (w SectionWeights) Sum() float64 {
	return w.BasicInfo + w.About + w.Experience + w.Skills + w.Education
}

// MatchWeights are the job-match factor weights. They must sum to 1.0.
type MatchWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Keywords   float64 `json:"keywords"`
	Education  float64 `json:"education"`
}

// Sum returns the total of all match factor weights.
func (w MatchWeights) Sum() float64 {
	return w.Skills + w.Experience + w.Keywords + w.Education
}

// QualityThresholds map a total writing-signal count to an ordinal label.
// A count below Fair is Poor; the bounds must be strictly increasing.
type QualityThresholds struct {
	Fair      int `json:"fair"`
	Good      int `json:"good"`
	Excellent int `json:"excellent"`
}

// Config is the full policy surface of the analysis engine, loaded once and
// injected into each scorer.
type Config struct {
	Sections SectionWeights    `json:"section_weights"`
	Match    MatchWeights      `json:"match_weights"`
	Quality  QualityThresholds `json:"quality_thresholds"`

	// ActionVerbs are matched case-insensitively as whole words.
	ActionVerbs []string `json:"action_verbs"`
	// StopWords are dropped during keyword extraction.
	StopWords []string `json:"stop_words"`
	// Synonyms maps a canonical skill to its alternate spellings. Resolution
	// is symmetric within one entry and never inferred across entries.
	Synonyms map[string][]string `json:"skill_synonyms"`
	// Categories maps a category name to its canonical member terms.
	Categories map[string][]string `json:"skill_categories"`
	// KnownSkills seed required-skill extraction from job descriptions.
	KnownSkills []string `json:"known_skills"`

	// MinKeywordLength is the shortest token kept during keyword extraction.
	MinKeywordLength int `json:"min_keyword_length"`
	// AboutTargetWords is the about-section length that earns a full sub-score.
	AboutTargetWords int `json:"about_target_words"`
	// SkillTarget is the skill count that earns a full skills sub-score.
	SkillTarget int `json:"skill_target"`
	// ExperienceTarget is the entry count that earns a full experience sub-score.
	ExperienceTarget int `json:"experience_target"`
	// DescriptionTargetWords is the per-entry description length that, over
	// ExperienceTarget entries, earns full description credit within the
	// experience sub-score.
	DescriptionTargetWords int `json:"description_target_words"`

	// RecencyHorizonYears is the age at which a past role's recency weight
	// reaches RecencyFloor. Current roles always weigh 1.0.
	RecencyHorizonYears float64 `json:"recency_horizon_years"`
	RecencyFloor        float64 `json:"recency_floor"`
	// EducationPartialCredit is granted when the profile has education but
	// none of it token-matches the job description.
	EducationPartialCredit float64 `json:"education_partial_credit"`
}

// Load reads a JSON config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants an inconsistent configuration would
// otherwise turn into silently meaningless scores. It is called once at load
// time, never per analysis.
func (c *Config) Validate() error {
	if math.Abs(c.Sections.Sum()-1.0) > weightEpsilon {
		return fmt.Errorf("config error: section weights sum to %.6f, want 1.0", c.Sections.Sum())
	}
	if math.Abs(c.Match.Sum()-1.0) > weightEpsilon {
		return fmt.Errorf("config error: match weights sum to %.6f, want 1.0", c.Match.Sum())
	}
	if len(c.ActionVerbs) == 0 {
		return fmt.Errorf("config error: action verb list is empty")
	}
	if len(c.StopWords) == 0 {
		return fmt.Errorf("config error: stop word list is empty")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("config error: skill category table is empty")
	}
	if len(c.KnownSkills) == 0 {
		return fmt.Errorf("config error: known skill table is empty")
	}
	if !(c.Quality.Fair > 0 && c.Quality.Good > c.Quality.Fair && c.Quality.Excellent > c.Quality.Good) {
		return fmt.Errorf("config error: quality thresholds must be strictly increasing, got %d/%d/%d",
			c.Quality.Fair, c.Quality.Good, c.Quality.Excellent)
	}
	if c.MinKeywordLength < 1 {
		return fmt.Errorf("config error: min_keyword_length must be positive")
	}
	if c.AboutTargetWords < 1 || c.SkillTarget < 1 || c.ExperienceTarget < 1 || c.DescriptionTargetWords < 1 {
		return fmt.Errorf("config error: section targets must be positive")
	}
	if c.RecencyHorizonYears <= 0 {
		return fmt.Errorf("config error: recency_horizon_years must be positive")
	}
	if c.RecencyFloor < 0 || c.RecencyFloor >= 1 {
		return fmt.Errorf("config error: recency_floor must be in [0,1), got %.2f", c.RecencyFloor)
	}
	if c.EducationPartialCredit <= 0 || c.EducationPartialCredit >= 1 {
		return fmt.Errorf("config error: education_partial_credit must be strictly between 0 and 1, got %.2f",
			c.EducationPartialCredit)
	}
	return nil
}
