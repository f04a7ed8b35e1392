package types

// QualityLabel is an ordinal rating of professional-writing quality.
type QualityLabel string

// Quality labels, ordered from weakest to strongest signal.
const (
	QualityPoor      QualityLabel = "Poor"
	QualityFair      QualityLabel = "Fair"
	QualityGood      QualityLabel = "Good"
	QualityExcellent QualityLabel = "Excellent"
)

// OtherCategory is the reserved skill category for skills that match no
// configured category table. No input skill is ever dropped.
const OtherCategory = "other"

// ContentQuality holds professional-writing signals aggregated across the
// about section and all experience descriptions.
type ContentQuality struct {
	ActionWordCount       int          `json:"action_word_count"`
	QuantifiedResultCount int          `json:"quantified_result_count"`
	Label                 QualityLabel `json:"quality_label"`
}

// KeywordAnalysis partitions the keywords extracted from a job description
// into those covered by the profile and those missing from it.
// Found and Missing are disjoint and together cover the full extracted set.
type KeywordAnalysis struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// MatchResult is the weighted job-match score with its factor breakdown.
// All factors are in [0,1]; Score is in [0,100].
type MatchResult struct {
	Score            float64 `json:"score"`
	SkillsFactor     float64 `json:"skills_factor"`
	ExperienceFactor float64 `json:"experience_factor"`
	KeywordFactor    float64 `json:"keyword_factor"`
	EducationFactor  float64 `json:"education_factor"`

	RequiredSkills []string `json:"required_skills,omitempty"`
	MatchedSkills  []string `json:"matched_skills,omitempty"`
	MissingSkills  []string `json:"missing_skills,omitempty"`
}

// Analysis is the full result of analyzing one profile, constructed fresh per
// invocation. JobMatch is nil when no job description was supplied, which is
// distinct from an evaluated score of zero.
type Analysis struct {
	CompletenessScore float64         `json:"completeness_score"`
	JobMatch          *MatchResult    `json:"job_match,omitempty"`
	ContentQuality    ContentQuality  `json:"content_quality"`
	Keywords          KeywordAnalysis `json:"keyword_analysis"`

	// SkillCategories maps category name to the input skills matched into it.
	// A skill may appear under several categories; unmatched skills are kept
	// under OtherCategory.
	SkillCategories map[string][]string `json:"skill_categories"`

	// Rule-generated, in rule evaluation order.
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}
