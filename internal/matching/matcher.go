package matching

import (
	"strings"
	"time"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/parsing"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// Blend weights inside the experience factor when the job names a required
// number of years.
const (
	experienceYearsWeight     = 0.7
	experienceRelevanceWeight = 0.3
)

// neutralRecency is used when an entry carries no parseable dates.
const neutralRecency = 0.5

// maxRelevantKeywords caps how many extracted keywords are checked per role
// when judging experience relevance.
const maxRelevantKeywords = 10

// Matcher computes weighted job-match scores. The reference year is fixed at
// construction so repeated calls with identical inputs score identically.
type Matcher struct {
	cfg      *config.Config
	synonyms *SynonymTable
	refYear  int
}

// New creates a Matcher with the current year as recency reference.
func New(cfg *config.Config) *Matcher {
	return NewAt(cfg, time.Now().Year())
}

// NewAt creates a Matcher with a fixed recency reference year.
func NewAt(cfg *config.Config, refYear int) *Matcher {
	return &Matcher{
		cfg:      cfg,
		synonyms: NewSynonymTable(cfg.Synonyms),
		refYear:  refYear,
	}
}

// Synonyms exposes the matcher's synonym table for keyword coverage checks.
func (m *Matcher) Synonyms() *SynonymTable {
	return m.synonyms
}

// Match scores the profile against a job description. The keyword analysis
// must be the one computed for the same job description; its coverage ratio
// becomes the keyword factor. An empty job description means "no matching
// requested" and returns nil rather than a zero score.
func (m *Matcher) Match(profile *types.Profile, jobDescription string, keywords types.KeywordAnalysis) *types.MatchResult {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	req := ExtractRequirements(m.cfg, jobDescription)

	skillsFactor, matched, missing := m.skillsFactor(profile.Skills, req.Skills)
	result := &types.MatchResult{
		SkillsFactor:     skillsFactor,
		ExperienceFactor: m.experienceFactor(profile.Experience, req),
		KeywordFactor:    keywordFactor(keywords),
		EducationFactor:  m.educationFactor(profile.Education, req.Keywords),
		RequiredSkills:   req.Skills,
		MatchedSkills:    matched,
		MissingSkills:    missing,
	}

	score := 100 * (m.cfg.Match.Skills*result.SkillsFactor +
		m.cfg.Match.Experience*result.ExperienceFactor +
		m.cfg.Match.Keywords*result.KeywordFactor +
		m.cfg.Match.Education*result.EducationFactor)
	result.Score = clamp(score, 0, 100)

	return result
}

// skillsFactor computes the fraction of required skills covered by the
// profile, counting synonym-linked skills as matches. With no extractable
// requirements the factor is 1.0: nothing required is trivially satisfied.
func (m *Matcher) skillsFactor(profileSkills, requiredSkills []string) (float64, []string, []string) {
	if len(requiredSkills) == 0 {
		return 1.0, nil, nil
	}

	var matched, missing []string
	for _, required := range requiredSkills {
		found := false
		for _, have := range profileSkills {
			if m.synonyms.Match(have, required) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}

	return float64(len(matched)) / float64(len(requiredSkills)), matched, missing
}

// experienceFactor judges how relevant the profile's experience is to the
// job. Each role contributes a keyword-overlap relevance weighted by recency,
// so an otherwise-equal current role always outweighs an older one. When the
// job names a required number of years, the factor blends the accumulated
// years against that requirement.
func (m *Matcher) experienceFactor(experience []types.Experience, req Requirements) float64 {
	if len(experience) == 0 {
		return 0
	}

	keywords := req.Keywords
	if len(keywords) > maxRelevantKeywords {
		keywords = keywords[:maxRelevantKeywords]
	}

	weightSum := 0.0
	relevanceSum := 0.0
	for _, exp := range experience {
		weight := m.recencyWeight(exp.Dates)
		weightSum += weight
		relevanceSum += weight * roleRelevance(exp, keywords)
	}
	relevance := 1.0 // no keywords extracted: trivially relevant
	if weightSum > 0 && len(keywords) > 0 {
		relevance = relevanceSum / weightSum
	}

	if req.YearsExperience == 0 {
		return clamp(relevance, 0, 1)
	}

	yearsFactor := clamp(m.totalYears(experience)/float64(req.YearsExperience), 0, 1)
	return clamp(experienceYearsWeight*yearsFactor+experienceRelevanceWeight*relevance, 0, 1)
}

// roleRelevance reports whether a role's title or description overlaps the
// job's salient keywords.
func roleRelevance(exp types.Experience, keywords []string) float64 {
	if len(keywords) == 0 {
		return 1.0
	}
	roleText := exp.Title + " " + exp.Description
	for _, kw := range keywords {
		if parsing.ContainsTerm(roleText, kw) {
			return 1.0
		}
	}
	return 0.0
}

// recencyWeight maps an entry's dates to [RecencyFloor, 1]. Current roles
// always weigh 1.0; past roles decay linearly with years since they ended;
// entries with no parseable dates get a neutral weight.
func (m *Matcher) recencyWeight(d types.DateRange) float64 {
	if d.IsCurrent {
		return 1.0
	}
	endYear := d.EndYear
	if endYear == 0 {
		endYear = d.StartYear
	}
	if endYear == 0 {
		return neutralRecency
	}

	yearsSince := float64(m.refYear - endYear)
	if yearsSince <= 0 {
		return 1.0
	}
	weight := 1.0 - yearsSince/m.cfg.RecencyHorizonYears
	return clamp(weight, m.cfg.RecencyFloor, 1.0)
}

// totalYears estimates accumulated years of experience from parsed dates.
// Entries with a start but no end (and not current) count as one year.
func (m *Matcher) totalYears(experience []types.Experience) float64 {
	total := 0.0
	for _, exp := range experience {
		d := exp.Dates
		if d.StartYear == 0 {
			continue
		}
		endYear := d.EndYear
		if d.IsCurrent {
			endYear = m.refYear
		}
		if endYear < d.StartYear {
			total++
			continue
		}
		years := float64(endYear - d.StartYear)
		if years == 0 {
			years = 0.5 // same-year role: count half a year
		}
		total += years
	}
	return total
}

// keywordFactor is the coverage ratio from the keyword analysis. A job
// description that yields zero keywords is treated as trivially satisfied
// (factor 1.0), a documented policy choice rather than an accidental edge.
func keywordFactor(kw types.KeywordAnalysis) float64 {
	total := len(kw.Found) + len(kw.Missing)
	if total == 0 {
		return 1.0
	}
	return float64(len(kw.Found)) / float64(total)
}

// educationFactor gives full credit when any degree or field token-matches
// the job description, partial credit for having education at all, and zero
// when the profile lists none.
func (m *Matcher) educationFactor(education []types.Education, jobKeywords []string) float64 {
	if len(education) == 0 {
		return 0
	}
	for _, edu := range education {
		eduText := edu.Degree + " " + edu.Field
		for _, kw := range jobKeywords {
			if parsing.ContainsTerm(eduText, kw) {
				return 1.0
			}
		}
	}
	return m.cfg.EducationPartialCredit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
