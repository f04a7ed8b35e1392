package analysis

import (
	"strings"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// Weights inside the experience sub-score: how many roles are listed versus
// how detailed their descriptions are.
const (
	experienceCountWeight  = 0.7
	experienceDetailWeight = 0.3
)

// Completeness computes the weighted 0-100 completeness score. Each section
// sub-score is in [0,1]; adding non-empty content to any section never
// decreases the total.
func Completeness(cfg *config.Config, p *types.Profile) float64 {
	score := cfg.Sections.BasicInfo*basicInfoScore(p) +
		cfg.Sections.About*aboutScore(cfg, p.About) +
		cfg.Sections.Experience*experienceScore(cfg, p.Experience) +
		cfg.Sections.Skills*skillsScore(cfg, p.Skills) +
		cfg.Sections.Education*educationScore(p.Education)
	return 100 * score
}

// basicInfoScore is the fraction of {name, headline, location} present.
func basicInfoScore(p *types.Profile) float64 {
	present := 0
	if p.Name != "" {
		present++
	}
	if p.Headline != "" {
		present++
	}
	if p.Location != "" {
		present++
	}
	return float64(present) / 3.0
}

// aboutScore scales linearly with word count up to the configured target.
func aboutScore(cfg *config.Config, about string) float64 {
	if about == "" {
		return 0
	}
	words := len(strings.Fields(about))
	score := float64(words) / float64(cfg.AboutTargetWords)
	if score > 1.0 {
		return 1.0
	}
	return score
}

// experienceScore blends entry count against the configured target with how
// much description text the history carries in total. Both components only
// grow as entries or words are added, keeping the section monotonic.
func experienceScore(cfg *config.Config, experience []types.Experience) float64 {
	if len(experience) == 0 {
		return 0
	}

	countScore := float64(len(experience)) / float64(cfg.ExperienceTarget)
	if countScore > 1.0 {
		countScore = 1.0
	}

	totalWords := 0
	for _, exp := range experience {
		totalWords += len(strings.Fields(exp.Description))
	}
	detailTarget := float64(cfg.ExperienceTarget * cfg.DescriptionTargetWords)
	detailScore := float64(totalWords) / detailTarget
	if detailScore > 1.0 {
		detailScore = 1.0
	}

	return experienceCountWeight*countScore + experienceDetailWeight*detailScore
}

func skillsScore(cfg *config.Config, skills []string) float64 {
	score := float64(len(skills)) / float64(cfg.SkillTarget)
	if score > 1.0 {
		return 1.0
	}
	return score
}

func educationScore(education []types.Education) float64 {
	if len(education) > 0 {
		return 1.0
	}
	return 0
}
