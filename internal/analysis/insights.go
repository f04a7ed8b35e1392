package analysis

import (
	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// Fixed rule thresholds for the insight generators. Each insight string is
// produced by exactly one rule, and rules run in a fixed order, so the output
// sequences are deterministic.
const (
	strongExperienceCount = 3
	comprehensiveSkills   = 10
	detailedAboutChars    = 200
	minimumAboutChars     = 100
	limitedSkillsCount    = 5
)

// Strengths lists what the profile already does well.
func Strengths(p *types.Profile, quality types.ContentQuality, cfg *config.Config) []string {
	strengths := []string{}

	if len(p.Experience) >= strongExperienceCount {
		strengths = append(strengths, "Good work experience history")
	}
	if len(p.Skills) >= comprehensiveSkills {
		strengths = append(strengths, "Comprehensive skills list")
	}
	if len(p.About) > detailedAboutChars {
		strengths = append(strengths, "Detailed about section")
	}
	if quality.ActionWordCount+quality.QuantifiedResultCount >= cfg.Quality.Good {
		strengths = append(strengths, "Strong action-oriented writing with measurable results")
	}
	if hasCurrentRole(p) {
		strengths = append(strengths, "Currently employed with an active role listed")
	}

	return strengths
}

// Weaknesses lists improvement areas, in rule order.
func Weaknesses(p *types.Profile, quality types.ContentQuality) []string {
	weaknesses := []string{}

	if len(p.About) < minimumAboutChars {
		weaknesses = append(weaknesses, "About section needs improvement")
	}
	if len(p.Skills) < limitedSkillsCount {
		weaknesses = append(weaknesses, "Limited skills listed")
	}
	if quality.QuantifiedResultCount == 0 {
		weaknesses = append(weaknesses, "Lacks quantified achievements")
	}
	if len(p.Experience) == 0 {
		weaknesses = append(weaknesses, "No work experience listed")
	}

	return weaknesses
}

// Recommendations maps each weakness to a concrete suggestion; when a job
// match was computed, missing required skills produce one more.
func Recommendations(weaknesses []string, match *types.MatchResult) []string {
	recommendations := []string{}

	for _, weakness := range weaknesses {
		switch weakness {
		case "About section needs improvement":
			recommendations = append(recommendations,
				"Add a compelling about section with 150-300 words describing your expertise")
		case "Limited skills listed":
			recommendations = append(recommendations,
				"Add more relevant skills to reach at least 10 skills")
		case "Lacks quantified achievements":
			recommendations = append(recommendations,
				"Include specific numbers and metrics in your descriptions")
		case "No work experience listed":
			recommendations = append(recommendations,
				"Add your work history with titles, dates, and short impact descriptions")
		}
	}

	if match != nil && len(match.MissingSkills) > 0 {
		recommendations = append(recommendations,
			"Develop or surface these skills the job asks for: "+joinSkills(match.MissingSkills))
	}

	return recommendations
}

func hasCurrentRole(p *types.Profile) bool {
	for _, exp := range p.Experience {
		if exp.Dates.IsCurrent {
			return true
		}
	}
	return false
}

func joinSkills(skills []string) string {
	const maxListed = 3
	out := ""
	for i, s := range skills {
		if i == maxListed {
			break
		}
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
