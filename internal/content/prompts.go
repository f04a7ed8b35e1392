package content

import (
	"fmt"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/types"
)

// maxGeneratedHeadlines is how many headline drafts one prompt asks for.
const maxGeneratedHeadlines = 5

// Prompt context is truncated so one oversized posting cannot blow up the
// request.
const (
	maxJobContextChars   = 300
	maxAboutContextChars = 500
)

func headlinePrompt(profile *types.Profile, jobDescription string) string {
	target := "General optimization"
	if t := truncate(jobDescription, maxJobContextChars); t != "" {
		target = t
	}

	return fmt.Sprintf(`Generate %d compelling professional headlines for this profile.

Current headline: %s
Top skills: %s
Target job: %s

Requirements:
- Maximum %d characters each
- Include relevant keywords
- Professional and engaging tone
- Vary the style

Return only the headlines, one per line.`,
		maxGeneratedHeadlines,
		profile.Headline,
		strings.Join(profile.Skills, ", "),
		target,
		maxHeadlineLength)
}

func aboutPrompt(profile *types.Profile, analysis *types.Analysis, jobDescription string) string {
	target := "Career advancement"
	if t := truncate(jobDescription, maxJobContextChars); t != "" {
		target = t
	}

	return fmt.Sprintf(`Write a compelling professional about section.

Current about: %s
Strengths: %s
Target role: %s

Requirements:
- 150-300 words
- Professional yet personable tone
- Include quantified achievements
- Strong opening hook and a closing call to action

Write the complete about section.`,
		truncate(profile.About, maxAboutContextChars),
		strings.Join(analysis.Strengths, ", "),
		target)
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max]
}
