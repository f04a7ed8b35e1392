// Package content turns an analysis into concrete profile improvement
// suggestions. The rule-based suggestions are deterministic; when an LLM
// client is supplied, generated headline and about drafts are added on top.
package content

import (
	"context"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/llm"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// Headline length bounds used by the headline rules.
const (
	minHeadlineLength = 50
	maxHeadlineLength = 120
)

// minAboutLength is the about-section length below which expansion is
// suggested.
const minAboutLength = 100

// completeProfileScore is the completeness score below which finishing the
// profile is suggested.
const completeProfileScore = 80.0

// maxSuggestedSkills caps how many missing keywords one suggestion lists.
const maxSuggestedSkills = 5

// Suggestions groups improvement advice by profile section.
type Suggestions struct {
	Headline   []string `json:"headline"`
	About      []string `json:"about"`
	Experience []string `json:"experience"`
	Skills     []string `json:"skills"`
	Keywords   []string `json:"keywords"`
	Overall    []string `json:"overall"`

	// Generated is present only when an LLM client was configured.
	Generated *GeneratedContent `json:"generated,omitempty"`
}

// GeneratedContent holds model-drafted replacement text.
type GeneratedContent struct {
	Headlines []string `json:"headlines,omitempty"`
	About     string   `json:"about,omitempty"`
}

// Agent produces suggestions from analysis results.
type Agent struct {
	client llm.Client
}

// New creates an Agent. A nil client disables generated drafts; the
// rule-based suggestions still work.
func New(client llm.Client) *Agent {
	return &Agent{client: client}
}

// Suggest builds section-by-section advice from the profile and its analysis.
// Draft generation failures degrade to rule-based output only; they never
// fail the whole call.
func (a *Agent) Suggest(ctx context.Context, profile *types.Profile, analysis *types.Analysis, jobDescription string) *Suggestions {
	s := &Suggestions{
		Headline:   headlineSuggestions(profile),
		About:      aboutSuggestions(profile, analysis.ContentQuality),
		Experience: experienceSuggestions(),
		Skills:     skillsSuggestions(analysis.Keywords, jobDescription),
		Keywords:   keywordSuggestions(analysis.Keywords),
		Overall:    overallSuggestions(analysis.CompletenessScore),
	}

	if a.client != nil {
		s.Generated = a.generate(ctx, profile, analysis, jobDescription)
	}

	return s
}

func headlineSuggestions(profile *types.Profile) []string {
	suggestions := []string{}

	switch length := len(profile.Headline); {
	case length < minHeadlineLength:
		suggestions = append(suggestions, "Expand your headline to include more keywords and value proposition")
	case length > maxHeadlineLength:
		suggestions = append(suggestions, "Shorten your headline to be more concise and impactful")
	}

	return append(suggestions,
		"Include specific technologies or skills you specialize in",
		"Mention your years of experience or seniority level",
		"Use action-oriented language to show what you do",
	)
}

func aboutSuggestions(profile *types.Profile, quality types.ContentQuality) []string {
	suggestions := []string{}

	if len(profile.About) < minAboutLength {
		suggestions = append(suggestions, "Expand your about section to at least 2-3 paragraphs")
	}
	if quality.QuantifiedResultCount == 0 {
		suggestions = append(suggestions, "Add quantified achievements (e.g., 'Increased sales by 30%')")
	}
	if quality.ActionWordCount == 0 {
		suggestions = append(suggestions, "Use more action verbs to describe your accomplishments")
	}

	return append(suggestions,
		"Start with a compelling hook that grabs attention",
		"Mention specific technologies, tools, or methodologies you use",
		"End with a call-to-action for potential connections",
	)
}

func experienceSuggestions() []string {
	return []string{
		"Use bullet points to highlight key achievements in each role",
		"Start each bullet point with an action verb",
		"Include metrics and numbers to quantify your impact",
		"Focus on results rather than just responsibilities",
	}
}

func skillsSuggestions(keywords types.KeywordAnalysis, jobDescription string) []string {
	suggestions := []string{}

	if len(keywords.Missing) > 0 && strings.TrimSpace(jobDescription) != "" {
		listed := keywords.Missing
		if len(listed) > maxSuggestedSkills {
			listed = listed[:maxSuggestedSkills]
		}
		suggestions = append(suggestions,
			"Consider adding these relevant skills: "+strings.Join(listed, ", "))
	}

	return append(suggestions,
		"Prioritize your most relevant skills at the top",
		"Include both technical and soft skills",
	)
}

func keywordSuggestions(keywords types.KeywordAnalysis) []string {
	suggestions := []string{}

	total := len(keywords.Found) + len(keywords.Missing)
	if total > 0 && len(keywords.Found)*2 < total {
		suggestions = append(suggestions, "Increase keyword coverage by incorporating more terms from the posting")
	}

	return append(suggestions,
		"Use industry-specific terminology naturally throughout your profile",
		"Add keywords related to your target roles",
	)
}

func overallSuggestions(completeness float64) []string {
	suggestions := []string{}

	if completeness < completeProfileScore {
		suggestions = append(suggestions, "Complete all sections of your profile for better visibility")
	}

	return append(suggestions,
		"Keep your profile updated with recent achievements",
		"Ask for recommendations from colleagues and clients",
	)
}

// generate drafts replacement text through the LLM client. Partial failures
// leave the corresponding field empty.
func (a *Agent) generate(ctx context.Context, profile *types.Profile, analysis *types.Analysis, jobDescription string) *GeneratedContent {
	generated := &GeneratedContent{}

	if text, err := a.client.GenerateText(ctx, headlinePrompt(profile, jobDescription)); err == nil {
		generated.Headlines = splitLines(text, maxGeneratedHeadlines)
	}
	if text, err := a.client.GenerateText(ctx, aboutPrompt(profile, analysis, jobDescription)); err == nil {
		generated.About = strings.TrimSpace(text)
	}

	if len(generated.Headlines) == 0 && generated.About == "" {
		return nil
	}
	return generated
}

// splitLines returns up to max non-empty trimmed lines.
func splitLines(text string, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
		if len(out) == max {
			break
		}
	}
	return out
}
