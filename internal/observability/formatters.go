// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a summary of the normalized profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Headline:  %s\n", profile.Headline))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	sb.WriteString(fmt.Sprintf("Roles:     %d\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education: %d\n", len(profile.Education)))

	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:    %s", skills))
	}

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the scoring summary with strengths and weaknesses.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completeness:  %.1f / 100\n", a.CompletenessScore))
	sb.WriteString(fmt.Sprintf("Writing:       %s (%d action, %d quantified)\n",
		a.ContentQuality.Label, a.ContentQuality.ActionWordCount, a.ContentQuality.QuantifiedResultCount))

	if len(a.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		writeList(&sb, a.Strengths, maxItemsToShow)
	}
	if len(a.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		writeList(&sb, a.Weaknesses, maxItemsToShow)
	}
	if len(a.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		writeList(&sb, a.Recommendations, maxItemsToShow)
	}

	p.printBox("PROFILE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatch outputs the weighted match score and its factor breakdown.
// A nil match means no job description was supplied and prints nothing.
func (p *Printer) PrintJobMatch(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score:  %.1f / 100\n\n", match.Score))
	sb.WriteString(fmt.Sprintf("  Skills:      %.2f\n", match.SkillsFactor))
	sb.WriteString(fmt.Sprintf("  Experience:  %.2f\n", match.ExperienceFactor))
	sb.WriteString(fmt.Sprintf("  Keywords:    %.2f\n", match.KeywordFactor))
	sb.WriteString(fmt.Sprintf("  Education:   %.2f\n", match.EducationFactor))

	if len(match.MatchedSkills) > 0 {
		matched := strings.Join(match.MatchedSkills, ", ")
		if len(matched) > 40 {
			matched = matched[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMatched:  %s\n", matched))
	}
	if len(match.MissingSkills) > 0 {
		missing := strings.Join(match.MissingSkills, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", missing))
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs keyword coverage against the job description.
func (p *Printer) PrintKeywords(kw types.KeywordAnalysis) {
	total := len(kw.Found) + len(kw.Missing)
	if total == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage: %d of %d keywords\n", len(kw.Found), total))

	if len(kw.Found) > 0 {
		sb.WriteString("\nFound:\n")
		writeList(&sb, kw.Found, maxItemsToShow)
	}
	if len(kw.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		writeList(&sb, kw.Missing, maxItemsToShow)
	}

	p.printBox("KEYWORD COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, items []string, max int) {
	count := min(len(items), max)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > max {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-max))
	}
}
