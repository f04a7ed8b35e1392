// Package parsing normalizes raw scraped profile data into the validated
// Profile record the analysis engine consumes. Normalization is pure and
// never fails: scraped data is inherently noisy, so malformed values degrade
// to absent or raw-preserved fields instead of errors.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/types"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Keep letters, digits, and basic punctuation, drop scraper artifacts.
	specialCharsRe = regexp.MustCompile(`[^\p{L}\p{N}\s\-.,!?()&/+#%$'_]`)
	digitsRe       = regexp.MustCompile(`\d+`)
)

// Normalize converts a raw scraped profile into a normalized Profile.
// Every text field is trimmed with collapsed whitespace; empty-after-trim
// becomes absent. Skills are deduplicated case-insensitively with first-seen
// casing preserved.
func Normalize(raw *types.RawProfile) *types.Profile {
	if raw == nil {
		return &types.Profile{}
	}

	p := &types.Profile{
		Name:     CleanText(raw.Name),
		Headline: CleanText(raw.Headline),
		Location: CleanText(raw.Location),
		About:    CleanText(raw.About),
		URL:      strings.TrimSpace(raw.URL),

		Certifications: cleanList(raw.Certifications),
		Languages:      cleanList(raw.Languages),
		Volunteer:      cleanList(raw.Volunteer),
		Honors:         cleanList(raw.Honors),

		Skills: DedupeSkills(raw.Skills),

		Connections: parseCount(raw.Connections),
		Followers:   parseCount(raw.Followers),
	}

	for _, exp := range raw.Experience {
		normalized := types.Experience{
			Title:       CleanText(exp.Title),
			Company:     CleanText(exp.Company),
			Location:    CleanText(exp.Location),
			Description: CleanText(exp.Description),
			Dates:       ParseDateRange(exp.StartDate, exp.EndDate, exp.Duration),
		}
		if normalized == (types.Experience{}) {
			continue
		}
		p.Experience = append(p.Experience, normalized)
	}

	for _, edu := range raw.Education {
		normalized := types.Education{
			School: CleanText(edu.School),
			Degree: CleanText(edu.Degree),
			Field:  CleanText(edu.Field),
			Grade:  CleanText(edu.Grade),
		}
		normalized.StartYear, normalized.EndYear = parseYearSpan(edu.Years)
		if normalized == (types.Education{}) {
			continue
		}
		p.Education = append(p.Education, normalized)
	}

	return p
}

// CleanText trims a string, collapses internal whitespace, and strips
// characters that are scraping artifacts rather than content.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = specialCharsRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// DedupeSkills cleans a skill list and removes case-insensitive duplicates,
// keeping the first-seen casing.
func DedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(skills))
	deduped := make([]string, 0, len(skills))
	for _, skill := range skills {
		cleaned := CleanText(skill)
		if cleaned == "" {
			continue
		}
		lower := strings.ToLower(cleaned)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		deduped = append(deduped, cleaned)
	}
	if len(deduped) == 0 {
		return nil
	}
	return deduped
}

// cleanList cleans each entry and drops empties.
func cleanList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if c := CleanText(item); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

// parseCount parses a count like "500+" or "1,234 followers" into a number.
// Returns nil when no digits are present.
func parseCount(s string) *int {
	if s == "" {
		return nil
	}
	match := digitsRe.FindString(strings.ReplaceAll(s, ",", ""))
	if match == "" {
		return nil
	}
	n, err := strconv.Atoi(match)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
