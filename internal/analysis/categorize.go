package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// Categorize buckets skills into the configured categories. A skill matches a
// category when it case-insensitively equals, or contains, any canonical term
// for that category; membership is non-exclusive, so a skill lands in every
// category it matches. Skills matching none are kept under "other" — no
// input skill is ever dropped.
func Categorize(cfg *config.Config, skills []string) map[string][]string {
	categorized := make(map[string][]string, len(cfg.Categories)+1)
	names := categoryNames(cfg)

	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		matchedAny := false
		for _, category := range names {
			for _, term := range cfg.Categories[category] {
				if strings.Contains(skillLower, strings.ToLower(term)) {
					categorized[category] = append(categorized[category], skill)
					matchedAny = true
					break
				}
			}
		}
		if !matchedAny {
			categorized[types.OtherCategory] = append(categorized[types.OtherCategory], skill)
		}
	}

	return categorized
}

// categoryNames returns the configured category names in sorted order so
// iteration, and therefore per-category skill order, is deterministic.
func categoryNames(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Categories))
	for name := range cfg.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
