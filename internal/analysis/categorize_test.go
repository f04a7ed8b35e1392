package analysis

import (
	"testing"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCategorize_BucketsKnownSkills(t *testing.T) {
	cfg := config.Default()

	categorized := Categorize(cfg, []string{"Python", "Leadership", "Figma"})

	assert.Contains(t, categorized["technical"], "Python")
	assert.Contains(t, categorized["management"], "Leadership")
	assert.Contains(t, categorized["design"], "Figma")
}

func TestCategorize_SkillCanLandInMultipleCategories(t *testing.T) {
	cfg := config.Default()

	categorized := Categorize(cfg, []string{"Agile Python Coaching"})

	assert.Contains(t, categorized["technical"], "Agile Python Coaching")
	assert.Contains(t, categorized["management"], "Agile Python Coaching")
}

func TestCategorize_UnmatchedSkillsGoToOther(t *testing.T) {
	cfg := config.Default()

	categorized := Categorize(cfg, []string{"Underwater Basket Weaving"})

	assert.Equal(t, []string{"Underwater Basket Weaving"}, categorized[types.OtherCategory])
}

func TestCategorize_NoSkillDropped(t *testing.T) {
	cfg := config.Default()
	skills := []string{"Python", "Leadership", "SEO", "Figma", "Juggling"}

	categorized := Categorize(cfg, skills)

	seen := map[string]bool{}
	for _, bucket := range categorized {
		for _, s := range bucket {
			seen[s] = true
		}
	}
	for _, s := range skills {
		assert.True(t, seen[s], "skill %q missing from every bucket", s)
	}
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	cfg := config.Default()

	categorized := Categorize(cfg, []string{"PYTHON", "python"})

	assert.Equal(t, []string{"PYTHON", "python"}, categorized["technical"])
}

func TestCategorize_Deterministic(t *testing.T) {
	cfg := config.Default()
	skills := []string{"Python", "Agile", "SEO", "Juggling", "Docker"}

	first := Categorize(cfg, skills)
	second := Categorize(cfg, skills)

	assert.Equal(t, first, second)
}

func TestCategorize_EmptyInput(t *testing.T) {
	categorized := Categorize(config.Default(), nil)
	assert.Empty(t, categorized)
}
