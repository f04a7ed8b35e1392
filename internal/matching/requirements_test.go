package matching

import (
	"testing"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestExtractRequirements_KnownSkills(t *testing.T) {
	cfg := config.Default()
	job := "Looking for a Python developer with Docker and Kubernetes experience"

	req := ExtractRequirements(cfg, job)

	assert.Contains(t, req.Skills, "python")
	assert.Contains(t, req.Skills, "docker")
	assert.Contains(t, req.Skills, "kubernetes")
	assert.NotContains(t, req.Skills, "java")
}

func TestExtractRequirements_WholeWordOnly(t *testing.T) {
	cfg := config.Default()
	// "go" must not be extracted from "Django" or "good".
	req := ExtractRequirements(cfg, "Django shop looking for good people")

	assert.NotContains(t, req.Skills, "go")
}

func TestExtractRequirements_YearsOfExperience(t *testing.T) {
	cfg := config.Default()

	req := ExtractRequirements(cfg, "Requires 5+ years of backend experience")
	assert.Equal(t, 5, req.YearsExperience)

	// Smallest figure wins when several are mentioned.
	req = ExtractRequirements(cfg, "3 years required, 7 years preferred")
	assert.Equal(t, 3, req.YearsExperience)

	req = ExtractRequirements(cfg, "No specific tenure needed")
	assert.Equal(t, 0, req.YearsExperience)
}

func TestExtractRequirements_KeywordsDropStopWords(t *testing.T) {
	cfg := config.Default()

	req := ExtractRequirements(cfg, "We are looking for the best distributed systems engineer")

	assert.Contains(t, req.Keywords, "distributed")
	assert.Contains(t, req.Keywords, "systems")
	assert.Contains(t, req.Keywords, "engineer")
	assert.NotContains(t, req.Keywords, "the")
	assert.NotContains(t, req.Keywords, "looking")
}

func TestExtractRequirements_EmptyDescription(t *testing.T) {
	cfg := config.Default()

	req := ExtractRequirements(cfg, "   ")

	assert.Empty(t, req.Skills)
	assert.Empty(t, req.Keywords)
	assert.Zero(t, req.YearsExperience)
}

func TestExtractRequirements_Deterministic(t *testing.T) {
	cfg := config.Default()
	job := "Python and Go engineer, 4+ years, Kubernetes a plus"

	first := ExtractRequirements(cfg, job)
	second := ExtractRequirements(cfg, job)

	assert.Equal(t, first, second)
}
