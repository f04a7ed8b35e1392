package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRefYear = 2025

func fullProfile() *types.Profile {
	return &types.Profile{
		Name:     "Jane Doe",
		Headline: "Software Engineer",
		Location: "Berlin",
		About:    strings.Repeat("I design and ship backend systems in Python. ", 12),
		Experience: []types.Experience{
			{
				Title:       "Software Engineer",
				Company:     "Acme",
				Description: "Led a team and increased throughput by 30%",
				Dates:       types.DateRange{StartYear: 2022, IsCurrent: true},
			},
			{
				Title:       "Backend Developer",
				Company:     "Initech",
				Description: "Built Python services",
				Dates:       types.DateRange{StartYear: 2019, EndYear: 2022},
			},
			{
				Title:       "Junior Developer",
				Company:     "Hooli",
				Description: "Maintained internal tools",
				Dates:       types.DateRange{StartYear: 2017, EndYear: 2019},
			},
		},
		Education: []types.Education{
			{School: "TU Berlin", Degree: "BSc", Field: "Computer Science"},
		},
		Skills: []string{"Python", "Leadership", "Docker", "SQL", "Kubernetes", "Git"},
	}
}

func TestAnalyze_NilProfile(t *testing.T) {
	analyzer := NewAt(config.Default(), testRefYear)

	result, err := analyzer.Analyze(context.Background(), nil, "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNilProfile)
}

func TestAnalyze_EmptyProfileNoJob(t *testing.T) {
	analyzer := NewAt(config.Default(), testRefYear)

	result, err := analyzer.Analyze(context.Background(), &types.Profile{}, "")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.CompletenessScore)
	assert.Equal(t, types.QualityPoor, result.ContentQuality.Label)
	assert.Nil(t, result.JobMatch)
	assert.Empty(t, result.Keywords.Found)
	assert.Empty(t, result.Keywords.Missing)
	assert.Empty(t, result.SkillCategories)
	assert.Empty(t, result.Strengths)
	assert.NotEmpty(t, result.Weaknesses)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyze_FullProfileWithMatchingJob(t *testing.T) {
	analyzer := NewAt(config.Default(), testRefYear)
	job := "Looking for a Python developer with leadership experience"

	result, err := analyzer.Analyze(context.Background(), fullProfile(), job)
	require.NoError(t, err)

	assert.Greater(t, result.CompletenessScore, 50.0)
	assert.GreaterOrEqual(t, result.ContentQuality.ActionWordCount, 1)
	assert.GreaterOrEqual(t, result.ContentQuality.QuantifiedResultCount, 1)

	require.NotNil(t, result.JobMatch)
	assert.Greater(t, result.JobMatch.Score, 50.0)
	assert.LessOrEqual(t, result.JobMatch.Score, 100.0)
	assert.Equal(t, 1.0, result.JobMatch.SkillsFactor)
	assert.Equal(t, 1.0, result.JobMatch.KeywordFactor)
	assert.Contains(t, result.JobMatch.MatchedSkills, "python")
	assert.Contains(t, result.JobMatch.MatchedSkills, "leadership")
	assert.Empty(t, result.JobMatch.MissingSkills)

	assert.Contains(t, result.Keywords.Found, "python")
	assert.Contains(t, result.Keywords.Found, "leadership")
	assert.Contains(t, result.SkillCategories["technical"], "Python")
	assert.Contains(t, result.SkillCategories["management"], "Leadership")
}

func TestAnalyze_NoJobDescriptionLeavesMatchAbsent(t *testing.T) {
	analyzer := NewAt(config.Default(), testRefYear)

	result, err := analyzer.Analyze(context.Background(), fullProfile(), "   ")
	require.NoError(t, err)

	assert.Nil(t, result.JobMatch)
	assert.Greater(t, result.CompletenessScore, 0.0)
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := NewAt(config.Default(), testRefYear)
	job := "Seeking a Python engineer with Docker and Kubernetes skills"

	first, err := analyzer.Analyze(context.Background(), fullProfile(), job)
	require.NoError(t, err)
	second, err := analyzer.Analyze(context.Background(), fullProfile(), job)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_KeywordPartition(t *testing.T) {
	analyzer := NewAt(config.Default(), testRefYear)
	job := "Python and Terraform on a distributed platform"

	result, err := analyzer.Analyze(context.Background(), fullProfile(), job)
	require.NoError(t, err)

	for _, f := range result.Keywords.Found {
		assert.NotContains(t, result.Keywords.Missing, f)
	}
	assert.Contains(t, result.Keywords.Found, "python")
	assert.Contains(t, result.Keywords.Missing, "terraform")
}
