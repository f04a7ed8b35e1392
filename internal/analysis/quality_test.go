package analysis

import (
	"testing"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestAssessQuality_EmptyProfileIsPoor(t *testing.T) {
	quality := AssessQuality(config.Default(), &types.Profile{})

	assert.Equal(t, 0, quality.ActionWordCount)
	assert.Equal(t, 0, quality.QuantifiedResultCount)
	assert.Equal(t, types.QualityPoor, quality.Label)
}

func TestAssessQuality_CountsActionVerbsAndMetrics(t *testing.T) {
	p := &types.Profile{
		Experience: []types.Experience{
			{Description: "Led a team and increased throughput by 30%"},
		},
	}

	quality := AssessQuality(config.Default(), p)

	assert.GreaterOrEqual(t, quality.ActionWordCount, 1)     // "Led", "increased"
	assert.GreaterOrEqual(t, quality.QuantifiedResultCount, 1) // "30%"
}

func TestAssessQuality_WholeWordVerbMatch(t *testing.T) {
	// "mismanaged" must not count as "managed".
	p := &types.Profile{About: "The project was mismanaged badly"}

	quality := AssessQuality(config.Default(), p)

	assert.Equal(t, 0, quality.ActionWordCount)
}

func TestAssessQuality_CaseInsensitiveVerbs(t *testing.T) {
	p := &types.Profile{About: "LED the rollout. Delivered on time."}

	quality := AssessQuality(config.Default(), p)

	assert.Equal(t, 2, quality.ActionWordCount)
}

func TestAssessQuality_CurrencyAndMultipliers(t *testing.T) {
	p := &types.Profile{About: "Saved $2M annually and made onboarding 3x faster"}

	quality := AssessQuality(config.Default(), p)

	assert.GreaterOrEqual(t, quality.QuantifiedResultCount, 2)
}

func TestQualityLabel_Thresholds(t *testing.T) {
	thresholds := config.Default().Quality

	assert.Equal(t, types.QualityPoor, qualityLabel(thresholds, 0))
	assert.Equal(t, types.QualityFair, qualityLabel(thresholds, 1))
	assert.Equal(t, types.QualityFair, qualityLabel(thresholds, 2))
	assert.Equal(t, types.QualityGood, qualityLabel(thresholds, 3))
	assert.Equal(t, types.QualityGood, qualityLabel(thresholds, 5))
	assert.Equal(t, types.QualityExcellent, qualityLabel(thresholds, 6))
	assert.Equal(t, types.QualityExcellent, qualityLabel(thresholds, 40))
}

func TestAssessQuality_ScansAboutAndAllDescriptions(t *testing.T) {
	p := &types.Profile{
		About: "Built a platform",
		Experience: []types.Experience{
			{Description: "Managed releases"},
			{Description: "Optimized queries"},
		},
	}

	quality := AssessQuality(config.Default(), p)

	assert.Equal(t, 3, quality.ActionWordCount)
}
