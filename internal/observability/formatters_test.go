package observability

import (
	"strings"
	"testing"

	"github.com/jonathan/profile-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintProfile(&types.Profile{
		Name:     "Jane Doe",
		Headline: "Engineer",
		Skills:   []string{"Go", "Python"},
	})

	out := buf.String()
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Go, Python")
}

func TestPrintProfile_NilIsSilent(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.Analysis{
		CompletenessScore: 72.5,
		ContentQuality:    types.ContentQuality{Label: types.QualityGood, ActionWordCount: 3},
		Strengths:         []string{"Good work experience history"},
		Weaknesses:        []string{"Limited skills listed"},
	})

	out := buf.String()
	assert.Contains(t, out, "72.5")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "Good work experience history")
	assert.Contains(t, out, "Limited skills listed")
}

func TestPrintJobMatch(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintJobMatch(&types.MatchResult{
		Score:         81.2,
		SkillsFactor:  1.0,
		MatchedSkills: []string{"python"},
		MissingSkills: []string{"kubernetes"},
	})

	out := buf.String()
	assert.Contains(t, out, "81.2")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "kubernetes")
}

func TestPrintJobMatch_NilIsSilent(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintJobMatch(nil)
	assert.Empty(t, buf.String())
}

func TestPrintKeywords(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintKeywords(types.KeywordAnalysis{
		Found:   []string{"python", "docker"},
		Missing: []string{"kafka"},
	})

	out := buf.String()
	assert.Contains(t, out, "2 of 3")
	assert.Contains(t, out, "kafka")
}

func TestPrintKeywords_EmptyIsSilent(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintKeywords(types.KeywordAnalysis{})
	assert.Empty(t, buf.String())
}

func TestWriteList_Truncation(t *testing.T) {
	var sb strings.Builder
	writeList(&sb, []string{"a", "b", "c", "d", "e", "f", "g"}, 5)

	out := sb.String()
	assert.Contains(t, out, "• e")
	assert.NotContains(t, out, "• f")
	assert.Contains(t, out, "... and 2 more")
}
