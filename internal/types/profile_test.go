package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllText_CombinesSections(t *testing.T) {
	p := &Profile{
		Headline: "Software Engineer",
		About:    "Building backend systems",
		Experience: []Experience{
			{Title: "Engineer", Description: "Led a platform team"},
		},
		Skills: []string{"Go", "Python"},
	}

	text := p.AllText()

	assert.Contains(t, text, "Software Engineer")
	assert.Contains(t, text, "Building backend systems")
	assert.Contains(t, text, "Led a platform team")
	assert.Contains(t, text, "Go")
	assert.Contains(t, text, "Python")
}

func TestAllText_EmptyProfile(t *testing.T) {
	p := &Profile{}
	assert.Equal(t, "", p.AllText())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, (&Profile{}).IsEmpty())
	assert.False(t, (&Profile{Headline: "Engineer"}).IsEmpty())
	assert.False(t, (&Profile{Skills: []string{"Go"}}).IsEmpty())
}

func TestDateRangeIsZero(t *testing.T) {
	assert.True(t, DateRange{}.IsZero())
	assert.False(t, DateRange{StartYear: 2020}.IsZero())
	assert.False(t, DateRange{IsCurrent: true}.IsZero())
	assert.False(t, DateRange{Raw: "sometime ago"}.IsZero())
}
