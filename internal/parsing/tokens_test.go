package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_DropsStopWordsAndShortTokens(t *testing.T) {
	stop := StopWordSet([]string{"looking", "with"})

	tokens := Tokenize("Looking for engineers with Go and Python", 4, stop)

	assert.Equal(t, []string{"engineers", "python"}, tokens)
}

func TestTokenize_DeduplicatesPreservingOrder(t *testing.T) {
	tokens := Tokenize("python docker python kafka docker", 4, nil)

	assert.Equal(t, []string{"python", "docker", "kafka"}, tokens)
}

func TestTokenize_EmptyTextIsNil(t *testing.T) {
	assert.Nil(t, Tokenize("", 4, nil))
	assert.Nil(t, Tokenize("a an it", 4, nil))
}

func TestContainsTerm_WholeWordOnly(t *testing.T) {
	assert.True(t, ContainsTerm("Senior Go engineer", "go"))
	assert.True(t, ContainsTerm("skilled in java, go, rust", "java"))
	assert.False(t, ContainsTerm("javascript developer", "java"))
	assert.False(t, ContainsTerm("cargo handling", "go"))
}

func TestContainsTerm_Phrases(t *testing.T) {
	assert.True(t, ContainsTerm("strong machine learning background", "machine learning"))
	assert.False(t, ContainsTerm("machinelearning", "machine learning"))
}

func TestContainsTerm_UnicodeWordBoundaries(t *testing.T) {
	// Non-ASCII letters bound words too; no match inside a larger word.
	assert.False(t, ContainsTerm("polished résumé", "sum"))
	assert.False(t, ContainsTerm("naïveté", "vet"))

	assert.True(t, ContainsTerm("reviewed the résumé today", "résumé"))
	assert.True(t, ContainsTerm("café manager", "manager"))
}

func TestContainsTerm_EmptyInputs(t *testing.T) {
	assert.False(t, ContainsTerm("", "go"))
	assert.False(t, ContainsTerm("go", ""))
}
