package recommendationController

import (
	"testing"

	"disha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFallbackMatchesStrengths(t *testing.T) {
	suggestions := buildFallback([]string{models.CategoryTechnical, models.CategoryCreative})
	require.Len(t, suggestions, 2)

	assert.Equal(t, "Software Developer", suggestions[0].CareerTitle)
	assert.Equal(t, "UI/UX Designer", suggestions[1].CareerTitle)
}

func TestBuildFallbackSkipsUnknownCategories(t *testing.T) {
	suggestions := buildFallback([]string{"UNKNOWN", models.CategoryVerbal})
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Content & Communications Specialist", suggestions[0].CareerTitle)
}

func TestTagsOverlap(t *testing.T) {
	assert.True(t, tagsOverlap([]string{"data", "sql"}, []string{"sql", "python"}))
	assert.False(t, tagsOverlap([]string{"data"}, []string{"design"}))
	assert.False(t, tagsOverlap(nil, []string{"design"}))
	assert.False(t, tagsOverlap([]string{"data"}, nil))
}
