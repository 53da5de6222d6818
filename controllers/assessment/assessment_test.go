package assessmentController

import (
	"testing"

	"disha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func aptitudeQuestion(id uint, category string, correctIndex int) models.AptitudeQuestion {
	return models.AptitudeQuestion{
		Model:        gorm.Model{ID: id},
		QuestionText: "question",
		Category:     category,
		Options:      datatypes.JSON(`["a","b","c","d"]`),
		CorrectIndex: correctIndex,
	}
}

func TestScoreAssessmentPerCategory(t *testing.T) {
	questions := []models.AptitudeQuestion{
		aptitudeQuestion(1, models.CategoryAnalytical, 0),
		aptitudeQuestion(2, models.CategoryAnalytical, 1),
		aptitudeQuestion(3, models.CategoryTechnical, 2),
		aptitudeQuestion(4, models.CategoryVerbal, 0),
	}

	answers := map[uint]int{1: 0, 2: 1, 3: 0, 4: 0}
	scores := scoreAssessment(questions, answers)
	require.Len(t, scores, len(models.AptitudeCategories))

	byCategory := make(map[string]CategoryScore)
	for _, s := range scores {
		byCategory[s.Category] = s
	}

	assert.Equal(t, 100, byCategory[models.CategoryAnalytical].Percent)
	assert.Equal(t, 0, byCategory[models.CategoryTechnical].Percent)
	assert.Equal(t, 100, byCategory[models.CategoryVerbal].Percent)
	assert.Equal(t, 0, byCategory[models.CategoryQuantitative].Total)
}

func TestScoreAssessmentUnansweredCountsInTotal(t *testing.T) {
	questions := []models.AptitudeQuestion{
		aptitudeQuestion(1, models.CategoryCreative, 0),
		aptitudeQuestion(2, models.CategoryCreative, 0),
	}

	scores := scoreAssessment(questions, map[uint]int{1: 0})

	byCategory := make(map[string]CategoryScore)
	for _, s := range scores {
		byCategory[s.Category] = s
	}

	assert.Equal(t, 2, byCategory[models.CategoryCreative].Total)
	assert.Equal(t, 1, byCategory[models.CategoryCreative].Correct)
	assert.Equal(t, 50, byCategory[models.CategoryCreative].Percent)
}

func TestTopCategoriesStrongestFirst(t *testing.T) {
	scores := []CategoryScore{
		{Category: models.CategoryAnalytical, Total: 2, Percent: 50},
		{Category: models.CategoryVerbal, Total: 2, Percent: 100},
		{Category: models.CategoryTechnical, Total: 0, Percent: 0},
		{Category: models.CategoryCreative, Total: 2, Percent: 75},
	}

	ranked := topCategories(scores)
	assert.Equal(t, []string{
		models.CategoryVerbal,
		models.CategoryCreative,
		models.CategoryAnalytical,
	}, ranked)
}

func TestTopCategoriesStableOnTies(t *testing.T) {
	scores := []CategoryScore{
		{Category: models.CategoryAnalytical, Total: 2, Percent: 50},
		{Category: models.CategoryVerbal, Total: 2, Percent: 50},
	}

	ranked := topCategories(scores)
	assert.Equal(t, []string{models.CategoryAnalytical, models.CategoryVerbal}, ranked)
}
