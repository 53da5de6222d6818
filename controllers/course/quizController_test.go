package controllers

import (
	"testing"

	courseModels "disha/models/course"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func quizQuestion(id uint, correctIndex int) courseModels.QuizQuestion {
	return courseModels.QuizQuestion{
		Model:        gorm.Model{ID: id},
		QuestionText: "question",
		Options:      datatypes.JSON(`["a","b","c","d"]`),
		CorrectIndex: correctIndex,
	}
}

func TestScoreQuiz(t *testing.T) {
	questions := []courseModels.QuizQuestion{
		quizQuestion(1, 0),
		quizQuestion(2, 2),
		quizQuestion(3, 1),
		quizQuestion(4, 3),
	}

	correct, percent := scoreQuiz(questions, map[uint]int{1: 0, 2: 2, 3: 0, 4: 3})
	assert.Equal(t, 3, correct)
	assert.Equal(t, 75, percent)
}

func TestScoreQuizUnansweredCountAsWrong(t *testing.T) {
	questions := []courseModels.QuizQuestion{
		quizQuestion(1, 0),
		quizQuestion(2, 1),
	}

	correct, percent := scoreQuiz(questions, map[uint]int{1: 0})
	assert.Equal(t, 1, correct)
	assert.Equal(t, 50, percent)
}

func TestScoreQuizEmptyBank(t *testing.T) {
	correct, percent := scoreQuiz(nil, map[uint]int{1: 0})
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, percent)
}

func TestScoreQuizAllWrong(t *testing.T) {
	questions := []courseModels.QuizQuestion{
		quizQuestion(1, 0),
		quizQuestion(2, 1),
	}

	correct, percent := scoreQuiz(questions, map[uint]int{1: 3, 2: 3})
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, percent)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, progressPercent(0, 0))
	assert.Equal(t, 0.0, progressPercent(3, 0))
	assert.Equal(t, 50.0, progressPercent(2, 4))
	assert.Equal(t, 100.0, progressPercent(4, 4))
}

func TestProgressPercentCapsAfterTopicUnpublish(t *testing.T) {
	// 5 topics completed, then one unpublished leaving 4 published
	assert.Equal(t, 100.0, progressPercent(5, 4))
}
