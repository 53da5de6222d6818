package controllers

import (
	"testing"

	courseModels "disha/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// noShuffle keeps the bank order deterministic for tests
func noShuffle(n int, swap func(i, j int)) {}

func TestBuildExamQuestionsRenumbers(t *testing.T) {
	bank := []courseModels.QuizQuestion{
		quizQuestion(10, 1),
		quizQuestion(42, 0),
		quizQuestion(7, 3),
	}

	questions := buildExamQuestions(bank, 15, noShuffle)
	require.Len(t, questions, 3)

	for i, q := range questions {
		assert.Equal(t, uint(i+1), q.ID)
		assert.Len(t, q.Options, 4)
	}
	assert.Equal(t, 1, questions[0].CorrectIndex)
	assert.Equal(t, 0, questions[1].CorrectIndex)
	assert.Equal(t, 3, questions[2].CorrectIndex)
}

func TestBuildExamQuestionsCapsAtCount(t *testing.T) {
	bank := make([]courseModels.QuizQuestion, 0, 20)
	for i := 1; i <= 20; i++ {
		bank = append(bank, quizQuestion(uint(i), 0))
	}

	questions := buildExamQuestions(bank, 15, noShuffle)
	assert.Len(t, questions, 15)
}

func TestBuildExamQuestionsSkipsMalformed(t *testing.T) {
	broken := quizQuestion(2, 1)
	broken.Options = datatypes.JSON(`not json`)

	outOfRange := quizQuestion(3, 9)

	bank := []courseModels.QuizQuestion{quizQuestion(1, 0), broken, outOfRange}

	questions := buildExamQuestions(bank, 15, noShuffle)
	require.Len(t, questions, 1)
	assert.Equal(t, uint(1), questions[0].ID)
}

func TestScoreExam(t *testing.T) {
	questions := []courseModels.ExamQuestion{
		{ID: 1, Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: 2, Options: []string{"a", "b"}, CorrectIndex: 1},
		{ID: 3, Options: []string{"a", "b"}, CorrectIndex: 1},
		{ID: 4, Options: []string{"a", "b"}, CorrectIndex: 0},
	}

	assert.Equal(t, 100, scoreExam(questions, map[uint]int{1: 0, 2: 1, 3: 1, 4: 0}))
	assert.Equal(t, 50, scoreExam(questions, map[uint]int{1: 0, 2: 1}))
	assert.Equal(t, 0, scoreExam(questions, map[uint]int{}))
	assert.Equal(t, 0, scoreExam(nil, map[uint]int{1: 0}))
}

func TestSanitizeExamQuestionsHidesAnswers(t *testing.T) {
	questions := []courseModels.ExamQuestion{
		{ID: 1, QuestionText: "q1", Options: []string{"a", "b"}, CorrectIndex: 1},
	}

	sanitized := sanitizeExamQuestions(questions)
	require.Len(t, sanitized, 1)
	assert.Equal(t, uint(1), sanitized[0]["id"])
	assert.Equal(t, "q1", sanitized[0]["question_text"])
	assert.NotContains(t, sanitized[0], "correct_index")
}
