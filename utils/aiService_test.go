package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"fenced", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"fenced no lang", "```\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"whitespace", "  [1,2]  ", "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripJSONFences(tt.content))
		})
	}
}

func TestParseCareerSuggestions(t *testing.T) {
	content := "```json\n" + `[
		{"career_title":"Data Analyst","rationale":"r","course_tags":["data","sql"],"match_score":88},
		{"career_title":"Developer","rationale":"r","course_tags":["programming"],"match_score":140}
	]` + "\n```"

	suggestions, err := ParseCareerSuggestions(content)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "Data Analyst", suggestions[0].CareerTitle)
	assert.Equal(t, 88, suggestions[0].MatchScore)
	// Scores clamp to 0-100
	assert.Equal(t, 100, suggestions[1].MatchScore)
}

func TestParseCareerSuggestionsRejectsBadPayloads(t *testing.T) {
	_, err := ParseCareerSuggestions("not json at all")
	assert.Error(t, err)

	_, err = ParseCareerSuggestions("[]")
	assert.Error(t, err)
}

func TestParseGeneratedQuestions(t *testing.T) {
	content := `[
		{"question_text":"What is Go?","options":["language","animal","city"],"correct_index":0,"explanation":"e"},
		{"question_text":"","options":["a","b"],"correct_index":0},
		{"question_text":"One option","options":["a"],"correct_index":0},
		{"question_text":"Bad index","options":["a","b"],"correct_index":5}
	]`

	questions, err := ParseGeneratedQuestions(content)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is Go?", questions[0].QuestionText)
}

func TestParseGeneratedQuestionsAllInvalid(t *testing.T) {
	_, err := ParseGeneratedQuestions(`[{"question_text":"","options":[],"correct_index":0}]`)
	assert.Error(t, err)
}
