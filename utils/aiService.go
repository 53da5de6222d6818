package utils

import (
	"disha/config"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
)

// chatMessage is one message of a chat-completions request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CareerSuggestion is one AI-generated career direction
type CareerSuggestion struct {
	CareerTitle string   `json:"career_title"`
	Rationale   string   `json:"rationale"`
	CourseTags  []string `json:"course_tags"`
	MatchScore  int      `json:"match_score"`
}

// OutlineTopic is one entry of a generated course outline
type OutlineTopic struct {
	Section string `json:"section"`
	Title   string `json:"title"`
}

// GeneratedQuestion is one AI-generated multiple choice question
type GeneratedQuestion struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// chatCompletion sends one prompt pair to the configured chat-completions API
func chatCompletion(systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if config.AppConfig.AiApiKey == "" {
		return "", fmt.Errorf("AI API key is not configured")
	}

	reqBody := chatCompletionRequest{
		Model: config.AppConfig.AiModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: maxTokens,
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.AiApiKey).
		SetBody(reqBody).
		Post(config.AppConfig.AiApiURL)
	if err != nil {
		log.Printf("AI API request failed: %v", err)
		return "", err
	}
	if resp.StatusCode() >= 300 {
		log.Printf("AI API returned status %d: %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("AI API returned status %d", resp.StatusCode())
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %v", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// StripJSONFences removes markdown code fences models wrap around JSON output
func StripJSONFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}

// ParseCareerSuggestions decodes the strict-JSON recommendation payload
func ParseCareerSuggestions(content string) ([]CareerSuggestion, error) {
	var suggestions []CareerSuggestion
	if err := json.Unmarshal([]byte(StripJSONFences(content)), &suggestions); err != nil {
		return nil, fmt.Errorf("invalid recommendation JSON: %v", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("no recommendations returned")
	}
	for i := range suggestions {
		if suggestions[i].MatchScore < 0 {
			suggestions[i].MatchScore = 0
		}
		if suggestions[i].MatchScore > 100 {
			suggestions[i].MatchScore = 100
		}
	}
	return suggestions, nil
}

// ParseGeneratedQuestions decodes and sanity-checks generated quiz questions
func ParseGeneratedQuestions(content string) ([]GeneratedQuestion, error) {
	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(StripJSONFences(content)), &questions); err != nil {
		return nil, fmt.Errorf("invalid question JSON: %v", err)
	}

	valid := make([]GeneratedQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.QuestionText) == "" || len(q.Options) < 2 {
			continue
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable questions returned")
	}
	return valid, nil
}

// GenerateCareerRecommendations asks the LLM for career directions based on
// assessment strengths and self-declared interests
func GenerateCareerRecommendations(strengths, interests []string) ([]CareerSuggestion, error) {
	system := "You are a career guidance assistant for students. " +
		"Return only a valid JSON array, no markdown, no explanations. " +
		"Each element: {\"career_title\": string, \"rationale\": string, " +
		"\"course_tags\": [string], \"match_score\": number 0-100}."

	user := fmt.Sprintf(
		"Student strengths (strongest first): %s. Interests: %s. "+
			"Suggest 5 career directions with short rationales and 2-4 lowercase course tags each.",
		strings.Join(strengths, ", "), strings.Join(interests, ", "))

	content, err := chatCompletion(system, user, 800)
	if err != nil {
		return nil, err
	}
	return ParseCareerSuggestions(content)
}

// GenerateCourseOutline asks the LLM for a sectioned topic outline
func GenerateCourseOutline(title, description string) ([]OutlineTopic, error) {
	system := "You are a curriculum designer. Return only a valid JSON array, no markdown. " +
		"Each element: {\"section\": string, \"title\": string}. " +
		"Group 8-15 topics into 3-5 sections, ordered for learning."

	user := fmt.Sprintf("Design the topic outline for a course titled %q. Description: %s", title, description)

	content, err := chatCompletion(system, user, 900)
	if err != nil {
		return nil, err
	}

	var outline []OutlineTopic
	if err := json.Unmarshal([]byte(StripJSONFences(content)), &outline); err != nil {
		return nil, fmt.Errorf("invalid outline JSON: %v", err)
	}
	if len(outline) == 0 {
		return nil, fmt.Errorf("no outline topics returned")
	}
	return outline, nil
}

// GenerateTopicContent asks the LLM for study notes and a narration transcript
// for one topic. The transcript feeds the video synthesis pipeline.
func GenerateTopicContent(courseTitle, topicTitle string) (notes string, transcript string, err error) {
	system := "You are a course author. Return only a valid JSON object, no markdown: " +
		"{\"notes\": string, \"transcript\": string}. Notes are concise study notes in plain text. " +
		"Transcript is a 2-3 minute spoken narration script."

	user := fmt.Sprintf("Write the notes and narration transcript for topic %q of the course %q.", topicTitle, courseTitle)

	content, err := chatCompletion(system, user, 1500)
	if err != nil {
		return "", "", err
	}

	var payload struct {
		Notes      string `json:"notes"`
		Transcript string `json:"transcript"`
	}
	if err := json.Unmarshal([]byte(StripJSONFences(content)), &payload); err != nil {
		return "", "", fmt.Errorf("invalid topic content JSON: %v", err)
	}
	if strings.TrimSpace(payload.Notes) == "" && strings.TrimSpace(payload.Transcript) == "" {
		return "", "", fmt.Errorf("empty topic content returned")
	}
	return payload.Notes, payload.Transcript, nil
}

// GenerateQuizQuestions asks the LLM for multiple choice questions on a topic
func GenerateQuizQuestions(topicTitle, transcript string, count int) ([]GeneratedQuestion, error) {
	system := "You are an exam author. Return only a valid JSON array, no markdown. " +
		"Each element: {\"question_text\": string, \"options\": [4 strings], " +
		"\"correct_index\": number 0-3, \"explanation\": string}."

	source := transcript
	if len(source) > 2000 {
		source = source[:2000]
	}
	user := fmt.Sprintf("Write %d multiple choice questions for the topic %q based on this material:\n%s",
		count, topicTitle, source)

	content, err := chatCompletion(system, user, 1600)
	if err != nil {
		return nil, err
	}
	return ParseGeneratedQuestions(content)
}
