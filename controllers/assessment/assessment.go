package assessmentController

import (
	"disha/database"
	"disha/middleware"
	"disha/models"
	"encoding/json"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetAssessmentQuestions returns the active aptitude question set.
// Correct indexes are never serialized.
func GetAssessmentQuestions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var questions []models.AptitudeQuestion
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("order_index asc, id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No assessment questions available!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment questions fetched successfully!", fiber.Map{
		"questions": questions,
		"total":     len(questions),
	})
}

// CategoryScore is one category's tally in an assessment result
type CategoryScore struct {
	Category string `json:"category"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
	Percent  int    `json:"percent"`
}

// scoreAssessment tallies answers per category. Unanswered questions count
// toward the category total but never toward correct.
func scoreAssessment(questions []models.AptitudeQuestion, answers map[uint]int) []CategoryScore {
	byCategory := make(map[string]*CategoryScore)
	for _, cat := range models.AptitudeCategories {
		byCategory[cat] = &CategoryScore{Category: cat}
	}

	for _, q := range questions {
		score, ok := byCategory[q.Category]
		if !ok {
			score = &CategoryScore{Category: q.Category}
			byCategory[score.Category] = score
		}
		score.Total++
		if selected, answered := answers[q.ID]; answered && selected == q.CorrectIndex {
			score.Correct++
		}
	}

	result := make([]CategoryScore, 0, len(byCategory))
	for _, cat := range models.AptitudeCategories {
		score := byCategory[cat]
		if score.Total > 0 {
			score.Percent = score.Correct * 100 / score.Total
		}
		result = append(result, *score)
		delete(byCategory, cat)
	}
	// Categories outside the fixed list, if any, go last
	for _, score := range byCategory {
		if score.Total > 0 {
			score.Percent = score.Correct * 100 / score.Total
		}
		result = append(result, *score)
	}
	return result
}

// topCategories returns category names ordered strongest first,
// skipping categories with no questions.
func topCategories(scores []CategoryScore) []string {
	ranked := make([]CategoryScore, 0, len(scores))
	for _, s := range scores {
		if s.Total > 0 {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Category
	}
	return names
}

// SubmitAssessment scores a submitted answer sheet and stores the attempt
func SubmitAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*struct {
		Answers map[uint]int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []models.AptitudeQuestion
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No assessment questions available!", nil)
	}

	scores := scoreAssessment(questions, reqData.Answers)
	strongest := topCategories(scores)

	answersJSON, _ := json.Marshal(reqData.Answers)
	scoresJSON, _ := json.Marshal(scores)

	attempt := models.AssessmentAttempt{
		UserID:         userID,
		Answers:        datatypes.JSON(answersJSON),
		CategoryScores: datatypes.JSON(scoresJSON),
		TopCategories:  strings.Join(strongest, ","),
		TotalQuestions: len(questions),
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment submitted successfully!", fiber.Map{
		"attempt_id":      attempt.ID,
		"category_scores": scores,
		"top_categories":  strongest,
	})
}

// GetLatestResult returns the user's most recent assessment attempt
func GetLatestResult(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var attempt models.AssessmentAttempt
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").First(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No assessment attempt found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment result fetched successfully!", attempt)
}
