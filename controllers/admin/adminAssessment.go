package adminController

import (
	"encoding/json"

	"disha/database"
	"disha/middleware"
	"disha/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// validAnswerKey checks that an option list still holds at least two
// entries and that the correct index points inside it. Partial updates
// can change options and correct_index independently, so the merged
// pair has to be checked before it is saved.
func validAnswerKey(optionsJSON datatypes.JSON, correctIndex int) bool {
	var options []string
	if err := json.Unmarshal(optionsJSON, &options); err != nil || len(options) < 2 {
		return false
	}
	return correctIndex >= 0 && correctIndex < len(options)
}

func isValidCategory(category string) bool {
	for _, known := range models.AptitudeCategories {
		if known == category {
			return true
		}
	}
	return false
}

// AdminCreateAptitudeQuestion adds a question to the assessment bank
func AdminCreateAptitudeQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedAptitudeQuestion").(*struct {
		QuestionText string   `json:"question_text"`
		Category     string   `json:"category"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		OrderIndex   int      `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !isValidCategory(reqData.Category) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown aptitude category!", nil)
	}

	optionsJSON, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question := models.AptitudeQuestion{
		QuestionText: reqData.QuestionText,
		Category:     reqData.Category,
		Options:      datatypes.JSON(optionsJSON),
		CorrectIndex: reqData.CorrectIndex,
		OrderIndex:   reqData.OrderIndex,
		IsActive:     true,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Aptitude question created successfully!", question)
}

// AdminUpdateAptitudeQuestion updates only the provided fields of a question
func AdminUpdateAptitudeQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	reqData, ok := c.Locals("validatedAptitudeQuestionUpdate").(*struct {
		QuestionText *string   `json:"question_text"`
		Category     *string   `json:"category"`
		Options      *[]string `json:"options"`
		CorrectIndex *int      `json:"correct_index"`
		OrderIndex   *int      `json:"order_index"`
		IsActive     *bool     `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var question models.AptitudeQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if reqData.QuestionText != nil {
		question.QuestionText = *reqData.QuestionText
	}
	if reqData.Category != nil {
		if !isValidCategory(*reqData.Category) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown aptitude category!", nil)
		}
		question.Category = *reqData.Category
	}
	if reqData.Options != nil {
		optionsJSON, err := json.Marshal(*reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
		}
		question.Options = datatypes.JSON(optionsJSON)
	}
	if reqData.CorrectIndex != nil {
		question.CorrectIndex = *reqData.CorrectIndex
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsActive != nil {
		question.IsActive = *reqData.IsActive
	}

	if !validAnswerKey(question.Options, question.CorrectIndex) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Correct index must point to one of the options!", nil)
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aptitude question updated successfully!", question)
}

// AdminDeleteAptitudeQuestion soft deletes an assessment question
func AdminDeleteAptitudeQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	var question models.AptitudeQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	question.IsActive = false
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aptitude question deleted successfully!", nil)
}

// AdminListAptitudeQuestions lists the question bank with correct answers
func AdminListAptitudeQuestions(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	db := database.Database.Db.Model(&models.AptitudeQuestion{}).Where("is_deleted = ?", false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var questions []models.AptitudeQuestion
	if err := db.Order("category asc, order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	// Admins need the answer key, which the model hides by default
	type questionWithAnswer struct {
		models.AptitudeQuestion
		CorrectIndex int `json:"correct_index"`
	}
	withAnswers := make([]questionWithAnswer, 0, len(questions))
	for _, question := range questions {
		withAnswers = append(withAnswers, questionWithAnswer{
			AptitudeQuestion: question,
			CorrectIndex:     question.CorrectIndex,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aptitude questions fetched successfully!", withAnswers)
}
