package controllers

import (
	"disha/config"
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModels "disha/models/course"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// scoreQuiz counts correct answers for a submitted answer sheet.
// Unanswered questions count as wrong.
func scoreQuiz(questions []courseModels.QuizQuestion, answers map[uint]int) (correct int, percent int) {
	if len(questions) == 0 {
		return 0, 0
	}
	for _, q := range questions {
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectIndex {
			correct++
		}
	}
	percent = correct * 100 / len(questions)
	return correct, percent
}

// SubmitQuiz scores a topic quiz submission and updates progress on a pass
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	topicID := c.Locals("topicID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Check topic exists and is published
	var topic courseModels.Topic
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_published = ? AND is_deleted = ?",
		topicID, courseID, true, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmit").(*struct {
		Answers map[uint]int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("topic_id = ? AND is_deleted = ?", topicID, false).Find(&questions)
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This topic has no quiz!", nil)
	}

	correct, percent := scoreQuiz(questions, reqData.Answers)
	passed := percent >= config.AppConfig.ExamPassPercent

	// Get attempt number
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND topic_id = ? AND is_deleted = ?", userID, topicID, false).Count(&attemptCount)

	answersJSON, _ := json.Marshal(reqData.Answers)

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		TopicID:       uint(topicID),
		Answers:       datatypes.JSON(answersJSON),
		Score:         correct,
		MaxScore:      len(questions),
		Percent:       percent,
		Passed:        passed,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// If passed, mark topic as completed
	if passed {
		var existingProgress courseModels.TopicProgress
		if err := database.Database.Db.Where("user_id = ? AND topic_id = ? AND is_deleted = ?",
			userID, topicID, false).First(&existingProgress).Error; err != nil {
			progress := courseModels.TopicProgress{
				UserID:   userID,
				CourseID: uint(courseID),
				TopicID:  uint(topicID),
				Status:   "COMPLETED",
			}
			database.Database.Db.Create(&progress)

			// Update enrollment progress
			updateEnrollmentProgress(userID, uint(courseID))
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt":   attempt,
		"passed":    passed,
		"score":     correct,
		"max_score": len(questions),
		"percent":   percent,
	})
}

// GetQuizAttempts lists the user's attempts for one topic quiz
func GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := c.Locals("topicID").(int)

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.Where("user_id = ? AND topic_id = ? AND is_deleted = ?",
		userID, topicID, false).Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attempts fetched successfully!", attempts)
}

// progressPercent computes a completion percentage, capped at 100.
// Completed counts can exceed the published-topic count when a topic
// is unpublished after a user finished it.
func progressPercent(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	percent := float64(completed) / float64(total) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// updateEnrollmentProgress recomputes an enrollment's aggregate progress
// from completed topics after a topic completion.
func updateEnrollmentProgress(userID uint, courseID uint) {
	var totalTopics int64
	var completedTopics int64

	database.Database.Db.Model(&courseModels.Topic{}).
		Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).Count(&totalTopics)
	database.Database.Db.Model(&courseModels.TopicProgress{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Count(&completedTopics)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	enrollment.CompletedTopics = int(completedTopics)
	enrollment.TotalTopics = int(totalTopics)

	enrollment.Progress = progressPercent(completedTopics, totalTopics)

	if enrollment.Progress >= 100 && enrollment.Status != "COMPLETED" {
		enrollment.Status = "COMPLETED"
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	database.Database.Db.Save(&enrollment)
}
