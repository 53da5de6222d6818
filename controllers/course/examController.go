package controllers

import (
	"disha/config"
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModels "disha/models/course"
	"disha/utils"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ScheduleExam books a final exam slot for a completed course
func ScheduleExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedExamSchedule").(*struct {
		ScheduledAt time.Time `json:"scheduled_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Course must be completed before the final exam
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}
	if enrollment.Status != "COMPLETED" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before scheduling the exam!", nil)
	}

	// One live schedule per course
	var existing courseModels.ExamSchedule
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND status IN ? AND is_deleted = ?",
		userID, courseID, []string{courseModels.ExamScheduled, courseModels.ExamInProgress}, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An exam is already scheduled for this course!", existing)
	}

	// Already passed exams cannot be rebooked
	var passedExam courseModels.ExamSchedule
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND passed = ? AND is_deleted = ?",
		userID, courseID, true, false).First(&passedExam).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already passed this exam!", nil)
	}

	exam := courseModels.ExamSchedule{
		UserID:      userID,
		CourseID:    uint(courseID),
		ScheduledAt: reqData.ScheduledAt,
		Status:      courseModels.ExamScheduled,
	}

	if err := database.Database.Db.Create(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam scheduled successfully!", exam)
}

// buildExamQuestions samples up to count questions from the course quiz
// bank, renumbering them 1..n for the generated paper.
func buildExamQuestions(bank []courseModels.QuizQuestion, count int, shuffle func(n int, swap func(i, j int))) []courseModels.ExamQuestion {
	shuffle(len(bank), func(i, j int) { bank[i], bank[j] = bank[j], bank[i] })
	if len(bank) > count {
		bank = bank[:count]
	}

	questions := make([]courseModels.ExamQuestion, 0, len(bank))
	for i, q := range bank {
		var options []string
		if err := json.Unmarshal(q.Options, &options); err != nil || len(options) < 2 {
			continue
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(options) {
			continue
		}
		questions = append(questions, courseModels.ExamQuestion{
			ID:           uint(i + 1),
			QuestionText: q.QuestionText,
			Options:      options,
			CorrectIndex: q.CorrectIndex,
		})
	}
	return questions
}

// scoreExam computes the percentage for a submitted paper.
// Unanswered questions count as wrong.
func scoreExam(questions []courseModels.ExamQuestion, answers map[uint]int) int {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range questions {
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectIndex {
			correct++
		}
	}
	return correct * 100 / len(questions)
}

// sanitizeExamQuestions strips correct indexes before the paper goes out
func sanitizeExamQuestions(questions []courseModels.ExamQuestion) []fiber.Map {
	sanitized := make([]fiber.Map, len(questions))
	for i, q := range questions {
		sanitized[i] = fiber.Map{
			"id":            q.ID,
			"question_text": q.QuestionText,
			"options":       q.Options,
		}
	}
	return sanitized
}

// StartExam opens a scheduled exam within its window and generates the paper
func StartExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	examID := c.Locals("examID").(int)

	var exam courseModels.ExamSchedule
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?",
		examID, userID, false).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam schedule not found!", nil)
	}

	if exam.Status != courseModels.ExamScheduled {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam is not in a schedulable state!", nil)
	}

	now := time.Now()
	window := time.Duration(config.AppConfig.ExamWindowMinutes) * time.Minute
	if now.Before(exam.ScheduledAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam has not started yet!", nil)
	}
	if now.After(exam.ScheduledAt.Add(window)) {
		exam.Status = courseModels.ExamExpired
		database.Database.Db.Save(&exam)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam window has expired!", nil)
	}

	// Build the paper from the course quiz bank
	var bank []courseModels.QuizQuestion
	database.Database.Db.
		Joins("JOIN topics ON topics.id = quiz_questions.topic_id").
		Where("topics.course_id = ? AND topics.is_published = ? AND quiz_questions.is_deleted = ?",
			exam.CourseID, true, false).
		Find(&bank)

	questions := buildExamQuestions(bank, config.AppConfig.ExamQuestionCount, rand.Shuffle)

	// Fill with AI-generated questions when the bank is short
	if len(questions) < config.AppConfig.ExamQuestionCount {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", exam.CourseID).First(&course)

		missing := config.AppConfig.ExamQuestionCount - len(questions)
		generated, err := utils.GenerateQuizQuestions(course.Title, course.Description, missing)
		if err != nil {
			log.Printf("AI exam question fill failed for exam %d: %v", exam.ID, err)
		} else {
			for _, g := range generated {
				questions = append(questions, courseModels.ExamQuestion{
					ID:           uint(len(questions) + 1),
					QuestionText: g.QuestionText,
					Options:      g.Options,
					CorrectIndex: g.CorrectIndex,
				})
			}
		}
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "No exam questions available for this course!", nil)
	}

	questionsJSON, _ := json.Marshal(questions)

	exam.Status = courseModels.ExamInProgress
	exam.StartedAt = &now
	exam.Questions = datatypes.JSON(questionsJSON)

	if err := database.Database.Db.Save(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam started!", fiber.Map{
		"exam_id":        exam.ID,
		"started_at":     exam.StartedAt,
		"window_minutes": config.AppConfig.ExamWindowMinutes,
		"questions":      sanitizeExamQuestions(questions),
	})
}

// SubmitExam scores a started exam, once, and issues a certificate on a pass
func SubmitExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	examID := c.Locals("examID").(int)

	var exam courseModels.ExamSchedule
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?",
		examID, userID, false).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam schedule not found!", nil)
	}

	if exam.Status == courseModels.ExamSubmitted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Exam has already been submitted!", nil)
	}
	if exam.Status != courseModels.ExamInProgress || exam.StartedAt == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam is not in progress!", nil)
	}

	now := time.Now()
	window := time.Duration(config.AppConfig.ExamWindowMinutes) * time.Minute
	if now.After(exam.StartedAt.Add(window)) {
		exam.Status = courseModels.ExamExpired
		database.Database.Db.Save(&exam)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam time is over!", nil)
	}

	reqData, ok := c.Locals("validatedExamSubmit").(*struct {
		Answers map[uint]int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []courseModels.ExamQuestion
	if err := json.Unmarshal(exam.Questions, &questions); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load exam questions!", nil)
	}

	percent := scoreExam(questions, reqData.Answers)
	passed := percent >= config.AppConfig.ExamPassPercent

	answersJSON, _ := json.Marshal(reqData.Answers)

	exam.Status = courseModels.ExamSubmitted
	exam.SubmittedAt = &now
	exam.Answers = datatypes.JSON(answersJSON)
	exam.Score = percent
	exam.Passed = passed

	if err := database.Database.Db.Save(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit exam!", nil)
	}

	var certificate *courseModels.Certificate
	if passed {
		certificate = issueCertificate(&user, &exam)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam submitted!", fiber.Map{
		"score":       percent,
		"passed":      passed,
		"certificate": certificate,
	})
}

// issueCertificate creates the credential for a passed exam and sends the
// notification email. Returns nil if one already exists for the exam.
func issueCertificate(user *models.User, exam *courseModels.ExamSchedule) *courseModels.Certificate {
	var existing courseModels.Certificate
	if err := database.Database.Db.Where("exam_schedule_id = ? AND is_deleted = ?",
		exam.ID, false).First(&existing).Error; err == nil {
		return &existing
	}

	certificate := courseModels.Certificate{
		UserID:            exam.UserID,
		CourseID:          exam.CourseID,
		ExamScheduleID:    exam.ID,
		CertificateNumber: utils.GenerateCertificateNumber(),
		Level:             courseModels.LevelForScore(exam.Score),
		Score:             exam.Score,
		IssuedAt:          time.Now(),
	}

	if err := database.Database.Db.Create(&certificate).Error; err != nil {
		log.Printf("Failed to issue certificate for exam %d: %v", exam.ID, err)
		return nil
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", exam.CourseID).First(&course)

	go func(email, name, courseName, number, level string) {
		if err := utils.SendCertificateEmail(email, name, courseName, number, level); err != nil {
			log.Printf("Failed to send certificate email to %s: %v", email, err)
		}
	}(user.Email, user.Name, course.Title, certificate.CertificateNumber, certificate.Level)

	return &certificate
}

// GetExamResult returns a finished exam with the paper and correct answers revealed
func GetExamResult(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	examID := c.Locals("examID").(int)

	var exam courseModels.ExamSchedule
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?",
		examID, userID, false).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam schedule not found!", nil)
	}

	if exam.Status != courseModels.ExamSubmitted && exam.Status != courseModels.ExamExpired {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam result is not available yet!", nil)
	}

	// Correct answers are revealed only after submission
	var questions []courseModels.ExamQuestion
	if len(exam.Questions) > 0 {
		json.Unmarshal(exam.Questions, &questions)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam result fetched successfully!", fiber.Map{
		"exam":      exam,
		"questions": questions,
	})
}

// GetMyExams lists the user's exam schedules
func GetMyExams(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var exams []courseModels.ExamSchedule
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("scheduled_at desc").Find(&exams).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully!", exams)
}
