package controllers

import (
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModels "disha/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with pagination and optional search
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Page   *int   `json:"page"`
		Limit  *int   `json:"limit"`
		Search string `json:"search"`
		Tag    string `json:"tag"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_published = ? AND is_deleted = ? AND status = ?", true, false, "ACTIVE")

	if reqData.Search != "" {
		db = db.Where("title ILIKE ? OR description ILIKE ?", "%"+reqData.Search+"%", "%"+reqData.Search+"%")
	}
	if reqData.Tag != "" {
		db = db.Where("tags ILIKE ?", "%"+reqData.Tag+"%")
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// SectionOutline groups a course's published topics by section for display
type SectionOutline struct {
	Section string               `json:"section"`
	Topics  []courseModels.Topic `json:"topics"`
}

// buildSectionOutline groups ordered topics into their sections,
// preserving first-seen section order.
func buildSectionOutline(topics []courseModels.Topic) []SectionOutline {
	var outline []SectionOutline
	index := make(map[string]int)

	for _, topic := range topics {
		pos, seen := index[topic.Section]
		if !seen {
			index[topic.Section] = len(outline)
			outline = append(outline, SectionOutline{Section: topic.Section})
			pos = len(outline) - 1
		}
		outline[pos].Topics = append(outline[pos].Topics, topic)
	}
	return outline
}

// GetCourseDetails returns one published course with its sectioned topic outline
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var topics []courseModels.Topic
	database.Database.Db.
		Select("id, course_id, section, title, order_index, is_published").
		Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Order("order_index asc").Find(&topics)

	// Whether the caller is already enrolled
	var enrollment courseModels.Enrollment
	isEnrolled := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"outline":     buildSectionOutline(topics),
		"is_enrolled": isEnrolled,
		"enrollment":  enrollment,
	})
}

// GetTopicContent returns a topic's video, notes, transcript and quiz
// (without correct answers) for an enrolled user.
func GetTopicContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	topicID := c.Locals("topicID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var topic courseModels.Topic
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_published = ? AND is_deleted = ?",
		topicID, courseID, true, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	// Quiz questions with correct indexes stripped by the json:"-" tag
	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("topic_id = ? AND is_deleted = ?", topicID, false).
		Order("order_index asc").Find(&questions)

	var progress courseModels.TopicProgress
	isCompleted := database.Database.Db.Where("user_id = ? AND topic_id = ? AND is_deleted = ?",
		userID, topicID, false).First(&progress).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic content fetched successfully!", fiber.Map{
		"topic":        topic,
		"quiz":         questions,
		"is_completed": isCompleted,
	})
}

// MarkTopicViewed completes a quiz-less topic. Topics with quizzes only
// complete through a passed quiz submission.
func MarkTopicViewed(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	topicID := c.Locals("topicID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var topic courseModels.Topic
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_published = ? AND is_deleted = ?",
		topicID, courseID, true, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	var quizCount int64
	database.Database.Db.Model(&courseModels.QuizQuestion{}).
		Where("topic_id = ? AND is_deleted = ?", topicID, false).Count(&quizCount)
	if quizCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This topic has a quiz. Pass the quiz to complete it!", nil)
	}

	var existing courseModels.TopicProgress
	if err := database.Database.Db.Where("user_id = ? AND topic_id = ? AND is_deleted = ?",
		userID, topicID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic already completed!", existing)
	}

	progress := courseModels.TopicProgress{
		UserID:   userID,
		CourseID: uint(courseID),
		TopicID:  uint(topicID),
		Status:   "COMPLETED",
	}
	if err := database.Database.Db.Create(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark topic complete!", nil)
	}

	updateEnrollmentProgress(userID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic marked as completed!", progress)
}
