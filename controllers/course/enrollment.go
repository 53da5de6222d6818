package controllers

import (
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModels "disha/models/course"
	"disha/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated course ID
	courseID := c.Locals("courseID").(int)

	// Check if course exists, is published and active
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ? AND status = ?",
		courseID, false, true, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	var totalTopics int64
	database.Database.Db.Model(&courseModels.Topic{}).
		Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).Count(&totalTopics)

	// Create enrollment
	enrollment := courseModels.Enrollment{
		UserID:      userID,
		CourseID:    uint(courseID),
		Status:      "ACTIVE",
		TotalTopics: int(totalTopics),
	}

	// Save to database with transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	go func(email, name, courseName string) {
		if err := utils.SendEnrollmentEmail(email, name, courseName); err != nil {
			log.Printf("Failed to send enrollment email to %s: %v", email, err)
		}
	}(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the user's enrollments with course info
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseName        string `json:"course_name"`
		CourseDescription string `json:"course_description"`
		CourseAuthor      string `json:"course_author"`
		ThumbnailURL      string `json:"thumbnail_url"`
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, enrollment := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:        enrollment,
			CourseName:        course.Title,
			CourseDescription: course.Description,
			CourseAuthor:      course.Author,
			ThumbnailURL:      course.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// GetCourseProgress returns the user's per-section progress in a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Get completed topic IDs
	var completed []courseModels.TopicProgress
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).Find(&completed)

	completedIDs := make([]uint, len(completed))
	completedSet := make(map[uint]bool, len(completed))
	for i, progress := range completed {
		completedIDs[i] = progress.TopicID
		completedSet[progress.TopicID] = true
	}

	// Section-wise rollup over published topics
	var topics []courseModels.Topic
	database.Database.Db.Where("course_id = ? AND is_published = ? AND is_deleted = ?",
		courseID, true, false).Order("order_index asc").Find(&topics)

	type SectionProgress struct {
		Section         string  `json:"section"`
		TotalTopics     int     `json:"total_topics"`
		CompletedTopics int     `json:"completed_topics"`
		Progress        float64 `json:"progress"`
	}

	var sections []SectionProgress
	index := make(map[string]int)
	for _, topic := range topics {
		pos, seen := index[topic.Section]
		if !seen {
			index[topic.Section] = len(sections)
			sections = append(sections, SectionProgress{Section: topic.Section})
			pos = len(sections) - 1
		}
		sections[pos].TotalTopics++
		if completedSet[topic.ID] {
			sections[pos].CompletedTopics++
		}
	}
	for i := range sections {
		if sections[i].TotalTopics > 0 {
			sections[i].Progress = float64(sections[i].CompletedTopics) / float64(sections[i].TotalTopics) * 100
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":       enrollment,
		"completed_ids":    completedIDs,
		"section_progress": sections,
	})
}
