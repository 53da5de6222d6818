package waitlistController

import (
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModels "disha/models/course"

	"github.com/gofiber/fiber/v2"
)

// JoinWaitlist registers interest in a course that is not yet published
func JoinWaitlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is already published. Enroll directly!", nil)
	}

	var existing models.Waitlist
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already on the waitlist for this course!", nil)
	}

	entry := models.Waitlist{
		UserID:   userID,
		CourseID: uint(courseID),
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join waitlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Joined waitlist successfully!", entry)
}

// LeaveWaitlist removes the user's waitlist entry for a course
func LeaveWaitlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var entry models.Waitlist
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		userID, courseID, false).First(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Waitlist entry not found!", nil)
	}

	entry.IsDeleted = true
	if err := database.Database.Db.Save(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to leave waitlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Left waitlist successfully!", nil)
}

// GetMyWaitlist lists the user's waitlist entries with course info
func GetMyWaitlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var entries []models.Waitlist
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch waitlist!", nil)
	}

	type WaitlistWithCourse struct {
		models.Waitlist
		CourseName  string `json:"course_name"`
		IsPublished bool   `json:"is_published"`
	}

	result := make([]WaitlistWithCourse, len(entries))
	for i, entry := range entries {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", entry.CourseID).First(&course)
		result[i] = WaitlistWithCourse{
			Waitlist:    entry,
			CourseName:  course.Title,
			IsPublished: course.IsPublished,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Waitlist fetched successfully!", result)
}
