package adminController

import (
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModel "disha/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboard returns platform-wide counters for the admin console
func AdminDashboard(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "USER", false).Count(&totalUsers)

	var totalCourses int64
	db.Model(&courseModel.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var publishedCourses int64
	db.Model(&courseModel.Course{}).Where("is_published = ? AND is_deleted = ?", true, false).Count(&publishedCourses)

	var totalEnrollments int64
	db.Model(&courseModel.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	var completedEnrollments int64
	db.Model(&courseModel.Enrollment{}).Where("status = ? AND is_deleted = ?", "COMPLETED", false).Count(&completedEnrollments)

	var assessmentsTaken int64
	db.Model(&models.AssessmentAttempt{}).Where("is_deleted = ?", false).Count(&assessmentsTaken)

	var examsScheduled int64
	db.Model(&courseModel.ExamSchedule{}).
		Where("status IN ? AND is_deleted = ?", []string{courseModel.ExamScheduled, courseModel.ExamInProgress}, false).
		Count(&examsScheduled)

	var examsPassed int64
	db.Model(&courseModel.ExamSchedule{}).Where("passed = ? AND is_deleted = ?", true, false).Count(&examsPassed)

	certificatesByLevel := map[string]int64{}
	for _, level := range []string{courseModel.LevelBronze, courseModel.LevelSilver, courseModel.LevelGold, courseModel.LevelPlatinum} {
		var count int64
		db.Model(&courseModel.Certificate{}).
			Where("level = ? AND is_revoked = ? AND is_deleted = ?", level, false, false).
			Count(&count)
		certificatesByLevel[level] = count
	}

	var openJobs int64
	db.Model(&models.Job{}).Where("status = ? AND is_deleted = ?", "OPEN", false).Count(&openJobs)

	var pendingApplications int64
	db.Model(&models.JobApplication{}).Where("status = ? AND is_deleted = ?", "APPLIED", false).Count(&pendingApplications)

	var waitlistEntries int64
	db.Model(&models.Waitlist{}).Where("notified_at IS NULL AND is_deleted = ?", false).Count(&waitlistEntries)

	stats := map[string]interface{}{
		"total_users":           totalUsers,
		"total_courses":         totalCourses,
		"published_courses":     publishedCourses,
		"total_enrollments":     totalEnrollments,
		"completed_enrollments": completedEnrollments,
		"assessments_taken":     assessmentsTaken,
		"exams_scheduled":       examsScheduled,
		"exams_passed":          examsPassed,
		"certificates_by_level": certificatesByLevel,
		"open_jobs":             openJobs,
		"pending_applications":  pendingApplications,
		"pending_waitlists":     waitlistEntries,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
