package jobController

import (
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModels "disha/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetOpenJobs lists open jobs with pagination and optional filters
func GetOpenJobs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedJobList").(*struct {
		Page     *int   `json:"page"`
		Limit    *int   `json:"limit"`
		Search   string `json:"search"`
		Location string `json:"location"`
		Skill    string `json:"skill"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Job{}).
		Where("status = ? AND is_deleted = ?", "OPEN", false)

	if reqData.Search != "" {
		db = db.Where("title ILIKE ? OR description ILIKE ?", "%"+reqData.Search+"%", "%"+reqData.Search+"%")
	}
	if reqData.Location != "" {
		db = db.Where("location ILIKE ?", "%"+reqData.Location+"%")
	}
	if reqData.Skill != "" {
		db = db.Where("skills ILIKE ?", "%"+reqData.Skill+"%")
	}

	var total int64
	db.Count(&total)

	var jobs []models.Job
	if err := db.Preload("Company").Offset(offset).Limit(limit).Order("created_at desc").Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}

	response := map[string]interface{}{
		"jobs": jobs,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", response)
}

// GetJobDetails returns one open job with its company
func GetJobDetails(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(int)

	var job models.Job
	if err := database.Database.Db.Preload("Company").
		Where("id = ? AND is_deleted = ?", jobID, false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job details fetched successfully!", job)
}

// ApplyToJob files an application. Only certificate holders may apply.
func ApplyToJob(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	jobID := c.Locals("jobID").(int)

	reqData, ok := c.Locals("validatedJobApplication").(*struct {
		ResumeURL string `json:"resume_url"`
		CoverNote string `json:"cover_note"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var job models.Job
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = ?",
		jobID, "OPEN", false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found or closed!", nil)
	}

	// Only certified users can apply to partner jobs
	var certCount int64
	database.Database.Db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND is_revoked = ? AND is_deleted = ?", userID, false, false).Count(&certCount)
	if certCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Earn at least one certificate before applying to jobs!", nil)
	}

	// Duplicate application check
	var existing models.JobApplication
	if err := database.Database.Db.Where("job_id = ? AND user_id = ? AND is_deleted = ?",
		jobID, userID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already applied to this job!", nil)
	}

	resumeURL := reqData.ResumeURL
	if resumeURL == "" {
		resumeURL = user.ResumeURL
	}
	if resumeURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A resume is required to apply!", nil)
	}

	application := models.JobApplication{
		JobID:     uint(jobID),
		UserID:    userID,
		ResumeURL: resumeURL,
		CoverNote: reqData.CoverNote,
		Status:    "APPLIED",
	}

	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Error saving job application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply to job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// GetMyApplications lists the user's job applications with job and company info
func GetMyApplications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var applications []models.JobApplication
	if err := database.Database.Db.Preload("Job").Preload("Job.Company").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}
