package adminController

import (
	"log"
	"time"

	"disha/database"
	"disha/middleware"
	"disha/models"
	"disha/utils"

	"github.com/gofiber/fiber/v2"
)

// validApplicationTransitions maps an application status to the
// statuses an admin may move it to.
var validApplicationTransitions = map[string][]string{
	"APPLIED":     {"SHORTLISTED", "REJECTED"},
	"SHORTLISTED": {"HIRED", "REJECTED"},
}

func canTransition(from, to string) bool {
	for _, allowed := range validApplicationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AdminCreateJob posts an opening for a partner company
func AdminCreateJob(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedJob").(*struct {
		CompanyID          uint   `json:"company_id"`
		Title              string `json:"title"`
		Description        string `json:"description"`
		Skills             string `json:"skills"`
		Location           string `json:"location"`
		SalaryMin          int64  `json:"salary_min"`
		SalaryMax          int64  `json:"salary_max"`
		ExperienceRequired int    `json:"experience_required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var company models.Company
	if err := database.Database.Db.
		Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.CompanyID, true, false).
		First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found or inactive!", nil)
	}

	job := models.Job{
		CompanyID:          company.ID,
		Title:              reqData.Title,
		Description:        reqData.Description,
		Skills:             reqData.Skills,
		Location:           reqData.Location,
		SalaryMin:          reqData.SalaryMin,
		SalaryMax:          reqData.SalaryMax,
		ExperienceRequired: reqData.ExperienceRequired,
		Status:             "OPEN",
	}

	if err := database.Database.Db.Create(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job created successfully!", job)
}

// AdminUpdateJob updates only the provided fields of a job
func AdminUpdateJob(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	jobID := c.Locals("jobID").(int)

	reqData, ok := c.Locals("validatedJobUpdate").(*struct {
		Title              *string `json:"title"`
		Description        *string `json:"description"`
		Skills             *string `json:"skills"`
		Location           *string `json:"location"`
		SalaryMin          *int64  `json:"salary_min"`
		SalaryMax          *int64  `json:"salary_max"`
		ExperienceRequired *int    `json:"experience_required"`
		Status             *string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var job models.Job
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", jobID, false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	if reqData.Title != nil {
		job.Title = *reqData.Title
	}
	if reqData.Description != nil {
		job.Description = *reqData.Description
	}
	if reqData.Skills != nil {
		job.Skills = *reqData.Skills
	}
	if reqData.Location != nil {
		job.Location = *reqData.Location
	}
	if reqData.SalaryMin != nil {
		job.SalaryMin = *reqData.SalaryMin
	}
	if reqData.SalaryMax != nil {
		job.SalaryMax = *reqData.SalaryMax
	}
	if reqData.ExperienceRequired != nil {
		job.ExperienceRequired = *reqData.ExperienceRequired
	}
	if reqData.Status != nil {
		job.Status = *reqData.Status
	}

	if err := database.Database.Db.Save(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job updated successfully!", job)
}

// AdminDeleteJob soft deletes a job posting
func AdminDeleteJob(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	jobID := c.Locals("jobID").(int)

	var job models.Job
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", jobID, false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	job.IsDeleted = true
	job.Status = "CLOSED"
	if err := database.Database.Db.Save(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job deleted successfully!", nil)
}

type ApplicationWithUser struct {
	models.JobApplication
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// AdminGetJobApplications lists applications for one job with applicant details
func AdminGetJobApplications(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	jobID := c.Locals("jobID").(int)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.JobApplication{}).
		Where("job_id = ? AND is_deleted = ?", jobID, false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var applications []models.JobApplication
	if err := db.Offset(offset).Limit(limit).Order("created_at asc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	enriched := make([]ApplicationWithUser, 0, len(applications))
	for _, application := range applications {
		var user struct {
			Name  string
			Email string
		}
		database.Database.Db.Table("users").Select("name, email").Where("id = ?", application.UserID).Scan(&user)

		enriched = append(enriched, ApplicationWithUser{
			JobApplication: application,
			UserName:       user.Name,
			UserEmail:      user.Email,
		})
	}

	response := map[string]interface{}{
		"applications": enriched,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", response)
}

// AdminReviewApplication moves an application through its status flow
// and emails the applicant about the decision.
func AdminReviewApplication(c *fiber.Ctx) error {
	admin, ok := requireAdmin(c)
	if !ok {
		return nil
	}

	applicationID := c.Locals("applicationID").(int)

	reqData, ok := c.Locals("validatedApplicationReview").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var application models.JobApplication
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", applicationID, false).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if !canTransition(application.Status, reqData.Status) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status transition from "+application.Status+" to "+reqData.Status+"!", nil)
	}

	now := time.Now()
	application.Status = reqData.Status
	application.ReviewedAt = &now
	application.ReviewedBy = &admin.ID

	if err := database.Database.Db.Save(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update application!", nil)
	}

	var applicant models.User
	var job models.Job
	if err := database.Database.Db.Where("id = ?", application.UserID).First(&applicant).Error; err == nil {
		if err := database.Database.Db.Preload("Company").Where("id = ?", application.JobID).First(&job).Error; err == nil {
			go func(email, name, jobTitle, companyName, status string) {
				if err := utils.SendApplicationStatusEmail(email, name, jobTitle, companyName, status); err != nil {
					log.Println("Failed to send application status email:", err)
				}
			}(applicant.Email, applicant.Name, job.Title, job.Company.Name, application.Status)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application reviewed successfully!", application)
}
