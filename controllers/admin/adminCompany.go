package adminController

import (
	"disha/database"
	"disha/middleware"
	"disha/models"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCompany registers a partner company
func AdminCreateCompany(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name     string `json:"name"`
		About    string `json:"about"`
		Website  string `json:"website"`
		LogoURL  string `json:"logo_url"`
		Industry string `json:"industry"`
		Location string `json:"location"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Company
	if err := database.Database.Db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A company with this name already exists!", nil)
	}

	company := models.Company{
		Name:     reqData.Name,
		About:    reqData.About,
		Website:  reqData.Website,
		LogoURL:  reqData.LogoURL,
		Industry: reqData.Industry,
		Location: reqData.Location,
		IsActive: true,
	}

	if err := database.Database.Db.Create(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully!", company)
}

// AdminUpdateCompany updates only the provided fields of a company
func AdminUpdateCompany(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	companyID := c.Locals("companyID").(int)

	reqData, ok := c.Locals("validatedCompanyUpdate").(*struct {
		Name     *string `json:"name"`
		About    *string `json:"about"`
		Website  *string `json:"website"`
		LogoURL  *string `json:"logo_url"`
		Industry *string `json:"industry"`
		Location *string `json:"location"`
		IsActive *bool   `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	if reqData.Name != nil {
		company.Name = *reqData.Name
	}
	if reqData.About != nil {
		company.About = *reqData.About
	}
	if reqData.Website != nil {
		company.Website = *reqData.Website
	}
	if reqData.LogoURL != nil {
		company.LogoURL = *reqData.LogoURL
	}
	if reqData.Industry != nil {
		company.Industry = *reqData.Industry
	}
	if reqData.IsActive != nil {
		company.IsActive = *reqData.IsActive
	}
	if reqData.Location != nil {
		company.Location = *reqData.Location
	}

	if err := database.Database.Db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully!", company)
}

// AdminDeleteCompany soft deletes a company and closes its open jobs
func AdminDeleteCompany(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	tx := database.Database.Db.Begin()

	company.IsDeleted = true
	company.IsActive = false
	if err := tx.Save(&company).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company!", nil)
	}

	if err := tx.Model(&models.Job{}).
		Where("company_id = ? AND status = ? AND is_deleted = ?", company.ID, "OPEN", false).
		Update("status", "CLOSED").Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close company jobs!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company deleted successfully!", nil)
}

// AdminListCompanies lists partner companies including inactive ones
func AdminListCompanies(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Company{}).Where("is_deleted = ?", false)

	if search := c.Query("search"); search != "" {
		db = db.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var companies []models.Company
	if err := db.Offset(offset).Limit(limit).Order("name asc").Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	response := map[string]interface{}{
		"companies": companies,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully!", response)
}
