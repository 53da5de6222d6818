package adminController

import (
	"disha/database"
	"disha/middleware"
	courseModel "disha/models/course"

	"github.com/gofiber/fiber/v2"
)

type CertificateWithHolder struct {
	courseModel.Certificate
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	CourseTitle string `json:"course_title"`
}

// AdminListCertificates lists issued certificates with holder details
func AdminListCertificates(c *fiber.Ctx) error {
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

	db := database.Database.Db.Model(&courseModel.Certificate{}).Where("is_deleted = ?", false)

	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}
	if c.Query("revoked") == "true" {
		db = db.Where("is_revoked = ?", true)
	}

	var total int64
	db.Count(&total)

	var certificates []courseModel.Certificate
	if err := db.Offset(offset).Limit(limit).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	enriched := make([]CertificateWithHolder, 0, len(certificates))
	for _, certificate := range certificates {
		var user struct {
			Name  string
			Email string
		}
		database.Database.Db.Table("users").Select("name, email").Where("id = ?", certificate.UserID).Scan(&user)

		var course struct {
			Title string
		}
		database.Database.Db.Table("courses").Select("title").Where("id = ?", certificate.CourseID).Scan(&course)

		enriched = append(enriched, CertificateWithHolder{
			Certificate: certificate,
			UserName:    user.Name,
			UserEmail:   user.Email,
			CourseTitle: course.Title,
		})
	}

	response := map[string]interface{}{
		"certificates": enriched,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", response)
}

// AdminRevokeCertificate revokes a certificate so verification fails
func AdminRevokeCertificate(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	certificateID := c.Locals("certificateID").(int)

	var certificate courseModel.Certificate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if certificate.IsRevoked {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate is already revoked!", nil)
	}

	certificate.IsRevoked = true
	if err := database.Database.Db.Save(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate revoked successfully!", certificate)
}
