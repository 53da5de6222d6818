package jobValidator

import (
	"strconv"
	"strings"

	"disha/middleware"

	"github.com/gofiber/fiber/v2"
)

// JobID validates the :jobId route param
func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("jobId"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid jobId!", nil)
		}
		c.Locals("jobID", id)
		return c.Next()
	}
}

// JobList validator middleware
func JobList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int   `json:"page"`
			Limit    *int   `json:"limit"`
			Search   string `json:"search"`
			Location string `json:"location"`
			Skill    string `json:"skill"`
		})

		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)
		reqData.Page = &page
		reqData.Limit = &limit
		reqData.Search = c.Query("search")
		reqData.Location = c.Query("location")
		reqData.Skill = c.Query("skill")

		errors := make(map[string]string)

		// Validate Page
		if *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if *reqData.Limit < 1 || *reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobList", reqData)
		return c.Next()
	}
}

// Application validator middleware
func Application() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ResumeURL string `json:"resume_url"`
			CoverNote string `json:"cover_note"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.CoverNote)) > 2000 {
			errors["cover_note"] = "Cover note must be at most 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobApplication", reqData)
		return c.Next()
	}
}
