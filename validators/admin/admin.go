package adminValidator

import (
	"strconv"
	"strings"

	"disha/middleware"

	"github.com/gofiber/fiber/v2"
)

func paramID(paramName, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(paramName))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+paramName+"!", nil)
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}

// UserID validates the :userId route param
func UserID() fiber.Handler {
	return paramID("userId", "targetUserID")
}

// CompanyID validates the :companyId route param
func CompanyID() fiber.Handler {
	return paramID("companyId", "companyID")
}

// ApplicationID validates the :applicationId route param
func ApplicationID() fiber.Handler {
	return paramID("applicationId", "applicationID")
}

// CertificateID validates the :certificateId route param
func CertificateID() fiber.Handler {
	return paramID("certificateId", "certificateID")
}

// QuestionIDParam validates the :questionId route param
func QuestionIDParam() fiber.Handler {
	return paramID("questionId", "questionID")
}

// UserList validator middleware
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int   `json:"page"`
			Limit  *int   `json:"limit"`
			Search string `json:"search"`
		})

		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)
		reqData.Page = &page
		reqData.Limit = &limit
		reqData.Search = c.Query("search")

		errors := make(map[string]string)

		if *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if *reqData.Limit < 1 || *reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}

var courseLevels = map[string]bool{"BEGINNER": true, "INTERMEDIATE": true, "ADVANCED": true}
var courseStatuses = map[string]bool{"DRAFT": true, "ACTIVE": true, "INACTIVE": true}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Author       string `json:"author"`
			Tags         string `json:"tags"`
			Duration     int64  `json:"duration"`
			Level        string `json:"level"`
			ThumbnailURL string `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if reqData.Level == "" {
			reqData.Level = "BEGINNER"
		} else if !courseLevels[reqData.Level] {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        *string `json:"title"`
			Description  *string `json:"description"`
			Author       *string `json:"author"`
			Tags         *string `json:"tags"`
			Duration     *int64  `json:"duration"`
			Level        *string `json:"level"`
			Status       *string `json:"status"`
			ThumbnailURL *string `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Level != nil && !courseLevels[*reqData.Level] {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}
		if reqData.Status != nil && !courseStatuses[*reqData.Status] {
			errors["status"] = "Status must be DRAFT, ACTIVE or INACTIVE!"
		}
		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateTopic validator middleware
func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Section    string `json:"section"`
			Title      string `json:"title"`
			VideoURL   string `json:"video_url"`
			Transcript string `json:"transcript"`
			Notes      string `json:"notes"`
			OrderIndex int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

// UpdateTopic validator middleware
func UpdateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Section     *string `json:"section"`
			Title       *string `json:"title"`
			VideoURL    *string `json:"video_url"`
			Transcript  *string `json:"transcript"`
			Notes       *string `json:"notes"`
			OrderIndex  *int    `json:"order_index"`
			IsPublished *bool   `json:"is_published"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopicUpdate", reqData)
		return c.Next()
	}
}

// ReorderTopics validator middleware
func ReorderTopics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TopicIDs []uint `json:"topic_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.TopicIDs) == 0 {
			errors["topic_ids"] = "Topic ids are required!"
		}
		seen := make(map[uint]bool, len(reqData.TopicIDs))
		for _, id := range reqData.TopicIDs {
			if seen[id] {
				errors["topic_ids"] = "Topic ids must be unique!"
				break
			}
			seen[id] = true
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopicReorder", reqData)
		return c.Next()
	}
}

// validateQuestionShape checks the shared question constraints
func validateQuestionShape(questionText string, options []string, correctIndex int, errors map[string]string) {
	if len(strings.TrimSpace(questionText)) < 5 {
		errors["question_text"] = "Question text must be at least 5 characters long!"
	}
	if len(options) < 2 {
		errors["options"] = "At least two options are required!"
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		errors["correct_index"] = "Correct index must point to one of the options!"
	}
}

// CreateQuizQuestion validator middleware
func CreateQuizQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionText string   `json:"question_text"`
			Options      []string `json:"options"`
			CorrectIndex int      `json:"correct_index"`
			Explanation  string   `json:"explanation"`
			OrderIndex   int      `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateQuestionShape(reqData.QuestionText, reqData.Options, reqData.CorrectIndex, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuizQuestion validator middleware
func UpdateQuizQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionText *string   `json:"question_text"`
			Options      *[]string `json:"options"`
			CorrectIndex *int      `json:"correct_index"`
			Explanation  *string   `json:"explanation"`
			OrderIndex   *int      `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuestionText != nil && len(strings.TrimSpace(*reqData.QuestionText)) < 5 {
			errors["question_text"] = "Question text must be at least 5 characters long!"
		}
		if reqData.Options != nil && len(*reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}
		if reqData.CorrectIndex != nil && *reqData.CorrectIndex < 0 {
			errors["correct_index"] = "Correct index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizQuestionUpdate", reqData)
		return c.Next()
	}
}

// CreateCompany validator middleware
func CreateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			About    string `json:"about"`
			Website  string `json:"website"`
			LogoURL  string `json:"logo_url"`
			Industry string `json:"industry"`
			Location string `json:"location"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Company name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompany", reqData)
		return c.Next()
	}
}

// UpdateCompany validator middleware
func UpdateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     *string `json:"name"`
			About    *string `json:"about"`
			Website  *string `json:"website"`
			LogoURL  *string `json:"logo_url"`
			Industry *string `json:"industry"`
			Location *string `json:"location"`
			IsActive *bool   `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 2 {
			errors["name"] = "Company name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompanyUpdate", reqData)
		return c.Next()
	}
}

var jobStatuses = map[string]bool{"OPEN": true, "CLOSED": true}

// CreateJob validator middleware
func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyID          uint   `json:"company_id"`
			Title              string `json:"title"`
			Description        string `json:"description"`
			Skills             string `json:"skills"`
			Location           string `json:"location"`
			SalaryMin          int64  `json:"salary_min"`
			SalaryMax          int64  `json:"salary_max"`
			ExperienceRequired int    `json:"experience_required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompanyID == 0 {
			errors["company_id"] = "Company id is required!"
		}
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.SalaryMin < 0 || reqData.SalaryMax < 0 {
			errors["salary"] = "Salary cannot be negative!"
		}
		if reqData.SalaryMax > 0 && reqData.SalaryMin > reqData.SalaryMax {
			errors["salary"] = "Minimum salary cannot exceed maximum salary!"
		}
		if reqData.ExperienceRequired < 0 {
			errors["experience_required"] = "Experience cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

// UpdateJob validator middleware
func UpdateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title              *string `json:"title"`
			Description        *string `json:"description"`
			Skills             *string `json:"skills"`
			Location           *string `json:"location"`
			SalaryMin          *int64  `json:"salary_min"`
			SalaryMax          *int64  `json:"salary_max"`
			ExperienceRequired *int    `json:"experience_required"`
			Status             *string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Status != nil && !jobStatuses[*reqData.Status] {
			errors["status"] = "Status must be OPEN or CLOSED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobUpdate", reqData)
		return c.Next()
	}
}

var reviewStatuses = map[string]bool{"SHORTLISTED": true, "REJECTED": true, "HIRED": true}

// ReviewApplication validator middleware
func ReviewApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !reviewStatuses[reqData.Status] {
			errors["status"] = "Status must be SHORTLISTED, REJECTED or HIRED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplicationReview", reqData)
		return c.Next()
	}
}

// CreateAptitudeQuestion validator middleware
func CreateAptitudeQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionText string   `json:"question_text"`
			Category     string   `json:"category"`
			Options      []string `json:"options"`
			CorrectIndex int      `json:"correct_index"`
			OrderIndex   int      `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateQuestionShape(reqData.QuestionText, reqData.Options, reqData.CorrectIndex, errors)

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAptitudeQuestion", reqData)
		return c.Next()
	}
}

// UpdateAptitudeQuestion validator middleware
func UpdateAptitudeQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionText *string   `json:"question_text"`
			Category     *string   `json:"category"`
			Options      *[]string `json:"options"`
			CorrectIndex *int      `json:"correct_index"`
			OrderIndex   *int      `json:"order_index"`
			IsActive     *bool     `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuestionText != nil && len(strings.TrimSpace(*reqData.QuestionText)) < 5 {
			errors["question_text"] = "Question text must be at least 5 characters long!"
		}
		if reqData.Options != nil && len(*reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}
		if reqData.CorrectIndex != nil && *reqData.CorrectIndex < 0 {
			errors["correct_index"] = "Correct index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAptitudeQuestionUpdate", reqData)
		return c.Next()
	}
}
