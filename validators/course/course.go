package courseValidator

import (
	"strconv"
	"time"

	"disha/middleware"

	"github.com/gofiber/fiber/v2"
)

// paramID validates a positive numeric route param and stores it in Locals
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

// CourseID validates the :courseId route param
func CourseID() fiber.Handler {
	return paramID("courseId", "courseID")
}

// TopicID validates the :topicId route param
func TopicID() fiber.Handler {
	return paramID("topicId", "topicID")
}

// ExamID validates the :examId route param
func ExamID() fiber.Handler {
	return paramID("examId", "examID")
}

// QuestionID validates the :questionId route param
func QuestionID() fiber.Handler {
	return paramID("questionId", "questionID")
}

// CourseList validator middleware
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int   `json:"page"`
			Limit  *int   `json:"limit"`
			Search string `json:"search"`
			Tag    string `json:"tag"`
		})

		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)
		reqData.Page = &page
		reqData.Limit = &limit
		reqData.Search = c.Query("search")
		reqData.Tag = c.Query("tag")

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

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// QuizSubmit validator middleware
func QuizSubmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[uint]int `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}
		for _, selected := range reqData.Answers {
			if selected < 0 {
				errors["answers"] = "Answer indexes cannot be negative!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}

// ExamSchedule validator middleware
func ExamSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ScheduledAt time.Time `json:"scheduled_at"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ScheduledAt.IsZero() {
			errors["scheduled_at"] = "Scheduled time is required!"
		} else if reqData.ScheduledAt.Before(time.Now()) {
			errors["scheduled_at"] = "Scheduled time must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExamSchedule", reqData)
		return c.Next()
	}
}

// ExamSubmit validator middleware
func ExamSubmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[uint]int `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for _, selected := range reqData.Answers {
			if selected < 0 {
				errors["answers"] = "Answer indexes cannot be negative!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExamSubmit", reqData)
		return c.Next()
	}
}
