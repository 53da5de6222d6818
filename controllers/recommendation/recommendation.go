package recommendationController

import (
	"disha/database"
	"disha/middleware"
	"disha/models"
	courseModels "disha/models/course"
	"disha/utils"
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// fallbackSuggestions maps assessment categories to canned career
// directions, used when the AI API is unavailable.
var fallbackSuggestions = map[string]utils.CareerSuggestion{
	models.CategoryAnalytical: {
		CareerTitle: "Data Analyst",
		Rationale:   "Strong analytical scores point toward roles built on reasoning over data.",
		CourseTags:  []string{"data", "analytics", "sql"},
		MatchScore:  70,
	},
	models.CategoryVerbal: {
		CareerTitle: "Content & Communications Specialist",
		Rationale:   "Strong verbal scores suit roles centered on writing and communication.",
		CourseTags:  []string{"communication", "writing", "marketing"},
		MatchScore:  70,
	},
	models.CategoryQuantitative: {
		CareerTitle: "Financial Analyst",
		Rationale:   "Strong quantitative scores fit numerically intensive work.",
		CourseTags:  []string{"finance", "statistics", "excel"},
		MatchScore:  70,
	},
	models.CategoryCreative: {
		CareerTitle: "UI/UX Designer",
		Rationale:   "Strong creative scores suit design-led product roles.",
		CourseTags:  []string{"design", "ux", "creativity"},
		MatchScore:  70,
	},
	models.CategoryTechnical: {
		CareerTitle: "Software Developer",
		Rationale:   "Strong technical scores fit hands-on engineering roles.",
		CourseTags:  []string{"programming", "software", "web"},
		MatchScore:  70,
	},
}

// buildFallback returns rule-based suggestions for the strongest categories
func buildFallback(strengths []string) []utils.CareerSuggestion {
	suggestions := make([]utils.CareerSuggestion, 0, len(strengths))
	for _, cat := range strengths {
		if s, ok := fallbackSuggestions[cat]; ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}

// GenerateRecommendations builds career recommendations from the user's
// latest assessment attempt, via the AI API with a rule-based fallback.
func GenerateRecommendations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var attempt models.AssessmentAttempt
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").First(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the aptitude assessment first!", nil)
	}

	strengths := utils.SplitTags(attempt.TopCategories)
	if len(strengths) > 2 {
		strengths = strengths[:2]
	}
	for i := range strengths {
		strengths[i] = strings.ToUpper(strengths[i])
	}
	interests := utils.SplitTags(user.Interests)

	source := "AI"
	suggestions, err := utils.GenerateCareerRecommendations(strengths, interests)
	if err != nil {
		log.Printf("AI recommendation generation failed for user %d: %v", userID, err)
		suggestions = buildFallback(strengths)
		source = "FALLBACK"
	}

	if len(suggestions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate recommendations!", nil)
	}

	// Replace previous recommendations
	tx := database.Database.Db.Begin()
	if err := tx.Model(&models.Recommendation{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh recommendations!", nil)
	}

	records := make([]models.Recommendation, 0, len(suggestions))
	for _, s := range suggestions {
		tagsJSON, _ := json.Marshal(s.CourseTags)
		records = append(records, models.Recommendation{
			UserID:      userID,
			AttemptID:   attempt.ID,
			CareerTitle: s.CareerTitle,
			Rationale:   s.Rationale,
			CourseTags:  datatypes.JSON(tagsJSON),
			MatchScore:  s.MatchScore,
			Source:      source,
		})
	}

	if err := tx.Create(&records).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save recommendations!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations generated successfully!", fiber.Map{
		"recommendations": records,
		"source":          source,
	})
}

// GetRecommendations lists the user's current recommendations with the
// published courses matching their tags.
func GetRecommendations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var recommendations []models.Recommendation
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("match_score desc").Find(&recommendations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recommendations!", nil)
	}

	if len(recommendations) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No recommendations yet. Generate them first!", nil)
	}

	type RecommendationWithCourses struct {
		models.Recommendation
		Courses []courseModels.Course `json:"courses"`
	}

	result := make([]RecommendationWithCourses, len(recommendations))
	for i, rec := range recommendations {
		var tags []string
		if err := json.Unmarshal(rec.CourseTags, &tags); err != nil {
			tags = nil
		}

		matched := []courseModels.Course{}
		if len(tags) > 0 {
			var courses []courseModels.Course
			database.Database.Db.Where("is_published = ? AND is_deleted = ? AND status = ?", true, false, "ACTIVE").
				Find(&courses)
			for _, course := range courses {
				courseTags := utils.SplitTags(course.Tags)
				if tagsOverlap(tags, courseTags) {
					matched = append(matched, course)
				}
			}
		}

		result[i] = RecommendationWithCourses{
			Recommendation: rec,
			Courses:        matched,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully!", result)
}

// tagsOverlap reports whether the two tag lists share any tag
func tagsOverlap(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, tag := range a {
		set[strings.ToLower(strings.TrimSpace(tag))] = true
	}
	for _, tag := range b {
		if set[strings.ToLower(strings.TrimSpace(tag))] {
			return true
		}
	}
	return false
}
