package adminController

import (
	"encoding/json"

	"disha/database"
	"disha/middleware"
	courseModel "disha/models/course"
	"disha/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateTopic adds a topic to a course
func AdminCreateTopic(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedTopic").(*struct {
		Section    string `json:"section"`
		Title      string `json:"title"`
		VideoURL   string `json:"video_url"`
		Transcript string `json:"transcript"`
		Notes      string `json:"notes"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModel.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	newTopic := courseModel.Topic{
		CourseID:   course.ID,
		Section:    reqData.Section,
		Title:      reqData.Title,
		VideoURL:   reqData.VideoURL,
		Transcript: reqData.Transcript,
		Notes:      reqData.Notes,
		OrderIndex: reqData.OrderIndex,
	}
	if newTopic.Section == "" {
		newTopic.Section = "General"
	}

	if err := database.Database.Db.Create(&newTopic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", newTopic)
}

// AdminUpdateTopic updates only the provided fields of a topic
func AdminUpdateTopic(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	topicID := c.Locals("topicID").(int)

	reqData, ok := c.Locals("validatedTopicUpdate").(*struct {
		Section     *string `json:"section"`
		Title       *string `json:"title"`
		VideoURL    *string `json:"video_url"`
		Transcript  *string `json:"transcript"`
		Notes       *string `json:"notes"`
		OrderIndex  *int    `json:"order_index"`
		IsPublished *bool   `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var topic courseModel.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	if reqData.Section != nil {
		topic.Section = *reqData.Section
	}
	if reqData.Title != nil {
		topic.Title = *reqData.Title
	}
	if reqData.VideoURL != nil {
		topic.VideoURL = *reqData.VideoURL
	}
	if reqData.Transcript != nil {
		topic.Transcript = *reqData.Transcript
	}
	if reqData.Notes != nil {
		topic.Notes = *reqData.Notes
	}
	if reqData.OrderIndex != nil {
		topic.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		topic.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

// AdminDeleteTopic soft deletes a topic
func AdminDeleteTopic(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	topicID := c.Locals("topicID").(int)

	var topic courseModel.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	topic.IsDeleted = true
	if err := database.Database.Db.Save(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic deleted successfully!", nil)
}

// AdminReorderTopics applies a new ordering to a course's topics
func AdminReorderTopics(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedTopicReorder").(*struct {
		TopicIDs []uint `json:"topic_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tx := database.Database.Db.Begin()
	for index, topicID := range reqData.TopicIDs {
		result := tx.Model(&courseModel.Topic{}).
			Where("id = ? AND course_id = ? AND is_deleted = ?", topicID, courseID, false).
			Update("order_index", index)
		if result.Error != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder topics!", nil)
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic does not belong to this course!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics reordered successfully!", nil)
}

// AdminGenerateOutline asks the AI service for a course outline and
// creates the resulting topics as unpublished drafts.
func AdminGenerateOutline(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	var course courseModel.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	outline, err := utils.GenerateCourseOutline(course.Title, course.Description)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate course outline!", nil)
	}

	var existingCount int64
	database.Database.Db.Model(&courseModel.Topic{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Count(&existingCount)

	topics := make([]courseModel.Topic, 0, len(outline))
	for index, entry := range outline {
		topics = append(topics, courseModel.Topic{
			CourseID:   course.ID,
			Section:    entry.Section,
			Title:      entry.Title,
			OrderIndex: int(existingCount) + index,
		})
	}

	if len(topics) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI returned an empty outline!", nil)
	}

	if err := database.Database.Db.Create(&topics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save generated topics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course outline generated successfully!", topics)
}

// AdminGenerateTopicContent fills a topic's notes and transcript from the AI service
func AdminGenerateTopicContent(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	topicID := c.Locals("topicID").(int)

	var topic courseModel.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	var course courseModel.Course
	if err := database.Database.Db.Where("id = ?", topic.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	notes, transcript, err := utils.GenerateTopicContent(course.Title, topic.Title)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate topic content!", nil)
	}

	topic.Notes = notes
	topic.Transcript = transcript
	if err := database.Database.Db.Save(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save topic content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic content generated successfully!", topic)
}

// AdminGenerateQuiz generates multiple choice questions for a topic
// from its transcript and stores them against the topic.
func AdminGenerateQuiz(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	topicID := c.Locals("topicID").(int)

	var topic courseModel.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	if topic.Transcript == "" && topic.Notes == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic has no content to generate a quiz from!", nil)
	}

	source := topic.Transcript
	if source == "" {
		source = topic.Notes
	}

	generated, err := utils.GenerateQuizQuestions(topic.Title, source, 5)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate quiz questions!", nil)
	}

	var existingCount int64
	database.Database.Db.Model(&courseModel.QuizQuestion{}).
		Where("topic_id = ? AND is_deleted = ?", topic.ID, false).
		Count(&existingCount)

	questions := make([]courseModel.QuizQuestion, 0, len(generated))
	for index, gen := range generated {
		optionsJSON, err := json.Marshal(gen.Options)
		if err != nil {
			continue
		}
		questions = append(questions, courseModel.QuizQuestion{
			TopicID:      topic.ID,
			QuestionText: gen.QuestionText,
			Options:      datatypes.JSON(optionsJSON),
			CorrectIndex: gen.CorrectIndex,
			Explanation:  gen.Explanation,
			OrderIndex:   int(existingCount) + index,
		})
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "AI returned no usable questions!", nil)
	}

	if err := database.Database.Db.Create(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz generated successfully!", questions)
}

// AdminRequestTopicVideo submits the topic transcript to the video
// synthesis API and records the job for the poller.
func AdminRequestTopicVideo(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	topicID := c.Locals("topicID").(int)

	var topic courseModel.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	if topic.Transcript == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic has no transcript to synthesize!", nil)
	}

	var pendingJob courseModel.VideoJob
	if err := database.Database.Db.
		Where("topic_id = ? AND status IN ? AND is_deleted = ?", topic.ID, []string{"PENDING", "PROCESSING"}, false).
		First(&pendingJob).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A video job is already running for this topic!", nil)
	}

	providerID, err := utils.RequestVideoRender(topic.Title, topic.Transcript)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to submit video render job!", nil)
	}

	job := courseModel.VideoJob{
		TopicID:    topic.ID,
		ProviderID: providerID,
		Status:     "PENDING",
	}
	if err := database.Database.Db.Create(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record video job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video render job submitted successfully!", job)
}

// AdminCreateQuizQuestion adds one question to a topic quiz
func AdminCreateQuizQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	topicID := c.Locals("topicID").(int)

	reqData, ok := c.Locals("validatedQuizQuestion").(*struct {
		QuestionText string   `json:"question_text"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
		OrderIndex   int      `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var topic courseModel.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	optionsJSON, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question := courseModel.QuizQuestion{
		TopicID:      topic.ID,
		QuestionText: reqData.QuestionText,
		Options:      datatypes.JSON(optionsJSON),
		CorrectIndex: reqData.CorrectIndex,
		Explanation:  reqData.Explanation,
		OrderIndex:   reqData.OrderIndex,
	}
	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminUpdateQuizQuestion updates only the provided fields of a quiz question
func AdminUpdateQuizQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	reqData, ok := c.Locals("validatedQuizQuestionUpdate").(*struct {
		QuestionText *string   `json:"question_text"`
		Options      *[]string `json:"options"`
		CorrectIndex *int      `json:"correct_index"`
		Explanation  *string   `json:"explanation"`
		OrderIndex   *int      `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var question courseModel.QuizQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if reqData.QuestionText != nil {
		question.QuestionText = *reqData.QuestionText
	}
	if reqData.Options != nil {
		optionsJSON, err := json.Marshal(*reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
		}
		question.Options = datatypes.JSON(optionsJSON)
	}
	if reqData.CorrectIndex != nil {
		question.CorrectIndex = *reqData.CorrectIndex
	}
	if reqData.Explanation != nil {
		question.Explanation = *reqData.Explanation
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	}

	var options []string
	if err := json.Unmarshal(question.Options, &options); err != nil || len(options) < 2 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least two options are required!", nil)
	}
	if question.CorrectIndex < 0 || question.CorrectIndex >= len(options) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Correct index must point to one of the options!", nil)
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuizQuestion soft deletes a quiz question
func AdminDeleteQuizQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	var question courseModel.QuizQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
