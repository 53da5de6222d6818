package utils

import (
	"disha/config"
	"disha/database"
	"disha/models"
	courseModels "disha/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeExamScheduler sets up the exam lifecycle scheduler
func InitializeExamScheduler() {
	log.Println("[EXAM-SCHEDULER] Initializing exam scheduler...")

	c := cron.New()

	// Sweep overdue exams every 10 minutes
	c.AddFunc("*/10 * * * *", func() {
		ExpireOverdueExams()
	})

	// Send reminders for today's exams daily at 8 AM
	c.AddFunc("0 8 * * *", func() {
		log.Println("[EXAM-SCHEDULER] Running daily exam reminder check...")
		SendTodaysExamReminders()
	})

	c.Start()
	log.Println("[EXAM-SCHEDULER] Exam scheduler started")
}

// ExpireOverdueExams expires SCHEDULED exams never started within their window
// and IN_PROGRESS exams whose window ran out without a submission.
func ExpireOverdueExams() {
	db := database.Database.Db
	now := time.Now()
	window := time.Duration(config.AppConfig.ExamWindowMinutes) * time.Minute

	// SCHEDULED exams whose start window has fully passed
	var missed []courseModels.ExamSchedule
	if err := db.Where("status = ? AND scheduled_at <= ? AND is_deleted = false",
		courseModels.ExamScheduled, now.Add(-window)).Find(&missed).Error; err != nil {
		log.Printf("[EXAM-SCHEDULER] Error fetching missed exams: %v", err)
		return
	}

	for _, exam := range missed {
		exam.Status = courseModels.ExamExpired
		if err := db.Save(&exam).Error; err != nil {
			log.Printf("[EXAM-SCHEDULER] Error expiring exam %d: %v", exam.ID, err)
			continue
		}
		log.Printf("[EXAM-SCHEDULER] Exam %d expired (never started)", exam.ID)
	}

	// IN_PROGRESS exams that ran over their window
	var overdue []courseModels.ExamSchedule
	if err := db.Where("status = ? AND started_at IS NOT NULL AND started_at <= ? AND is_deleted = false",
		courseModels.ExamInProgress, now.Add(-window)).Find(&overdue).Error; err != nil {
		log.Printf("[EXAM-SCHEDULER] Error fetching overdue exams: %v", err)
		return
	}

	for _, exam := range overdue {
		exam.Status = courseModels.ExamExpired
		if err := db.Save(&exam).Error; err != nil {
			log.Printf("[EXAM-SCHEDULER] Error expiring exam %d: %v", exam.ID, err)
			continue
		}
		log.Printf("[EXAM-SCHEDULER] Exam %d expired (time ran out)", exam.ID)
	}
}

// SendTodaysExamReminders emails users whose exam is scheduled for today
func SendTodaysExamReminders() {
	db := database.Database.Db
	now := time.Now()
	endOfDay := now.Truncate(24 * time.Hour).Add(24 * time.Hour)

	var exams []courseModels.ExamSchedule
	if err := db.Where("status = ? AND scheduled_at BETWEEN ? AND ? AND is_deleted = false",
		courseModels.ExamScheduled, now, endOfDay).Find(&exams).Error; err != nil {
		log.Printf("[EXAM-SCHEDULER] Error fetching today's exams: %v", err)
		return
	}

	log.Printf("[EXAM-SCHEDULER] Found %d exams scheduled today", len(exams))

	for _, exam := range exams {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = false", exam.UserID).First(&user).Error; err != nil {
			log.Printf("[EXAM-SCHEDULER] Error fetching user %d: %v", exam.UserID, err)
			continue
		}

		var course courseModels.Course
		if err := db.Where("id = ?", exam.CourseID).First(&course).Error; err != nil {
			continue
		}

		SendExamReminderEmail(user.Email, user.Name, course.Title, exam.ScheduledAt)
	}
}
