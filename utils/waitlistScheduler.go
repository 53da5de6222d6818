package utils

import (
	"disha/database"
	"disha/models"
	courseModels "disha/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeWaitlistScheduler sets up the waitlist notification sweeper
func InitializeWaitlistScheduler() {
	log.Println("[WAITLIST-SCHEDULER] Initializing waitlist scheduler...")

	c := cron.New()

	// Daily at 9 AM: re-sweep waitlist rows whose publish notification
	// was missed (course published but NotifiedAt still null)
	c.AddFunc("0 9 * * *", func() {
		log.Println("[WAITLIST-SCHEDULER] Running daily waitlist sweep...")
		SweepUnnotifiedWaitlists()
	})

	c.Start()
	log.Println("[WAITLIST-SCHEDULER] Waitlist scheduler started - runs daily at 9 AM")
}

// NotifyWaitlistedUsers emails everyone waiting on a course and stamps
// NotifiedAt. Called async when an admin publishes a course.
func NotifyWaitlistedUsers(courseID uint) {
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		log.Printf("[WAITLIST-SCHEDULER] Error fetching course %d: %v", courseID, err)
		return
	}

	var entries []models.Waitlist
	if err := db.Where("course_id = ? AND notified_at IS NULL AND is_deleted = false", courseID).
		Find(&entries).Error; err != nil {
		log.Printf("[WAITLIST-SCHEDULER] Error fetching waitlist for course %d: %v", courseID, err)
		return
	}

	log.Printf("[WAITLIST-SCHEDULER] Notifying %d waitlisted users for course %d", len(entries), courseID)

	for _, entry := range entries {
		var user models.User
		if err := db.Select("name, email").Where("id = ? AND is_deleted = false", entry.UserID).
			First(&user).Error; err != nil || user.Email == "" {
			continue
		}

		if err := SendCoursePublishedEmail(user.Email, user.Name, course.Title); err != nil {
			// Left unstamped so the daily sweep retries it
			continue
		}

		now := time.Now()
		entry.NotifiedAt = &now
		db.Save(&entry)
	}
}

// SweepUnnotifiedWaitlists retries publish notifications that failed earlier
func SweepUnnotifiedWaitlists() {
	db := database.Database.Db

	var courseIDs []uint
	if err := db.Model(&models.Waitlist{}).
		Joins("JOIN courses ON courses.id = waitlists.course_id").
		Where("waitlists.notified_at IS NULL AND waitlists.is_deleted = false AND courses.is_published = true").
		Distinct().
		Pluck("waitlists.course_id", &courseIDs).Error; err != nil {
		log.Printf("[WAITLIST-SCHEDULER] Error fetching pending waitlists: %v", err)
		return
	}

	log.Printf("[WAITLIST-SCHEDULER] Found %d courses with pending notifications", len(courseIDs))

	for _, id := range courseIDs {
		NotifyWaitlistedUsers(id)
	}
}
