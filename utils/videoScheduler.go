package utils

import (
	"disha/database"
	courseModels "disha/models/course"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeVideoScheduler sets up the video render job poller
func InitializeVideoScheduler() {
	log.Println("[VIDEO-SCHEDULER] Initializing video render poller...")

	c := cron.New()

	// Poll pending render jobs every 5 minutes
	c.AddFunc("*/5 * * * *", func() {
		PollPendingVideoJobs()
	})

	c.Start()
	log.Println("[VIDEO-SCHEDULER] Video render poller started")
}

// PollPendingVideoJobs checks open render jobs against the video API and
// copies finished video URLs onto their topics.
func PollPendingVideoJobs() {
	db := database.Database.Db

	var jobs []courseModels.VideoJob
	if err := db.Where("status IN ? AND is_deleted = false",
		[]string{"PENDING", "PROCESSING"}).Find(&jobs).Error; err != nil {
		log.Printf("[VIDEO-SCHEDULER] Error fetching open video jobs: %v", err)
		return
	}

	for _, job := range jobs {
		status, err := GetVideoRenderStatus(job.ProviderID)
		if err != nil {
			log.Printf("[VIDEO-SCHEDULER] Error polling job %s: %v", job.ProviderID, err)
			continue
		}

		switch status.Status {
		case "processing", "queued":
			if job.Status != "PROCESSING" {
				job.Status = "PROCESSING"
				db.Save(&job)
			}
		case "ready":
			job.Status = "READY"
			job.VideoURL = status.VideoURL
			db.Save(&job)

			if err := db.Model(&courseModels.Topic{}).Where("id = ?", job.TopicID).
				Update("video_url", status.VideoURL).Error; err != nil {
				log.Printf("[VIDEO-SCHEDULER] Error updating topic %d video: %v", job.TopicID, err)
				continue
			}
			log.Printf("[VIDEO-SCHEDULER] Video ready for topic %d", job.TopicID)
		case "failed":
			job.Status = "FAILED"
			job.Error = status.Error
			db.Save(&job)
			log.Printf("[VIDEO-SCHEDULER] Render failed for topic %d: %s", job.TopicID, status.Error)
		}
	}
}
