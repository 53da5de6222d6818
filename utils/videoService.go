package utils

import (
	"disha/config"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// VideoRenderStatus is the provider-side state of a synthesis job
type VideoRenderStatus struct {
	JobID    string `json:"job_id"`
	Status   string `json:"status"` // queued, processing, ready, failed
	VideoURL string `json:"video_url"`
	Error    string `json:"error"`
}

// RequestVideoRender submits a narration transcript to the hosted video API
// and returns the provider job id.
func RequestVideoRender(title, transcript string) (string, error) {
	if config.AppConfig.VideoApiKey == "" {
		return "", fmt.Errorf("video API key is not configured")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.VideoApiKey).
		SetBody(map[string]interface{}{
			"title":  title,
			"script": transcript,
			"voice":  "en-IN-neutral",
			"format": "mp4",
		}).
		Post(config.AppConfig.VideoApiURL + "/renders")
	if err != nil {
		log.Printf("Video API request failed: %v", err)
		return "", err
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Video API returned status %d: %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("video API returned status %d", resp.StatusCode())
	}

	var status VideoRenderStatus
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return "", fmt.Errorf("failed to parse video API response: %v", err)
	}
	if status.JobID == "" {
		return "", fmt.Errorf("video API returned no job id")
	}

	return status.JobID, nil
}

// GetVideoRenderStatus polls one synthesis job
func GetVideoRenderStatus(jobID string) (*VideoRenderStatus, error) {
	if config.AppConfig.VideoApiKey == "" {
		return nil, fmt.Errorf("video API key is not configured")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.VideoApiKey).
		Get(config.AppConfig.VideoApiURL + "/renders/" + jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch render status: %v", err)
	}
	if resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("video API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var status VideoRenderStatus
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return nil, fmt.Errorf("failed to parse render status: %v", err)
	}

	return &status, nil
}
