package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	EmailSender string
	SendgridKey string
	AppName     string

	AiApiURL string // Chat-completions endpoint for content/recommendation generation
	AiApiKey string
	AiModel  string

	VideoApiURL string // Hosted video synthesis API
	VideoApiKey string

	ExamPassPercent   int // Minimum percentage to pass a final exam
	ExamQuestionCount int // Questions generated per exam
	ExamWindowMinutes int // How long a started exam stays open
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", "noreply@disha.example"),
		SendgridKey: getEnv("SENDGRID_API_KEY", ""),
		AppName:     getEnv("APP_NAME", "Disha Learning"),

		AiApiURL: getEnv("AI_API_URL", "https://api.aimlapi.com/chat/completions"),
		AiApiKey: getEnv("AI_API_KEY", ""),
		AiModel:  getEnv("AI_MODEL", "gpt-4o-mini"),

		VideoApiURL: getEnv("VIDEO_API_URL", "https://api.synthemedia.io/v1"),
		VideoApiKey: getEnv("VIDEO_API_KEY", ""),

		ExamPassPercent:   getEnvInt("EXAM_PASS_PERCENT", 60),
		ExamQuestionCount: getEnvInt("EXAM_QUESTION_COUNT", 15),
		ExamWindowMinutes: getEnvInt("EXAM_WINDOW_MINUTES", 45),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AiApiKey == "" {
		log.Println("Warning: AI_API_KEY is not set. Content generation will use fallbacks.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
