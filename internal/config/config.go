package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Pipeline
	GeneratedDir  string
	CourseFile    string
	FirstLessonID int
	LastLessonID  int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeneratedDir:  getEnvOrDefault("GENERATED_DIR", "generated"),
		CourseFile:    getEnvOrDefault("COURSE_FILE", "OYAN App/OYAN App/CourseStructure.swift"),
		FirstLessonID: getEnvAsIntOrDefault("FIRST_LESSON_ID", 5),
		LastLessonID:  getEnvAsIntOrDefault("LAST_LESSON_ID", 11),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
