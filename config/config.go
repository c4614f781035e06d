package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the .env file if one exists. Environment variables that are
// already set take precedence.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Get returns the value of the environment variable or the fallback.
func Get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// StudentsEndpoint is the fixed URL the dashboard pipeline fetches student
// records from. It defaults to this server's own /api/students endpoint.
func StudentsEndpoint() string {
	if value := os.Getenv("STUDENTS_ENDPOINT"); value != "" {
		return value
	}
	return "http://127.0.0.1:" + Get("PORT", "8080") + "/api/students"
}
