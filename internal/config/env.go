package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// variables already set in the environment take precedence over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.UsersFile = getEnv("EDUTERM_USERS_FILE", cfg.UsersFile)
	cfg.CoursesFile = getEnv("EDUTERM_COURSES_FILE", cfg.CoursesFile)
	cfg.AuditLogFile = getEnv("EDUTERM_AUDIT_LOG", cfg.AuditLogFile)
	cfg.CertificatesDir = getEnv("EDUTERM_CERTIFICATES_DIR", cfg.CertificatesDir)
	cfg.CertificateFormat = getEnv("EDUTERM_CERTIFICATE_FORMAT", cfg.CertificateFormat)
}

// getEnv fetches an environment variable or returns the fallback when the
// variable is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
