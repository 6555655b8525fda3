package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Payroll    PayrollConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds the business rules of the payroll engine that are
// deployment-specific rather than fixed logic.
type PayrollConfig struct {
	// LateDaysPerDeductible is N in "every N late arrivals cost one day of pay".
	LateDaysPerDeductible int
	// AllowRegenerate lets an admin overwrite a pending salary record for a
	// period instead of getting a conflict. Paid records are never overwritten.
	AllowRegenerate bool
}

type AttendanceConfig struct {
	// LateGraceMinutes after shift start before a check-in counts as late.
	LateGraceMinutes int
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hunarmand-erp"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	lateDaysPerDeductible, err := strconv.Atoi(getEnv("PAYROLL_LATE_DAYS_PER_DEDUCTIBLE", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LATE_DAYS_PER_DEDUCTIBLE: %w", err)
	}

	config.Payroll = PayrollConfig{
		LateDaysPerDeductible: lateDaysPerDeductible,
		AllowRegenerate:       getEnv("PAYROLL_ALLOW_REGENERATE", "false") == "true",
	}

	// Attendance configuration
	graceMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_LATE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_GRACE_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		LateGraceMinutes: graceMinutes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.LateDaysPerDeductible < 1 {
		return fmt.Errorf("PAYROLL_LATE_DAYS_PER_DEDUCTIBLE must be at least 1")
	}
	if c.Attendance.LateGraceMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_LATE_GRACE_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
