package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application, loaded from
// environment variables.
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Store   StoreConfig
	Storage StorageConfig
	Chat    ChatConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
}

type StoreConfig struct {
	// DatabaseURL selects the Postgres store when set; otherwise the
	// menu lives in MenuFile.
	DatabaseURL string
	MenuFile    string
}

type StorageConfig struct {
	UploadDir string

	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2Endpoint      string
	R2PublicBaseURL string
}

type ChatConfig struct {
	GeminiAPIKey string
	GeminiModel  string

	LLaMAAPIKey string
	LLaMAModel  string
	LLaMAAPIURL string

	ProviderTimeout time.Duration
}

// Load reads configuration from the environment. A .env file is
// honored outside production.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost:5173",
			}),
		},
		Auth: AuthConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			JWTSecret:     getEnv("JWT_SECRET", ""),
		},
		Store: StoreConfig{
			DatabaseURL: getEnv("DATABASE_URL", ""),
			MenuFile:    getEnv("MENU_FILE", "data/menu.json"),
		},
		Storage: StorageConfig{
			UploadDir:       getEnv("UPLOAD_DIR", "data/uploads"),
			R2AccessKey:     getEnv("R2_ACCESS_KEY", ""),
			R2SecretKey:     getEnv("R2_SECRET_KEY", ""),
			R2Bucket:        getEnv("R2_BUCKET_NAME", ""),
			R2Endpoint:      getEnv("R2_ENDPOINT", ""),
			R2PublicBaseURL: getEnv("R2_PUBLIC_BASE_URL", ""),
		},
		Chat: ChatConfig{
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			LLaMAAPIKey:     getEnv("LLAMA_API_KEY", ""),
			LLaMAModel:      getEnv("LLAMA_MODEL", ""),
			LLaMAAPIURL:     getEnv("LLAMA_API_URL", ""),
			ProviderTimeout: time.Duration(getEnvAsInt("CHAT_PROVIDER_TIMEOUT", 30)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration the process cannot run without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}
	return nil
}

// UseR2 reports whether all object-storage credentials are present.
func (c *Config) UseR2() bool {
	s := c.Storage
	return s.R2AccessKey != "" && s.R2SecretKey != "" && s.R2Bucket != "" &&
		s.R2Endpoint != "" && s.R2PublicBaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
