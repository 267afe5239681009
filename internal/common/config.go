package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
	IPFS     IPFSConfig
	Worker   WorkerConfig
	Webhook  WebhookConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	UploadDir       string
	SyncWaitTimeout time.Duration
}

// DatabaseConfig holds database-related configuration. An empty DSN selects
// the embedded SQLite store at SQLitePath.
type DatabaseConfig struct {
	DSN             string
	SQLitePath      string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
	HealthTimeout   time.Duration
}

// LLMConfig holds extraction-engine configuration
type LLMConfig struct {
	BaseURL        string
	Model          string
	Temperature    float64
	Timeout        time.Duration
	MaxAttempts    int
	MaxPromptChars int
}

// IPFSConfig holds content-addressed storage configuration
type IPFSConfig struct {
	NodeURL   string
	PinataJWT string
	Timeout   time.Duration
}

// WorkerConfig holds job worker pool configuration
type WorkerConfig struct {
	Count         int
	PollInterval  time.Duration
	MaxRetries    int
	MaxProcessing time.Duration
	PdftotextBin  string
}

// WebhookConfig holds webhook dispatcher configuration
type WebhookConfig struct {
	MaxAttempts int
	Timeout     time.Duration
	BackoffBase time.Duration
	QueueSize   int
	Workers     int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			UploadDir:       getEnv("UPLOAD_DIR", "./data/uploads"),
			SyncWaitTimeout: getEnvAsDuration("SYNC_WAIT_TIMEOUT", 5*time.Minute),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			SQLitePath:      getEnv("SQLITE_PATH", "./data/parser.db"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			HealthTimeout:   getEnvAsDuration("DB_HEALTH_TIMEOUT", 3*time.Second),
		},
		LLM: LLMConfig{
			BaseURL:        getEnv("OLLAMA_URL", "http://localhost:11434"),
			Model:          getEnv("OLLAMA_MODEL", "llama3"),
			Temperature:    getEnvAsFloat64("LLM_TEMPERATURE", 0.05),
			Timeout:        getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
			MaxAttempts:    getEnvAsInt("LLM_MAX_ATTEMPTS", 3),
			MaxPromptChars: getEnvAsInt("LLM_MAX_PROMPT_CHARS", 10000),
		},
		IPFS: IPFSConfig{
			NodeURL:   getEnv("IPFS_URL", "http://localhost:5001"),
			PinataJWT: getEnv("PINATA_JWT", ""),
			Timeout:   getEnvAsDuration("IPFS_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			Count:         getEnvAsInt("WORKER_COUNT", 3),
			PollInterval:  getEnvAsDuration("WORKER_POLL_INTERVAL", 5*time.Second),
			MaxRetries:    getEnvAsInt("JOB_MAX_RETRIES", 3),
			MaxProcessing: getEnvAsDuration("JOB_MAX_PROCESSING", 10*time.Minute),
			PdftotextBin:  getEnv("PDFTOTEXT_BIN", "pdftotext"),
		},
		Webhook: WebhookConfig{
			MaxAttempts: getEnvAsInt("WEBHOOK_MAX_ATTEMPTS", 5),
			Timeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 10*time.Second),
			BackoffBase: getEnvAsDuration("WEBHOOK_BACKOFF_BASE", 2*time.Second),
			QueueSize:   getEnvAsInt("WEBHOOK_QUEUE_SIZE", 256),
			Workers:     getEnvAsInt("WEBHOOK_WORKERS", 2),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.LLM.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_URL is required", ErrInvalidInput)
	}
	if c.LLM.Model == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_MODEL is required", ErrInvalidInput)
	}
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Worker.Count <= 0 {
		return NewAppError("CONFIG_ERROR", "WORKER_COUNT must be positive", ErrInvalidInput)
	}
	if c.Worker.MaxRetries < 0 {
		return NewAppError("CONFIG_ERROR", "JOB_MAX_RETRIES must not be negative", ErrInvalidInput)
	}
	return nil
}
