package config

import (
	"os"

	"github.com/jsphweid/automidi/constants"
)

// Config holds the process-wide settings. Generation parameters are not part
// of it; they arrive per run as model.Params.
type Config struct {
	Environment string
	Port        string

	MusicDir string

	// Optional S3 sink for finished files
	S3Bucket   string
	S3Prefix   string
	AWSRegion  string
	S3Endpoint string

	SentryDSN string
	Debug     bool
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		MusicDir:    constants.GetMusicDir(),
		S3Bucket:    getEnv("AUTOMIDI_S3_BUCKET", ""),
		S3Prefix:    getEnv("AUTOMIDI_S3_PREFIX", ""),
		AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:  getEnv("AUTOMIDI_S3_ENDPOINT", ""),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		Debug:       getEnv("AUTOMIDI_DEBUG", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// UploadEnabled returns true if finished files should also go to S3
func (c *Config) UploadEnabled() bool {
	return c.S3Bucket != ""
}
